package service

import (
	"context"
	"encoding/hex"

	neopixel "neopixel_controller"
	"neopixel_controller/internal/models"
	"neopixel_controller/internal/repository"
)

type MonitoringService struct {
	broadcastRepo repository.BroadcastRepo
}

func NewMonitoringService(broadcastRepo repository.BroadcastRepo) *MonitoringService {
	return &MonitoringService{broadcastRepo: broadcastRepo}
}

// GetCurrent returns the latest broadcast. Before anything was sent it
// returns a baseline: effect 0 with default colour and zero peers, ID empty.
func (s *MonitoringService) GetCurrent(ctx context.Context) (models.Broadcast, error) {
	b, err := s.broadcastRepo.Latest(ctx)
	if err != nil {
		return models.Broadcast{}, err
	}
	if b.ID == "" {
		return baselineBroadcast(), nil
	}
	return b, nil
}

func baselineBroadcast() models.Broadcast {
	rec := neopixel.NewCommandRecord(0)
	payload, _ := rec.MarshalBinary()
	return models.Broadcast{
		Record:     rec,
		PayloadHex: hex.EncodeToString(payload),
	}
}
