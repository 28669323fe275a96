package handlers

import (
	"encoding/hex"
	"errors"
	"net/http"
	"strings"

	neopixel "neopixel_controller"
	"neopixel_controller/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	statusOK = "ok"

	errBroadcast       = "failed to broadcast effect"
	errGetCurrent      = "failed to load current effect"
	errEncodeRecord    = "failed to encode record"
	errInvalidBodyPref = "invalid body: "
	errInvalidHex      = "invalid hex payload"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// statusForError maps domain errors to HTTP codes. Unknown errors are 500.
func statusForError(err error) int {
	switch {
	case errors.Is(err, neopixel.ErrInvalidPeerAddr),
		errors.Is(err, neopixel.ErrRecordSize),
		errors.Is(err, service.ErrInvalidTimeRange):
		return http.StatusBadRequest
	case errors.Is(err, service.ErrPeerNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrPeerExists),
		errors.Is(err, service.ErrPeerTableFull),
		errors.Is(err, service.ErrNoPeers):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// respondMappedError writes the status mapped from err. Client errors echo
// err; internal failures answer with fallback.
func (h *Handler) respondMappedError(c *gin.Context, fallback, logKey string, err error, kv ...interface{}) {
	code := statusForError(err)
	msg := fallback
	if code != http.StatusInternalServerError {
		msg = err.Error()
	}
	h.logAndJSONError(c, code, msg, logKey, err, kv...)
}

// EffectRequest is the body of POST /effects and POST /records/encode.
// Omitted fields take the record defaults.
type EffectRequest struct {
	// Effect number understood by the receivers
	Effect *uint8 `json:"effect" binding:"required" example:"3"`
	// Whether the strip is lit (default true)
	Display *bool `json:"display,omitempty" example:"true"`
	// Hue 0-255 (default 42)
	Hue *uint8 `json:"hue,omitempty" example:"160"`
	// Saturation 0-255 (default 255)
	Saturation *uint8 `json:"saturation,omitempty" example:"255"`
	// Value (brightness) 0-255 (default 255)
	Value *uint8 `json:"value,omitempty" example:"128"`
}

func (r EffectRequest) params(operatorID int) service.EffectParams {
	return service.EffectParams{
		OperatorID: operatorID,
		Effect:     *r.Effect,
		Display:    r.Display,
		Hue:        r.Hue,
		Saturation: r.Saturation,
		Value:      r.Value,
	}
}

// DecodeRequest carries a wire record as hex.
type DecodeRequest struct {
	Hex string `json:"hex" binding:"required" example:"0301a0ff80"`
}

// RecordResponse pairs a record with its wire form.
type RecordResponse struct {
	Hex    string                 `json:"hex" example:"0301a0ff80"`
	Record neopixel.CommandRecord `json:"record"`
}

// bindEffect binds an EffectRequest, writing 400 on failure.
// Bytes outside 0-255 fail JSON decoding into uint8.
func (h *Handler) bindEffect(c *gin.Context) (EffectRequest, bool) {
	var req EffectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return req, false
	}
	return req, true
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": statusOK,
	})
}

// @Summary      Radio parameters
// @Description  Compiled-in constants every sender and receiver build must agree on.
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]int
// @Failure      401  {object}  map[string]string
// @Router       /api/v1/radio [get]
// @Security     BearerAuth
func (h *Handler) radioInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"channel":        neopixel.Channel,
		"max_peers":      neopixel.MaxPeers,
		"record_size":    neopixel.RecordSize,
		"schema_version": neopixel.SchemaVersion,
	})
}

// @Summary      Broadcast effect
// @Description  Builds a command record and sends it to every registered peer.
// @Tags         effects
// @Accept       json
// @Produce      json
// @Param        body  body      EffectRequest  true  "Effect payload"
// @Success      200   {object}  models.Broadcast
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "no peers registered"
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/effects [post]
// @Security     BearerAuth
func (h *Handler) broadcastEffect(c *gin.Context) {
	req, ok := h.bindEffect(c)
	if !ok {
		return
	}
	b, err := h.services.Broadcaster.Broadcast(c.Request.Context(), req.params(operatorID(c)))
	if err != nil {
		h.respondMappedError(c, errBroadcast, "effect_broadcast_failed", err, "effect", *req.Effect, "operator_id", operatorID(c))
		return
	}
	c.JSON(http.StatusOK, b)
}

// @Summary      Current effect
// @Description  Latest broadcast, or the default record for effect 0 when nothing was sent yet.
// @Tags         effects
// @Produce      json
// @Success      200  {object}  models.Broadcast
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/effects/current [get]
// @Security     BearerAuth
func (h *Handler) getCurrentEffect(c *gin.Context) {
	cur, err := h.services.Monitoring.GetCurrent(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errGetCurrent, "effect_get_current_failed", err)
		return
	}
	c.JSON(http.StatusOK, cur)
}

// @Summary      Encode record
// @Description  Returns the 5-byte wire form without sending it.
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        body  body      EffectRequest  true  "Effect payload"
// @Success      200   {object}  RecordResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/records/encode [post]
// @Security     BearerAuth
func (h *Handler) encodeRecord(c *gin.Context) {
	req, ok := h.bindEffect(c)
	if !ok {
		return
	}
	rec := req.params(0).Record()
	wire, err := rec.MarshalBinary()
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errEncodeRecord, "record_encode_failed", err)
		return
	}
	c.JSON(http.StatusOK, RecordResponse{Hex: hex.EncodeToString(wire), Record: rec})
}

// @Summary      Decode record
// @Description  Parses a hex wire record; it must be exactly 5 bytes.
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        body  body      DecodeRequest  true  "Hex payload"
// @Success      200   {object}  RecordResponse
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/records/decode [post]
// @Security     BearerAuth
func (h *Handler) decodeRecord(c *gin.Context) {
	var req DecodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	wire, err := hex.DecodeString(strings.TrimSpace(req.Hex))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidHex})
		return
	}
	rec, err := neopixel.DecodeCommandRecord(wire)
	if err != nil {
		c.JSON(statusForError(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, RecordResponse{Hex: hex.EncodeToString(wire), Record: rec})
}
