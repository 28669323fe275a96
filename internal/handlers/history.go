package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"neopixel_controller/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errFromInvalid   = "invalid 'from' time; use RFC3339 or YYYY-MM-DD"
	errToInvalid     = "invalid 'to' time; use RFC3339 or YYYY-MM-DD"
	errEffectInvalid = "invalid 'effect'; use an integer 0-255"

	errListBroadcasts = "failed to load broadcasts"

	layoutDateTime = "2006-01-02 15:04:05"
	layoutDate     = "2006-01-02"
)

// isDateOnly reports whether the query string represents a date without time component.
func isDateOnly(s string) bool {
	return !strings.ContainsAny(s, "T ")
}

// @Summary      List broadcasts
// @Description  Filter history by date (RFC3339, 'YYYY-MM-DD HH:MM:SS', or 'YYYY-MM-DD') and effect. If 'to' is date-only, it is treated as end-of-day inclusive.
// @Tags         broadcasts
// @Produce      json
// @Param        from    query   string  false  "Start of range"  example(2025-08-01)
// @Param        to      query   string  false  "End of range. Date-only treated as end of day."  example(2025-08-31)
// @Param        effect  query   int     false  "Effect number 0-255"
// @Success      200     {object}  map[string]interface{}  "count, broadcasts"
// @Failure      400     {object}  map[string]string
// @Failure      401     {object}  map[string]string
// @Failure      500     {object}  map[string]string
// @Router       /api/v1/broadcasts [get]
// @Security     BearerAuth
func (h *Handler) getBroadcasts(c *gin.Context) {
	ctx := c.Request.Context()
	var (
		filter service.HistoryFilter
		err    error
	)
	if qs := c.Query("from"); qs != "" {
		filter.From, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errFromInvalid})
			return
		}
	}
	if qs := c.Query("to"); qs != "" {
		filter.To, err = parseQueryTime(qs)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errToInvalid})
			return
		}
		if isDateOnly(qs) {
			filter.To = filter.To.Add(24*time.Hour - time.Nanosecond).UTC()
		}
	}
	if qs := strings.TrimSpace(c.Query("effect")); qs != "" {
		v, perr := strconv.ParseUint(qs, 10, 8)
		if perr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": errEffectInvalid})
			return
		}
		effect := uint8(v)
		filter.Effect = &effect
	}
	broadcasts, err := h.services.History.List(ctx, filter)
	if err != nil {
		h.respondMappedError(c, errListBroadcasts, "broadcasts_list_failed", err, "from", filter.From, "to", filter.To)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":      len(broadcasts),
		"broadcasts": broadcasts,
	})
}

// parseQueryTime tries each accepted layout and normalizes to UTC.
func parseQueryTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, layoutDateTime, layoutDate} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf(
		"invalid time format %q, expected one of: "+
			"RFC3339 (e.g. 2025-08-27T15:04:05Z), "+
			"'YYYY-MM-DD HH:MM:SS', "+
			"'YYYY-MM-DD'",
		s,
	)
}
