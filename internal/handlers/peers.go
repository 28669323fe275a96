package handlers

import (
	"net/http"

	neopixel "neopixel_controller"

	"github.com/gin-gonic/gin"
)

const (
	statusRemoved = "removed"

	errListPeers = "failed to load peers"
	errPeerOp    = "peer operation failed"
)

// RegisterPeerRequest is the body of POST /peers.
type RegisterPeerRequest struct {
	// Hardware address, colon or dash separated
	Addr string `json:"addr" binding:"required" example:"24:6f:28:aa:bb:01"`
	Name string `json:"name,omitempty" example:"porch"`
}

// @Summary      List peers
// @Tags         peers
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, max, peers"
// @Failure      401  {object}  map[string]string
// @Failure      500  {object}  map[string]string
// @Router       /api/v1/peers [get]
// @Security     BearerAuth
func (h *Handler) listPeers(c *gin.Context) {
	peers, err := h.services.Peers.List(c.Request.Context())
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListPeers, "peers_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(peers),
		"max":   neopixel.MaxPeers,
		"peers": peers,
	})
}

// @Summary      Register peer
// @Tags         peers
// @Accept       json
// @Produce      json
// @Param        body  body      RegisterPeerRequest  true  "Peer"
// @Success      201   {object}  models.Peer
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      409   {object}  map[string]string  "duplicate or table full"
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/peers [post]
// @Security     BearerAuth
func (h *Handler) registerPeer(c *gin.Context) {
	var req RegisterPeerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}
	p, err := h.services.Peers.Register(c.Request.Context(), req.Addr, req.Name, operatorID(c))
	if err != nil {
		h.respondMappedError(c, errPeerOp, "peer_register_failed", err, "addr", req.Addr)
		return
	}
	if h.log != nil {
		h.log.Infow("peer_registered", "addr", p.Addr, "name", p.Name, "operator_id", p.AddedBy)
	}
	c.JSON(http.StatusCreated, p)
}

// @Summary      Remove peer
// @Tags         peers
// @Produce      json
// @Param        addr  path      string  true  "Hardware address"
// @Success      200   {object}  map[string]string
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /api/v1/peers/{addr} [delete]
// @Security     BearerAuth
func (h *Handler) removePeer(c *gin.Context) {
	addr := c.Param("addr")
	if err := h.services.Peers.Remove(c.Request.Context(), addr); err != nil {
		h.respondMappedError(c, errPeerOp, "peer_remove_failed", err, "addr", addr)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": statusRemoved, "addr": addr})
}
