package handlers

import (
	_ "neopixel_controller/docs"
	"neopixel_controller/internal/logger"
	"neopixel_controller/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)

	h.registerAPIRoutes(router)

	// Current-effect stream, same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.operatorIdMiddleware)
	{
		api.GET("/radio", h.radioInfo)
		h.registerEffectRoutes(api)
		h.registerPeerRoutes(api)
		h.registerRecordRoutes(api)
		api.GET("/broadcasts", h.getBroadcasts)
	}
}

func (h *Handler) registerEffectRoutes(api *gin.RouterGroup) {
	effects := api.Group("/effects")
	{
		// Body example: {"effect":3,"hue":160}
		effects.POST("", h.broadcastEffect)
		effects.GET("/current", h.getCurrentEffect)
	}
}

func (h *Handler) registerPeerRoutes(api *gin.RouterGroup) {
	peers := api.Group("/peers")
	{
		peers.GET("", h.listPeers)
		peers.POST("", h.registerPeer)
		peers.DELETE("/:addr", h.removePeer)
	}
}

func (h *Handler) registerRecordRoutes(api *gin.RouterGroup) {
	records := api.Group("/records")
	{
		records.POST("/encode", h.encodeRecord)
		records.POST("/decode", h.decodeRecord)
	}
}
