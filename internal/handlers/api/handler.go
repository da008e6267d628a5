package api

import (
	"errors"
	"net/http"

	roomService "github.com/NachoLave/SushiLibre/internal/services/room"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorResponse is the JSON body returned for every failed request
type ErrorResponse struct {
	Message string `json:"message"`
}

// Handler exposes the room service over HTTP
type Handler struct {
	rooms roomService.Service
	log   zerolog.Logger
}

// Config holds configuration for the HTTP handler
type Config struct {
	RoomService roomService.Service
	Logger      zerolog.Logger
}

// New creates a new HTTP handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.RoomService == nil {
		return nil, errors.New("room service cannot be nil")
	}

	return &Handler{
		rooms: cfg.RoomService,
		log:   cfg.Logger,
	}, nil
}

// RegisterRoutes mounts the API on the given engine
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/healthz", h.Healthz)

	api := r.Group("/api")
	{
		api.POST("/rooms", h.CreateRoom)

		rooms := api.Group("/rooms/:id")
		{
			rooms.GET("", h.GetRoom)
			rooms.PATCH("", h.FinishRoom)
			rooms.POST("/participants", h.JoinRoom)
			rooms.PATCH("/participants", h.PatchParticipant)
		}

		api.GET("/finished-rooms", h.ListFinishedRooms)
		api.GET("/finished-rooms/:id", h.GetFinishedRoom)
	}
}

type CreateRoomRequest struct {
	Nombre string `json:"nombre" binding:"required"`
	UserID string `json:"userId" binding:"required"`
}

type JoinRoomRequest struct {
	UserID string `json:"userId" binding:"required"`
	Nombre string `json:"nombre" binding:"required"`
}

type PatchParticipantRequest struct {
	UserID     string `json:"userId" binding:"required"`
	Piezas     *int   `json:"piezas"`
	Finalizado *bool  `json:"finalizado"`
}

type FinishRoomRequest struct {
	Finalizado *bool `json:"finalizado" binding:"required"`
}

func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *Handler) CreateRoom(c *gin.Context) {
	var req CreateRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "faltan datos para crear la sala"})
		return
	}

	out, err := h.rooms.CreateRoom(c.Request.Context(), &roomService.CreateRoomInput{
		Nombre: req.Nombre,
		UserID: req.UserID,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"room": out.Room})
}

func (h *Handler) GetRoom(c *gin.Context) {
	out, err := h.rooms.GetRoom(c.Request.Context(), &roomService.GetRoomInput{
		RoomID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": out.Room})
}

func (h *Handler) FinishRoom(c *gin.Context) {
	var req FinishRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil || !*req.Finalizado {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "dato finalizado inválido"})
		return
	}

	out, err := h.rooms.FinishRoom(c.Request.Context(), &roomService.FinishRoomInput{
		RoomID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": out.Room})
}

func (h *Handler) JoinRoom(c *gin.Context) {
	var req JoinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "datos incompletos"})
		return
	}

	out, err := h.rooms.JoinRoom(c.Request.Context(), &roomService.JoinRoomInput{
		RoomID: c.Param("id"),
		UserID: req.UserID,
		Nombre: req.Nombre,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": out.Room})
}

func (h *Handler) PatchParticipant(c *gin.Context) {
	var req PatchParticipantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "userId requerido"})
		return
	}

	if req.Piezas == nil && req.Finalizado == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: "nada que actualizar"})
		return
	}

	out, err := h.rooms.UpdateParticipant(c.Request.Context(), &roomService.UpdateParticipantInput{
		RoomID:     c.Param("id"),
		UserID:     req.UserID,
		Piezas:     req.Piezas,
		Finalizado: req.Finalizado,
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": out.Room})
}

func (h *Handler) ListFinishedRooms(c *gin.Context) {
	out, err := h.rooms.ListFinishedRooms(c.Request.Context(), &roomService.ListFinishedRoomsInput{})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"rooms": out.Records})
}

func (h *Handler) GetFinishedRoom(c *gin.Context) {
	out, err := h.rooms.GetFinishedRoom(c.Request.Context(), &roomService.GetFinishedRoomInput{
		RoomID: c.Param("id"),
	})
	if err != nil {
		h.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"room": out.Record})
}

// writeError maps service errors onto HTTP status codes
func (h *Handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, roomService.ErrRoomNotFound), errors.Is(err, roomService.ErrParticipantNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Message: err.Error()})
	case errors.Is(err, roomService.ErrRoomFinished):
		c.JSON(http.StatusConflict, ErrorResponse{Message: err.Error()})
	case errors.Is(err, roomService.ErrInvalidInput):
		c.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
		c.JSON(http.StatusInternalServerError, ErrorResponse{Message: "internal error"})
	}
}
