package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/ErlanBelekov/shift-calendar/internal/domain"
	"github.com/ErlanBelekov/shift-calendar/internal/transport/http/middleware"
	"github.com/ErlanBelekov/shift-calendar/internal/usecase"
	"github.com/gin-gonic/gin"
)

type entryUsecaser interface {
	Create(ctx context.Context, userID string, input usecase.EntryInput) (*domain.Entry, error)
	Get(ctx context.Context, id, userID string) (*domain.Entry, error)
	List(ctx context.Context, userID string) ([]*domain.Entry, error)
	Update(ctx context.Context, id, userID string, input usecase.EntryInput) error
	Delete(ctx context.Context, id, userID string) error
}

type EntryHandler struct {
	uc     entryUsecaser
	logger *slog.Logger
}

func NewEntryHandler(uc entryUsecaser, logger *slog.Logger) *EntryHandler {
	return &EntryHandler{uc: uc, logger: logger.With("component", "entry_handler")}
}

// entry_type is validated by the usecase so an unknown value gets its own message.
type entryRequest struct {
	Date      string   `json:"date"       binding:"required"`
	EntryType string   `json:"entry_type" binding:"required"`
	WorkHours *float64 `json:"work_hours" binding:"omitempty,min=0"`
}

func (r entryRequest) input() usecase.EntryInput {
	return usecase.EntryInput{Date: r.Date, EntryType: r.EntryType, WorkHours: r.WorkHours}
}

type entryResponse struct {
	ID        string           `json:"id"`
	Date      string           `json:"date"`
	EntryType domain.EntryType `json:"entry_type"`
	WorkHours *float64         `json:"work_hours"`
}

type createEntryResponse struct {
	ID string `json:"id"`
}

func toEntryResponse(e *domain.Entry) entryResponse {
	return entryResponse{
		ID:        e.ID,
		Date:      e.Date.Format(domain.DateLayout),
		EntryType: e.Type,
		WorkHours: e.WorkHours,
	}
}

// GET /api/calendar
func (h *EntryHandler) List(ctx *gin.Context) {
	entries, err := h.uc.List(ctx.Request.Context(), ctx.GetString(middleware.UserIDKey))
	if err != nil {
		h.logger.ErrorContext(ctx.Request.Context(), "list entries", "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
		return
	}

	items := make([]entryResponse, len(entries))
	for i, e := range entries {
		items[i] = toEntryResponse(e)
	}
	ctx.JSON(http.StatusOK, items)
}

// POST /api/calendar/add
func (h *EntryHandler) Create(ctx *gin.Context) {
	var req entryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	entry, err := h.uc.Create(ctx.Request.Context(), ctx.GetString(middleware.UserIDKey), req.input())
	if err != nil {
		h.writeError(ctx, "create entry", err)
		return
	}

	ctx.JSON(http.StatusCreated, createEntryResponse{ID: entry.ID})
}

// GET /api/calendar/getById/:id
func (h *EntryHandler) GetByID(ctx *gin.Context) {
	entry, err := h.uc.Get(ctx.Request.Context(), ctx.Param("id"), ctx.GetString(middleware.UserIDKey))
	if err != nil {
		h.writeError(ctx, "get entry", err)
		return
	}

	ctx.JSON(http.StatusOK, toEntryResponse(entry))
}

// PUT /api/calendar/update/:id
func (h *EntryHandler) Update(ctx *gin.Context) {
	var req entryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err := h.uc.Update(ctx.Request.Context(), ctx.Param("id"), ctx.GetString(middleware.UserIDKey), req.input())
	if err != nil {
		h.writeError(ctx, "update entry", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// DELETE /api/calendar/delete/:id
func (h *EntryHandler) Delete(ctx *gin.Context) {
	err := h.uc.Delete(ctx.Request.Context(), ctx.Param("id"), ctx.GetString(middleware.UserIDKey))
	if err != nil {
		h.writeError(ctx, "delete entry", err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

func (h *EntryHandler) writeError(ctx *gin.Context, op string, err error) {
	switch {
	case errors.Is(err, domain.ErrEntryNotFound):
		ctx.JSON(http.StatusNotFound, gin.H{"error": errEntryNotFound})
	case errors.Is(err, domain.ErrUnknownEntryType):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errUnknownEntryType})
	case errors.Is(err, domain.ErrInvalidDate):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errInvalidDate})
	case errors.Is(err, domain.ErrInvalidWorkHours):
		ctx.JSON(http.StatusBadRequest, gin.H{"error": errInvalidWorkHours})
	default:
		h.logger.ErrorContext(ctx.Request.Context(), op, "entry_id", ctx.Param("id"), "error", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
	}
}
