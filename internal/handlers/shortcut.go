package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vantagecare/practice-backend/internal/pkg/logger"
	"github.com/vantagecare/practice-backend/internal/requestdata"
	"github.com/vantagecare/practice-backend/internal/services"
)

type ShortcutHandler struct {
	log         *logger.Logger
	shortcutSvc services.ShortcutService
}

func NewShortcutHandler(log *logger.Logger, shortcutSvc services.ShortcutService) *ShortcutHandler {
	return &ShortcutHandler{
		log:         log.With("handler", "ShortcutHandler"),
		shortcutSvc: shortcutSvc,
	}
}

// GET /api/shortcuts
func (h *ShortcutHandler) ListShortcuts(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	out, err := h.shortcutSvc.ListShortcuts(c.Request.Context(), rd.SubjectID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, out)
}

// PATCH /api/shortcuts/:id
func (h *ShortcutHandler) RenameShortcut(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	shortcutID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	var body struct {
		Label string `json:"label"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return
	}
	if err := h.shortcutSvc.RenameShortcut(c.Request.Context(), rd.SubjectID, shortcutID, body.Label); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
