package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/vantagecare/practice-backend/internal/pkg/logger"
	"github.com/vantagecare/practice-backend/internal/requestdata"
	"github.com/vantagecare/practice-backend/internal/services"
)

type ChallengeHandler struct {
	log          *logger.Logger
	challengeSvc services.ChallengeService
}

func NewChallengeHandler(log *logger.Logger, challengeSvc services.ChallengeService) *ChallengeHandler {
	return &ChallengeHandler{
		log:          log.With("handler", "ChallengeHandler"),
		challengeSvc: challengeSvc,
	}
}

// GET /api/challenges
// List challenges whose activity window covers today.
func (h *ChallengeHandler) ListActiveChallenges(c *gin.Context) {
	out, err := h.challengeSvc.ListActiveChallenges(c.Request.Context(), time.Now().UTC())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, out)
}

// GET /api/challenges/:id
func (h *ChallengeHandler) GetChallenge(c *gin.Context) {
	challengeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	out, err := h.challengeSvc.GetChallenge(c.Request.Context(), challengeID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, out)
}

// GET /api/me/challenges
// The calling patient's enrollment records.
func (h *ChallengeHandler) ListMyChallenges(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	out, err := h.challengeSvc.ListPatientChallenges(c.Request.Context(), rd.SubjectID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondOK(c, out)
}

// POST /api/challenges/:id/like
// Toggle the calling patient's like.
func (h *ChallengeHandler) LikeChallenge(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	challengeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.challengeSvc.LikeChallenge(c.Request.Context(), rd.SubjectID, challengeID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/challenges/:id/participate
func (h *ChallengeHandler) ParticipateInChallenge(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	challengeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.challengeSvc.ParticipateInChallenge(c.Request.Context(), rd.SubjectID, challengeID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/challenges/:id/complete
func (h *ChallengeHandler) CompleteChallenge(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	challengeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.challengeSvc.CompleteChallenge(c.Request.Context(), rd.SubjectID, challengeID, false); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// POST /api/challenges/:id/dismiss
func (h *ChallengeHandler) DismissChallenge(c *gin.Context) {
	rd := requestdata.GetRequestData(c.Request.Context())
	challengeID, ok := pathUUID(c, "id")
	if !ok {
		return
	}
	if err := h.challengeSvc.DismissChallenge(c.Request.Context(), rd.SubjectID, challengeID); err != nil {
		RespondDomainError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func pathUUID(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "validation", err)
		return uuid.Nil, false
	}
	return id, true
}
