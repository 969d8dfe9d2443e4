package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"career-quiz-service/internal/service"
)

type RecommendationHandler struct {
	Service *service.RecommendationService
}

func NewRecommendationHandler(s *service.RecommendationService) *RecommendationHandler {
	return &RecommendationHandler{Service: s}
}

// Bundle returns a full content bundle. Callers without a completed quiz
// get clearly-labeled fallback content, never an error.
func (h *RecommendationHandler) Bundle(c *gin.Context) {
	userID, sessionID := callerIdentity(c)
	bundle := h.Service.Bundle(
		c.Request.Context(),
		userID,
		sessionID,
		c.Query("quizId"),
		c.Query("ageRange"),
	)
	c.JSON(http.StatusOK, bundle)
}

// Summary returns just the extracted traits and career suggestions.
func (h *RecommendationHandler) Summary(c *gin.Context) {
	userID, _ := callerIdentity(c)
	traits, careers := h.Service.Summary(c.Request.Context(), userID, c.Query("quizId"))
	c.JSON(http.StatusOK, gin.H{"traits": traits, "careers": careers})
}

// History lists the caller's stored bundles, newest first.
func (h *RecommendationHandler) History(c *gin.Context) {
	userID, _ := callerIdentity(c)
	c.JSON(http.StatusOK, gin.H{"bundles": h.Service.History(c.Request.Context(), userID)})
}
