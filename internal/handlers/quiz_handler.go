package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"career-quiz-service/internal/questionbank"
	"career-quiz-service/internal/resolver"
	"career-quiz-service/internal/service"
)

type QuizHandler struct {
	Service *service.QuizService
}

func NewQuizHandler(s *service.QuizService) *QuizHandler {
	return &QuizHandler{Service: s}
}

// Generate creates a fresh quiz for the caller's age range.
func (h *QuizHandler) Generate(c *gin.Context) {
	var req struct {
		AgeRange string `json:"age_range" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	userID, sessionID := callerIdentity(c)
	quiz, err := h.Service.Generate(c.Request.Context(), userID, sessionID, req.AgeRange)
	if err != nil {
		if errors.Is(err, service.ErrInvalidAgeRange) {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":      "Unsupported age range",
				"age_ranges": questionbank.AgeRanges(),
			})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create quiz"})
		return
	}
	c.JSON(http.StatusCreated, quiz)
}

// Submit records answers and returns the computed analysis.
func (h *QuizHandler) Submit(c *gin.Context) {
	var req struct {
		Answers []int `json:"answers" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "details": err.Error()})
		return
	}

	userID, _ := callerIdentity(c)
	quiz, err := h.Service.Submit(c.Request.Context(), userID, c.Param("id"), req.Answers, callerToken(c))
	if err != nil {
		switch {
		case errors.Is(err, service.ErrNoAnswers):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Answers are required"})
		case errors.Is(err, resolver.ErrNoQuiz):
			c.JSON(http.StatusNotFound, gin.H{"error": "Quiz not found", "hint": "Generate a quiz first"})
		case errors.Is(err, service.ErrInvalidAgeRange):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Quiz has an unsupported age range"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit quiz"})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"quiz": quiz, "analysis": quiz.Analysis})
}

// Result returns the caller's resolved quiz with its analysis.
func (h *QuizHandler) Result(c *gin.Context) {
	userID, _ := callerIdentity(c)
	quiz, err := h.Service.Result(c.Request.Context(), userID, c.Query("quizId"))
	if err != nil {
		if errors.Is(err, resolver.ErrNoQuiz) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No quiz found", "hint": "Take the quiz to see your results"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load quiz result"})
		return
	}
	c.JSON(http.StatusOK, quiz)
}
