package handlers

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"career-quiz-service/internal/userclient"
)

const (
	ctxUserID    = "user_id"
	ctxSessionID = "session_id"
	ctxToken     = "auth_token"
)

type Claims struct {
	UserID string `json:"userId"`
	jwt.RegisteredClaims
}

// TokenValidator is the upstream validation surface; nil means local JWT
// parsing only.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*userclient.Principal, error)
}

// Identity resolves the caller: a bearer token yields a user id (validated
// upstream when a validator is configured, otherwise parsed locally), and
// everyone else becomes a guest session. Guests without an X-Session-ID
// header get one minted so follow-up requests can share state.
func Identity(validator TokenValidator, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token != "" {
			c.Set(ctxToken, token)
			if userID, err := resolveUser(c, validator, jwtSecret, token); err == nil && userID != "" {
				c.Set(ctxUserID, userID)
				c.Next()
				return
			} else if err != nil {
				log.Printf("token validation failed, treating caller as guest: %v", err)
			}
		}

		sessionID := c.GetHeader("X-Session-ID")
		if sessionID == "" {
			sessionID = uuid.NewString()
			c.Header("X-Session-ID", sessionID)
		}
		c.Set(ctxSessionID, sessionID)
		c.Next()
	}
}

func resolveUser(c *gin.Context, validator TokenValidator, jwtSecret, token string) (string, error) {
	if validator != nil {
		principal, err := validator.ValidateToken(c.Request.Context(), token)
		if err != nil {
			return "", err
		}
		return principal.UserID, nil
	}

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return []byte(jwtSecret), nil
	})
	if err != nil {
		return "", err
	}
	if !parsed.Valid {
		return "", errors.New("invalid token")
	}
	return claims.UserID, nil
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if strings.HasPrefix(header, "Bearer ") {
		return strings.TrimPrefix(header, "Bearer ")
	}
	return ""
}

func callerIdentity(c *gin.Context) (userID, sessionID string) {
	return c.GetString(ctxUserID), c.GetString(ctxSessionID)
}

func callerToken(c *gin.Context) string {
	return c.GetString(ctxToken)
}
