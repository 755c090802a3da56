package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"sightstory/internal/models"

	rateli "github.com/JGLTechnologies/gin-rate-limit"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// AuthMiddleware requires a valid "Bearer" access token and stores the user
// id, token UUID and roles in the gin context.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		scheme, tokenString, ok := strings.Cut(authHeader, " ")
		if !ok || !strings.EqualFold(scheme, "bearer") || tokenString == "" {
			zap.L().Debug("Missing or malformed Authorization header", zap.String("path", c.Request.URL.Path))
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, models.ErrUnauthorized)
			return
		}

		claims, err := h.authService.VerifyAccessToken(c.Request.Context(), tokenString)
		if err != nil {
			zap.L().Debug("Access token verification failed", zap.Error(err))
			tokenVerificationsTotal.WithLabelValues("failure").Inc()
			handleServiceError(c, err)
			return
		}

		tokenVerificationsTotal.WithLabelValues("success").Inc()
		c.Set(models.CtxKeyUserID, claims.UserID)
		c.Set(models.CtxKeyAccessUUID, claims.ID)
		c.Set(models.CtxKeyRoles, claims.Roles)
		c.Next()
	}
}

// getUserIDFromContext reads the id stored by AuthMiddleware. On failure it
// has already written the error response.
func getUserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(models.CtxKeyUserID)
	userID, ok := raw.(uuid.UUID)
	if !exists || !ok || userID == uuid.Nil {
		zap.L().Error("User id missing from request context", zap.String("path", c.FullPath()))
		handleServiceError(c, errors.New("user id missing from request context"))
		return uuid.Nil, false
	}
	return userID, true
}

// NewRateLimitMiddleware limits requests per client IP using store.
func NewRateLimitMiddleware(store rateli.Store) gin.HandlerFunc {
	return rateli.RateLimiter(store, &rateli.Options{
		ErrorHandler: func(c *gin.Context, info rateli.Info) {
			rateLimitedRequestsTotal.WithLabelValues(c.FullPath()).Inc()
			zap.L().Warn("Rate limit exceeded",
				zap.String("clientIP", c.ClientIP()),
				zap.Time("resetTime", info.ResetTime),
				zap.String("path", c.Request.URL.Path),
			)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, models.ErrorResponse{
				Code:    models.ErrCodeRateLimited,
				Message: "Too many requests. Try again in " + time.Until(info.ResetTime).Round(time.Second).String(),
			})
		},
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	})
}
