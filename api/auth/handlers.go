package auth

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/killallgit/podcast-api/api/types"
	"github.com/killallgit/podcast-api/internal/services/auth"
	apperrors "github.com/killallgit/podcast-api/pkg/errors"
)

// Handler manages auth endpoints
type Handler struct {
	authService *auth.Service
}

// NewHandler creates a new auth handler
func NewHandler(authService *auth.Service) *Handler {
	return &Handler{authService: authService}
}

// Identity is the requester as seen by the API
type Identity struct {
	UserID    uint `json:"user_id"`
	IsCreator bool `json:"is_creator"`
}

// Me returns the identity carried by the bearer token
// @Summary Get current identity
// @Description Returns the user id and creator flag from the bearer token
// @Tags auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} types.DataResponse{data=Identity}
// @Failure 401 {object} types.ErrorResponse
// @Router /api/v1/me [get]
func (h *Handler) Me(c *gin.Context) {
	claims, exists := c.Get(types.ClaimsKey)
	if !exists {
		types.SendError(c, apperrors.Unauthorized("authentication required"))
		return
	}

	authClaims := claims.(*auth.Claims)
	types.SendSuccess(c, "identity", Identity{UserID: authClaims.UserID, IsCreator: authClaims.IsCreator})
}

// AuthMiddleware requires a valid bearer token and stores the requester
// identity on the context.
func (h *Handler) AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			types.SendError(c, apperrors.Unauthorized("authorization header required"))
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			types.SendError(c, apperrors.Unauthorized("invalid authorization header format"))
			c.Abort()
			return
		}

		claims, err := h.authService.ValidateToken(strings.TrimSpace(parts[1]))
		if err != nil {
			msg := "invalid token"
			if errors.Is(err, auth.ErrTokenExpired) {
				msg = "token expired"
			}
			types.SendError(c, apperrors.Unauthorized(msg))
			c.Abort()
			return
		}

		c.Set(types.ClaimsKey, claims)
		c.Set(types.UserIDKey, claims.UserID)
		c.Set(types.IsCreatorKey, claims.IsCreator)

		c.Next()
	}
}
