package middleware

import (
	"context"
	"errors"
	"net/http"

	"anoa.com/nftmarketplace/internal/entity"
	"anoa.com/nftmarketplace/pkg/logger"
	"anoa.com/nftmarketplace/pkg/response"
	"anoa.com/nftmarketplace/pkg/session"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// UserFinder is the slice of the user repository the guards need.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)
}

type AuthMiddleware struct {
	users    UserFinder
	sessions *session.Manager
}

func NewAuthMiddleware(users UserFinder, sessions *session.Manager) *AuthMiddleware {
	return &AuthMiddleware{
		users:    users,
		sessions: sessions,
	}
}

// RequireAuth rejects requests without a valid session with 401.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := m.sessions.FromRequest(c)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}

		c.Set(response.ContextUserIDKey, claims.Subject)
		c.Set(response.ContextRoleKey, claims.Role)
		c.Next()
	}
}

// OptionalAuth attaches the session user when one is present and never rejects.
func (m *AuthMiddleware) OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := m.sessions.FromRequest(c); err == nil {
			c.Set(response.ContextUserIDKey, claims.Subject)
			c.Set(response.ContextRoleKey, claims.Role)
		}
		c.Next()
	}
}

// RequireRole loads the session user and checks its current role against roles.
// The stored role is authoritative; the token claim may be stale.
func (m *AuthMiddleware) RequireRole(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, err := response.GetUserID(c)
		if err != nil {
			response.Fail(c, http.StatusUnauthorized, "unauthorized")
			c.Abort()
			return
		}

		user, err := m.users.FindByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				response.Fail(c, http.StatusUnauthorized, "user not found")
			} else {
				logger.Error(err, zap.String("user_id", userID.String()))
				response.Fail(c, http.StatusInternalServerError, "internal server error")
			}
			c.Abort()
			return
		}

		if !entity.HasRole(user.Role, roles...) {
			response.Fail(c, http.StatusForbidden, "insufficient permissions")
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return m.RequireRole(entity.AdminRoles...)
}
