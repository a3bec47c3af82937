package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ybotev/staffdesk/internal/directory/models"
)

const adminContextKey = "admin"

// AdminLookup resolves a token subject to an administrator account.
type AdminLookup interface {
	GetAdminByID(ctx context.Context, id uuid.UUID) (*models.Admin, error)
}

// Middleware verifies the bearer token, loads the referenced admin and
// attaches it to the request context. Failure is terminal for the
// request; nothing is retried.
func Middleware(secret string, admins AdminLookup) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, err := extractTokenFromHeader(c.Request)
		if err != nil {
			abortUnauthorized(c, err.Error())
			return
		}

		claims, err := validateToken(tokenString, secret)
		if err != nil {
			abortUnauthorized(c, "invalid or expired token")
			return
		}

		sub, err := claims.GetSubject()
		if err != nil {
			abortUnauthorized(c, "invalid token claims")
			return
		}
		adminID, err := uuid.Parse(sub)
		if err != nil {
			abortUnauthorized(c, "invalid token claims")
			return
		}

		admin, err := admins.GetAdminByID(c.Request.Context(), adminID)
		if err != nil || !admin.IsActive {
			abortUnauthorized(c, "admin not found")
			return
		}

		c.Set(adminContextKey, admin)
		c.Next()
	}
}

// AdminFromContext returns the authenticated admin attached by Middleware.
func AdminFromContext(c *gin.Context) (*models.Admin, bool) {
	v, ok := c.Get(adminContextKey)
	if !ok {
		return nil, false
	}
	admin, ok := v.(*models.Admin)
	return admin, ok
}

func extractTokenFromHeader(r *http.Request) (string, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", fmt.Errorf("authorization token missing")
	}

	if !strings.HasPrefix(authHeader, "Bearer ") {
		return "", fmt.Errorf("invalid authorization format: missing Bearer prefix")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == "" {
		return "", fmt.Errorf("invalid authorization format: empty token")
	}

	return tokenString, nil
}

func abortUnauthorized(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
		"success": false,
		"message": message,
	})
}
