package middleware

import (
	"crypto/sha256"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"activity-booking/internal/domain/auth"
	"activity-booking/internal/pkg/apikey"
	"activity-booking/internal/pkg/config"
	"activity-booking/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
)

const (
	HeaderAPIKey = "X-API-Key"

	ctxSubjectKey = "operator_subject"
	ctxRoleKey    = "operator_role"
)

type AuthMiddleware struct {
	tokens  *jwt.Service
	keyHash string

	// bcrypt is too slow to run on every request; keys that matched once are remembered
	verified sync.Map
}

func NewAuthMiddleware(tokens *jwt.Service, cfg config.AuthConfig) *AuthMiddleware {
	return &AuthMiddleware{
		tokens:  tokens,
		keyHash: cfg.PublicAPIKeyHash,
	}
}

// RequireAPIKey gates the public checkout API.
func (m *AuthMiddleware) RequireAPIKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader(HeaderAPIKey)
		if key == "" {
			abortJSON(c, http.StatusUnauthorized, "API key required")
			return
		}

		digest := sha256.Sum256([]byte(key))
		if _, ok := m.verified.Load(digest); !ok {
			if err := apikey.Compare(m.keyHash, key); err != nil {
				slog.Warn("API key rejected", "client_ip", c.ClientIP(), "error", err.Error())
				abortJSON(c, http.StatusUnauthorized, "Invalid API key")
				return
			}
			m.verified.Store(digest, struct{}{})
		}
		c.Next()
	}
}

// RequireRole validates the operator bearer token and checks the role hierarchy.
func (m *AuthMiddleware) RequireRole(min auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			abortJSON(c, http.StatusUnauthorized, "Access token required")
			return
		}

		principal, err := m.tokens.Principal(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			abortJSON(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		c.Set(ctxSubjectKey, principal.Subject)
		c.Set(ctxRoleKey, principal.Role)

		if !principal.Role.AtLeast(min) {
			abortJSON(c, http.StatusForbidden, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

func GetOperatorRole(c *gin.Context) (auth.Role, bool) {
	v, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}
	role, ok := v.(auth.Role)
	return role, ok
}

func GetOperatorSubject(c *gin.Context) string {
	return c.GetString(ctxSubjectKey)
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(h[len("Bearer "):])
}

func abortJSON(c *gin.Context, status int, msg string) {
	c.AbortWithStatusJSON(status, gin.H{"error": gin.H{"message": msg}})
}
