package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/taskmgmt/task-management-api/internal/config"
	"github.com/taskmgmt/task-management-api/internal/httputil"
)

const (
	ContextKeyUserID   = "user_id"
	ContextKeyUsername = "username"
	ContextKeyRole     = "role"
)

// RequireAuth validates the bearer token and injects the caller's identity
// into the gin context. Signature, signing method, issuer, audience and
// expiry are all checked; any failure aborts with 401.
func RequireAuth(jwtCfg config.JWTConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			httputil.Unauthorized(c, "Missing authorization header")
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			httputil.Unauthorized(c, "Invalid authorization header")
			c.Abort()
			return
		}

		claims := jwt.MapClaims{}
		token, err := jwt.ParseWithClaims(parts[1], claims,
			func(token *jwt.Token) (any, error) {
				return []byte(jwtCfg.Secret), nil
			},
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(jwtCfg.Issuer),
			jwt.WithAudience(jwtCfg.Audience),
			jwt.WithExpirationRequired(),
		)
		if err != nil || !token.Valid {
			httputil.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		sub, err := claims.GetSubject()
		if err != nil {
			httputil.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}
		userID, err := strconv.ParseUint(sub, 10, 64)
		if err != nil {
			httputil.Unauthorized(c, "Invalid token")
			c.Abort()
			return
		}

		c.Set(ContextKeyUserID, userID)
		c.Set(ContextKeyUsername, claims[ContextKeyUsername])
		c.Set(ContextKeyRole, claims[ContextKeyRole])
		c.Next()
	}
}

// GetUserID retrieves the authenticated user's ID from the context.
func GetUserID(c *gin.Context) (uint64, bool) {
	value, exists := c.Get(ContextKeyUserID)
	if !exists {
		return 0, false
	}

	userID, ok := value.(uint64)
	if !ok {
		return 0, false
	}
	return userID, true
}
