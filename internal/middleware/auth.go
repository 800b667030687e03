package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/SscSPs/l10n_addons/internal/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// AuthMiddleware creates a Gin middleware handler that validates JWT tokens.
func AuthMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := GetLoggerFromCtx(c.Request.Context())
		// if auth is already done, skip this middleware
		if authMethod, exists := c.Get(authMethodKey); exists {
			logger.Debug("Auth already done", "authMethod", authMethod)
			c.Next()
			return
		}
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			logger.Warn("Authorization header missing")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			logger.Warn("Authorization header format invalid")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Authorization header format must be Bearer {token}"})
			return
		}

		claims, err := utils.ParseAndValidateJWT(parts[1], jwtSecret)
		if err != nil {
			logger.Warn("Invalid token", "error", err)
			msg := "Invalid token"
			if errors.Is(err, jwt.ErrTokenExpired) {
				msg = "Token has expired"
			} else if errors.Is(err, jwt.ErrTokenNotValidYet) {
				msg = "Token not valid yet"
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg})
			return
		}
		if claims.Subject == "" {
			logger.Error("User ID (subject) missing from valid token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid token claims"})
			return
		}

		authenticate(c, claims.Subject, "jwt", logger)
		c.Next()
	}
}

// APIKeyAuth authenticates machine clients (schedulers, the CLI) by the x-api-key header.
// keys maps an api key to the client name used as user id. Requests without the header fall
// through to the next auth middleware.
func APIKeyAuth(keys map[string]string) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.GetHeader("x-api-key")
		if key == "" || len(keys) == 0 {
			c.Next()
			return
		}
		client, ok := keys[key]
		if !ok {
			GetLoggerFromCtx(c.Request.Context()).Warn("Unknown api key")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid api key"})
			return
		}
		authenticate(c, "client:"+client, "api_key", GetLoggerFromCtx(c.Request.Context()))
		c.Next()
	}
}

func authenticate(c *gin.Context, userID, method string, logger *slog.Logger) {
	ctx := WithUserID(c.Request.Context(), userID)
	ctx = WithLogger(ctx, logger.With(slog.String("user_id", userID)))
	c.Request = c.Request.WithContext(ctx)
	c.Set(string(userIDKey), userID)
	c.Set(authMethodKey, method)
}
