package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shenikar/waste_sorting_system/internal/config"
	"github.com/shenikar/waste_sorting_system/internal/service"
	"github.com/sirupsen/logrus"
)

const sessionContextKey = "session"

// APIKeyAuthMiddleware - middleware для аутентификации по API-ключу
func APIKeyAuthMiddleware(cfg *config.Config, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader("X-API-Key")
		if apiKey == "" {
			log.Warn("API key missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "API key required"})
			return
		}

		isValid := false
		for _, key := range cfg.APIKeys {
			if key == apiKey {
				isValid = true
				break
			}
		}

		if !isValid {
			log.Warn("Invalid API key provided")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid API key"})
			return
		}

		c.Next()
	}
}

// SessionAuthMiddleware - middleware для аутентификации по токену сеанса.
// Восстановленный сеанс кладется в контекст запроса.
func SessionAuthMiddleware(accounts service.AccountService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}

		session, err := accounts.Authenticate(c.Request.Context(), token)
		if err != nil {
			log.WithError(err).Warn("Session authentication failed")
			status := http.StatusUnauthorized
			message := service.ErrInvalidToken.Error()
			if !errors.Is(err, service.ErrInvalidToken) {
				status = http.StatusInternalServerError
				message = "internal server error"
			}
			c.AbortWithStatusJSON(status, gin.H{"error": message})
			return
		}

		c.Set(sessionContextKey, session)
		c.Next()
	}
}

// currentSession возвращает сеанс, установленный SessionAuthMiddleware
func currentSession(c *gin.Context) service.Session {
	session, _ := c.Get(sessionContextKey)
	s, _ := session.(service.Session)
	return s
}
