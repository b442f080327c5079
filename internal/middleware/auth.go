package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v4"

	"github.com/himanshu-suthar-simform/skillswap/internal/utils/logger"
	"github.com/himanshu-suthar-simform/skillswap/internal/view"
)

// ActorIDKey is the gin context key holding the authenticated user id.
const ActorIDKey = "actor_id"

// Auth validates the bearer token issued by the identity service and
// resolves the acting user. The engine below this point only ever sees
// the trusted actor id, never ambient identity state.
func Auth(jwtSecret string, logger *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				view.ErrorResponse{Error: "missing or malformed bearer token"})
			return
		}

		tokenString := strings.TrimPrefix(header, "Bearer ")
		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return []byte(jwtSecret), nil
		})
		if err != nil || !token.Valid {
			logger.Debug("rejected bearer token", map[string]string{
				"path": c.FullPath(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				view.ErrorResponse{Error: "invalid or expired token"})
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				view.ErrorResponse{Error: "invalid token claims"})
			return
		}
		userID, ok := claims["user_id"].(float64)
		if !ok || userID <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				view.ErrorResponse{Error: "token carries no user identity"})
			return
		}

		c.Set(ActorIDKey, uint(userID))
		c.Next()
	}
}

// ActorID returns the authenticated user id set by Auth, or 0 when the
// request is unauthenticated.
func ActorID(c *gin.Context) uint {
	value, exists := c.Get(ActorIDKey)
	if !exists {
		return 0
	}
	id, _ := value.(uint)
	return id
}
