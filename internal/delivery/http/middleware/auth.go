package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gdugdh24/matchcore/internal/domain"
	"github.com/gdugdh24/matchcore/internal/repository"
	"github.com/gdugdh24/matchcore/pkg/logger"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// UserKey is the gin context key holding the authenticated *domain.User.
const UserKey = "user"

type AuthMiddleware struct {
	secret   []byte
	userRepo repository.UserRepository
}

func NewAuthMiddleware(secret string, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{secret: []byte(secret), userRepo: userRepo}
}

// RequireAuth validates the bearer token issued by the identity service and
// loads the caller's user record.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			abortUnauthorized(c, "missing authorization token")
			return
		}

		userID, err := m.verifyToken(parts[1])
		if err != nil {
			abortUnauthorized(c, "invalid token")
			return
		}

		user, err := m.userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				abortUnauthorized(c, "user not found")
				return
			}
			logger.Error(c.Request.Context(), "failed to load user", logger.ErrorField(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": "internal server error", "code": "internal"})
			return
		}

		c.Set(UserKey, user)
		c.Next()
	}
}

func (m *AuthMiddleware) verifyToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", domain.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", domain.ErrInvalidToken
	}
	return userID, nil
}

func abortUnauthorized(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": msg, "code": "unauthorized"})
}

// CurrentUser returns the user stored by RequireAuth.
func CurrentUser(c *gin.Context) (*domain.User, bool) {
	v, exists := c.Get(UserKey)
	if !exists {
		return nil, false
	}
	user, ok := v.(*domain.User)
	return user, ok
}
