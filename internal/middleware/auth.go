package middleware

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/mdhnkumar/faculty-econtent/internal/service"
	"github.com/mdhnkumar/faculty-econtent/pkg/response"
)

type AuthMiddleware struct {
	authService service.AuthService
	secret      []byte
}

func NewAuthMiddleware(authService service.AuthService, secret string) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		secret:      []byte(secret),
	}
}

// RequireAuth gates every mutating admin endpoint. It rejects before the
// handler runs, so an unauthorized request can never produce a side effect.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := ""
		authHeader := c.GetHeader("Authorization")

		if authHeader != "" {
			parts := strings.Split(authHeader, " ")
			if len(parts) == 2 && parts[0] == "Bearer" {
				tokenString = parts[1]
			}
		}

		if tokenString == "" {
			response.ErrorMessage(c, http.StatusUnauthorized, "not authorized, no token")
			c.Abort()
			return
		}

		token, err := jwt.ParseWithClaims(tokenString, &jwt.RegisteredClaims{}, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return m.secret, nil
		})

		if err != nil || !token.Valid {
			response.ErrorMessage(c, http.StatusUnauthorized, "not authorized, token failed")
			c.Abort()
			return
		}

		claims, ok := token.Claims.(*jwt.RegisteredClaims)
		if !ok {
			response.ErrorMessage(c, http.StatusUnauthorized, "not authorized, token failed")
			c.Abort()
			return
		}

		// A valid signature is not enough: the bound account must still exist.
		user, err := m.authService.FindUserByID(c.Request.Context(), claims.Subject)
		if err != nil {
			response.ErrorMessage(c, http.StatusUnauthorized, "user not found")
			c.Abort()
			return
		}

		c.Set("user_id", user.ID)
		c.Next()
	}
}
