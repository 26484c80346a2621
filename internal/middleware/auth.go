package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sinergi-org/sinergi-backend/internal/common"
	"github.com/sinergi-org/sinergi-backend/internal/domain"
	"github.com/sinergi-org/sinergi-backend/pkg/jwt"
)

const actorContextKey = "actor"

// JWTAuth JWT authentication middleware. Builds the domain.Actor consumed
// by authorization checks from verified token claims.
func JWTAuth(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Extract Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			common.ErrorResponse(c, 401, "Header otorisasi tidak ditemukan", nil)
			c.Abort()
			return
		}

		// 2. Parse Bearer token
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			common.ErrorResponse(c, 401, "Format header otorisasi tidak valid", nil)
			c.Abort()
			return
		}

		// 3. Verify token
		claims, err := jwtManager.VerifyToken(parts[1])
		if err != nil {
			if errors.Is(err, jwt.ErrExpiredToken) {
				common.ErrorResponse(c, 401, "Token kedaluwarsa", err)
			} else {
				common.ErrorResponse(c, 401, "Token tidak valid", err)
			}
			c.Abort()
			return
		}

		// 4. Store actor in context
		c.Set(actorContextKey, &domain.Actor{
			MemberID: claims.MemberID,
			Username: claims.Username,
			Role:     claims.Role,
		})

		c.Next()
	}
}

// GetActor extracts the authenticated actor from context; nil when the
// request carried no valid token.
func GetActor(c *gin.Context) *domain.Actor {
	value, exists := c.Get(actorContextKey)
	if !exists {
		return nil
	}
	if actor, ok := value.(*domain.Actor); ok {
		return actor
	}
	return nil
}
