package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Guyuepp/Go-Clean-Architecture-Forum/domain"
	"github.com/Guyuepp/Go-Clean-Architecture-Forum/internal/rest/response"
)

// ContextUserID is the gin context key holding the authenticated user id.
const ContextUserID = "user_id"

// AuthMiddleware rejects requests without a valid "Bearer <access token>" header and
// stores the token's user id under ContextUserID.
func AuthMiddleware(tokens domain.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		scheme, token, ok := strings.Cut(c.GetHeader("Authorization"), " ")
		if !ok || scheme != "Bearer" || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail(domain.ErrMissingAuthentication.Error()))
			return
		}

		userID, err := tokens.VerifyAccessToken(token)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, response.Fail(domain.ErrMissingAuthentication.Error()))
			return
		}

		c.Set(ContextUserID, userID)
		c.Next()
	}
}
