package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"hive/internal/errs"
)

// MustAuthenticateMiddleware verifies the bearer token and stores the
// caller's identity on the context for downstream handlers.
func (rh *RestHandler) MustAuthenticateMiddleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		token := ctx.GetHeader("Authorization")
		if strings.HasPrefix(token, "Bearer ") {
			token = strings.TrimPrefix(token, "Bearer ")
		}

		if token == "" {
			respondError(ctx, errs.ErrNoToken)
			return
		}

		claims, err := rh.authService.VerifyToken(token)
		if err != nil {
			respondError(ctx, err)
			return
		}

		ctx.Set("user_id", claims.ID)
		ctx.Set("user_email", claims.Email)
		ctx.Set("user_first_name", claims.FirstName)
		ctx.Set("user_last_name", claims.LastName)
		ctx.Next()
	}
}
