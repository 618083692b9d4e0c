package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/zunde-outreach/checkin-api/internal/api/handler/v1/response"
	"github.com/zunde-outreach/checkin-api/internal/pkg/jwthelper"
	"github.com/zunde-outreach/checkin-api/internal/service"
)

// ClaimsKey is the gin context key holding the *jwthelper.StaffClaims of an
// authenticated request.
const ClaimsKey = "staffClaims"

type Authenticator struct {
	signingKey string
}

func NewAuthenticator(signingKey string) *Authenticator {
	return &Authenticator{
		signingKey: signingKey,
	}
}

// VerifyJWT only lets through requests carrying a valid staff bearer token.
func (a *Authenticator) VerifyJWT() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		header := ctx.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(header, "Bearer ")
		if !found || strings.TrimSpace(tokenString) == "" {
			response.RenderErr(ctx, response.ErrUnauthorized("Missing bearer token"))
			return
		}

		claims, err := jwthelper.ParseToken(a.signingKey, strings.TrimSpace(tokenString))
		if err != nil {
			zap.L().Debug("rejected token", zap.Error(err))
			response.RenderErr(ctx, response.ErrUnauthorized("Invalid or expired token"))
			return
		}

		if claims.Role != service.RoleStaff {
			response.RenderErr(ctx, response.ErrPermissionDenied(nil))
			return
		}

		ctx.Set(ClaimsKey, claims)
		ctx.Next()
	}
}
