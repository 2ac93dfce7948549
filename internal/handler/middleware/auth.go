package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"care-booking/internal/domain/user"
	"care-booking/internal/handler/httperr"
	"care-booking/internal/pkg/errs"
	"care-booking/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const ctxPrincipalKey = "principal"

var (
	errMissingToken = errs.New("access token required")
	errNoPrincipal  = errs.New("no authenticated principal")
	errRoleDenied   = errs.New("role not allowed")
)

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			httperr.Unauthorized(c, errMissingToken)
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			httperr.Unauthorized(c, err)
			return
		}

		SetPrincipal(c, principal)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func (m *AuthMiddleware) RequireRole(roles ...user.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := GetPrincipal(c)
		if !ok {
			httperr.Unauthorized(c, errNoPrincipal)
			return
		}
		for _, r := range roles {
			if principal.Role() == r {
				c.Next()
				return
			}
		}
		err := errs.Wrapf(errRoleDenied, "role %s", principal.Role())
		httperr.AbortWithError(c, http.StatusForbidden, err, "Forbidden", httperr.Detail{Code: httperr.CodeForbidden})
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if token, ok := strings.CutPrefix(authHeader, "Bearer "); ok {
		return strings.TrimSpace(token)
	}
	return ""
}

func SetPrincipal(c *gin.Context, p user.Principal) {
	c.Set(ctxPrincipalKey, p)
}

func GetPrincipal(c *gin.Context) (user.Principal, bool) {
	v, exists := c.Get(ctxPrincipalKey)
	if !exists {
		return user.Principal{}, false
	}
	p, ok := v.(user.Principal)
	return p, ok
}
