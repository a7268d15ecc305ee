package middleware

import (
	"errors"
	"net/http"
	"strings"

	"pawnshop/internal/domain/entities"
	"pawnshop/internal/usecase/interfaces"
	"pawnshop/pkg"

	"github.com/gin-gonic/gin"
)

const principalContextKey = "principal"

// Identity resolves the bearer token to a principal and attaches it to
// the request context. Requests without a resolvable principal never
// reach a handler.
func Identity(resolver interfaces.IIdentityResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, err := resolver.CurrentPrincipal(c.Request.Context(), bearerToken(c))
		if err != nil {
			appErr := pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
			if !errors.Is(err, entities.ErrUnauthenticated) {
				appErr = pkg.NewDomainError("STORE_UNAVAILABLE", "Identity store unavailable", err, http.StatusServiceUnavailable)
			}
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
			return
		}
		c.Set(principalContextKey, principal)
		c.Next()
	}
}

// PrincipalFrom returns the principal the Identity middleware attached.
func PrincipalFrom(c *gin.Context) (entities.Principal, bool) {
	v, ok := c.Get(principalContextKey)
	if !ok {
		return entities.Principal{}, false
	}
	principal, ok := v.(entities.Principal)
	return principal, ok
}

func bearerToken(c *gin.Context) string {
	header := c.GetHeader("Authorization")
	if token, found := strings.CutPrefix(header, "Bearer "); found {
		return strings.TrimSpace(token)
	}
	return ""
}
