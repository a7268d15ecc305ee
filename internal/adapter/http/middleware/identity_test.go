package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"pawnshop/internal/domain/entities"
	mock_interfaces "pawnshop/internal/usecase/interfaces/mocks"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newIdentityRouter(t *testing.T) (*gin.Engine, *mock_interfaces.MockIIdentityResolver) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	resolver := mock_interfaces.NewMockIIdentityResolver(ctrl)

	r := gin.New()
	r.Use(Identity(resolver))
	r.GET("/whoami", func(c *gin.Context) {
		principal, ok := PrincipalFrom(c)
		if !ok {
			c.AbortWithStatus(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": principal.UserID, "is_admin": principal.IsAdmin})
	})
	return r, resolver
}

func get(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdentity(t *testing.T) {
	t.Run("resolved principal reaches the handler", func(t *testing.T) {
		r, resolver := newIdentityRouter(t)
		resolver.EXPECT().CurrentPrincipal(gomock.Any(), "user-token").
			Return(entities.Principal{UserID: "user-1"}, nil)

		w := get(r, "Bearer user-token")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("missing header", func(t *testing.T) {
		r, resolver := newIdentityRouter(t)
		resolver.EXPECT().CurrentPrincipal(gomock.Any(), "").
			Return(entities.Principal{}, entities.ErrUnauthenticated)

		w := get(r, "")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("unknown token", func(t *testing.T) {
		r, resolver := newIdentityRouter(t)
		resolver.EXPECT().CurrentPrincipal(gomock.Any(), "bogus").
			Return(entities.Principal{}, entities.ErrUnauthenticated)

		w := get(r, "Bearer bogus")
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("identity store down", func(t *testing.T) {
		r, resolver := newIdentityRouter(t)
		resolver.EXPECT().CurrentPrincipal(gomock.Any(), "user-token").
			Return(entities.Principal{}, entities.ErrStoreUnavailable)

		w := get(r, "Bearer user-token")
		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})
}
