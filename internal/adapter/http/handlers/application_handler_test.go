package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pawnshop/internal/adapter/http/handlers/mocks"
	"pawnshop/internal/domain/entities"
	"pawnshop/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

var (
	customer = entities.Principal{UserID: "user-1"}
	admin    = entities.Principal{UserID: "admin-1", IsAdmin: true}
)

func newTestRouter(h *ApplicationHandler, principal *entities.Principal) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if principal != nil {
		p := *principal
		r.Use(func(c *gin.Context) { c.Set("principal", p) })
	}
	g := r.Group("/v1/applications")
	g.POST("", h.Submit)
	g.GET("", h.List)
	g.GET("/watch", h.WatchCollection)
	g.GET("/:id", h.GetByID)
	g.GET("/:id/watch", h.WatchByID)
	g.PATCH("/:id/price", h.Price)
	g.PATCH("/:id/confirm", h.Confirm)
	g.PATCH("/:id/decline", h.Decline)
	return r
}

func newHandler(t *testing.T) (*ApplicationHandler, *mocks.MockIApplicationUseCase, *mocks.MockIWatchUseCase) {
	t.Helper()
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockIApplicationUseCase(ctrl)
	watch := mocks.NewMockIWatchUseCase(ctrl)
	return NewApplicationHandler(uc, watch), uc, watch
}

// closeNotifyRecorder adds the http.CloseNotifier implementation that
// gin's Context.Stream requires and httptest.ResponseRecorder lacks.
type closeNotifyRecorder struct {
	*httptest.ResponseRecorder
	closed chan bool
}

func (c *closeNotifyRecorder) CloseNotify() <-chan bool { return c.closed }

func doRequest(r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := &closeNotifyRecorder{httptest.NewRecorder(), make(chan bool, 1)}
	r.ServeHTTP(w, req)
	return w.ResponseRecorder
}

func TestApplicationHandler_Submit(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		h, uc, _ := newHandler(t)
		uc.EXPECT().Submit(gomock.Any(), customer, gomock.AssignableToTypeOf(usecase.SubmitCommand{})).DoAndReturn(
			func(_ context.Context, _ entities.Principal, cmd usecase.SubmitCommand) (entities.Application, error) {
				if cmd.Category != "Electronics" || cmd.Comment != "old laptop" {
					t.Fatalf("unexpected command: %+v", cmd)
				}
				return entities.Application{ID: "app-1", UserID: "user-1", Category: cmd.Category, Comment: cmd.Comment, Status: entities.StatusUnderReview}, nil
			},
		)

		w := doRequest(newTestRouter(h, &customer), http.MethodPost, "/v1/applications", gin.H{
			"category": "Electronics",
			"comment":  "old laptop",
		})

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var got map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
			t.Fatalf("invalid response body: %v", err)
		}
		if got["id"] != "app-1" || got["status"] != string(entities.StatusUnderReview) {
			t.Fatalf("unexpected body: %v", got)
		}
	})

	t.Run("malformed payload", func(t *testing.T) {
		h, _, _ := newHandler(t)
		r := newTestRouter(h, &customer)

		req := httptest.NewRequest(http.MethodPost, "/v1/applications", strings.NewReader("{not json"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("domain validation failure", func(t *testing.T) {
		h, uc, _ := newHandler(t)
		uc.EXPECT().Submit(gomock.Any(), customer, gomock.Any()).
			Return(entities.Application{}, entities.ErrValidation)

		w := doRequest(newTestRouter(h, &customer), http.MethodPost, "/v1/applications", gin.H{
			"category": "Spaceships",
			"comment":  "x",
		})

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("no principal", func(t *testing.T) {
		h, _, _ := newHandler(t)
		w := doRequest(newTestRouter(h, nil), http.MethodPost, "/v1/applications", gin.H{
			"category": "Electronics",
			"comment":  "old laptop",
		})
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})
}

func TestApplicationHandler_List(t *testing.T) {
	h, uc, _ := newHandler(t)
	uc.EXPECT().List(gomock.Any(), admin).Return([]entities.Application{
		{ID: "app-1", Status: entities.StatusUnderReview},
		{ID: "app-2", Status: entities.StatusApproved},
	}, nil)

	w := doRequest(newTestRouter(h, &admin), http.MethodGet, "/v1/applications", nil)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var got []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if len(got) != 2 || got[0]["id"] != "app-1" {
		t.Fatalf("unexpected body: %v", got)
	}
}

func TestApplicationHandler_GetByID(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		h, uc, _ := newHandler(t)
		uc.EXPECT().GetByID(gomock.Any(), customer, "app-1").
			Return(entities.Application{ID: "app-1", UserID: "user-1", Status: entities.StatusUnderReview}, nil)

		w := doRequest(newTestRouter(h, &customer), http.MethodGet, "/v1/applications/app-1", nil)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		h, uc, _ := newHandler(t)
		uc.EXPECT().GetByID(gomock.Any(), customer, "ghost").
			Return(entities.Application{}, entities.ErrApplicationNotFound)

		w := doRequest(newTestRouter(h, &customer), http.MethodGet, "/v1/applications/ghost", nil)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("foreign record", func(t *testing.T) {
		h, uc, _ := newHandler(t)
		uc.EXPECT().GetByID(gomock.Any(), customer, "app-9").
			Return(entities.Application{}, entities.ErrForbidden)

		w := doRequest(newTestRouter(h, &customer), http.MethodGet, "/v1/applications/app-9", nil)
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestApplicationHandler_Price(t *testing.T) {
	t.Run("priced", func(t *testing.T) {
		h, uc, _ := newHandler(t)
		price := 50000.0
		uc.EXPECT().Price(gomock.Any(), admin, "app-1", price, "fair condition").
			Return(entities.Application{ID: "app-1", Status: entities.StatusAwaitingConfirmation, Price: &price}, nil)

		w := doRequest(newTestRouter(h, &admin), http.MethodPatch, "/v1/applications/app-1/price", gin.H{
			"price":         price,
			"admin_comment": "fair condition",
		})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("customer forbidden", func(t *testing.T) {
		h, uc, _ := newHandler(t)
		uc.EXPECT().Price(gomock.Any(), customer, "app-1", 100.0, "ok").
			Return(entities.Application{}, entities.ErrForbidden)

		w := doRequest(newTestRouter(h, &customer), http.MethodPatch, "/v1/applications/app-1/price", gin.H{
			"price":         100.0,
			"admin_comment": "ok",
		})
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("already priced", func(t *testing.T) {
		h, uc, _ := newHandler(t)
		uc.EXPECT().Price(gomock.Any(), admin, "app-1", 100.0, "ok").
			Return(entities.Application{}, entities.ErrInvalidTransition)

		w := doRequest(newTestRouter(h, &admin), http.MethodPatch, "/v1/applications/app-1/price", gin.H{
			"price":         100.0,
			"admin_comment": "ok",
		})
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestApplicationHandler_Confirm(t *testing.T) {
	contact := gin.H{
		"full_name":      "A A",
		"phone":          "7001234567",
		"address":        "Abay ave 1",
		"payment_method": "cash",
	}

	t.Run("approved", func(t *testing.T) {
		h, uc, _ := newHandler(t)
		uc.EXPECT().Confirm(gomock.Any(), customer, "app-1", entities.ContactDetails{
			FullName:      "A A",
			Phone:         "7001234567",
			Address:       "Abay ave 1",
			PaymentMethod: "cash",
		}).Return(entities.Application{ID: "app-1", Status: entities.StatusApproved}, nil)

		w := doRequest(newTestRouter(h, &customer), http.MethodPatch, "/v1/applications/app-1/confirm", contact)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
	})

	t.Run("not yet priced", func(t *testing.T) {
		h, uc, _ := newHandler(t)
		uc.EXPECT().Confirm(gomock.Any(), customer, "app-1", gomock.Any()).
			Return(entities.Application{}, entities.ErrInvalidTransition)

		w := doRequest(newTestRouter(h, &customer), http.MethodPatch, "/v1/applications/app-1/confirm", contact)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestApplicationHandler_Decline(t *testing.T) {
	h, uc, _ := newHandler(t)
	uc.EXPECT().Decline(gomock.Any(), customer, "app-1").
		Return(entities.Application{ID: "app-1", Status: entities.StatusRejected}, nil)

	w := doRequest(newTestRouter(h, &customer), http.MethodPatch, "/v1/applications/app-1/decline", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestApplicationHandler_WatchByID(t *testing.T) {
	t.Run("streams snapshots as SSE", func(t *testing.T) {
		h, _, watch := newHandler(t)
		snapshots := make(chan usecase.ApplicationSnapshot, 2)
		snapshots <- usecase.ApplicationSnapshot{Application: entities.Application{ID: "app-1", Status: entities.StatusUnderReview}, Found: true}
		snapshots <- usecase.ApplicationSnapshot{Found: false}
		close(snapshots)
		watch.EXPECT().WatchByID(gomock.Any(), customer, "app-1").
			Return((<-chan usecase.ApplicationSnapshot)(snapshots), nil)

		w := doRequest(newTestRouter(h, &customer), http.MethodGet, "/v1/applications/app-1/watch", nil)

		body := w.Body.String()
		if !strings.Contains(body, "event:snapshot") {
			t.Fatalf("expected SSE snapshot events, got %q", body)
		}
		if !strings.Contains(body, `"found":true`) || !strings.Contains(body, `"found":false`) {
			t.Fatalf("expected both snapshots in the stream, got %q", body)
		}
	})

	t.Run("subscription failure", func(t *testing.T) {
		h, _, watch := newHandler(t)
		watch.EXPECT().WatchByID(gomock.Any(), customer, "app-1").
			Return(nil, errors.New("redis down"))

		w := doRequest(newTestRouter(h, &customer), http.MethodGet, "/v1/applications/app-1/watch", nil)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestApplicationHandler_WatchCollection(t *testing.T) {
	h, _, watch := newHandler(t)
	snapshots := make(chan []entities.Application, 1)
	snapshots <- []entities.Application{{ID: "app-1", Status: entities.StatusUnderReview}}
	close(snapshots)
	watch.EXPECT().WatchCollection(gomock.Any(), admin).
		Return((<-chan []entities.Application)(snapshots), nil)

	w := doRequest(newTestRouter(h, &admin), http.MethodGet, "/v1/applications/watch", nil)

	body := w.Body.String()
	if !strings.Contains(body, "event:snapshot") || !strings.Contains(body, `"id":"app-1"`) {
		t.Fatalf("unexpected stream body: %q", body)
	}
}
