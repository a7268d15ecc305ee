package handlers

import (
	"errors"
	"io"
	"net/http"

	request "pawnshop/internal/adapter/http/dto/request"
	response "pawnshop/internal/adapter/http/dto/response"
	"pawnshop/internal/adapter/http/middleware"
	"pawnshop/internal/domain/entities"
	"pawnshop/internal/usecase"
	"pawnshop/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidApplicationPayload = pkg.NewDomainErrorSimple("INVALID_APPLICATION_INPUT", "Invalid application payload", http.StatusBadRequest)

// ApplicationHandler handles HTTP requests for the application record
// lifecycle and its live watch streams.
type ApplicationHandler struct {
	usecase usecase.IApplicationUseCase
	watch   usecase.IWatchUseCase
}

func NewApplicationHandler(uc usecase.IApplicationUseCase, watch usecase.IWatchUseCase) *ApplicationHandler {
	return &ApplicationHandler{usecase: uc, watch: watch}
}

// Submit godoc
// @Summary  Submit an item for pawn evaluation
// @Tags     applications
// @Accept   json
// @Produce  json
// @Param    payload body request.SubmitApplicationRequest true "Submission"
// @Success  201 {object} response.ApplicationResponse
// @Failure  400 {object} pkg.HTTPError
// @Router   /applications [post]
func (h *ApplicationHandler) Submit(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		replyError(c, entities.ErrUnauthenticated)
		return
	}

	var payload request.SubmitApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.Submit(c.Request.Context(), principal, usecase.SubmitCommand{
		Category:       payload.Category,
		Comment:        payload.Comment,
		Photos:         payload.Photos,
		IdempotencyKey: payload.IdempotencyKey,
	})
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusCreated, response.FromApplication(app))
}

// List godoc
// @Summary  Current ordered snapshot of applications visible to the caller
// @Tags     applications
// @Produce  json
// @Success  200 {array} response.ApplicationResponse
// @Router   /applications [get]
func (h *ApplicationHandler) List(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		replyError(c, entities.ErrUnauthenticated)
		return
	}

	apps, err := h.usecase.List(c.Request.Context(), principal)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApplications(apps))
}

// GetByID godoc
// @Summary  Point read of one application
// @Tags     applications
// @Produce  json
// @Param    id path string true "Application id"
// @Success  200 {object} response.ApplicationResponse
// @Failure  404 {object} pkg.HTTPError
// @Router   /applications/{id} [get]
func (h *ApplicationHandler) GetByID(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		replyError(c, entities.ErrUnauthenticated)
		return
	}

	app, err := h.usecase.GetByID(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

// Price godoc
// @Summary  Price an application (admin), moving it to awaiting confirmation
// @Tags     applications
// @Accept   json
// @Produce  json
// @Param    id path string true "Application id"
// @Param    payload body request.PriceApplicationRequest true "Offer"
// @Success  200 {object} response.ApplicationResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /applications/{id}/price [patch]
func (h *ApplicationHandler) Price(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		replyError(c, entities.ErrUnauthenticated)
		return
	}

	var payload request.PriceApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.Price(c.Request.Context(), principal, c.Param("id"), payload.Price, payload.AdminComment)
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

// Confirm godoc
// @Summary  Accept the offer (customer), approving the application
// @Tags     applications
// @Accept   json
// @Produce  json
// @Param    id path string true "Application id"
// @Param    payload body request.ConfirmApplicationRequest true "Contact details"
// @Success  200 {object} response.ApplicationResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /applications/{id}/confirm [patch]
func (h *ApplicationHandler) Confirm(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		replyError(c, entities.ErrUnauthenticated)
		return
	}

	var payload request.ConfirmApplicationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidApplicationPayload.HTTPStatus, errInvalidApplicationPayload.ToHTTPError())
		return
	}

	app, err := h.usecase.Confirm(c.Request.Context(), principal, c.Param("id"), entities.ContactDetails{
		FullName:      payload.FullName,
		Phone:         payload.Phone,
		Address:       payload.Address,
		PaymentMethod: payload.PaymentMethod,
	})
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

// Decline godoc
// @Summary  Decline the offer (customer), rejecting the application
// @Tags     applications
// @Produce  json
// @Param    id path string true "Application id"
// @Success  200 {object} response.ApplicationResponse
// @Failure  409 {object} pkg.HTTPError
// @Router   /applications/{id}/decline [patch]
func (h *ApplicationHandler) Decline(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		replyError(c, entities.ErrUnauthenticated)
		return
	}

	app, err := h.usecase.Decline(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		replyError(c, err)
		return
	}
	c.JSON(http.StatusOK, response.FromApplication(app))
}

// WatchByID godoc
// @Summary  Live stream of one application's snapshots (SSE)
// @Tags     applications
// @Produce  text/event-stream
// @Param    id path string true "Application id"
// @Router   /applications/{id}/watch [get]
func (h *ApplicationHandler) WatchByID(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		replyError(c, entities.ErrUnauthenticated)
		return
	}

	snapshots, err := h.watch.WatchByID(c.Request.Context(), principal, c.Param("id"))
	if err != nil {
		replyError(c, err)
		return
	}

	// The stream ends only when the client disconnects (the request
	// context cancels the subscription and the channel closes).
	c.Stream(func(w io.Writer) bool {
		snap, open := <-snapshots
		if !open {
			return false
		}
		if !snap.Found {
			c.SSEvent("snapshot", gin.H{"found": false})
			return true
		}
		c.SSEvent("snapshot", gin.H{"found": true, "application": response.FromApplication(snap.Application)})
		return true
	})
}

// WatchCollection godoc
// @Summary  Live stream of the full ordered application list (SSE)
// @Tags     applications
// @Produce  text/event-stream
// @Router   /applications/watch [get]
func (h *ApplicationHandler) WatchCollection(c *gin.Context) {
	principal, ok := middleware.PrincipalFrom(c)
	if !ok {
		replyError(c, entities.ErrUnauthenticated)
		return
	}

	snapshots, err := h.watch.WatchCollection(c.Request.Context(), principal)
	if err != nil {
		replyError(c, err)
		return
	}

	c.Stream(func(w io.Writer) bool {
		snap, open := <-snapshots
		if !open {
			return false
		}
		c.SSEvent("snapshot", response.FromApplications(snap))
		return true
	})
}

func replyError(c *gin.Context, err error) {
	appErr := mapApplicationError(err)
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func mapApplicationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrInvalidTransition):
		return pkg.NewDomainError("INVALID_TRANSITION", "Application is not in the required status", err, http.StatusConflict)
	case errors.Is(err, entities.ErrApplicationNotFound):
		return pkg.NewDomainErrorSimple("APPLICATION_NOT_FOUND", "Application not found", http.StatusNotFound)
	case errors.Is(err, entities.ErrForbidden):
		return pkg.NewDomainErrorSimple("FORBIDDEN", "Operation not allowed", http.StatusForbidden)
	case errors.Is(err, entities.ErrUnauthenticated):
		return pkg.NewDomainErrorSimple("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	case errors.Is(err, entities.ErrStoreUnavailable):
		return pkg.NewDomainError("STORE_UNAVAILABLE", "Store unavailable, retry later", err, http.StatusServiceUnavailable)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
