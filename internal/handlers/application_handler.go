package handlers

import (
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/justsurfingit/applytrack/internal/dtos"
	"github.com/justsurfingit/applytrack/internal/services"
	"github.com/justsurfingit/applytrack/internal/validation"
	"github.com/justsurfingit/applytrack/internal/view"
	"go.uber.org/zap"
)

const genericSaveError = "Something went wrong. Your changes were not saved. Please try again."

type ApplicationHandler struct {
	store ApplicationStore
	log   *zap.SugaredLogger
}

func NewApplicationHandler(store ApplicationStore, log *zap.SugaredLogger) *ApplicationHandler {
	return &ApplicationHandler{store: store, log: log}
}

// List is GET /api/v1/applications. The optional ?view=by_section query
// switches the response to the grouped projection; both views are computed
// over the same date-applied-descending fetch.
func (h *ApplicationHandler) List(c *gin.Context) {
	user := currentUser(c)

	apps, err := h.store.List(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Errorw("list applications failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, dtos.ActionError{Error: "Failed to load applications. Please refresh the page."})
		return
	}

	mode := view.ParseMode(c.Query("view"))
	if mode == view.ModeBySection {
		c.JSON(http.StatusOK, gin.H{
			"view":   mode,
			"groups": view.GroupBySection(apps),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"view":         mode,
		"applications": apps,
	})
}

// Get is GET /api/v1/applications/:id.
func (h *ApplicationHandler) Get(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	app, err := h.store.Get(c.Request.Context(), user.ID, id)
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, dtos.ActionError{Error: "Application not found."})
		return
	}
	if err != nil {
		h.log.Errorw("get application failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, dtos.ActionError{Error: "Failed to load applications. Please refresh the page."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"application": app})
}

// Create is POST /api/v1/applications. Validation runs before any
// persistence call; its field errors come back in the error envelope.
func (h *ApplicationHandler) Create(c *gin.Context) {
	user := currentUser(c)

	var form dtos.ApplicationForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dtos.ActionError{Error: "Invalid request format."})
		return
	}

	in, fieldErrs := validation.ParseApplication(form, time.Now())
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, dtos.ActionError{
			Error:       "Please fix the errors below.",
			FieldErrors: fieldErrs,
		})
		return
	}

	app, err := h.store.Create(c.Request.Context(), user.ID, in)
	if errors.Is(err, services.ErrSectionNotFound) {
		c.JSON(http.StatusBadRequest, dtos.ActionError{
			Error:       "Please fix the errors below.",
			FieldErrors: map[string]string{validation.FieldSectionID: "Invalid section"},
		})
		return
	}
	if err != nil {
		h.log.Errorw("create application failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, dtos.ActionError{Error: genericSaveError})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"application": app})
}

// Update is PUT /api/v1/applications/:id. Same validation as Create.
func (h *ApplicationHandler) Update(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form dtos.ApplicationForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dtos.ActionError{Error: "Invalid request format."})
		return
	}

	in, fieldErrs := validation.ParseApplication(form, time.Now())
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, dtos.ActionError{
			Error:       "Please fix the errors below.",
			FieldErrors: fieldErrs,
		})
		return
	}

	app, err := h.store.Update(c.Request.Context(), user.ID, id, in)
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dtos.ActionError{Error: "Application not found."})
	case errors.Is(err, services.ErrSectionNotFound):
		c.JSON(http.StatusBadRequest, dtos.ActionError{
			Error:       "Please fix the errors below.",
			FieldErrors: map[string]string{validation.FieldSectionID: "Invalid section"},
		})
	case err != nil:
		h.log.Errorw("update application failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, dtos.ActionError{Error: genericSaveError})
	default:
		c.JSON(http.StatusOK, gin.H{"application": app})
	}
}

// UpdateStatus is PATCH /api/v1/applications/:id/status — a targeted
// single-column update used by the inline status selector.
func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form dtos.StatusForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dtos.ActionError{Error: "Invalid request format."})
		return
	}

	status, valid := validation.ParseStatus(form.Status)
	if !valid {
		c.JSON(http.StatusBadRequest, dtos.ActionError{Error: "Invalid status value."})
		return
	}

	err := h.store.UpdateStatus(c.Request.Context(), user.ID, id, status)
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dtos.ActionError{Error: "Application not found."})
	case err != nil:
		h.log.Errorw("update status failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, dtos.ActionError{Error: "Something went wrong. The status could not be updated. Please try again."})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// Delete is DELETE /api/v1/applications/:id.
func (h *ApplicationHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.store.Delete(c.Request.Context(), user.ID, id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dtos.ActionError{Error: "Application not found."})
	case err != nil:
		h.log.Errorw("delete application failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, dtos.ActionError{Error: "Something went wrong. The application could not be deleted. Please try again."})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// pathID parses the :id route parameter, replying 404 on malformed ids so
// they are indistinguishable from missing records.
func pathID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, dtos.ActionError{Error: "Not found."})
		return uuid.Nil, false
	}
	return id, true
}
