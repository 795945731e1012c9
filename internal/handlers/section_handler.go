package handlers

import (
	"net/http"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin"
	"github.com/justsurfingit/applytrack/internal/dtos"
	"github.com/justsurfingit/applytrack/internal/services"
	"github.com/justsurfingit/applytrack/internal/validation"
	"go.uber.org/zap"
)

type SectionHandler struct {
	store SectionStore
	log   *zap.SugaredLogger
}

func NewSectionHandler(store SectionStore, log *zap.SugaredLogger) *SectionHandler {
	return &SectionHandler{store: store, log: log}
}

// List is GET /api/v1/sections — all of the user's sections with their
// application counts, ordered by name.
func (h *SectionHandler) List(c *gin.Context) {
	user := currentUser(c)

	sections, err := h.store.ListWithCounts(c.Request.Context(), user.ID)
	if err != nil {
		h.log.Errorw("list sections failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, dtos.ActionError{Error: "Failed to load sections. Please refresh the page."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"sections": sections})
}

// Create is POST /api/v1/sections.
func (h *SectionHandler) Create(c *gin.Context) {
	user := currentUser(c)

	var form dtos.SectionForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dtos.ActionError{Error: "Invalid request format."})
		return
	}

	name, fieldErrs := validation.ParseSectionName(form.Name)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, dtos.ActionError{
			Error:       "Please fix the errors below.",
			FieldErrors: fieldErrs,
		})
		return
	}

	section, err := h.store.Create(c.Request.Context(), user.ID, name)
	if errors.Is(err, services.ErrSectionNameTaken) {
		c.JSON(http.StatusBadRequest, sectionNameTakenError())
		return
	}
	if err != nil {
		h.log.Errorw("create section failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, dtos.ActionError{Error: "Failed to create section. Please try again."})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"section": section})
}

// Rename is PATCH /api/v1/sections/:id — the inline rename target. The
// client applies the new name optimistically; this endpoint's field error is
// what it re-attaches to the input after rolling back.
func (h *SectionHandler) Rename(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	var form dtos.SectionForm
	if err := c.ShouldBind(&form); err != nil {
		c.JSON(http.StatusBadRequest, dtos.ActionError{Error: "Invalid request format."})
		return
	}

	name, fieldErrs := validation.ParseSectionName(form.Name)
	if fieldErrs != nil {
		c.JSON(http.StatusBadRequest, dtos.ActionError{
			Error:       "Please fix the errors below.",
			FieldErrors: fieldErrs,
		})
		return
	}

	section, err := h.store.Rename(c.Request.Context(), user.ID, id, name)
	switch {
	case errors.Is(err, services.ErrSectionNameTaken):
		c.JSON(http.StatusBadRequest, sectionNameTakenError())
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dtos.ActionError{Error: "Section not found."})
	case err != nil:
		h.log.Errorw("rename section failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, dtos.ActionError{Error: "Failed to rename section. Please try again."})
	default:
		c.JSON(http.StatusOK, gin.H{"section": section})
	}
}

// Delete is DELETE /api/v1/sections/:id. Applications in the section are
// unsectioned, not deleted.
func (h *SectionHandler) Delete(c *gin.Context) {
	user := currentUser(c)
	id, ok := pathID(c)
	if !ok {
		return
	}

	err := h.store.Delete(c.Request.Context(), user.ID, id)
	switch {
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, dtos.ActionError{Error: "Section not found."})
	case err != nil:
		h.log.Errorw("delete section failed", "error", err, "user_id", user.ID)
		c.JSON(http.StatusInternalServerError, dtos.ActionError{Error: "Failed to delete section. Please try again."})
	default:
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

func sectionNameTakenError() dtos.ActionError {
	return dtos.ActionError{
		Error:       "Please fix the errors below.",
		FieldErrors: map[string]string{validation.FieldName: "A section with this name already exists"},
	}
}
