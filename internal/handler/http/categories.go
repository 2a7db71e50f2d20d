package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.CategoryService.List(r.Context(), currentUserID(r))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.listCategories")
		return
	}
	if categories == nil {
		categories = []models.Category{}
	}

	_, _ = utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var req models.CategoryRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err, "*Handler.createCategory", app.MsgValidationError)
		return
	}

	category, err := h.services.CategoryService.Create(r.Context(), currentUserID(r), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.createCategory")
		return
	}

	_, _ = utils.WriteJSON(w, category, http.StatusCreated)
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, err := pathID(r)
	if err != nil {
		writeBadRequest(w, r, err, "*Handler.deleteCategory", app.MsgInvalidID)
		return
	}

	if err = h.services.CategoryService.Delete(r.Context(), currentUserID(r), categoryID); err != nil {
		writeServiceError(w, r, err, "*Handler.deleteCategory")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Category deleted successfully"}, http.StatusOK)
}
