package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) listItems(w http.ResponseWriter, r *http.Request) {
	filter := models.VaultFilter{
		UserID:       currentUserID(r),
		FavoriteOnly: r.URL.Query().Get("isFavorite") == "true",
	}

	// an empty categoryId means no category filter
	var ref models.CategoryRef
	if raw := r.URL.Query().Get("categoryId"); raw != "" {
		if err := ref.UnmarshalJSON([]byte(raw)); err != nil || ref.ID == nil || *ref.ID <= 0 {
			writeBadRequest(w, r, err, "*Handler.listItems", app.MsgInvalidID)
			return
		}
		filter.CategoryID = ref.ID
	}

	items, err := h.services.VaultService.List(r.Context(), filter)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.listItems")
		return
	}

	_, _ = utils.WriteJSON(w, models.VaultListResponse{Items: items, Total: len(items)}, http.StatusOK)
}

func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r)
	if err != nil {
		writeBadRequest(w, r, err, "*Handler.getItem", app.MsgInvalidID)
		return
	}

	item, err := h.services.VaultService.Get(r.Context(), currentUserID(r), itemID)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getItem")
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) createItem(w http.ResponseWriter, r *http.Request) {
	var req models.VaultItemRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err, "*Handler.createItem", app.MsgValidationError)
		return
	}

	item, err := h.services.VaultService.Create(r.Context(), currentUserID(r), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.createItem")
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusCreated)
}

func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r)
	if err != nil {
		writeBadRequest(w, r, err, "*Handler.updateItem", app.MsgInvalidID)
		return
	}

	var req models.VaultItemRequest
	if err = utils.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err, "*Handler.updateItem", app.MsgValidationError)
		return
	}

	item, err := h.services.VaultService.Update(r.Context(), currentUserID(r), itemID, req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.updateItem")
		return
	}

	_, _ = utils.WriteJSON(w, item, http.StatusOK)
}

func (h *Handler) deleteItem(w http.ResponseWriter, r *http.Request) {
	itemID, err := pathID(r)
	if err != nil {
		writeBadRequest(w, r, err, "*Handler.deleteItem", app.MsgInvalidID)
		return
	}

	if err = h.services.VaultService.Delete(r.Context(), currentUserID(r), itemID); err != nil {
		writeServiceError(w, r, err, "*Handler.deleteItem")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Item deleted successfully"}, http.StatusOK)
}
