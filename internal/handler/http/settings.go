package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := h.services.SettingsService.Get(r.Context(), currentUserID(r))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.getSettings")
		return
	}
	_, _ = utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	var update models.SettingsUpdate
	if err := utils.DecodeJSON(r, &update); err != nil {
		writeBadRequest(w, r, err, "*Handler.updateSettings", app.MsgValidationError)
		return
	}

	settings, err := h.services.SettingsService.Update(r.Context(), currentUserID(r), update)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.updateSettings")
		return
	}
	_, _ = utils.WriteJSON(w, settings, http.StatusOK)
}

func (h *Handler) updateAvatar(w http.ResponseWriter, r *http.Request) {
	var req models.AvatarRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err, "*Handler.updateAvatar", app.MsgValidationError)
		return
	}

	user, err := h.services.AuthService.UpdateAvatar(r.Context(), currentUserID(r), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.updateAvatar")
		return
	}
	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}
