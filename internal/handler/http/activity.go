package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) listActivity(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", service.DefaultActivityLimit)
	if err != nil {
		writeBadRequest(w, r, err, "*Handler.listActivity", err.Error())
		return
	}

	logs, err := h.services.ActivityService.List(r.Context(), currentUserID(r), limit)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.listActivity")
		return
	}
	if logs == nil {
		logs = []models.ActivityLog{}
	}

	_, _ = utils.WriteJSON(w, logs, http.StatusOK)
}
