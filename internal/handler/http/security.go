package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

func (h *Handler) securityReport(w http.ResponseWriter, r *http.Request) {
	report, err := h.services.SecurityService.Report(r.Context(), currentUserID(r))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.securityReport")
		return
	}
	_, _ = utils.WriteJSON(w, report, http.StatusOK)
}
