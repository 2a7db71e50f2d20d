package http

import (
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

// generate accepts a policy; an empty body means the default policy.
func (h *Handler) generate(w http.ResponseWriter, r *http.Request) {
	policy := models.DefaultPasswordPolicy()
	if r.ContentLength != 0 {
		if err := utils.DecodeJSON(r, &policy); err != nil {
			writeBadRequest(w, r, err, "*Handler.generate", app.MsgValidationError)
			return
		}
	}

	generated, err := h.services.GeneratorService.Generate(r.Context(), policy)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.generate")
		return
	}
	_, _ = utils.WriteJSON(w, generated, http.StatusOK)
}

func (h *Handler) strength(w http.ResponseWriter, r *http.Request) {
	var req models.StrengthRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err, "*Handler.strength", app.MsgValidationError)
		return
	}

	_, _ = utils.WriteJSON(w, h.services.GeneratorService.Strength(r.Context(), req.Password), http.StatusOK)
}
