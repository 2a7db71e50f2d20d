package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
	"github.com/MKhiriev/go-pass-vault/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err, "*Handler.register", app.MsgValidationError)
		return
	}

	user, err := h.services.AuthService.Register(r.Context(), req)
	if errors.Is(err, store.ErrAlreadyExists) {
		logger.FromRequest(r).Warn().Err(err).Str("func", "*Handler.register").Msg("email already registered")
		utils.WriteError(w, http.StatusConflict, app.CodeConflict, app.MsgUserAlreadyExists)
		return
	}
	if err != nil {
		writeServiceError(w, r, err, "*Handler.register")
		return
	}

	h.writeSession(w, r, user, http.StatusCreated)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err, "*Handler.login", app.MsgValidationError)
		return
	}

	user, err := h.services.AuthService.Login(r.Context(), req)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.login")
		return
	}

	logger.FromRequest(r).Debug().Int64("user_id", user.ID).Msg("user successfully logged in")
	h.writeSession(w, r, user, http.StatusOK)
}

// writeSession issues a token for user and returns it both in the
// Authorization header and in the body.
func (h *Handler) writeSession(w http.ResponseWriter, r *http.Request, user models.User, status int) {
	token, err := h.services.AuthService.CreateToken(r.Context(), user)
	if err != nil {
		writeServiceError(w, r, err, "*Handler.writeSession")
		return
	}

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	_, _ = utils.WriteJSON(w, models.AuthResponse{Token: token.SignedString, User: user}, status)
}

func (h *Handler) me(w http.ResponseWriter, r *http.Request) {
	user, err := h.services.AuthService.GetUser(r.Context(), currentUserID(r))
	if err != nil {
		writeServiceError(w, r, err, "*Handler.me")
		return
	}
	_, _ = utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	var req models.ChangePasswordRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err, "*Handler.changePassword", app.MsgValidationError)
		return
	}

	if err := h.services.AuthService.ChangePassword(r.Context(), currentUserID(r), req); err != nil {
		writeServiceError(w, r, err, "*Handler.changePassword")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Password changed successfully"}, http.StatusOK)
}

func (h *Handler) deleteAccount(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteAccountRequest
	if err := utils.DecodeJSON(r, &req); err != nil {
		writeBadRequest(w, r, err, "*Handler.deleteAccount", app.MsgValidationError)
		return
	}

	if err := h.services.AuthService.DeleteAccount(r.Context(), currentUserID(r), req); err != nil {
		writeServiceError(w, r, err, "*Handler.deleteAccount")
		return
	}

	_, _ = utils.WriteJSON(w, models.MessageResponse{Message: "Account deleted successfully"}, http.StatusOK)
}
