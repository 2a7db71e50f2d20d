package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-pass-vault/internal/app"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/internal/store"
	"github.com/MKhiriev/go-pass-vault/internal/utils"
)

type errorReply struct {
	target  error
	status  int
	code    string
	message string
}

// errorReplies is checked in order; the first match wins. Store errors can
// wrap several sentinels at once, so ErrUnavailable comes before the
// generic query errors.
var errorReplies = []errorReply{
	{service.ErrInvalidCredentials, http.StatusUnauthorized, app.CodeUnauthorized, app.MsgInvalidCredentials},
	{service.ErrTokenIsExpiredOrInvalid, http.StatusUnauthorized, app.CodeUnauthorized, app.MsgTokenInvalid},
	{service.ErrWrongPassword, http.StatusBadRequest, app.CodeValidationError, app.MsgWrongPassword},
	{service.ErrInvalidCategory, http.StatusBadRequest, app.CodeValidationError, app.MsgInvalidCategory},
	{service.ErrInvalidDataProvided, http.StatusBadRequest, app.CodeValidationError, app.MsgValidationError},

	{store.ErrVaultChanged, http.StatusConflict, app.CodeConflict, app.MsgVaultChanged},
	{store.ErrNotFound, http.StatusNotFound, app.CodeNotFound, app.MsgNotFound},
	{store.ErrAlreadyExists, http.StatusConflict, app.CodeConflict, app.MsgAlreadyExists},
	{store.ErrUnavailable, http.StatusServiceUnavailable, app.CodeDatabaseError, app.MsgDatabaseError},

	{store.ErrBuildingSQLQuery, http.StatusInternalServerError, app.CodeDatabaseError, app.MsgDatabaseError},
	{store.ErrExecutingQuery, http.StatusInternalServerError, app.CodeDatabaseError, app.MsgDatabaseError},
	{store.ErrExecutingStatement, http.StatusInternalServerError, app.CodeDatabaseError, app.MsgDatabaseError},
	{store.ErrBeginningTransaction, http.StatusInternalServerError, app.CodeDatabaseError, app.MsgDatabaseError},
	{store.ErrCommitingTransaction, http.StatusInternalServerError, app.CodeDatabaseError, app.MsgDatabaseError},
	{store.ErrScanningRow, http.StatusInternalServerError, app.CodeDatabaseError, app.MsgDatabaseError},
	{store.ErrScanningRows, http.StatusInternalServerError, app.CodeDatabaseError, app.MsgDatabaseError},
}

// replyFromError picks the status, code and client message for err.
// Validation errors carry their own message; anything unknown is a 500.
func replyFromError(err error) (int, string, string) {
	var validationErr *service.ValidationError
	if errors.As(err, &validationErr) {
		return http.StatusBadRequest, app.CodeValidationError, validationErr.Error()
	}

	for _, reply := range errorReplies {
		if errors.Is(err, reply.target) {
			return reply.status, reply.code, reply.message
		}
	}
	return http.StatusInternalServerError, app.CodeServerError, app.MsgServerError
}

// writeServiceError logs err and writes the matching error response. The
// raw error text stays in the log.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, funcName string) {
	status, code, message := replyFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", funcName).Int("status", status).Msg("request failed")
	} else {
		log.Warn().Err(err).Str("func", funcName).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, status, code, message)
}

func writeBadRequest(w http.ResponseWriter, r *http.Request, err error, funcName, message string) {
	logger.FromRequest(r).Warn().Err(err).Str("func", funcName).Msg("bad request")
	utils.WriteError(w, http.StatusBadRequest, app.CodeValidationError, message)
}

func notFound(w http.ResponseWriter, _ *http.Request) {
	utils.WriteError(w, http.StatusNotFound, app.CodeNotFound, app.MsgNotFound)
}
