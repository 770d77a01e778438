package httpx

import (
	"errors"
	"net/http"

	apperrors "github.com/barberpro/dashboard/internal/errors"
	"github.com/barberpro/dashboard/internal/http/validation"
)

// statusByCode maps application error codes to HTTP statuses.
//
//nolint:gochecknoglobals // static read-only lookup
var statusByCode = map[apperrors.ErrorCode]int{
	apperrors.ErrCodeValidation:           http.StatusBadRequest,
	apperrors.ErrCodeUnauthorized:         http.StatusUnauthorized,
	apperrors.ErrCodeForbidden:            http.StatusForbidden,
	apperrors.ErrCodeNotFound:             http.StatusNotFound,
	apperrors.ErrCodeConflict:             http.StatusConflict,
	apperrors.ErrCodeUpstream:             http.StatusBadGateway,
	apperrors.ErrCodeTimeout:              http.StatusGatewayTimeout,
	apperrors.ErrCodeCanceled:             http.StatusServiceUnavailable,
	apperrors.ErrCodeInternal:             http.StatusInternalServerError,
	apperrors.ErrCodePlanLimitReached:     http.StatusForbidden,
	apperrors.ErrCodePremiumRequired:      http.StatusForbidden,
	apperrors.ErrCodeSubscriptionActive:   http.StatusConflict,
	apperrors.ErrCodeSubscriptionInactive: http.StatusConflict,
}

var errInternal = errors.New("internal server error")

// StatusForError returns the HTTP status for err. Errors without an application
// code are internal.
func StatusForError(err error) int {
	if status, ok := statusByCode[apperrors.GetCode(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// WriteAppError writes err as a JSON error. Only the application message is exposed;
// wrapped causes and non-application errors stay in the logs.
func WriteAppError(w http.ResponseWriter, err error) {
	var appErr *apperrors.AppError
	if !errors.As(err, &appErr) || appErr.Code == apperrors.ErrCodeInternal {
		WriteError(w, ErrorParams{
			Code:    http.StatusInternalServerError,
			ErrCode: string(apperrors.ErrCodeInternal),
			Err:     errInternal,
		})
		return
	}

	WriteError(w, ErrorParams{
		Code:    StatusForError(appErr),
		ErrCode: string(appErr.Code),
		Err:     errors.New(appErr.Message),
		Field:   appErr.Field,
	})
}

// writeValidation writes the first failing field of fv as a 400 response.
func writeValidation(w http.ResponseWriter, fv *validation.FieldValidator) {
	field, msg := fv.First()
	WriteAppError(w, apperrors.ValidationField(field, msg))
}
