package httpapi

import (
	"context"
	"errors"
	"net/http"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/valyala/bytebufferpool"

	"github.com/riskibarqy/golf-league/internal/usecase"
)

const (
	googleAPIVersion = "2.0"
	errorDomain      = "golf-league"
)

type googleResponseEnvelope struct {
	APIVersion string           `json:"apiVersion"`
	Data       any              `json:"data,omitempty"`
	Error      *googleErrorBody `json:"error,omitempty"`
}

type googleErrorBody struct {
	Code    int               `json:"code"`
	Message string            `json:"message"`
	Status  string            `json:"status"`
	Errors  []googleErrorItem `json:"errors,omitempty"`
}

type googleErrorItem struct {
	Domain       string `json:"domain"`
	Reason       string `json:"reason"`
	Message      string `json:"message"`
	Location     string `json:"location,omitempty"`
	LocationType string `json:"locationType,omitempty"`
}

type mappedError struct {
	HTTPStatus int
	Reason     string
	Status     string
	// PublicMessage replaces err.Error() in the body when set, so store and
	// driver details never reach the client.
	PublicMessage string
}

var internalError = mappedError{
	HTTPStatus:    http.StatusInternalServerError,
	Reason:        "internalError",
	Status:        "INTERNAL",
	PublicMessage: "internal server error",
}

// errorMappings is checked in order; the first sentinel found in the chain wins.
var errorMappings = []struct {
	target error
	mapped mappedError
}{
	{usecase.ErrInvalidInput, mappedError{HTTPStatus: http.StatusBadRequest, Reason: "invalidInput", Status: "INVALID_ARGUMENT"}},
	{usecase.ErrNotFound, mappedError{HTTPStatus: http.StatusNotFound, Reason: "notFound", Status: "NOT_FOUND"}},
	{usecase.ErrDependencyUnavailable, mappedError{
		HTTPStatus:    http.StatusServiceUnavailable,
		Reason:        "dependencyUnavailable",
		Status:        "UNAVAILABLE",
		PublicMessage: "standings store is unavailable, retry shortly",
	}},
}

var encodeFailureBody = []byte(`{"apiVersion":"2.0","error":{"code":500,"message":"internal server error","status":"INTERNAL"}}` + "\n")

// writeJSON encodes into a pooled buffer first, so headers are only sent once
// the body is known to be complete.
func writeJSON(w http.ResponseWriter, status int, payload any) {
	buf := bytebufferpool.Get()
	defer bytebufferpool.Put(buf)

	w.Header().Set("Content-Type", "application/json")
	if err := sonic.ConfigDefault.NewEncoder(buf).Encode(payload); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write(encodeFailureBody)
		return
	}
	w.WriteHeader(status)
	_, _ = w.Write(buf.B)
}

func writeSuccess(_ context.Context, w http.ResponseWriter, status int, data any) {
	writeJSON(w, status, googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Data:       data,
	})
}

func writeError(ctx context.Context, w http.ResponseWriter, err error) {
	mapped := mapError(ctx, err)
	message := mapped.PublicMessage
	if message == "" {
		message = err.Error()
	}

	items := validationItems(err)
	if len(items) == 0 {
		items = []googleErrorItem{{Domain: errorDomain, Reason: mapped.Reason, Message: message}}
	}
	writeJSON(w, mapped.HTTPStatus, errorEnvelope(mapped, message, items))
}

func writeInternalError(_ context.Context, w http.ResponseWriter) {
	writeJSON(w, internalError.HTTPStatus, errorEnvelope(internalError, internalError.PublicMessage, []googleErrorItem{
		{Domain: errorDomain, Reason: internalError.Reason, Message: internalError.PublicMessage},
	}))
}

func errorEnvelope(mapped mappedError, message string, items []googleErrorItem) googleResponseEnvelope {
	return googleResponseEnvelope{
		APIVersion: googleAPIVersion,
		Error: &googleErrorBody{
			Code:    mapped.HTTPStatus,
			Message: message,
			Status:  mapped.Status,
			Errors:  items,
		},
	}
}

// validationItems turns validator failures into one item per offending query
// parameter.
func validationItems(err error) []googleErrorItem {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return nil
	}

	items := make([]googleErrorItem, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		items = append(items, googleErrorItem{
			Domain:       errorDomain,
			Reason:       "invalidParameter",
			Message:      fe.Field() + " failed " + fe.Tag() + " check",
			Location:     fe.Field(),
			LocationType: "parameter",
		})
	}
	return items
}

// mapError uses cockroachdb's Is so marks added by the usecase layer are seen.
func mapError(_ context.Context, err error) mappedError {
	for _, m := range errorMappings {
		if crerr.Is(err, m.target) {
			return m.mapped
		}
	}
	return internalError
}
