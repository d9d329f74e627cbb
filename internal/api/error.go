package api

// error.go is the single place where transport failures become the typed
// error that crosses the services boundary. Nothing upstream re-wraps it;
// presentation reads FriendlyMessage and shows it verbatim.

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// Error codes, kept close to the wire-level failure that produced them.
const (
	CodeBadRequest  = "ERR_BAD_REQUEST"
	CodeBadResponse = "ERR_BAD_RESPONSE"
	CodeNetwork     = "ERR_NETWORK"
	CodeTimeout     = "ETIMEDOUT"
	CodeUnknown     = "UNKNOWN_ERROR"
)

// Error is the normalized error for every failed API call.
type Error struct {
	Status          int             // HTTP status, 0 when no response arrived
	Code            string          // machine-readable failure class
	Data            json.RawMessage // raw server payload, if any
	Message         string          // developer-facing detail
	FriendlyMessage string          // user-facing text, shown verbatim
	Context         string          // caller-supplied label, diagnostics only
}

func (e *Error) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s: %s", e.Context, e.Message)
	}
	return e.Message
}

// friendlyForStatus maps an HTTP status to the user-facing sentence. The
// wording is part of the product and must not drift.
func friendlyForStatus(status int) string {
	switch status {
	case http.StatusBadRequest:
		return "Please check your input and try again."
	case http.StatusUnauthorized:
		return "You need to sign in to continue."
	case http.StatusForbidden:
		return "You don’t have permission to perform this action."
	case http.StatusNotFound:
		return "We couldn’t find what you were looking for."
	case http.StatusRequestTimeout:
		return "The request took too long — please try again."
	default:
		return "Our servers are taking a mindful pause. Please try again in a few moments."
	}
}

// newStatusError builds the error for a response the server did answer with.
func newStatusError(status int, payload []byte, context string) *Error {
	code := CodeBadResponse
	if status < 500 {
		code = CodeBadRequest
	}

	// Prefer the server's own message when it sent one.
	message := http.StatusText(status)
	var body struct {
		Message string `json:"message"`
		ErrMsg  string `json:"error"`
	}
	if err := json.Unmarshal(payload, &body); err == nil {
		if body.Message != "" {
			message = body.Message
		} else if body.ErrMsg != "" {
			message = body.ErrMsg
		}
	}

	return &Error{
		Status:          status,
		Code:            code,
		Data:            json.RawMessage(payload),
		Message:         message,
		FriendlyMessage: friendlyForStatus(status),
		Context:         context,
	}
}

// newNetworkError covers "request went out, nothing came back".
func newNetworkError(err error, context string) *Error {
	return &Error{
		Code:            CodeNetwork,
		Message:         "No response received from server.",
		FriendlyMessage: "We couldn’t connect to the Mindful Reader library. Please check your connection.",
		Context:         context,
	}
}

// newTimeoutError covers a request that outlived the client timeout.
func newTimeoutError(err error, context string) *Error {
	return &Error{
		Code:            CodeTimeout,
		Message:         err.Error(),
		FriendlyMessage: friendlyForStatus(http.StatusRequestTimeout),
		Context:         context,
	}
}

// newRequestError covers requests that could not even be constructed or sent.
func newRequestError(err error, context string) *Error {
	return &Error{
		Code:            CodeUnknown,
		Message:         err.Error(),
		FriendlyMessage: "Something unexpected happened. Please try again later.",
		Context:         context,
	}
}

// IsOffline reports whether err is the connectivity-failure case, used by
// login/signup to switch to the dedicated offline screen instead of an
// inline rejection.
func IsOffline(err error) bool {
	apiErr, ok := err.(*Error)
	return ok && apiErr.Code == CodeNetwork
}
