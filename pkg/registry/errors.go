package registry

import (
	"encoding/json"
	"fmt"
	"strings"
)

// RequestError reports a non-2xx registry response, carrying the parsed or
// raw server detail.
type RequestError struct {
	StatusCode int
	message    string
}

func (e *RequestError) Error() string { return e.message }

// serverError is the structured error body the registry returns.
type serverError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Details []struct {
			Detail string `json:"detail"`
		} `json:"details"`
	} `json:"error"`
}

// newRequestError translates a failed response into a user-facing error.
// It falls back to the raw body when the error is not structured.
func newRequestError(message string, status int, body []byte) *RequestError {
	var resp serverError
	if err := json.Unmarshal(body, &resp); err == nil && (resp.Error.Code != 0 || resp.Error.Message != "") {
		msg := fmt.Sprintf("%s: %d %s", message, resp.Error.Code, resp.Error.Message)
		if len(resp.Error.Details) > 0 {
			details := make([]string, 0, len(resp.Error.Details))
			for _, d := range resp.Error.Details {
				details = append(details, d.Detail)
			}
			msg += " " + strings.Join(details, "\n")
		}
		return &RequestError{StatusCode: status, message: msg}
	}
	return &RequestError{
		StatusCode: status,
		message:    fmt.Sprintf("%s: %d\n%s", message, status, body),
	}
}
