package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrNetwork wraps transport failures: the request never produced a
// response the server vouched for.
var ErrNetwork = errors.New("network error")

// Error is a rejection from the remote API, carrying the server-provided
// message when there is one.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api: %d %s", e.Status, e.Message)
}

func errorFromResponse(resp *http.Response) error {
	apiErr := &Error{Status: resp.StatusCode}

	var body struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Message != "" {
		apiErr.Message = body.Message
	} else {
		apiErr.Message = http.StatusText(resp.StatusCode)
	}
	return apiErr
}
