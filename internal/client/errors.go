package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var (
	// ErrRequestTimeout is returned when a call outlives its deadline. The
	// message is deliberately generic; nothing from the transport leaks.
	ErrRequestTimeout = errors.New("request timeout")

	// ErrTransport covers every other network-level failure.
	ErrTransport = errors.New("request failed")
)

// BackendError carries the server's error message verbatim along with the
// HTTP status it arrived with.
type BackendError struct {
	Status  int
	Message string
}

func (e *BackendError) Error() string {
	return e.Message
}

func backendError(resp *http.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	_ = json.Unmarshal(data, &body)
	if body.Error == "" {
		body.Error = fmt.Sprintf("request failed with status %d", resp.StatusCode)
	}
	return &BackendError{Status: resp.StatusCode, Message: body.Error}
}
