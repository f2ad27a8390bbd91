package tmdb

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// StatusError is returned for non-2xx catalog responses other than 404.
type StatusError struct {
	Code    int
	Message string
}

func (s *StatusError) Error() string {
	if s.Message == "" {
		return fmt.Sprintf("unexpected status code: %d", s.Code)
	}
	return fmt.Sprintf("unexpected status code: %d (%s)", s.Code, s.Message)
}

func newStatusError(resp *http.Response) *StatusError {
	e := &StatusError{Code: resp.StatusCode}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	if err != nil {
		return e
	}
	var er errorResponse
	if json.Unmarshal(body, &er) == nil {
		e.Message = er.StatusMessage
	}
	return e
}
