package wizard

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Submitter delivers a completed draft to the school. The controller calls it
// at most once per user action.
type Submitter interface {
	Submit(ctx context.Context, draft Draft) error
}

// SubmitError is a submission the server answered and refused. Message is the
// server's own wording and is shown to the parent verbatim.
type SubmitError struct {
	StatusCode int
	Message    string
}

func (e *SubmitError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("wizard: submission rejected (%d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("wizard: submission rejected (%d)", e.StatusCode)
}

// HTTPSubmitter posts the flattened draft as one JSON object to the
// registration endpoint. No auth header: the form is public.
type HTTPSubmitter struct {
	Endpoint string
	Client   *http.Client
}

func NewHTTPSubmitter(endpoint string) *HTTPSubmitter {
	return &HTTPSubmitter{Endpoint: endpoint, Client: http.DefaultClient}
}

func (s *HTTPSubmitter) Submit(ctx context.Context, draft Draft) error {
	body, err := json.Marshal(draft)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	// The endpoint answers failures with {"error": "..."}. Anything else,
	// including an unreadable body, falls back to the generic message in the
	// controller.
	var payload struct {
		Error string `json:"error"`
	}
	if data, readErr := io.ReadAll(io.LimitReader(resp.Body, 1<<16)); readErr == nil {
		_ = json.Unmarshal(data, &payload)
	}
	return &SubmitError{StatusCode: resp.StatusCode, Message: payload.Error}
}
