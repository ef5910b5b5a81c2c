package status

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/mealtrack/gateway/internal/status/schema"
)

// Payload is the body written for every status request.
const Payload = `{"status": "ok", "message": "API is working!"}`

var payload = []byte(Payload)

var ErrInvalidPayload = errors.New("invalid status payload")

// Handler returns the status handler. It answers every request with
// 200 and Payload; method, path and body are not inspected.
func Handler() http.Handler {
	return http.HandlerFunc(serveStatus)
}

// Verify checks Payload against the embedded status schema.
func Verify() error {
	return verify(payload)
}

func verify(data []byte) error {
	s, err := schema.New()
	if err != nil {
		return fmt.Errorf("failed to compile status schema: %w", err)
	}

	result, err := s.Validate(data)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidPayload, err)
	}

	if !result.Valid() {
		return fmt.Errorf("%w: %v", ErrInvalidPayload, result.Errors())
	}

	return nil
}

func serveStatus(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)

	// the connection is owned by the host, nothing to recover here
	_, _ = w.Write(payload)
}
