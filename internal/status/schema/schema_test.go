package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	_, err := New()
	if err != nil {
		t.Errorf("New() returned an error: %v", err)
	}
}

func TestValidate(t *testing.T) {
	s, err := New()
	require.NoError(t, err)

	tests := []struct {
		name  string
		data  string
		valid bool
	}{
		{"exact", `{"status": "ok", "message": "API is working!"}`, true},
		{"compact", `{"status":"ok","message":"API is working!"}`, true},
		{"missing message", `{"status": "ok"}`, false},
		{"extra key", `{"status": "ok", "message": "API is working!", "x": 1}`, false},
		{"wrong status", `{"status": "down", "message": "API is working!"}`, false},
		{"not an object", `[]`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := s.Validate([]byte(tt.data))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, res.Valid(), res.Errors())
		})
	}
}
