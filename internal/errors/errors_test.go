package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
)

func TestHTTPStatusFromErr(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", NewError("recipe missing").Mark(ErrNotFound), http.StatusNotFound},
		{"validation", NewError("bad title").WithHint("Title is required").Mark(ErrValidation), http.StatusBadRequest},
		{"conflict", NewError("dup").Mark(ErrAlreadyExists), http.StatusConflict},
		{"unauthorized", NewError("no token").Mark(ErrUnauthorized), http.StatusUnauthorized},
		{"rate limited", NewError("slow down").Mark(ErrTooManyRequests), http.StatusTooManyRequests},
		{"database", WithError(fmt.Errorf("connection reset")).Mark(ErrDatabase), http.StatusInternalServerError},
		{"unmarked", fmt.Errorf("boom"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatusFromErr(tt.err))
		})
	}
}

func TestMarkSurvivesWrapping(t *testing.T) {
	err := NewError("recipe missing").Mark(ErrNotFound)
	wrapped := fmt.Errorf("update failed: %w", err)

	assert.True(t, IsNotFound(wrapped))
	assert.False(t, IsValidation(wrapped))
	assert.False(t, IsDatabase(wrapped))
}

func TestHintIsPreserved(t *testing.T) {
	err := NewError("recipe missing").
		WithHintf("Recipe %s was not found", "abc").
		Mark(ErrNotFound)

	assert.Equal(t, []string{"Recipe abc was not found"}, errors.GetAllHints(err))
}
