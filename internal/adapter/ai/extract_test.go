package ai

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"automark/internal/core/domain"
)

func TestExtractJSON(t *testing.T) {
	tests := []struct {
		name string
		text string
		open byte
		want string
	}{
		{name: "bare object", text: `{"a":1}`, open: '{', want: `{"a":1}`},
		{name: "prose around object", text: "Sure, here it is: {\"a\":{\"b\":[1,2]}} Hope it helps {", open: '{', want: `{"a":{"b":[1,2]}}`},
		{name: "skips broken candidate", text: `use {braces} like {"ok":true}`, open: '{', want: `{"ok":true}`},
		{name: "array in fence", text: "```json\n[\"x\", \"y\"]\n```", open: '[', want: `["x", "y"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := extractJSON(tt.text, tt.open)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestExtractJSONNone(t *testing.T) {
	_, err := extractJSON("no json here", '{')
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGenerationFallback))
}
