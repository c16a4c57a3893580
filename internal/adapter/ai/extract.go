package ai

import (
	"bytes"
	"encoding/json"
	"fmt"

	"automark/internal/core/domain"
)

// extractJSON returns the first JSON value opening with open ('{' or '[')
// that decodes cleanly. Models often wrap JSON in prose or code fences.
func extractJSON(text string, open byte) (json.RawMessage, error) {
	data := []byte(text)
	for i := bytes.IndexByte(data, open); i >= 0; {
		var raw json.RawMessage
		if err := json.NewDecoder(bytes.NewReader(data[i:])).Decode(&raw); err == nil {
			return raw, nil
		}
		next := bytes.IndexByte(data[i+1:], open)
		if next < 0 {
			break
		}
		i += next + 1
	}
	return nil, fmt.Errorf("%w: no json %q value in response", domain.ErrGenerationFallback, open)
}
