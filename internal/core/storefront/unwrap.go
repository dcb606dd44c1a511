package storefront

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// listEnvelopeKeys are the wrapper keys the storefront API is known to use
// for list payloads, tried in this order after the bare-array shape.
var listEnvelopeKeys = []string{"data", "orders"}

// UnwrapList normalizes the list shapes the storefront API returns into out
// (a pointer to a slice). Accepted shapes, in fallback order: a bare JSON
// array, {"data": [...]}, {"orders": [...]}. An empty body, JSON null or an
// envelope without a recognized key all leave out untouched, which callers
// treat as an empty list.
func UnwrapList(raw []byte, out interface{}) error {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil
	}

	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, out); err != nil {
			return fmt.Errorf("failed to decode list payload: %w", err)
		}
		return nil
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(trimmed, &envelope); err != nil {
		return fmt.Errorf("unexpected list payload shape: %w", err)
	}

	for _, key := range listEnvelopeKeys {
		inner, ok := envelope[key]
		if !ok {
			continue
		}
		inner = bytes.TrimSpace(inner)
		if len(inner) == 0 || bytes.Equal(inner, []byte("null")) {
			return nil
		}
		if err := json.Unmarshal(inner, out); err != nil {
			return fmt.Errorf("failed to decode %q list payload: %w", key, err)
		}
		return nil
	}

	return nil
}
