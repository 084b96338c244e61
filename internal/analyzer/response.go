package analyzer

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/atomscope/atomscope/internal/model"
)

// ParseResponse decodes the model's JSON answer and validates it.
// A code fence around the JSON is tolerated.
func ParseResponse(text string) (*model.Molecule, error) {
	text = stripCodeFence(strings.TrimSpace(text))
	if text == "" {
		return nil, ErrEmptyResponse
	}

	var m model.Molecule
	if err := json.Unmarshal([]byte(text), &m); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if err := m.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	return &m, nil
}

func stripCodeFence(s string) string {
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[i+1:]
	} else {
		return ""
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
