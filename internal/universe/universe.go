package universe

import (
	"errors"
	"fmt"
)

// Provider returns the instrument universe as a mapping from display name to
// tradable symbol identifier. The core validates nothing beyond non-emptiness.
type Provider interface {
	Instruments() (map[string]string, error)
	Name() string
}

// Static serves a fixed universe from configuration.
type Static struct {
	Symbols map[string]string
}

// NewStatic creates a Static provider.
func NewStatic(symbols map[string]string) *Static {
	return &Static{Symbols: symbols}
}

func (s *Static) Name() string { return "static" }

func (s *Static) Instruments() (map[string]string, error) {
	if len(s.Symbols) == 0 {
		return nil, errors.New("static universe is empty")
	}
	out := make(map[string]string, len(s.Symbols))
	for name, code := range s.Symbols {
		if name == "" || code == "" {
			return nil, fmt.Errorf("invalid universe entry %q -> %q", name, code)
		}
		out[name] = code
	}
	return out, nil
}
