package advisor

import (
	"fmt"
	"strings"
)

// NewClient creates an advice client based on the provided configuration.
func NewClient(cfg Config) (Client, error) {
	switch strings.ToLower(cfg.Provider) {
	case "together":
		return newTogetherClient(cfg)
	case "anthropic":
		return newAnthropicClient(cfg)
	default:
		return nil, fmt.Errorf("unsupported advisor provider: %s", cfg.Provider)
	}
}
