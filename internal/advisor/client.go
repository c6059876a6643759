// Package advisor generates narrative financial advice from a ledger
// snapshot by calling an external language-model API. All transport
// concerns (timeouts, authentication, provider quirks) stay inside this
// package; the rest of the application only sees free-form advisory text
// segmented by bracketed section headers.
package advisor

import (
	"context"
	"time"

	"github.com/adeyemio/kobo/internal/model"
)

// Client defines the interface for advice providers.
type Client interface {
	Advise(ctx context.Context, snapshot model.Snapshot) (string, error)
}

// Config holds everything a provider needs. It is assembled explicitly by
// the caller; providers never read the environment themselves.
type Config struct {
	Provider    string
	APIKey      string
	BaseURL     string
	Model       string
	Temperature float64
	MaxTokens   int
	MaxRetries  int
	RetryDelay  time.Duration
}
