package collector

import (
	"context"

	"github.com/ftahirops/httpstat/model"
)

// Transfer is the interface for anything that can perform one request and
// report its timing block.
type Transfer interface {
	Name() string
	Fetch(ctx context.Context, rawURL string) (*model.Exchange, error)
}
