// Package lookup resolves postcodes into candidate street addresses through
// a pluggable provider. The HTTP provider speaks the getAddress-style API the
// hosted form runtime talks to, so server-side previews and the generated
// artifact share one contract.
package lookup

import (
	"context"

	"github.com/goliatone/go-quoteform/pkg/form"
)

// AddressProvider returns candidate addresses for a postcode. Implementations
// must be safe for concurrent use.
type AddressProvider interface {
	Lookup(ctx context.Context, postcode string) ([]form.Address, error)
}

// ProviderFunc adapts a function to the AddressProvider interface.
type ProviderFunc func(ctx context.Context, postcode string) ([]form.Address, error)

func (f ProviderFunc) Lookup(ctx context.Context, postcode string) ([]form.Address, error) {
	return f(ctx, postcode)
}
