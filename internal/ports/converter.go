package ports

import (
	"context"

	"github.com/bnema/stitchutils/internal/domain"
)

// Converter reaches the external query translator and changeset codec.
// A returned error means the routine could not be run at all; conversion
// failures are reported in ConversionOutput.Error.
type Converter interface {
	RQLToMQL(ctx context.Context, rql string) (domain.ConversionOutput, error)
	DecodeChangeset(ctx context.Context, changeset string, jsonFormat bool) (domain.ConversionOutput, error)
	EncodeChangeset(ctx context.Context, changesetJSON string) (domain.ConversionOutput, error)
}
