package application

import (
	"context"

	"github.com/bnema/stitchutils/internal/domain"
	"github.com/bnema/stitchutils/internal/ports"
	"go.uber.org/zap"
)

// CodecBridge forwards raw text to the external converter and normalizes
// the outcome. It never validates input on its own.
type CodecBridge struct {
	converter ports.Converter
	logger    *zap.Logger
}

func NewCodecBridge(converter ports.Converter, logger *zap.Logger) *CodecBridge {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &CodecBridge{converter: converter, logger: logger}
}

func (b *CodecBridge) TranslateQuery(ctx context.Context, rql string) domain.CodecExchange {
	out, err := b.converter.RQLToMQL(ctx, rql)
	return b.exchange(domain.CodecTranslateQuery, rql, out, err)
}

func (b *CodecBridge) DecodeChangeset(ctx context.Context, encoded string) domain.CodecExchange {
	out, err := b.converter.DecodeChangeset(ctx, encoded, true)
	return b.exchange(domain.CodecDecodeChangeset, encoded, out, err)
}

func (b *CodecBridge) EncodeChangeset(ctx context.Context, changesetJSON string) domain.CodecExchange {
	out, err := b.converter.EncodeChangeset(ctx, changesetJSON)
	return b.exchange(domain.CodecEncodeChangeset, changesetJSON, out, err)
}

func (b *CodecBridge) exchange(op domain.CodecOperation, input string, out domain.ConversionOutput, err error) domain.CodecExchange {
	exchange := domain.CodecExchange{Operation: op, RawInput: input}

	switch {
	case err != nil:
		b.logger.Debug("converter failed", zap.String("operation", string(op)), zap.Error(err))
		exchange.Error = err.Error()
	case out.Error != "":
		exchange.Error = out.Error
	default:
		exchange.Output = out.Output
	}

	return exchange
}
