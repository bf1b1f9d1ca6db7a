package application

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/bnema/stitchutils/internal/domain"
	"github.com/bnema/stitchutils/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodecBridgeTranslateQuery(t *testing.T) {
	converter := mocks.NewMockConverter(t)
	bridge := NewCodecBridge(converter, nil)

	converter.EXPECT().RQLToMQL(mockAnyContext(), "x = '80085'").
		Return(domain.ConversionOutput{Output: `{"x":"80085"}`}, nil).Once()

	exchange := bridge.TranslateQuery(context.Background(), "x = '80085'")
	assert.Equal(t, domain.CodecExchange{
		Operation: domain.CodecTranslateQuery,
		RawInput:  "x = '80085'",
		Output:    `{"x":"80085"}`,
	}, exchange)
	assert.False(t, exchange.Failed())
}

func TestCodecBridgeReportsExactlyOneOfOutputOrError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		output    domain.ConversionOutput
		err       error
		wantOut   string
		wantError string
	}{
		{name: "output", output: domain.ConversionOutput{Output: "AQID"}, wantOut: "AQID"},
		{name: "routine error drops partial output", output: domain.ConversionOutput{Output: "partial", Error: "unexpected token"}, wantError: "unexpected token"},
		{name: "transport error", err: errors.New("codec converter unavailable"), wantError: "codec converter unavailable"},
		{name: "empty output is still an output"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			converter := mocks.NewMockConverter(t)
			bridge := NewCodecBridge(converter, nil)
			converter.EXPECT().EncodeChangeset(mockAnyContext(), "").Return(tc.output, tc.err).Once()

			exchange := bridge.EncodeChangeset(context.Background(), "")
			assert.Equal(t, tc.wantOut, exchange.Output)
			assert.Equal(t, tc.wantError, exchange.Error)
			assert.Equal(t, tc.wantError != "", exchange.Failed())
		})
	}
}

func TestCodecBridgeDecodeRequestsJSONFormat(t *testing.T) {
	converter := mocks.NewMockConverter(t)
	bridge := NewCodecBridge(converter, nil)

	converter.EXPECT().DecodeChangeset(mockAnyContext(), "0a0b", true).
		Return(domain.ConversionOutput{Error: "changeset too short"}, nil).Once()

	exchange := bridge.DecodeChangeset(context.Background(), "0a0b")
	assert.True(t, exchange.Failed())
	assert.Equal(t, "changeset too short", exchange.Error)
	assert.Empty(t, exchange.Output)
	assert.Equal(t, domain.CodecDecodeChangeset, exchange.Operation)
}

// base64Converter stands in for the external changeset codec.
type base64Converter struct{}

func (base64Converter) RQLToMQL(context.Context, string) (domain.ConversionOutput, error) {
	return domain.ConversionOutput{}, errors.New("not supported")
}

func (base64Converter) DecodeChangeset(_ context.Context, changeset string, _ bool) (domain.ConversionOutput, error) {
	decoded, err := base64.StdEncoding.DecodeString(changeset)
	if err != nil {
		return domain.ConversionOutput{Error: err.Error()}, nil
	}
	return domain.ConversionOutput{Output: string(decoded)}, nil
}

func (base64Converter) EncodeChangeset(_ context.Context, changesetJSON string) (domain.ConversionOutput, error) {
	return domain.ConversionOutput{Output: base64.StdEncoding.EncodeToString([]byte(changesetJSON))}, nil
}

func TestCodecBridgeRoundTripAddsNoTransformation(t *testing.T) {
	bridge := NewCodecBridge(base64Converter{}, nil)

	for _, changeset := range []string{
		`{"instructions":[{"type":"set","path":["name"],"value":"x"}]}`,
		`[]`,
		"  {\"padded\": true}\n",
	} {
		encoded := bridge.EncodeChangeset(context.Background(), changeset)
		require.False(t, encoded.Failed())

		decoded := bridge.DecodeChangeset(context.Background(), encoded.Output)
		require.False(t, decoded.Failed())
		assert.Equal(t, changeset, decoded.Output)
	}
}
