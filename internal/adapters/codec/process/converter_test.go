package process

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/bnema/stitchutils/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

func fakeConverter(t *testing.T, run runFunc) *Converter {
	t.Helper()

	c := NewConverter("", zaptest.NewLogger(t))
	c.run = run
	return c
}

func TestRQLToMQLPassesQueryOnStdin(t *testing.T) {
	t.Parallel()

	c := fakeConverter(t, func(ctx context.Context, input string, args ...string) (string, string, error) {
		assert.Equal(t, []string{"rql-to-mql"}, args)
		assert.Equal(t, "x = '80085'", input)
		return `{"mql":"{\"x\":\"80085\"}"}`, "", nil
	})

	out, err := c.RQLToMQL(context.Background(), "x = '80085'")
	require.NoError(t, err)
	assert.Equal(t, domain.ConversionOutput{Output: `{"x":"80085"}`}, out)
}

func TestDecodeChangesetRequestsJSONFormat(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name       string
		jsonFormat bool
		wantArgs   []string
	}{
		{name: "json", jsonFormat: true, wantArgs: []string{"decode-changeset", "--json"}},
		{name: "text", jsonFormat: false, wantArgs: []string{"decode-changeset"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := fakeConverter(t, func(ctx context.Context, input string, args ...string) (string, string, error) {
				assert.Equal(t, tc.wantArgs, args)
				return `{"decoded":"[]"}`, "", nil
			})

			out, err := c.DecodeChangeset(context.Background(), "AAEC", tc.jsonFormat)
			require.NoError(t, err)
			assert.Equal(t, "[]", out.Output)
		})
	}
}

func TestEncodeChangesetReportsRoutineError(t *testing.T) {
	t.Parallel()

	c := fakeConverter(t, func(ctx context.Context, input string, args ...string) (string, string, error) {
		assert.Equal(t, []string{"encode-changeset"}, args)
		return `{"error":"expected array at offset 0"}`, "", nil
	})

	out, err := c.EncodeChangeset(context.Background(), "{}")
	require.NoError(t, err)
	assert.Equal(t, domain.ConversionOutput{Error: "expected array at offset 0"}, out)
}

func TestConvertFailuresAreTransportErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		stdout  string
		stderr  string
		runErr  error
		wantErr string
	}{
		{name: "process failure", stderr: "segfault", runErr: errors.New("exit status 139"), wantErr: "realm-codec rql-to-mql: exit status 139: segfault"},
		{name: "garbage output", stdout: "hello", wantErr: "decode output"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := fakeConverter(t, func(ctx context.Context, input string, args ...string) (string, string, error) {
				return tc.stdout, tc.stderr, tc.runErr
			})

			_, err := c.RQLToMQL(context.Background(), "")
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestOutputWithoutOperationFieldIsTransportError(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		stdout  string
		convert func(*Converter) (domain.ConversionOutput, error)
		wantErr string
	}{
		{
			name:    "empty object",
			stdout:  `{}`,
			convert: func(c *Converter) (domain.ConversionOutput, error) { return c.RQLToMQL(context.Background(), "x = 1") },
			wantErr: `realm-codec rql-to-mql: output has no "mql" field`,
		},
		{
			name:    "wrong key",
			stdout:  `{"decoded":"x"}`,
			convert: func(c *Converter) (domain.ConversionOutput, error) { return c.RQLToMQL(context.Background(), "x = 1") },
			wantErr: `output has no "mql" field`,
		},
		{
			name:    "empty error string",
			stdout:  `{"error":""}`,
			convert: func(c *Converter) (domain.ConversionOutput, error) { return c.EncodeChangeset(context.Background(), "[]") },
			wantErr: `realm-codec encode-changeset: output has no "encoded" field`,
		},
		{
			name:   "decode with encoded key",
			stdout: `{"encoded":"AAEC"}`,
			convert: func(c *Converter) (domain.ConversionOutput, error) {
				return c.DecodeChangeset(context.Background(), "AAEC", true)
			},
			wantErr: `output has no "decoded" field`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := fakeConverter(t, func(ctx context.Context, input string, args ...string) (string, string, error) {
				return tc.stdout, "", nil
			})

			out, err := tc.convert(c)
			require.Error(t, err)
			assert.ErrorContains(t, err, tc.wantErr)
			assert.Equal(t, domain.ConversionOutput{}, out)
		})
	}
}

func TestEmptyOutputFieldIsSuccess(t *testing.T) {
	t.Parallel()

	c := fakeConverter(t, func(ctx context.Context, input string, args ...string) (string, string, error) {
		return `{"decoded":""}`, "", nil
	})

	out, err := c.DecodeChangeset(context.Background(), "", true)
	require.NoError(t, err)
	assert.Equal(t, domain.ConversionOutput{}, out)
}

func TestMissingProgramIsUnavailable(t *testing.T) {
	t.Parallel()

	c := NewConverter("stitchutils-no-such-codec", nil)

	_, err := c.EncodeChangeset(context.Background(), "[]")
	require.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorContains(t, err, "stitchutils-no-such-codec")
	assert.ErrorContains(t, err, "codec converter unavailable")
}

func TestRunsRealProgram(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("shell script converter")
	}
	t.Parallel()

	script := filepath.Join(t.TempDir(), "codec.sh")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nread -r line\nprintf '{\"encoded\":\"%s|%s\"}' \"$1\" \"$line\"\n"), 0o755))

	c := NewConverter(script, nil)

	out, err := c.EncodeChangeset(context.Background(), "abc\n")
	require.NoError(t, err)
	assert.Equal(t, "encode-changeset|abc", out.Output)
}
