package domain

type CodecOperation string

const (
	CodecTranslateQuery  CodecOperation = "rql-to-mql"
	CodecDecodeChangeset CodecOperation = "decode-changeset"
	CodecEncodeChangeset CodecOperation = "encode-changeset"
)

// ConversionOutput is the raw {output, error} pair returned by a converter.
type ConversionOutput struct {
	Output string
	Error  string
}

// CodecExchange is the normalized outcome of one conversion attempt.
type CodecExchange struct {
	Operation CodecOperation
	RawInput  string
	Output    string
	Error     string
}

func (e CodecExchange) Failed() bool {
	return e.Error != ""
}
