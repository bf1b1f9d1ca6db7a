package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"
)

const (
	indentWidth            = 2
	defaultMaxStringLength = 128
	defaultMaxArrayItems   = 100
)

// JSONOptions bounds how much of a document is shown. Zero values select
// the defaults.
type JSONOptions struct {
	MaxStringLength int
	MaxArrayItems   int
}

func (o JSONOptions) withDefaults() JSONOptions {
	if o.MaxStringLength <= 0 {
		o.MaxStringLength = defaultMaxStringLength
	}
	if o.MaxArrayItems <= 0 {
		o.MaxArrayItems = defaultMaxArrayItems
	}
	return o
}

// FormatJSON pretty prints raw JSON keeping key order. Long strings and
// long arrays are shortened. Invalid input is returned unchanged.
func FormatJSON(raw json.RawMessage, opts JSONOptions) string {
	opts = opts.withDefaults()

	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return "null"
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	dec.UseNumber()

	var b strings.Builder
	p := printer{dec: dec, out: &b, opts: opts}
	if err := p.value(0); err != nil {
		return string(raw)
	}
	if _, err := dec.Token(); err != io.EOF {
		return string(raw)
	}

	return b.String()
}

type printer struct {
	dec  *json.Decoder
	out  *strings.Builder
	opts JSONOptions
}

func (p *printer) value(depth int) error {
	tok, err := p.dec.Token()
	if err != nil {
		return err
	}

	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			return p.object(depth)
		case '[':
			return p.array(depth)
		default:
			return fmt.Errorf("unexpected delimiter %q", v)
		}
	case string:
		p.out.WriteString(p.quote(v))
	case json.Number:
		p.out.WriteString(v.String())
	case bool:
		if v {
			p.out.WriteString("true")
		} else {
			p.out.WriteString("false")
		}
	case nil:
		p.out.WriteString("null")
	}

	return nil
}

func (p *printer) object(depth int) error {
	p.out.WriteByte('{')

	count := 0
	for p.dec.More() {
		tok, err := p.dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("object key is %T", tok)
		}

		if count > 0 {
			p.out.WriteByte(',')
		}
		p.newline(depth + 1)
		p.out.WriteString(quoteString(key))
		p.out.WriteString(": ")
		if err := p.value(depth + 1); err != nil {
			return err
		}
		count++
	}

	if _, err := p.dec.Token(); err != nil {
		return err
	}
	if count > 0 {
		p.newline(depth)
	}
	p.out.WriteByte('}')
	return nil
}

func (p *printer) array(depth int) error {
	p.out.WriteByte('[')

	count := 0
	hidden := 0
	for p.dec.More() {
		if count == p.opts.MaxArrayItems {
			var skipped json.RawMessage
			if err := p.dec.Decode(&skipped); err != nil {
				return err
			}
			hidden++
			continue
		}

		if count > 0 {
			p.out.WriteByte(',')
		}
		p.newline(depth + 1)
		if err := p.value(depth + 1); err != nil {
			return err
		}
		count++
	}

	if _, err := p.dec.Token(); err != nil {
		return err
	}
	if hidden > 0 {
		p.out.WriteByte(',')
		p.newline(depth + 1)
		fmt.Fprintf(p.out, "… %d more items", hidden)
	}
	if count > 0 {
		p.newline(depth)
	}
	p.out.WriteByte(']')
	return nil
}

func (p *printer) newline(depth int) {
	p.out.WriteByte('\n')
	p.out.WriteString(strings.Repeat(" ", depth*indentWidth))
}

func (p *printer) quote(s string) string {
	if utf8.RuneCountInString(s) <= p.opts.MaxStringLength {
		return quoteString(s)
	}

	runes := []rune(s)
	return quoteString(string(runes[:p.opts.MaxStringLength])) + " …"
}

func quoteString(s string) string {
	var b bytes.Buffer
	enc := json.NewEncoder(&b)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(s)
	return strings.TrimSuffix(b.String(), "\n")
}
