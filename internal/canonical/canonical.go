// Package canonical implements the deterministic fact serialization and the
// content hash shared with the HealthFactRegistry contract tooling.
//
// The byte output must be reproducible across every implementation that
// computes the same hash: object keys sorted lexicographically at every
// nesting level, no insignificant whitespace, raw UTF-8 for printable
// characters and a fixed escape set, integers emitted verbatim. Any change
// here silently breaks on-chain fact matching.
package canonical

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// Canonicalize serializes any JSON-representable value into its canonical
// byte form. Two structurally equal values always canonicalize to the same
// bytes regardless of map key order.
func Canonicalize(v any) ([]byte, error) {
	var buf bytes.Buffer
	if err := appendValue(&buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// CanonicalizeJSON re-serializes a raw JSON document into canonical bytes,
// preserving number fidelity of the source document.
func CanonicalizeJSON(raw []byte) ([]byte, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("parsing json document: %w", err)
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after json document")
	}
	return Canonicalize(v)
}

func appendValue(buf *bytes.Buffer, v any) error {
	switch t := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if t {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case string:
		appendString(buf, t)
	case json.Number:
		return appendNumber(buf, string(t))
	case int:
		buf.WriteString(strconv.FormatInt(int64(t), 10))
	case int64:
		buf.WriteString(strconv.FormatInt(t, 10))
	case uint64:
		buf.WriteString(strconv.FormatUint(t, 10))
	case float64:
		return appendFloat(buf, t)
	case []any:
		buf.WriteByte('[')
		for i, item := range t {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendValue(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case map[string]any:
		keys := make([]string, 0, len(t))
		for k := range t {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		buf.WriteByte('{')
		for i, k := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			appendString(buf, k)
			buf.WriteByte(':')
			if err := appendValue(buf, t[k]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		// Structs and other marshalable values take the round trip through
		// encoding/json so their key order is normalized like any other map.
		raw, err := json.Marshal(v)
		if err != nil {
			return fmt.Errorf("value is not json representable: %w", err)
		}
		c, err := CanonicalizeJSON(raw)
		if err != nil {
			return err
		}
		buf.Write(c)
	}
	return nil
}

// appendString writes s with the fixed escape rules: two-character escapes
// for quote, backslash and the common control characters, \u00xx lowercase
// hex for the rest of the control range, everything else as raw UTF-8.
func appendString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(buf, `\u%04x`, r)
			} else {
				buf.WriteRune(r)
			}
		}
	}
	buf.WriteByte('"')
}

func appendNumber(buf *bytes.Buffer, s string) error {
	if !strings.ContainsAny(s, ".eE") {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			buf.WriteString(strconv.FormatInt(i, 10))
			return nil
		}
		// Out of int64 range. The source text is already a plain integer
		// literal, emit it untouched.
		buf.WriteString(s)
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("invalid number %q: %w", s, err)
	}
	return appendFloat(buf, f)
}

// appendFloat writes f in the shortest round-trip decimal form, with the
// exponent-notation cutoffs used by the contract side tooling (plain decimal
// inside [1e-6, 1e21), exponent form without zero-padded exponents outside).
func appendFloat(buf *bytes.Buffer, f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("number %v is not json representable", f)
	}
	if f == 0 {
		buf.WriteString("0")
		return nil
	}
	abs := math.Abs(f)
	if abs < 1e-6 || abs >= 1e21 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		buf.WriteString(stripExponentZeros(s))
		return nil
	}
	buf.WriteString(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

// stripExponentZeros turns "1e-07" into "1e-7".
func stripExponentZeros(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 {
		return s
	}
	mantissa, exp := s[:i], s[i+1:]
	sign := ""
	if len(exp) > 0 && (exp[0] == '+' || exp[0] == '-') {
		sign, exp = string(exp[0]), exp[1:]
	}
	exp = strings.TrimLeft(exp, "0")
	if exp == "" {
		exp = "0"
	}
	return mantissa + "e" + sign + exp
}
