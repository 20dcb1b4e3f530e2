package uuidx

import (
	"fmt"
	"slices"
)

const (
	hexLower = "0123456789abcdef"
	hexUpper = "0123456789ABCDEF"
)

// Style selects the textual form and letter case used by Encode
type Style struct {
	Form  Form
	Upper bool
}

var (
	StyleCanonical   = Style{Form: FormHyphenated}
	StyleUpper       = Style{Form: FormHyphenated, Upper: true}
	StyleSimple      = Style{Form: FormSimple}
	StyleSimpleUpper = Style{Form: FormSimple, Upper: true}
	StyleBraced      = Style{Form: FormBraced}
	StyleURN         = Style{Form: FormURN}
)

// form returns the single form rendered by the style.
// A zero or multi-bit Form falls back to its lowest set bit, or hyphenated.
func (s Style) form() Form {
	f := s.Form & FormAny
	if f == 0 {
		return FormHyphenated
	}
	return f & -f
}

// EncodedLen returns the number of bytes Encode produces for the style
func (s Style) EncodedLen() int {
	switch s.form() {
	case FormSimple:
		return 32
	case FormBraced:
		return 38
	case FormURN:
		return 36 + len(urnPrefix)
	}
	return 36
}

// String returns the canonical string representation of the UUID
// in the format: xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
func (u UUID) String() string {
	var buf [36]byte
	encodeHex(buf[:], u, true, hexLower)
	return string(buf[:])
}

// StringUpper returns the canonical form with upper-case hex digits
func (u UUID) StringUpper() string {
	var buf [36]byte
	encodeHex(buf[:], u, true, hexUpper)
	return string(buf[:])
}

// URN returns the RFC 4122 URN of the UUID: urn:uuid:xxxxxxxx-...
func (u UUID) URN() string {
	return u.Encode(StyleURN)
}

// Encode renders the UUID in the given style
func (u UUID) Encode(s Style) string {
	var buf [45]byte
	return string(u.AppendEncode(buf[:0], s))
}

// AppendEncode appends the UUID rendered in style s to dst.
// It does not allocate when dst has s.EncodedLen() spare capacity.
func (u UUID) AppendEncode(dst []byte, s Style) []byte {
	n := s.EncodedLen()
	dst = slices.Grow(dst, n)
	out := dst[len(dst) : len(dst)+n]

	digits := hexLower
	if s.Upper {
		digits = hexUpper
	}
	switch s.form() {
	case FormSimple:
		encodeHex(out, u, false, digits)
	case FormBraced:
		out[0] = '{'
		encodeHex(out[1:37], u, true, digits)
		out[37] = '}'
	case FormURN:
		copy(out, urnPrefix)
		encodeHex(out[len(urnPrefix):], u, true, digits)
	default:
		encodeHex(out, u, true, digits)
	}
	return dst[:len(dst)+n]
}

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return u.Encode(StyleSimple)
}

// encodeHex writes the 32 hex digits of u into dst, with hyphens at the
// canonical offsets when hyphens is set
func encodeHex(dst []byte, u UUID, hyphens bool, digits string) {
	j := 0
	for i, b := range u {
		if hyphens && (i == 4 || i == 6 || i == 8 || i == 10) {
			dst[j] = '-'
			j++
		}
		dst[j] = digits[b>>4]
		dst[j+1] = digits[b&0x0f]
		j += 2
	}
}

// Format implements fmt.Formatter.
// %s and %v print the canonical form, %x lower-case and %X upper-case;
// the # flag prints the URN. %q prints the quoted canonical form.
func (u UUID) Format(f fmt.State, verb rune) {
	var buf [47]byte
	var out []byte
	switch verb {
	case 's', 'v', 'x', 'X':
		s := StyleCanonical
		if f.Flag('#') {
			s.Form = FormURN
		}
		s.Upper = verb == 'X'
		out = u.AppendEncode(buf[:0], s)
	case 'q':
		out = append(buf[:0], '"')
		out = u.AppendEncode(out, StyleCanonical)
		out = append(out, '"')
	default:
		fmt.Fprintf(f, "%%!%c(uuidx.UUID=%s)", verb, u.String())
		return
	}
	f.Write(out)
}
