package uuidx

import "fmt"

// Form identifies a textual UUID layout. Forms are bit flags so a set of
// accepted forms can be passed to ParseForm.
type Form uint8

const (
	// FormHyphenated is xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
	FormHyphenated Form = 1 << iota
	// FormSimple is 32 hex digits without hyphens
	FormSimple
	// FormBraced is {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
	FormBraced
	// FormURN is urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
	FormURN

	// FormCanonical accepts only the RFC 4122 string representation
	FormCanonical = FormHyphenated
	// FormAny accepts every supported form
	FormAny = FormHyphenated | FormSimple | FormBraced | FormURN
)

const urnPrefix = "urn:uuid:"

// hexValues maps an ASCII byte to its hex value, 0xff marks a non hex byte
var hexValues = func() (t [256]byte) {
	for i := range t {
		t[i] = 0xff
	}
	for c := '0'; c <= '9'; c++ {
		t[c] = byte(c - '0')
	}
	for c := 'a'; c <= 'f'; c++ {
		t[c] = byte(c-'a') + 10
		t[c-'a'+'A'] = byte(c-'a') + 10
	}
	return t
}()

// Parse parses a UUID from its string representation.
// Hex digits are case-insensitive and the following forms are accepted:
//   - xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx (canonical)
//   - xxxxxxxxxxxxxxxxxxxxxxxxxxxxxxxx (without hyphens)
//   - {xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx}
//   - urn:uuid:xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx
//
// Use ParseStrict or ParseForm to narrow the accepted forms.
// Failures are reported as *ParseError.
func Parse(s string) (UUID, error) {
	return parse(s, FormAny)
}

// ParseBytes is like Parse but takes a byte slice and does not allocate on success
func ParseBytes(b []byte) (UUID, error) {
	return parse(b, FormAny)
}

// ParseStrict accepts only the canonical hyphenated form
func ParseStrict(s string) (UUID, error) {
	return parse(s, FormCanonical)
}

// ParseForm parses s accepting only the forms set in accept
func ParseForm(s string, accept Form) (UUID, error) {
	return parse(s, accept)
}

// ParseMixed parses a UUID whose string was produced from mixed-endian
// bytes (see FromBytesMixed) and returns it in big-endian layout.
func ParseMixed(s string) (UUID, error) {
	uuid, err := parse(s, FormAny)
	if err != nil {
		return uuid, err
	}
	return swapEndian(uuid), nil
}

// MustParse is like Parse but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables.
func MustParse(s string) UUID {
	uuid, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("uuidx: Parse(%q): %v", s, err))
	}
	return uuid
}

func parse[T string | []byte](s T, accept Form) (UUID, error) {
	var uuid UUID

	// decorations are recognised whatever accept says; a well formed UUID
	// in a form outside accept is reported as BadFormat below
	body, skip, decorated := s, 0, Form(0)
	switch {
	case hasURNPrefix(s):
		body, skip, decorated = s[len(urnPrefix):], len(urnPrefix), FormURN
	case len(s) >= 2 && s[0] == '{' && s[len(s)-1] == '}':
		body, skip, decorated = s[1:len(s)-1], 1, FormBraced
	}

	hyphens := 0
	for i := 0; i < len(body); i++ {
		c := body[i]
		if c == '-' {
			hyphens++
			continue
		}
		if hexValues[c] == 0xff {
			return uuid, &ParseError{Kind: ErrKindInvalidChar, Input: string(s), Offset: skip + i}
		}
	}
	if len(body)-hyphens != 32 {
		return uuid, &ParseError{Kind: ErrKindLength, Input: string(s), Offset: -1}
	}

	found := FormSimple
	if hyphens > 0 {
		if len(body) != 36 || body[8] != '-' || body[13] != '-' || body[18] != '-' || body[23] != '-' {
			return uuid, &ParseError{Kind: ErrKindBadFormat, Input: string(s), Offset: -1}
		}
		found = FormHyphenated
	}
	if decorated != 0 {
		if found != FormHyphenated {
			return uuid, &ParseError{Kind: ErrKindBadFormat, Input: string(s), Offset: -1}
		}
		found = decorated
	}
	if accept&found == 0 {
		return uuid, &ParseError{Kind: ErrKindBadFormat, Input: string(s), Offset: -1}
	}

	j := 0
	for i := 0; i < 16; i++ {
		if body[j] == '-' {
			j++
		}
		uuid[i] = hexValues[body[j]]<<4 | hexValues[body[j+1]]
		j += 2
	}
	return uuid, nil
}

// hasURNPrefix reports whether s starts with urn:uuid: ignoring ASCII case
func hasURNPrefix[T string | []byte](s T) bool {
	if len(s) < len(urnPrefix) {
		return false
	}
	for i := 0; i < len(urnPrefix); i++ {
		c := s[i]
		if 'A' <= c && c <= 'Z' {
			c += 'a' - 'A'
		}
		if c != urnPrefix[i] {
			return false
		}
	}
	return true
}
