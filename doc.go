// Package uuidx constructs, parses and formats Universally Unique Identifiers
// as defined by RFC 4122.
//
// A UUID is a plain [16]byte stored most significant byte first. Any 16
// bytes form a valid UUID: Version and Variant only report the bits that
// are present, they never reject a value.
//
// Generators are pure functions of their inputs:
//   - NewV1 from a 60-bit timestamp, a 14-bit clock sequence and a node
//   - NewV3 and NewV5 from a namespace and a name (MD5 and SHA-1)
//   - NewV4 from 16 bytes of a random source
//
// No clock sequence, last timestamp or node is kept by this package. The
// generator package wraps the pure functions with that state for callers
// that want it, and the draft package holds the unstable versions 6, 7
// and 8.
//
// Basic Usage:
//
//	// Generate a random UUID
//	id, err := uuidx.NewV4()
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(id)
//
//	// Name based UUIDs are reproducible
//	id = uuidx.NewV5(uuidx.NamespaceDNS, []byte("example.com"))
//
//	// Parse a UUID from string
//	id, err = uuidx.Parse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Parsing:
//
// Parse accepts the canonical form, 32 digits without hyphens, the braced
// form and the urn:uuid: form, in any letter case. ParseStrict accepts only
// the canonical form and ParseForm takes an explicit set of forms. Errors
// are *ParseError values matching ErrLength, ErrInvalidChar or ErrBadFormat
// with errors.Is.
//
// Formatting:
//
// String returns the canonical lower-case form. Encode and AppendEncode take
// a Style for upper-case, undecorated, braced or URN output; AppendEncode
// does not allocate when the destination has room.
//
// Thread Safety:
//
// UUID values are immutable and can be shared freely. An Rng is not safe for
// concurrent use.
package uuidx
