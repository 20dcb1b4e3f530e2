package draft

import "github.com/Lzww0608/uuidx"

// NewV8 returns b with the version set to 8 and the variant set to RFC 4122.
// The other 122 bits are kept verbatim, so callers own the layout.
func NewV8(b [16]byte) uuidx.UUID {
	return uuidx.SetVersionVariant(uuidx.FromArray(b), VersionCustom)
}
