package draft

import "github.com/Lzww0608/uuidx"

const (
	// VersionReorderedTime is UUIDv6, a v1 layout with the timestamp stored most significant bits first
	VersionReorderedTime uuidx.Version = 6
	// VersionUnixTime is UUIDv7, a Unix millisecond timestamp followed by random bits
	VersionUnixTime uuidx.Version = 7
	// VersionCustom is UUIDv8, a caller defined layout
	VersionCustom uuidx.Version = 8
)

// Max is the UUID with every bit set
var Max = uuidx.UUID{
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
	0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff,
}

// IsMax reports whether u is the Max UUID
func IsMax(u uuidx.UUID) bool {
	return u == Max
}
