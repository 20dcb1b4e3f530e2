package uuidx

import "encoding/binary"

// Fields is the RFC 4122 field view of a UUID.
// Converting between Fields and UUID is lossless in both directions;
// no version or variant bits are touched.
type Fields struct {
	TimeLow               uint32
	TimeMid               uint16
	TimeHiAndVersion      uint16
	ClockSeqHiAndReserved uint8
	ClockSeqLow           uint8
	Node                  [6]byte
}

// Fields splits the UUID into its RFC fields
func (u UUID) Fields() Fields {
	f := Fields{
		TimeLow:               binary.BigEndian.Uint32(u[0:4]),
		TimeMid:               binary.BigEndian.Uint16(u[4:6]),
		TimeHiAndVersion:      binary.BigEndian.Uint16(u[6:8]),
		ClockSeqHiAndReserved: u[8],
		ClockSeqLow:           u[9],
	}
	copy(f.Node[:], u[10:])
	return f
}

// FromFields assembles a UUID from raw RFC fields
func FromFields(f Fields) UUID {
	var uuid UUID
	binary.BigEndian.PutUint32(uuid[0:4], f.TimeLow)
	binary.BigEndian.PutUint16(uuid[4:6], f.TimeMid)
	binary.BigEndian.PutUint16(uuid[6:8], f.TimeHiAndVersion)
	uuid[8] = f.ClockSeqHiAndReserved
	uuid[9] = f.ClockSeqLow
	copy(uuid[10:], f.Node[:])
	return uuid
}

// FromBytesMixed creates a UUID from the mixed-endian layout used by
// Microsoft GUIDs, where time_low, time_mid and time_hi_and_version are
// stored little-endian.
func FromBytesMixed(b [16]byte) UUID {
	return swapEndian(UUID(b))
}

// BytesMixed returns the UUID in mixed-endian layout. See FromBytesMixed.
func (u UUID) BytesMixed() [16]byte {
	return swapEndian(u)
}

func swapEndian(u UUID) UUID {
	u[0], u[1], u[2], u[3] = u[3], u[2], u[1], u[0]
	u[4], u[5] = u[5], u[4]
	u[6], u[7] = u[7], u[6]
	return u
}

// setVersion overwrites the high nibble of byte 6
func (u *UUID) setVersion(v Version) {
	u[6] = (u[6] & 0x0f) | byte(v)<<4
}

// setVariant overwrites only the bits that identify the variant in byte 8
func (u *UUID) setVariant(v Variant) {
	switch v {
	case VariantNCS:
		u[8] &= 0x7f
	case VariantRFC4122:
		u[8] = (u[8] & 0x3f) | 0x80
	case VariantMicrosoft:
		u[8] = (u[8] & 0x1f) | 0xc0
	default:
		u[8] |= 0xe0
	}
}

// SetVersionVariant returns a copy of u with the version nibble set to v and
// the variant set to RFC 4122. It is the building block for custom layouts.
func SetVersionVariant(u UUID, v Version) UUID {
	u.setVersion(v)
	u.setVariant(VariantRFC4122)
	return u
}
