package uuidx

import (
	"encoding/binary"
	"time"
)

// gregorianOffset is the number of 100ns intervals between the UUID epoch
// 1582-10-15T00:00:00Z and the Unix epoch
const gregorianOffset = 0x01b21dd213814000

// maxTimestamp is the largest 60-bit UUID timestamp, reached in 5236
const maxTimestamp = 1<<60 - 1

const ticksPerSecond = 10_000_000

// TimestampFromTime converts t to a 60-bit UUID timestamp
// (100ns intervals since 1582-10-15). Times before the UUID epoch yield 0
// and times past the end of the 60-bit range yield 1<<60 - 1.
func TimestampFromTime(t time.Time) uint64 {
	sec := t.Unix()
	switch {
	case sec < -gregorianOffset/ticksPerSecond-1:
		return 0
	case sec > (maxTimestamp-gregorianOffset)/ticksPerSecond:
		return maxTimestamp
	}
	ticks := sec*ticksPerSecond + int64(t.Nanosecond()/100) + gregorianOffset
	switch {
	case ticks < 0:
		return 0
	case ticks > maxTimestamp:
		return maxTimestamp
	}
	return uint64(ticks)
}

// TimeFromTimestamp converts a 60-bit UUID timestamp back to UTC time
func TimeFromTimestamp(ts uint64) time.Time {
	ticks := int64(ts&maxTimestamp) - gregorianOffset
	return time.Unix(ticks/ticksPerSecond, (ticks%ticksPerSecond)*100).UTC()
}

// NewV1 builds a version 1 UUID from a 60-bit timestamp, a 14-bit clock
// sequence and a 48-bit node. The high 4 bits of timestamp and the high 2
// bits of clockSeq are ignored. NewV1 keeps no state: keeping clockSeq
// unique when the clock does not advance is the caller's job (see the
// generator package).
func NewV1(timestamp uint64, clockSeq uint16, node [6]byte) UUID {
	var uuid UUID

	// time_low, time_mid, time_hi_and_version
	binary.BigEndian.PutUint32(uuid[0:4], uint32(timestamp))
	binary.BigEndian.PutUint16(uuid[4:6], uint16(timestamp>>32))
	binary.BigEndian.PutUint16(uuid[6:8], uint16(timestamp>>48))

	// clock_seq_hi_and_reserved, clock_seq_low
	binary.BigEndian.PutUint16(uuid[8:10], clockSeq)

	copy(uuid[10:], node[:])

	uuid.setVersion(VersionTimeBased)
	uuid.setVariant(VariantRFC4122)
	return uuid
}
