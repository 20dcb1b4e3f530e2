package generator

import (
	"encoding/binary"
	"io"
	"sync"
	"time"

	"github.com/Lzww0608/uuidx"
	"github.com/Lzww0608/uuidx/draft"
)

// Clock hands out (timestamp, clock sequence) pairs for version 1 and 6
// UUIDs. When the wall clock does not advance, or moves backwards, the
// clock sequence is incremented so consecutive pairs stay distinct.
type Clock struct {
	mu       sync.Mutex
	lastTime uint64
	clockSeq uint16 // 14 bits
	node     [6]byte
	now      func() time.Time
}

// NewClock creates a Clock. Without WithNode the node is the first hardware
// address found, or random bits when there is none. The initial clock
// sequence is random.
func NewClock(opts ...Option) (*Clock, error) {
	o := newOptions(opts)
	c := &Clock{now: o.now}

	switch {
	case o.node != nil:
		c.node = *o.node
	default:
		node, ok := HardwareNode()
		if !ok {
			var err error
			if node, err = RandomNode(o.reader); err != nil {
				return nil, err
			}
		}
		c.node = node
	}

	var seq [2]byte
	if _, err := io.ReadFull(o.reader, seq[:]); err != nil {
		return nil, &uuidx.RandomSourceError{Err: err}
	}
	c.clockSeq = binary.BigEndian.Uint16(seq[:]) & 0x3fff
	return c, nil
}

// Node returns the node identifier stamped into every UUID
func (c *Clock) Node() [6]byte {
	return c.node
}

// Next returns the current 60-bit timestamp and the clock sequence to use with it
func (c *Clock) Next() (uint64, uint16) {
	ts := uuidx.TimestampFromTime(c.now())

	c.mu.Lock()
	defer c.mu.Unlock()

	if ts <= c.lastTime {
		c.clockSeq = (c.clockSeq + 1) & 0x3fff
	}
	c.lastTime = ts
	return ts, c.clockSeq
}

// NewV1 returns a version 1 UUID for the current time
func (c *Clock) NewV1() uuidx.UUID {
	ts, seq := c.Next()
	return uuidx.NewV1(ts, seq, c.node)
}

// NewV6 returns a version 6 UUID for the current time
func (c *Clock) NewV6() uuidx.UUID {
	ts, seq := c.Next()
	return draft.NewV6(ts, seq, c.node)
}
