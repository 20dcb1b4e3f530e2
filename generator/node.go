package generator

import (
	"io"
	"net"

	"github.com/Lzww0608/uuidx"
)

// HardwareNode returns the MAC address of the first interface that has a
// non-zero 6 byte hardware address
func HardwareNode() ([6]byte, bool) {
	var node [6]byte
	ifaces, err := net.Interfaces()
	if err != nil {
		return node, false
	}
	for _, iface := range ifaces {
		if len(iface.HardwareAddr) < 6 {
			continue
		}
		copy(node[:], iface.HardwareAddr)
		if node != [6]byte{} {
			return node, true
		}
	}
	return node, false
}

// RandomNode returns a random node identifier with the multicast bit set,
// so it can never collide with a real IEEE 802 address (RFC 4122 §4.5)
func RandomNode(r io.Reader) ([6]byte, error) {
	var node [6]byte
	if _, err := io.ReadFull(r, node[:]); err != nil {
		return node, &uuidx.RandomSourceError{Err: err}
	}
	node[0] |= 0x01
	return node, nil
}
