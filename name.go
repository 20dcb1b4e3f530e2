package uuidx

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
)

// Well known namespaces from RFC 4122 Appendix C
var (
	NamespaceDNS  = MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")
	NamespaceURL  = MustParse("6ba7b811-9dad-11d1-80b4-00c04fd430c8")
	NamespaceOID  = MustParse("6ba7b812-9dad-11d1-80b4-00c04fd430c8")
	NamespaceX500 = MustParse("6ba7b814-9dad-11d1-80b4-00c04fd430c8")
)

// NewV3 returns the version 3 UUID of name within namespace ns (MD5).
// Prefer NewV5 for new designs.
func NewV3(ns UUID, name []byte) UUID {
	return NewHash(md5.New(), ns, name, VersionNameBasedMD5)
}

// NewV5 returns the version 5 UUID of name within namespace ns (SHA-1).
// The same namespace and name always produce the same UUID.
func NewV5(ns UUID, name []byte) UUID {
	return NewHash(sha1.New(), ns, name, VersionNameBasedSHA1)
}

// NewHash hashes the namespace bytes followed by name with h, keeps the
// first 16 bytes of the digest and stamps version v and the RFC 4122 variant.
// h is reset before use. NewHash panics if h produces fewer than 16 bytes.
func NewHash(h hash.Hash, ns UUID, name []byte, v Version) UUID {
	if h.Size() < 16 {
		panic("uuidx: NewHash: digest shorter than 16 bytes")
	}
	h.Reset()
	h.Write(ns[:])
	h.Write(name)

	var digest [64]byte
	var uuid UUID
	copy(uuid[:], h.Sum(digest[:0]))
	return SetVersionVariant(uuid, v)
}
