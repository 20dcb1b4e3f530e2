package uuidx

import (
	"testing"

	guuid "github.com/google/uuid"
)

// The tests in this file check byte layouts against github.com/google/uuid.

func TestOracle_NameBased(t *testing.T) {
	names := []string{"", "example.com", "www.widgets.com", "ünïcödé", "a/very/long/path/that/spans/several/hash/blocks/0123456789abcdef0123456789abcdef"}
	namespaces := map[UUID]guuid.UUID{
		NamespaceDNS:  guuid.NameSpaceDNS,
		NamespaceURL:  guuid.NameSpaceURL,
		NamespaceOID:  guuid.NameSpaceOID,
		NamespaceX500: guuid.NameSpaceX500,
	}

	for ns, gns := range namespaces {
		if ns != UUID(gns) {
			t.Fatalf("namespace %v != %v", ns, gns)
		}
		for _, name := range names {
			if got, want := NewV3(ns, []byte(name)), guuid.NewMD5(gns, []byte(name)); got != UUID(want) {
				t.Errorf("NewV3(%v, %q) = %v, want %v", ns, name, got, want)
			}
			if got, want := NewV5(ns, []byte(name)), guuid.NewSHA1(gns, []byte(name)); got != UUID(want) {
				t.Errorf("NewV5(%v, %q) = %v, want %v", ns, name, got, want)
			}
		}
	}
}

func TestOracle_TimeBased(t *testing.T) {
	for i := 0; i < 100; i++ {
		g, err := guuid.NewUUID()
		if err != nil {
			t.Fatalf("guuid.NewUUID() error = %v", err)
		}

		var node [6]byte
		copy(node[:], g.NodeID())
		got := NewV1(uint64(g.Time()), uint16(g.ClockSequence()), node)
		if got != UUID(g) {
			t.Fatalf("NewV1() = %v, want %v", got, g)
		}
		if got.Timestamp() != uint64(g.Time()) {
			t.Errorf("Timestamp() = %d, want %d", got.Timestamp(), g.Time())
		}
		sec, nsec := g.Time().UnixTime()
		if got.Time().Unix() != sec || int64(got.Time().Nanosecond()) != nsec {
			t.Errorf("Time() = %v, want %d.%09d", got.Time(), sec, nsec)
		}
	}
}

func TestOracle_Text(t *testing.T) {
	for i := 0; i < 100; i++ {
		g := guuid.New()

		ours, err := Parse(g.String())
		if err != nil || ours != UUID(g) {
			t.Fatalf("Parse(%q) = %v, %v", g.String(), ours, err)
		}
		if ours.String() != g.String() || ours.URN() != g.URN() {
			t.Errorf("String/URN mismatch: %v %v", ours, g)
		}
		if ours.Version() != VersionRandom || int(ours.Version()) != int(g.Version()) {
			t.Errorf("Version() = %v, google reports %v", ours.Version(), g.Version())
		}

		back, err := guuid.Parse(ours.Encode(StyleBraced))
		if err != nil || back != g {
			t.Errorf("guuid.Parse(%q) = %v, %v", ours.Encode(StyleBraced), back, err)
		}
	}
}
