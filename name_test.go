package uuidx

import (
	"crypto/sha256"
	"testing"
)

func TestNewV3(t *testing.T) {
	tests := []struct {
		ns   UUID
		name string
		want string
	}{
		// RFC 4122 Appendix B, with erratum 1352
		{NamespaceDNS, "www.widgets.com", "3d813cbb-47fb-32ba-91df-831e1593ac29"},
		{NamespaceDNS, "python.org", "6fa459ea-ee8a-3ca4-894e-db77e160355e"},
	}
	for _, tt := range tests {
		got := NewV3(tt.ns, []byte(tt.name))
		if got.String() != tt.want {
			t.Errorf("NewV3(%v, %q) = %v, want %v", tt.ns, tt.name, got, tt.want)
		}
		if got.Version() != VersionNameBasedMD5 || got.Variant() != VariantRFC4122 {
			t.Errorf("NewV3() version = %v variant = %v", got.Version(), got.Variant())
		}
	}
}

func TestNewV5(t *testing.T) {
	tests := []struct {
		ns   UUID
		name string
		want string
	}{
		{NamespaceDNS, "python.org", "886313e1-3b8a-5372-9b90-0c9aee199e5d"},
		{NamespaceDNS, "example.com", "cfbff0d1-9375-5685-968c-48ce8b15ae17"},
		{NamespaceURL, "https://example.com", "4fd35a71-71ef-5a55-a9d9-aa75c889a6d0"},
	}
	for _, tt := range tests {
		got := NewV5(tt.ns, []byte(tt.name))
		if got.String() != tt.want {
			t.Errorf("NewV5(%v, %q) = %v, want %v", tt.ns, tt.name, got, tt.want)
		}
		if got.Version() != VersionNameBasedSHA1 || got.Variant() != VariantRFC4122 {
			t.Errorf("NewV5() version = %v variant = %v", got.Version(), got.Variant())
		}
	}
}

func TestNameBased_Properties(t *testing.T) {
	generators := map[string]func(UUID, []byte) UUID{
		"v3": NewV3,
		"v5": NewV5,
	}
	for name, fn := range generators {
		t.Run(name, func(t *testing.T) {
			a := fn(NamespaceDNS, []byte("test"))
			if a != fn(NamespaceDNS, []byte("test")) {
				t.Error("same namespace and name must give the same UUID")
			}
			if a == fn(NamespaceDNS, []byte("test2")) {
				t.Error("different names must not give the same UUID")
			}
			if a == fn(NamespaceURL, []byte("test")) {
				t.Error("different namespaces must not give the same UUID")
			}
		})
	}

	if NewV3(NamespaceDNS, []byte("test")) == NewV5(NamespaceDNS, []byte("test")) {
		t.Error("v3 and v5 of the same input must differ")
	}
}

func TestNewHash(t *testing.T) {
	h := sha256.New()
	h.Write([]byte("leftover state"))

	got := NewHash(h, NamespaceOID, []byte("1.3.6.1"), Version(8))
	if got.Version() != Version(8) || got.Variant() != VariantRFC4122 {
		t.Errorf("NewHash() version = %v variant = %v", got.Version(), got.Variant())
	}
	if got != NewHash(sha256.New(), NamespaceOID, []byte("1.3.6.1"), Version(8)) {
		t.Error("NewHash() must reset the hash before use")
	}
}
