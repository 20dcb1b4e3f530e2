package uuidx

import (
	"testing"
)

func BenchmarkNewV4(b *testing.B) {
	b.ReportAllocs()
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			_, err := NewV4()
			if err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkNewV4FromRng(b *testing.B) {
	rng := NewRngFromSeed([32]byte{1})
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = NewV4FromRng(rng)
	}
}

func BenchmarkNewV1(b *testing.B) {
	node := [6]byte{1, 2, 3, 4, 5, 6}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = NewV1(uint64(i), uint16(i), node)
	}
}

func BenchmarkNewV3(b *testing.B) {
	name := []byte("www.example.com")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = NewV3(NamespaceDNS, name)
	}
}

func BenchmarkNewV5(b *testing.B) {
	name := []byte("www.example.com")
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = NewV5(NamespaceDNS, name)
	}
}

func BenchmarkUUID_String(b *testing.B) {
	uuid := Must(NewV4())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.String()
	}
}

func BenchmarkParse(b *testing.B) {
	s := "f47ac10b-58cc-4372-a567-0e02b2c3d479"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkParse_NoHyphens(b *testing.B) {
	s := "f47ac10b58cc4372a5670e02b2c3d479"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := Parse(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_MarshalText(b *testing.B) {
	uuid := Must(NewV4())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := uuid.MarshalText()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_UnmarshalText(b *testing.B) {
	text := []byte("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var uuid UUID
		err := uuid.UnmarshalText(text)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_MarshalBinary(b *testing.B) {
	uuid := Must(NewV4())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := uuid.MarshalBinary()
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_UnmarshalBinary(b *testing.B) {
	uuid := Must(NewV4())
	data, _ := uuid.MarshalBinary()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		var u UUID
		err := u.UnmarshalBinary(data)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_EncodeToHex(b *testing.B) {
	uuid := Must(NewV4())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.EncodeToHex()
	}
}

func BenchmarkDecodeFromHex(b *testing.B) {
	s := "f47ac10b58cc4372a5670e02b2c3d479"
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := DecodeFromHex(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_EncodeToBase64(b *testing.B) {
	uuid := Must(NewV4())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid.EncodeToBase64()
	}
}

func BenchmarkDecodeFromBase64(b *testing.B) {
	uuid := Must(NewV4())
	s := uuid.EncodeToBase64()
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := DecodeFromBase64(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_Compare(b *testing.B) {
	uuid1 := Must(NewV4())
	uuid2 := Must(NewV4())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = uuid1.Compare(uuid2)
	}
}

func BenchmarkUUID_AppendEncode(b *testing.B) {
	uuid := Must(NewV4())
	buf := make([]byte, 0, 64)
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf = uuid.AppendEncode(buf[:0], StyleUpper)
	}
}

func BenchmarkParseBytes(b *testing.B) {
	s := []byte("urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479")
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, err := ParseBytes(s)
		if err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkUUID_Fields(b *testing.B) {
	uuid := Must(NewV4())
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = FromFields(uuid.Fields())
	}
}
