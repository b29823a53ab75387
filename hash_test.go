package uuid

import (
	"crypto/sha256"
	"sync"
	"testing"

	guuid "github.com/google/uuid"
)

func TestNewV3_CanonicalValues(t *testing.T) {
	tests := []struct {
		name  string
		space UUID
		want  string
	}{
		{"URL", NamespaceURL, "1cf93550-8eb4-3c32-a229-826cf8c1be59"},
		{"DNS", NamespaceDNS, "45a113ac-c7f2-30b0-90a5-a399ab912716"},
		{"OID", NamespaceOID, "61df151d-7508-321d-ada6-27936752b809"},
		{"X500", NamespaceX500, "d9c53a66-fde2-3d04-b5ad-dce3848df07e"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewV3(tt.space, "test"); got.String() != tt.want {
				t.Errorf("NewV3() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewV5_CanonicalValues(t *testing.T) {
	tests := []struct {
		name  string
		space UUID
		want  string
	}{
		{"URL", NamespaceURL, "da5b8893-d6ca-5c1c-9a9c-91f40a2a3649"},
		{"DNS", NamespaceDNS, "4be0643f-1d98-573b-97cd-ca98a65347dd"},
		{"OID", NamespaceOID, "b428b5d9-df19-5bb9-a1dc-115e071b836c"},
		{"X500", NamespaceX500, "63a3ab2b-61b8-5b04-ae2f-70d3875c6e97"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NewV5(tt.space, "test"); got.String() != tt.want {
				t.Errorf("NewV5() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewV5_ReferenceVector(t *testing.T) {
	got := HashBased(NamespaceDNS, "www.example.com")
	if got.String() != "2ed6657d-e927-568b-95e1-2665a8aea6a2" {
		t.Errorf("HashBased(DNS, www.example.com) = %v", got)
	}
	got = NameBased(NamespaceDNS, "www.example.com")
	if got.String() != "5df41881-3aed-3515-88a7-2f4a814cf09e" {
		t.Errorf("NameBased(DNS, www.example.com) = %v", got)
	}
}

func TestNameBased_Deterministic(t *testing.T) {
	names := [][]byte{nil, {}, []byte("test"), []byte("www.example.com"), {0x00, 0xff, 0x80}}
	for _, space := range []UUID{NamespaceDNS, NamespaceURL, NamespaceOID, NamespaceX500, Nil} {
		for _, name := range names {
			if NewMD5(space, name) != NewMD5(space, name) {
				t.Errorf("NewMD5(%v, %q) is not deterministic", space, name)
			}
			if NewSHA1(space, name) != NewSHA1(space, name) {
				t.Errorf("NewSHA1(%v, %q) is not deterministic", space, name)
			}
			if got, want := NewMD5(space, name), UUID(guuid.NewMD5(guuid.UUID(space), name)); got != want {
				t.Errorf("NewMD5(%v, %q) = %v, google/uuid says %v", space, name, got, want)
			}
			if got, want := NewSHA1(space, name), UUID(guuid.NewSHA1(guuid.UUID(space), name)); got != want {
				t.Errorf("NewSHA1(%v, %q) = %v, google/uuid says %v", space, name, got, want)
			}
		}
	}
}

func TestNewHash_Fields(t *testing.T) {
	// a digest longer than 16 bytes is truncated; version and variant still apply
	u := NewHash(sha256.New(), NamespaceURL, []byte("test"), VersionNameBasedSHA1)
	if u.Version() != VersionNameBasedSHA1 {
		t.Errorf("Version() = %v, want %v", u.Version(), VersionNameBasedSHA1)
	}
	if u.Variant() != VariantRFC4122 {
		t.Errorf("Variant() = %v, want %v", u.Variant(), VariantRFC4122)
	}

	sum := sha256.Sum256(append(NamespaceURL.Bytes(), "test"...))
	for i := range u {
		if i == 6 || i == 8 {
			continue
		}
		if u[i] != sum[i] {
			t.Errorf("byte %d = %#x, want digest byte %#x", i, u[i], sum[i])
		}
	}
	if u[6]&0x0f != sum[6]&0x0f {
		t.Errorf("byte 6 low nibble = %#x, want %#x", u[6]&0x0f, sum[6]&0x0f)
	}
	if u[8]&0x3f != sum[8]&0x3f {
		t.Errorf("byte 8 low bits = %#x, want %#x", u[8]&0x3f, sum[8]&0x3f)
	}
}

func TestNewV5_Concurrent(t *testing.T) {
	want := NewV5(NamespaceDNS, "www.example.com")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				if got := NewV5(NamespaceDNS, "www.example.com"); got != want {
					t.Errorf("NewV5() = %v, want %v", got, want)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestLookupNamespace(t *testing.T) {
	tests := []struct {
		name   string
		want   UUID
		wantOK bool
	}{
		{"dns", NamespaceDNS, true},
		{"URL", NamespaceURL, true},
		{"Oid", NamespaceOID, true},
		{"x500", NamespaceX500, true},
		{"ldap", Nil, false},
	}
	for _, tt := range tests {
		got, ok := LookupNamespace(tt.name)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("LookupNamespace(%q) = %v, %v, want %v, %v", tt.name, got, ok, tt.want, tt.wantOK)
		}
	}
}
