package uuid

import (
	"encoding/base64"
	"encoding/hex"
	"strconv"
	"strings"
)

// EncodeToHex encodes the UUID to a hexadecimal string without hyphens
func (u UUID) EncodeToHex() string {
	return hex.EncodeToString(u[:])
}

// EncodeToBase64 encodes the UUID to a base64 string (URL-safe, no padding)
func (u UUID) EncodeToBase64() string {
	return base64.RawURLEncoding.EncodeToString(u[:])
}

// EncodeToBase64Std encodes the UUID to a standard base64 string
func (u UUID) EncodeToBase64Std() string {
	return base64.StdEncoding.EncodeToString(u[:])
}

// BinaryString renders all 128 bits of the UUID grouped like the canonical
// form (32-16-16-16-48), which makes the version and variant fields easy to
// read off.
func (u UUID) BinaryString() string {
	msb, lsb := u.Halves()
	bits := pad64(msb) + pad64(lsb)

	var sb strings.Builder
	sb.Grow(132)
	sb.WriteString(bits[0:32])
	sb.WriteByte('-')
	sb.WriteString(bits[32:48])
	sb.WriteByte('-')
	sb.WriteString(bits[48:64])
	sb.WriteByte('-')
	sb.WriteString(bits[64:80])
	sb.WriteByte('-')
	sb.WriteString(bits[80:128])
	return sb.String()
}

func pad64(v uint64) string {
	s := strconv.FormatUint(v, 2)
	return strings.Repeat("0", 64-len(s)) + s
}

// DecodeFromHex decodes a hexadecimal string to UUID
func DecodeFromHex(s string) (UUID, error) {
	var uuid UUID
	if len(s) != 32 {
		return uuid, ErrInvalidFormat
	}
	_, err := hex.Decode(uuid[:], []byte(s))
	if err != nil {
		return uuid, ErrInvalidFormat
	}
	return uuid, nil
}

// DecodeFromBase64 decodes a base64 string to UUID (URL-safe encoding)
func DecodeFromBase64(s string) (UUID, error) {
	return decodeBase64(base64.RawURLEncoding, s)
}

// DecodeFromBase64Std decodes a standard base64 string to UUID
func DecodeFromBase64Std(s string) (UUID, error) {
	return decodeBase64(base64.StdEncoding, s)
}

func decodeBase64(enc *base64.Encoding, s string) (UUID, error) {
	var uuid UUID
	data, err := enc.DecodeString(s)
	if err != nil {
		return uuid, ErrInvalidFormat
	}
	return FromBytes(data)
}

// FromBytes creates a UUID from a 16-byte big-endian slice
func FromBytes(b []byte) (UUID, error) {
	var uuid UUID
	if len(b) != 16 {
		return uuid, ErrInvalidLength
	}
	copy(uuid[:], b)
	return uuid, nil
}

// MustFromBytes is like FromBytes but panics on error
func MustFromBytes(b []byte) UUID {
	uuid, err := FromBytes(b)
	if err != nil {
		panic(err)
	}
	return uuid
}
