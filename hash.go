package uuid

import (
	"crypto/md5"
	"crypto/sha1"
	"hash"
)

// NewHash returns a name-based UUID: h is fed the 16 bytes of space followed
// by name, the first 16 bytes of the digest are kept, and the version and
// variant fields are overwritten. h is reset before use.
//
// The result depends only on its arguments, so NewHash is safe to call
// concurrently as long as each caller brings its own h.
func NewHash(h hash.Hash, space UUID, name []byte, version Version) UUID {
	h.Reset()
	h.Write(space[:])
	h.Write(name)
	sum := h.Sum(nil)

	var u UUID
	copy(u[:], sum)
	u.setVersion(version)
	return u
}

// NewMD5 returns a version 3 UUID for name within space.
func NewMD5(space UUID, name []byte) UUID {
	return NewHash(md5.New(), space, name, VersionNameBasedMD5)
}

// NewSHA1 returns a version 5 UUID for name within space.
func NewSHA1(space UUID, name []byte) UUID {
	return NewHash(sha1.New(), space, name, VersionNameBasedSHA1)
}

// NewV3 is NewMD5 for a string name.
func NewV3(space UUID, name string) UUID {
	return NewMD5(space, []byte(name))
}

// NewV5 is NewSHA1 for a string name.
func NewV5(space UUID, name string) UUID {
	return NewSHA1(space, []byte(name))
}

// NameBased is an alias for NewV3
func NameBased(space UUID, name string) UUID {
	return NewV3(space, name)
}

// HashBased is an alias for NewV5
func HashBased(space UUID, name string) UUID {
	return NewV5(space, name)
}
