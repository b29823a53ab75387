package uuid

import guuid "github.com/google/uuid"

// NewRandom returns a version 4 UUID read from crypto/rand.
func NewRandom() (UUID, error) {
	u, err := guuid.NewRandom()
	if err != nil {
		return Nil, err
	}
	return UUID(u), nil
}

// NewV4 is like NewRandom but panics if the system random source fails,
// which leaves no safe way to continue.
func NewV4() UUID {
	return Must(NewRandom())
}

// Must is a helper that wraps a call to a function returning (UUID, error)
// and panics if the error is non-nil. It is intended for use in variable
// initializations such as:
//
//	var id = uuid.Must(uuid.NewRandom())
func Must(uuid UUID, err error) UUID {
	if err != nil {
		panic(err)
	}
	return uuid
}
