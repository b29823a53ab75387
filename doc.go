// Package uuid generates and handles RFC 4122 Universally Unique Identifiers.
//
// Supported versions:
//   - Version 1, time-based: a 60-bit timestamp, a 14-bit clock sequence and
//     the 48-bit node of the generating host
//   - Version 3 and 5, name-based: MD5 or SHA-1 of a name space and a name
//   - Version 4, random
//   - The nil UUID
//
// Basic Usage:
//
//	// Time-based
//	id := uuid.NewV1()
//	created, err := id.Time()
//
//	// Name-based; the same inputs always give the same UUID
//	id = uuid.NewV5(uuid.NamespaceDNS, "www.example.com")
//
//	// Random
//	id, err = uuid.NewRandom()
//
//	// Parse and format
//	id, err = uuid.Parse("2ed6657d-e927-568b-95e1-2665a8aea6a2")
//	fmt.Println(id.String())
//
// Version 1 Generation:
//
// Timestamps come from a Clock that never issues the same value twice and
// never issues a smaller value than before, even when the system clock is set
// back. It hands out at most 10,000 timestamps per millisecond (one per
// 100-nanosecond tick); a caller that asks for more waits for the next
// millisecond. The node is the hardware address of the host's primary
// interface, or an MD5 digest of the host's addresses and platform with the
// multicast bit set when no hardware address can be found. The clock
// sequence is chosen at random once per process.
//
// Ordering:
//
// Compare orders UUIDs by their bytes taken as unsigned values, most
// significant first. Version 1 UUIDs do not sort by creation time under this
// order; compare their Timestamp values instead.
//
// Thread Safety:
//
// All operations are thread-safe. Generation takes no locks.
package uuid
