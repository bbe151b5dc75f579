package ui

import "fmt"

// ID identifies a widget or container across frames.
type ID uint32

const (
	fnvOffset ID = 2166136261
	fnvPrime  ID = 16777619
)

// Hash maps a label to an ID with FNV-1a. A non-zero seed (usually the
// owning container's ID) starts the hash instead of the offset basis, so the
// same label in two containers yields two IDs.
func Hash(s string, seed ID) ID {
	h := fnvOffset
	if seed != 0 {
		h = seed
	}
	for i := 0; i < len(s); i++ {
		h ^= ID(s[i])
		h *= fnvPrime
	}
	return h
}

func (id ID) String() string { return fmt.Sprintf("%08x", uint32(id)) }
