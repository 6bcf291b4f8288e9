package wargame

import "fmt"

// Namer supplies fresh display names, one per call. City and unit naming
// are external collaborators (§1, §6): map generation or a UI-facing
// layer injects whatever naming scheme it likes; the engine only needs
// something that hands back a string on demand.
type Namer interface {
	Next() string
}

// SequentialNamer is the default Namer: "<Prefix> <n>", incrementing
// from 1. Sufficient for tests and for callers that don't care to wire
// a themed name generator.
type SequentialNamer struct {
	Prefix string
	n      int
}

// NewSequentialNamer builds a SequentialNamer with the given prefix.
func NewSequentialNamer(prefix string) *SequentialNamer {
	return &SequentialNamer{Prefix: prefix}
}

func (s *SequentialNamer) Next() string {
	s.n++
	return fmt.Sprintf("%s %d", s.Prefix, s.n)
}
