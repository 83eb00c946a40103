package somna

// Source is a deterministic pseudo-random number generator in the
// mulberry32 lineage. The zero value is a valid source seeded with 0.
//
// Source is a small value type: Next is pure and returns the advanced
// source, so a Source can be copied, replayed, or forked freely. Float
// is the mutating convenience used inside a single render. A Source
// must not be shared between goroutines without external locking.
type Source struct {
	state uint32
}

// NewSource creates a source from a 32-bit seed. The seed's bit pattern
// is used as-is, so negative seeds select distinct sequences.
func NewSource(seed int32) Source {
	return Source{state: uint32(seed)}
}

// Next returns a value in [0, 1) and the advanced source.
// The receiver is left untouched.
func (s Source) Next() (float64, Source) {
	state := s.state + 0x6D2B79F5
	t := (state ^ (state >> 15)) * (state | 1)
	t ^= t + (t^(t>>7))*(t|61)
	return float64(t^(t>>14)) / 4294967296.0, Source{state: state}
}

// Float advances the source in place and returns a value in [0, 1).
func (s *Source) Float() float64 {
	v, next := s.Next()
	*s = next
	return v
}
