package slots

import (
	"io"
	"log/slog"
)

// scriptedRNG replays fixed values in a loop. Float64 defaults to 0.999 (no
// wild, no letters) and IntN to 0 when nothing is scripted.
type scriptedRNG struct {
	floats []float64
	ints   []int
	fi, ii int
}

func (s *scriptedRNG) Float64() float64 {
	if len(s.floats) == 0 {
		return 0.999
	}
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	return v
}

func (s *scriptedRNG) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)]
	s.ii++
	return v % n
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
