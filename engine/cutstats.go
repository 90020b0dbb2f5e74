package engine

import (
	"fmt"
	"io"
)

// StageStatistics counts what the move pickers of one Thread did, per stage.
type StageStatistics struct {
	Yielded [StageNB]uint64
	Batches [StageNB]uint64
	// Deferred counts captures pushed back to the bad capture list.
	Deferred uint64
}

func (s *StageStatistics) Reset() {
	*s = StageStatistics{}
}

// Total returns the number of moves handed out over all stages.
func (s *StageStatistics) Total() uint64 {
	var n uint64
	for _, y := range s.Yielded {
		n += y
	}
	return n
}

// Dump writes the counters as UCI info strings.
func (s *StageStatistics) Dump(w io.Writer) {
	fmt.Fprintln(w, "info string Stage statistics:")
	for st := MainSearch; st < Stop; st++ {
		if s.Yielded[st] == 0 && s.Batches[st] == 0 {
			continue
		}
		fmt.Fprintf(w, "info string   %-22s batches: %d yielded: %d\n", st, s.Batches[st], s.Yielded[st])
	}
	fmt.Fprintf(w, "info string   Deferred bad captures: %d\n", s.Deferred)
	fmt.Fprintf(w, "info string   Total moves: %d\n", s.Total())
}
