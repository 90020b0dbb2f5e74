package engine

import (
	"chess-ordering/board"
)

/*
	HISTORY STATISTICS
	The search keeps track of which moves have been doing well lately and the
	move picker reads it back to rank quiets. Entries are keyed by the moving
	piece and its destination, so two moves with different origins but the same
	piece and target share an entry.

	Updates are an exponential moving average rather than a counter: the stored
	value first shrinks in proportion to the new observation, then the
	observation is added, so the table can never run away.
*/

// StatsMax is the ceiling of every score table. Updates never reach it; it is
// used as an offset that lifts or sinks whole move classes in evasion scoring.
const StatsMax board.Value = 1 << 28

// statsClip rejects observations this large or larger.
const statsClip = 324

// statsGain scales an accepted observation before it is added.
const statsGain = 32

type decay interface {
	divisor() board.Value
}

type plainDecay struct{}

func (plainDecay) divisor() board.Value { return 324 }

type counterDecay struct{}

func (counterDecay) divisor() board.Value { return 936 }

// Stats is a (piece, destination) score table whose decay rate comes from D.
type Stats[D decay] struct {
	table [board.PieceNB][board.SquareNB]board.Value
}

// HistoryStats records how well a piece moving to a square has done.
type HistoryStats = Stats[plainDecay]

// CounterMoveStats records how well a reply did after one given move.
type CounterMoveStats = Stats[counterDecay]

// CounterMoveHistoryStats holds one CounterMoveStats per previous move.
type CounterMoveHistoryStats [board.PieceNB][board.SquareNB]CounterMoveStats

func (s *Stats[D]) Clear() { s.table = [board.PieceNB][board.SquareNB]board.Value{} }

// Get returns the stored score for pc moving to to.
func (s *Stats[D]) Get(pc board.Piece, to uint8) board.Value { return s.table[pc][to] }

// Update folds v into the entry for pc moving to to.
func (s *Stats[D]) Update(pc board.Piece, to uint8, v board.Value) {
	var d D
	decayUpdate(&s.table[pc][to], v, d.divisor())
}

// Clear resets every nested table.
func (c *CounterMoveHistoryStats) Clear() { *c = CounterMoveHistoryStats{} }

// At returns the reply table for the move pc to to.
func (c *CounterMoveHistoryStats) At(pc board.Piece, to uint8) *CounterMoveStats {
	return &c[pc][to]
}

// MoveStats remembers one move per (piece, destination), e.g. the refutation
// of the opponent's last move.
type MoveStats struct {
	table [board.PieceNB][board.SquareNB]board.Move
}

func (s *MoveStats) Clear() { s.table = [board.PieceNB][board.SquareNB]board.Move{} }

func (s *MoveStats) Get(pc board.Piece, to uint8) board.Move { return s.table[pc][to] }

func (s *MoveStats) Update(pc board.Piece, to uint8, m board.Move) { s.table[pc][to] = m }

// FromToStats is a piece agnostic history keyed by side, origin and target.
type FromToStats struct {
	table [board.ColorNB][board.SquareNB][board.SquareNB]board.Value
}

func (s *FromToStats) Clear() {
	s.table = [board.ColorNB][board.SquareNB][board.SquareNB]board.Value{}
}

func (s *FromToStats) Get(c board.Color, m board.Move) board.Value {
	return s.table[c][m.From()][m.To()]
}

func (s *FromToStats) Update(c board.Color, m board.Move, v board.Value) {
	decayUpdate(&s.table[c][m.From()][m.To()], v, plainDecay{}.divisor())
}

func decayUpdate(entry *board.Value, v, divisor board.Value) {
	av := abs(v)
	if av >= statsClip {
		return
	}
	*entry -= *entry * av / divisor
	*entry += v * statsGain
}
