package engine

import "chess-ordering/board"

// stackOffset leaves room below ply 0 so continuation lookups at ss-4 never
// need a bounds check.
const stackOffset = 4

// Stack is the per-ply search state the move picker reads.
type Stack struct {
	CurrentMove board.Move
	Killers     [2]board.Move
	// CounterMoves is the reply table of CurrentMove, nil for null moves.
	CounterMoves *CounterMoveStats
}

// InsertKiller remembers a quiet cutoff move, newest first, keeping the two
// slots distinct.
func (s *Stack) InsertKiller(m board.Move) {
	if s.Killers[0] != m {
		s.Killers[1] = s.Killers[0]
		s.Killers[0] = m
	}
}

// SearchStack holds one Stack per ply plus the padding entries below ply 0.
type SearchStack struct {
	entries [MaxPly + stackOffset + 1]Stack
}

// NewSearchStack returns a cleared stack.
func NewSearchStack() *SearchStack {
	ss := new(SearchStack)
	ss.Clear()
	return ss
}

// At returns the entry of ply, which may go down to -4.
func (ss *SearchStack) At(ply int) *Stack {
	return &ss.entries[ply+stackOffset]
}

// Clear empties every entry, killers included.
func (ss *SearchStack) Clear() {
	ss.entries = [MaxPly + stackOffset + 1]Stack{}
}
