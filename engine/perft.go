package engine

import (
	"errors"
	"fmt"

	"chess-ordering/board"
)

// ErrPerftDepth is returned for depths the per-ply picker stack cannot hold.
var ErrPerftDepth = errors.New("perft depth out of range")

// PlayablePosition is a Position that can also make and take back moves.
type PlayablePosition interface {
	Position
	Apply(m board.Move) func()
}

// PerftEntry is the node count below one root move.
type PerftEntry struct {
	Move  board.Move
	Nodes uint64
}

// perftWalker keeps one picker per ply so the walk does not allocate them.
type perftWalker struct {
	pos     PlayablePosition
	th      *Thread
	ss      *SearchStack
	pickers [MaxPly]MovePicker
}

func newPerftWalker(pos PlayablePosition, th *Thread) *perftWalker {
	return &perftWalker{pos: pos, th: th, ss: NewSearchStack()}
}

// Perft counts the leaf nodes depth plies below pos, enumerating every node
// through a MovePicker. The result equals a plain legal move perft exactly
// when the picker yields every move once. depth may not exceed MaxPly.
func Perft(pos PlayablePosition, th *Thread, depth int) (uint64, error) {
	if err := checkPerftDepth(depth); err != nil {
		return 0, err
	}
	if depth == 0 {
		return 1, nil
	}
	return newPerftWalker(pos, th).walk(0, depth), nil
}

// PerftDivide returns the node count below each root move, in the order the
// picker produced them.
func PerftDivide(pos PlayablePosition, th *Thread, depth int) ([]PerftEntry, error) {
	if err := checkPerftDepth(depth); err != nil {
		return nil, err
	}
	if depth == 0 {
		return nil, nil
	}
	w := newPerftWalker(pos, th)
	mp := &w.pickers[0]
	mp.InitMain(pos, th, board.NoMove, Depth(depth), w.ss, 0)

	var out []PerftEntry
	for m := mp.NextMove(); m != board.NoMove; m = mp.NextMove() {
		out = append(out, PerftEntry{Move: m, Nodes: w.child(0, m, depth-1)})
	}
	return out, nil
}

func checkPerftDepth(depth int) error {
	if depth < 0 || depth > MaxPly {
		return fmt.Errorf("%w: %d not in [0, %d]", ErrPerftDepth, depth, MaxPly)
	}
	return nil
}

func (w *perftWalker) walk(ply, depth int) uint64 {
	mp := &w.pickers[ply]
	mp.InitMain(w.pos, w.th, board.NoMove, Depth(depth), w.ss, ply)

	var nodes uint64
	for m := mp.NextMove(); m != board.NoMove; m = mp.NextMove() {
		if depth == 1 {
			nodes++
			continue
		}
		nodes += w.child(ply, m, depth-1)
	}
	return nodes
}

func (w *perftWalker) child(ply int, m board.Move, depth int) uint64 {
	w.th.EnterMove(w.ss, ply, w.pos.MovedPiece(m), m)
	undo := w.pos.Apply(m)
	defer undo()
	if depth == 0 {
		return 1
	}
	return w.walk(ply+1, depth)
}
