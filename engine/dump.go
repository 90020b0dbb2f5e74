package engine

import (
	"fmt"
	"io"

	"chess-ordering/board"
)

// DumpOrdering prints the root moves of pos in the order a main search
// picker would hand them out, with the stage each came from and the score it
// was ranked by where the stage scores. It returns the number of moves.
func DumpOrdering(w io.Writer, pos Position, th *Thread, ttm board.Move, depth Depth) int {
	return DumpOrderingWithStack(w, pos, th, NewSearchStack(), ttm, depth)
}

// DumpOrderingWithStack is DumpOrdering with the killers and previous moves
// taken from ss, pos being at ply 0. th.Stats is left as it was.
func DumpOrderingWithStack(w io.Writer, pos Position, th *Thread, ss *SearchStack, ttm board.Move, depth Depth) int {
	saved := th.Stats
	defer func() { th.Stats = saved }()

	mp := NewMainPicker(pos, th, ttm, depth, ss, 0)

	fmt.Fprintln(w, "info string move ordering")
	n := 0
	for m := mp.NextMove(); m != board.NoMove; m = mp.NextMove() {
		n++
		fmt.Fprintf(w, "info string #%d %s stage=%s", n, m.String(), mp.Stage())
		if v, ok := mp.lastScore(m); ok {
			fmt.Fprintf(w, " score=%d", v)
		}
		fmt.Fprintln(w)
	}
	return n
}

// lastScore finds the score m was picked with in the current batch.
func (p *MovePicker) lastScore(m board.Move) (board.Value, bool) {
	switch p.stage {
	case GoodCaptures, Quiet, AllEvasions, QCaptures1, QCaptures2, ProbCutCaptures, Recaptures:
		if p.cur > 0 && p.moves[p.cur-1].Move == m {
			return p.moves[p.cur-1].Value, true
		}
	}
	return 0, false
}
