package engine

import "chess-ordering/board"

// Thread owns the statistics one search worker reads and writes. Workers do
// not share a Thread; sharing policy belongs to whoever runs the workers.
type Thread struct {
	History            HistoryStats
	FromTo             FromToStats
	CounterMoves       MoveStats
	CounterMoveHistory CounterMoveHistoryStats
	Stats              StageStatistics
}

// NewThread allocates a Thread with cleared tables. The countermove history
// alone is a few megabytes, so Threads always live on the heap.
func NewThread() *Thread {
	return new(Thread)
}

// Clear resets all tables; call it when a new search starts.
func (th *Thread) Clear() {
	th.History.Clear()
	th.FromTo.Clear()
	th.CounterMoves.Clear()
	th.CounterMoveHistory.Clear()
	th.Stats.Reset()
}

// StatBonus is the history reward for a cutoff found at depth.
func StatBonus(depth Depth) board.Value {
	d := int(depth / OnePly)
	if d < 1 || d > maxBonusDepth {
		return 0
	}
	return board.Value(d*d + 2*d - 2)
}

// EnterMove records m, played by pc, as the current move of ply. A null move
// is passed as board.NoMove and leaves no reply table behind.
func (th *Thread) EnterMove(ss *SearchStack, ply int, pc board.Piece, m board.Move) {
	s := ss.At(ply)
	s.CurrentMove = m
	if m == board.NoMove {
		s.CounterMoves = nil
		return
	}
	s.CounterMoves = th.CounterMoveHistory.At(pc, m.To())
}

/*
	UpdateStats is called by the search when the quiet move m caused a cutoff
	at ply. m becomes a killer and, if the opponent's last move is known, the
	countermove for it. m is rewarded and every quiet tried before it is
	penalised, in the plain history, the from-to history and the continuation
	tables of ply-1, ply-2 and ply-4.

	pos must still be the position before m is played.
*/
func (th *Thread) UpdateStats(pos Position, ss *SearchStack, ply int, m board.Move, quiets []board.Move, bonus board.Value) {
	ss.At(ply).InsertKiller(m)

	c := pos.SideToMove()
	pc := pos.MovedPiece(m)
	th.FromTo.Update(c, m, bonus)
	th.History.Update(pc, m.To(), bonus)
	th.updateContinuations(ss, ply, pc, m.To(), bonus)

	if prev := ss.At(ply - 1); prev.CounterMoves != nil {
		prevMove := prev.CurrentMove
		prevSq := prevMove.To()
		th.CounterMoves.Update(pos.PieceOn(prevSq), prevSq, m)
	}

	for i := range quiets {
		q := quiets[i]
		qpc := pos.MovedPiece(q)
		th.FromTo.Update(c, q, -bonus)
		th.History.Update(qpc, q.To(), -bonus)
		th.updateContinuations(ss, ply, qpc, q.To(), -bonus)
	}
}

func (th *Thread) updateContinuations(ss *SearchStack, ply int, pc board.Piece, to uint8, bonus board.Value) {
	for _, back := range [...]int{1, 2, 4} {
		if cm := ss.At(ply - back).CounterMoves; cm != nil {
			cm.Update(pc, to, bonus)
		}
	}
}
