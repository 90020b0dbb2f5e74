package engine

import "chess-ordering/board"

// Scoring writes a Value into every move of the current batch. Higher is
// tried first; the absolute numbers only matter within one batch.

// scoreCaptures ranks by victim value, promotions counting the material they
// add, with the capturing piece's history as a tie break.
func (p *MovePicker) scoreCaptures() {
	for i := 0; i < p.end; i++ {
		m := p.moves[i].Move
		pc := p.pos.MovedPiece(m)
		v := PieceValueMg[p.pos.CapturedType(m)]
		if promo := m.Promote(); promo != board.NoPieceType {
			v += PieceValueMg[promo] - PieceValueMg[board.Pawn]
		}
		p.moves[i].Value = v*captureScale + p.th.History.Get(pc, m.To())/captureHistoryDivisor
	}
}

func (p *MovePicker) scoreQuiets() {
	c := p.pos.SideToMove()
	cm1, cm2, cm4 := p.continuation(1), p.continuation(2), p.continuation(4)

	for i := 0; i < p.end; i++ {
		m := p.moves[i].Move
		pc := p.pos.MovedPiece(m)
		to := m.To()
		v := p.th.History.Get(pc, to) + p.th.FromTo.Get(c, m)
		if cm1 != nil {
			v += cm1.Get(pc, to)
		}
		if cm2 != nil {
			v += cm2.Get(pc, to)
		}
		if cm4 != nil {
			v += cm4.Get(pc, to)
		}
		p.moves[i].Value = v
	}
}

// scoreEvasions puts losing moves last and captures first, the cheapest
// capturer of the most valuable victim leading. The rest go by history.
func (p *MovePicker) scoreEvasions() {
	c := p.pos.SideToMove()
	for i := 0; i < p.end; i++ {
		m := p.moves[i].Move
		pc := p.pos.MovedPiece(m)
		switch see := p.pos.SeeSign(m); {
		case see < 0:
			p.moves[i].Value = see - StatsMax
		case p.pos.IsCapture(m):
			p.moves[i].Value = PieceValueMg[p.pos.CapturedType(m)] - board.Value(pc.Type()) + StatsMax
		default:
			p.moves[i].Value = p.th.History.Get(pc, m.To()) + p.th.FromTo.Get(c, m)
		}
	}
}

// continuation returns the reply table of the move played back plies ago,
// or nil when there is none (root, null move, or no search stack).
func (p *MovePicker) continuation(back int) *CounterMoveStats {
	if p.ss == nil {
		return nil
	}
	return p.ss.At(p.ply - back).CounterMoves
}

// insertionSort orders list by descending Value, keeping ties in place.
func insertionSort(list []board.ExtMove) {
	for i := 1; i < len(list); i++ {
		tmp := list[i]
		j := i
		for ; j > 0 && list[j-1].Value < tmp.Value; j-- {
			list[j] = list[j-1]
		}
		list[j] = tmp
	}
}

// partitionPositive moves the entries with a positive Value to the front and
// returns how many there are.
func partitionPositive(list []board.ExtMove) int {
	n := 0
	for i := range list {
		if list[i].Value > 0 {
			list[i], list[n] = list[n], list[i]
			n++
		}
	}
	return n
}
