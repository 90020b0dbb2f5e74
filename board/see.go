package board

// SeePieceValue is the material scale of the static exchange evaluator.
var SeePieceValue = [7]Value{
	King:   5000,
	Pawn:   100,
	Knight: 300,
	Bishop: 300,
	Rook:   500,
	Queen:  900,
}

// seeKnownWin is returned by SeeSign when the exchange cannot lose material.
const seeKnownWin Value = 10000

// See returns the material balance of the capture sequence started by m on
// its destination square, both sides always recapturing with their least
// valuable attacker and free to stop whenever continuing would lose.
func (p *Position) See(m Move) Value {
	from, to := m.From(), m.To()
	us := p.SideToMove()

	var gain [32]Value
	occ := p.occupied()

	attacker := p.MovedPiece(m).Type()
	gain[0] = SeePieceValue[p.CapturedType(m)]
	if promo := m.Promote(); promo != NoPieceType {
		gain[0] += SeePieceValue[promo] - SeePieceValue[Pawn]
		attacker = promo
	}

	if p.isEnPassant(m) {
		if us == White {
			occ &^= uint64(1) << (to - 8)
		} else {
			occ &^= uint64(1) << (to + 8)
		}
	}
	occ &^= uint64(1) << from

	attackers := p.attackersTo(to, occ)
	side := us ^ 1
	d := 0
	for d < len(gain)-1 {
		ours := attackers & p.bitboards(side).All
		if ours == 0 {
			break
		}
		d++
		// The piece standing on the target is taken back.
		gain[d] = SeePieceValue[attacker] - gain[d-1]

		sq, pt := p.leastValuable(ours, side)
		occ &^= uint64(1) << sq
		attackers = p.attackersTo(to, occ)
		attacker = pt
		side ^= 1
	}

	for ; d > 0; d-- {
		gain[d-1] = -max(-gain[d-1], gain[d])
	}
	return gain[0]
}

// SeeSign is See with a shortcut: capturing something at least as valuable
// as the capturer never loses material.
func (p *Position) SeeSign(m Move) Value {
	if m.Promote() == NoPieceType &&
		SeePieceValue[p.MovedPiece(m).Type()] <= SeePieceValue[p.CapturedType(m)] {
		return seeKnownWin
	}
	return p.See(m)
}

// SeeGE reports whether the exchange started by m wins at least threshold.
func (p *Position) SeeGE(m Move, threshold Value) bool {
	return p.See(m) >= threshold
}

func (p *Position) leastValuable(set uint64, side Color) (uint8, PieceType) {
	bb := p.bitboards(side)
	for _, cand := range [...]struct {
		bits uint64
		pt   PieceType
	}{
		{bb.Pawns, Pawn},
		{bb.Knights, Knight},
		{bb.Bishops, Bishop},
		{bb.Rooks, Rook},
		{bb.Queens, Queen},
		{bb.Kings, King},
	} {
		if s := set & cand.bits; s != 0 {
			return lsb(s), cand.pt
		}
	}
	return NoSquare, NoPieceType
}
