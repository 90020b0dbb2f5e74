package board

import "github.com/dylhunn/dragontoothmg"

var (
	knightMasks [SquareNB]uint64
	kingMasks   [SquareNB]uint64
	// pawnAttacks[c][sq] holds the squares a pawn of colour c on sq attacks.
	pawnAttacks [ColorNB][SquareNB]uint64
)

func init() {
	knightSteps := [8][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}}
	kingSteps := [8][2]int{{1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}, {0, -1}, {1, -1}}

	for sq := 0; sq < SquareNB; sq++ {
		file, rank := sq%8, sq/8
		for _, s := range knightSteps {
			knightMasks[sq] |= stepMask(file+s[0], rank+s[1])
		}
		for _, s := range kingSteps {
			kingMasks[sq] |= stepMask(file+s[0], rank+s[1])
		}
		pawnAttacks[White][sq] = stepMask(file-1, rank+1) | stepMask(file+1, rank+1)
		pawnAttacks[Black][sq] = stepMask(file-1, rank-1) | stepMask(file+1, rank-1)
	}
}

func stepMask(file, rank int) uint64 {
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return 0
	}
	return uint64(1) << uint(rank*8+file)
}

// attackersTo returns every piece of either colour attacking sq given the
// occupancy occ. Sliders are computed against occ so x-rays appear once the
// blocker is removed from it.
func (p *Position) attackersTo(sq uint8, occ uint64) uint64 {
	w, b := &p.b.White, &p.b.Black
	diag := w.Bishops | w.Queens | b.Bishops | b.Queens
	ortho := w.Rooks | w.Queens | b.Rooks | b.Queens

	att := pawnAttacks[Black][sq]&w.Pawns | pawnAttacks[White][sq]&b.Pawns
	att |= knightMasks[sq] & (w.Knights | b.Knights)
	att |= kingMasks[sq] & (w.Kings | b.Kings)
	att |= dragontoothmg.CalculateBishopMoveBitboard(sq, occ) & diag
	att |= dragontoothmg.CalculateRookMoveBitboard(sq, occ) & ortho
	return att & occ
}
