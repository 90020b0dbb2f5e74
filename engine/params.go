package engine

import "chess-ordering/board"

// Depth is measured in plies.
type Depth int

const (
	OnePly Depth = 1

	// Quiescence depths deciding which picker family is used.
	DepthQSChecks     Depth = 0
	DepthQSNoChecks   Depth = -1
	DepthQSRecaptures Depth = -5
)

// MaxMoves bounds the number of moves in any position (218 is the known
// maximum for legal chess).
const MaxMoves = 256

// MaxPly bounds the search stack.
const MaxPly = 128

// PieceValueMg is the middlegame material scale used for capture ordering.
var PieceValueMg = [7]board.Value{
	board.Pawn:   188,
	board.Knight: 753,
	board.Bishop: 826,
	board.Rook:   1285,
	board.Queen:  2513,
}

/*
	Capture ordering: victim value dominates, the history of the capturing
	piece on that square only breaks ties. History entries settle around
	32 * 324, so after the divisor they stay under one unit of victim value.
*/
const (
	captureScale          board.Value = 256
	captureHistoryDivisor board.Value = 64
)

// quietFullSortDepth is the depth from which every quiet is sorted; below it
// only the quiets with a positive score are.
const quietFullSortDepth = 3 * OnePly

// maxBonusDepth caps StatBonus; deeper results do not touch the tables.
const maxBonusDepth = 17
