package board

import "testing"

var partitionFENs = []string{
	StartFEN,
	"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
	"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1",
	"4k3/8/8/3pP3/8/8/8/4K3 w - d6 0 1",
}

func generate(pos *Position, gt GenType) []Move {
	var list [256]ExtMove
	n := pos.Generate(gt, list[:])
	out := make([]Move, n)
	for i := 0; i < n; i++ {
		out[i] = list[i].Move
	}
	return out
}

func TestCapturesAndQuietsPartitionLegalMoves(t *testing.T) {
	for _, fen := range partitionFENs {
		pos := mustFEN(t, fen)
		seen := make(map[Move]int)
		for _, m := range generate(pos, Captures) {
			seen[m]++
			if !pos.IsCaptureOrPromotion(m) {
				t.Fatalf("%s: %s in captures is neither capture nor promotion", fen, m.String())
			}
		}
		for _, m := range generate(pos, Quiets) {
			seen[m]++
		}
		legal := pos.LegalMoves()
		if len(seen) != len(legal) {
			t.Fatalf("%s: captures+quiets cover %d moves, want %d", fen, len(seen), len(legal))
		}
		for i := range legal {
			if seen[legal[i]] != 1 {
				t.Fatalf("%s: %s generated %d times", fen, legal[i].String(), seen[legal[i]])
			}
		}
	}
}

func TestPromotionsSplitByPiece(t *testing.T) {
	pos := mustFEN(t, "4k3/1P6/8/8/8/8/8/4K3 w - - 0 1")
	caps := generate(pos, Captures)
	if len(caps) != 1 || caps[0].Promote() != Queen {
		t.Fatalf("expected only the queen promotion in captures, got %v", caps)
	}
	under := 0
	for _, m := range generate(pos, Quiets) {
		if m.Promote() != NoPieceType {
			under++
		}
	}
	if under != 3 {
		t.Fatalf("expected 3 under-promotions among quiets, got %d", under)
	}
}

func TestQuietChecks(t *testing.T) {
	pos := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	checks := generate(pos, QuietChecks)
	if len(checks) != 1 {
		t.Fatalf("expected exactly one quiet check, got %d", len(checks))
	}
	if checks[0].String() != "a1a8" {
		t.Fatalf("expected a1a8, got %s", checks[0].String())
	}
	if !pos.GivesCheck(checks[0]) {
		t.Fatalf("a1a8 must give check")
	}
}

func TestPseudoLegal(t *testing.T) {
	pos := mustFEN(t, StartFEN)
	if !pos.PseudoLegal(mustMove(t, pos, "b1c3")) {
		t.Fatalf("b1c3 must be playable")
	}
	if pos.PseudoLegal(NoMove) {
		t.Fatalf("NoMove is never playable")
	}
	other := mustFEN(t, "4k3/8/8/8/8/8/8/R3K3 w - - 0 1")
	if pos.PseudoLegal(mustMove(t, other, "a1a8")) {
		t.Fatalf("a1a8 is not playable from the start position")
	}
}
