package engine

import (
	"math/rand"
	"testing"

	"chess-ordering/board"
)

func TestStatsUpdateArithmetic(t *testing.T) {
	var h HistoryStats
	pc := board.MakePiece(board.White, board.Knight)

	h.Update(pc, 21, 100)
	if got := h.Get(pc, 21); got != 3200 {
		t.Fatalf("expected 3200 after first update, got %d", got)
	}
	h.Update(pc, 21, -50)
	if got := h.Get(pc, 21); got != 1107 {
		t.Fatalf("expected 1107 after second update, got %d", got)
	}
}

func TestCounterMoveStatsDecaySlower(t *testing.T) {
	var cm CounterMoveStats
	pc := board.MakePiece(board.Black, board.Pawn)

	cm.Update(pc, 36, 100)
	cm.Update(pc, 36, -50)
	// 3200 - 3200*50/936 - 1600
	if got := cm.Get(pc, 36); got != 1430 {
		t.Fatalf("expected 1430, got %d", got)
	}
}

func TestStatsIgnoreOutliers(t *testing.T) {
	var h HistoryStats
	pc := board.MakePiece(board.White, board.Queen)
	h.Update(pc, 3, 10)
	h.Update(pc, 3, statsClip)
	h.Update(pc, 3, -statsClip-5)
	if got := h.Get(pc, 3); got != 320 {
		t.Fatalf("outliers must be ignored, got %d", got)
	}
}

func TestStatsStayBounded(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	var h HistoryStats
	var cm CounterMoveStats
	var ft FromToStats
	pc := board.MakePiece(board.White, board.Bishop)

	pos, err := board.FromFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	m, err := pos.ParseMove("e2e4")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}

	for i := 0; i < 100000; i++ {
		v := board.Value(rng.Intn(2*statsClip-1) - (statsClip - 1))
		h.Update(pc, 10, v)
		cm.Update(pc, 10, v)
		ft.Update(board.White, m, v)

		if abs(h.Get(pc, 10)) > 2*statsGain*324 {
			t.Fatalf("history out of range at step %d: %d", i, h.Get(pc, 10))
		}
		if abs(cm.Get(pc, 10)) > 2*statsGain*936 {
			t.Fatalf("countermove history out of range at step %d: %d", i, cm.Get(pc, 10))
		}
		if abs(ft.Get(board.White, m)) > 2*statsGain*324 {
			t.Fatalf("from-to history out of range at step %d: %d", i, ft.Get(board.White, m))
		}
	}
}

func TestStatsClear(t *testing.T) {
	th := NewThread()
	pc := board.MakePiece(board.Black, board.Rook)
	th.History.Update(pc, 63, 200)
	th.CounterMoveHistory.At(pc, 63).Update(pc, 62, 200)
	th.CounterMoves.Update(pc, 63, board.Move(1234))

	th.Clear()
	if th.History.Get(pc, 63) != 0 {
		t.Fatalf("history not cleared")
	}
	if th.CounterMoveHistory.At(pc, 63).Get(pc, 62) != 0 {
		t.Fatalf("countermove history not cleared")
	}
	if th.CounterMoves.Get(pc, 63) != board.NoMove {
		t.Fatalf("countermoves not cleared")
	}
	for p := 0; p < board.PieceNB; p++ {
		for sq := 0; sq < board.SquareNB; sq++ {
			if th.History.Get(board.Piece(p), uint8(sq)) != 0 {
				t.Fatalf("entry %d/%d not zero after clear", p, sq)
			}
		}
	}
}

func TestFromToStatsSeparateSides(t *testing.T) {
	pos, err := board.FromFEN(board.StartFEN)
	if err != nil {
		t.Fatalf("FromFEN: %v", err)
	}
	m, err := pos.ParseMove("g1f3")
	if err != nil {
		t.Fatalf("ParseMove: %v", err)
	}
	var ft FromToStats
	ft.Update(board.White, m, 20)
	if ft.Get(board.White, m) != 640 {
		t.Fatalf("expected 640, got %d", ft.Get(board.White, m))
	}
	if ft.Get(board.Black, m) != 0 {
		t.Fatalf("black entry must be untouched")
	}
	ft.Clear()
	if ft.Get(board.White, m) != 0 {
		t.Fatalf("expected zero after clear")
	}
}
