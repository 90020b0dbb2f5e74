package engine

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"chess-ordering/board"
)

func TestPickerPerft(t *testing.T) {
	for _, tc := range []struct {
		fen   string
		depth int
		want  uint64
	}{
		{board.StartFEN, 1, 20},
		{board.StartFEN, 3, 8902},
		{kiwipete, 1, 48},
		{kiwipete, 2, 2039},
		{"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", 3, 2812},
		{"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", 2, 264},
		{"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8", 2, 1486},
	} {
		pos := mustPos(t, tc.fen)
		got, err := Perft(pos, NewThread(), tc.depth)
		if err != nil {
			t.Fatalf("perft(%q, %d): %v", tc.fen, tc.depth, err)
		}
		if got != tc.want {
			t.Fatalf("perft(%q, %d) = %d, want %d", tc.fen, tc.depth, got, tc.want)
		}
	}
}

func TestPickerPerftDivide(t *testing.T) {
	pos := mustPos(t, board.StartFEN)
	entries, err := PerftDivide(pos, NewThread(), 2)
	if err != nil {
		t.Fatalf("PerftDivide: %v", err)
	}
	if len(entries) != 20 {
		t.Fatalf("expected 20 root moves, got %d", len(entries))
	}
	var total uint64
	for _, e := range entries {
		if e.Nodes != 20 {
			t.Fatalf("expected 20 replies to %s, got %d", e.Move.String(), e.Nodes)
		}
		total += e.Nodes
	}
	if total != 400 {
		t.Fatalf("expected 400 nodes, got %d", total)
	}
	if pos.FEN() != mustPos(t, board.StartFEN).FEN() {
		t.Fatalf("position not restored after divide")
	}
}

func TestDumpOrdering(t *testing.T) {
	pos := mustPos(t, kiwipete)
	ttm := mustMove(t, pos, "e2a6")
	var buf bytes.Buffer
	n := DumpOrdering(&buf, pos, NewThread(), ttm, 4)
	if n != 48 {
		t.Fatalf("expected 48 moves, got %d", n)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != n+1 {
		t.Fatalf("expected a header and %d moves, got %d lines", n, len(lines))
	}
	if !strings.HasPrefix(lines[1], "info string #1 e2a6 stage=main_search") {
		t.Fatalf("hash move must be listed first: %q", lines[1])
	}
}

func TestPerftRejectsDepthBeyondStack(t *testing.T) {
	pos := mustPos(t, board.StartFEN)
	for _, depth := range []int{-1, MaxPly + 1} {
		if _, err := Perft(pos, NewThread(), depth); !errors.Is(err, ErrPerftDepth) {
			t.Fatalf("Perft depth %d: expected ErrPerftDepth, got %v", depth, err)
		}
		if _, err := PerftDivide(pos, NewThread(), depth); !errors.Is(err, ErrPerftDepth) {
			t.Fatalf("PerftDivide depth %d: expected ErrPerftDepth, got %v", depth, err)
		}
	}
	if n, err := Perft(pos, NewThread(), 0); err != nil || n != 1 {
		t.Fatalf("Perft depth 0 = %d, %v; want 1", n, err)
	}
}

func TestDumpOrderingLeavesStatsAlone(t *testing.T) {
	pos := mustPos(t, kiwipete)
	th := NewThread()
	th.Stats.Yielded[Quiet] = 7
	th.Stats.Deferred = 3
	before := th.Stats

	var buf bytes.Buffer
	if n := DumpOrdering(&buf, pos, th, board.NoMove, 4); n != 48 {
		t.Fatalf("expected 48 moves, got %d", n)
	}
	if th.Stats != before {
		t.Fatalf("dump changed the stage statistics: %+v", th.Stats)
	}
}
