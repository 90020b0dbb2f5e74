package bench

import (
	"testing"

	"chess-ordering/board"
	"chess-ordering/engine"
)

func benchPicker(b *testing.B, fen string, init func(mp *engine.MovePicker, pos *board.Position, th *engine.Thread, ss *engine.SearchStack)) {
	pos, err := board.FromFEN(fen)
	if err != nil {
		b.Fatalf("FromFEN: %v", err)
	}
	th := engine.NewThread()
	ss := engine.NewSearchStack()
	var mp engine.MovePicker
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		init(&mp, pos, th, ss)
		for m := mp.NextMove(); m != board.NoMove; m = mp.NextMove() {
		}
	}
}

func mainPicker(mp *engine.MovePicker, pos *board.Position, th *engine.Thread, ss *engine.SearchStack) {
	mp.InitMain(pos, th, board.NoMove, 8, ss, 0)
}

func qsearchPicker(mp *engine.MovePicker, pos *board.Position, th *engine.Thread, _ *engine.SearchStack) {
	mp.InitQSearch(pos, th, board.NoMove, engine.DepthQSNoChecks, board.NoSquare)
}

// Only the first move, as a search that cuts off immediately would.
func BenchmarkMainPickerFirstMove_Kiwipete(b *testing.B) {
	pos, err := board.FromFEN(kiwipete)
	if err != nil {
		b.Fatalf("FromFEN: %v", err)
	}
	th := engine.NewThread()
	ss := engine.NewSearchStack()
	var mp engine.MovePicker
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		mp.InitMain(pos, th, board.NoMove, 8, ss, 0)
		_ = mp.NextMove()
	}
}

func BenchmarkMainPicker_Initial(b *testing.B) {
	benchPicker(b, board.StartFEN, mainPicker)
}

func BenchmarkMainPicker_Kiwipete(b *testing.B) {
	benchPicker(b, kiwipete, mainPicker)
}

func BenchmarkQSearchPicker_Kiwipete(b *testing.B) {
	benchPicker(b, kiwipete, qsearchPicker)
}
