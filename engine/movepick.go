package engine

import (
	"fmt"

	"chess-ordering/board"
)

// Position is what the move picker needs to know about the board.
// *board.Position implements it.
type Position interface {
	SideToMove() board.Color
	InCheck() bool
	PieceOn(sq uint8) board.Piece
	MovedPiece(m board.Move) board.Piece
	CapturedType(m board.Move) board.PieceType
	IsCapture(m board.Move) bool
	IsCaptureOrPromotion(m board.Move) bool
	PseudoLegal(m board.Move) bool
	See(m board.Move) board.Value
	SeeSign(m board.Move) board.Value
	Generate(gt board.GenType, list []board.ExtMove) int
}

// Stage is one step of the picker's state machine. Each family of stages is
// laid out consecutively, so advancing is always stage+1; the stage after the
// last one of a family sends the picker to Stop.
type Stage uint8

const (
	MainSearch Stage = iota
	GoodCaptures
	Killers
	Quiet
	BadCaptures

	Evasion
	AllEvasions

	QSearchWithChecks
	QCaptures1
	Checks

	QSearchWithoutChecks
	QCaptures2

	ProbCut
	ProbCutCaptures

	Recapture
	Recaptures

	Stop
	StageNB = Stop + 1
)

var stageNames = [StageNB]string{
	"main_search", "good_captures", "killers", "quiet", "bad_captures",
	"evasion", "all_evasions",
	"qsearch_with_checks", "qcaptures_1", "checks",
	"qsearch_without_checks", "qcaptures_2",
	"probcut", "probcut_captures",
	"recapture", "recaptures",
	"stop",
}

func (s Stage) String() string {
	if s < StageNB {
		return stageNames[s]
	}
	return fmt.Sprintf("stage(%d)", uint8(s))
}

// stageGenerators is indexed by the stage being entered.
var stageGenerators = [StageNB]func(*MovePicker){
	MainSearch:           (*MovePicker).finish,
	GoodCaptures:         (*MovePicker).generateCaptures,
	Killers:              (*MovePicker).loadKillers,
	Quiet:                (*MovePicker).generateQuiets,
	BadCaptures:          (*MovePicker).replayBadCaptures,
	Evasion:              (*MovePicker).finish,
	AllEvasions:          (*MovePicker).generateEvasions,
	QSearchWithChecks:    (*MovePicker).finish,
	QCaptures1:           (*MovePicker).generateCaptures,
	Checks:               (*MovePicker).generateQuietChecks,
	QSearchWithoutChecks: (*MovePicker).finish,
	QCaptures2:           (*MovePicker).generateCaptures,
	ProbCut:              (*MovePicker).finish,
	ProbCutCaptures:      (*MovePicker).generateCaptures,
	Recapture:            (*MovePicker).finish,
	Recaptures:           (*MovePicker).generateCaptures,
	Stop:                 (*MovePicker).finish,
}

/*
	MovePicker hands out the moves of one node, one at a time, best guesses
	first, so the search can cut off before most moves are even generated.

	moves is shared by two lists: the current batch grows from the front
	(cur..end) and captures that lose material grow from the back (endBad+1
	up to MaxMoves-1) until their own stage replays them. The back list only
	gains entries during GoodCaptures, and every later batch is generated
	into moves[:endBad+1], so the two never overlap.

	A picker belongs to one node and one goroutine and is not reusable once
	NextMove has returned board.NoMove.
*/
type MovePicker struct {
	pos Position
	th  *Thread
	ss  *SearchStack
	ply int

	countermove     board.Move
	depth           Depth
	ttMove          board.Move
	killers         [3]board.Move
	killerYielded   [3]bool
	recaptureSquare uint8
	threshold       board.Value

	stage    Stage
	cur, end int
	endBad   int
	moves    [MaxMoves]board.ExtMove
}

// NewMainPicker returns a picker for a regular search node at ply. ss may be
// nil, in which case no killers, countermove or continuation history are used.
func NewMainPicker(pos Position, th *Thread, ttm board.Move, depth Depth, ss *SearchStack, ply int) *MovePicker {
	p := new(MovePicker)
	p.InitMain(pos, th, ttm, depth, ss, ply)
	return p
}

// NewQSearchPicker returns a picker for a quiescence node. Depending on depth
// it includes quiet checks, only captures, or only recaptures on recaptureSq.
func NewQSearchPicker(pos Position, th *Thread, ttm board.Move, depth Depth, recaptureSq uint8) *MovePicker {
	p := new(MovePicker)
	p.InitQSearch(pos, th, ttm, depth, recaptureSq)
	return p
}

// NewProbCutPicker returns a picker yielding only captures whose exchange
// value exceeds threshold.
func NewProbCutPicker(pos Position, th *Thread, ttm board.Move, threshold board.Value) *MovePicker {
	p := new(MovePicker)
	p.InitProbCut(pos, th, ttm, threshold)
	return p
}

// InitMain prepares p in place, see NewMainPicker. Searches that keep a
// picker per ply on their own stack use the Init methods to avoid allocating.
func (p *MovePicker) InitMain(pos Position, th *Thread, ttm board.Move, depth Depth, ss *SearchStack, ply int) {
	p.reset(pos, th)
	p.ss, p.ply, p.depth = ss, ply, depth

	if ss != nil {
		if prev := ss.At(ply - 1).CurrentMove; prev != board.NoMove {
			prevSq := prev.To()
			p.countermove = th.CounterMoves.Get(pos.PieceOn(prevSq), prevSq)
		}
	}

	if pos.InCheck() {
		p.stage = Evasion
	} else {
		p.stage = MainSearch
	}
	p.setTTMove(ttm, pos.PseudoLegal(ttm))
}

// InitQSearch prepares p in place, see NewQSearchPicker.
func (p *MovePicker) InitQSearch(pos Position, th *Thread, ttm board.Move, depth Depth, recaptureSq uint8) {
	p.reset(pos, th)
	p.depth = depth

	switch {
	case pos.InCheck():
		p.stage = Evasion
	case depth > DepthQSNoChecks:
		p.stage = QSearchWithChecks
	case depth > DepthQSRecaptures:
		p.stage = QSearchWithoutChecks
	default:
		p.stage = Recapture
		p.recaptureSquare = recaptureSq
		return
	}
	p.setTTMove(ttm, pos.PseudoLegal(ttm))
}

// InitProbCut prepares p in place, see NewProbCutPicker.
func (p *MovePicker) InitProbCut(pos Position, th *Thread, ttm board.Move, threshold board.Value) {
	p.reset(pos, th)
	p.stage = ProbCut
	p.threshold = threshold
	p.setTTMove(ttm, pos.PseudoLegal(ttm) && pos.IsCapture(ttm) && pos.See(ttm) > threshold)
}

func (p *MovePicker) reset(pos Position, th *Thread) {
	p.pos, p.th = pos, th
	p.ss, p.ply = nil, 0
	p.countermove = board.NoMove
	p.depth = 0
	p.ttMove = board.NoMove
	p.killers = [3]board.Move{}
	p.killerYielded = [3]bool{}
	p.recaptureSquare = board.NoSquare
	p.threshold = 0
	p.cur, p.end = 0, 0
	p.endBad = MaxMoves - 1
}

// setTTMove arms the opening stage with the hash move. Without one the batch
// stays empty and the first NextMove call moves straight on.
func (p *MovePicker) setTTMove(ttm board.Move, usable bool) {
	if !usable {
		return
	}
	p.ttMove = ttm
	p.end = 1
}

// Stage reports the stage the last move came from.
func (p *MovePicker) Stage() Stage { return p.stage }

// NextMove returns the next move to search, or board.NoMove once every stage
// is exhausted. It keeps returning board.NoMove after that.
func (p *MovePicker) NextMove() board.Move {
	for {
		for p.cur == p.end && p.stage != Stop {
			p.generateNextStage()
		}

		switch p.stage {
		case MainSearch, Evasion, QSearchWithChecks, QSearchWithoutChecks, ProbCut:
			p.cur++
			return p.yield(p.ttMove)

		case GoodCaptures:
			m := p.pickBest()
			if m == p.ttMove {
				continue
			}
			if p.pos.SeeSign(m) >= 0 {
				return p.yield(m)
			}
			p.moves[p.endBad].Move = m
			p.endBad--
			p.th.Stats.Deferred++

		case Killers:
			idx := p.cur
			m := p.killers[idx]
			p.cur++
			if m != board.NoMove && m != p.ttMove && !(idx == 1 && m == p.killers[0]) &&
				p.pos.PseudoLegal(m) && !p.pos.IsCaptureOrPromotion(m) {
				p.killerYielded[idx] = true
				return p.yield(m)
			}

		case Quiet:
			m := p.moves[p.cur].Move
			p.cur++
			if m != p.ttMove && !p.isYieldedKiller(m) {
				return p.yield(m)
			}

		case BadCaptures:
			m := p.moves[p.cur].Move
			p.cur--
			return p.yield(m)

		case AllEvasions, QCaptures1, QCaptures2:
			if m := p.pickBest(); m != p.ttMove {
				return p.yield(m)
			}

		case ProbCutCaptures:
			if m := p.pickBest(); m != p.ttMove && p.pos.See(m) > p.threshold {
				return p.yield(m)
			}

		case Recaptures:
			if m := p.pickBest(); m.To() == p.recaptureSquare {
				return p.yield(m)
			}

		case Checks:
			m := p.moves[p.cur].Move
			p.cur++
			if m != p.ttMove {
				return p.yield(m)
			}

		case Stop:
			return board.NoMove
		}
	}
}

func (p *MovePicker) yield(m board.Move) board.Move {
	p.th.Stats.Yielded[p.stage]++
	return m
}

func (p *MovePicker) generateNextStage() {
	p.cur = 0
	p.stage++
	stageGenerators[p.stage](p)
	if p.stage != Stop {
		p.th.Stats.Batches[p.stage]++
	}
}

func (p *MovePicker) finish() {
	p.stage = Stop
}

func (p *MovePicker) generateCaptures() {
	p.end = p.pos.Generate(board.Captures, p.moves[:p.endBad+1])
	p.scoreCaptures()
}

func (p *MovePicker) loadKillers() {
	if p.ss == nil {
		p.end = 0
		return
	}
	s := p.ss.At(p.ply)
	p.killers = [3]board.Move{s.Killers[0], s.Killers[1], p.countermove}
	p.end = 2
	if p.countermove != s.Killers[0] && p.countermove != s.Killers[1] {
		p.end = 3
	}
}

func (p *MovePicker) generateQuiets() {
	p.end = p.pos.Generate(board.Quiets, p.moves[:p.endBad+1])
	p.scoreQuiets()
	if p.depth < quietFullSortDepth {
		good := partitionPositive(p.moves[:p.end])
		insertionSort(p.moves[:good])
	} else {
		insertionSort(p.moves[:p.end])
	}
}

// replayBadCaptures walks the back list from its oldest entry, which keeps
// the order they were found in.
func (p *MovePicker) replayBadCaptures() {
	p.cur = MaxMoves - 1
	p.end = p.endBad
}

func (p *MovePicker) generateEvasions() {
	p.end = p.pos.Generate(board.Evasions, p.moves[:p.endBad+1])
	if p.end > 1 {
		p.scoreEvasions()
	}
}

func (p *MovePicker) generateQuietChecks() {
	p.end = p.pos.Generate(board.QuietChecks, p.moves[:p.endBad+1])
}

// pickBest swaps the highest scored remaining move to cur and returns it.
func (p *MovePicker) pickBest() board.Move {
	best := p.cur
	for i := p.cur + 1; i < p.end; i++ {
		if p.moves[i].Value > p.moves[best].Value {
			best = i
		}
	}
	p.moves[p.cur], p.moves[best] = p.moves[best], p.moves[p.cur]
	m := p.moves[p.cur].Move
	p.cur++
	return m
}

func (p *MovePicker) isYieldedKiller(m board.Move) bool {
	for i, k := range p.killers {
		if p.killerYielded[i] && k == m {
			return true
		}
	}
	return false
}
