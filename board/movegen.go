package board

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// GenType selects which slice of the move list Generate produces.
type GenType uint8

const (
	// Captures holds captures, en passant and queen promotions.
	Captures GenType = iota
	// Quiets holds everything Captures does not, under-promotions included.
	Quiets
	// QuietChecks holds the Quiets that give check.
	QuietChecks
	// Evasions holds every move while in check.
	Evasions
)

func (gt GenType) String() string {
	switch gt {
	case Captures:
		return "captures"
	case Quiets:
		return "quiets"
	case QuietChecks:
		return "quiet_checks"
	case Evasions:
		return "evasions"
	}
	return fmt.Sprintf("gentype(%d)", uint8(gt))
}

// LegalMoves returns the cached legal move list. Callers must not modify it.
func (p *Position) LegalMoves() []Move {
	if !p.legalValid {
		p.legal = p.b.GenerateLegalMoves()
		p.legalValid = true
	}
	return p.legal
}

// Generate writes the moves of kind gt into list and returns how many were
// written. list must have room for every legal move.
func (p *Position) Generate(gt GenType, list []ExtMove) int {
	n := 0
	for _, m := range p.LegalMoves() {
		var keep bool
		switch gt {
		case Captures:
			keep = p.isTactical(m)
		case Quiets:
			keep = !p.isTactical(m)
		case QuietChecks:
			keep = !p.isTactical(m) && p.GivesCheck(m)
		case Evasions:
			keep = true
		}
		if keep {
			list[n] = ExtMove{Move: m}
			n++
		}
	}
	return n
}

// isTactical matches the Captures generation class.
func (p *Position) isTactical(m Move) bool {
	promo := m.Promote()
	if promo != NoPieceType {
		return promo == Queen
	}
	return p.IsCapture(m)
}

// IsCaptureOrPromotion reports whether m changes material.
func (p *Position) IsCaptureOrPromotion(m Move) bool {
	return m.Promote() != NoPieceType || p.IsCapture(m)
}

// PseudoLegal reports whether a remembered move, typically from the hash
// table or a killer slot, can be played here. The generator only emits legal
// moves, so membership in that list is the test.
func (p *Position) PseudoLegal(m Move) bool {
	if m == NoMove {
		return false
	}
	return slices.Contains(p.LegalMoves(), m)
}

// GivesCheck reports whether playing m leaves the opponent in check.
func (p *Position) GivesCheck(m Move) bool {
	undo := p.b.Apply(m)
	check := p.b.OurKingInCheck()
	undo()
	return check
}

// ParseMove resolves a UCI move string against the legal moves.
func (p *Position) ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	moves := p.LegalMoves()
	for i := range moves {
		if strings.EqualFold(moves[i].String(), s) {
			return moves[i], nil
		}
	}
	return NoMove, fmt.Errorf("parse move %q in %s: %w", s, p.FEN(), ErrIllegalMove)
}
