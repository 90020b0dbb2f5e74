package board

import (
	"errors"
	"fmt"
	"math/bits"
	"strings"

	"github.com/dylhunn/dragontoothmg"
)

// Move is the library's 16 bit move encoding. The zero value never encodes a
// real move (a1a1), so it doubles as the "no move" sentinel.
type Move = dragontoothmg.Move

const NoMove Move = 0

// PieceType is the colourless piece kind as used by dragontoothmg.
type PieceType = dragontoothmg.Piece

const (
	NoPieceType PieceType = dragontoothmg.Nothing
	Pawn        PieceType = dragontoothmg.Pawn
	Knight      PieceType = dragontoothmg.Knight
	Bishop      PieceType = dragontoothmg.Bishop
	Rook        PieceType = dragontoothmg.Rook
	Queen       PieceType = dragontoothmg.Queen
	King        PieceType = dragontoothmg.King
)

type Color uint8

const (
	White Color = 0
	Black Color = 1
)

// Piece combines colour and type: white pieces are 1..6, black pieces 9..14,
// so piece&7 is the type and piece&8 the colour bit.
type Piece uint8

const NoPiece Piece = 0

const (
	ColorNB  = 2
	PieceNB  = 16
	SquareNB = 64
	NoSquare = uint8(64)
)

// MakePiece builds a Piece from a colour and a type.
func MakePiece(c Color, pt PieceType) Piece {
	if pt == NoPieceType {
		return NoPiece
	}
	return Piece(uint8(c)<<3 | uint8(pt))
}

// Type returns the colourless type of the piece.
func (p Piece) Type() PieceType { return PieceType(p & 7) }

// Color returns the owner of the piece. NoPiece reports White.
func (p Piece) Color() Color { return Color(p >> 3) }

// Value is a centipawn-scaled score used by exchange evaluation and ordering.
type Value int32

// ExtMove is a move together with its ordering score.
type ExtMove struct {
	Move  Move
	Value Value
}

var (
	ErrInvalidFEN  = errors.New("invalid fen")
	ErrIllegalMove = errors.New("illegal move")
)

// Position wraps a dragontoothmg board and answers the queries the move
// picker needs. The legal move list is cached until the next Apply.
type Position struct {
	b          dragontoothmg.Board
	legal      []Move
	legalValid bool
}

const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN parses a FEN string into a Position.
func FromFEN(fen string) (pos *Position, err error) {
	if err := checkFEN(fen); err != nil {
		return nil, fmt.Errorf("parse fen %q: %w", fen, err)
	}
	defer func() {
		if r := recover(); r != nil {
			pos = nil
			err = fmt.Errorf("parse fen %q: %w: %v", fen, ErrInvalidFEN, r)
		}
	}()
	return &Position{b: dragontoothmg.ParseFen(fen)}, nil
}

// checkFEN rejects input the library would silently misread.
func checkFEN(fen string) error {
	fields := strings.Fields(fen)
	if len(fields) < 4 {
		return fmt.Errorf("%w: want at least 4 fields, got %d", ErrInvalidFEN, len(fields))
	}
	ranks := strings.Split(fields[0], "/")
	if len(ranks) != 8 {
		return fmt.Errorf("%w: want 8 ranks, got %d", ErrInvalidFEN, len(ranks))
	}
	var kings [2]int
	for _, rank := range ranks {
		files := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '8':
				files += int(ch - '0')
			case strings.ContainsRune("pnbrqkPNBRQK", ch):
				files++
				if ch == 'K' {
					kings[White]++
				} else if ch == 'k' {
					kings[Black]++
				}
			default:
				return fmt.Errorf("%w: unexpected character %q", ErrInvalidFEN, ch)
			}
		}
		if files != 8 {
			return fmt.Errorf("%w: rank %q covers %d files", ErrInvalidFEN, rank, files)
		}
	}
	if kings[White] != 1 || kings[Black] != 1 {
		return fmt.Errorf("%w: want one king per side", ErrInvalidFEN)
	}
	if fields[1] != "w" && fields[1] != "b" {
		return fmt.Errorf("%w: side to move %q", ErrInvalidFEN, fields[1])
	}
	return nil
}

// FEN returns the position in Forsyth-Edwards notation.
func (p *Position) FEN() string { return p.b.ToFen() }

func (p *Position) String() string { return p.FEN() }

// Hash returns the Zobrist key of the position.
func (p *Position) Hash() uint64 { return p.b.Hash() }

// SideToMove reports which side plays next.
func (p *Position) SideToMove() Color {
	if p.b.Wtomove {
		return White
	}
	return Black
}

// InCheck reports whether the side to move is in check.
func (p *Position) InCheck() bool { return p.b.OurKingInCheck() }

// PieceOn returns the piece standing on sq, or NoPiece.
func (p *Position) PieceOn(sq uint8) Piece {
	if pt, ok := pieceTypeAt(sq, &p.b.White); ok {
		return MakePiece(White, pt)
	}
	if pt, ok := pieceTypeAt(sq, &p.b.Black); ok {
		return MakePiece(Black, pt)
	}
	return NoPiece
}

// MovedPiece returns the piece on the origin square of m.
func (p *Position) MovedPiece(m Move) Piece { return p.PieceOn(m.From()) }

// CapturedType returns the type captured by m, Pawn for en passant, and
// NoPieceType for non-captures.
func (p *Position) CapturedType(m Move) PieceType {
	to := m.To()
	if pc := p.PieceOn(to); pc != NoPiece {
		return pc.Type()
	}
	if p.isEnPassant(m) {
		return Pawn
	}
	return NoPieceType
}

// IsCapture reports whether m removes an enemy piece, en passant included.
func (p *Position) IsCapture(m Move) bool { return p.CapturedType(m) != NoPieceType }

// isEnPassant spots a pawn changing file onto an empty square.
func (p *Position) isEnPassant(m Move) bool {
	from, to := m.From(), m.To()
	if from%8 == to%8 {
		return false
	}
	if p.MovedPiece(m).Type() != Pawn {
		return false
	}
	return (p.b.White.All|p.b.Black.All)&(uint64(1)<<to) == 0
}

// Apply plays m and returns the closure that takes it back.
func (p *Position) Apply(m Move) func() {
	p.legalValid = false
	undo := p.b.Apply(m)
	return func() {
		undo()
		p.legalValid = false
	}
}

func (p *Position) bitboards(c Color) *dragontoothmg.Bitboards {
	if c == White {
		return &p.b.White
	}
	return &p.b.Black
}

func (p *Position) occupied() uint64 { return p.b.White.All | p.b.Black.All }

func pieceTypeAt(sq uint8, bb *dragontoothmg.Bitboards) (PieceType, bool) {
	mask := uint64(1) << sq
	if bb.All&mask == 0 {
		return NoPieceType, false
	}
	switch {
	case bb.Pawns&mask != 0:
		return Pawn, true
	case bb.Knights&mask != 0:
		return Knight, true
	case bb.Bishops&mask != 0:
		return Bishop, true
	case bb.Rooks&mask != 0:
		return Rook, true
	case bb.Queens&mask != 0:
		return Queen, true
	case bb.Kings&mask != 0:
		return King, true
	}
	return NoPieceType, false
}

// SquareName renders a 0..63 index in algebraic form.
func SquareName(sq uint8) string {
	if sq >= SquareNB {
		return "-"
	}
	return string([]byte{'a' + sq%8, '1' + sq/8})
}

// ParseSquare converts "e4" into its index.
func ParseSquare(s string) (uint8, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, fmt.Errorf("invalid square %q", s)
	}
	return (s[1]-'1')*8 + (s[0] - 'a'), nil
}

func lsb(x uint64) uint8 { return uint8(bits.TrailingZeros64(x)) }
