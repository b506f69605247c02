package chess

import (
	"strings"

	"github.com/lgbarn/movegen-go/internal/errors"
)

// BoardQuery is the read-only view of piece occupancy the move engine
// consults. Implementations must not be mutated while a query is in flight;
// the engine itself never writes through this interface.
//
// GetPiece may only be called for a square for which IsOccupied returned
// true; callers must bounds-check with IsValidPosition before calling
// IsOccupied. Violating either precondition is a caller error and is not
// defended against.
type BoardQuery interface {
	IsValidPosition(file, rank int) bool
	IsOccupied(file, rank int) bool
	GetPiece(file, rank int) *Piece
}

// Board is a mailbox implementation of BoardQuery: an 8x8 grid holding at
// most one piece per square. The mutating methods keep each piece's Pos in
// sync with the square the board tracks it on.
type Board struct {
	squares [BoardSize][BoardSize]*Piece
}

// NewBoard creates an empty board.
func NewBoard() *Board {
	return &Board{}
}

// IsValidPosition reports whether both coordinates lie in [0, 7].
func (b *Board) IsValidPosition(file, rank int) bool {
	return Coord{File: file, Rank: rank}.InBounds()
}

// IsOccupied reports whether a piece sits on the given square.
func (b *Board) IsOccupied(file, rank int) bool {
	return b.squares[file][rank] != nil
}

// GetPiece returns the occupant of the given square.
func (b *Board) GetPiece(file, rank int) *Piece {
	return b.squares[file][rank]
}

// At returns the piece on the given square, or nil if the square is empty or
// off the board. Unlike GetPiece it is safe to call unconditionally.
func (b *Board) At(c Coord) *Piece {
	if !c.InBounds() {
		return nil
	}
	return b.squares[c.File][c.Rank]
}

// Place registers a piece on the given square and updates the piece's
// position to match.
func (b *Board) Place(p *Piece, at Coord) error {
	if !at.InBounds() {
		return errors.Wrapf(errors.ErrInvalidSquare, "place %v at %v", p, at)
	}
	if b.squares[at.File][at.Rank] != nil {
		return errors.Wrapf(errors.ErrSquareOccupied, "place %v at %v", p, at)
	}
	p.Pos = at
	b.squares[at.File][at.Rank] = p
	return nil
}

// Remove takes the piece off the given square and returns it.
func (b *Board) Remove(at Coord) (*Piece, error) {
	if !at.InBounds() {
		return nil, errors.Wrapf(errors.ErrInvalidSquare, "remove from %v", at)
	}
	p := b.squares[at.File][at.Rank]
	if p == nil {
		return nil, errors.Wrapf(errors.ErrEmptySquare, "remove from %v", at)
	}
	b.squares[at.File][at.Rank] = nil
	return p, nil
}

// Move relocates the piece on from to to, capturing any occupant of to.
// It applies a move that has already been validated; it performs no
// legality checking of its own.
func (b *Board) Move(from, to Coord) error {
	if !from.InBounds() || !to.InBounds() {
		return errors.Wrapf(errors.ErrInvalidSquare, "move %v to %v", from, to)
	}
	p := b.squares[from.File][from.Rank]
	if p == nil {
		return errors.Wrapf(errors.ErrEmptySquare, "move from %v", from)
	}
	b.squares[from.File][from.Rank] = nil
	b.squares[to.File][to.Rank] = p
	p.Pos = to
	return nil
}

// PiecesOf returns every piece of the given colour in a1..h8 scan order.
func (b *Board) PiecesOf(colour Colour) []*Piece {
	var pieces []*Piece
	for rank := 0; rank < BoardSize; rank++ {
		for file := 0; file < BoardSize; file++ {
			if p := b.squares[file][rank]; p != nil && p.Colour == colour {
				pieces = append(pieces, p)
			}
		}
	}
	return pieces
}

// SetupInitialPosition places the 32 pieces of the standard starting
// position on an otherwise cleared board.
func (b *Board) SetupInitialPosition() {
	b.squares = [BoardSize][BoardSize]*Piece{}

	backRank := []PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for file := 0; file < BoardSize; file++ {
		b.mustPlace(NewPiece(White, backRank[file], Coord{}), Coord{File: file, Rank: 0})
		b.mustPlace(NewPiece(White, Pawn, Coord{}), Coord{File: file, Rank: 1})
		b.mustPlace(NewPiece(Black, Pawn, Coord{}), Coord{File: file, Rank: 6})
		b.mustPlace(NewPiece(Black, backRank[file], Coord{}), Coord{File: file, Rank: 7})
	}
}

func (b *Board) mustPlace(p *Piece, at Coord) {
	if err := b.Place(p, at); err != nil {
		panic(err)
	}
}

// Copy creates a deep copy of the board. Every piece is cloned so that
// mutations of the copy never touch the original's pieces.
func (b *Board) Copy() *Board {
	copied := NewBoard()
	for file := 0; file < BoardSize; file++ {
		for rank := 0; rank < BoardSize; rank++ {
			if p := b.squares[file][rank]; p != nil {
				copied.squares[file][rank] = p.Clone()
			}
		}
	}
	return copied
}

// String renders the board rank 8 first, one rank per line, with FEN-style
// piece letters and '.' for empty squares.
func (b *Board) String() string {
	var sb strings.Builder
	for rank := BoardSize - 1; rank >= 0; rank-- {
		for file := 0; file < BoardSize; file++ {
			if file > 0 {
				sb.WriteByte(' ')
			}
			if p := b.squares[file][rank]; p != nil {
				sb.WriteByte(p.Letter())
			} else {
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
