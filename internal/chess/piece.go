package chess

import "fmt"

// Piece is a single chess piece: its colour, its type and the square the
// board currently tracks it on. The type is fixed for the lifetime of the
// piece; the position is updated by the owning board, never by the move
// engine.
type Piece struct {
	Colour Colour
	Type   PieceType
	Pos    Coord
}

// NewPiece creates a piece at the given square.
func NewPiece(colour Colour, pieceType PieceType, pos Coord) *Piece {
	return &Piece{Colour: colour, Type: pieceType, Pos: pos}
}

// Clone returns an independent copy of the piece. The clone is not placed on
// any board until a caller registers it.
func (p *Piece) Clone() *Piece {
	clone := *p
	return &clone
}

// Letter returns the FEN-style letter for the piece: uppercase for White,
// lowercase for Black.
func (p *Piece) Letter() byte {
	letter := p.Type.Letter()
	if p.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns a short description such as "White Knight on g1".
func (p *Piece) String() string {
	return fmt.Sprintf("%v %v on %v", p.Colour, p.Type, p.Pos)
}
