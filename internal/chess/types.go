// Package chess provides the core types for piece-level move reasoning:
// colours, piece types, board coordinates and the read-only board view the
// move engine queries.
package chess

import "fmt"

// Colour represents the colour of a piece or player.
type Colour int

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// ParseColour parses "white" or "black" (case-sensitive, lower case).
func ParseColour(s string) (Colour, bool) {
	switch s {
	case "white":
		return White, true
	case "black":
		return Black, true
	default:
		return White, false
	}
}

// PieceType represents a chess piece type.
type PieceType int

const (
	Pawn PieceType = iota
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceTypes
)

// String returns the string representation of a piece type.
func (p PieceType) String() string {
	names := []string{"Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(p) >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p PieceType) Letter() byte {
	letters := []byte{'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(p) >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// BoardSize is the number of files and ranks on the board.
const BoardSize = 8

// Coord identifies a board square by zero-based file and rank.
// (0, 0) is a1 and (7, 7) is h8.
type Coord struct {
	File int
	Rank int
}

// InBounds reports whether the coordinate lies on the board.
func (c Coord) InBounds() bool {
	return c.File >= 0 && c.File < BoardSize && c.Rank >= 0 && c.Rank < BoardSize
}

// String returns the algebraic name of the square, e.g. "e4".
// Off-board coordinates are rendered as "(file,rank)".
func (c Coord) String() string {
	if !c.InBounds() {
		return fmt.Sprintf("(%d,%d)", c.File, c.Rank)
	}
	return string([]byte{byte('a' + c.File), byte('1' + c.Rank)})
}

// ParseCoord parses an algebraic square name such as "e4".
func ParseCoord(s string) (Coord, bool) {
	if len(s) != 2 {
		return Coord{}, false
	}
	file := s[0]
	rank := s[1]
	if file < 'a' || file > 'h' || rank < '1' || rank > '8' {
		return Coord{}, false
	}
	return Coord{File: int(file - 'a'), Rank: int(rank - '1')}, true
}
