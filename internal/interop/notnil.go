// Package interop builds boards from external position sources. FEN parsing
// is delegated to github.com/notnil/chess rather than re-implemented here;
// only the piece placement is carried over, since side to move, castling
// rights and en passant state have no meaning for per-piece move geometry.
package interop

import (
	notnil "github.com/notnil/chess"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FromFEN builds a board holding the piece placement described by a FEN
// string. A malformed string yields an error wrapping ErrInvalidFEN.
func FromFEN(fen string) (*chess.Board, error) {
	opt, err := notnil.FEN(fen)
	if err != nil {
		return nil, errors.Wrapf(errors.ErrInvalidFEN, "parse %q: %v", fen, err)
	}
	return FromPosition(notnil.NewGame(opt).Position())
}

// FromPosition builds a board from an already-parsed notnil/chess position.
func FromPosition(pos *notnil.Position) (*chess.Board, error) {
	board := chess.NewBoard()
	for sq := 0; sq < 64; sq++ {
		square := notnil.Square(sq)
		occupant := pos.Board().Piece(square)
		if occupant == notnil.NoPiece {
			continue
		}

		pieceType, ok := convertType(occupant.Type())
		if !ok {
			return nil, errors.Wrapf(errors.ErrInvalidFEN, "unknown piece on %v", square)
		}
		coord := chess.Coord{File: int(square.File()), Rank: int(square.Rank())}
		piece := chess.NewPiece(convertColour(occupant.Color()), pieceType, coord)
		if err := board.Place(piece, coord); err != nil {
			return nil, err
		}
	}
	return board, nil
}

// convertColour maps a notnil/chess colour onto ours.
func convertColour(c notnil.Color) chess.Colour {
	if c == notnil.White {
		return chess.White
	}
	return chess.Black
}

// convertType maps a notnil/chess piece type onto ours.
func convertType(t notnil.PieceType) (chess.PieceType, bool) {
	switch t {
	case notnil.King:
		return chess.King, true
	case notnil.Queen:
		return chess.Queen, true
	case notnil.Rook:
		return chess.Rook, true
	case notnil.Bishop:
		return chess.Bishop, true
	case notnil.Knight:
		return chess.Knight, true
	case notnil.Pawn:
		return chess.Pawn, true
	default:
		return 0, false
	}
}
