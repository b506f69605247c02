// Package engine implements geometric move validation and move generation
// for individual chess pieces. It answers two questions about a piece on a
// read-only board: "may it move to this square" and "which squares may it
// move to". Check detection, castling, en passant, promotion and turn order
// are outside its contract and belong to the surrounding game layer.
package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// IsValidMove reports whether piece may move from its current square to
// target under the movement rules for its type. A target off the board, a
// zero-displacement move, or a target occupied by the piece's own colour is
// never valid. The board is only read, never written.
func IsValidMove(board chess.BoardQuery, piece *chess.Piece, target chess.Coord) bool {
	if !board.IsValidPosition(target.File, target.Rank) {
		return false
	}

	from := piece.Pos
	fileDiff := abs(target.File - from.File)
	rankDiff := abs(target.Rank - from.Rank)
	if fileDiff == 0 && rankDiff == 0 {
		return false
	}

	if occupant := occupantAt(board, target); occupant != nil && occupant.Colour == piece.Colour {
		return false
	}

	switch piece.Type {
	case chess.Knight:
		return (fileDiff == 1 && rankDiff == 2) || (fileDiff == 2 && rankDiff == 1)

	case chess.Bishop:
		return fileDiff == rankDiff && isPathClear(board, from, target)

	case chess.Rook:
		if fileDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(board, from, target)

	case chess.Queen:
		if fileDiff != rankDiff && fileDiff != 0 && rankDiff != 0 {
			return false
		}
		return isPathClear(board, from, target)

	case chess.King:
		return fileDiff <= 1 && rankDiff <= 1

	case chess.Pawn:
		return isValidPawnMove(board, piece, target)
	}

	return false
}

// isPathClear walks the squares strictly between from and to along a rank,
// file or diagonal and reports whether all of them are empty. The caller
// guarantees the two squares are aligned.
func isPathClear(board chess.BoardQuery, from, to chess.Coord) bool {
	fileDir := sign(to.File - from.File)
	rankDir := sign(to.Rank - from.Rank)

	file := from.File + fileDir
	rank := from.Rank + rankDir
	for file != to.File || rank != to.Rank {
		if board.IsOccupied(file, rank) {
			return false
		}
		file += fileDir
		rank += rankDir
	}
	return true
}

// occupantAt returns the piece on the given in-bounds square, or nil.
func occupantAt(board chess.BoardQuery, at chess.Coord) *chess.Piece {
	if !board.IsOccupied(at.File, at.Rank) {
		return nil
	}
	return board.GetPiece(at.File, at.Rank)
}
