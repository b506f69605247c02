package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// Pawn start ranks, zero-based: white pawns begin on rank 1 and advance
// toward rank 7, black pawns begin on rank 6 and advance toward rank 0.
const (
	whitePawnStartRank = 1
	blackPawnStartRank = 6
)

// pawnCandidateOffsets is the colour-independent candidate set for pawn
// generation: single and double pushes, the two capture diagonals, and the
// mirrored offsets for the other colour's advance direction. Each candidate
// is filtered through IsValidMove, so generation can never drift from the
// validation rules.
var pawnCandidateOffsets = [8][2]int{
	{-1, 1}, {0, 1}, {1, 1}, {0, 2},
	{-1, -1}, {0, -1}, {1, -1}, {0, -2},
}

// pawnAdvance returns the rank direction a pawn of the given colour moves in.
func pawnAdvance(colour chess.Colour) int {
	if colour == chess.White {
		return 1
	}
	return -1
}

// pawnStartRank returns the starting rank for pawns of the given colour.
func pawnStartRank(colour chess.Colour) int {
	if colour == chess.White {
		return whitePawnStartRank
	}
	return blackPawnStartRank
}

// isValidPawnMove applies the pawn rules: one square straight ahead onto an
// empty square, one square diagonally ahead onto an opposite colour piece,
// or two squares straight ahead from the start rank across two empty
// squares. The caller has already rejected off-board, zero-displacement and
// own-colour targets.
func isValidPawnMove(board chess.BoardQuery, piece *chess.Piece, target chess.Coord) bool {
	dir := pawnAdvance(piece.Colour)
	fileDiff := target.File - piece.Pos.File
	rankDiff := target.Rank - piece.Pos.Rank

	switch {
	case fileDiff == 0 && rankDiff == dir:
		// Single push; a pawn never captures straight ahead.
		return !board.IsOccupied(target.File, target.Rank)

	case fileDiff == 0 && rankDiff == 2*dir && piece.Pos.Rank == pawnStartRank(piece.Colour):
		// Double push; both the crossed and the destination square must be empty.
		return !board.IsOccupied(target.File, target.Rank-dir) &&
			!board.IsOccupied(target.File, target.Rank)

	case (fileDiff == 1 || fileDiff == -1) && rankDiff == dir:
		// Capture only; a pawn never moves diagonally onto an empty square.
		return board.IsOccupied(target.File, target.Rank) &&
			board.GetPiece(target.File, target.Rank).Colour != piece.Colour
	}

	return false
}

// pawnMoves generates pawn moves by filtering the fixed candidate set
// through the validator rather than re-deriving the pawn rules.
func pawnMoves(board chess.BoardQuery, piece *chess.Piece) []chess.Coord {
	moves := make([]chess.Coord, 0, 4)
	for _, off := range pawnCandidateOffsets {
		target := chess.Coord{File: piece.Pos.File + off[0], Rank: piece.Pos.Rank + off[1]}
		if IsValidMove(board, piece, target) {
			moves = append(moves, target)
		}
	}
	return moves
}
