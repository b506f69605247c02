package engine

import "github.com/lgbarn/movegen-go/internal/chess"

// Direction and offset tables. Generation walks them in the order given
// here, so the output order of PossibleMoves is deterministic.
var (
	rookDirections   = [4][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	bishopDirections = [4][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	queenDirections  = [8][2]int{
		{0, 1}, {0, -1}, {1, 0}, {-1, 0},
		{1, 1}, {1, -1}, {-1, 1}, {-1, -1},
	}
	knightOffsets = [8][2]int{
		{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2},
		{1, -2}, {1, 2}, {2, -1}, {2, 1},
	}
	kingOffsets = [8][2]int{
		{-1, -1}, {-1, 0}, {-1, 1}, {0, -1},
		{0, 1}, {1, -1}, {1, 0}, {1, 1},
	}
)

// PossibleMoves returns every square piece may move to from its current
// position, in a deterministic order with no duplicates. The result is
// recomputed on every call; it agrees exactly with IsValidMove: a square is
// in the result if and only if IsValidMove accepts it.
func PossibleMoves(board chess.BoardQuery, piece *chess.Piece) []chess.Coord {
	switch piece.Type {
	case chess.Rook:
		return slidingMoves(board, piece, rookDirections[:])
	case chess.Bishop:
		return slidingMoves(board, piece, bishopDirections[:])
	case chess.Queen:
		return slidingMoves(board, piece, queenDirections[:])
	case chess.Knight:
		return offsetMoves(board, piece, knightOffsets[:])
	case chess.King:
		return offsetMoves(board, piece, kingOffsets[:])
	case chess.Pawn:
		return pawnMoves(board, piece)
	}
	return nil
}

// slidingMoves ray-casts from the piece's square along each direction in
// turn: empty squares are included and the walk continues, an opposite
// colour occupant is included and ends the ray, an own colour occupant or
// the board edge ends the ray immediately.
func slidingMoves(board chess.BoardQuery, piece *chess.Piece, directions [][2]int) []chess.Coord {
	moves := make([]chess.Coord, 0, 16)
	for _, dir := range directions {
		file := piece.Pos.File + dir[0]
		rank := piece.Pos.Rank + dir[1]
		for board.IsValidPosition(file, rank) {
			if board.IsOccupied(file, rank) {
				if board.GetPiece(file, rank).Colour != piece.Colour {
					moves = append(moves, chess.Coord{File: file, Rank: rank})
				}
				break
			}
			moves = append(moves, chess.Coord{File: file, Rank: rank})
			file += dir[0]
			rank += dir[1]
		}
	}
	return moves
}

// offsetMoves filters a fixed offset table (knight jumps or king steps) by
// board bounds and own-colour occupancy.
func offsetMoves(board chess.BoardQuery, piece *chess.Piece, offsets [][2]int) []chess.Coord {
	moves := make([]chess.Coord, 0, len(offsets))
	for _, off := range offsets {
		file := piece.Pos.File + off[0]
		rank := piece.Pos.Rank + off[1]
		if !board.IsValidPosition(file, rank) {
			continue
		}
		if board.IsOccupied(file, rank) && board.GetPiece(file, rank).Colour == piece.Colour {
			continue
		}
		moves = append(moves, chess.Coord{File: file, Rank: rank})
	}
	return moves
}
