package engine

import (
	"testing"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/testutil"
)

func TestPawnSinglePush(t *testing.T) {
	t.Run("white advances toward rank 8", func(t *testing.T) {
		board, pawn := buildBoard(t, placement{chess.White, chess.Pawn, "e2"})
		checkTargets(t, board, pawn, []string{"e3"}, []string{"e1", "d2", "f2"})
	})

	t.Run("black advances toward rank 1", func(t *testing.T) {
		board, pawn := buildBoard(t, placement{chess.Black, chess.Pawn, "e7"})
		checkTargets(t, board, pawn, []string{"e6"}, []string{"e8", "d7", "f7"})
	})

	t.Run("blocked by any piece", func(t *testing.T) {
		board, pawn := buildBoard(t,
			placement{chess.White, chess.Pawn, "e2"},
			placement{chess.Black, chess.Knight, "e3"},
		)
		// Pawns never capture straight ahead.
		checkTargets(t, board, pawn, nil, []string{"e3", "e4"})
	})
}

func TestPawnDoublePush(t *testing.T) {
	t.Run("from start rank across empty squares", func(t *testing.T) {
		board, pawn := buildBoard(t, placement{chess.White, chess.Pawn, "e2"})
		checkTargets(t, board, pawn, []string{"e4"}, nil)
	})

	t.Run("blocked on the crossed square", func(t *testing.T) {
		board, pawn := buildBoard(t,
			placement{chess.White, chess.Pawn, "e2"},
			placement{chess.Black, chess.Bishop, "e3"},
		)
		checkTargets(t, board, pawn, nil, []string{"e4"})
	})

	t.Run("blocked on the destination square", func(t *testing.T) {
		board, pawn := buildBoard(t,
			placement{chess.White, chess.Pawn, "e2"},
			placement{chess.Black, chess.Bishop, "e4"},
		)
		checkTargets(t, board, pawn, []string{"e3"}, []string{"e4"})
	})

	t.Run("only from the start rank", func(t *testing.T) {
		board, pawn := buildBoard(t, placement{chess.White, chess.Pawn, "e3"})
		checkTargets(t, board, pawn, []string{"e4"}, []string{"e5"})
	})

	t.Run("black start rank is rank 7", func(t *testing.T) {
		board, pawn := buildBoard(t, placement{chess.Black, chess.Pawn, "d7"})
		checkTargets(t, board, pawn, []string{"d6", "d5"}, []string{"d4"})
	})
}

func TestPawnDiagonalCapture(t *testing.T) {
	t.Run("empty diagonal is not a move", func(t *testing.T) {
		board, pawn := buildBoard(t, placement{chess.White, chess.Pawn, "e2"})
		checkTargets(t, board, pawn, nil, []string{"d3", "f3"})
	})

	t.Run("captures opposite colour", func(t *testing.T) {
		board, pawn := buildBoard(t,
			placement{chess.White, chess.Pawn, "e2"},
			placement{chess.Black, chess.Knight, "f3"},
		)
		checkTargets(t, board, pawn, []string{"f3"}, []string{"d3"})
	})

	t.Run("never captures own colour", func(t *testing.T) {
		board, pawn := buildBoard(t,
			placement{chess.White, chess.Pawn, "e2"},
			placement{chess.White, chess.Knight, "f3"},
		)
		checkTargets(t, board, pawn, nil, []string{"f3"})
	})

	t.Run("black captures toward rank 1", func(t *testing.T) {
		board, pawn := buildBoard(t,
			placement{chess.Black, chess.Pawn, "d5"},
			placement{chess.White, chess.Pawn, "c4"},
			placement{chess.White, chess.Pawn, "e4"},
		)
		checkTargets(t, board, pawn, []string{"c4", "e4", "d4"}, []string{"c6", "e6"})
	})
}

func TestPawnNeverMovesBackward(t *testing.T) {
	board, pawn := buildBoard(t,
		placement{chess.White, chess.Pawn, "e4"},
		placement{chess.Black, chess.Knight, "d3"},
		placement{chess.Black, chess.Knight, "f3"},
	)
	// Backward pushes and backward "captures" are all rejected.
	checkTargets(t, board, pawn, nil, []string{"e3", "e2", "d3", "f3"})
}

func TestPawnGenerationDelegatesToValidation(t *testing.T) {
	tests := []struct {
		name   string
		pieces []placement
		want   []string
	}{
		{
			name:   "white pawn on start rank, empty board",
			pieces: []placement{{chess.White, chess.Pawn, "e2"}},
			want:   []string{"e3", "e4"},
		},
		{
			name:   "black pawn on start rank, empty board",
			pieces: []placement{{chess.Black, chess.Pawn, "d7"}},
			want:   []string{"d6", "d5"},
		},
		{
			name: "captures on both diagonals",
			pieces: []placement{
				{chess.White, chess.Pawn, "e4"},
				{chess.Black, chess.Pawn, "d5"},
				{chess.Black, chess.Pawn, "f5"},
			},
			want: []string{"d5", "e5", "f5"},
		},
		{
			name: "fully blocked pawn has no moves",
			pieces: []placement{
				{chess.White, chess.Pawn, "e2"},
				{chess.White, chess.Rook, "e3"},
			},
			want: nil,
		},
		{
			name:   "edge file pawn stays on the board",
			pieces: []placement{{chess.White, chess.Pawn, "a2"}},
			want:   []string{"a3", "a4"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, pawn := buildBoard(t, tt.pieces...)
			got := PossibleMoves(board, pawn)

			var want []chess.Coord
			if tt.want != nil {
				want = testutil.Coords(t, tt.want...)
			}
			testutil.AssertEqual(t,
				testutil.SortCoords(got),
				testutil.SortCoords(want),
			)
		})
	}
}
