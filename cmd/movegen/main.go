// movegen answers piece-level move questions about a chess position: whether
// a single move is geometrically legal, which squares one piece can move to,
// or the full move list of one side. Check, castling, en passant, promotion
// and turn order are deliberately ignored.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/movegen-go/internal/chess"
	"github.com/lgbarn/movegen-go/internal/config"
	"github.com/lgbarn/movegen-go/internal/engine"
	"github.com/lgbarn/movegen-go/internal/interop"
	"github.com/lgbarn/movegen-go/internal/output"
	"github.com/lgbarn/movegen-go/internal/worker"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *versionFlag {
		fmt.Printf("movegen version %s\n", programVersion)
		os.Exit(0)
	}

	opts := buildOptions()
	if err := opts.Validate(); err != nil {
		fatal(err)
	}

	board, err := interop.FromFEN(opts.FEN)
	if err != nil {
		fatal(err)
	}

	writer := output.NewWriter(os.Stdout, opts.JSON)

	switch {
	case opts.All:
		err = runAll(writer, board, opts)
	case opts.Target != "":
		err = runValidate(writer, board, opts)
	default:
		err = runPiece(writer, board, opts)
	}
	if err != nil {
		fatal(err)
	}
}

// runPiece reports the possible moves of the piece on -square.
func runPiece(writer *output.Writer, board *chess.Board, opts *config.Options) error {
	piece, err := pieceAt(board, opts.Square)
	if err != nil {
		return err
	}
	moves := engine.PossibleMoves(board, piece)
	return writer.WriteMoves([]output.PieceMoves{output.NewPieceMoves(piece, moves)})
}

// runValidate reports whether the piece on -square may move to -to.
// The process exits with status 1 when the move is illegal.
func runValidate(writer *output.Writer, board *chess.Board, opts *config.Options) error {
	piece, err := pieceAt(board, opts.Square)
	if err != nil {
		return err
	}
	target, _ := chess.ParseCoord(opts.Target)

	legal := engine.IsValidMove(board, piece, target)
	verdict := output.Verdict{
		Piece: fmt.Sprintf("%v %v", piece.Colour, piece.Type),
		From:  piece.Pos.String(),
		To:    target.String(),
		Legal: legal,
	}
	if err := writer.WriteVerdict(verdict); err != nil {
		return err
	}
	if !legal {
		os.Exit(1)
	}
	return nil
}

// runAll reports the possible moves of every piece of -color, generated in
// parallel across the worker pool.
func runAll(writer *output.Writer, board *chess.Board, opts *config.Options) error {
	colour, _ := chess.ParseColour(opts.Colour)
	pieces := board.PiecesOf(colour)
	moves := worker.GenerateAll(board, pieces, opts.Workers)

	reports := make([]output.PieceMoves, 0, len(pieces))
	for i, piece := range pieces {
		reports = append(reports, output.NewPieceMoves(piece, moves[i]))
	}
	return writer.WriteMoves(reports)
}

// pieceAt resolves an algebraic square name to the piece occupying it.
func pieceAt(board *chess.Board, square string) (*chess.Piece, error) {
	coord, _ := chess.ParseCoord(square)
	piece := board.At(coord)
	if piece == nil {
		return nil, fmt.Errorf("no piece on %s", square)
	}
	return piece, nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "movegen: %v\n", err)
	os.Exit(2)
}

func usage() {
	fmt.Fprintf(os.Stderr, `movegen - piece move listing and validation for chess positions

Usage:
  movegen -square g1                 moves of the piece on g1
  movegen -square e2 -to e4          validate one move (exit 1 if illegal)
  movegen -all -color black          moves of every black piece
  movegen -fen <FEN> ...             query a custom position

Flags:
`)
	flag.PrintDefaults()
}
