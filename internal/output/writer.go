// Package output renders move reports as text or JSON.
package output

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/movegen-go/internal/chess"
)

// PieceMoves is one piece's move list in a report.
type PieceMoves struct {
	Piece string   `json:"piece"`
	From  string   `json:"from"`
	Moves []string `json:"moves"`
}

// Verdict is the outcome of a single-move validation.
type Verdict struct {
	Piece string `json:"piece"`
	From  string `json:"from"`
	To    string `json:"to"`
	Legal bool   `json:"legal"`
}

// NewPieceMoves converts a piece and its generated destinations into report
// form.
func NewPieceMoves(piece *chess.Piece, moves []chess.Coord) PieceMoves {
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.String())
	}
	return PieceMoves{
		Piece: fmt.Sprintf("%v %v", piece.Colour, piece.Type),
		From:  piece.Pos.String(),
		Moves: names,
	}
}

// Writer renders reports to an underlying io.Writer.
type Writer struct {
	w    io.Writer
	json bool
}

// NewWriter creates a report writer. If asJSON is true all reports are
// emitted as indented JSON, otherwise as plain text lines.
func NewWriter(w io.Writer, asJSON bool) *Writer {
	return &Writer{w: w, json: asJSON}
}

// WriteMoves writes one or more piece move lists.
func (w *Writer) WriteMoves(reports []PieceMoves) error {
	if w.json {
		return w.writeJSON(reports)
	}
	for _, r := range reports {
		line := fmt.Sprintf("%s on %s:", r.Piece, r.From)
		if len(r.Moves) == 0 {
			line += " (no moves)"
		} else {
			line += " " + strings.Join(r.Moves, " ")
		}
		if _, err := fmt.Fprintln(w.w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteVerdict writes a single-move validation outcome.
func (w *Writer) WriteVerdict(v Verdict) error {
	if w.json {
		return w.writeJSON(v)
	}
	outcome := "illegal"
	if v.Legal {
		outcome = "legal"
	}
	_, err := fmt.Fprintf(w.w, "%s %s -> %s: %s\n", v.Piece, v.From, v.To, outcome)
	return err
}

func (w *Writer) writeJSON(v interface{}) error {
	enc := json.NewEncoder(w.w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
