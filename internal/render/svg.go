// Package render draws positions as standalone SVG documents.
package render

import (
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/lkardos/chessline/internal/board"
)

const (
	cell   = 48
	margin = 16
	size   = 8*cell + 2*margin
)

const (
	lightFill = "fill:#f0d9b5"
	darkFill  = "fill:#b58863"
	glyphAttr = "font-size:36px;text-anchor:middle;dominant-baseline:central;font-family:serif"
	labelAttr = "font-size:12px;text-anchor:middle;fill:#555;font-family:sans-serif"
)

// glyphs maps a piece to its chess figure codepoint, white pieces first.
var glyphs = map[board.Piece]string{
	board.NewPiece(board.King, board.White):   "♔",
	board.NewPiece(board.Queen, board.White):  "♕",
	board.NewPiece(board.Rook, board.White):   "♖",
	board.NewPiece(board.Bishop, board.White): "♗",
	board.NewPiece(board.Knight, board.White): "♘",
	board.NewPiece(board.Pawn, board.White):   "♙",
	board.NewPiece(board.King, board.Black):   "♚",
	board.NewPiece(board.Queen, board.Black):  "♛",
	board.NewPiece(board.Rook, board.Black):   "♜",
	board.NewPiece(board.Bishop, board.Black): "♝",
	board.NewPiece(board.Knight, board.Black): "♞",
	board.NewPiece(board.Pawn, board.Black):   "♟",
}

// SVG writes the position as an SVG board, White's side down.
func SVG(w io.Writer, p *board.Position) error {
	canvas := svg.New(w)
	canvas.Start(size, size)

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			x := margin + col*cell
			y := margin + (7-row)*cell
			fill := darkFill
			if (row+col)%2 == 1 {
				fill = lightFill
			}
			canvas.Rect(x, y, cell, cell, fill)
			pc := p.PieceAt(board.Pos{Row: row, Col: col})
			if g, ok := glyphs[pc]; ok {
				canvas.Text(x+cell/2, y+cell/2, g, glyphAttr)
			}
		}
	}

	for col := 0; col < 8; col++ {
		canvas.Text(margin+col*cell+cell/2, size-margin/4, string(rune('a'+col)), labelAttr)
	}
	for row := 0; row < 8; row++ {
		canvas.Text(margin/2, margin+(7-row)*cell+cell/2, string(rune('1'+row)), labelAttr)
	}

	canvas.End()
	return nil
}
