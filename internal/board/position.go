package board

import (
	"fmt"
	"strings"
)

// Castling slot indices. Each color owns two file-indexed slots; the letter
// stored in a slot names the file of the rook that still grants the right,
// so non-standard rook files (Chess960 style) work unchanged.
const (
	castWhiteA = iota
	castWhiteH
	castBlackA
	castBlackH
)

const noCastling = '-'

// Standard castling destinations. The king lands on column 2 or 6, the rook
// beside it on 3 or 5, regardless of where the pair started.
const (
	longCastleKing  = 2
	longCastleRook  = 3
	shortCastleKing = 6
	shortCastleRook = 5
)

// Position represents a complete chess position. The grid fits in 32 bytes;
// the whole struct is a plain value and may be copied freely.
type Position struct {
	// Rank-indexed rows, row 0 = rank 1.
	Rows [8]Row

	// Game state
	SideToMove Color
	Castling   [4]byte // file letters, '-' when the right is gone
	EnPassant  byte    // file letter of a fresh two-step pawn, '-' otherwise
	HalfMove   uint16  // resets on pawn moves and captures
	FullMove   uint16  // increments after Black moves

	// King positions (cached for check and pin detection)
	KingSquare [2]Pos
}

// NewPosition creates the standard starting position.
func NewPosition() *Position {
	pos, err := ParseFEN(StartFEN)
	if err != nil {
		panic(err)
	}
	return pos
}

// Clear resets the position to an empty, uninitialized board.
func (p *Position) Clear() {
	*p = Position{
		SideToMove: NoColor,
		Castling:   [4]byte{noCastling, noCastling, noCastling, noCastling},
		EnPassant:  noCastling,
		FullMove:   1,
	}
	p.KingSquare[White] = InvalidPos
	p.KingSquare[Black] = InvalidPos
}

// PieceAt returns the piece at the given position, NoPiece when the position
// is off the board.
func (p *Position) PieceAt(pos Pos) Piece {
	if !pos.Valid() {
		return NoPiece
	}
	return p.Rows[pos.Row].PieceAt(pos.Col)
}

// SetPiece places a piece (or NoPiece) on a square and maintains the king
// cache.
func (p *Position) SetPiece(pos Pos, pc Piece) {
	p.Rows[pos.Row].Set(pos.Col, pc)
	if pc.Type() == King {
		p.KingSquare[pc.Color()] = pos
	}
}

// Count returns how many squares hold exactly pc.
func (p *Position) Count(pc Piece) int {
	n := 0
	for row := range p.Rows {
		n += p.Rows[row].Count(pc)
	}
	return n
}

// Find returns the first square holding exactly pc in row-major order, or
// InvalidPos.
func (p *Position) Find(pc Piece) Pos {
	for row := range p.Rows {
		if col := p.Rows[row].FindFirst(pc); col >= 0 {
			return Pos{row, col}
		}
	}
	return InvalidPos
}

// CastlingRook returns the home-row square of the rook named by a castling
// slot, InvalidPos when the right is gone.
func (p *Position) CastlingRook(slot int) Pos {
	file := p.Castling[slot]
	if file == noCastling {
		return InvalidPos
	}
	row := 0
	if slot >= castBlackA {
		row = 7
	}
	return Pos{row, int(file|0x20) - 'a'}
}

// CastlingRookFor returns the rook square of one of a color's two slots
// (side 0 or 1), InvalidPos when that right is gone.
func (p *Position) CastlingRookFor(c Color, side int) Pos {
	if c == White {
		return p.CastlingRook(castWhiteA + side)
	}
	return p.CastlingRook(castBlackA + side)
}

// hasCastlingRight reports whether pos matches one of the color's castling
// rook squares.
func (p *Position) hasCastlingRight(c Color, pos Pos) bool {
	return p.CastlingRookFor(c, 0) == pos || p.CastlingRookFor(c, 1) == pos
}

// dropCastlingRights clears every slot of the color that names pos; when pos
// is the king square both slots go.
func (p *Position) dropCastlingRights(c Color, pos Pos, king bool) {
	base := castWhiteA
	if c == Black {
		base = castBlackA
	}
	for side := 0; side < 2; side++ {
		if king || p.CastlingRook(base+side) == pos {
			p.Castling[base+side] = noCastling
		}
	}
}

// Validate checks the heavy position invariants: exactly one king per color,
// no pawn on either home row, every castling slot backed by an own rook on
// the home row, and the side not to move not in check.
func (p *Position) Validate() error {
	if p.SideToMove >= NoColor {
		return fmt.Errorf("position not initialized")
	}
	for c := White; c <= Black; c++ {
		if n := p.Count(NewPiece(King, c)); n != 1 {
			return fmt.Errorf("%v must have exactly one king, has %d", c, n)
		}
		king := p.KingSquare[c]
		if p.PieceAt(king) != NewPiece(King, c) {
			return fmt.Errorf("%v king cache out of date", c)
		}
		if p.Rows[c.HomeRow()].Count(NewPiece(Pawn, c)) != 0 {
			return fmt.Errorf("%v pawn on home row", c)
		}
		for side := 0; side < 2; side++ {
			rook := p.CastlingRookFor(c, side)
			if rook.Valid() && p.PieceAt(rook) != NewPiece(Rook, c) {
				return fmt.Errorf("castling right %c names no %v rook", p.Castling[castlingSlot(c, side)], c)
			}
		}
	}
	idle := p.SideToMove.Other()
	if p.CountAttackers(p.SideToMove, p.KingSquare[idle], 1, InvalidPos) > 0 {
		return fmt.Errorf("%v is in check but not to move", idle)
	}
	return nil
}

func castlingSlot(c Color, side int) int {
	if c == White {
		return castWhiteA + side
	}
	return castBlackA + side
}

// String returns a visual representation of the position: the grid from
// Black's back rank down, then the status line
// "<color> /<casts>/ <ep> <full>[<half>]".
func (p *Position) String() string {
	var sb strings.Builder
	for row := 7; row >= 0; row-- {
		fmt.Fprintf(&sb, "%d  ", row+1)
		for col := 0; col < 8; col++ {
			pc := p.Rows[row].PieceAt(col)
			if pc.IsEmpty() {
				sb.WriteString(". ")
			} else {
				sb.WriteString(pc.String() + " ")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString("\n   a b c d e f g h\n\n")
	side := "w"
	if p.SideToMove == Black {
		side = "b"
	}
	fmt.Fprintf(&sb, "%s /%c%c%c%c/ %c %d[%d]\n",
		side, p.Castling[0], p.Castling[1], p.Castling[2], p.Castling[3],
		p.EnPassant, p.FullMove, p.HalfMove)
	return sb.String()
}
