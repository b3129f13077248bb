package board

import (
	"fmt"
	"strconv"
	"strings"
)

// StartFEN is the FEN string for the starting position. Castling rights use
// the canonical file-letter form, not the legacy KQkq.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w AHah - 0 1"

// ParseFEN parses a six-field FEN string and returns a Position. Legacy KQkq
// castling letters are accepted and canonicalized to the files of the
// outermost rooks on the home ranks. The position must pass Validate.
func ParseFEN(fen string) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) != 6 {
		return nil, fmt.Errorf("invalid FEN: need 6 fields, got %d", len(parts))
	}

	pos := &Position{}
	pos.Clear()

	if err := parsePiecePlacement(pos, parts[0]); err != nil {
		return nil, err
	}

	switch parts[1] {
	case "w":
		pos.SideToMove = White
	case "b":
		pos.SideToMove = Black
	default:
		return nil, fmt.Errorf("invalid side to move: %s", parts[1])
	}

	if err := parseCastlingRights(pos, parts[2]); err != nil {
		return nil, err
	}

	if err := parseEnPassant(pos, parts[3]); err != nil {
		return nil, err
	}

	hmc, err := strconv.ParseUint(parts[4], 10, 16)
	if err != nil {
		return nil, fmt.Errorf("invalid half-move clock: %s", parts[4])
	}
	pos.HalfMove = uint16(hmc)

	fmn, err := strconv.ParseUint(parts[5], 10, 16)
	if err != nil || fmn == 0 {
		return nil, fmt.Errorf("invalid full-move number: %s", parts[5])
	}
	pos.FullMove = uint16(fmn)

	if err := pos.Validate(); err != nil {
		return nil, err
	}

	return pos, nil
}

// parsePiecePlacement parses the piece placement section of a FEN string.
func parsePiecePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != 8 {
		return fmt.Errorf("invalid piece placement: need 8 ranks, got %d", len(ranks))
	}

	for i, rankStr := range ranks {
		row := 7 - i // FEN starts from rank 8
		col := 0

		for j := 0; j < len(rankStr); j++ {
			c := rankStr[j]
			if col > 7 {
				return fmt.Errorf("too many squares in rank %d", row+1)
			}
			if c >= '1' && c <= '8' {
				col += int(c - '0')
			} else {
				pc := PieceFromChar(c)
				if pc == NoPiece {
					return fmt.Errorf("invalid piece character: %c", c)
				}
				pos.SetPiece(Pos{row, col}, pc)
				col++
			}
		}

		if col != 8 {
			return fmt.Errorf("invalid number of squares in rank %d: got %d", row+1, col)
		}
	}

	return nil
}

// parseCastlingRights parses the castling rights field. The canonical form
// names rook files directly (e.g. "AHah"); K/Q/k/q resolve to the outermost
// rook file on the matching wing.
func parseCastlingRights(pos *Position, castling string) error {
	if castling == "-" {
		return nil
	}

	filled := [2]int{}
	for i := 0; i < len(castling); i++ {
		c := castling[i]
		if c == '-' {
			continue
		}
		var color Color
		if c >= 'A' && c <= 'Z' {
			color = White
		} else if c >= 'a' && c <= 'z' {
			color = Black
		} else {
			return fmt.Errorf("invalid castling character: %c", c)
		}

		file := c
		switch c {
		case 'K', 'k':
			f, err := outerRookFile(pos, color, false)
			if err != nil {
				return err
			}
			file = f
		case 'Q', 'q':
			f, err := outerRookFile(pos, color, true)
			if err != nil {
				return err
			}
			file = f
		default:
			low := c | 0x20
			if low < 'a' || low > 'h' {
				return fmt.Errorf("invalid castling character: %c", c)
			}
		}

		if filled[color] >= 2 {
			return fmt.Errorf("too many castling rights for %v", color)
		}
		// A rook file left of the king takes the a-side slot, any other
		// file the h-side slot.
		side := 1
		if int(file|0x20)-'a' < pos.KingSquare[color].Col {
			side = 0
		}
		slot := castlingSlot(color, side)
		if pos.Castling[slot] != noCastling {
			return fmt.Errorf("two castling rights on one wing for %v", color)
		}
		pos.Castling[slot] = file
		filled[color]++
	}

	return nil
}

// outerRookFile finds the outermost rook of the color on the named wing of
// its home row (outside the king) and returns the file letter in the case
// matching the color.
func outerRookFile(pos *Position, c Color, queenSide bool) (byte, error) {
	rook := NewPiece(Rook, c)
	row := c.HomeRow()
	king := pos.KingSquare[c]
	if !king.Valid() || king.Row != row {
		return 0, fmt.Errorf("no %v king on the home rank to resolve castling rights", c)
	}
	col, step := 7, -1
	if queenSide {
		col, step = 0, 1
	}
	for ; col != king.Col; col += step {
		if pos.Rows[row].PieceAt(col) == rook {
			file := byte('a' + col)
			if c == White {
				file -= 'a' - 'A'
			}
			return file, nil
		}
	}
	return 0, fmt.Errorf("no %v rook on the home rank for a castling right", c)
}

// parseEnPassant parses the en-passant field. Only the file matters (the
// rank is implied by the side to move), so a full square like "d6" is
// accepted and reduced to its file letter.
func parseEnPassant(pos *Position, s string) error {
	if s == "-" {
		return nil
	}
	if len(s) < 1 || s[0] < 'a' || s[0] > 'h' {
		return fmt.Errorf("invalid en passant field: %s", s)
	}
	pos.EnPassant = s[0]
	return nil
}

// ToFEN returns the FEN representation of the position, castling rights in
// the canonical file-letter form.
func (p *Position) ToFEN() string {
	var sb strings.Builder

	for row := 7; row >= 0; row-- {
		empty := 0
		for col := 0; col < 8; col++ {
			pc := p.Rows[row].PieceAt(col)
			if pc.IsEmpty() {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteString(strconv.Itoa(empty))
				empty = 0
			}
			sb.WriteString(pc.String())
		}
		if empty > 0 {
			sb.WriteString(strconv.Itoa(empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	if p.SideToMove == Black {
		sb.WriteByte('b')
	} else {
		sb.WriteByte('w')
	}

	sb.WriteByte(' ')
	casts := ""
	for _, file := range p.Castling {
		if file != noCastling {
			casts += string(file)
		}
	}
	if casts == "" {
		casts = "-"
	}
	sb.WriteString(casts)

	sb.WriteByte(' ')
	if p.EnPassant == noCastling {
		sb.WriteByte('-')
	} else {
		sb.WriteByte(p.EnPassant)
		if p.SideToMove == White {
			sb.WriteByte('6')
		} else {
			sb.WriteByte('3')
		}
	}

	fmt.Fprintf(&sb, " %d %d", p.HalfMove, p.FullMove)

	return sb.String()
}
