package board

import "fmt"

// descriptor is the parsed form of a free-form move token such as "e4",
// "Nf3", "Ngf3", "exd6", "g8=N" or "O-O". Decorations like 'x', '+', '#'
// and '-' carry no information and are skipped by the scanner.
type descriptor struct {
	kind    PieceType // moving piece, pawn when no letter given
	promote PieceType // NoPieceType when absent
	fromCol int       // disambiguators, -1 when absent
	fromRow int
	toCol   int
	toRow   int
	casts   int // count of O/o glyphs
}

func parseDescriptor(s string) (descriptor, error) {
	d := descriptor{fromCol: -1, fromRow: -1, toCol: -1, toRow: -1}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isPieceChar(c):
			if d.kind == NoPieceType {
				d.kind = TypeFromChar(c)
			} else if d.promote == NoPieceType {
				d.promote = TypeFromChar(c)
			} else {
				return d, fmt.Errorf("too many piece letters in %q", s)
			}
		case c >= '1' && c <= '9':
			// '9' passes the scanner and dies in the legality check.
			if d.toRow == -1 {
				d.toRow = int(c - '1')
			} else if d.fromRow == -1 {
				d.fromRow, d.toRow = d.toRow, int(c-'1')
			} else {
				return d, fmt.Errorf("too many rank digits in %q", s)
			}
		case c >= 'a' && c <= 'h':
			if d.toCol == -1 {
				d.toCol = int(c - 'a')
			} else if d.fromCol == -1 {
				d.fromCol, d.toCol = d.toCol, int(c-'a')
			} else {
				return d, fmt.Errorf("too many file letters in %q", s)
			}
		case c == '=':
			if d.kind == NoPieceType {
				d.kind = Pawn
			}
		case c == 'O' || c == 'o':
			d.casts++
		}
	}
	if d.casts > 0 {
		if d.kind != NoPieceType || d.promote != NoPieceType ||
			d.fromCol != -1 || d.fromRow != -1 || d.toCol != -1 || d.toRow != -1 {
			return d, fmt.Errorf("castling token %q mixed with move syntax", s)
		}
		if d.casts < 2 {
			return d, fmt.Errorf("castling token %q too short", s)
		}
		return d, nil
	}
	if d.kind == NoPieceType {
		d.kind = Pawn
	}
	if d.toCol == -1 || d.toRow == -1 {
		return d, fmt.Errorf("no destination in %q", s)
	}
	return d, nil
}

// isPieceChar matches the piece letters meaningful inside a descriptor.
// Lowercase 'b' is a file letter, never a bishop.
func isPieceChar(c byte) bool {
	switch c {
	case 'N', 'B', 'R', 'Q', 'K', 'P', 'p', 'n', 'r', 'q', 'k':
		return true
	}
	return false
}

// ApplyText parses a move descriptor, resolves it against the position and
// applies it. The position is untouched on error.
func (p *Position) ApplyText(s string) error {
	d, err := parseDescriptor(s)
	if err != nil {
		return err
	}

	if d.casts > 0 {
		// Two glyphs castle to the h-side rook, three or more to the
		// a-side rook.
		side := 1
		if d.casts >= 3 {
			side = 0
		}
		rook := p.CastlingRookFor(p.SideToMove, side)
		if !rook.Valid() {
			return fmt.Errorf("no castling right for %q", s)
		}
		return p.Move(p.KingSquare[p.SideToMove], rook, Queen)
	}

	promote := d.promote
	if promote == NoPieceType {
		promote = Queen
	}
	to := Pos{d.toRow, d.toCol}

	if d.fromCol >= 0 && d.fromRow >= 0 {
		return p.Move(Pos{d.fromRow, d.fromCol}, to, promote)
	}

	for row := 0; row < 8; row++ {
		if d.fromRow != -1 && d.fromRow != row {
			continue
		}
		for col := 0; col < 8; col++ {
			if d.fromCol != -1 && d.fromCol != col {
				continue
			}
			from := Pos{row, col}
			pc := p.PieceAt(from)
			if pc.Color() != p.SideToMove || pc.Type() != d.kind {
				continue
			}
			if p.IsLegal(from, to) {
				return p.Move(from, to, promote)
			}
		}
	}
	return fmt.Errorf("no legal %v move to %v", d.kind, to)
}
