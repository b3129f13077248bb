package board

import "strings"

// posListCap bounds a PosList: a side has at most 8 pawns, and listing stops
// at one entry per piece, so 10 slots never overflow in practice.
const posListCap = 10

// PosList is a compact list of board positions, 6 bits per entry packed into
// a single word. It is a plain value; the zero value is empty.
type PosList struct {
	bits uint64
	n    int
}

// Len returns the number of entries.
func (l *PosList) Len() int {
	return l.n
}

// Get returns the i-th entry.
func (l *PosList) Get(i int) Pos {
	v := int(l.bits>>(uint(i)*6)) & 0x3F
	return Pos{v >> 3, v & 7}
}

// Push appends a position; beyond capacity it is dropped.
func (l *PosList) Push(p Pos) {
	if l.n >= posListCap {
		return
	}
	l.bits |= uint64(p.Row<<3|p.Col) << (uint(l.n) * 6)
	l.n++
}

// String renders the list as "{e2, d4}".
func (l *PosList) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i := 0; i < l.n; i++ {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(l.Get(i).String())
	}
	sb.WriteByte('}')
	return sb.String()
}

// MobilePieces enumerates the side to move's pieces that have at least one
// legal reply, pawns and non-pawns separately, in row-major board order.
// Both lists are empty when the position fails Validate. Under double check
// only the king can move; under single check candidate destinations narrow
// to the king-checker line, which prunes the slider scan.
func (p *Position) MobilePieces() (pawns, pieces PosList) {
	if p.Validate() != nil {
		return
	}
	us := p.SideToMove
	king := p.KingSquare[us]
	checks := p.CountAttackers(us.Other(), king, 2, InvalidPos)

	if checks == 2 {
		// Double check: the king must move, even if it takes an attacker.
		if p.isMobile(king, King, checks, InvalidPos) {
			pieces.Push(king)
		}
		return
	}

	checker := InvalidPos
	if checks == 1 {
		checker = p.AttackerTo(us.Other(), king)
	}

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			pos := Pos{row, col}
			pc := p.Rows[row].PieceAt(col)
			if pc.IsEmpty() || pc.Color() != us {
				continue
			}
			if !p.isMobile(pos, pc.Type(), checks, checker) {
				continue
			}
			if pc.Type() == Pawn {
				pawns.Push(pos)
			} else {
				pieces.Push(pos)
			}
		}
	}
	return
}

// isMobile reports whether the piece on pos has at least one legal move.
// checks is the check multiplicity against the own king, checker the single
// checking piece when checks == 1.
func (p *Position) isMobile(pos Pos, kind PieceType, checks int, checker Pos) bool {
	us := p.SideToMove
	switch kind {
	case Pawn:
		fwd := us.PawnDir()
		steps := [4]Dir{{fwd, 0}, {2 * fwd, 0}, {fwd, -1}, {fwd, 1}}
		for _, d := range steps {
			if p.IsLegal(pos, pos.Add(d)) {
				return true
			}
		}
		return false
	case Knight:
		if p.IsPinned(pos) {
			// A knight never stays on a pin ray.
			return false
		}
		d := knightDirs[0]
		for i := 0; i < 8; i++ {
			if p.IsLegal(pos, pos.Add(d)) {
				return true
			}
			d = d.NextKnightStep()
		}
		return false
	case King:
		for side := 0; side < 2; side++ {
			if rook := p.CastlingRookFor(us, side); rook.Valid() && p.IsLegal(pos, rook) {
				return true
			}
		}
		for _, d := range unitDirs {
			if p.IsLegal(pos, pos.Add(d)) {
				return true
			}
		}
		return false
	case Bishop, Rook, Queen:
		for _, d := range unitDirs {
			// A slider that can step one square has a move; under check
			// the single blocking square on this line, and the checker
			// itself, are the only other candidates.
			if p.IsLegal(pos, pos.Add(d)) {
				return true
			}
			if checks == 1 {
				if sq := blockSquare(p.KingSquare[us], checker, pos, d); sq.Valid() && p.IsLegal(pos, sq) {
					return true
				}
			}
		}
		return checks == 1 && p.IsLegal(pos, checker)
	}
	return false
}

// blockSquare solves for the square where the ray pos + a*d crosses the
// check line king + t*u strictly between king and checker: an integer 2x2
// linear solve. When the determinant vanishes the rays are parallel and
// blocking on this line is impossible.
func blockSquare(king, checker, pos Pos, d Dir) Pos {
	u := checker.Sub(king).Unit()
	if u.IsZero() {
		// Knight checks have no blocking line.
		return InvalidPos
	}
	dist := max(abs(checker.Row-king.Row), abs(checker.Col-king.Col))

	det := d.Row*u.Col - d.Col*u.Row
	if det == 0 {
		return InvalidPos
	}
	rhsR := pos.Row - king.Row
	rhsC := pos.Col - king.Col
	// king + t*u == pos + a*d, solved by Cramer's rule.
	tn := d.Row*rhsC - d.Col*rhsR
	an := u.Row*rhsC - u.Col*rhsR
	if tn%det != 0 || an%det != 0 {
		return InvalidPos
	}
	t, a := tn/det, an/det
	if a < 1 || t < 1 || t >= dist {
		return InvalidPos
	}
	return king.Add(u.Scale(t))
}
