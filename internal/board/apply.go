package board

import "fmt"

// ApplyMove mutates the position assuming the move was already checked with
// IsLegal. The sequencing is load-bearing: castling rights are downgraded
// before any square changes, clocks update next, and the en-passant file and
// side to move are recomputed last.
func (p *Position) ApplyMove(from, to Pos, promoteTo PieceType) {
	moving := p.PieceAt(from)
	kind := moving.Type()
	us := moving.Color()
	target := p.PieceAt(to)

	// Castling rights: a moving king or rook forfeits its own rights, a
	// captured rook extinguishes the opponent's matching right.
	switch kind {
	case King:
		p.dropCastlingRights(us, from, true)
	case Rook:
		p.dropCastlingRights(us, from, false)
	}
	if target.Type() == Rook && target.Color() == us.Other() {
		p.dropCastlingRights(us.Other(), to, false)
	}

	if kind == King && target.Type() == Rook && target.Color() == us {
		// Castling: the king "captures" its own rook; both land on the
		// standard destination columns.
		kingTo, rookTo := shortCastleKing, shortCastleRook
		if to.Col < from.Col {
			kingTo, rookTo = longCastleKing, longCastleRook
		}
		p.SetPiece(from, NoPiece)
		p.SetPiece(to, NoPiece)
		p.SetPiece(Pos{from.Row, kingTo}, NewPiece(King, us))
		p.SetPiece(Pos{from.Row, rookTo}, NewPiece(Rook, us))
	} else {
		placed := moving
		if kind == Pawn && to.Row == us.Other().HomeRow() {
			placed = NewPiece(promoteTo, us)
		}
		if kind == Pawn && p.isEnPassantTarget(to) {
			p.SetPiece(Pos{to.Row - us.PawnDir(), to.Col}, NoPiece)
		}
		p.SetPiece(from, NoPiece)
		p.SetPiece(to, placed)
	}

	if kind == Pawn || target.Color() == us.Other() {
		p.HalfMove = 0
	} else {
		p.HalfMove++
	}
	if us == Black {
		p.FullMove++
	}

	p.EnPassant = noCastling
	if kind == Pawn && abs(to.Row-from.Row) == 2 {
		p.EnPassant = to.FileChar()
	}
	p.SideToMove = us.Other()
}

// Move validates with IsLegal and then applies. Promotion to a pawn is
// rejected outright; callers that do not care pass Queen.
func (p *Position) Move(from, to Pos, promoteTo PieceType) error {
	if promoteTo == Pawn || promoteTo == NoPieceType {
		return fmt.Errorf("invalid promotion piece %v", promoteTo)
	}
	if !p.IsLegal(from, to) {
		return fmt.Errorf("illegal move %v%v", from, to)
	}
	p.ApplyMove(from, to, promoteTo)
	return nil
}
