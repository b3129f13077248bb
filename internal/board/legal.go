package board

// IsLegal reports whether moving the piece on from to to is legal for the
// side to move. Castling is encoded as the king moving onto its own rook's
// square; every other same-color destination is illegal.
func (p *Position) IsLegal(from, to Pos) bool {
	if !from.Valid() || !to.Valid() || from == to {
		return false
	}
	moving := p.PieceAt(from)
	if moving.IsEmpty() || moving.Color() != p.SideToMove {
		return false
	}
	kind := moving.Type()

	// A pinned piece may only move along the pin ray.
	if kind != King && p.IsPinned(from) {
		pin := from.Sub(p.KingSquare[p.SideToMove]).Unit()
		if !pin.OnRay(to.Sub(from)) {
			return false
		}
	}

	target := p.PieceAt(to)
	if !target.IsEmpty() && target.Color() == moving.Color() {
		return kind == King && target.Type() == Rook && p.castleValid(from, to)
	}

	if !p.pseudoLegal(from, to, kind, target) {
		return false
	}
	if kind == King {
		// King safety is part of the king's pseudo-move rule.
		return true
	}

	// The move must not leave the own king attacked; the destination acts
	// as a hypothetical blocker.
	enemy := p.SideToMove.Other()
	return p.CountAttackers(enemy, p.KingSquare[p.SideToMove], 1, to) == 0
}

// pseudoLegal checks the piece-specific movement rule from from to to. The
// target square is known to be empty or enemy-occupied.
func (p *Position) pseudoLegal(from, to Pos, kind PieceType, target Piece) bool {
	d := to.Sub(from)
	switch kind {
	case Pawn:
		fwd := p.SideToMove.PawnDir()
		if d.Col != 0 {
			// Diagonal capture, including en passant.
			if abs(d.Col) != 1 || d.Row != fwd {
				return false
			}
			return !target.IsEmpty() || p.isEnPassantTarget(to)
		}
		if !target.IsEmpty() {
			return false
		}
		if d.Row == fwd {
			return true
		}
		return d.Row == 2*fwd && from.Row == p.SideToMove.PawnRow() &&
			p.PieceAt(Pos{from.Row + fwd, from.Col}).IsEmpty()
	case Knight:
		return abs(d.Row)*abs(d.Col) == 2
	case Bishop, Rook, Queen:
		u := d.Unit()
		if u.IsZero() {
			return false
		}
		if kind != Queen && u.MinorSlider() != kind {
			return false
		}
		return p.rayClear(from, to, u)
	case King:
		if abs(d.Row) > 1 || abs(d.Col) > 1 {
			return false
		}
		enemy := p.SideToMove.Other()
		// The destination must be safe, and the vacated square must not
		// sit on a live slider line pointing through it: a king cannot
		// step away from a checking slider along the attack ray.
		return !p.IsAttacked(enemy, to) &&
			!p.AttackerOnRay(enemy, from, from.Sub(to)).Valid()
	}
	return false
}

// rayClear reports whether every square strictly between from and to along
// the unit direction u is empty.
func (p *Position) rayClear(from, to Pos, u Dir) bool {
	for acc := from.Add(u); acc != to; acc = acc.Add(u) {
		if !acc.Valid() || !p.PieceAt(acc).IsEmpty() {
			return false
		}
	}
	return true
}

// isEnPassantTarget reports whether to is the square a pawn of the side to
// move may capture en passant: the stored file, on the rank behind the
// enemy pawn that just advanced two squares.
func (p *Position) isEnPassantTarget(to Pos) bool {
	if p.EnPassant == noCastling {
		return false
	}
	epRow := 5
	if p.SideToMove == Black {
		epRow = 2
	}
	return to.Row == epRow && to.Col == int(p.EnPassant-'a')
}

// castleValid checks the castling encoded as the king on from capturing the
// own rook on to: both squares on the home row, the rook named by a live
// castling right, and both walks clear.
func (p *Position) castleValid(from, to Pos) bool {
	row := p.SideToMove.HomeRow()
	if from.Row != row || to.Row != row {
		return false
	}
	if p.PieceAt(from).Type() != King {
		return false
	}
	if !p.hasCastlingRight(p.SideToMove, to) {
		return false
	}
	kingTo, rookTo := shortCastleKing, shortCastleRook
	if to.Col < from.Col {
		kingTo, rookTo = longCastleKing, longCastleRook
	}
	return p.castleWalk(from, to, row, from.Col, kingTo, true) &&
		p.castleWalk(from, to, row, to.Col, rookTo, false)
}

// castleWalk checks the columns between source and target inclusive: each
// square must be vacant apart from the moving king and rook themselves, and
// on the king's walk no square may be attacked by the enemy.
func (p *Position) castleWalk(from, to Pos, row, source, target int, king bool) bool {
	lo, hi := source, target
	if lo > hi {
		lo, hi = hi, lo
	}
	enemy := p.SideToMove.Other()
	for col := lo; col <= hi; col++ {
		sq := Pos{row, col}
		if sq != from && sq != to && !p.PieceAt(sq).IsEmpty() {
			return false
		}
		if king && p.IsAttacked(enemy, sq) {
			return false
		}
	}
	return true
}
