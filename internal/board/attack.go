package board

// FirstPieceOnRay walks from pos one step at a time along dir and returns
// the first occupied square, or InvalidPos when the ray leaves the board
// first.
func (p *Position) FirstPieceOnRay(pos Pos, dir Dir) Pos {
	acc := pos.Add(dir)
	for acc.Valid() && p.PieceAt(acc).IsEmpty() {
		acc = acc.Add(dir)
	}
	if !acc.Valid() {
		return InvalidPos
	}
	return acc
}

// AttackerOnRay returns the square of an attacker-colored piece that attacks
// pos along the unit direction dir, or InvalidPos. A slider qualifies from
// any distance when its kind matches the ray; the enemy king, and an enemy
// pawn whose capture direction matches, qualify from one step away.
func (p *Position) AttackerOnRay(attacker Color, pos Pos, dir Dir) Pos {
	first := p.FirstPieceOnRay(pos, dir)
	if !first.Valid() {
		return InvalidPos
	}
	pc := p.PieceAt(first)
	if pc.Color() != attacker {
		return InvalidPos
	}
	if first == pos.Add(dir) {
		switch pc.Type() {
		case King:
			return first
		case Pawn:
			if dir.Neg().PawnCapture(attacker) {
				return first
			}
		}
	}
	if pc.Type() == Queen || pc.Type() == dir.MinorSlider() {
		return first
	}
	return InvalidPos
}

// CountAttackers returns the number of attacker-colored pieces attacking
// pos, capped at max. A valid blocker square is treated as additionally
// occupied: a knight standing there is ignored and any ray attack passing
// through (or originating on) it is discounted. This answers "would the king
// still be attacked after a piece lands on blocker" without mutating the
// board.
func (p *Position) CountAttackers(attacker Color, pos Pos, max int, blocker Pos) int {
	if !pos.Valid() {
		return 0
	}
	n := 0

	for _, kdir := range knightDirs {
		sq := pos.Add(kdir)
		if blocker.Valid() && sq == blocker {
			continue
		}
		if p.PieceAt(sq) == NewPiece(Knight, attacker) {
			n++
			if n >= max {
				return n
			}
		}
	}

	for _, dir := range unitDirs {
		w := p.AttackerOnRay(attacker, pos, dir)
		if !w.Valid() {
			continue
		}
		if blocker.Valid() {
			if blocker == w {
				continue
			}
			if dir.OnRay(blocker.Sub(pos)) && dir.OnRay(w.Sub(blocker)) {
				continue
			}
		}
		n++
		if n >= max {
			return n
		}
	}

	return n
}

// AttackerTo returns the square of the first attacker-colored piece found
// attacking pos, or InvalidPos. Used under single check to learn which piece
// gives it.
func (p *Position) AttackerTo(attacker Color, pos Pos) Pos {
	if !pos.Valid() {
		return InvalidPos
	}
	for _, kdir := range knightDirs {
		sq := pos.Add(kdir)
		if p.PieceAt(sq) == NewPiece(Knight, attacker) {
			return sq
		}
	}
	for _, dir := range unitDirs {
		if w := p.AttackerOnRay(attacker, pos, dir); w.Valid() {
			return w
		}
	}
	return InvalidPos
}

// IsAttacked reports whether pos is attacked by any piece of the given
// color.
func (p *Position) IsAttacked(by Color, pos Pos) bool {
	return p.CountAttackers(by, pos, 1, InvalidPos) > 0
}

// IsPinned reports whether the piece on pos shields its own king from an
// enemy slider: pos lies first on a queen line from the king, and the next
// piece beyond it on that line is an enemy queen, or the ray's minor slider.
func (p *Position) IsPinned(pos Pos) bool {
	pc := p.PieceAt(pos)
	if pc.IsEmpty() {
		return false
	}
	king := p.KingSquare[pc.Color()]
	dir := pos.Sub(king).Unit()
	if dir.IsZero() {
		return false
	}
	if p.FirstPieceOnRay(king, dir) != pos {
		return false
	}
	beyond := p.FirstPieceOnRay(pos, dir)
	if !beyond.Valid() {
		return false
	}
	w := p.PieceAt(beyond)
	if w.Color() == pc.Color() {
		return false
	}
	return w.Type() == Queen || w.Type() == dir.MinorSlider()
}
