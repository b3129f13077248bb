package board

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

// crossCheckFENs are positions without pins or en-passant subtleties, where
// this engine and dragontoothmg must agree move for move. dragontoothmg
// encodes castling as the two-square king step, so those moves are
// translated to the king-onto-rook encoding used here.
var crossCheckFENs = []string{
	"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
	"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq - 0 1",
	"r1bqkbnr/pppp1ppp/2n5/4p3/4P3/5N2/PPPP1PPP/RNBQKB1R w KQkq - 2 3",
	"r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
	"4k3/8/8/8/8/8/4P3/4K3 w - - 0 1",
	"4r2k/8/8/8/8/R7/8/4K3 w - - 0 1",
}

func dtPos(t *testing.T, fr, to uint8) (Pos, Pos) {
	t.Helper()
	return Pos{int(fr) / 8, int(fr) % 8}, Pos{int(to) / 8, int(to) % 8}
}

// referenceMoves collects dragontoothmg's legal (from, to) pairs in this
// package's encoding.
func referenceMoves(t *testing.T, pos *Position, fen string) map[[2]Pos]bool {
	t.Helper()
	ref := dragontoothmg.ParseFen(fen)
	moves := map[[2]Pos]bool{}
	for _, m := range ref.GenerateLegalMoves() {
		from, to := dtPos(t, m.From(), m.To())
		if pos.PieceAt(from).Type() == King && abs(to.Col-from.Col) == 2 {
			// Castling: the king lands on its rook's square here.
			rookCol := 7
			if to.Col < from.Col {
				rookCol = 0
			}
			to = Pos{from.Row, rookCol}
		}
		moves[[2]Pos{from, to}] = true
	}
	return moves
}

func TestIsLegalAgainstReference(t *testing.T) {
	for _, fen := range crossCheckFENs {
		pos := mustParse(t, fen)
		want := referenceMoves(t, pos, fen)

		got := map[[2]Pos]bool{}
		for fr := 0; fr < 64; fr++ {
			for to := 0; to < 64; to++ {
				from := Pos{fr / 8, fr % 8}
				dest := Pos{to / 8, to % 8}
				if pos.IsLegal(from, dest) {
					got[[2]Pos{from, dest}] = true
				}
			}
		}

		for mv := range want {
			if !got[mv] {
				t.Errorf("%s: reference allows %v%v, engine refuses", fen, mv[0], mv[1])
			}
		}
		for mv := range got {
			if !want[mv] {
				t.Errorf("%s: engine allows %v%v, reference refuses", fen, mv[0], mv[1])
			}
		}
	}
}

func TestMobilityAgainstReference(t *testing.T) {
	for _, fen := range crossCheckFENs {
		pos := mustParse(t, fen)

		wantFrom := map[Pos]bool{}
		for mv := range referenceMoves(t, pos, fen) {
			wantFrom[mv[0]] = true
		}

		pawns, pieces := pos.MobilePieces()
		gotFrom := map[Pos]bool{}
		for i := 0; i < pawns.Len(); i++ {
			gotFrom[pawns.Get(i)] = true
		}
		for i := 0; i < pieces.Len(); i++ {
			gotFrom[pieces.Get(i)] = true
		}

		if len(gotFrom) != len(wantFrom) {
			t.Errorf("%s: %d mobile pieces, reference says %d", fen, len(gotFrom), len(wantFrom))
		}
		for from := range wantFrom {
			if !gotFrom[from] {
				t.Errorf("%s: %v is mobile per reference but not listed", fen, from)
			}
		}
	}
}
