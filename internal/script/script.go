// Package script runs move-script files against the position engine. A
// script is a free-form token stream: "(tag)" opens a named variant,
// "{FEN}" re-initializes the board, "#" starts a comment, numeric tokens
// assert the move number, and every other token is a move descriptor.
package script

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lkardos/chessline/internal/board"
	"github.com/lkardos/chessline/internal/render"
)

// Runner consumes a script and writes per-variant diagnostics and final
// boards to Out. When SVGDir is set, each finished variant is also rendered
// to <SVGDir>/<tag>.svg.
type Runner struct {
	Out    io.Writer
	SVGDir string
}

type mode int

const (
	modePlain mode = iota
	modeTag
	modeFEN
	modeNum
	modeTok
)

// state carries the tokenizer through one full script.
type state struct {
	r *Runner

	mode mode
	buf  []byte

	tag   string
	valid bool
	pos   *board.Position
	moves []string

	boards map[string]*board.Position
}

// Run processes one script. Scanner errors are returned; script-level
// failures are reported as ERROR lines on Out and do not stop the run.
func (r *Runner) Run(in io.Reader) error {
	st := &state{
		r:      r,
		valid:  true,
		pos:    board.NewPosition(),
		boards: map[string]*board.Position{},
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		for j := 0; j < len(line); j++ {
			st.feed(line[j])
		}
		st.endLine()
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	st.commit()

	return r.emit(st)
}

// feed consumes one character. Mode-terminating characters are themselves
// consumed, never reinterpreted: "1." ends the number token at the dot.
func (s *state) feed(c byte) {
	switch s.mode {
	case modeFEN:
		if c == '}' {
			s.finishFEN()
			s.mode = modePlain
			return
		}
		s.buf = append(s.buf, c)
	case modeTag:
		if c == ')' {
			s.tag = string(s.buf)
			s.buf = s.buf[:0]
			s.mode = modePlain
			return
		}
		s.buf = append(s.buf, c)
	case modeNum:
		if c >= '0' && c <= '9' {
			s.buf = append(s.buf, c)
			return
		}
		s.finishNum()
		s.mode = modePlain
	case modeTok:
		if isSpace(c) {
			s.finishTok()
			s.mode = modePlain
			return
		}
		s.buf = append(s.buf, c)
	default:
		switch {
		case isSpace(c):
		case c == '(':
			s.commit()
			s.valid = true
			s.tag = ""
			s.pos = board.NewPosition()
			s.moves = nil
			s.buf = s.buf[:0]
			s.mode = modeTag
		case c == '{':
			s.buf = s.buf[:0]
			s.mode = modeFEN
		case c >= '0' && c <= '9':
			s.buf = append(s.buf[:0], c)
			s.mode = modeNum
		default:
			s.buf = append(s.buf[:0], c)
			s.mode = modeTok
		}
	}
}

// endLine closes any number or move token left open at the end of a line.
// Tag and FEN sections continue across lines.
func (s *state) endLine() {
	switch s.mode {
	case modeNum:
		s.finishNum()
		s.mode = modePlain
	case modeTok:
		s.finishTok()
		s.mode = modePlain
	}
}

func (s *state) finishFEN() {
	fen := string(s.buf)
	s.buf = s.buf[:0]
	pos, err := board.ParseFEN(fen)
	if err != nil {
		s.fail("cannot load position: %v", err)
		return
	}
	s.pos = pos
}

// finishNum checks a move-number token: after h half-moves the expected
// number is h/2 + 1, so White's and Black's move of one turn share it.
func (s *state) finishNum() {
	text := string(s.buf)
	s.buf = s.buf[:0]
	n, err := strconv.Atoi(text)
	if err != nil {
		s.fail("bad number %s", text)
		return
	}
	if s.valid && n != len(s.moves)/2+1 {
		s.fail("bad number %s vs. %d", text, len(s.moves))
	}
}

func (s *state) finishTok() {
	tok := string(s.buf)
	s.buf = s.buf[:0]
	s.moves = append(s.moves, tok)
	if !s.valid {
		return
	}
	if err := s.pos.ApplyText(tok); err != nil {
		s.fail("cannot apply move %s: %v", tok, err)
		return
	}
	if err := s.pos.Validate(); err != nil {
		s.fail("move %s led to failure: %v", tok, err)
	}
}

// fail reports the first failure of the current variant and invalidates it.
func (s *state) fail(format string, args ...any) {
	if !s.valid {
		return
	}
	s.valid = false
	fmt.Fprintf(s.r.Out, "ERROR: %s %s\n", s.tag, fmt.Sprintf(format, args...))
}

// commit records the current variant under its tag, if any.
func (s *state) commit() {
	if s.tag == "" || !s.valid {
		return
	}
	final := *s.pos
	s.boards[s.tag] = &final
}

// emit prints every committed variant in tag order: the board, then the
// mobile pawns (mp) and mobile pieces (mf) of the side to move.
func (r *Runner) emit(st *state) error {
	tags := maps.Keys(st.boards)
	slices.Sort(tags)
	for _, tag := range tags {
		pos := st.boards[tag]
		pawns, pieces := pos.MobilePieces()
		fmt.Fprintf(r.Out, "=== %s\n%smp:%s\nmf:%s\n\n", tag, pos, pawns.String(), pieces.String())
		if r.SVGDir != "" {
			if err := r.writeSVG(tag, pos); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Runner) writeSVG(tag string, pos *board.Position) error {
	if err := os.MkdirAll(r.SVGDir, 0o755); err != nil {
		return err
	}
	name := filepath.Join(r.SVGDir, filepath.Base(tag)+".svg")
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()
	return render.SVG(f, pos)
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n' || c == '\v' || c == '\f'
}
