// chessline replays move-script files against the position engine and
// prints the final board and mobile pieces of every variant.
//
// Usage:
//
//	chessline [-svg dir] input <file>
//
// Unknown arguments are ignored and the exit code is always 0; the scripts
// themselves report their failures as ERROR lines.
package main

import (
	"flag"
	"log"
	"os"

	"github.com/lkardos/chessline/internal/script"
)

var svgDir = flag.String("svg", "", "write a board SVG per variant into this directory")

func main() {
	flag.Parse()
	args := flag.Args()

	if len(args) >= 2 && args[0] == "input" {
		f, err := os.Open(args[1])
		if err != nil {
			log.Printf("cannot open %s: %v", args[1], err)
			return
		}
		defer f.Close()

		r := &script.Runner{Out: os.Stdout, SVGDir: *svgDir}
		if err := r.Run(f); err != nil {
			log.Printf("run %s: %v", args[1], err)
		}
	}
}
