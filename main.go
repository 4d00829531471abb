// Disguiser is a terminal stealth roguelike: sneak into procedurally
// generated courtyard mansions, map them, and steal every coin without the
// guards catching you. Run it locally with this binary, or serve it over
// SSH with ./cmd/server.
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"disguiser/internal/game"
)

func main() {
	seed := flag.Int64("seed", 0, "Map seed (0 picks one from the clock)")
	flag.Parse()

	if *seed == 0 {
		*seed = time.Now().UnixNano()
	}

	g, err := game.New(*seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "disguiser: %v\n", err)
		os.Exit(1)
	}
	g.Run()
}
