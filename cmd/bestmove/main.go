// Command bestmove runs a single search from the command line:
//
//	bestmove "<fen>" [depth]
package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/fatihtuzcu28/chess/app"
	"github.com/fatihtuzcu28/chess/app/config"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatalf("usage: %s \"<fen>\" [depth]", os.Args[0])
	}
	fen := os.Args[1]

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	depth := cfg.Engine.Depth
	if len(os.Args) > 2 {
		depth, err = strconv.Atoi(os.Args[2])
		if err != nil || depth < 1 {
			log.Fatalf("depth must be a positive integer, got %q", os.Args[2])
		}
	}

	pos, err := app.LoadPosition(fen)
	if err != nil {
		log.Fatalf("bad position: %v", err)
	}

	start := time.Now()
	move, score := app.BestMove(pos, depth)
	took := time.Since(start)

	if move == nil {
		fmt.Println("no legal moves")
		return
	}
	fmt.Printf("move=%s score=%d depth=%d took=%s\n", move.String(), score, depth, took)
}
