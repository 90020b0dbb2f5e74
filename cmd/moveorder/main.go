package main

import (
	"flag"
	"log"
	"os"
	"strings"

	"chess-ordering/board"
	"chess-ordering/engine"
)

func main() {
	fenFlag := flag.String("fen", "", "FEN to order (empty = startpos)")
	depthFlag := flag.Int("depth", 4, "depth the picker is told it searches at")
	ttFlag := flag.String("tt", "", "hash move to try first, in UCI notation")
	killersFlag := flag.String("killers", "", "comma separated killer moves")
	statsFlag := flag.Bool("stats", false, "print per-stage picker statistics")
	flag.Parse()

	fen := board.StartFEN
	if *fenFlag != "" {
		fen = *fenFlag
	}
	pos, err := board.FromFEN(fen)
	if err != nil {
		log.Fatalf("could not parse position: %v", err)
	}

	ttm := board.NoMove
	if *ttFlag != "" {
		if ttm, err = pos.ParseMove(*ttFlag); err != nil {
			log.Printf("hash move ignored: %v", err)
		}
	}

	th := engine.NewThread()
	ss := engine.NewSearchStack()
	if *killersFlag != "" {
		for _, s := range strings.Split(*killersFlag, ",") {
			m, err := pos.ParseMove(s)
			if err != nil {
				log.Fatalf("killer: %v", err)
			}
			ss.At(0).InsertKiller(m)
		}
	}

	engine.DumpOrderingWithStack(os.Stdout, pos, th, ss, ttm, engine.Depth(*depthFlag))
	if *statsFlag {
		th.Stats.Dump(os.Stdout)
	}
}
