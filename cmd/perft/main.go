package main

import (
	"flag"
	"fmt"
	"os"
	"runtime/pprof"
	"sort"
	"time"

	"chess-ordering/board"
	"chess-ordering/engine"
)

func main() {
	fen := flag.String("fen", board.StartFEN, "FEN string (defaults to initial position)")
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	repeat := flag.Int("repeat", 1, "Repeat perft N times and report aggregate (for steadier timings)")
	label := flag.String("label", "", "Optional label prefix for one-line output")
	stats := flag.Bool("stats", false, "Print per-stage picker statistics after the run")
	cpuProf := flag.String("cpuprofile", "", "Write CPU profile to file during run")
	flag.Parse()

	if *depth <= 0 || *depth > engine.MaxPly {
		fmt.Fprintf(os.Stderr, "-depth must be in [1, %d]\n", engine.MaxPly)
		os.Exit(2)
	}

	pos, err := board.FromFEN(*fen)
	if err != nil {
		fmt.Fprintf(os.Stderr, "FromFEN error: %v\n", err)
		os.Exit(2)
	}
	th := engine.NewThread()

	if *divide {
		entries, err := engine.PerftDivide(pos, th, *depth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft: %v\n", err)
			os.Exit(2)
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Move.String() < entries[j].Move.String()
		})
		var sum uint64
		for _, e := range entries {
			fmt.Printf("%s: %d\n", e.Move.String(), e.Nodes)
			sum += e.Nodes
		}
		fmt.Printf("Total: %d\n", sum)
		if *stats {
			th.Stats.Dump(os.Stdout)
		}
		return
	}

	if *cpuProf != "" {
		f, err := os.Create(*cpuProf)
		if err != nil {
			fmt.Fprintf(os.Stderr, "creating cpuprofile: %v\n", err)
			os.Exit(2)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			fmt.Fprintf(os.Stderr, "start cpu profile: %v\n", err)
			os.Exit(2)
		}
		defer func() {
			pprof.StopCPUProfile()
			_ = f.Close()
		}()
	}

	var totalNodes uint64
	start := time.Now()
	for i := 0; i < *repeat; i++ {
		nodes, err := engine.Perft(pos, th, *depth)
		if err != nil {
			fmt.Fprintf(os.Stderr, "perft: %v\n", err)
			os.Exit(2)
		}
		totalNodes += nodes
	}
	elapsed := time.Since(start)
	nps := float64(totalNodes) / elapsed.Seconds()

	// Label Depth Nodes Time NPS
	fmt.Printf("%s \t%d \t\t%d \t\t%s \t%.0f\n", *label, *depth, totalNodes, elapsed, nps)

	if *stats {
		th.Stats.Dump(os.Stdout)
	}
}
