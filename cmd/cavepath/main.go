package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/jakecoffman/cp"
	"github.com/milk9111/delve/common"
	"github.com/milk9111/delve/component"
	"github.com/milk9111/delve/obj"
	"github.com/milk9111/delve/prefabs"
)

type runStats struct {
	pairs      int
	found      int
	greedyHits int
	pathSteps  int
	nodes      int
	elapsed    time.Duration
}

func main() {
	seed := flag.Uint64("seed", 1, "cave seed")
	size := flag.Int("size", 0, "chunk size in tiles (0 uses world.yaml)")
	pairs := flag.Int("pairs", 20, "random start/goal pairs to plan between")
	cutoff := flag.Float64("cutoff", component.DefaultCutoffFactor, "A* cutoff factor")
	maxSteps := flag.Int("steps", 200, "greedy walk step limit")
	showMap := flag.Bool("map", true, "print the cave with the first path found")
	flag.Parse()

	spec, err := prefabs.LoadSpec[prefabs.WorldSpec](prefabs.WorldFile)
	if err != nil {
		log.Fatal(err)
	}
	if *size > 0 {
		spec.ChunkSize = *size
	}

	rng := rand.New(rand.NewPCG(*seed, *seed^0x9e3779b97f4a7c15))
	chunk := obj.GenerateChunk(spec, rng)
	floor := chunk.FloorTiles()
	if len(floor) < 2 {
		log.Fatalf("cavepath: seed %d has %d floor tiles", *seed, len(floor))
	}

	var (
		stats   runStats
		first   component.PathSearch
		hasShow bool
	)
	for i := 0; i < *pairs; i++ {
		start := floor[rng.IntN(len(floor))]
		goal := floor[rng.IntN(len(floor))]
		if start == goal {
			continue
		}
		stats.pairs++

		// obstacles are snapshotted per call, as in the game
		began := time.Now()
		res := component.SearchPath(component.SnapshotObstacles(chunk), start, goal, *cutoff)
		stats.elapsed += time.Since(began)
		stats.nodes += res.Nodes

		if len(res.Path) > 0 {
			stats.found++
			stats.pathSteps += len(res.Path)
			if !hasShow {
				first, hasShow = res, true
			}
		}
		if greedyWalk(chunk, start, goal, *maxSteps) {
			stats.greedyHits++
		}
	}

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()

	if *showMap {
		printMap(out, chunk, first)
	}
	fmt.Fprintf(out, "seed %d  size %d  walls %d  floor %d\n", *seed, spec.ChunkSize, len(chunk.Colliders), len(floor))
	fmt.Fprintf(out, "pairs %d  a* found %d  greedy reached %d\n", stats.pairs, stats.found, stats.greedyHits)
	if stats.found > 0 {
		fmt.Fprintf(out, "mean path %.1f steps\n", float64(stats.pathSteps)/float64(stats.found))
	}
	if stats.pairs > 0 {
		fmt.Fprintf(out, "mean nodes %.1f  mean time %v\n", float64(stats.nodes)/float64(stats.pairs), stats.elapsed/time.Duration(stats.pairs))
	}
}

// greedyWalk follows NextStep until it reaches goal or runs out of steps.
func greedyWalk(chunk *obj.Chunk, start, goal cp.Vector, maxSteps int) bool {
	obstacles := component.SnapshotObstacles(chunk)
	pos := start
	for i := 0; i < maxSteps; i++ {
		next, ok := component.NextStep(obstacles, pos, goal)
		if !ok {
			return false
		}
		if next == goal {
			return true
		}
		pos = next
	}
	return false
}

func printMap(w io.Writer, chunk *obj.Chunk, search component.PathSearch) {
	cells := make(map[cp.Vector]byte, len(chunk.Colliders))
	for _, wall := range chunk.Colliders {
		switch wall.Kind {
		case obj.WallIronOre:
			cells[wall.Pos] = '$'
		case obj.WallCave:
			cells[wall.Pos] = '#'
		default:
			cells[wall.Pos] = '%'
		}
	}
	for _, p := range search.Visited {
		cells[p] = ','
	}
	for _, p := range search.Path {
		cells[p] = '*'
	}
	if n := len(search.Path); n > 0 {
		cells[search.Path[n-1]] = 'G'
	}
	if len(search.Visited) > 0 {
		cells[search.Visited[0]] = 'S'
	}

	line := make([]byte, 0, chunk.Size+3)
	for y := -1; y <= chunk.Size; y++ {
		line = line[:0]
		for x := -1; x <= chunk.Size; x++ {
			c, ok := cells[common.TilePos(x, y)]
			if !ok {
				c = '.'
			}
			line = append(line, c)
		}
		line = append(line, '\n')
		w.Write(line)
	}
}
