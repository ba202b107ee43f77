// Command pathfind records a greedy best-first search across a grid.
package main

import (
	"flag"
	"log"
	"os"
	"time"

	"gridreel/internal/cli"
	"gridreel/pkg/grid"
)

func main() {
	cfg := grid.DefaultConfig()
	cfg.Gridlines = true
	common := cli.NewCommon("pathfind.apng", cfg)
	common.Hold = 1500 * time.Millisecond

	start := grid.Cell{Col: 1, Row: 1}
	target := grid.Cell{Col: 12, Row: 17}
	diag := false
	flag.Var(cellFlag{&start}, "start", "start cell as col,row")
	flag.Var(cellFlag{&target}, "target", "target cell as col,row")
	flag.BoolVar(&diag, "diag", diag, "allow diagonal moves")
	common.Bind(flag.CommandLine)
	if err := common.Parse(flag.CommandLine, os.Args[1:]); err != nil {
		log.Fatal(err)
	}

	v, err := common.NewVisual()
	if err != nil {
		log.Fatal(err)
	}
	path, err := search(common.Grid, v, start, target, diag)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}
	if !common.Quiet {
		log.Printf("path of %d cells, %d frames recorded", len(path), v.Len())
	}
	if err := v.Export(common.Out, common.Loop, common.Duration); err != nil {
		log.Fatal(err)
	}
	if err := common.Finish(); err != nil {
		log.Fatal(err)
	}
}
