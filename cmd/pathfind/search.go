package main

import (
	"container/heap"
	"errors"
	"fmt"
	"image/color"

	"gridreel/pkg/grid"
)

var (
	errNoPath = errors.New("target unreachable")

	startColor    = grid.RGB{G: 100}
	targetColor   = grid.RGB{R: 100}
	visitedColor  = grid.RGB{R: 255}
	frontierColor = grid.RGB{B: 255}
	pathColor     = grid.RGB{G: 255}
)

// recorder is the part of a visual the search draws on.
type recorder interface {
	Fill(cell grid.Cell, fill color.Color)
	Snapshot() error
}

type candidate struct {
	dist int
	cell grid.Cell
}

// frontier orders candidates by distance, then column, then row.
type frontier []candidate

func (f frontier) Len() int { return len(f) }
func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	if a.dist != b.dist {
		return a.dist < b.dist
	}
	if a.cell.Col != b.cell.Col {
		return a.cell.Col < b.cell.Col
	}
	return a.cell.Row < b.cell.Row
}
func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }
func (f *frontier) Push(x any)   { *f = append(*f, x.(candidate)) }
func (f *frontier) Pop() any {
	old := *f
	c := old[len(old)-1]
	*f = old[:len(old)-1]
	return c
}

func manhattan(a, b grid.Cell) int {
	return abs(a.Col-b.Col) + abs(a.Row-b.Row)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// search runs a greedy best-first search from start to target, recording a
// frame for every expanded cell and every cell of the resulting path. The
// returned path runs from start up to the cell before target and is empty
// when start is target.
func search(cfg grid.Config, r recorder, start, target grid.Cell, diag bool) ([]grid.Cell, error) {
	for _, c := range []grid.Cell{start, target} {
		if !cfg.Contains(c) {
			return nil, fmt.Errorf("cell %v outside %dx%d grid", c, cfg.Columns, cfg.Rows)
		}
	}
	r.Fill(target, targetColor)
	r.Fill(start, startColor)
	if err := r.Snapshot(); err != nil {
		return nil, err
	}

	came := map[grid.Cell]grid.Cell{start: start}
	open := &frontier{{dist: 0, cell: start}}
	found := false
	for open.Len() > 0 {
		cur := heap.Pop(open).(candidate).cell
		if cur == target {
			found = true
			break
		}
		r.Fill(cur, visitedColor)
		if err := r.Snapshot(); err != nil {
			return nil, err
		}
		for _, n := range cfg.Neighbors(cur, diag) {
			if _, seen := came[n]; seen {
				continue
			}
			came[n] = cur
			heap.Push(open, candidate{dist: manhattan(n, target), cell: n})
			if n != target {
				r.Fill(n, frontierColor)
			}
		}
	}
	if !found {
		return nil, errNoPath
	}
	if start == target {
		return nil, nil
	}

	var path []grid.Cell
	for c := came[target]; c != start; c = came[c] {
		path = append(path, c)
	}
	path = append(path, start)
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	for _, c := range path {
		r.Fill(c, pathColor)
		if err := r.Snapshot(); err != nil {
			return nil, err
		}
	}
	return path, nil
}
