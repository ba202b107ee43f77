package main

import (
	"fmt"
	"strconv"
	"strings"

	"gridreel/pkg/grid"
)

// cellFlag parses "col,row" into a grid.Cell.
type cellFlag struct{ c *grid.Cell }

func (f cellFlag) String() string {
	if f.c == nil {
		return ""
	}
	return fmt.Sprintf("%d,%d", f.c.Col, f.c.Row)
}

func (f cellFlag) Set(s string) error {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return fmt.Errorf("cell %q: want col,row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return fmt.Errorf("cell %q: %w", s, err)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return fmt.Errorf("cell %q: %w", s, err)
	}
	*f.c = grid.Cell{Col: col, Row: row}
	return nil
}
