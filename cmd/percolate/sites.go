package main

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var errBadSite = errors.New("site must be written as row,col")

type site struct {
	row, col int
}

// parseSite reads "row,col". Range checks are left to the grid.
func parseSite(s string) (site, error) {
	r, c, ok := strings.Cut(strings.TrimSpace(s), ",")
	if !ok {
		return site{}, fmt.Errorf("%w: %q", errBadSite, s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(r))
	if err != nil {
		return site{}, fmt.Errorf("%w: %q", errBadSite, s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(c))
	if err != nil {
		return site{}, fmt.Errorf("%w: %q", errBadSite, s)
	}

	return site{row: row, col: col}, nil
}

func parseSites(raw []string) ([]site, error) {
	out := make([]site, 0, len(raw))
	for _, s := range raw {
		st, err := parseSite(s)
		if err != nil {
			return nil, err
		}
		out = append(out, st)
	}

	return out, nil
}
