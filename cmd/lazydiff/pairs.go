package main

import (
	"fmt"

	"github.com/chmouel/lazydiff/internal/models"
)

// parsePairs turns positional arguments into old/new path pairs. The
// arguments alternate: old1 new1 old2 new2 ...
func parsePairs(args []string) ([]models.PathPair, error) {
	if len(args)%2 != 0 {
		return nil, fmt.Errorf("file arguments must come in old/new pairs, got %d paths", len(args))
	}

	pairs := make([]models.PathPair, 0, len(args)/2)
	for i := 0; i < len(args); i += 2 {
		pairs = append(pairs, models.PathPair{OldPath: args[i], NewPath: args[i+1]})
	}
	return pairs, nil
}
