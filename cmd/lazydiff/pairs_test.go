package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chmouel/lazydiff/internal/models"
)

func TestParsePairs(t *testing.T) {
	pairs, err := parsePairs([]string{"a.old", "a.new", "b.old", "b.new"})
	require.NoError(t, err)
	assert.Equal(t, []models.PathPair{
		{OldPath: "a.old", NewPath: "a.new"},
		{OldPath: "b.old", NewPath: "b.new"},
	}, pairs)
}

func TestParsePairsEmpty(t *testing.T) {
	pairs, err := parsePairs(nil)
	require.NoError(t, err)
	assert.Empty(t, pairs)
}

func TestParsePairsOddCount(t *testing.T) {
	_, err := parsePairs([]string{"a.old", "a.new", "dangling"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "old/new pairs")
}
