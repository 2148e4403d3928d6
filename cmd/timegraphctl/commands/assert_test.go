// SPDX-License-Identifier: MIT
package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/timegraph/graph"
)

func TestBuildGraphAppliesEnterLines(t *testing.T) {
	g, err := buildGraph([]string{
		"enter a before b",
		"enter b before c",
	})
	require.NoError(t, err)

	rel, err := g.Relation(graph.Name("a"), graph.Name("c"), 0)
	require.NoError(t, err)
	assert.Equal(t, "before", rel)
}

func TestBuildGraphAppliesDurationLine(t *testing.T) {
	g, err := buildGraph([]string{
		"enter a before b",
		"duration a at-least-before b 3600",
	})
	require.NoError(t, err)

	min, _, err := g.Elapsed(graph.Name("a"), graph.Name("b"), 1)
	require.NoError(t, err)
	assert.Equal(t, 3600.0, min)
}

func TestBuildGraphRejectsUnknownAssertionKind(t *testing.T) {
	_, err := buildGraph([]string{"frobnicate a b"})
	assert.Error(t, err)
}

func TestParseArgResolvesAbsoluteLiteral(t *testing.T) {
	arg, err := parseArg("@2024,5,10,?,?,?")
	require.NoError(t, err)
	// graph.Abs wraps the literal as a kindAbs TimeArg; Enter accepts it
	// directly as one side of a relation.
	g := graph.NewGraph()
	_, err = g.Enter(graph.Name("a"), "before", arg)
	assert.NoError(t, err)
}

func TestParseArgRejectsMalformedLiteral(t *testing.T) {
	_, err := parseArg("@2024,5,10")
	assert.Error(t, err)
}
