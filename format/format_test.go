// SPDX-License-Identifier: MIT
package format

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/timegraph/graph"
)

func TestTimegraphRendersAllSections(t *testing.T) {
	g := graph.NewGraph()
	_, err := g.Enter(graph.Name("a"), "before", graph.Name("b"))
	require.NoError(t, err)
	g.RegisterEvent("meeting")

	var buf bytes.Buffer
	Timegraph(&buf, g, true)

	out := buf.String()
	assert.Contains(t, out, "Points:")
	assert.Contains(t, out, "Chains:")
	assert.Contains(t, out, "Events:")
	assert.Contains(t, out, "a")
	assert.Contains(t, out, "b")
	assert.Contains(t, out, "meeting")
}

func TestPointRendersSingleRow(t *testing.T) {
	g := graph.NewGraph()
	g.AddSingle("solo")

	var buf bytes.Buffer
	require.NoError(t, Point(&buf, g, "solo"))
	assert.Contains(t, buf.String(), "solo")
}

func TestPointErrorsOnUnknownName(t *testing.T) {
	g := graph.NewGraph()
	var buf bytes.Buffer
	err := Point(&buf, g, "nope")
	assert.Error(t, err)
}

func TestTimegraphOnEmptyGraph(t *testing.T) {
	g := graph.NewGraph()
	var buf bytes.Buffer
	assert.NotPanics(t, func() {
		Timegraph(&buf, g, false)
	})
	out := buf.String()
	assert.Contains(t, out, "_no points_")
	assert.Contains(t, out, "_no chains_")
	assert.Contains(t, out, "_no events_")
}
