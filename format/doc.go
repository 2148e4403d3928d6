// SPDX-License-Identifier: MIT

// Package format renders a graph.TimeGraph as colorized, tabular text for
// interactive use. It is an outer layer on top of the core: graph never
// imports it, and nothing here reaches into graph's unexported state — it
// consumes graph's exported PointView/ChainView/EventView snapshots only.
package format
