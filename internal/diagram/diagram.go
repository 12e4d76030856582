// Package diagram defines the flow-graph model and the parser for the
// small description language the renderer consumes. A diagram is a list
// of labeled nodes joined by directed edges, optionally grouped into
// subgraphs, with a direction marker choosing the layout axis.
package diagram

import (
	"github.com/flowviz/flowviz/internal/classify"
	"github.com/flowviz/flowviz/internal/palette"
)

// Direction selects the layout axis.
type Direction string

const (
	DirectionLR Direction = "LR"
	DirectionRL Direction = "RL"
	DirectionTB Direction = "TB"
	DirectionTD Direction = "TD"
	DirectionBT Direction = "BT"
)

// Horizontal reports whether boxes flow along a row instead of a column.
func (d Direction) Horizontal() bool {
	return d == DirectionLR || d == DirectionRL
}

// Node is one diagram vertex. Subgraph names the enclosing subgraph id,
// empty for top-level nodes.
type Node struct {
	ID       string
	Label    string
	Subgraph string
}

// Edge is a directed connection between two nodes by id.
type Edge struct {
	From  string
	To    string
	Label string
}

// Subgraph is a named grouping of nodes. Titles participate in category
// inference but are never rendered as boxes.
type Subgraph struct {
	ID    string
	Title string
}

// Graph is a parsed diagram. Nodes preserves declaration order.
type Graph struct {
	Direction Direction
	Nodes     []Node
	Edges     []Edge
	Subgraphs []Subgraph
}

// Labels returns the id→label map used by layout and colorizing.
func (g *Graph) Labels() map[string]string {
	labels := make(map[string]string, len(g.Nodes))
	for _, n := range g.Nodes {
		labels[n.ID] = n.Label
	}
	return labels
}

// NodeInfo pairs a node with its resolved category for the colorizing
// pass. Subgraph titles appear as pseudo-entries with a "subgraph:" id
// prefix.
type NodeInfo struct {
	ID       string
	Label    string
	Category palette.Category
}

// NodeInfos classifies every node and subgraph title. The overrides map
// is passed straight to the classifier.
func (g *Graph) NodeInfos(overrides map[string]palette.Category) []NodeInfo {
	infos := make([]NodeInfo, 0, len(g.Nodes)+len(g.Subgraphs))
	for _, n := range g.Nodes {
		infos = append(infos, NodeInfo{
			ID:       n.ID,
			Label:    n.Label,
			Category: classify.Classify(n.ID, n.Label, overrides),
		})
	}
	for _, sg := range g.Subgraphs {
		infos = append(infos, NodeInfo{
			ID:       "subgraph:" + sg.ID,
			Label:    sg.Title,
			Category: classify.Classify(sg.ID, sg.Title, overrides),
		})
	}
	return infos
}

// RenderState carries caller-supplied progress through a render: which
// nodes are finished and which one is running. Read-only to the
// rendering pipeline.
type RenderState struct {
	Completed []string
	Active    string
}

// IsCompleted reports whether the node id is in the completed set.
func (s RenderState) IsCompleted(id string) bool {
	for _, done := range s.Completed {
		if done == id {
			return true
		}
	}
	return false
}

// Started reports whether any progress has been recorded. Pending nodes
// are only dimmed once this is true.
func (s RenderState) Started() bool {
	return len(s.Completed) > 0
}
