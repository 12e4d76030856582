package diagram

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/flowviz/flowviz/internal/errors"
)

var (
	nodePattern     = regexp.MustCompile(`^([A-Za-z0-9_-]+)\[([^\]]*)\]$`)
	edgePattern     = regexp.MustCompile(`^([A-Za-z0-9_-]+(?:\[[^\]]*\])?)\s*-->\s*(?:\|([^|]*)\|\s*)?([A-Za-z0-9_-]+(?:\[[^\]]*\])?)$`)
	subgraphPattern = regexp.MustCompile(`^subgraph\s+([A-Za-z0-9_-]+)(?:\s*\[([^\]]*)\])?$`)
	headerPattern   = regexp.MustCompile(`^flow\s+(LR|RL|TB|TD|BT)$`)
)

// Parse reads diagram source into a Graph. The language is deliberately
// small:
//
//	flow LR
//	%% comment
//	agent_orchestrator[Orchestrator]
//	agent_orchestrator --> tool_fetch[Fetch]
//	tool_fetch -->|result| hook_validate[Validate]
//	subgraph pipeline [Pipeline]
//	  param_depth[Depth]
//	end
//
// The direction header is optional and defaults to TD. Nodes referenced
// only in edges get their id as label. Errors carry the offending line
// number; callers degrade to uncolored raw text rather than aborting.
func Parse(source string) (*Graph, error) {
	g := &Graph{Direction: DirectionTD}

	currentSubgraph := ""
	sawHeader := false

	for i, raw := range strings.Split(source, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "%%") {
			continue
		}

		if m := headerPattern.FindStringSubmatch(line); m != nil {
			if sawHeader {
				return nil, parseErr(i+1, "duplicate flow header")
			}
			sawHeader = true
			g.Direction = Direction(m[1])
			continue
		}

		if m := subgraphPattern.FindStringSubmatch(line); m != nil {
			if currentSubgraph != "" {
				return nil, parseErr(i+1, "nested subgraphs are not supported")
			}
			title := strings.TrimSpace(m[2])
			if title == "" {
				title = m[1]
			}
			g.Subgraphs = append(g.Subgraphs, Subgraph{ID: m[1], Title: title})
			currentSubgraph = m[1]
			continue
		}

		if line == "end" {
			if currentSubgraph == "" {
				return nil, parseErr(i+1, "end without matching subgraph")
			}
			currentSubgraph = ""
			continue
		}

		if m := edgePattern.FindStringSubmatch(line); m != nil {
			from := g.upsert(m[1], currentSubgraph)
			to := g.upsert(m[3], currentSubgraph)
			g.Edges = append(g.Edges, Edge{From: from, To: to, Label: strings.TrimSpace(m[2])})
			continue
		}

		if m := nodePattern.FindStringSubmatch(line); m != nil {
			g.upsert(line, currentSubgraph)
			continue
		}

		return nil, parseErr(i+1, fmt.Sprintf("cannot parse %q", line))
	}

	if currentSubgraph != "" {
		return nil, errors.New(errors.ErrParse,
			fmt.Sprintf("subgraph %q is never closed", currentSubgraph),
			"Close the subgraph with a line containing only 'end'")
	}

	return g, nil
}

// upsert registers a node reference, which is either a bare id or
// id[Label], and returns the id. The first declaration with an explicit
// label wins; later bare references never downgrade it.
func (g *Graph) upsert(ref, subgraph string) string {
	id := ref
	label := ""
	if m := nodePattern.FindStringSubmatch(ref); m != nil {
		id = m[1]
		label = strings.TrimSpace(m[2])
	}

	for i := range g.Nodes {
		if g.Nodes[i].ID != id {
			continue
		}
		if label != "" && g.Nodes[i].Label == id {
			g.Nodes[i].Label = label
		}
		return id
	}

	if label == "" {
		label = id
	}
	g.Nodes = append(g.Nodes, Node{ID: id, Label: label, Subgraph: subgraph})
	return id
}

func parseErr(line int, msg string) *errors.Error {
	return errors.New(errors.ErrParse,
		fmt.Sprintf("line %d: %s", line, msg),
		"Expected 'flow <LR|RL|TB|TD|BT>', 'id[Label]', 'a --> b', 'subgraph id [Title]' or 'end'")
}
