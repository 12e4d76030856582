// Package phase loads and saves run-state files: small YAML documents that
// record which nodes of a flow have finished and which one is running now.
// A state file looks like:
//
//	completed:
//	  - fetch
//	  - parse
//	active: render
package phase

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/flowviz/flowviz/internal/diagram"
	"github.com/flowviz/flowviz/internal/errors"
)

// fileState is the on-disk shape. It stays separate from diagram.RenderState
// so the core model never grows serialization tags.
type fileState struct {
	Completed []string `yaml:"completed"`
	Active    string   `yaml:"active"`
}

// Load reads a state file and returns the render state it describes.
// Unknown keys are rejected so a typo like 'compleated' fails loudly
// instead of silently rendering everything as pending.
func Load(path string) (diagram.RenderState, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return diagram.RenderState{}, errors.WrapWithCode(err, errors.ErrConfig,
				"State file not found: "+path,
				"Create a YAML file with 'completed' and 'active' keys, or use --completed/--active instead")
		}
		return diagram.RenderState{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Cannot read state file: "+path,
			"Check file permissions")
	}

	var fs fileState
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fs); err != nil {
		// An empty file decodes to EOF; treat it as an empty state.
		if stderrors.Is(err, io.EOF) {
			return diagram.RenderState{}, nil
		}
		return diagram.RenderState{}, errors.WrapWithCode(err, errors.ErrConfig,
			"Invalid state file: "+path,
			"Expected YAML with 'completed' (list of node ids) and 'active' (node id)")
	}

	return normalize(diagram.RenderState{Completed: fs.Completed, Active: fs.Active}), nil
}

// Save writes the state to path, creating or truncating the file.
func Save(path string, st diagram.RenderState) error {
	st = normalize(st)
	var buf strings.Builder
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(fileState{Completed: st.Completed, Active: st.Active}); err != nil {
		enc.Close()
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to encode state", "")
	}
	enc.Close()

	if err := os.WriteFile(path, []byte(buf.String()), 0644); err != nil {
		return errors.WrapWithCode(err, errors.ErrConfig,
			"Failed to write state file: "+path,
			"Check directory permissions")
	}
	return nil
}

// Merge overlays command-line values on a loaded state. Flags win: a
// non-empty completed list replaces the file's list, a non-empty active
// id replaces the file's active id.
func Merge(st diagram.RenderState, completed []string, active string) diagram.RenderState {
	if len(completed) > 0 {
		st.Completed = completed
	}
	if active != "" {
		st.Active = active
	}
	return normalize(st)
}

// Validate checks that every id the state references exists in the graph.
func Validate(st diagram.RenderState, g *diagram.Graph) error {
	known := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		known[n.ID] = true
	}

	for _, id := range st.Completed {
		if !known[id] {
			return unknownNode("completed", id, g)
		}
	}
	if st.Active != "" && !known[st.Active] {
		return unknownNode("active", st.Active, g)
	}
	return nil
}

func unknownNode(field, id string, g *diagram.Graph) error {
	ids := make([]string, 0, len(g.Nodes))
	for _, n := range g.Nodes {
		ids = append(ids, n.ID)
	}
	return errors.New(errors.ErrConfig,
		fmt.Sprintf("State references %s node '%s' which isn't in the diagram", field, id),
		"Known nodes: "+strings.Join(ids, ", "))
}

// normalize trims whitespace and drops empty entries so a trailing comma in
// --completed or a blank list item doesn't count as a node.
func normalize(st diagram.RenderState) diagram.RenderState {
	out := diagram.RenderState{Active: strings.TrimSpace(st.Active)}
	for _, id := range st.Completed {
		if id = strings.TrimSpace(id); id != "" {
			out.Completed = append(out.Completed, id)
		}
	}
	return out
}
