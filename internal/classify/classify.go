// Package classify assigns semantic categories to diagram nodes. A node's
// category decides its color: explicit mappings win, then the id prefix
// convention (agent_planner, tool-fetch), then keyword heuristics over the
// id and label. Nothing matching is not an error; such nodes fall back to
// the default color.
package classify

import (
	"strings"

	"github.com/flowviz/flowviz/internal/palette"
)

// roleKeywords holds the per-role substring heuristics. A keyword hit on
// the lower-cased id or label assigns the role. Roles are checked in
// palette.Roles() order (agent, tool, hook, param, event), first hit wins;
// that order is a contract, not an implementation detail, so identical
// inputs classify identically everywhere.
var roleKeywords = map[palette.Category][]string{
	palette.CategoryAgent: {"agent", "orchestr", "planner", "assistant", "worker"},
	palette.CategoryTool:  {"tool", "fetch", "search", "exec", "shell", "browser"},
	palette.CategoryHook:  {"hook", "trigger", "intercept", "callback", "guard"},
	palette.CategoryParam: {"param", "config", "input", "setting", "option"},
	palette.CategoryEvent: {"event", "signal", "notify", "emit", "message"},
}

// Classify resolves the category for a node. Precedence: explicit override
// by id, then id prefix (role_ or role-, case-insensitive), then keyword
// search, then CategoryNone. Total over all inputs including empty
// strings.
func Classify(nodeID, label string, overrides map[string]palette.Category) palette.Category {
	if cat, ok := overrides[nodeID]; ok {
		return cat
	}

	id := strings.ToLower(nodeID)
	for _, role := range palette.Roles() {
		if strings.HasPrefix(id, string(role)+"_") || strings.HasPrefix(id, string(role)+"-") {
			return role
		}
	}

	lowerLabel := strings.ToLower(label)
	for _, role := range palette.Roles() {
		for _, keyword := range roleKeywords[role] {
			if strings.Contains(id, keyword) || strings.Contains(lowerLabel, keyword) {
				return role
			}
		}
	}

	return palette.CategoryNone
}
