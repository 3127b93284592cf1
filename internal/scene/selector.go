// Package scene turns normalized chain groups into scene-building calls
// against an externally owned structure viewer: component selection,
// representation kinds, and the fixed palette policy.
package scene

import (
	"encoding/json"
	"strings"

	"github.com/molembed/molembed/internal/chainplan"
)

// Term matches a chain under exactly one addressing scheme. The same logical
// chain may be addressable by its internal label or by the author-provided
// id depending on the structure source, so selectors carry both.
type Term struct {
	LabelAsymID string `json:"label_asym_id,omitempty"`
	AuthAsymID  string `json:"auth_asym_id,omitempty"`
}

// ComponentSelector selects the atoms a component is built from: either a
// built-in role keyword, or one or more chain terms with OR semantics.
type ComponentSelector struct {
	Role  chainplan.Role
	Terms []Term
}

// RoleSelector selects a viewer built-in role ("protein", "ligand", ...).
func RoleSelector(role chainplan.Role) ComponentSelector {
	return ComponentSelector{Role: role}
}

// BuildChainSelector converts chain ids into a selector matching each chain
// under both addressing schemes, label first. Each (scheme, token) pair is
// emitted once. Returns nil when no usable token remains, which callers
// must treat as "skip this group" rather than an empty query.
func BuildChainSelector(chainIDs []string) *ComponentSelector {
	if len(chainIDs) == 0 {
		return nil
	}
	seen := make(map[string]bool)
	var terms []Term
	for _, id := range chainIDs {
		token := strings.TrimSpace(id)
		if token == "" {
			continue
		}
		if key := "label:" + token; !seen[key] {
			seen[key] = true
			terms = append(terms, Term{LabelAsymID: token})
		}
		if key := "auth:" + token; !seen[key] {
			seen[key] = true
			terms = append(terms, Term{AuthAsymID: token})
		}
	}
	if len(terms) == 0 {
		return nil
	}
	return &ComponentSelector{Terms: terms}
}

// MarshalJSON keeps the wire shape minimal: role selectors become the bare
// keyword, single-term selectors a single object, multi-term selectors a
// list.
func (s ComponentSelector) MarshalJSON() ([]byte, error) {
	if s.Role != "" {
		return json.Marshal(string(s.Role))
	}
	if len(s.Terms) == 1 {
		return json.Marshal(s.Terms[0])
	}
	return json.Marshal(s.Terms)
}
