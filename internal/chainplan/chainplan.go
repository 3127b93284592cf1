// Package chainplan handles "color plans": groups of chain identifiers that
// share one visual treatment, keyed by molecule role. Plans arrive from two
// directions. The authoring half builds them from component metadata or from
// raw structure text and serializes them onto widget markup; the bootstrap
// core parses them back from an untrusted attribute, normalizing at the
// boundary so nothing downstream has to re-validate shape.
package chainplan

import (
	"encoding/json"
	"strconv"
	"strings"
)

// Role is the coarse molecule role a chain group is rendered as.
type Role string

const (
	RoleProtein  Role = "protein"
	RoleNucleic  Role = "nucleic"
	RoleLigand   Role = "ligand"
	RoleIon      Role = "ion"
	RoleBranched Role = "branched"
	RoleOther    Role = "other"
)

// ColorPlan holds normalized, de-duplicated chain groups per role. Within
// one role a chain id appears at most once across all groups: a chain must
// not receive two conflicting representations.
type ColorPlan struct {
	Protein [][]string `json:"protein_chain_groups"`
	Nucleic [][]string `json:"nucleic_chain_groups"`
	Ligand  [][]string `json:"ligand_chain_groups"`
	Ion     [][]string `json:"ion_chain_groups"`
	Other   [][]string `json:"other_chain_groups"`

	// AntibodyPairDetected marks a heavy/light protein pairing found while
	// building the plan. Diagnostic only; it does not affect rendering.
	AntibodyPairDetected bool `json:"antibody_pair_detected,omitempty"`
}

// IsEmpty reports whether the plan contains no chain groups at all.
func (p ColorPlan) IsEmpty() bool {
	return len(p.Protein) == 0 && len(p.Nucleic) == 0 && len(p.Ligand) == 0 &&
		len(p.Ion) == 0 && len(p.Other) == 0
}

// Groups returns the plan's groups for a role. Branched has no plan groups
// by policy.
func (p ColorPlan) Groups(role Role) [][]string {
	switch role {
	case RoleProtein:
		return p.Protein
	case RoleNucleic:
		return p.Nucleic
	case RoleLigand:
		return p.Ligand
	case RoleIon:
		return p.Ion
	case RoleOther:
		return p.Other
	}
	return nil
}

// Parse decodes a JSON-encoded color plan from an untrusted attribute value.
// Malformed JSON, missing keys, or wrong shapes all degrade to empty groups;
// Parse never fails.
func Parse(data []byte) ColorPlan {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "" {
		return ColorPlan{}
	}
	var raw map[string]any
	if err := json.Unmarshal([]byte(trimmed), &raw); err != nil {
		return ColorPlan{}
	}
	plan := ColorPlan{
		Protein: Normalize(raw["protein_chain_groups"]),
		Nucleic: Normalize(raw["nucleic_chain_groups"]),
		Ligand:  Normalize(raw["ligand_chain_groups"]),
		Ion:     Normalize(raw["ion_chain_groups"]),
		Other:   Normalize(raw["other_chain_groups"]),
	}
	if flag, ok := raw["antibody_pair_detected"].(bool); ok {
		plan.AntibodyPairDetected = flag
	}
	return plan
}

// Encode serializes the plan as compact JSON for embedding in an attribute.
func (p ColorPlan) Encode() string {
	data, err := json.Marshal(p)
	if err != nil {
		return "{}"
	}
	return string(data)
}

// Normalize converts a loosely-typed group list (as decoded from JSON) into
// de-duplicated, order-preserving chain groups. Non-list input yields nil;
// non-list elements are skipped; members are coerced to trimmed strings.
// De-duplication is global across the whole call, not per group: a token
// already claimed by an earlier group is dropped from later ones.
func Normalize(raw any) [][]string {
	items, ok := raw.([]any)
	if !ok {
		return nil
	}
	groups := make([][]string, 0, len(items))
	for _, item := range items {
		members, ok := item.([]any)
		if !ok {
			continue
		}
		group := make([]string, 0, len(members))
		for _, member := range members {
			group = append(group, coerceToken(member))
		}
		groups = append(groups, group)
	}
	return NormalizeGroups(groups)
}

// NormalizeGroups applies the same global de-duplication to already-typed
// groups. Empty tokens and repeated tokens are dropped; groups that end up
// empty are dropped entirely.
func NormalizeGroups(groups [][]string) [][]string {
	if len(groups) == 0 {
		return nil
	}
	seen := make(map[string]bool)
	out := make([][]string, 0, len(groups))
	for _, raw := range groups {
		var group []string
		for _, token := range raw {
			token = strings.TrimSpace(token)
			if token == "" || seen[token] {
				continue
			}
			seen[token] = true
			group = append(group, token)
		}
		if len(group) > 0 {
			out = append(out, group)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// coerceToken renders a decoded JSON scalar as a chain-id token. Non-scalar
// values collapse to "" and are later dropped by NormalizeGroups.
func coerceToken(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(t)
	case json.Number:
		return t.String()
	default:
		return ""
	}
}
