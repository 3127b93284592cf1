package chainplan

import (
	"fmt"
	"regexp"
	"strings"
)

// Component is loosely-typed component metadata supplied by a folding or
// docking pipeline alongside a structure (type, name, chain ids, sequence,
// SMILES, and so on).
type Component map[string]any

var (
	chainIDTokenPattern = regexp.MustCompile(`^[A-Za-z0-9]{1,4}$`)
	chainIDSplitPattern = regexp.MustCompile(`[,\s;]+`)
	ligandHintPattern   = regexp.MustCompile(`\bl\d+\b`)
	heavyChainHint      = regexp.MustCompile(`(?i)\b(?:heavy|igh|vh|h[\s_-]?chain|chain[\s_-]?h|hc)\b`)
	lightChainHint      = regexp.MustCompile(`(?i)\b(?:light|igl|vl|kappa|lambda|l[\s_-]?chain|chain[\s_-]?l|lc)\b`)
	heavyChainID        = regexp.MustCompile(`^H\d{0,2}$`)
	lightChainID        = regexp.MustCompile(`^L\d{0,2}$`)
)

// componentRow is one component reduced to what plan assembly needs.
type componentRow struct {
	role         Role
	chainIDs     []string
	antibodyRole string // "heavy", "light", or ""
}

// FromComponents builds a color plan from component metadata. Components are
// classified into roles, antibody heavy/light chains are paired into one
// shared protein group when both are present, and every chain id is claimed
// by at most one group.
func FromComponents(components []Component) ColorPlan {
	rows := make([]componentRow, 0, len(components))
	for _, c := range components {
		if c == nil {
			continue
		}
		row := componentRow{role: classifyComponentRole(c)}
		for _, key := range []string{"chain_ids", "chains", "chain", "asym_id", "auth_asym_id", "label_asym_id"} {
			row.chainIDs = append(row.chainIDs, coerceChainIDs(c[key])...)
		}
		if len(row.chainIDs) == 0 {
			if id, ok := c["id"].(string); ok {
				token := strings.TrimSpace(id)
				if chainIDTokenPattern.MatchString(token) {
					row.chainIDs = []string{token}
				}
			}
		}
		row.chainIDs = dedupeStrings(row.chainIDs)
		if row.role == RoleProtein {
			row.antibodyRole = detectAntibodyChainRole(c)
		}
		rows = append(rows, row)
	}

	var plan ColorPlan
	assigned := make(map[string]bool)

	var heavyIDs, lightIDs []string
	for _, row := range rows {
		if row.role != RoleProtein {
			continue
		}
		switch row.antibodyRole {
		case "heavy":
			heavyIDs = append(heavyIDs, row.chainIDs...)
		case "light":
			lightIDs = append(lightIDs, row.chainIDs...)
		}
	}
	if len(heavyIDs) > 0 && len(lightIDs) > 0 {
		addGroup(&plan.Protein, assigned, append(append([]string{}, heavyIDs...), lightIDs...))
		plan.AntibodyPairDetected = len(plan.Protein) > 0
	}

	for _, row := range rows {
		if row.role == RoleProtein {
			addGroup(&plan.Protein, assigned, row.chainIDs)
		}
	}
	for _, row := range rows {
		switch row.role {
		case RoleProtein:
		case RoleNucleic:
			addGroup(&plan.Nucleic, assigned, row.chainIDs)
		case RoleLigand:
			addGroup(&plan.Ligand, assigned, row.chainIDs)
		case RoleIon:
			addGroup(&plan.Ion, assigned, row.chainIDs)
		default:
			addGroup(&plan.Other, assigned, row.chainIDs)
		}
	}
	return plan
}

// addGroup appends one group of still-unclaimed chain ids, claiming them.
func addGroup(groups *[][]string, assigned map[string]bool, chainIDs []string) {
	var group []string
	for _, id := range chainIDs {
		token := strings.TrimSpace(id)
		if token == "" || assigned[token] {
			continue
		}
		duplicate := false
		for _, existing := range group {
			if existing == token {
				duplicate = true
				break
			}
		}
		if duplicate {
			continue
		}
		group = append(group, token)
	}
	if len(group) == 0 {
		return
	}
	*groups = append(*groups, group)
	for _, token := range group {
		assigned[token] = true
	}
}

// classifyComponentRole infers a coarse molecule role from metadata.
func classifyComponentRole(c Component) Role {
	compType := strings.ToLower(strings.TrimSpace(stringValue(c["type"])))
	hasSmiles := stringValue(c["smiles"]) != "" || stringValue(c["smile"]) != ""
	hasSequence := stringValue(c["sequence"]) != "" || stringValue(c["seq"]) != ""
	hint := collectHintText(c)

	switch compType {
	case "dna", "rna", "nucleic", "nucleic_acid", "nucleic acid":
		return RoleNucleic
	}
	if strings.Contains(compType, "nucleic") {
		return RoleNucleic
	}
	if compType == "ion" || compType == "metal" || compType == "metal_ion" || strings.Contains(compType, "ion") {
		return RoleIon
	}
	switch compType {
	case "ligand", "sm", "small_molecule", "small molecule", "molecule":
		return RoleLigand
	}
	if hasSmiles {
		return RoleLigand
	}
	if !hasSequence && (strings.Contains(hint, "ligand") ||
		strings.Contains(hint, "small molecule") ||
		strings.Contains(hint, "small_molecule") ||
		ligandHintPattern.MatchString(hint)) {
		return RoleLigand
	}
	switch compType {
	case "protein", "peptide", "antibody":
		return RoleProtein
	}
	if hasSequence {
		return RoleProtein
	}
	if strings.Contains(compType, "protein") || strings.Contains(compType, "antibody") {
		return RoleProtein
	}
	return RoleOther
}

// detectAntibodyChainRole is a best-effort heavy/light classification from
// component labels and ids.
func detectAntibodyChainRole(c Component) string {
	hint := collectHintText(c)
	if heavyChainHint.MatchString(hint) {
		return "heavy"
	}
	if lightChainHint.MatchString(hint) {
		return "light"
	}
	if id, ok := c["id"].(string); ok {
		token := strings.ToUpper(strings.TrimSpace(id))
		switch token {
		case "H", "HC", "VH":
			return "heavy"
		case "L", "LC", "VL", "K", "KAPPA", "LAMBDA":
			return "light"
		}
	}
	return ""
}

// collectHintText builds a lowercase text blob for component heuristics.
func collectHintText(c Component) string {
	var chunks []string
	for _, key := range []string{"type", "name", "id", "label"} {
		if v := c[key]; v != nil {
			chunks = append(chunks, stringValue(v))
		}
	}
	switch ids := c["ids"].(type) {
	case string:
		chunks = append(chunks, ids)
	case []any:
		for _, item := range ids {
			if s := stringValue(item); s != "" {
				chunks = append(chunks, s)
			}
		}
	case []string:
		chunks = append(chunks, ids...)
	}
	return strings.ToLower(strings.Join(chunks, " "))
}

// coerceChainIDs normalizes possible chain-id fields into a string list.
// Strings are split on comma/semicolon/whitespace runs; lists recurse.
func coerceChainIDs(raw any) []string {
	var tokens []string
	var collect func(v any)
	collect = func(v any) {
		switch t := v.(type) {
		case nil:
		case string:
			for _, piece := range chainIDSplitPattern.Split(strings.TrimSpace(t), -1) {
				if piece != "" {
					tokens = append(tokens, piece)
				}
			}
		case []any:
			for _, item := range t {
				collect(item)
			}
		case []string:
			for _, item := range t {
				collect(item)
			}
		default:
			tokens = append(tokens, stringValue(t))
		}
	}
	collect(raw)

	var out []string
	seen := make(map[string]bool)
	for _, token := range tokens {
		clean := strings.TrimSpace(token)
		if clean == "" || seen[clean] {
			continue
		}
		seen[clean] = true
		out = append(out, clean)
	}
	return out
}

func dedupeStrings(in []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, s := range in {
		if seen[s] {
			continue
		}
		seen[s] = true
		out = append(out, s)
	}
	return out
}

func isHeavyChainID(chainID string) bool {
	token := strings.ToUpper(strings.TrimSpace(chainID))
	switch token {
	case "H", "HC", "VH":
		return true
	}
	return heavyChainID.MatchString(token)
}

func isLightChainID(chainID string) bool {
	token := strings.ToUpper(strings.TrimSpace(chainID))
	switch token {
	case "L", "LC", "VL", "K", "KAPPA", "LAMBDA":
		return true
	}
	return lightChainID.MatchString(token)
}

func stringValue(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
