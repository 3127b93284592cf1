package chainplan

import "strings"

// nucleicCompIDs are residue names counted as nucleic when classifying a
// chain from its composition.
var nucleicCompIDs = map[string]bool{
	"A": true, "C": true, "G": true, "U": true, "I": true,
	"DA": true, "DC": true, "DG": true, "DT": true, "DU": true, "DI": true,
	"ADE": true, "CYT": true, "GUA": true, "URA": true, "THY": true,
}

// ionCompIDs are residue names treated as monatomic ions.
var ionCompIDs = map[string]bool{
	"LI": true, "NA": true, "K": true, "RB": true, "CS": true,
	"BE": true, "MG": true, "CA": true, "SR": true, "BA": true,
	"MN": true, "FE": true, "CO": true, "NI": true, "CU": true,
	"ZN": true, "CD": true, "HG": true, "AL": true, "GA": true,
	"IN": true, "TL": true, "PB": true, "AG": true, "AU": true,
	"PT": true, "CR": true, "MO": true, "W": true, "V": true,
	"YB": true, "SM": true, "EU": true, "LA": true,
	"CL": true, "BR": true, "IOD": true, "F": true,
}

// chainStats accumulates per-chain record counts from structure text.
type chainStats struct {
	atomCount   int
	hetatmCount int
	compCounts  map[string]int
}

// statsTable keeps chains in first-appearance order so inferred plans are
// deterministic.
type statsTable struct {
	order []string
	byID  map[string]*chainStats
}

func newStatsTable() *statsTable {
	return &statsTable{byID: make(map[string]*chainStats)}
}

func (t *statsTable) get(chainID string) *chainStats {
	if stats, ok := t.byID[chainID]; ok {
		return stats
	}
	stats := &chainStats{compCounts: make(map[string]int)}
	t.byID[chainID] = stats
	t.order = append(t.order, chainID)
	return stats
}

// statsFromMMCIF extracts chain stats from mmCIF ATOM/HETATM rows. Fields
// follow the conventional atom_site column order: component id at index 5,
// author chain id at index 9.
func statsFromMMCIF(text string) *statsTable {
	table := newStatsTable()
	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimSpace(rawLine)
		if !strings.HasPrefix(line, "ATOM ") && !strings.HasPrefix(line, "HETATM ") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 10 {
			continue
		}
		group := strings.ToUpper(fields[0])
		compID := strings.ToUpper(strings.TrimSpace(fields[5]))
		chainID := strings.TrimSpace(fields[9])
		if chainID == "" || chainID == "." || chainID == "?" {
			continue
		}
		stats := table.get(chainID)
		stats.compCounts[compID]++
		switch group {
		case "ATOM":
			stats.atomCount++
		case "HETATM":
			stats.hetatmCount++
		}
	}
	return table
}

// statsFromPDB extracts chain stats from fixed-column PDB ATOM/HETATM rows.
func statsFromPDB(text string) *statsTable {
	table := newStatsTable()
	for _, line := range strings.Split(text, "\n") {
		if !strings.HasPrefix(line, "ATOM  ") && !strings.HasPrefix(line, "HETATM") {
			continue
		}
		group := strings.ToUpper(strings.TrimSpace(line[:6]))
		var chainID, compID string
		if len(line) >= 22 {
			chainID = strings.TrimSpace(line[21:22])
		}
		if len(line) >= 20 {
			compID = strings.ToUpper(strings.TrimSpace(line[17:20]))
		}
		if chainID == "" {
			continue
		}
		stats := table.get(chainID)
		if compID != "" {
			stats.compCounts[compID]++
		}
		switch group {
		case "ATOM":
			stats.atomCount++
		case "HETATM":
			stats.hetatmCount++
		}
	}
	return table
}

// classifyChainRole maps composition stats to a role. Polymer chains whose
// residues are at least 80% nucleic read as nucleic; hetatm-only chains
// read as ion when their residues all come from the ion table, or when a
// single short residue appears at most four times.
func classifyChainRole(stats *chainStats) Role {
	totalComp := 0
	nucleicComp := 0
	for compID, count := range stats.compCounts {
		totalComp += count
		if nucleicCompIDs[compID] {
			nucleicComp += count
		}
	}

	if stats.atomCount > 0 {
		if totalComp > 0 && float64(nucleicComp)/float64(totalComp) >= 0.8 {
			return RoleNucleic
		}
		return RoleProtein
	}

	if stats.hetatmCount > 0 {
		allIons := len(stats.compCounts) > 0
		for compID := range stats.compCounts {
			if !ionCompIDs[compID] {
				allIons = false
				break
			}
		}
		if allIons {
			return RoleIon
		}
		if len(stats.compCounts) == 1 {
			for compID := range stats.compCounts {
				if ionCompIDs[compID] || (len(compID) <= 2 && stats.hetatmCount <= 4) {
					return RoleIon
				}
			}
		}
		return RoleLigand
	}

	return RoleOther
}

// InferFromMMCIF builds a color plan directly from mmCIF text.
func InferFromMMCIF(text string) ColorPlan {
	return planFromStats(statsFromMMCIF(text))
}

// InferFromPDB builds a color plan directly from PDB text.
func InferFromPDB(text string) ColorPlan {
	return planFromStats(statsFromPDB(text))
}

func planFromStats(table *statsTable) ColorPlan {
	var plan ColorPlan
	if len(table.order) == 0 {
		return plan
	}
	assigned := make(map[string]bool)

	var proteinIDs []string
	roles := make(map[string]Role, len(table.order))
	for _, chainID := range table.order {
		role := classifyChainRole(table.byID[chainID])
		roles[chainID] = role
		if role == RoleProtein {
			proteinIDs = append(proteinIDs, chainID)
		}
	}

	var heavyIDs, lightIDs []string
	for _, chainID := range proteinIDs {
		if isHeavyChainID(chainID) {
			heavyIDs = append(heavyIDs, chainID)
		}
		if isLightChainID(chainID) {
			lightIDs = append(lightIDs, chainID)
		}
	}
	if len(heavyIDs) > 0 && len(lightIDs) > 0 {
		addGroup(&plan.Protein, assigned, append(append([]string{}, heavyIDs...), lightIDs...))
		plan.AntibodyPairDetected = len(plan.Protein) > 0
	}

	for _, chainID := range proteinIDs {
		addGroup(&plan.Protein, assigned, []string{chainID})
	}
	for _, chainID := range table.order {
		switch roles[chainID] {
		case RoleProtein:
		case RoleNucleic:
			addGroup(&plan.Nucleic, assigned, []string{chainID})
		case RoleLigand:
			addGroup(&plan.Ligand, assigned, []string{chainID})
		case RoleIon:
			addGroup(&plan.Ion, assigned, []string{chainID})
		default:
			addGroup(&plan.Other, assigned, []string{chainID})
		}
	}
	return plan
}
