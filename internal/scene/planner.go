package scene

import "github.com/molembed/molembed/internal/chainplan"

// Planner applies the fixed palette-assignment and representation policy to
// a structure handle. It issues only scene-building calls; the viewer owns
// all rendering.
type Planner struct {
	// LigandLabel, when set, is attached to the first explicit ligand group,
	// or to the fallback ligand component when the plan has no ligand groups.
	LigandLabel string
}

// Apply builds components, representations, and colors for every role.
// Groups are re-normalized per role before use, so tokens already claimed by
// an earlier group never produce a second conflicting representation.
// Branched entities always use the built-in selector: the plan cannot
// override them.
func (p Planner) Apply(structure StructureHandle, plan chainplan.ColorPlan) {
	proteinGroups := chainplan.NormalizeGroups(plan.Protein)
	nucleicGroups := chainplan.NormalizeGroups(plan.Nucleic)
	ligandGroups := chainplan.NormalizeGroups(plan.Ligand)
	ionGroups := chainplan.NormalizeGroups(plan.Ion)
	otherGroups := chainplan.NormalizeGroups(plan.Other)

	if len(proteinGroups) > 0 {
		for i, group := range proteinGroups {
			addChainRepresentation(structure, group, RepCartoon, ProteinPalette[i%len(ProteinPalette)], 1)
		}
	} else {
		structure.Component(RoleSelector(chainplan.RoleProtein)).
			Representation(RepCartoon).
			Color(ColorParams{Color: DefaultProteinColor})
	}

	if len(nucleicGroups) > 0 {
		for _, group := range nucleicGroups {
			addChainRepresentation(structure, group, RepCartoon, NucleicColor, 1)
		}
	} else {
		structure.Component(RoleSelector(chainplan.RoleNucleic)).
			Representation(RepCartoon).
			Color(ColorParams{Color: NucleicColor})
	}

	if len(ligandGroups) > 0 {
		for i, group := range ligandGroups {
			component := addChainRepresentation(structure, group, RepBallAndStick, LigandPalette[i%len(LigandPalette)], 1)
			if p.LigandLabel != "" && i == 0 && component != nil {
				component.Label(p.LigandLabel)
			}
		}
	} else {
		fallback := structure.Component(RoleSelector(chainplan.RoleLigand))
		if p.LigandLabel != "" {
			fallback.Label(p.LigandLabel)
		}
		fallback.Representation(RepBallAndStick).Color(ColorParams{Color: DefaultLigandColor})
	}

	if len(ionGroups) > 0 {
		for _, group := range ionGroups {
			addChainRepresentation(structure, group, RepBallAndStick, IonColor, 1)
		}
	} else {
		structure.Component(RoleSelector(chainplan.RoleIon)).
			Representation(RepBallAndStick).
			Color(ColorParams{Color: IonColor})
	}

	structure.Component(RoleSelector(chainplan.RoleBranched)).
		Representation(RepBallAndStick).
		Color(ColorParams{Color: BranchedColor})

	for _, group := range otherGroups {
		addChainRepresentation(structure, group, RepBallAndStick, OtherColor, 1)
	}
}

// addChainRepresentation builds one component for a chain group. A nil
// selector (all tokens empty or claimed) skips the group entirely.
func addChainRepresentation(structure StructureHandle, chainIDs []string, kind RepresentationKind, color string, opacity float64) Component {
	selector := BuildChainSelector(chainIDs)
	if selector == nil {
		return nil
	}
	component := structure.Component(*selector)
	component.Representation(kind).Color(ColorParams{Color: color, Opacity: opacity})
	return component
}
