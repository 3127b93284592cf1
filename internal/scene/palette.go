package scene

// Palette colors are assigned to explicit chain groups in order, cycling
// when groups outnumber colors.
var (
	ProteinPalette = []string{
		"#2563eb", "#0891b2", "#7c3aed", "#0f766e",
		"#059669", "#f59e0b", "#dc2626", "#9333ea",
	}
	LigandPalette = []string{
		"#db2777", "#c026d3", "#e11d48", "#be185d", "#ec4899",
	}
)

// Fixed colors for roles without palette cycling, and fallback colors for
// roles rendered from built-in selectors when the plan supplies no groups.
const (
	DefaultProteinColor = "#2563eb"
	NucleicColor        = "#f59e0b"
	DefaultLigandColor  = "#db2777"
	IonColor            = "#14b8a6"
	BranchedColor       = "#84cc16"
	OtherColor          = "#64748b"
)
