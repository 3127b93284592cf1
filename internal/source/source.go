// Package source captures where a structure payload comes from and decides
// which format it should actually be loaded as. Declared formats are not
// trusted for inline payloads: upstream tools conventionally default to a
// binary format even when the bytes they embedded are textual, so a bounded
// sniff of the payload prefix corrects the declaration before loading.
package source

import "strings"

// Format identifies a structure file format. The set is open: unknown
// declarations are passed through to the viewer capability unchanged.
type Format string

const (
	FormatMMCIF Format = "mmcif"
	FormatBCIF  Format = "bcif"
	FormatPDB   Format = "pdb"
)

// ParseFormat normalizes a declared format string. Empty input defaults to
// mmCIF, matching the attribute contract.
func ParseFormat(s string) Format {
	t := strings.ToLower(strings.TrimSpace(s))
	if t == "" {
		return FormatMMCIF
	}
	return Format(t)
}

// Binary reports whether the format is a binary encoding.
func (f Format) Binary() bool { return f == FormatBCIF }

// StructureSource is an immutable reference to a structure payload.
type StructureSource struct {
	URL    string
	Format Format
	// Inline is true when URL is a self-contained data: URL rather than a
	// network or file reference.
	Inline bool
}

// New captures a structure source from host-supplied attribute values.
func New(url, declaredFormat string) StructureSource {
	trimmed := strings.TrimSpace(url)
	return StructureSource{
		URL:    trimmed,
		Format: ParseFormat(declaredFormat),
		Inline: strings.HasPrefix(trimmed, "data:"),
	}
}

// Resolve returns the effective load format and binary flag for the source.
// A source declared as BCIF whose inline payload sniffs as textual
// chemical-table content is downgraded to mmCIF with the binary flag
// cleared. Both load paths must use this resolution.
func Resolve(src StructureSource) (Format, bool) {
	format := src.Format
	if format == "" {
		format = FormatMMCIF
	}
	binary := format.Binary()
	if format == FormatBCIF && src.Inline && LooksLikeTextual(src) {
		format = FormatMMCIF
		binary = false
	}
	return format, binary
}
