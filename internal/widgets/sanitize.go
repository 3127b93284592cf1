// Package widgets generates the declarative HTML fragments consumed by the
// bootstrap core: structure-viewer containers with encoded color plans, 2D
// diagram elements, and grids. Fragments carry no scripts; the host invokes
// the core against them after insertion.
package widgets

import (
	"fmt"
	"regexp"

	"github.com/google/uuid"
)

// cssColorPattern accepts hex, rgb(), rgba(), and named colors.
var cssColorPattern = regexp.MustCompile(
	`^(?:#[0-9a-fA-F]{3,8}|` +
		`rgb\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*\)|` +
		`rgba\(\s*\d+\s*,\s*\d+\s*,\s*\d+\s*,\s*[\d.]+\s*\)|` +
		`[a-zA-Z]+)$`)

// SanitizeCSSColor returns the color if it is a valid CSS color value,
// otherwise the fallback. Values land inside style blocks, so anything
// unrecognized is rejected outright.
func SanitizeCSSColor(color, fallback string) string {
	if cssColorPattern.MatchString(color) {
		return color
	}
	return fallback
}

// SanitizeDimension clamps a pixel dimension: non-positive values take the
// default, and nothing goes below the floor.
func SanitizeDimension(value, def, floor int) int {
	if value <= 0 {
		return def
	}
	if value < floor {
		return floor
	}
	return value
}

// newElementID returns a short unique element id with the given prefix.
func newElementID(prefix string) string {
	return fmt.Sprintf("%s-%x", prefix, uuid.New())[:len(prefix)+9]
}
