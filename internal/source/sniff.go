package source

import (
	"encoding/base64"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// sniffLimit bounds how much decoded payload is inspected.
	sniffLimit = 512
	// base64ChunkLimit bounds how much encoded payload is decoded.
	base64ChunkLimit = 4096
)

// textualSentinels are the line-start tokens that identify textual
// chemical-table (CIF family) content.
var textualSentinels = []string{"data_", "loop_", "_"}

// LooksLikeTextual reports whether an inline structure payload is textual
// chemical-table content despite a possibly binary declared format. It is
// only meaningful for inline data URLs; network URLs are never fetched for
// sniffing. Any decode failure reads as "not textual".
func LooksLikeTextual(src StructureSource) bool {
	if !src.Inline {
		return false
	}
	comma := strings.Index(src.URL, ",")
	if comma < 0 {
		return false
	}
	meta := strings.ToLower(src.URL[len("data:"):comma])
	payload := src.URL[comma+1:]

	var sample string
	if strings.Contains(meta, ";base64") {
		compact := stripSpace(payload)
		if len(compact) > base64ChunkLimit {
			compact = compact[:base64ChunkLimit]
		}
		// Repair padding on the truncated chunk.
		if rem := len(compact) % 4; rem != 0 {
			compact += strings.Repeat("=", 4-rem)
		}
		decoded, err := base64.StdEncoding.DecodeString(compact)
		if err != nil {
			return false
		}
		if len(decoded) > sniffLimit {
			decoded = decoded[:sniffLimit]
		}
		sample = string(decoded)
	} else {
		chunk := payload
		if len(chunk) > sniffLimit {
			chunk = chunk[:sniffLimit]
		}
		decoded, err := url.PathUnescape(chunk)
		if err != nil {
			return false
		}
		sample = decoded
	}

	trimmed := strings.TrimLeftFunc(sample, unicode.IsSpace)
	if trimmed == "" {
		return false
	}
	for _, sentinel := range textualSentinels {
		if strings.HasPrefix(trimmed, sentinel) {
			return true
		}
	}
	return false
}

// LooksLikeTextCIF heuristically detects text mmCIF bytes mislabeled as a
// binary payload. Used on raw bytes before they are embedded into a data
// URL, so the declared format and MIME type can be fixed up front.
func LooksLikeTextCIF(data []byte) bool {
	if len(data) == 0 {
		return false
	}
	sample := data
	if len(sample) > 2048 {
		sample = sample[:2048]
	}
	if !utf8.Valid(sample) {
		return false
	}
	stripped := strings.TrimLeftFunc(string(sample), unicode.IsSpace)
	if stripped == "" {
		return false
	}
	for _, sentinel := range textualSentinels {
		if strings.HasPrefix(stripped, sentinel) {
			return true
		}
	}
	printable := 0
	for _, r := range stripped {
		if unicode.IsPrint(r) || r == '\n' || r == '\r' || r == '\t' {
			printable++
		}
	}
	total := utf8.RuneCountInString(stripped)
	return float64(printable)/float64(total) >= 0.95
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}
