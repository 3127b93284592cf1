package source

import (
	"encoding/base64"
	"strings"
	"testing"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatMMCIF},
		{"  ", FormatMMCIF},
		{"mmcif", FormatMMCIF},
		{"BCIF", FormatBCIF},
		{" Pdb ", FormatPDB},
		{"sdf", Format("sdf")},
	}
	for _, tc := range tests {
		if got := ParseFormat(tc.in); got != tc.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestNew(t *testing.T) {
	src := New("  data:text/plain,data_X  ", "")
	if src.URL != "data:text/plain,data_X" {
		t.Errorf("URL = %q", src.URL)
	}
	if !src.Inline {
		t.Error("data URL should be inline")
	}
	if src.Format != FormatMMCIF {
		t.Errorf("format = %q", src.Format)
	}

	remote := New("https://files.rcsb.org/download/1ABC.cif", "mmcif")
	if remote.Inline {
		t.Error("https URL should not be inline")
	}
}

func dataURL(mime string, body string, b64 bool) string {
	if b64 {
		return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString([]byte(body))
	}
	return "data:" + mime + "," + body
}

func TestLooksLikeTextual(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want bool
	}{
		{"base64 data_ sentinel", dataURL("application/octet-stream", "data_1ABC\nloop_\n", true), true},
		{"base64 loop_ sentinel", dataURL("application/octet-stream", "loop_\n_atom_site.id\n", true), true},
		{"base64 underscore sentinel", dataURL("application/octet-stream", "_cell.length_a 10\n", true), true},
		{"base64 leading whitespace", dataURL("application/octet-stream", "\n\n  data_X", true), true},
		{"base64 binary bytes", dataURL("application/octet-stream", "\x00\x01\x02msgpack", true), false},
		{"plain percent-encoded", "data:text/plain,data_X%0Aloop_", true},
		{"plain pdb header", "data:text/plain,HEADER%20%20HYDROLASE", false},
		{"invalid base64", "data:application/octet-stream;base64,!!!not-base64!!!", false},
		{"invalid percent escape", "data:text/plain,data_X%ZZ", false},
		{"no comma", "data:text/plain;base64", false},
		{"empty payload", "data:text/plain,", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := New(tc.url, "bcif")
			if got := LooksLikeTextual(src); got != tc.want {
				t.Errorf("LooksLikeTextual = %v, want %v", got, tc.want)
			}
		})
	}

	if LooksLikeTextual(New("https://example.com/x.bcif", "bcif")) {
		t.Error("network URLs are never sniffed")
	}
}

func TestLooksLikeTextualTruncatesLongPayloads(t *testing.T) {
	body := "data_BIG\n" + strings.Repeat("_atom_site.id 1\n", 4096)
	src := New(dataURL("application/octet-stream", body, true), "bcif")
	if !LooksLikeTextual(src) {
		t.Error("long textual payload should still sniff as textual")
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name       string
		src        StructureSource
		wantFormat Format
		wantBinary bool
	}{
		{
			"mmcif passthrough",
			New("https://example.com/1abc.cif", "mmcif"),
			FormatMMCIF, false,
		},
		{
			"bcif network URL stays binary",
			New("https://example.com/1abc.bcif", "bcif"),
			FormatBCIF, true,
		},
		{
			"bcif inline textual downgrades",
			New(dataURL("application/octet-stream", "data_1ABC\n", true), "bcif"),
			FormatMMCIF, false,
		},
		{
			"bcif inline binary stays binary",
			New(dataURL("application/octet-stream", "\x00\x01binary", true), "bcif"),
			FormatBCIF, true,
		},
		{
			"pdb inline never downgraded",
			New("data:text/plain,data_X", "pdb"),
			FormatPDB, false,
		},
		{
			"empty format defaults to mmcif",
			StructureSource{URL: "x"},
			FormatMMCIF, false,
		},
		{
			"unknown format passthrough",
			New("file.sdf", "sdf"),
			Format("sdf"), false,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			format, binary := Resolve(tc.src)
			if format != tc.wantFormat || binary != tc.wantBinary {
				t.Errorf("Resolve = (%q, %v), want (%q, %v)", format, binary, tc.wantFormat, tc.wantBinary)
			}
		})
	}
}

func TestLooksLikeTextCIF(t *testing.T) {
	tests := []struct {
		name string
		data []byte
		want bool
	}{
		{"empty", nil, false},
		{"data sentinel", []byte("data_1ABC\nloop_\n"), true},
		{"loop sentinel", []byte("loop_\n"), true},
		{"underscore sentinel", []byte("_cell.length_a 10\n"), true},
		{"leading whitespace", []byte("\n\t data_X"), true},
		{"mostly printable text", []byte("HEADER    HYDROLASE\nATOM      1\n"), true},
		{"binary msgpack-ish", []byte{0x83, 0xa7, 0x76, 0x00, 0x01, 0x02}, false},
		{"whitespace only", []byte("   \n\t"), false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := LooksLikeTextCIF(tc.data); got != tc.want {
				t.Errorf("LooksLikeTextCIF = %v, want %v", got, tc.want)
			}
		})
	}
}
