// Package progress reports per-structure rendering progress: an interactive
// bar on a terminal, line-per-structure output everywhere else.
package progress

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
)

// Reporter provides progress feedback during gallery rendering.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter picks a reporter for the current environment: line output
// under CI or redirected stderr, an interactive bar on a terminal.
func NewReporter() Reporter {
	ci := os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != ""
	return pickReporter(ci, term.IsTerminal(int(os.Stderr.Fd())))
}

func pickReporter(ci, interactive bool) Reporter {
	if ci || !interactive {
		return &CIReporter{}
	}
	return &TerminalReporter{}
}

// TerminalReporter displays a progress bar, describing the structure file
// currently being rendered.
type TerminalReporter struct {
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetDescription("Rendering structures"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints one line per structure, suitable for CI logs and
// redirected output.
type CIReporter struct {
	total int
}

func (r *CIReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(os.Stderr, "Starting gallery rendering for %d structures\n", total)
}

func (r *CIReporter) Update(current int, message string) {
	fmt.Fprintf(os.Stderr, "[%d/%d] %s\n", current, r.total, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintln(os.Stderr, "Gallery rendering complete")
}
