package overlay

import (
	"io"
	"sync"

	"github.com/mj1618/selection-lens/internal/model"
	"github.com/mj1618/selection-lens/internal/output"
)

// Printer is a Display that writes each change to w in the given format:
// one JSON object per line, or one YAML document per change.
type Printer struct {
	mu     sync.Mutex
	w      io.Writer
	format output.Format
	count  int
}

// NewPrinter returns a Printer writing to w.
func NewPrinter(w io.Writer, format output.Format) *Printer {
	return &Printer{w: w, format: format}
}

func (p *Printer) Show(change model.SelectionChange) error {
	return p.print(change)
}

func (p *Printer) Clear(change model.SelectionChange) error {
	return p.print(change)
}

// Count returns the number of changes written.
func (p *Printer) Count() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.count
}

func (p *Printer) print(change model.SelectionChange) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.format == output.FormatYAML && p.count > 0 {
		if _, err := io.WriteString(p.w, "---\n"); err != nil {
			return err
		}
	}
	if err := output.Fprint(p.w, p.format, change); err != nil {
		return err
	}
	p.count++
	return nil
}
