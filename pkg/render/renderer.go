// Package render writes the human-readable report for a lookup.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/arthur-debert/dict/pkg/dictionary"
	"github.com/arthur-debert/dict/pkg/errors"
	"github.com/arthur-debert/dict/pkg/logging"
	"github.com/arthur-debert/dict/pkg/ui"
	"github.com/arthur-debert/dict/pkg/ui/styles"
)

// Options controls rendering
type Options struct {
	// Format selects colored or plain output; FormatAuto inspects the writer
	Format ui.Format
}

// Renderer writes entries as labeled, tab-indented sections. Section
// headers are styled; everything else is plain text.
type Renderer struct {
	writer io.Writer
	styles styles.Registry
	format ui.Format
}

// New creates a Renderer writing to w
func New(w io.Writer, opts Options) *Renderer {
	log := logging.GetLogger("render")

	format := ui.Resolve(opts.Format, w)
	renderer := lipgloss.NewRenderer(w)
	switch format {
	case ui.FormatText:
		renderer.SetColorProfile(termenv.Ascii)
	case ui.FormatTerminal:
		// Forced color on a writer that is not a terminal
		if renderer.ColorProfile() == termenv.Ascii {
			renderer.SetColorProfile(termenv.ANSI)
		}
	}

	log.Debug().
		Stringer("requested", opts.Format).
		Stringer("format", format).
		Msg("Renderer created")

	return &Renderer{
		writer: w,
		styles: styles.NewRegistry(renderer),
		format: format,
	}
}

// Format returns the resolved output format
func (r *Renderer) Format() ui.Format {
	return r.format
}

// Render writes every entry in order
func (r *Renderer) Render(entries []dictionary.WordEntry) error {
	p := &printer{w: r.writer}
	for _, entry := range entries {
		r.renderEntry(p, entry)
	}
	if p.err != nil {
		return errors.Wrap(p.err, errors.ErrRender, "failed to write output")
	}
	return nil
}

// RenderAPIError writes the API's message for a failed lookup
func (r *Renderer) RenderAPIError(apiErr *dictionary.APIError) error {
	p := &printer{w: r.writer}
	p.line("Error: %s", apiErr.Message)
	if p.err != nil {
		return errors.Wrap(p.err, errors.ErrRender, "failed to write output")
	}
	return nil
}

func (r *Renderer) renderEntry(p *printer, entry dictionary.WordEntry) {
	r.header(p, styles.Word, "word")
	if entry.HasPhonetic() {
		p.line("\t%s (%s)\n", entry.Word, *entry.Phonetic)
	} else {
		p.line("\t%s\n", entry.Word)
	}

	if entry.Origin != nil {
		p.line("Origin: %s", *entry.Origin)
	}

	if len(entry.Phonetics) > 0 {
		r.header(p, styles.Phonetics, "phonetics")
		for _, phonetic := range entry.Phonetics {
			if phonetic.Text != nil {
				r.field(p, "text", *phonetic.Text)
			}
			if phonetic.HasAudio() {
				r.field(p, "audio", phonetic.Audio)
			}
			if phonetic.SourceURL != nil {
				r.field(p, "source", *phonetic.SourceURL)
			}
			p.blank()
		}
	}

	for _, meaning := range entry.Meanings {
		r.header(p, styles.PartOfSpeech, meaning.PartOfSpeech)
		r.listField(p, "synonyms", meaning.Synonyms)
		r.listField(p, "antonyms", meaning.Antonyms)

		for _, definition := range meaning.Definitions {
			r.field(p, "definition", definition.Definition)
			if definition.HasExample() {
				r.field(p, "example", *definition.Example)
			}
			r.listField(p, "synonyms", definition.Synonyms)
			r.listField(p, "antonyms", definition.Antonyms)
			p.blank()
		}
	}

	if len(entry.SourceURLs) > 0 {
		r.header(p, styles.Urls, "urls")
		p.line("\t%s\n", FormatList(entry.SourceURLs))
	}
}

func (r *Renderer) header(p *printer, style, title string) {
	p.line("* %s", r.styles.Render(style, title))
}

func (r *Renderer) field(p *printer, label, value string) {
	p.line("\t%s: %s", r.styles.Render(styles.Label, label), value)
}

// listField skips empty lists entirely
func (r *Renderer) listField(p *printer, label string, values []string) {
	if len(values) == 0 {
		return
	}
	r.field(p, label, FormatList(values))
}

// FormatList renders values as a bracketed literal of quoted strings:
// ["a", "b"]
func FormatList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = strconv.Quote(v)
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}

// printer remembers the first write error so rendering code stays linear
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) line(format string, args ...interface{}) {
	if p.err != nil {
		return
	}
	_, p.err = fmt.Fprintf(p.w, format+"\n", args...)
}

func (p *printer) blank() {
	p.line("")
}
