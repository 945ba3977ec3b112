// internal/pdf/render.go
//
// Cerney Designs – design-brief PDF renderer.
//
// Context
//   Turns one DesignRequest into a paginated A4 document an operator can
//   read or forward.  Layout is deterministic and section-based: title
//   block, client information, project details, description, then the
//   optional preference sections, with the record ID centered in the
//   footer of every page.
//
// Workflow
//   •  sectionsFor assembles the ordered section list and applies the
//      omission rules, so layout decisions are testable without poking at
//      PDF bytes.
//   •  Render walks the sections and writes them through gofpdf, wrapping
//      body text to the content width via MultiCell.
//   •  Every string is passed through clean first.  The renderer consumes
//      persisted data that may have been written by a different code path,
//      so it strips non-printables and caps length itself rather than
//      trusting upstream sanitization.
//
//------------------------------------------------------------------------------

package pdf

import (
	"bytes"
	"fmt"
	"strings"
	"unicode"

	"github.com/jung-kurt/gofpdf"

	"github.com/Chrisserknee/cerneydesigns/internal/request"
)

// maxTextLen caps any single rendered string.  Bounds document size and cuts
// off degenerate input before it reaches the layout engine.
const maxTextLen = 10000

const (
	docTitle   = "Website Design Request"
	lineHeight = 5.5 // mm, body text
)

// line is one label/value row inside a section.  Wrapped lines flow across
// the full content width; unwrapped lines render label and value inline.
type line struct {
	label string
	text  string
	wrap  bool
}

// section is a headed group of lines.  Sections with no lines are skipped.
type section struct {
	heading string
	lines   []line
}

// Renderer produces PDF documents from design requests.  It is stateless and
// safe for concurrent use.
type Renderer struct{}

// NewRenderer returns a ready Renderer.
func NewRenderer() *Renderer { return &Renderer{} }

// Render produces the PDF byte stream for rec.
func (r *Renderer) Render(rec request.DesignRequest) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	tr := doc.UnicodeTranslatorFromDescriptor("")

	footer := clean(fmt.Sprintf("Request ID: %s", rec.ID))
	doc.SetFooterFunc(func() {
		doc.SetY(-15)
		doc.SetFont("Helvetica", "I", 8)
		doc.SetTextColor(120, 120, 120)
		doc.CellFormat(0, 10, tr(footer), "", 0, "C", false, 0, "")
	})

	doc.AddPage()

	// Title block: document title and localized submission timestamp, both
	// centered.
	doc.SetFont("Helvetica", "B", 18)
	doc.SetTextColor(30, 30, 30)
	doc.CellFormat(0, 12, tr(docTitle), "", 1, "C", false, 0, "")

	doc.SetFont("Helvetica", "", 11)
	doc.SetTextColor(90, 90, 90)
	stamp := rec.CreatedAt.Local().Format("January 2, 2006 at 3:04 PM")
	doc.CellFormat(0, 7, tr(clean(stamp)), "", 1, "C", false, 0, "")
	doc.Ln(4)

	for _, s := range sectionsFor(rec) {
		doc.SetFont("Helvetica", "B", 13)
		doc.SetTextColor(30, 30, 30)
		doc.CellFormat(0, 9, tr(clean(s.heading)), "", 1, "L", false, 0, "")

		for _, ln := range s.lines {
			if ln.wrap {
				doc.SetFont("Helvetica", "", 11)
				doc.SetTextColor(50, 50, 50)
				doc.MultiCell(0, lineHeight, tr(clean(ln.text)), "", "L", false)
				continue
			}
			doc.SetFont("Helvetica", "B", 11)
			doc.SetTextColor(50, 50, 50)
			label := clean(ln.label) + ": "
			doc.CellFormat(doc.GetStringWidth(tr(label))+1, lineHeight, tr(label),
				"", 0, "L", false, 0, "")
			doc.SetFont("Helvetica", "", 11)
			doc.CellFormat(0, lineHeight, tr(clean(ln.text)), "", 1, "L", false, 0, "")
		}
		doc.Ln(3)
	}

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, fmt.Errorf("pdf output: %w", err)
	}
	return buf.Bytes(), nil
}

// sectionsFor builds the ordered section list for rec, applying the omission
// rules: empty optional lines disappear, and a section with nothing left to
// say is dropped entirely.
func sectionsFor(rec request.DesignRequest) []section {
	var out []section

	client := section{heading: "Client Information"}
	client.lines = append(client.lines,
		line{label: "Name", text: rec.ClientName},
		line{label: "Email", text: rec.Email},
	)
	if rec.PhoneNumber != "" {
		client.lines = append(client.lines, line{label: "Phone", text: rec.PhoneNumber})
	}
	out = append(out, client)

	out = append(out, section{
		heading: "Project Details",
		lines: []line{
			{label: "Project type", text: rec.ProjectType},
			{label: "Timeline", text: rec.Timeline},
			{label: "Budget", text: "$" + rec.Budget},
		},
	})

	out = append(out, section{
		heading: "Project Description",
		lines:   []line{{text: rec.DesignDescription, wrap: true}},
	})

	// Design Preferences is omitted entirely when both inputs are empty;
	// each line is also omitted individually.
	if rec.ColorPreferences != "" || rec.StylePreferences != "" {
		prefs := section{heading: "Design Preferences"}
		if rec.ColorPreferences != "" {
			prefs.lines = append(prefs.lines, line{label: "Colors", text: rec.ColorPreferences})
		}
		if rec.StylePreferences != "" {
			prefs.lines = append(prefs.lines, line{label: "Style", text: rec.StylePreferences})
		}
		out = append(out, prefs)
	}

	if rec.KeyFeatures != "" {
		out = append(out, section{
			heading: "Key Features Required",
			lines:   []line{{text: rec.KeyFeatures, wrap: true}},
		})
	}

	if rec.ReferenceWebsites != "" {
		out = append(out, section{
			heading: "Reference Websites",
			lines:   []line{{text: rec.ReferenceWebsites, wrap: true}},
		})
	}

	return out
}

// clean strips non-printable characters and truncates to maxTextLen.  The
// renderer is its own trust boundary, so this runs on every string even
// though intake sanitized the same values on the way in.
func clean(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	kept := 0
	for _, r := range s {
		if kept >= maxTextLen {
			break
		}
		switch {
		case r == '\n' || r == '\t':
			// legitimate textarea whitespace
		case !unicode.IsPrint(r):
			continue
		}
		b.WriteRune(r)
		kept++
	}
	return b.String()
}
