// internal/pdf/render_test.go
//
// Unit-tests for the design-brief renderer.
//
// Context
// -------
// Layout decisions live in sectionsFor, so the omission rules are asserted
// there against the section list.  Render itself is exercised end-to-end
// only for "produces a well-formed PDF byte stream".
//
// Run: go test ./internal/pdf -v

package pdf

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chrisserknee/cerneydesigns/internal/request"
)

func fullRecord() request.DesignRequest {
	return request.DesignRequest{
		ID:                "11111111-2222-3333-4444-555555555555",
		ClientName:        "Ada Lovelace",
		Email:             "ada@example.com",
		PhoneNumber:       "+1 312 555 0199",
		ProjectType:       "website",
		Timeline:          "1month",
		Budget:            "1000-2500",
		DesignDescription: "A clean marketing site for my analytical engine consultancy.",
		ReferenceWebsites: "https://example.com",
		ColorPreferences:  "Navy and cream",
		KeyFeatures:       "Contact form, blog",
		StylePreferences:  "minimalist",
		Status:            request.StatusPendingReview,
		CreatedAt:         time.Date(2025, time.March, 14, 15, 9, 0, 0, time.UTC),
	}
}

func headings(secs []section) []string {
	out := make([]string, len(secs))
	for i, s := range secs {
		out[i] = s.heading
	}
	return out
}

func TestSectionsFor_FullRecordOrder(t *testing.T) {
	secs := sectionsFor(fullRecord())
	assert.Equal(t, []string{
		"Client Information",
		"Project Details",
		"Project Description",
		"Design Preferences",
		"Key Features Required",
		"Reference Websites",
	}, headings(secs))
}

func TestSectionsFor_DesignPreferencesOmittedWhenBothEmpty(t *testing.T) {
	rec := fullRecord()
	rec.ColorPreferences = ""
	rec.StylePreferences = ""

	assert.NotContains(t, headings(sectionsFor(rec)), "Design Preferences")
}

func TestSectionsFor_DesignPreferencesColorOnly(t *testing.T) {
	rec := fullRecord()
	rec.StylePreferences = ""

	secs := sectionsFor(rec)
	var prefs *section
	for i := range secs {
		if secs[i].heading == "Design Preferences" {
			prefs = &secs[i]
		}
	}
	require.NotNil(t, prefs, "section missing with colors present")
	require.Len(t, prefs.lines, 1)
	assert.Equal(t, "Colors", prefs.lines[0].label)
}

func TestSectionsFor_OptionalSectionsOmitted(t *testing.T) {
	rec := fullRecord()
	rec.PhoneNumber = ""
	rec.KeyFeatures = ""
	rec.ReferenceWebsites = ""

	secs := sectionsFor(rec)
	hs := headings(secs)
	assert.NotContains(t, hs, "Key Features Required")
	assert.NotContains(t, hs, "Reference Websites")

	// Phone line disappears from Client Information but the section stays.
	require.Equal(t, "Client Information", secs[0].heading)
	assert.Len(t, secs[0].lines, 2)
}

func TestSectionsFor_BudgetCurrencyPrefix(t *testing.T) {
	secs := sectionsFor(fullRecord())
	require.Equal(t, "Project Details", secs[1].heading)
	assert.Equal(t, "$1000-2500", secs[1].lines[2].text)
}

func TestRender_ProducesPDF(t *testing.T) {
	doc, err := NewRenderer().Render(fullRecord())
	require.NoError(t, err)
	require.True(t, len(doc) > 500, "suspiciously small document: %d bytes", len(doc))
	assert.True(t, strings.HasPrefix(string(doc[:5]), "%PDF-"), "missing PDF header")
}

func TestRender_ToleratesHostileText(t *testing.T) {
	rec := fullRecord()
	rec.DesignDescription = strings.Repeat("長い説明 with control \x00\x1b chars. ", 2000)
	rec.ClientName = "\x07\x08Bell"

	doc, err := NewRenderer().Render(rec)
	require.NoError(t, err)
	assert.True(t, len(doc) > 0)
}

func TestClean_StripsAndCaps(t *testing.T) {
	assert.Equal(t, "ab", clean("a\x00b"))
	assert.Equal(t, "keep\nnewline", clean("keep\nnewline"))

	long := clean(strings.Repeat("x", maxTextLen+50))
	assert.Len(t, long, maxTextLen)
}
