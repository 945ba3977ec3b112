// internal/request/fields.go
//
// Cerney Designs – intake form field rules.
//
// Context
//   Every field the intake form accepts is declared here with its validation
//   metadata: required flag, length bounds, enum options, or format type.
//   The validator walks this table in order, so violation lists come back in
//   a stable, form-matching order.  Keeping the rules in one table means the
//   HTTP handler, the validator, and the tests all share a single source of
//   truth.
//
//------------------------------------------------------------------------------

package request

// Field names.  These are the submission keys posted by the public form and
// the keys of the sanitized Values map.
const (
	FieldClientName        = "clientName"
	FieldEmail             = "email"
	FieldPhoneNumber       = "phoneNumber"
	FieldProjectType       = "projectType"
	FieldTimeline          = "timeline"
	FieldBudget            = "budget"
	FieldDesignDescription = "designDescription"
	FieldReferenceWebsites = "referenceWebsites"
	FieldColorPreferences  = "colorPreferences"
	FieldKeyFeatures       = "keyFeatures"
	FieldStylePreferences  = "stylePreferences"
)

// Enum vocabularies.  Submitted values must match exactly; the form renders
// the same lists, so a mismatch means a tampered or stale client.
var (
	ProjectTypes = []string{"website", "redesign", "landing", "ecommerce", "other"}
	Timelines    = []string{"asap", "1month", "2-3months", "flexible"}
	Budgets      = []string{"200-500", "500-1000", "1000-2500", "2500-5000", "5000+"}
	Styles       = []string{"modern", "minimalist", "bold", "classic", "playful", "corporate"}
)

// FieldDef describes a single input control and its server-side rules.
// Validation metadata lives inline so the server enforces the same limits the
// client hints at.
type FieldDef struct {
	Name      string   // submission key
	Label     string   // human-readable label used in violation messages
	Type      string   // text, textarea, email, phone, select, urllist
	Required  bool     // true if input is mandatory
	MinLength int      // >= 0, 0 means unset
	MaxLength int      // >= 0, 0 means unset
	Options   []string // for select fields
}

// maxFallbackEntry bounds reference-website entries that are not parseable
// URLs, e.g. "my cousin's bakery site".
const maxFallbackEntry = 50

// Fields is the intake form definition, in display order.  Violation lists
// returned by Validate follow this order.
var Fields = []FieldDef{
	{Name: FieldClientName, Label: "Name", Type: "text", Required: true, MinLength: 2, MaxLength: 100},
	{Name: FieldEmail, Label: "Email", Type: "email", Required: true, MaxLength: 254},
	{Name: FieldPhoneNumber, Label: "Phone number", Type: "phone", MaxLength: 30},
	{Name: FieldProjectType, Label: "Project type", Type: "select", Required: true, Options: ProjectTypes},
	{Name: FieldTimeline, Label: "Timeline", Type: "select", Required: true, Options: Timelines},
	{Name: FieldBudget, Label: "Budget", Type: "select", Required: true, Options: Budgets},
	{Name: FieldDesignDescription, Label: "Design description", Type: "textarea", Required: true, MinLength: 10, MaxLength: 5000},
	{Name: FieldReferenceWebsites, Label: "Reference websites", Type: "urllist", MaxLength: 1000},
	{Name: FieldColorPreferences, Label: "Color preferences", Type: "text", MaxLength: 500},
	{Name: FieldKeyFeatures, Label: "Key features", Type: "textarea", MaxLength: 2000},
	{Name: FieldStylePreferences, Label: "Style preferences", Type: "select", Options: Styles},
}
