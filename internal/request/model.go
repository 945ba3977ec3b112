// internal/request/model.go
//
// Cerney Designs – design-request record.
//
// Context
//   DesignRequest is the single entity this service manages.  One record is
//   built per accepted form submission, appended to the local ledger, rendered
//   to PDF, and mirrored to the relational store.  Identity fields (ID,
//   CreatedAt) are assigned once by New and never change afterward; the only
//   permitted mutation is attaching PDFURL after a successful artifact upload.
//
// Style
//   Comments follow the house guide: full sentences, two spaces after
//   periods, Oxford commas.
//
//------------------------------------------------------------------------------

package request

import (
	"time"

	"github.com/google/uuid"
)

// Status values.  Records are created in StatusPendingReview; any further
// transition is an administrative concern outside this service.
const (
	StatusPendingReview = "pending_review"
)

// DesignRequest mirrors one submitted design brief.  JSON tags match the
// public form field names so the ledger file and API responses stay readable.
type DesignRequest struct {
	ID                string    `json:"id" db:"id"`
	ClientName        string    `json:"clientName" db:"client_name"`
	Email             string    `json:"email" db:"email"`
	PhoneNumber       string    `json:"phoneNumber,omitempty" db:"phone_number"`
	ProjectType       string    `json:"projectType" db:"project_type"`
	Timeline          string    `json:"timeline" db:"timeline"`
	Budget            string    `json:"budget" db:"budget"`
	DesignDescription string    `json:"designDescription" db:"design_description"`
	ReferenceWebsites string    `json:"referenceWebsites,omitempty" db:"reference_websites"`
	ColorPreferences  string    `json:"colorPreferences,omitempty" db:"color_preferences"`
	KeyFeatures       string    `json:"keyFeatures,omitempty" db:"key_features"`
	StylePreferences  string    `json:"stylePreferences,omitempty" db:"style_preferences"`
	Status            string    `json:"status" db:"status"`
	PDFURL            string    `json:"pdfUrl,omitempty" db:"pdf_url"`
	CreatedAt         time.Time `json:"createdAt" db:"created_at"`
}

// Values is a sanitized field map as returned by Validate.  Keys are field
// names from the rules table; absent optional fields simply have no entry.
type Values map[string]string

// New builds an immutable DesignRequest from sanitized values.  The ID is a
// random UUID, so two submissions arriving in the same millisecond cannot
// collide.  New is pure construction and has no error conditions.
func New(v Values) DesignRequest {
	return DesignRequest{
		ID:                uuid.NewString(),
		ClientName:        v[FieldClientName],
		Email:             v[FieldEmail],
		PhoneNumber:       v[FieldPhoneNumber],
		ProjectType:       v[FieldProjectType],
		Timeline:          v[FieldTimeline],
		Budget:            v[FieldBudget],
		DesignDescription: v[FieldDesignDescription],
		ReferenceWebsites: v[FieldReferenceWebsites],
		ColorPreferences:  v[FieldColorPreferences],
		KeyFeatures:       v[FieldKeyFeatures],
		StylePreferences:  v[FieldStylePreferences],
		Status:            StatusPendingReview,
		CreatedAt:         time.Now().UTC(),
	}
}
