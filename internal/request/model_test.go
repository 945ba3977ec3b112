// internal/request/model_test.go
//
// Unit-tests for the record builder.

package request

import (
	"testing"
	"time"
)

func TestNew_AssignsIdentityAndStatus(t *testing.T) {
	clean, errs := Validate(validFields())
	if len(errs) != 0 {
		t.Fatalf("fixture invalid: %+v", errs)
	}

	before := time.Now().UTC()
	rec := New(clean)
	after := time.Now().UTC()

	if rec.ID == "" {
		t.Fatal("ID not assigned")
	}
	if rec.Status != StatusPendingReview {
		t.Fatalf("status = %q, want %q", rec.Status, StatusPendingReview)
	}
	if rec.CreatedAt.Before(before) || rec.CreatedAt.After(after) {
		t.Fatalf("createdAt %v outside [%v, %v]", rec.CreatedAt, before, after)
	}
	if rec.PDFURL != "" {
		t.Fatalf("pdfUrl set at build time: %q", rec.PDFURL)
	}
	if rec.ClientName != clean[FieldClientName] || rec.Email != clean[FieldEmail] {
		t.Fatalf("field mapping wrong: %+v", rec)
	}
}

func TestNew_IDsAreUnique(t *testing.T) {
	clean, _ := Validate(validFields())

	seen := make(map[string]struct{}, 1000)
	for i := 0; i < 1000; i++ {
		rec := New(clean)
		if _, dup := seen[rec.ID]; dup {
			t.Fatalf("duplicate ID %q after %d builds", rec.ID, i)
		}
		seen[rec.ID] = struct{}{}
	}
}
