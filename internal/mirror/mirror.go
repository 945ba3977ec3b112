// internal/mirror/mirror.go
//
// Cerney Designs – relational mirror writer.
//
// Context
//   Each accepted submission is copied into the `design_request` table so
//   operators can query requests with SQL.  The local ledger remains the
//   source of truth; the mirror is best-effort, and a failed insert is
//   logged by the orchestrator and otherwise ignored.
//
//------------------------------------------------------------------------------

package mirror

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/Chrisserknee/cerneydesigns/internal/request"
)

const insertTimeout = 10 * time.Second

const insertStmt = `
	INSERT INTO design_request
	       (id, client_name, email, phone_number, project_type, timeline,
	        budget, design_description, reference_websites, color_preferences,
	        key_features, style_preferences, status, pdf_url, created_at)
	VALUES (:id, :client_name, :email, :phone_number, :project_type, :timeline,
	        :budget, :design_description, :reference_websites, :color_preferences,
	        :key_features, :style_preferences, :status, :pdf_url, :created_at)`

// Writer inserts design-request rows into the mirror database.
type Writer struct {
	db *sqlx.DB
}

// NewWriter wraps an open sqlx handle.  Callers own the handle's lifecycle.
func NewWriter(db *sqlx.DB) *Writer {
	return &Writer{db: db}
}

// Insert copies rec into the mirror, including the PDF URL when one was
// obtained.  The call is bounded by a timeout so an unreachable database
// cannot hold a submission open.
func (w *Writer) Insert(ctx context.Context, rec request.DesignRequest) error {
	ctx, cancel := context.WithTimeout(ctx, insertTimeout)
	defer cancel()

	if _, err := w.db.NamedExecContext(ctx, insertStmt, rec); err != nil {
		return fmt.Errorf("mirror insert %s: %w", rec.ID, err)
	}
	return nil
}
