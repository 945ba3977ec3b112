// internal/intake/intake.go
//
// Cerney Designs – submission pipeline orchestrator.
//
// Context
//   Submit sequences one design-request submission through its stages:
//
//      validate → build → persist (ledger) → render → publish → mirror
//
//   The stages have deliberately different failure semantics.  Validation
//   failures return the full violation list and touch nothing.  A ledger
//   write failure fails the whole submission, because the record could not
//   be durably saved.  Everything after the ledger write is best-effort:
//   render, publish, and mirror errors are logged with full detail, counted
//   in metrics, and otherwise absorbed, so a flaky storage bucket or
//   database never costs a client their submission.
//
// Workflow
//   •  The PDF URL is attached to the in-memory record only when both the
//      render and publish stages succeed, so the mirror row carries it but
//      the ledger record does not.
//   •  An absent publisher or mirror (not configured) takes the same
//      skip-and-continue path as a failing one.
//   •  Stages run synchronously before the response; callers that need the
//      submission latency back sooner can front this with their own queue.
//
//------------------------------------------------------------------------------

package intake

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"go.uber.org/zap"

	"github.com/Chrisserknee/cerneydesigns/internal/artifact"
	"github.com/Chrisserknee/cerneydesigns/internal/ledger"
	"github.com/Chrisserknee/cerneydesigns/internal/metrics"
	"github.com/Chrisserknee/cerneydesigns/internal/pdf"
	"github.com/Chrisserknee/cerneydesigns/internal/request"
)

// MirrorWriter is the narrow contract the orchestrator needs from the
// relational mirror.  Satisfied by *mirror.Writer.
type MirrorWriter interface {
	Insert(ctx context.Context, rec request.DesignRequest) error
}

// Service wires the pipeline collaborators.  Publisher and mirror are
// optional; a nil value is the documented "not configured" state.
type Service struct {
	ledger    *ledger.Ledger
	renderer  *pdf.Renderer
	publisher *artifact.Publisher
	mirror    MirrorWriter
	log       *zap.SugaredLogger
}

// New builds a Service.  Ledger and renderer are required; publisher and
// mirror may be nil.
func New(led *ledger.Ledger, renderer *pdf.Renderer, publisher *artifact.Publisher,
	mirror MirrorWriter, log *zap.SugaredLogger) *Service {
	return &Service{
		ledger:    led,
		renderer:  renderer,
		publisher: publisher,
		mirror:    mirror,
		log:       log,
	}
}

// Result is the caller-visible outcome of a submission.  Violations is
// populated only when OK is false and the submission failed validation.
type Result struct {
	OK         bool
	Violations []request.ErrorField
}

// Submit runs the full intake pipeline for one posted field set.  A non-nil
// error means the submission could not be durably saved; validation failures
// come back inside Result with a nil error.
func (s *Service) Submit(ctx context.Context, fields url.Values) (Result, error) {
	clean, violations := request.Validate(fields)
	if len(violations) > 0 {
		metrics.ValidationRejectsTotal.Inc()
		return Result{Violations: violations}, nil
	}

	rec := request.New(clean)

	if err := s.ledger.Append(rec); err != nil {
		metrics.LedgerErrorsTotal.Inc()
		s.log.Errorw("ledger append failed", "id", rec.ID, "error", err)
		return Result{}, fmt.Errorf("persist design request: %w", err)
	}
	metrics.SubmissionsTotal.Inc()
	s.log.Infow("design request accepted", "id", rec.ID, "project_type", rec.ProjectType)

	// Non-fatal stages.  Each failure is logged and skipped; the submission
	// is already durable.
	if doc, ok := s.render(rec); ok {
		if loc, ok := s.publish(ctx, rec, doc); ok {
			rec.PDFURL = loc
		}
	}
	s.mirrorInsert(ctx, rec)

	return Result{OK: true}, nil
}

// render produces the PDF document for rec.  A renderer error or panic is
// absorbed here; rendering must never take down a submission.
func (s *Service) render(rec request.DesignRequest) (doc []byte, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			metrics.StageErrorsTotal.WithLabelValues("render").Inc()
			s.log.Errorw("pdf render panicked", "id", rec.ID, "panic", r)
			doc, ok = nil, false
		}
	}()

	doc, err := s.renderer.Render(rec)
	if err != nil {
		metrics.StageErrorsTotal.WithLabelValues("render").Inc()
		s.log.Errorw("pdf render failed", "id", rec.ID, "error", err)
		return nil, false
	}
	return doc, true
}

// publish uploads doc and returns its public URL.  An unconfigured
// publisher takes the same path as a failing one.
func (s *Service) publish(ctx context.Context, rec request.DesignRequest, doc []byte) (string, bool) {
	if !s.publisher.Configured() {
		s.log.Infow("artifact publisher not configured, skipping upload", "id", rec.ID)
		return "", false
	}

	loc, err := s.publisher.Publish(ctx, doc, "design-request-"+rec.ID+".pdf")
	if err != nil {
		metrics.StageErrorsTotal.WithLabelValues("publish").Inc()
		s.log.Errorw("artifact publish failed", "id", rec.ID, "error", err)
		return "", false
	}
	s.log.Infow("artifact published", "id", rec.ID, "url", loc)
	return loc, true
}

// mirrorInsert copies rec (with any PDF URL) into the relational mirror.
func (s *Service) mirrorInsert(ctx context.Context, rec request.DesignRequest) {
	if s.mirror == nil {
		s.log.Infow("mirror not configured, skipping insert", "id", rec.ID)
		return
	}

	if err := s.mirror.Insert(ctx, rec); err != nil {
		metrics.StageErrorsTotal.WithLabelValues("mirror").Inc()
		s.log.Errorw("mirror insert failed", "id", rec.ID, "error", err)
		return
	}
	s.log.Infow("mirror insert ok", "id", rec.ID)
}

// ListAll returns every stored record in insertion order with the email
// masked.  Masking happens here, not in the handler, so no caller can
// accidentally expose a full address.
func (s *Service) ListAll(ctx context.Context) ([]request.DesignRequest, error) {
	records, err := s.ledger.ListAll()
	if err != nil {
		return nil, fmt.Errorf("list design requests: %w", err)
	}
	for i := range records {
		records[i].Email = MaskEmail(records[i].Email)
	}
	return records, nil
}

// MaskEmail exposes at most the first three characters of an address
// followed by a fixed mask, e.g. "alice@example.com" → "ali***".
func MaskEmail(addr string) string {
	const mask = "***"
	runes := []rune(strings.TrimSpace(addr))
	if len(runes) > 3 {
		runes = runes[:3]
	}
	return string(runes) + mask
}
