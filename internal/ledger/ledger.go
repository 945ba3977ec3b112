// internal/ledger/ledger.go
//
// Cerney Designs – durable local request ledger.
//
// Context
//   The ledger is the source of truth for accepted submissions.  It is a
//   single JSON file holding an array of DesignRequest records in insertion
//   order.  Append loads the whole collection, adds the new record in
//   memory, and atomically replaces the file, so a crash mid-write never
//   leaves a half-written collection behind.  A mutex serializes appends so
//   two submissions arriving at nearly the same instant both survive.
//
// Failure semantics
//   An Append error means the submission could not be durably saved and must
//   fail the overall request.  This is deliberately different from the PDF
//   and mirror stages, which are best-effort.
//
//------------------------------------------------------------------------------

package ledger

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/Chrisserknee/cerneydesigns/internal/request"
)

// Ledger stores DesignRequest records in one JSON file.  The zero value is
// not usable; construct with New.
type Ledger struct {
	mu   sync.Mutex
	path string
}

// New returns a Ledger backed by the file at path.  The file is created on
// first Append; a missing file reads as an empty collection.
func New(path string) *Ledger {
	return &Ledger{path: path}
}

// Append durably adds rec to the collection.  The write is atomic: records
// are marshalled to a temp file in the same directory, then renamed over the
// original.
func (l *Ledger) Append(rec request.DesignRequest) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	records, err := l.read()
	if err != nil {
		return err
	}
	records = append(records, rec)

	return l.replace(records)
}

// ListAll returns every stored record in insertion order.  A missing ledger
// file yields an empty slice, not an error.
func (l *Ledger) ListAll() ([]request.DesignRequest, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.read()
}

// read loads and decodes the collection.  Callers must hold l.mu.
func (l *Ledger) read() ([]request.DesignRequest, error) {
	raw, err := os.ReadFile(l.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []request.DesignRequest{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("ledger read %s: %w", l.path, err)
	}

	var records []request.DesignRequest
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("ledger decode %s: %w", l.path, err)
	}
	return records, nil
}

// replace writes records to a temp file and renames it into place.  Callers
// must hold l.mu.
func (l *Ledger) replace(records []request.DesignRequest) error {
	if dir := filepath.Dir(l.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ledger mkdir %s: %w", dir, err)
		}
	}

	raw, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("ledger encode: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(l.path), ".ledger-*")
	if err != nil {
		return fmt.Errorf("ledger temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("ledger write: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("ledger close: %w", err)
	}

	if err := os.Rename(tmpName, l.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("ledger replace %s: %w", l.path, err)
	}
	return nil
}
