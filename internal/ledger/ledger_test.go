// internal/ledger/ledger_test.go
//
// Unit-tests for the JSON file ledger.
//
// Run: go test ./internal/ledger -v

package ledger

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/Chrisserknee/cerneydesigns/internal/request"
)

func testRecord(id string) request.DesignRequest {
	return request.DesignRequest{
		ID:                id,
		ClientName:        "Ada Lovelace",
		Email:             "ada@example.com",
		ProjectType:       "website",
		Timeline:          "1month",
		Budget:            "1000-2500",
		DesignDescription: "A clean marketing site.",
		Status:            request.StatusPendingReview,
		CreatedAt:         time.Now().UTC().Truncate(time.Second),
	}
}

func TestLedger_MissingFileReadsEmpty(t *testing.T) {
	led := New(filepath.Join(t.TempDir(), "requests.json"))

	got, err := led.ListAll()
	if err != nil {
		t.Fatalf("ListAll on missing file: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("expected empty collection, got %d records", len(got))
	}
}

func TestLedger_RoundTripInsertionOrder(t *testing.T) {
	led := New(filepath.Join(t.TempDir(), "requests.json"))

	want := []request.DesignRequest{testRecord("a"), testRecord("b"), testRecord("c")}
	for _, rec := range want {
		if err := led.Append(rec); err != nil {
			t.Fatalf("append %s: %v", rec.ID, err)
		}
	}

	got, err := led.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != len(want) {
		t.Fatalf("got %d records, want %d", len(got), len(want))
	}
	for i := range want {
		g, w := got[i], want[i]
		if !g.CreatedAt.Equal(w.CreatedAt) {
			t.Fatalf("record %d createdAt = %v, want %v", i, g.CreatedAt, w.CreatedAt)
		}
		// Normalize the timestamp so the rest compares with ==; time.Time
		// representations differ after a JSON round-trip even when equal.
		g.CreatedAt = w.CreatedAt
		if g != w {
			t.Fatalf("record %d mismatch:\n got  %+v\n want %+v", i, g, w)
		}
	}
}

func TestLedger_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", "requests.json")
	led := New(path)

	if err := led.Append(testRecord("a")); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("ledger file not created: %v", err)
	}
}

func TestLedger_ConcurrentAppendsAllSurvive(t *testing.T) {
	led := New(filepath.Join(t.TempDir(), "requests.json"))

	const n = 20
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec := testRecord("")
			rec.ID = string(rune('a' + i))
			errs <- led.Append(rec)
		}(i)
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent append: %v", err)
		}
	}

	got, err := led.ListAll()
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != n {
		t.Fatalf("lost updates: %d of %d records survived", len(got), n)
	}
}

func TestLedger_AppendFailsWhenPathIsDirectory(t *testing.T) {
	dir := t.TempDir()
	led := New(dir) // a directory, not a file

	if err := led.Append(testRecord("a")); err == nil {
		t.Fatal("expected append to fail against a directory path")
	}
}
