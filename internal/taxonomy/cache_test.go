package taxonomy

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/betbot/betsuggest/internal/domain"
)

type fakeLoader struct {
	types []domain.LineType
	err   error
	calls int
	lang  int
}

func (f *fakeLoader) LineTypes(_ context.Context, lang int) ([]domain.LineType, error) {
	f.calls++
	f.lang = lang
	return f.types, f.err
}

func TestGetBeforeLoad(t *testing.T) {
	c := NewCache(&fakeLoader{})
	got := c.Get()
	if got == nil {
		t.Fatal("Get before Load must return a non-nil slice")
	}
	if len(got) != 0 {
		t.Fatalf("Get before Load returned %d entries", len(got))
	}
	if c.Loaded() {
		t.Error("Loaded should be false before Load")
	}
}

func TestLoadReplacesSet(t *testing.T) {
	ld := &fakeLoader{types: []domain.LineType{{ID: 1}, {ID: 144}}}
	c := NewCache(ld)

	if err := c.Load(context.Background(), 1); err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !c.Loaded() {
		t.Error("Loaded should be true after a successful Load")
	}
	if ld.lang != 1 {
		t.Errorf("lang passed through = %d", ld.lang)
	}
	if got := c.Get(); len(got) != 2 || got[0].ID != 1 || got[1].ID != 144 {
		t.Fatalf("unexpected cached set: %+v", got)
	}

	// A reload swaps the whole set, it does not merge.
	ld.types = []domain.LineType{{ID: 3}}
	if err := c.Load(context.Background(), 1); err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := c.Get(); len(got) != 1 || got[0].ID != 3 {
		t.Fatalf("reload did not replace the set: %+v", got)
	}
}

func TestLoadErrorKeepsCacheEmpty(t *testing.T) {
	ld := &fakeLoader{err: errors.New("upstream is down")}
	c := NewCache(ld)

	err := c.Load(context.Background(), 1)
	if err == nil {
		t.Fatal("expected an error")
	}
	if !strings.Contains(err.Error(), "load line types") {
		t.Errorf("error lacks context: %v", err)
	}
	if c.Loaded() {
		t.Error("Loaded should stay false after a failed Load")
	}
	if len(c.Get()) != 0 {
		t.Error("cache should stay empty after a failed Load")
	}
}
