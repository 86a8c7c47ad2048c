package registry

import (
	stderrors "errors"
	"fmt"
	"testing"

	wasmimports "github.com/hostbridge/wasm-imports"
	"github.com/hostbridge/wasm-imports/entity"
	"github.com/hostbridge/wasm-imports/errors"
)

type fakeGlobal struct{ closes *int }

func newFakeGlobal() *fakeGlobal { return &fakeGlobal{closes: new(int)} }

func (g *fakeGlobal) Clone() wasmimports.Global { return &fakeGlobal{closes: g.closes} }
func (g *fakeGlobal) Close() error              { *g.closes++; return nil }

func newFunc() *entity.Function {
	return entity.NewFunction(nil, nil, nil)
}

func TestLookup(t *testing.T) {
	r := New()
	defer r.Close()

	f := newFunc()
	r.Insert("env", "foo", f)

	e, ok := r.Lookup("env", "foo")
	if !ok {
		t.Fatal("Lookup(env, foo) not found")
	}
	if e.Kind() != entity.KindFunction {
		t.Errorf("kind = %v, want function", e.Kind())
	}

	for _, key := range [][2]string{{"env", "bar"}, {"other", "foo"}, {"", ""}} {
		if _, ok := r.Lookup(key[0], key[1]); ok {
			t.Errorf("Lookup(%q, %q) found an entry", key[0], key[1])
		}
	}
}

func TestInsert_OverwriteClosesOld(t *testing.T) {
	r := New()
	defer r.Close()

	g := newFakeGlobal()
	r.Insert("env", "x", entity.NewGlobal(g))
	r.Insert("env", "x", newFunc())

	if *g.closes != 1 {
		t.Errorf("displaced entity closes = %d, want 1", *g.closes)
	}
	e, ok := r.Lookup("env", "x")
	if !ok || e.Kind() != entity.KindFunction {
		t.Error("overwrite did not take effect")
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestMerge_LastWriteWins(t *testing.T) {
	r := New()
	defer r.Close()

	f1 := newFunc()
	f2 := newFunc()
	err := r.Merge([]Record{
		{Namespace: "env", Name: "a", Entity: f1},
		{Namespace: "env", Name: "a", Entity: f2},
	})
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	e, ok := r.Lookup("env", "a")
	if !ok {
		t.Fatal("Lookup(env, a) not found")
	}
	if e != entity.Entity(f2) {
		t.Error("last write did not win")
	}
}

func TestMerge_InvalidUTF8IsAllOrNothing(t *testing.T) {
	r := New()
	defer r.Close()

	bad := string([]byte{0xff, 0xfe})
	err := r.Merge([]Record{
		{Namespace: "env", Name: "ok", Entity: newFunc()},
		{Namespace: bad, Name: "x", Entity: newFunc()},
	})
	if err == nil {
		t.Fatal("expected invalid_utf8 error")
	}
	var se *errors.Error
	if !stderrors.As(err, &se) || se.Kind != errors.KindInvalidUTF8 {
		t.Errorf("error = %v, want invalid_utf8", err)
	}

	// Nothing was applied, including the valid record before the bad one.
	if r.Len() != 0 {
		t.Errorf("Len() = %d after failed merge, want 0", r.Len())
	}
	if _, ok := r.Lookup("env", "ok"); ok {
		t.Error("failed merge applied a record")
	}
}

func TestMerge_InvalidName(t *testing.T) {
	r := New()
	defer r.Close()

	err := r.Merge([]Record{
		{Namespace: "env", Name: string([]byte{0x80}), Entity: newFunc()},
	})
	if err == nil {
		t.Fatal("expected invalid_utf8 error")
	}
	if err.Error() == "" {
		t.Error("empty error message")
	}
}

func TestEnumerateFunctions_SkipsOtherKinds(t *testing.T) {
	r := New()
	defer r.Close()

	r.Insert("env", "f1", newFunc())
	r.Insert("env", "g", entity.NewGlobal(newFakeGlobal()))
	r.Insert("env", "f2", newFunc())

	buf := make([]FuncEntry, 8)
	n := r.EnumerateFunctions(buf)
	if n != 2 {
		t.Fatalf("wrote %d entries, want 2", n)
	}
	if buf[0].Name != "f1" || buf[1].Name != "f2" {
		t.Errorf("order = %q, %q; want f1, f2", buf[0].Name, buf[1].Name)
	}
	for i := 0; i < n; i++ {
		if buf[i].Function == nil {
			t.Errorf("entry %d has nil function", i)
		}
		if buf[i].Namespace != "env" {
			t.Errorf("entry %d namespace = %q", i, buf[i].Namespace)
		}
	}
}

func TestEnumerateFunctions_Truncation(t *testing.T) {
	const total = 5
	const capacity = 3

	r := New()
	defer r.Close()
	for i := 0; i < total; i++ {
		r.Insert("env", fmt.Sprintf("f%d", i), newFunc())
	}

	buf := make([]FuncEntry, capacity)
	n := r.EnumerateFunctions(buf)
	if n != capacity {
		t.Fatalf("wrote %d entries, want %d", n, capacity)
	}
	for i := 0; i < capacity; i++ {
		want := fmt.Sprintf("f%d", i)
		if buf[i].Name != want {
			t.Errorf("entry %d = %q, want %q", i, buf[i].Name, want)
		}
	}

	// The caller detects truncation against the total-count query.
	if r.NumFunctions() != total {
		t.Errorf("NumFunctions() = %d, want %d", r.NumFunctions(), total)
	}
	if n < r.NumFunctions() {
		t.Logf("truncated: wrote %d of %d", n, r.NumFunctions())
	} else {
		t.Error("expected truncation")
	}
}

func TestEnumerateFunctions_EmptyBuffer(t *testing.T) {
	r := New()
	defer r.Close()
	r.Insert("env", "f", newFunc())

	if n := r.EnumerateFunctions(nil); n != 0 {
		t.Errorf("wrote %d entries into nil buffer", n)
	}
}

func TestClose_ReleasesAllEntities(t *testing.T) {
	r := New()

	g1 := newFakeGlobal()
	g2 := newFakeGlobal()
	r.Insert("env", "a", entity.NewGlobal(g1))
	r.Insert("wasi", "b", entity.NewGlobal(g2))
	r.Insert("env", "f", newFunc())

	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if *g1.closes != 1 || *g2.closes != 1 {
		t.Errorf("handle closes = %d, %d; want 1, 1", *g1.closes, *g2.closes)
	}
	if r.Len() != 0 {
		t.Errorf("Len() = %d after Close, want 0", r.Len())
	}

	// Registry remains usable after Close.
	r.Insert("env", "again", newFunc())
	if r.Len() != 1 {
		t.Error("registry unusable after Close")
	}
	r.Close()
}
