package descriptor

import (
	stderrors "errors"
	"testing"

	"github.com/hostbridge/wasm-imports/entity"
	"github.com/hostbridge/wasm-imports/errors"
	"github.com/hostbridge/wasm-imports/module"
)

// buildInfo creates a module with 2 function imports, 1 table import,
// 0 global imports and 1 memory import.
func buildInfo() *module.Info {
	in := module.NewInfo()
	in.ImportedFunctions = append(in.ImportedFunctions,
		module.FunctionImport{ImportName: in.Name("env", "log")},
		module.FunctionImport{ImportName: in.Name("env", "abort")},
	)
	in.ImportedTables = append(in.ImportedTables,
		module.TableImport{ImportName: in.Name("env", "table")},
	)
	in.ImportedMemories = append(in.ImportedMemories,
		module.MemoryImport{ImportName: in.Name("env", "memory")},
	)
	return in
}

func TestFromModule_Ordering(t *testing.T) {
	l, err := FromModule(buildInfo())
	if err != nil {
		t.Fatalf("FromModule: %v", err)
	}
	defer l.Destroy()

	if l.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", l.Len())
	}

	wantKinds := []entity.Kind{
		entity.KindFunction,
		entity.KindFunction,
		entity.KindTable,
		entity.KindMemory,
	}
	wantNames := []string{"log", "abort", "table", "memory"}

	for i := 0; i < l.Len(); i++ {
		d := l.At(i)
		if d.Kind() != wantKinds[i] {
			t.Errorf("descriptor %d kind = %v, want %v", i, d.Kind(), wantKinds[i])
		}
		if d.Name() != wantNames[i] {
			t.Errorf("descriptor %d name = %q, want %q", i, d.Name(), wantNames[i])
		}
		if d.ModuleName() != "env" {
			t.Errorf("descriptor %d module = %q, want env", i, d.ModuleName())
		}
	}
}

func TestFromModule_GlobalsBeforeMemories(t *testing.T) {
	in := module.NewInfo()
	in.ImportedMemories = append(in.ImportedMemories,
		module.MemoryImport{ImportName: in.Name("env", "memory")},
	)
	in.ImportedGlobals = append(in.ImportedGlobals,
		module.GlobalImport{ImportName: in.Name("env", "counter")},
	)

	l, err := FromModule(in)
	if err != nil {
		t.Fatalf("FromModule: %v", err)
	}
	defer l.Destroy()

	if l.At(0).Kind() != entity.KindGlobal || l.At(1).Kind() != entity.KindMemory {
		t.Errorf("order = [%v, %v], want [global, memory]",
			l.At(0).Kind(), l.At(1).Kind())
	}
}

func TestFromModule_Empty(t *testing.T) {
	l, err := FromModule(module.NewInfo())
	if err != nil {
		t.Fatalf("FromModule: %v", err)
	}
	if l.Len() != 0 {
		t.Errorf("Len() = %d, want 0", l.Len())
	}
}

func TestFromModule_Nil(t *testing.T) {
	_, err := FromModule(nil)
	if err == nil {
		t.Fatal("expected nil_pointer error")
	}
	var se *errors.Error
	if !stderrors.As(err, &se) || se.Kind != errors.KindNilPointer {
		t.Errorf("error = %v, want nil_pointer", err)
	}
}

func TestFromModule_DanglingIndex(t *testing.T) {
	in := module.NewInfo()
	in.ImportedFunctions = append(in.ImportedFunctions, module.FunctionImport{
		ImportName: module.ImportName{NamespaceIdx: 5, NameIdx: 0},
	})

	_, err := FromModule(in)
	if err == nil {
		t.Fatal("expected out_of_bounds error")
	}
	var se *errors.Error
	if !stderrors.As(err, &se) || se.Kind != errors.KindOutOfBounds {
		t.Errorf("error = %v, want out_of_bounds", err)
	}
}

func TestAt_OutOfRangePanics(t *testing.T) {
	l, err := FromModule(buildInfo())
	if err != nil {
		t.Fatalf("FromModule: %v", err)
	}
	defer l.Destroy()

	defer func() {
		if recover() == nil {
			t.Error("At out of range did not panic")
		}
	}()
	_ = l.At(l.Len())
}

func TestDestroy(t *testing.T) {
	l, err := FromModule(buildInfo())
	if err != nil {
		t.Fatalf("FromModule: %v", err)
	}
	l.Destroy()
	if l.Len() != 0 {
		t.Errorf("Len() = %d after Destroy, want 0", l.Len())
	}
}
