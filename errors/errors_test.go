package errors

import (
	"errors"
	"strings"
	"testing"
)

func TestError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		contains []string
	}{
		{
			name: "full error",
			err: &Error{
				Phase:     PhaseBridge,
				Kind:      KindMismatch,
				Namespace: "env",
				Name:      "counter",
				Found:     "global",
				Expected:  "function",
			},
			contains: []string{"[bridge]", "kind_mismatch", "env#counter", "found global", "expected function"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseResolve,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[resolve]", "out_of_bounds"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseScan,
				Kind:   KindInvalidData,
				Detail: "scan import section",
				Cause:  errors.New("unexpected EOF"),
			},
			contains: []string{"[scan]", "invalid_data", "scan import section", "caused by", "unexpected EOF"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &Error{
		Phase: PhaseRegistry,
		Kind:  KindInvalidUTF8,
		Cause: cause,
	}

	if !errors.Is(err.Unwrap(), cause) {
		t.Error("Unwrap did not return cause")
	}
	if !errors.Is(errors.Unwrap(err), cause) {
		t.Error("errors.Unwrap did not return cause")
	}
}

func TestError_Is(t *testing.T) {
	err := &Error{
		Phase:     PhaseBridge,
		Kind:      KindNotFound,
		Namespace: "env",
	}

	if !err.Is(&Error{Phase: PhaseBridge, Kind: KindNotFound}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseRegistry, Kind: KindNotFound}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseBridge, Kind: KindMismatch}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseBridge, Kind: KindNotFound}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseBridge, KindMismatch).
		At("env", "mem").
		Found("memory").
		Expected("table").
		Cause(cause).
		Detail("expected %s, got %s", "table", "memory").
		Build()

	if err.Phase != PhaseBridge {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseBridge)
	}
	if err.Kind != KindMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindMismatch)
	}
	if err.Namespace != "env" || err.Name != "mem" {
		t.Errorf("At = %q/%q, want env/mem", err.Namespace, err.Name)
	}
	if err.Found != "memory" || err.Expected != "table" {
		t.Errorf("Found/Expected = %q/%q", err.Found, err.Expected)
	}
	if !errors.Is(err.Cause, cause) {
		t.Error("Cause not set")
	}
	if err.Detail != "expected table, got memory" {
		t.Errorf("Detail = %q", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name     string
		err      *Error
		kind     Kind
		contains []string
	}{
		{
			name:     "NotFound",
			err:      NotFound(PhaseBridge, "env", "foo"),
			kind:     KindNotFound,
			contains: []string{"env", "foo", "not found"},
		},
		{
			name:     "Mismatch",
			err:      Mismatch(PhaseBridge, "env", "foo", "memory", "function"),
			kind:     KindMismatch,
			contains: []string{"memory", "function"},
		},
		{
			name:     "TypeMismatch",
			err:      TypeMismatch(PhaseBridge, "global"),
			kind:     KindTypeMismatch,
			contains: []string{"global", "function"},
		},
		{
			name:     "InvalidUTF8",
			err:      InvalidUTF8(PhaseRegistry, "namespace", []byte{0xff, 0xfe}),
			kind:     KindInvalidUTF8,
			contains: []string{"namespace", "fffe"},
		},
		{
			name:     "NilPointer",
			err:      NilPointer(PhaseBridge, "registry"),
			kind:     KindNilPointer,
			contains: []string{"registry", "nil"},
		},
		{
			name:     "OutOfBounds",
			err:      OutOfBounds(PhaseResolve, "namespace table", 7, 3),
			kind:     KindOutOfBounds,
			contains: []string{"namespace table", "7", "3"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			msg := tt.err.Error()
			if msg == "" {
				t.Fatal("empty error message")
			}
			for _, s := range tt.contains {
				if !strings.Contains(msg, s) {
					t.Errorf("error message %q does not contain %q", msg, s)
				}
			}
		})
	}
}

func TestInvalidUTF8_TruncatesPreview(t *testing.T) {
	data := make([]byte, 100)
	for i := range data {
		data[i] = 0xff
	}
	err := InvalidUTF8(PhaseBridge, "name", data)
	// 32-byte preview, hex-encoded
	if strings.Count(err.Detail, "ff") > 32 {
		t.Errorf("preview not truncated: %q", err.Detail)
	}
}
