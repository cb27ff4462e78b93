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
				Phase:   PhaseLower,
				Kind:    KindTypeMismatch,
				Path:    []string{"chain-ownership", "timeout-config", "base-timeout"},
				GoType:  "string",
				WitType: "u64",
				Detail:  "cannot convert",
			},
			contains: []string{"[lower]", "type_mismatch", "chain-ownership.timeout-config.base-timeout", "string", "u64", "cannot convert"},
		},
		{
			name: "minimal error",
			err: &Error{
				Phase: PhaseLift,
				Kind:  KindOutOfBounds,
			},
			contains: []string{"[lift]", "out_of_bounds"},
		},
		{
			name: "wit type only",
			err: &Error{
				Phase:   PhaseConvert,
				Kind:    KindInvalidEnum,
				WitType: "log-level",
				Detail:  "tag 9",
			},
			contains: []string{"WIT type log-level", " - tag 9"},
		},
		{
			name: "error with cause",
			err: &Error{
				Phase:  PhaseHost,
				Kind:   KindAllocation,
				Detail: "memory full",
				Cause:  errors.New("underlying error"),
			},
			contains: []string{"[host]", "allocation", "memory full", "caused by", "underlying error"},
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
		Phase: PhaseLower,
		Kind:  KindInvalidData,
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
		Phase: PhaseLower,
		Kind:  KindTypeMismatch,
		Path:  []string{"foo"},
	}

	if !err.Is(&Error{Phase: PhaseLower, Kind: KindTypeMismatch}) {
		t.Error("Is should match same phase and kind")
	}
	if err.Is(&Error{Phase: PhaseLift, Kind: KindTypeMismatch}) {
		t.Error("Is should not match different phase")
	}
	if err.Is(&Error{Phase: PhaseLower, Kind: KindOutOfBounds}) {
		t.Error("Is should not match different kind")
	}

	target := &Error{Phase: PhaseLower, Kind: KindTypeMismatch}
	if !errors.Is(err, target) {
		t.Error("errors.Is should match")
	}

	var asErr *Error
	if !errors.As(Wrap(PhaseHost, KindRegistration, err, "outer"), &asErr) {
		t.Error("errors.As should find *Error")
	}
}

func TestBuilder(t *testing.T) {
	cause := errors.New("root")
	err := New(PhaseLower, KindTypeMismatch).
		Path("amount", "inner0").
		GoType("string").
		WitType("u64").
		Value(42).
		Cause(cause).
		Detail("expected %s, got %s", "uint64", "string").
		Build()

	if err.Phase != PhaseLower {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseLower)
	}
	if err.Kind != KindTypeMismatch {
		t.Errorf("Kind = %v, want %v", err.Kind, KindTypeMismatch)
	}
	if len(err.Path) != 2 || err.Path[0] != "amount" || err.Path[1] != "inner0" {
		t.Errorf("Path = %v, want [amount inner0]", err.Path)
	}
	if err.GoType != "string" {
		t.Errorf("GoType = %v, want 'string'", err.GoType)
	}
	if err.WitType != "u64" {
		t.Errorf("WitType = %v, want 'u64'", err.WitType)
	}
	if err.Value != 42 {
		t.Errorf("Value = %v, want 42", err.Value)
	}
	if !errors.Is(err.Cause, cause) {
		t.Errorf("Cause = %v, want %v", err.Cause, cause)
	}
	if err.Detail != "expected uint64, got string" {
		t.Errorf("Detail = %v, want 'expected uint64, got string'", err.Detail)
	}
}

func TestConvenienceConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		kind Kind
	}{
		{"TypeMismatch", TypeMismatch(PhaseLower, []string{"field"}, "int", "string"), KindTypeMismatch},
		{"InvalidUTF8", InvalidUTF8(PhaseLift, []string{"str"}, []byte{0xff, 0xfe}), KindInvalidUTF8},
		{"AllocationFailed", AllocationFailed(PhaseLower, 1024, 8), KindAllocation},
		{"FieldMissing", FieldMissing(PhaseLift, []string{"record"}, "name"), KindFieldMissing},
		{"InvalidDiscriminant", InvalidDiscriminant(PhaseLift, []string{"variant"}, 5, 1), KindInvalidVariant},
		{"InvalidEnum", InvalidEnum(PhaseLift, []string{"level"}, 7, "log-level"), KindInvalidEnum},
		{"Unsupported", Unsupported(PhaseGenerate, "resource types"), KindUnsupported},
		{"OutOfBounds", OutOfBounds(PhaseLift, []string{"list"}, 10, 5), KindOutOfBounds},
		{"NilPointer", NilPointer(PhaseLower, []string{"ptr"}, "*Owner"), KindNilPointer},
		{"InvalidData", InvalidData(PhaseLift, nil, "bad"), KindInvalidData},
		{"NotFound", NotFound(PhaseHost, "export", "cabi_realloc"), KindNotFound},
		{"InvalidInput", InvalidInput(PhaseHost, "empty"), KindInvalidInput},
		{"Registration", Registration(PhaseHost, "linera:app/base-runtime-api", "log", errors.New("x")), KindRegistration},
		{"Instantiation", Instantiation(errors.New("x")), KindInstantiation},
		{"ContractViolation", ContractViolation(KindInvalidVariant, "multi-address", "no case"), KindInvalidVariant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tt.err.Kind, tt.kind)
			}
			if tt.err.Error() == "" {
				t.Error("empty error message")
			}
		})
	}

	if err := AllocationFailed(PhaseLower, 1024, 8); !strings.Contains(err.Detail, "1024") {
		t.Errorf("Detail = %v, should contain size", err.Detail)
	}
	if err := OutOfBounds(PhaseLift, nil, 10, 5); err.Value != 10 {
		t.Errorf("Value = %v, want 10", err.Value)
	}
	if err := ContractViolation(KindInvalidEnum, "http-method", uint8(12)); err.Phase != PhaseConvert {
		t.Errorf("Phase = %v, want %v", err.Phase, PhaseConvert)
	}
}
