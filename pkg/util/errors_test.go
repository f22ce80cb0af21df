package util

import (
	"errors"
	"io/fs"
	"strings"
	"testing"
)

func TestMissingInputError(t *testing.T) {
	err := NewMissingInputError("cdp-neighbors")

	if !strings.Contains(err.Error(), "cdp-neighbors") {
		t.Errorf("Error message should contain report name: %s", err.Error())
	}
	if !errors.Is(err, ErrMissingInput) {
		t.Errorf("missing input error should unwrap to ErrMissingInput")
	}
}

func TestReadError(t *testing.T) {
	err := NewReadError("running-config", "/tmp/run.txt", fs.ErrNotExist)
	msg := err.Error()

	if !strings.Contains(msg, "running-config") || !strings.Contains(msg, "/tmp/run.txt") {
		t.Errorf("Error message should contain report and path: %s", msg)
	}
	if !errors.Is(err, ErrReadFailed) {
		t.Errorf("read error should unwrap to ErrReadFailed")
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("read error should unwrap to its cause")
	}

	var inErr *InputError
	if !errors.As(err, &inErr) {
		t.Fatalf("errors.As(*InputError) failed for %T", err)
	}
	if inErr.Report != "running-config" {
		t.Errorf("Report = %q, want running-config", inErr.Report)
	}
}

func TestValidationError(t *testing.T) {
	t.Run("single error", func(t *testing.T) {
		err := NewValidationError("output is required")
		msg := err.Error()
		if !strings.Contains(msg, "output is required") {
			t.Errorf("Error message should contain the error: %s", msg)
		}
		if !errors.Is(err, ErrValidationFailed) {
			t.Errorf("ValidationError should unwrap to ErrValidationFailed")
		}
	})

	t.Run("multiple errors", func(t *testing.T) {
		err := NewValidationError("field1 is required", "field2 is invalid", "field3 out of range")
		msg := err.Error()
		if !strings.Contains(msg, "field1") || !strings.Contains(msg, "field2") || !strings.Contains(msg, "field3") {
			t.Errorf("Error message should contain all errors: %s", msg)
		}
	})
}

func TestValidationBuilder(t *testing.T) {
	t.Run("no errors", func(t *testing.T) {
		v := &ValidationBuilder{}
		v.Add(true, "this should not appear")

		if v.HasErrors() {
			t.Error("Should not have errors when all conditions are true")
		}
		if err := v.Build(); err != nil {
			t.Errorf("Build() should return nil when no errors: %v", err)
		}
	})

	t.Run("with errors", func(t *testing.T) {
		v := &ValidationBuilder{}
		v.Add(false, "first error")
		v.Add(true, "this passes")
		v.AddError("unconditional error")
		v.AddErrorf("formatted error: %d", 42)

		err := v.Build()
		if err == nil {
			t.Fatal("Build() should return error")
		}

		validationErr, ok := err.(*ValidationError)
		if !ok {
			t.Fatalf("Expected *ValidationError, got %T", err)
		}
		if len(validationErr.Errors) != 3 {
			t.Errorf("Expected 3 errors, got %d", len(validationErr.Errors))
		}
	})
}

func TestSentinelErrors(t *testing.T) {
	sentinels := []error{
		ErrMissingInput,
		ErrReadFailed,
		ErrInvalidJob,
		ErrValidationFailed,
		ErrCollectFailed,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v == %v", err1, err2)
			}
		}
	}
}
