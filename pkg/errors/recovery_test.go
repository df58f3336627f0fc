package errors

import (
	"strings"
	"testing"
)

func TestRecover(t *testing.T) {
	fn := func() (err error) {
		defer Recover(&err, "test_operation")
		panic("something broke")
	}

	err := fn()
	if err == nil {
		t.Fatal("panic was not converted to an error")
	}

	var panicErr *PanicError
	if !As(err, &panicErr) {
		t.Fatalf("error is not a *PanicError: %v", err)
	}
	if panicErr.Operation != "test_operation" {
		t.Errorf("Operation = %q, want %q", panicErr.Operation, "test_operation")
	}
	if panicErr.StackTrace == "" {
		t.Error("stack trace is empty")
	}
}

func TestRecoverWrapsExistingError(t *testing.T) {
	base := New("original failure")
	fn := func() (err error) {
		defer Recover(&err, "test_operation")
		err = base
		panic("late panic")
	}

	err := fn()
	if err == nil {
		t.Fatal("expected an error")
	}
	if !Is(err, base) {
		t.Errorf("wrapped error lost the original: %v", err)
	}
	if !strings.Contains(err.Error(), "late panic") {
		t.Errorf("panic information missing: %v", err)
	}
}

func TestSafeExecute(t *testing.T) {
	if err := SafeExecute("ok", func() error { return nil }); err != nil {
		t.Errorf("SafeExecute returned error for clean function: %v", err)
	}

	err := SafeExecute("boom", func() error { panic("index out of range") })
	if err == nil {
		t.Fatal("SafeExecute did not convert panic to error")
	}
}
