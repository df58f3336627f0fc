package log

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"github.com/logit-ml/logit/pkg/errors"
)

func TestTestLoggerCapturesFields(t *testing.T) {
	logger, buffer := NewTestLogger(LevelDebug)

	logger.Info("Training started",
		ModelNameKey, "LogisticRegression",
		SamplesKey, 200,
	)

	out := buffer.String()
	if !strings.Contains(out, "Training started") {
		t.Errorf("message missing from output: %s", out)
	}
	if !strings.Contains(out, ModelNameKey) || !strings.Contains(out, "LogisticRegression") {
		t.Errorf("structured field missing from output: %s", out)
	}
}

func TestTestLoggerLevelFiltering(t *testing.T) {
	logger, buffer := NewTestLogger(LevelWarn)

	logger.Debug("suppressed")
	logger.Info("also suppressed")
	logger.Warn("emitted")

	entries, err := logger.Entries()
	if err != nil {
		t.Fatalf("failed to decode captured entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1: %s", len(entries), buffer.String())
	}
	if entries[0]["message"] != "emitted" {
		t.Errorf("unexpected entry: %v", entries[0])
	}
}

func TestTestLoggerWith(t *testing.T) {
	logger, _ := NewTestLogger(LevelDebug)
	child := logger.With(ComponentKey, "linear.logistic")

	child.Info("hello")

	entries, err := child.(*TestLogger).Entries()
	if err != nil {
		t.Fatalf("failed to decode captured entries: %v", err)
	}
	if entries[0][ComponentKey] != "linear.logistic" {
		t.Errorf("pre-populated field missing: %v", entries[0])
	}
}

func TestZerologProviderEmitsComponent(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(zerolog.New(&buf))
	defer SetOutput(zerolog.New(bytes.NewBuffer(nil)))

	logger := GetLoggerWithName("metrics.roc")
	logger.Info("sweep finished", IterationKey, 100)

	out := buf.String()
	if !strings.Contains(out, "metrics.roc") {
		t.Errorf("component name missing from output: %s", out)
	}
	if !strings.Contains(out, IterationKey) {
		t.Errorf("field key missing from output: %s", out)
	}
}

func TestWarningsFlowThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(zerolog.New(&buf))
	defer SetOutput(zerolog.New(bytes.NewBuffer(nil)))

	errors.Warn(errors.NewConvergenceWarning("gradient descent", 1000, ""))

	out := buf.String()
	if !strings.Contains(out, "ConvergenceWarning") {
		t.Errorf("structured warning type missing from output: %s", out)
	}
	if !strings.Contains(out, "gradient descent") {
		t.Errorf("algorithm field missing from output: %s", out)
	}
}

func TestErrFmtHandlerAddsStacktrace(t *testing.T) {
	var buf bytes.Buffer
	handler := WrapByErrFmtHandler(slog.NewJSONHandler(&buf, nil))
	logger := slog.New(handler)

	logger.Error("fit failed", ErrAttr(errors.NewValueError("Fit", "bad input")))

	out := buf.String()
	if !strings.Contains(out, StacktraceAttrKey) {
		t.Errorf("stacktrace attribute missing from output: %s", out)
	}
	if !strings.Contains(out, "bad input") {
		t.Errorf("error message missing from output: %s", out)
	}
}

func TestToSlogLevel(t *testing.T) {
	if got := ToSlogLevel("debug"); got != slog.LevelDebug {
		t.Errorf("ToSlogLevel(debug) = %v", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected panic for invalid level name")
		}
	}()
	ToSlogLevel("loud")
}

func TestLoggerEnabled(t *testing.T) {
	logger, _ := NewTestLogger(LevelInfo)

	if logger.Enabled(context.Background(), LevelDebug) {
		t.Error("debug should be disabled at info level")
	}
	if !logger.Enabled(context.Background(), LevelError) {
		t.Error("error should be enabled at info level")
	}
}
