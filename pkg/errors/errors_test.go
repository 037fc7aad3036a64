package errors

import (
	"bytes"
	stderrors "errors"
	"log"
	"strings"
	"testing"
	"time"
)

func TestAutofitErrorString(t *testing.T) {
	err := &AutofitError{
		Op:   "autofit.New",
		Kind: KindConfig,
		Err:  &ConfigError{Field: "InitialOpacity", Value: 1.5, Reason: "must be within [0, 1]"},
	}
	want := "autofit.New [config]: invalid InitialOpacity 1.5: must be within [0, 1]"
	if got := err.Error(); got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestAutofitErrorUnwrap(t *testing.T) {
	cfg := &ConfigError{Field: "InitialScale", Value: -1, Reason: "negative"}
	err := &AutofitError{Op: "op", Kind: KindConfig, Err: cfg}

	var target *ConfigError
	if !stderrors.As(err, &target) {
		t.Fatal("errors.As should find the ConfigError")
	}
	if target.Field != "InitialScale" {
		t.Errorf("Field = %q, want InitialScale", target.Field)
	}
}

func TestErrorKindString(t *testing.T) {
	tests := []struct {
		kind ErrorKind
		want string
	}{
		{KindUnknown, "unknown"},
		{KindConfig, "config"},
		{KindMeasurement, "measurement"},
		{KindRender, "render"},
		{KindPanic, "panic"},
	}
	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("ErrorKind(%d).String() = %q, want %q", tt.kind, got, tt.want)
		}
	}
}

func TestSoftErrorStrings(t *testing.T) {
	stale := &StaleMeasurementError{Descriptor: "c", Current: "b", Previous: "a"}
	if got, want := stale.Error(), "stale measurement for c (current=b, previous=a)"; got != want {
		t.Errorf("StaleMeasurementError = %q, want %q", got, want)
	}
	degenerate := &DegenerateContentError{Descriptor: "x", Width: 0, Height: 12}
	if got, want := degenerate.Error(), "content x reported degenerate size 0x12"; got != want {
		t.Errorf("DegenerateContentError = %q, want %q", got, want)
	}
}

func TestPanicErrorString(t *testing.T) {
	err := &PanicError{Value: "boom", Timestamp: time.Now()}
	if got := err.Error(); got != "panic: boom" {
		t.Errorf("PanicError.Error() = %q", got)
	}
	err.Op = "host.Pump"
	if got := err.Error(); got != "panic in host.Pump: boom" {
		t.Errorf("PanicError.Error() = %q", got)
	}
}

func TestReport(t *testing.T) {
	var captured *AutofitError
	prev := SetHandler(&testHandler{onError: func(err *AutofitError) { captured = err }})
	defer SetHandler(prev)

	Report(&AutofitError{Op: "test.op", Kind: KindMeasurement, Err: stderrors.New("x")})

	if captured == nil {
		t.Fatal("expected error to be captured")
	}
	if captured.Timestamp.IsZero() {
		t.Error("expected Timestamp to be set")
	}
}

func TestRecover(t *testing.T) {
	var captured *PanicError
	prev := SetHandler(&testHandler{onPanic: func(err *PanicError) { captured = err }})
	defer SetHandler(prev)

	func() {
		defer Recover("test.recover")
		panic("intentional test panic")
	}()

	if captured == nil {
		t.Fatal("expected panic to be recovered and captured")
	}
	if captured.Op != "test.recover" || captured.Value != "intentional test panic" {
		t.Errorf("captured = %+v", captured)
	}
	if captured.StackTrace == "" {
		t.Error("expected a stack trace")
	}
}

func TestSetHandlerNil(t *testing.T) {
	prev := SetHandler(nil)
	defer SetHandler(prev)
	if _, ok := DefaultHandler.(*LogHandler); !ok {
		t.Errorf("SetHandler(nil) should set LogHandler, got %T", DefaultHandler)
	}
}

func TestLogHandler_QuietDropsMeasurement(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Logger: log.New(&buf, "", 0)}

	h.HandleError(&AutofitError{Op: "autofit.OnContentMeasured", Kind: KindMeasurement, Err: stderrors.New("stale")})
	if buf.Len() != 0 {
		t.Errorf("quiet handler logged measurement error: %q", buf.String())
	}

	h.HandleError(&AutofitError{Op: "content.Mount", Kind: KindRender, Err: stderrors.New("bad face")})
	if !strings.Contains(buf.String(), "[autofit render] content.Mount: bad face") {
		t.Errorf("unexpected log output %q", buf.String())
	}
}

func TestLogHandler_VerboseLogsMeasurement(t *testing.T) {
	var buf bytes.Buffer
	h := &LogHandler{Verbose: true, Logger: log.New(&buf, "", 0)}
	h.HandleError(&AutofitError{Op: "op", Kind: KindMeasurement, Err: stderrors.New("stale")})
	if !strings.Contains(buf.String(), "[autofit measurement] op: stale") {
		t.Errorf("unexpected log output %q", buf.String())
	}
}

type testHandler struct {
	onError func(*AutofitError)
	onPanic func(*PanicError)
}

func (h *testHandler) HandleError(err *AutofitError) {
	if h.onError != nil {
		h.onError(err)
	}
}

func (h *testHandler) HandlePanic(err *PanicError) {
	if h.onPanic != nil {
		h.onPanic(err)
	}
}
