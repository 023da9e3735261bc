package cli

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"
)

func quietSpinner(ctx context.Context, msg string) (*Spinner, *bytes.Buffer) {
	var buf bytes.Buffer
	s := newSpinnerWithContext(ctx, msg)
	s.out = &buf
	return s, &buf
}

func TestSpinnerWritesMessage(t *testing.T) {
	s, buf := quietSpinner(context.Background(), "Scanning ./src...")
	s.Start()
	time.Sleep(200 * time.Millisecond)
	s.Stop()

	if !strings.Contains(buf.String(), "Scanning ./src...") {
		t.Errorf("spinner output %q should contain the message", buf.String())
	}
	// Stop cancels the spinner's own context.
	if !s.Cancelled() {
		t.Error("Cancelled() should report true after Stop")
	}
}

func TestSpinnerWithContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())

	s, _ := quietSpinner(ctx, "Rendering...")
	s.Start()
	cancel()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context cancellation")
	}
	s.Stop()
}

func TestSpinnerWithTimeout(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	s, _ := quietSpinner(ctx, "Rendering...")
	s.Start()
	time.Sleep(100 * time.Millisecond)

	if !s.Cancelled() {
		t.Error("Spinner should be cancelled after context timeout")
	}
	s.Stop()
}

func TestSpinnerStopIsIdempotent(t *testing.T) {
	s, _ := quietSpinner(context.Background(), "Scanning...")
	s.Start()

	s.Stop()
	s.Stop()
	s.Stop()
}

func TestNewSpinnerDefaultsToStderr(t *testing.T) {
	s := newSpinner("Scanning...")
	if s.out == nil {
		t.Fatal("spinner should have a writer")
	}
	s.Start()
	s.Stop()
}

func TestSpinnerStopWithError(t *testing.T) {
	s, buf := quietSpinner(context.Background(), "Rendering...")
	s.Start()
	s.StopWithError("Render failed")

	if !strings.Contains(buf.String(), "✗ Render failed") {
		t.Errorf("output %q should end with the failure line", buf.String())
	}
}

func TestSpinnerStopWithoutStart(t *testing.T) {
	s, buf := quietSpinner(context.Background(), "Scanning...")
	s.Stop()
	if buf.Len() != 0 {
		t.Errorf("a spinner that never started should print nothing, got %q", buf.String())
	}
}
