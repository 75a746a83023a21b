package quill

import (
	"context"
	"strings"
	"testing"
)

func TestEngineCompileAndRun(t *testing.T) {
	engine := NewEngine(Config{})
	script, err := engine.Compile("print 1 + 1\n")
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	var out strings.Builder
	if err := script.Run(context.Background(), &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if want := "2\n"; out.String() != want {
		t.Fatalf("got %q, want %q", out.String(), want)
	}
}

func TestEngineCompileSurfacesParseError(t *testing.T) {
	engine := NewEngine(Config{})
	_, err := engine.Compile("class :\n")
	if err == nil {
		t.Fatalf("expected a parse error")
	}
	rtErr, ok := err.(*RuntimeError)
	if !ok || rtErr.Kind != ErrParse {
		t.Fatalf("expected ParseError, got %v", err)
	}
}

func TestEngineStepQuotaStopsRunawayLoop(t *testing.T) {
	// The language has no loop construct, but unbounded recursion is
	// equally runaway; a tight step quota must still terminate it.
	engine := NewEngine(Config{StepQuota: 50})
	script, err := engine.Compile(`class Loop:
  def go(self, n):
    return self.go(n)

l = Loop()
l.go(1)
`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	var out strings.Builder
	err = script.Run(context.Background(), &out)
	if err == nil {
		t.Fatalf("expected the step quota to stop infinite recursion")
	}
	rtErr, ok := err.(*RuntimeError)
	if !ok || rtErr.Kind != ErrQuotaExceeded {
		t.Fatalf("expected QuotaExceeded, got %v", err)
	}
}

func TestEngineRecursionLimitStopsDeepRecursion(t *testing.T) {
	engine := NewEngine(Config{RecursionLimit: 10, StepQuota: 100000})
	script, err := engine.Compile(`class Loop:
  def go(self, n):
    return self.go(n)

l = Loop()
l.go(1)
`)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	var out strings.Builder
	err = script.Run(context.Background(), &out)
	rtErr, ok := err.(*RuntimeError)
	if !ok || rtErr.Kind != ErrQuotaExceeded {
		t.Fatalf("expected QuotaExceeded from recursion limit, got %v", err)
	}
}

func TestEngineDefaultsAreSaneWhenUnset(t *testing.T) {
	engine := NewEngine(Config{})
	if engine.config.StepQuota <= 0 {
		t.Fatalf("expected a positive default step quota")
	}
	if engine.config.RecursionLimit <= 0 {
		t.Fatalf("expected a positive default recursion limit")
	}
}
