package quill

import (
	"context"
	"io"
)

// Config controls the safety limits an embedder places around a script run.
// Neither field changes the output of a terminating program within quota;
// both exist purely as a hosted-interpreter backstop (spec §5, §11).
type Config struct {
	StepQuota      int
	RecursionLimit int
}

// Engine holds a Config and compiles source into runnable Scripts. It is
// safe to share a single Engine across many Compile calls; it carries no
// mutable state of its own.
type Engine struct {
	config Config
}

// NewEngine constructs an Engine, filling in zero fields with defaults.
func NewEngine(cfg Config) *Engine {
	if cfg.StepQuota <= 0 {
		cfg.StepQuota = 500_000
	}
	if cfg.RecursionLimit <= 0 {
		cfg.RecursionLimit = 256
	}
	return &Engine{config: cfg}
}

// Script is a parsed, not-yet-executed program tied to the source text it
// came from (retained for diagnostic code frames).
type Script struct {
	source string
	root   Statement
	engine *Engine
}

// Compile lexes and parses source, returning a *RuntimeError with Kind
// LexError or ParseError on failure.
func (e *Engine) Compile(source string) (*Script, error) {
	root, err := ParseProgram(source)
	if err != nil {
		return nil, err
	}
	return &Script{source: source, root: root, engine: e}, nil
}

// Run executes the script's top-level statements against a fresh root
// scope, writing any `print` output to out. ctx.Done() is checked once
// before execution begins so a caller can cancel a queued run; the
// evaluator itself has no internal cancellation points since a single
// Run call carries no observable concurrency (spec §5).
func (s *Script) Run(ctx context.Context, out io.Writer) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}
	execCtx := NewContext(out)
	execCtx.stepQuota = s.engine.config.StepQuota
	execCtx.recursionLimit = s.engine.config.RecursionLimit
	scope := NewScope()
	_, _, err := s.root.Execute(scope, execCtx)
	return err
}

// Source returns the text the script was compiled from, for diagnostics.
func (s *Script) Source() string { return s.source }
