package generator

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ops_prompt_library/logger"
	"ops_prompt_library/metrics"
)

// Agent turns a Selection into a Library with one model round trip.
type Agent struct {
	llm      LLMClient
	provider string
	timeout  time.Duration
	log      *logger.Logger
}

// AgentOption customises an Agent.
type AgentOption func(*Agent)

// WithProvider labels metrics and logs with the provider name.
func WithProvider(name string) AgentOption {
	return func(a *Agent) { a.provider = name }
}

// WithTimeout bounds each generation. Zero keeps the caller's deadline.
func WithTimeout(d time.Duration) AgentOption {
	return func(a *Agent) { a.timeout = d }
}

func WithLogger(l *logger.Logger) AgentOption {
	return func(a *Agent) {
		if l != nil {
			a.log = l
		}
	}
}

func NewAgent(llm LLMClient, opts ...AgentOption) (*Agent, error) {
	if llm == nil {
		return nil, errors.New("llm client is required")
	}
	a := &Agent{llm: llm, provider: "unknown", log: logger.Nop()}
	for _, opt := range opts {
		opt(a)
	}
	return a, nil
}

// Generate builds the prompt for sel, calls the model once and validates the reply.
func (a *Agent) Generate(ctx context.Context, sel Selection) (Library, error) {
	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	log := a.log.With("provider", a.provider, "solution", sel.Solution, "sector", sel.Sector)
	log.Info("generating library")
	start := time.Now()
	defer func() {
		metrics.GenerationDuration.WithLabelValues(a.provider).Observe(time.Since(start).Seconds())
	}()

	raw, err := a.llm.Complete(ctx, BuildLibraryPrompt(sel))
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(a.provider, metrics.OutcomeLLMError).Inc()
		log.Error("model call failed", "error", err, "duration_ms", time.Since(start).Milliseconds())
		return Library{}, fmt.Errorf("generate library: %w", err)
	}

	lib, err := PostProcess(raw)
	if err != nil {
		metrics.GenerationsTotal.WithLabelValues(a.provider, metrics.OutcomeInvalidReply).Inc()
		log.Error("model reply rejected", "error", err, "reply_bytes", len(raw))
		return Library{}, fmt.Errorf("generate library: %w", err)
	}

	metrics.GenerationsTotal.WithLabelValues(a.provider, metrics.OutcomeOK).Inc()
	log.Info("library generated",
		"categories", len(lib.MainPrompts),
		"prompts", lib.PromptCount(),
		"advanced", len(lib.AdvancedPrompts),
		"tips", len(lib.BestPractices),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	return lib, nil
}
