package generator

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ops_prompt_library/logger"
	"ops_prompt_library/metrics"
)

type stubLLM struct {
	reply  string
	err    error
	got    Prompt
	called int
}

func (s *stubLLM) Complete(ctx context.Context, p Prompt) (string, error) {
	s.called++
	s.got = p
	if s.err != nil {
		return "", s.err
	}
	return s.reply, nil
}

type blockingLLM struct{}

func (blockingLLM) Complete(ctx context.Context, _ Prompt) (string, error) {
	<-ctx.Done()
	return "", ctx.Err()
}

func TestNewAgentRequiresClient(t *testing.T) {
	_, err := NewAgent(nil)
	assert.Error(t, err)
}

func TestAgentGenerate(t *testing.T) {
	stub := &stubLLM{reply: validReply}
	agent, err := NewAgent(stub, WithProvider("stub-ok"), WithLogger(logger.NewTest(t)))
	require.NoError(t, err)

	sel := Selection{Solution: "Vibe Coding", Sector: "Salud"}
	lib, err := agent.Generate(context.Background(), sel)
	require.NoError(t, err)

	assert.Equal(t, 1, stub.called)
	assert.Contains(t, stub.got.User, "Sector empresarial: Salud")
	assert.Equal(t, "La IA reduce el Lead Time.", lib.Context)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.GenerationsTotal.WithLabelValues("stub-ok", metrics.OutcomeOK)))
}

func TestAgentGenerateModelError(t *testing.T) {
	boom := errors.New("upstream 503")
	agent, err := NewAgent(&stubLLM{err: boom}, WithProvider("stub-err"))
	require.NoError(t, err)

	_, err = agent.Generate(context.Background(), DefaultSelection())
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.GenerationsTotal.WithLabelValues("stub-err", metrics.OutcomeLLMError)))
}

func TestAgentGenerateBadReply(t *testing.T) {
	agent, err := NewAgent(&stubLLM{reply: `{"context":"x"}`}, WithProvider("stub-bad"))
	require.NoError(t, err)

	_, err = agent.Generate(context.Background(), DefaultSelection())
	assert.ErrorIs(t, err, ErrSchemaMismatch)
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.GenerationsTotal.WithLabelValues("stub-bad", metrics.OutcomeInvalidReply)))
}

func TestAgentGenerateTimeout(t *testing.T) {
	agent, err := NewAgent(blockingLLM{}, WithTimeout(20*time.Millisecond))
	require.NoError(t, err)

	_, err = agent.Generate(context.Background(), DefaultSelection())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
