package cmd

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/alphaquant/academy/internal/simulation"
)

func TestBar(t *testing.T) {
	assert.Equal(t, "["+strings.Repeat("░", 10)+"]", bar(0, 10))
	assert.Equal(t, "["+strings.Repeat("█", 5)+strings.Repeat("░", 5)+"]", bar(50, 10))
	assert.Equal(t, "["+strings.Repeat("█", 10)+"]", bar(100, 10))
}

func TestFollow_PrintsCompletedRun(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	r := simulation.NewRunner(simulation.Config{Step: 50, Tick: time.Millisecond, SettleDelay: time.Millisecond})
	defer r.Close()
	require.True(t, r.Start(context.Background()))

	var out bytes.Buffer
	final, err := follow(context.Background(), r, &out)
	require.NoError(t, err)
	assert.Equal(t, simulation.PhaseIdle, final.Phase)
	assert.NotNil(t, final.Results)
	assert.Contains(t, out.String(), "SIMULATION COMPLETE")
}

func TestFollow_ReportsInterruption(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	r := simulation.NewRunner(simulation.Config{Step: 1, Tick: time.Hour, SettleDelay: time.Millisecond})
	defer r.Close()
	ctx, cancel := context.WithCancel(context.Background())
	require.True(t, r.Start(ctx))
	cancel()

	var out bytes.Buffer
	final, err := follow(ctx, r, &out)
	require.ErrorIs(t, err, context.Canceled)
	assert.ErrorContains(t, err, "interrupted at 0%")
	assert.Nil(t, final.Results)
	assert.NotContains(t, out.String(), "SIMULATION COMPLETE")
}
