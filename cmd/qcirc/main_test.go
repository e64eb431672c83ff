package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qcircuit/algorithms"
	"github.com/katalvlaran/qcircuit/circuit"
)

func run(t *testing.T, args ...string) string {
	t.Helper()
	var out bytes.Buffer
	app := newApp(log.New(io.Discard))
	app.Writer = &out
	require.NoError(t, app.Run(append([]string{"qcirc", "--seed", "7"}, args...)))

	return out.String()
}

func TestPaper_TruthTable(t *testing.T) {
	out := run(t, "paper", "--method", "sv")
	for _, row := range []string{"001110", "011001", "100101", "110001"} {
		assert.Contains(t, out, row)
	}
	assert.Contains(t, out, "state-vector")
}

func TestGrover_FindsMarked(t *testing.T) {
	out := run(t, "grover", "--qubits", "2", "--marked", "3")
	assert.Contains(t, out, "measured=3")
	assert.Contains(t, out, "bits=11")
}

func TestGrover_CostLimit(t *testing.T) {
	app := newApp(log.New(io.Discard))
	app.Writer = io.Discard
	err := app.Run([]string{"qcirc", "grover", "--qubits", "6", "--marked", "13", "--max-cost", "100"})
	assert.ErrorIs(t, err, algorithms.ErrTooLarge)
}

func TestShor_Factors(t *testing.T) {
	assert.Contains(t, run(t, "shor", "--number", "12"), "12 = 2 × 2 × 3")
	assert.Contains(t, run(t, "shor", "--number", "15"), "15 = 3 × 5")
}

func TestGates_ListsCatalogue(t *testing.T) {
	out := run(t, "gates")
	for _, name := range []string{"H/1", "CNOT/2", "T/3", "QFT/2", "R/1"} {
		assert.Contains(t, out, name)
	}
	assert.NotContains(t, out, "false")
}

func TestParseMethod(t *testing.T) {
	for in, want := range map[string]circuit.Method{
		"":             circuit.MethodAuto,
		"auto":         circuit.MethodAuto,
		"SOH":          circuit.MethodSumOverHistories,
		"sv":           circuit.MethodStateVector,
		"2":            circuit.MethodStateVector,
		"state-vector": circuit.MethodStateVector,
	} {
		got, err := parseMethod(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := parseMethod("magic")
	assert.ErrorIs(t, err, circuit.ErrUnknownMethod)
}

func TestBadLogLevel(t *testing.T) {
	app := newApp(log.New(io.Discard))
	app.Writer = io.Discard
	assert.Error(t, app.Run([]string{"qcirc", "--log-level", "loud", "gates"}))
}
