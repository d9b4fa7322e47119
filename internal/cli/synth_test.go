// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const evenDecimal = "^([02468]|[13579]+[02468])*$"

func TestSynthText(t *testing.T) {
	out, _, err := execute(t, "", "synth", "2", "10", "0")
	require.NoError(t, err)
	assert.Equal(t, evenDecimal+"\n", out)
}

func TestSynthRenderFlags(t *testing.T) {
	out, _, err := execute(t, "", "synth", "--no-anchor", "2", "10", "0")
	require.NoError(t, err)
	assert.Equal(t, "([02468]|[13579]+[02468])*\n", out)

	out, _, err = execute(t, "", "synth", "--no-classes", "2", "10", "0")
	require.NoError(t, err)
	assert.Equal(t, "^(0|2|4|6|8|(1|3|5|7|9)+(0|2|4|6|8))*$\n", out)

	out, _, err = execute(t, "", "synth", "16", "16", "0")
	require.NoError(t, err)
	assert.Equal(t, "^([1-9a-f]*0)*$\n", out)
}

func TestSynthAll(t *testing.T) {
	out, _, err := execute(t, "", "synth", "--all", "--jobs", "2", "3", "2")
	require.NoError(t, err)
	g := goldie.New(t, goldie.WithFixtureDir("testdata/golden"))
	g.Assert(t, "synth_all_d3_b2", []byte(out))
}

func TestSynthJSON(t *testing.T) {
	out, _, err := execute(t, "", "--format", "json", "synth", "3", "10", "1")
	require.NoError(t, err)

	var resp struct {
		Status string      `json:"status"`
		Data   SynthOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	require.Len(t, resp.Data.Results, 1)
	res := resp.Data.Results[0]
	assert.Equal(t, 3, res.Divisor)
	assert.Equal(t, 10, res.Base)
	assert.Equal(t, 1, res.Remainder)
	assert.Equal(t, 3, res.Stats.Rounds)
	assert.Equal(t, 7, res.Stats.Steps)
	assert.NotEmpty(t, res.Regex)
}

func TestSynthOutputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")
	out, _, err := execute(t, "", "synth", "--output", path, "2", "10", "0")
	require.NoError(t, err)
	assert.Equal(t, "Regex written to '"+path+"'\n", out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, evenDecimal, string(data))
}

func TestSynthErrors(t *testing.T) {
	cases := []struct {
		name   string
		args   []string
		code   int
		stderr string
	}{
		{"zero divisor", []string{"synth", "0", "10", "0"}, ExitCommandError, "Error [InvalidModulus]"},
		{"remainder", []string{"synth", "5", "10", "5"}, ExitCommandError, "Error [RemainderOutOfRange]"},
		{"base", []string{"synth", "3", "17", "1"}, ExitCommandError, "Error [InvalidBase]"},
		{"budget", []string{"synth", "--max-nodes", "10", "7", "2", "0"}, ExitFailure, "Error [BudgetExceeded]"},
		{"steps", []string{"synth", "--max-steps", "2", "7", "2", "0"}, ExitFailure, "Error [BudgetExceeded]"},
		{"bad option", []string{"synth", "--max-nodes", "0", "3", "10", "1"}, ExitCommandError, "Error [InvalidOption]"},
		{"all budget", []string{"synth", "--all", "--max-states", "4", "5", "10"}, ExitFailure, "Error [BudgetExceeded]"},
		{"not a number", []string{"synth", "x", "10", "0"}, ExitCommandError, ""},
		{"too few", []string{"synth", "3"}, ExitCommandError, ""},
		{"all with remainder", []string{"synth", "--all", "3", "10", "1"}, ExitCommandError, ""},
		{"missing remainder", []string{"synth", "3", "10"}, ExitCommandError, ""},
		{"bad order", []string{"synth", "--order", "random", "3", "10", "1"}, ExitCommandError, ""},
		{"bad jobs", []string{"synth", "--all", "--jobs", "0", "3", "10"}, ExitCommandError, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, stderr, err := execute(t, "", tc.args...)
			require.Error(t, err)
			assert.Equal(t, tc.code, GetExitCode(err))
			assert.Contains(t, stderr, tc.stderr)
		})
	}
}

func TestSynthJSONError(t *testing.T) {
	out, _, err := execute(t, "", "--format", "json", "synth", "0", "10", "0")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "InvalidModulus", resp.Error.Code)
	assert.Equal(t, "cannot divide by zero or a negative number", resp.Error.Message)
}

func TestSynthWarnsOnRisk(t *testing.T) {
	_, stderr, err := execute(t, "", "--log-level", "warn", "synth", "--max-nodes", "100", "3", "10", "1")
	require.Error(t, err)
	assert.Contains(t, stderr, "synthesis may exceed the node budget")
	assert.Contains(t, stderr, "BudgetExceeded")
}

func TestSynthVerboseLogsRounds(t *testing.T) {
	_, stderr, err := execute(t, "", "-v", "synth", "2", "10", "0")
	require.NoError(t, err)
	assert.Contains(t, stderr, "eliminated state")
	assert.Contains(t, stderr, "synthesized")
}

func TestSynthOrders(t *testing.T) {
	for _, flags := range [][]string{{"--order", "min-degree"}, {"--no-minimize"}} {
		args := append([]string{"verify", "--length", "3"}, flags...)
		out, _, err := execute(t, "", append(args, "6", "10", "4")...)
		require.NoError(t, err, "%v", flags)
		assert.Contains(t, out, "ok:")
	}
}
