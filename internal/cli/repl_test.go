// SPDX-License-Identifier: MIT

package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepl(t *testing.T) {
	path := filepath.Join(t.TempDir(), "output.txt")
	input := strings.Join([]string{
		"2 10 0",
		"0 10 0",
		"1 2",
		"3 x 1",
		"2 10 1 " + path,
		"q",
		"3 10 1",
	}, "\n")

	out, _, err := execute(t, input, "repl", "--quiet")
	require.NoError(t, err)
	want := strings.Join([]string{
		evenDecimal,
		"Error [InvalidModulus]: cannot divide by zero or a negative number",
		"",
		"Invalid number of arguments",
		"",
		`base "x": input restricted to integers`,
		"",
		"Regex written to '" + path + "'",
		"",
	}, "\n")
	assert.Equal(t, want, out)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "^([02468]|[13579]+[02468])*[13579]+$", string(data))
}

func TestReplPromptAndEOF(t *testing.T) {
	out, _, err := execute(t, "1 10 0\n", "repl")
	require.NoError(t, err)
	assert.Equal(t, replPrompt+"^[0-9]*$\n"+replPrompt, out)
}
