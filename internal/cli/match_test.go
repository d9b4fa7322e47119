// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchThreeDecimal(t *testing.T) {
	out, _, err := execute(t, "", "--format", "json", "match", "3", "10", "1", "1", "4", "7", "10", "13", "0", "2", "3")
	require.NoError(t, err)

	var resp struct {
		Data MatchOutput `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	want := map[string]bool{"1": true, "4": true, "7": true, "10": true, "13": true, "0": false, "2": false, "3": false}
	require.Len(t, resp.Data.Verdicts, len(want))
	for _, v := range resp.Data.Verdicts {
		assert.Equal(t, want[v.Numeral], v.Regexp, v.Numeral)
		assert.True(t, v.agree(), v.Numeral)
	}
}

func TestMatchText(t *testing.T) {
	out, _, err := execute(t, "", "match", "2", "16", "1", "FF", "", "10")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ff\tmatch\t(residue 1)", lines[1])
	assert.Equal(t, "\tno match\t(residue 0)", lines[2])
	assert.Equal(t, "10\tno match\t(residue 0)", lines[3])
}

func TestMatchBadNumeral(t *testing.T) {
	_, _, err := execute(t, "", "match", "3", "10", "1", "1z")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, _, err = execute(t, "", "match", "3", "2", "1", "12")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestNumeralDigits(t *testing.T) {
	d, err := numeralDigits("0a9", 16)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 10, 9}, d)

	d, err = numeralDigits("", 2)
	require.NoError(t, err)
	assert.Empty(t, d)

	_, err = numeralDigits("2", 2)
	assert.Error(t, err)
}
