// SPDX-License-Identifier: MIT

// Package cli implements the modregex command line: synth, estimate,
// match, verify and repl, sharing a YAML config, a tint console logger and
// text or JSON output.
package cli
