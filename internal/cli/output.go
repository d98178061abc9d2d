// SPDX-License-Identifier: MIT

package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// texter is implemented by every report for the text output format.
type texter interface {
	Text(w io.Writer) error
}

// printResult writes report to the command output in env.Output format.
func printResult(cmd *cobra.Command, env *Env, report texter) error {
	w := cmd.OutOrStdout()
	switch env.Output {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case formatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return fmt.Errorf("yaml: %w", err)
		}
		return enc.Close()
	default:
		return report.Text(w)
	}
}
