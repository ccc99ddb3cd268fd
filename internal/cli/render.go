package cli

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func writeJSON(cmd *cobra.Command, data []byte) error {
	_, err := fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return err
}

var startTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseStartTime accepts RFC3339 or a handful of shorter local-time forms.
func parseStartTime(s string) (time.Time, error) {
	for _, layout := range startTimeLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q (want e.g. 2006-01-02 15:04)", s)
}

// splitShellLine splits a shell line on spaces, honoring single and double
// quotes so names like "Acme Corp" survive as one argument.
func splitShellLine(line string) []string {
	var args []string
	var current strings.Builder
	var quote rune
	inArg := false

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '\'' || r == '"':
			quote = r
			inArg = true
		case r == ' ' || r == '\t':
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}
	if inArg {
		args = append(args, current.String())
	}
	return args
}
