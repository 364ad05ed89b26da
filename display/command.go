// Package display renders command results for humans with pterm, or as JSON
// when --json is set.
package display

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/teranos/headsmith/errors"
)

// ShouldOutputJSON determines if a command should output JSON based on its flags
func ShouldOutputJSON(cmd *cobra.Command) bool {
	if cmd == nil {
		return false
	}

	// Check if --json flag was explicitly set on the command
	if cmd.Flags().Lookup("json") != nil {
		if jsonFlag, _ := cmd.Flags().GetBool("json"); jsonFlag {
			return true
		}
	}

	// Check global --json flag
	if flag := cmd.Root().PersistentFlags().Lookup("json"); flag != nil {
		if globalFlag, _ := cmd.Root().PersistentFlags().GetBool("json"); globalFlag {
			return true
		}
	}

	return false
}

// OutputJSON marshals v with MarshalJSON and prints it to w
func OutputJSON(w io.Writer, v interface{}) error {
	data, err := MarshalJSON(v)
	if err != nil {
		return errors.Wrap(err, "failed to marshal JSON")
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}
