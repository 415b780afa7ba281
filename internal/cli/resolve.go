package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// resolveSnapshotID accepts a full snapshot ID or an unambiguous prefix, as
// printed by "catalog list".
func resolveSnapshotID(cmd *cobra.Command, app *App, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", fmt.Errorf("catalog ID is required")
	}

	list, err := app.Catalog.ListSnapshots(cmd.Context())
	if err != nil {
		return "", err
	}

	var matches []string
	for _, s := range list {
		if s.ID == input {
			return s.ID, nil
		}
		if strings.HasPrefix(s.ID, input) {
			matches = append(matches, s.ID)
		}
	}

	switch len(matches) {
	case 0:
		return "", fmt.Errorf("catalog not found: %q", input)
	case 1:
		return matches[0], nil
	default:
		return "", fmt.Errorf("catalog ID prefix %q is ambiguous (%d matches)", input, len(matches))
	}
}
