package client

import (
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/spf13/cobra"
)

// NewJournalCommand constructs the `journal` command.
func NewJournalCommand() *cobra.Command {
	jCmd := &cobra.Command{
		Use:   "journal",
		Short: "Query the operational journal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			filter, _ := cmd.Flags().GetString("filter")
			limit, _ := cmd.Flags().GetInt("limit")
			reverse, _ := cmd.Flags().GetBool("reverse")

			q := url.Values{}
			if filter != "" {
				q.Set("filter", filter)
			}
			if limit > 0 {
				q.Set("limit", strconv.Itoa(limit))
			}
			if reverse {
				q.Set("reverse", "true")
			}
			path := "/v1/journal"
			if len(q) > 0 {
				path += "?" + q.Encode()
			}
			var out map[string]any
			if err := httpGetJSON(cmd.Context(), path, &out); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
	jCmd.Flags().StringP("filter", "f", "", `CEL filter, e.g. type == "clock_rollback"`)
	jCmd.Flags().Int("limit", 0, "Max entries to return")
	jCmd.Flags().Bool("reverse", false, "Newest entries first")
	return jCmd
}
