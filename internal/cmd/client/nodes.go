package client

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

// NewNodesCommand constructs the `nodes` command group and subcommands.
func NewNodesCommand() *cobra.Command {
	nodesCmd := &cobra.Command{Use: "nodes", Short: "Node lease operations"}
	nodesCmd.AddCommand(
		newNodesListCommand(),
		newNodesReleaseCommand(),
	)
	return nodesCmd
}

func newNodesListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List node leases",
		RunE: func(cmd *cobra.Command, _ []string) error {
			var out map[string]any
			if err := httpGetJSON(cmd.Context(), "/v1/nodes", &out); err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}
}

func newNodesReleaseCommand() *cobra.Command {
	relCmd := &cobra.Command{
		Use:   "release",
		Short: "Release a node lease held by an instance",
		RunE: func(cmd *cobra.Command, _ []string) error {
			node, _ := cmd.Flags().GetUint64("node")
			instance, _ := cmd.Flags().GetString("instance")
			body := map[string]any{"node": node, "instanceId": instance}
			return httpPostJSON(cmd.Context(), "/v1/nodes/release", body, nil)
		},
	}
	relCmd.Flags().Uint64("node", 0, "Node id to release")
	relCmd.Flags().String("instance", "", "Instance id holding the lease")
	_ = relCmd.MarkFlagRequired("instance")
	return relCmd
}
