package client

import (
	"github.com/spf13/cobra"
)

// NewRoot constructs a root Cobra command for the snowid client.
// It registers the id, nodes and journal command groups.
func NewRoot() *cobra.Command {
	root := &cobra.Command{
		Use:   "snowid",
		Short: "snowid client commands",
	}
	root.AddCommand(NewIDCommand())
	root.AddCommand(NewNodesCommand())
	root.AddCommand(NewJournalCommand())
	return root
}
