package client

import (
	"encoding/json"
	"fmt"
	"strconv"

	snowidv1 "github.com/rzbill/snowid/proto/gen/go/snowid/v1"
	"github.com/spf13/cobra"
)

// NewIDCommand constructs the `id` command group and subcommands.
func NewIDCommand() *cobra.Command {
	idCmd := &cobra.Command{Use: "id", Short: "Id operations"}
	idCmd.AddCommand(
		newIDGenerateCommand(),
		newIDDecomposeCommand(),
	)
	return idCmd
}

func newIDGenerateCommand() *cobra.Command {
	genCmd := &cobra.Command{
		Use:   "generate",
		Short: "Mint one or more ids",
		RunE: func(cmd *cobra.Command, _ []string) error {
			count, _ := cmd.Flags().GetInt("count")
			raw, _ := cmd.Flags().GetBool("raw")
			return withIdClient(cmd.Context(), func(c snowidv1.IdServiceClient) error {
				res, err := c.Generate(cmd.Context(), &snowidv1.GenerateRequest{Count: uint32(count)})
				if err != nil {
					return err
				}
				for _, g := range res.GetIds() {
					if raw {
						fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatUint(g.GetId(), 10))
					} else {
						fmt.Fprintln(cmd.OutOrStdout(), g.GetBase62())
					}
				}
				return nil
			})
		},
	}
	genCmd.Flags().IntP("count", "c", 1, "Number of ids to mint")
	genCmd.Flags().Bool("raw", false, "Print raw decimal ids instead of base62")
	return genCmd
}

func newIDDecomposeCommand() *cobra.Command {
	decCmd := &cobra.Command{
		Use:   "decompose <id>",
		Short: "Split an id into timestamp, node and sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asBase62, _ := cmd.Flags().GetBool("base62")
			req := &snowidv1.DecomposeRequest{}
			// All-digit strings are ambiguous; default to raw decimal and let
			// --base62 force the other reading.
			if id, err := strconv.ParseUint(args[0], 10, 64); err == nil && !asBase62 {
				req.Id = id
			} else {
				req.Base62 = args[0]
			}
			return withIdClient(cmd.Context(), func(c snowidv1.IdServiceClient) error {
				res, err := c.Decompose(cmd.Context(), req)
				if err != nil {
					return err
				}
				enc := json.NewEncoder(cmd.OutOrStdout())
				return enc.Encode(map[string]any{
					"id":        strconv.FormatUint(res.GetId(), 10),
					"base62":    res.GetBase62(),
					"timestamp": res.GetTimestamp(),
					"wallMs":    res.GetWallMs(),
					"node":      res.GetNode(),
					"sequence":  res.GetSequence(),
				})
			})
		},
	}
	decCmd.Flags().Bool("base62", false, "Treat the argument as base62 even if it is all digits")
	return decCmd
}
