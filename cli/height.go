package cli

import (
	"fmt"

	"github.com/NethermindEth/defi-runner/internal/node"
	"github.com/spf13/cobra"
)

func HeightCmd(connect Connector, flags *nodeFlags) *cobra.Command {
	cmd := cobra.Command{
		Use:   "height",
		Short: "Print the node's current block height",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSupervisor(cmd.Context(), connect, flags, nil, func(s *node.Supervisor) error {
				height, err := s.BlockHeight(cmd.Context())
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), height)
				return nil
			})
		},
	}
	return &cmd
}
