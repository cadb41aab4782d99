package cli

import (
	"fmt"
	"time"

	"github.com/NethermindEth/defi-runner/internal/node"
	"github.com/NethermindEth/defi-runner/internal/prompter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func StopCmd(connect Connector, flags *nodeFlags) *cobra.Command {
	var timeout time.Duration
	cmd := cobra.Command{
		Use:   "stop",
		Short: "Stop the node container",
		Long:  "Stops the node container without removing it. Without --timeout the engine's default grace period applies.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []node.Option
			if timeout > 0 {
				opts = append(opts, node.WithStopTimeout(timeout))
			}
			return withSupervisor(cmd.Context(), connect, flags, opts, func(s *node.Supervisor) error {
				return s.Stop(cmd.Context())
			})
		},
	}
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Time to wait for the daemon to exit before it is killed")
	return &cmd
}

func RemoveCmd(connect Connector, flags *nodeFlags, p prompter.Prompter) *cobra.Command {
	var ignoreMissing, yes bool
	cmd := cobra.Command{
		Use:   "rm",
		Short: "Force-remove the node container",
		Long:  "Removes the node container, stopping it first if it is running. The data directory is kept.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				ok, err := p.Confirm(fmt.Sprintf("Remove container %s? The data directory is kept.", flags.name))
				if err != nil {
					return err
				}
				if !ok {
					log.Info("Removal cancelled")
					return nil
				}
			}
			policy := node.RemoveStrict
			if ignoreMissing {
				policy = node.RemoveIgnoreMissing
			}
			return withSupervisor(cmd.Context(), connect, flags, []node.Option{node.WithRemovePolicy(policy)}, func(s *node.Supervisor) error {
				return s.Remove(cmd.Context())
			})
		},
	}
	cmd.Flags().BoolVar(&ignoreMissing, "ignore-missing", false, "Succeed if the container does not exist")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Skip the confirmation prompt")
	return &cmd
}
