package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/NethermindEth/defi-runner/internal/node"
	"github.com/spf13/cobra"
)

func LogsCmd(connect Connector, flags *nodeFlags) *cobra.Command {
	cmd := cobra.Command{
		Use:   "logs",
		Short: "Follow the node's output",
		Long:  "Attaches to the running node container and prints its output until the container stops or the command is interrupted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return withSupervisor(ctx, connect, flags, nil, func(s *node.Supervisor) error {
				logs, err := s.Logs(ctx)
				if err != nil {
					return err
				}
				defer logs.Close()
				return printLogs(ctx, logs, cmd.OutOrStdout(), cmd.ErrOrStderr())
			})
		},
	}
	return &cmd
}

func printLogs(ctx context.Context, logs *node.LogStream, stdout, stderr io.Writer) error {
	for {
		rec, err := logs.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		}
		out := stdout
		if rec.Stream == node.StreamStderr {
			out = stderr
		}
		fmt.Fprintln(out, rec.Message)
	}
}
