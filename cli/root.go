package cli

import (
	"context"

	"github.com/NethermindEth/defi-runner/internal/engine"
	"github.com/NethermindEth/defi-runner/internal/locker"
	"github.com/NethermindEth/defi-runner/internal/node"
	"github.com/NethermindEth/defi-runner/internal/prompter"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

// Connector opens the container engine connection used by a command.
type Connector func(ctx context.Context) (*engine.Client, error)

// nodeFlags are the flags shared by every command to identify the node.
type nodeFlags struct {
	image   string
	name    string
	dataDir string
	debug   bool
}

func (f *nodeFlags) handle() (node.Handle, error) {
	return node.NewHandle(f.image, f.name, f.dataDir)
}

func RootCmd(connect Connector, fs afero.Fs, l locker.Locker, p prompter.Prompter) *cobra.Command {
	flags := &nodeFlags{}
	cmd := cobra.Command{
		Use:   "defi-runner",
		Short: "Run a DeFiChain node in a container",
		Long: `Runs a single containerized DeFiChain daemon: pulls its image, starts it with
a host data directory mounted at /data, follows its logs and reports its
block height until interrupted, then removes the container.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if flags.debug {
				log.SetLevel(log.DebugLevel)
			}
		},
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.image, "image", node.DefaultImage, "Node image reference")
	pf.StringVar(&flags.name, "name", node.DefaultName, "Name of the node container")
	pf.StringVar(&flags.dataDir, "datadir", "defi-data", "Host directory mounted as the node's data directory")
	pf.BoolVar(&flags.debug, "debug", false, "Enable debug logging")

	cmd.AddCommand(
		RunCmd(connect, fs, l, flags),
		StopCmd(connect, flags),
		RemoveCmd(connect, flags, p),
		HeightCmd(connect, flags),
		LogsCmd(connect, flags),
	)
	cmd.CompletionOptions.DisableDefaultCmd = true
	return &cmd
}

// withSupervisor connects to the engine, runs fn with a Supervisor for the
// node selected by flags and closes the connection afterwards.
func withSupervisor(ctx context.Context, connect Connector, flags *nodeFlags, opts []node.Option, fn func(*node.Supervisor) error) error {
	h, err := flags.handle()
	if err != nil {
		return err
	}
	client, err := connect(ctx)
	if err != nil {
		return err
	}
	defer closeEngine(client)
	return fn(node.NewSupervisor(h, client, opts...))
}

func closeEngine(client *engine.Client) {
	if err := client.Close(); err != nil {
		log.WithError(err).Debug("Closing engine connection")
	}
}
