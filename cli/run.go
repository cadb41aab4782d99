package cli

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/NethermindEth/defi-runner/internal/data"
	"github.com/NethermindEth/defi-runner/internal/locker"
	"github.com/NethermindEth/defi-runner/internal/metrics"
	"github.com/NethermindEth/defi-runner/internal/node"
	"github.com/NethermindEth/defi-runner/internal/poller"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

type runOptions struct {
	pollInterval   time.Duration
	startupTimeout time.Duration
	pullPolicy     string
	removePolicy   string
	metricsAddr    string
}

func RunCmd(connect Connector, fs afero.Fs, l locker.Locker, flags *nodeFlags) *cobra.Command {
	var opts runOptions
	cmd := cobra.Command{
		Use:   "run",
		Short: "Run the node until interrupted",
		Long: `Pulls the node image, starts the node container with the data directory
mounted, forwards its output and logs its block height whenever it increases.
On SIGINT or SIGTERM the container is force-removed and the command exits.`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			if opts.pollInterval <= 0 {
				return fmt.Errorf("%w: --poll-interval must be positive", ErrInvalidFlag)
			}
			if opts.startupTimeout <= 0 {
				return fmt.Errorf("%w: --startup-timeout must be positive", ErrInvalidFlag)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			pullPolicy, err := node.ParsePullPolicy(opts.pullPolicy)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidFlag, err)
			}
			removePolicy, err := node.ParseRemovePolicy(opts.removePolicy)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidFlag, err)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runNode(ctx, connect, fs, l, flags, opts,
				node.WithPullPolicy(pullPolicy),
				node.WithRemovePolicy(removePolicy),
			)
		},
	}
	cmd.Flags().DurationVar(&opts.pollInterval, "poll-interval", poller.DefaultInterval, "Interval between block height queries")
	cmd.Flags().DurationVar(&opts.startupTimeout, "startup-timeout", 20*time.Second, "Time to wait for the container to report running")
	cmd.Flags().StringVar(&opts.pullPolicy, "pull-policy", string(node.PullAlways), `When to pull the image: "always" or "missing"`)
	cmd.Flags().StringVar(&opts.removePolicy, "remove-policy", string(node.RemoveStrict), `Removal of an absent container: "strict" fails, "ignore-missing" succeeds`)
	cmd.Flags().StringVar(&opts.metricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address, e.g. :9100")
	return &cmd
}

// runNode supervises the node until ctx is done, then removes the container.
func runNode(ctx context.Context, connect Connector, fs afero.Fs, l locker.Locker, flags *nodeFlags, opts runOptions, nodeOpts ...node.Option) error {
	dataDir, err := data.NewDataDir(flags.dataDir, fs, l)
	if err != nil {
		return err
	}
	if err := dataDir.Prepare(); err != nil {
		return err
	}
	defer func() {
		if rErr := dataDir.Release(); rErr != nil {
			log.WithError(rErr).Warn("Releasing data directory lock")
		}
	}()

	h, err := node.NewHandle(flags.image, flags.name, dataDir.Path())
	if err != nil {
		return err
	}
	client, err := connect(ctx)
	if err != nil {
		return err
	}
	defer closeEngine(client)

	sup := node.NewSupervisor(h, client, nodeOpts...)
	logger := log.WithField("container", h.Name())

	logs, err := sup.Start(ctx)
	if err != nil {
		return errors.Join(err, cleanup(sup))
	}
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := logs.Forward(context.Background(), logger); err != nil {
			logger.WithError(err).Warn("Node output stream failed")
		}
	}()
	defer func() {
		logs.Close()
		wg.Wait()
	}()

	if err := sup.WaitRunning(ctx, opts.startupTimeout); err != nil {
		return errors.Join(err, cleanup(sup))
	}

	pollerOpts := []poller.Option{
		poller.WithInterval(opts.pollInterval),
		poller.WithReporter(poller.LogReporter{Logger: logger}),
	}
	var server *http.Server
	if opts.metricsAddr != "" {
		m, err := metrics.New(prometheus.NewRegistry(), h.Name())
		if err != nil {
			return errors.Join(err, cleanup(sup))
		}
		pollerOpts = append(pollerOpts, poller.WithReporter(m), poller.WithPollHook(m.ObservePoll))
		server = &http.Server{Addr: opts.metricsAddr, Handler: m.Handler(), ReadHeaderTimeout: 5 * time.Second}
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.WithField("addr", opts.metricsAddr).Info("Serving metrics")
			if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.WithError(err).Error("Metrics server failed")
			}
		}()
	}

	pollCtx, cancelPoll := context.WithCancel(ctx)
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = poller.New(sup, pollerOpts...).Run(pollCtx)
	}()

	<-ctx.Done()
	logger.Info("Stopping and removing node")
	cancelPoll()
	if server != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.WithError(err).Debug("Shutting down metrics server")
		}
	}
	return sup.Remove(context.Background())
}

// cleanup removes a container left behind by a failed startup.
func cleanup(sup *node.Supervisor) error {
	if sup.State() == node.StateUncreated {
		return nil
	}
	return sup.Remove(context.Background())
}
