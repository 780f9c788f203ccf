package main

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/vovakirdan/mini-arcade/internal/platform/tui"
	"github.com/vovakirdan/mini-arcade/internal/platform/web"
	"github.com/vovakirdan/mini-arcade/internal/registry"
)

var (
	flagSSHAddr     string
	flagWebAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the arcade SSH and web servers",
	Long: `Start an SSH server and a web server that allow users to connect and play games.

Each SSH connection and each browser tab gets its own session with a game
picker. Scores are stored per-server (all users share the same leaderboard).
Pass an empty address to disable one of the servers.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.arcade/host_key

Examples:
  arcade serve                           # SSH on :23234, web on :8080
  arcade serve --ssh :2222               # Listen on port 2222
  arcade serve --web ""                  # SSH only
  arcade serve --host-key ./my_host_key  # Use specific host key
  arcade serve --db ./scores.db          # Use specific database

Users can connect with:
  ssh localhost -p 23234
  http://localhost:8080`,
	Run: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", ":23234", "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagWebAddr, "web", ":8080", "Web server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runServe(_ *cobra.Command, _ []string) {
	if err := serve(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}

func serve() error {
	if flagSSHAddr == "" && flagWebAddr == "" {
		return fmt.Errorf("nothing to serve: both --ssh and --web are empty")
	}
	if err := applyConfigs(registry.KindUnknown); err != nil {
		return err
	}

	logger, closeLog, err := newLogger("arcade", false)
	if err != nil {
		return err
	}
	defer closeLog()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	if flagSSHAddr != "" {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagSSHAddr
		cfg.HostKeyPath = flagHostKey
		cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
		cfg.Seed = flagSeed

		sshServer, err := tui.NewSSHServer(cfg, store, logger.WithPrefix("arcade-ssh"))
		if err != nil {
			return fmt.Errorf("cannot create SSH server: %w", err)
		}
		fmt.Printf("SSH:  ssh localhost -p %s\n", port(cfg.Address))
		g.Go(func() error { return sshServer.Serve(ctx) })
	}

	if flagWebAddr != "" {
		cfg := web.DefaultConfig()
		cfg.Address = flagWebAddr
		cfg.Seed = flagSeed

		webServer := web.NewServer(cfg, store, logger.WithPrefix("arcade-web"))
		fmt.Printf("Web:  http://localhost:%s\n", port(cfg.Address))
		g.Go(func() error { return webServer.Serve(ctx) })
	}

	fmt.Println("Press Ctrl+C to stop")
	return g.Wait()
}

// port returns the port part of a host:port address.
func port(addr string) string {
	if _, p, err := net.SplitHostPort(addr); err == nil {
		return p
	}
	return addr
}
