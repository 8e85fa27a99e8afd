package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/donut-dash/internal/api"
	"github.com/vovakirdan/donut-dash/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
)

var sshCmd = &cobra.Command{
	Use:   "ssh",
	Short: "Serve terminal play over SSH",
	Long: `Start an SSH server that lets anyone play Donut Dash in their terminal.

Each SSH connection gets its own game. Runs are recorded on the shared
leaderboard under the SSH user name when it is a valid player name.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.donutdash/host_key

Examples:
  donutdash ssh                           # Listen on :23234
  donutdash ssh --listen :2222            # Listen on port 2222
  donutdash ssh --host-key ./my_host_key  # Use specific host key

Users can connect with:
  ssh alice@localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runSSH,
}

func init() {
	sshCmd.Flags().StringVar(&flagSSHAddr, "listen", ":23234", "SSH server address (host:port)")
	sshCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	sshCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes before disconnecting")
}

func runSSH(_ *cobra.Command, _ []string) {
	logger := serverLogger("donutdash-ssh")

	gameCfg, err := loadGameConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	var backend api.Backend
	b, closeBackend, err := openBackend()
	if err != nil {
		logger.Warn("could not open leaderboard, runs will not be recorded", "error", err)
	} else {
		backend = b
	}
	defer closeBackend()

	cfg := tui.DefaultSSHServerConfig()
	cfg.Address = flagSSHAddr
	cfg.HostKeyPath = flagHostKey
	cfg.IdleTimeout = time.Duration(flagIdleTimeout) * time.Minute
	cfg.Game = gameCfg
	cfg.Backend = backend
	cfg.Logger = logger

	server, err := tui.NewSSHServer(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating server: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Starting Donut Dash SSH server on %s\n", cfg.Address)
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
