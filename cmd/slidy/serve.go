package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/benwh1/slidy/internal/platform/tui"
)

var (
	flagServeAddress     string
	flagServeHostKey     string
	flagServeDBPath      string
	flagServeIdleTimeout int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start SSH server for remote play",
	Long: `Start an SSH server that serves solve sessions to remote clients.
Anyone who can reach the address gets the same interactive screen as
'slidy play', with the shared solve history a tab away.

Examples:
  slidy serve
  slidy serve --ssh :2222
  slidy serve --ssh :2222 --db /var/lib/slidy/history.db

Then connect with:
  ssh localhost -p 23234`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg := tui.DefaultSSHServerConfig()
		cfg.Address = flagServeAddress
		cfg.HostKeyPath = flagServeHostKey
		cfg.DBPath = flagServeDBPath
		cfg.IdleTimeout = time.Duration(flagServeIdleTimeout) * time.Minute
		cfg.Session = loadConfig().Play

		server, err := tui.NewSSHServer(cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("Starting slidy SSH server on %s\n", server.Addr())
		fmt.Println("Connect with: ssh localhost -p 23234")
		fmt.Println("Press Ctrl+C to stop")

		if err := server.ListenAndServe(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddress, "ssh", ":23234", "SSH server address")
	serveCmd.Flags().StringVar(&flagServeHostKey, "host-key", "", "Path to SSH host key (auto-generated if empty)")
	serveCmd.Flags().StringVar(&flagServeDBPath, "db", "~/.slidy/history.db", "Path to solve history database")
	serveCmd.Flags().IntVar(&flagServeIdleTimeout, "idle-timeout", 30, "Idle timeout in minutes")
}
