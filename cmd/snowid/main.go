package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	clientcmd "github.com/rzbill/snowid/internal/cmd/client"
	serverrun "github.com/rzbill/snowid/internal/cmd/server"
	cfgpkg "github.com/rzbill/snowid/internal/config"
	pebblestore "github.com/rzbill/snowid/internal/storage/pebble"
	logpkg "github.com/rzbill/snowid/pkg/log"
	"github.com/rzbill/snowid/pkg/snowid"
	"github.com/spf13/cobra"
)

func main() {
	// Respect SNOWID_LOG_LEVEL for both CLI and server start output
	level := os.Getenv("SNOWID_LOG_LEVEL")
	parsed, err := logpkg.ParseLevel(level)
	if err != nil || level == "" {
		parsed = logpkg.InfoLevel
	}
	logger := logpkg.NewLogger(
		logpkg.WithLevel(parsed),
		logpkg.WithFormatter(&logpkg.TextFormatter{}),
		logpkg.WithOutput(logpkg.NewConsoleOutput()),
	)

	// Redirect standard library logs (used by Pebble) to our logger
	logpkg.RedirectStdLog(logger)

	rootCmd := &cobra.Command{
		Use:   "snowid",
		Short: "snowid runtime CLI",
		Long:  "snowid is a single-binary id service. This CLI manages the server and basic operations.",
	}

	// server start
	serverCmd := &cobra.Command{Use: "server", Short: "Server commands"}
	serverStartCmd := &cobra.Command{
		Use:     "start",
		Short:   "Start snowid server (gRPC and HTTP)",
		Aliases: []string{"run"},
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, _ := cmd.Flags().GetString("data-dir")
			grpcAddr, _ := cmd.Flags().GetString("grpc")
			httpAddr, _ := cmd.Flags().GetString("http")
			configPath, _ := cmd.Flags().GetString("config")
			node, _ := cmd.Flags().GetInt64("node")
			fsyncMode, _ := cmd.Flags().GetString("fsync")
			fsyncIntervalMs, _ := cmd.Flags().GetInt("fsync-interval-ms")
			logLevel, _ := cmd.Flags().GetString("log-level")
			logFormat, _ := cmd.Flags().GetString("log-format")

			mode := pebblestore.FsyncModeAlways
			switch fsyncMode {
			case "never":
				mode = pebblestore.FsyncModeNever
			case "interval":
				mode = pebblestore.FsyncModeInterval
			case "always":
				mode = pebblestore.FsyncModeAlways
			default:
				return fmt.Errorf("invalid --fsync; use always|interval|never")
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			cfg := cfgpkg.Default()
			if configPath != "" {
				loaded, err := cfgpkg.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			cfgpkg.FromEnv(&cfg)
			if cmd.Flags().Changed("node") {
				cfg.NodeID = node
			}
			if logLevel != "" {
				_ = os.Setenv("SNOWID_LOG_LEVEL", logLevel)
			}
			if logFormat != "" {
				_ = os.Setenv("SNOWID_LOG_FORMAT", logFormat)
			}
			if err := serverrun.Run(ctx, serverrun.Options{
				DataDir:       dataDir,
				GRPCAddr:      grpcAddr,
				HTTPAddr:      httpAddr,
				Fsync:         mode,
				FsyncInterval: time.Duration(fsyncIntervalMs) * time.Millisecond,
				Config:        cfg,
			}); err != nil {
				return fmt.Errorf("server error: %w", err)
			}
			// brief delay to allow logs flush
			time.Sleep(100 * time.Millisecond)
			return nil
		},
	}
	serverStartCmd.Flags().String("data-dir", "", "Data directory (if not specified, uses OS-specific application data directory)")
	serverStartCmd.Flags().String("grpc", ":50051", "gRPC listen address")
	serverStartCmd.Flags().String("http", ":8080", "HTTP listen address")
	serverStartCmd.Flags().String("config", "", "Config file path (json or yaml)")
	serverStartCmd.Flags().Int64("node", cfgpkg.AutoNodeID, "Pin the node id instead of leasing one")
	serverStartCmd.Flags().String("fsync", "always", "Fsync mode: always|interval|never")
	serverStartCmd.Flags().Int("fsync-interval-ms", 5, "When --fsync=interval, group-commit window in ms (default 5)")
	serverStartCmd.Flags().String("log-level", os.Getenv("SNOWID_LOG_LEVEL"), "Log level: debug|info|warn|error")
	serverStartCmd.Flags().String("log-format", os.Getenv("SNOWID_LOG_FORMAT"), "Log format: text|json (default text)")
	serverCmd.AddCommand(serverStartCmd)
	rootCmd.AddCommand(serverCmd)

	// decode: purely local, no server required
	decodeCmd := &cobra.Command{
		Use:   "decode <id>",
		Short: "Decode an id locally using the default layout",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			asBase62, _ := cmd.Flags().GetBool("base62")
			var id uint64
			if v, err := strconv.ParseUint(args[0], 10, 64); err == nil && !asBase62 {
				id = v
			} else {
				v, err := snowid.DecodeBase62(args[0])
				if err != nil {
					return err
				}
				id = v
			}
			layout := snowid.DefaultLayout()
			ts, node, seq := layout.Decompose(id)
			enc := json.NewEncoder(cmd.OutOrStdout())
			return enc.Encode(map[string]any{
				"id":        strconv.FormatUint(id, 10),
				"base62":    snowid.EncodeBase62(id),
				"timestamp": ts,
				"wallMs":    layout.EpochMs() + int64(ts),
				"node":      node,
				"sequence":  seq,
			})
		},
	}
	decodeCmd.Flags().Bool("base62", false, "Treat the argument as base62 even if it is all digits")
	rootCmd.AddCommand(decodeCmd)

	// id/nodes/journal commands (migrated into internal/cmd/client)
	root := clientcmd.NewRoot()
	for _, c := range root.Commands() {
		rootCmd.AddCommand(c)
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
