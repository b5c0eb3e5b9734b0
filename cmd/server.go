package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/resume-radar/internal/server"
	"github.com/ziadkadry99/resume-radar/internal/store"
)

var serverAddr string

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the resume analysis API server",
	Long:  `Starts the REST API that accepts PDF uploads, runs the AI analysis, and serves the stored history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if serverAddr != "" {
			cfg.APIAddr = serverAddr
		}

		analyzer, err := buildAnalyzer(cfg)
		if err != nil {
			return err
		}

		dbPath := filepath.Join(cfg.DataDir, "resumes.db")
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("opening database: %w", err)
		}
		defer st.Close()

		srv := server.New(server.Config{
			Addr:     cfg.APIAddr,
			DataDir:  cfg.DataDir,
			AllowAll: true,
		}, st, analyzer)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down server...")
			srv.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "resume-radar server v%s starting on %s\n", Version, cfg.APIAddr)
		fmt.Fprintf(os.Stderr, "  Provider: %s (%s)\n", cfg.Provider, cfg.Model)
		fmt.Fprintf(os.Stderr, "  Database: %s\n", dbPath)

		return srv.Start()
	},
}

func init() {
	serverCmd.Flags().StringVar(&serverAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(serverCmd)
}
