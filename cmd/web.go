package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/resume-radar/internal/client"
	"github.com/ziadkadry99/resume-radar/internal/web"
)

var webAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Start the resume analyzer web UI",
	Long:  `Starts the web interface. It talks to a running resume-radar API server, so start that first (or point api_base_url at a remote one).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if webAddr != "" {
			cfg.WebAddr = webAddr
		}

		orch := web.NewOrchestrator(client.New(cfg.APIBaseURL))
		ui := web.New(cfg.WebAddr, orch)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		go func() {
			<-ctx.Done()
			fmt.Fprintln(os.Stderr, "\nShutting down web UI...")
			ui.Shutdown(context.Background())
		}()

		fmt.Fprintf(os.Stderr, "resume-radar web UI v%s starting on %s\n", Version, cfg.WebAddr)
		fmt.Fprintf(os.Stderr, "  Backend: %s\n", cfg.APIBaseURL)

		return ui.Start()
	},
}

func init() {
	webCmd.Flags().StringVar(&webAddr, "addr", "", "listen address (overrides config)")
	rootCmd.AddCommand(webCmd)
}
