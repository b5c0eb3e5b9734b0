package cmd

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/resume-radar/internal/client"
)

var uploadCmd = &cobra.Command{
	Use:   "upload <file.pdf> [more.pdf ...]",
	Short: "Upload one or more PDF resumes for analysis",
	Long:  `Uploads each PDF to the API server for analysis. Files that fail validation or analysis are reported but do not stop the rest of the batch.`,
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c := client.New(cfg.APIBaseURL)

		bar := progressbar.NewOptions(len(args),
			progressbar.OptionSetDescription("Analyzing resumes"),
			progressbar.OptionSetWriter(os.Stderr),
			progressbar.OptionShowCount(),
			progressbar.OptionClearOnFinish(),
		)

		failures := 0
		for _, path := range args {
			data, err := os.ReadFile(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				failures++
				bar.Add(1)
				continue
			}

			rec, err := c.SubmitResume(cmd.Context(), path, data)
			if err != nil {
				fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
				failures++
				bar.Add(1)
				continue
			}
			bar.Add(1)

			fmt.Printf("%s -> resume #%d", path, rec.ID)
			if rec.Name != "" {
				fmt.Printf(" (%s)", rec.Name)
			}
			fmt.Printf(", rated %.1f/10\n", rec.ResumeRating.Float())
			if verbose && len(rec.ImprovementAreas) > 0 {
				for _, line := range rec.ImprovementAreas {
					fmt.Printf("    %s\n", line)
				}
			}
		}

		if failures > 0 {
			return fmt.Errorf("%d of %d uploads failed", failures, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(uploadCmd)
}
