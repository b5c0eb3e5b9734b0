package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/ziadkadry99/resume-radar/internal/client"
	"github.com/ziadkadry99/resume-radar/internal/render"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List analyzed resumes",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c := client.New(cfg.APIBaseURL)

		records, err := c.FetchHistory(cmd.Context(), true)
		if err != nil {
			return fmt.Errorf("fetching history: %w", err)
		}
		if len(records) == 0 {
			fmt.Println("No resumes analyzed yet.")
			return nil
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(w, "ID\tFILE\tNAME\tEMAIL\tUPLOADED\tRATING")
		for _, rec := range records {
			fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%.1f/10\n",
				rec.ID, rec.Filename, rec.Name, rec.Email,
				render.FormatTimestamp(rec.UploadDate), rec.ResumeRating.Float())
		}
		return w.Flush()
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
