package cmd

import (
	"fmt"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/ziadkadry99/resume-radar/internal/client"
)

var deleteYes bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete an analyzed resume",
	Long:  `Deletes one resume and its stored analysis. Asks for confirmation unless --yes is given.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.Atoi(args[0])
		if err != nil || id <= 0 {
			return fmt.Errorf("invalid resume id %q", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		if !deleteYes {
			confirm := promptui.Prompt{
				Label:     fmt.Sprintf("Delete resume #%d? This cannot be undone", id),
				IsConfirm: true,
			}
			if _, err := confirm.Run(); err != nil {
				fmt.Println("Aborted.")
				return nil
			}
		}

		c := client.New(cfg.APIBaseURL)
		if err := c.DeleteRecord(cmd.Context(), id); err != nil {
			return fmt.Errorf("deleting resume %d: %w", id, err)
		}
		fmt.Printf("Resume #%d deleted.\n", id)
		return nil
	},
}

func init() {
	deleteCmd.Flags().BoolVarP(&deleteYes, "yes", "y", false, "skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}
