package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var annotateCmd = &cobra.Command{
	Use:   "annotate <trade-id>",
	Short: "Set the notes and tags on a trade",
	Long: `Annotate replaces the notes and tag set on one trade, identified by
its id as shown in trade listings. Both fields are replaced wholesale;
pass --tags multiple times (or comma separated) to attach several tags,
omit it to clear them.`,
	Args: cobra.ExactArgs(1),
	RunE: runAnnotate,
}

var (
	annotateNotes string
	annotateTags  []string
)

func init() {
	rootCmd.AddCommand(annotateCmd)
	annotateCmd.Flags().StringVarP(&annotateNotes, "notes", "n", "", "free-form note text")
	annotateCmd.Flags().StringSliceVarP(&annotateTags, "tags", "t", nil, "tags to attach")
}

func runAnnotate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	store, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	tags := annotateTags
	if tags == nil {
		tags = []string{}
	}
	if err := store.UpdateAnnotations(args[0], annotateNotes, tags); err != nil {
		return err
	}
	fmt.Println("Trade updated")
	return nil
}
