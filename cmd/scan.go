package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"mvdan.cc/xurls/v2"
)

var scanCmd = &cobra.Command{
	Use:   "scan [file]",
	Short: "List URLs found in a document and flag the on-site ones",
	Long: `Extract every URL from a document and report which ones point at the
configured site. On-site absolute URLs are candidates for relativization.
Reads from the given file, or from stdin when no file is provided.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}

		content, err := readInput(args)
		if err != nil {
			return err
		}

		for _, found := range xurls.Relaxed().FindAllString(string(content), -1) {
			marker := "external"
			if resolver.IsSiteURL(found) {
				marker = "on-site"
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s\n", marker, found)
		}
		return nil
	},
}
