package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillcms/wayfind/internal/pkg/utils"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the version number",
	Run: func(cmd *cobra.Command, args []string) {
		version := utils.GetVersion()

		fmt.Fprintln(cmd.OutOrStdout(), "Wayfind", version.Version)
		fmt.Fprintln(cmd.OutOrStdout(), "- go/version:", version.GoVersion)
	},
}
