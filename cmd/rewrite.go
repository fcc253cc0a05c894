package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/quillcms/wayfind/pkg/htmlrewrite"
)

// fs is swappable so command tests can run on an in-memory filesystem.
var fs afero.Fs = afero.NewOsFs()

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [file]",
	Short: "Absolutize relative href/src references in an HTML fragment",
	Long: `Absolutize relative href and src attribute values in an HTML fragment
against the configured site URL. Reads from the given file, or from stdin
when no file is provided.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}

		html, err := readInput(args)
		if err != nil {
			return err
		}

		itemURL, _ := cmd.Flags().GetString("item-url")
		assetsOnly, _ := cmd.Flags().GetBool("assets-only")
		if itemURL == "" {
			itemURL = resolver.SiteURL(false)
		}

		out, _, err := htmlrewrite.AbsolutizeURLs(string(html), resolver.SiteURL(false), itemURL, htmlrewrite.Options{
			AssetsOnly:        assetsOnly,
			StaticImagePrefix: resolver.StaticImagePrefix(),
		})
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), out)
		return nil
	},
}

func init() {
	rewriteCmd.Flags().String("item-url", "", "base URL for values that are not slash-rooted (defaults to the site URL)")
	rewriteCmd.Flags().Bool("assets-only", false, "only rewrite values under the static image prefix")
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(os.Stdin)
	}
	return afero.ReadFile(fs, args[0])
}
