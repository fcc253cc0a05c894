package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/quillcms/wayfind/pkg/urlutils"
)

var resolveCmd = &cobra.Command{
	Use:   "resolve <context>",
	Short: "Resolve a context reference to a URL",
	Long: `Resolve a context reference to a URL. The context is one of home, admin,
api, image, nav, relative, or a named path such as sitemap_xsl. Unknown
contexts resolve to the root path.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		resolver, err := newResolver()
		if err != nil {
			return err
		}

		name := ""
		if len(args) > 0 {
			name = args[0]
		}

		ctx, err := contextFromFlags(cmd, name)
		if err != nil {
			return err
		}

		absolute, _ := cmd.Flags().GetBool("absolute")

		resolved, err := resolver.URLFor(ctx, absolute)
		if err != nil {
			return err
		}

		fmt.Println(resolved)
		return nil
	},
}

func init() {
	resolveCmd.Flags().Bool("absolute", false, "produce an absolute URL")
	resolveCmd.Flags().Bool("secure", false, "force the https scheme")
	resolveCmd.Flags().Bool("no-trailing-slash", false, "suppress the trailing slash on the absolute home URL")
	resolveCmd.Flags().String("path", "", "relative path for the relative context")
	resolveCmd.Flags().String("image", "", "stored image path for the image context")
	resolveCmd.Flags().String("nav", "", "stored navigation URL for the nav context")
	resolveCmd.Flags().String("api-version", "", "API version for the api context")
	resolveCmd.Flags().String("api-type", "", "API version type (admin, content, members)")
	resolveCmd.Flags().Bool("cors", false, "strip the scheme for cross-origin API callers")
}

// contextFromFlags maps the command line onto a context variant.
func contextFromFlags(cmd *cobra.Command, name string) (urlutils.Context, error) {
	secure, _ := cmd.Flags().GetBool("secure")

	switch name {
	case "home":
		noTrailingSlash, _ := cmd.Flags().GetBool("no-trailing-slash")
		return urlutils.Home{Secure: secure, NoTrailingSlash: noTrailingSlash}, nil
	case "admin":
		return urlutils.Admin{Secure: secure}, nil
	case "api":
		version, _ := cmd.Flags().GetString("api-version")
		versionType, _ := cmd.Flags().GetString("api-type")
		cors, _ := cmd.Flags().GetBool("cors")
		return urlutils.API{Version: version, VersionType: versionType, CORS: cors, Secure: secure}, nil
	case "image":
		path, _ := cmd.Flags().GetString("image")
		return urlutils.Image{Path: path, Secure: secure}, nil
	case "nav":
		navURL, _ := cmd.Flags().GetString("nav")
		return urlutils.Nav{URL: navURL, Secure: secure}, nil
	case "relative":
		path, _ := cmd.Flags().GetString("path")
		return urlutils.RelativeURL{Path: path, Secure: secure}, nil
	case "":
		return nil, nil
	default:
		return urlutils.NamedPath{Name: name}, nil
	}
}
