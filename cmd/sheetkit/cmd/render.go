package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stickerlab/sheetkit/internal/project"
	"github.com/stickerlab/sheetkit/internal/render"
)

var (
	renderURL   string
	renderToken string
)

var renderCmd = &cobra.Command{
	Use:   "render <layout-file>",
	Short: "Submit a layout to a PDF render service",
	Long: `Send the layout to the render service and print the returned
document handles. The service holds the sticker artwork; the request
carries only identities, geometry, and the sheet parameters.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)
	renderCmd.Flags().StringVar(&renderURL, "url", "",
		"render service endpoint (default from app config)")
	renderCmd.Flags().StringVar(&renderToken, "token", "",
		"bearer token for the render service")
}

func runRender(cmd *cobra.Command, args []string) error {
	l, err := project.LoadLayout(args[0])
	if err != nil {
		return err
	}
	if len(l.Placements) == 0 {
		return fmt.Errorf("layout has no placements")
	}

	url := renderURL
	if url == "" {
		appCfg, err := loadAppConfig()
		if err != nil {
			return fmt.Errorf("cannot load app config: %w", err)
		}
		url = appCfg.RenderServiceURL
	}
	if url == "" {
		return fmt.Errorf("no render service URL: pass --url or set render_service_url in the app config")
	}

	svc := render.NewHTTPService(url)
	if renderToken != "" {
		svc.SetAuthToken(renderToken)
	}

	fmt.Printf("Submitting %d placement(s) to %s\n", len(l.Placements), url)
	result, err := svc.Render(cmd.Context(), render.NewRequest(l.Config, l.Placements))
	if err != nil {
		return err
	}

	fmt.Printf("PDF URL:       %s\n", result.PDFURL)
	fmt.Printf("PDF public ID: %s\n", result.PDFPublicID)
	return nil
}
