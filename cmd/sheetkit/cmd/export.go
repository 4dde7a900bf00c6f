package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stickerlab/sheetkit/internal/catalog"
	"github.com/stickerlab/sheetkit/internal/export"
	"github.com/stickerlab/sheetkit/internal/project"
)

var (
	exportOut         string
	exportCatalogPath string
	exportProfileName string
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export a layout file to production formats",
	Long:  `Commands for exporting saved layout files to proof, cut, and tracking formats.`,
}

var exportPDFCmd = &cobra.Command{
	Use:   "pdf <layout-file>",
	Short: "Write a true-size proof PDF",
	Long: `Write the layout proof: page one is the paper at 1:1 scale with every
sticker in position, page two a summary with the render job QR code.`,
	Args: cobra.ExactArgs(1),
	RunE: runExportPDF,
}

var exportDXFCmd = &cobra.Command{
	Use:   "dxf <layout-file>",
	Short: "Write cut contours as DXF",
	Long: `Write the sticker outlines as a DXF drawing for a contour cutter,
prepared per the selected cutter profile (layer names, overcut, mirroring).

Built-in profiles: ` + strings.Join(export.CutterProfileNames(), ", ") + `.
Custom profiles load from ~/.sheetkit/profiles.yaml.`,
	Args: cobra.ExactArgs(1),
	RunE: runExportDXF,
}

var exportXLSXCmd = &cobra.Command{
	Use:   "xlsx <layout-file>",
	Short: "Write a placements spreadsheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runExportXLSX,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.AddCommand(exportPDFCmd)
	exportCmd.AddCommand(exportDXFCmd)
	exportCmd.AddCommand(exportXLSXCmd)

	exportCmd.PersistentFlags().StringVarP(&exportOut, "out", "o", "",
		"output file (default: layout file with the target extension)")
	exportCmd.PersistentFlags().StringVarP(&exportCatalogPath, "catalog", "c", "",
		"sticker catalog for display names")
	exportDXFCmd.Flags().StringVar(&exportProfileName, "profile", "",
		"cutter profile (default from app config)")
}

// exportTargets loads the layout named in args and resolves the catalog and
// output path shared by every export subcommand.
func exportTargets(args []string, ext string) (project.Layout, *catalog.Catalog, string, error) {
	l, err := project.LoadLayout(args[0])
	if err != nil {
		return project.Layout{}, nil, "", err
	}

	cat := catalog.New()
	if exportCatalogPath != "" {
		cat, err = loadCatalog(exportCatalogPath)
		if err != nil {
			return project.Layout{}, nil, "", err
		}
	}

	out := exportOut
	if out == "" {
		out = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ext
	}
	return l, cat, out, nil
}

func runExportPDF(cmd *cobra.Command, args []string) error {
	l, cat, out, err := exportTargets(args, ".pdf")
	if err != nil {
		return err
	}

	if err := export.WriteProofPDF(out, l.Config, l.Placements, cat); err != nil {
		return err
	}
	fmt.Printf("Proof written to %s (%d placements)\n", out, len(l.Placements))
	return nil
}

func runExportDXF(cmd *cobra.Command, args []string) error {
	l, _, out, err := exportTargets(args, ".dxf")
	if err != nil {
		return err
	}

	name := exportProfileName
	if name == "" {
		appCfg, err := loadAppConfig()
		if err != nil {
			return fmt.Errorf("cannot load app config: %w", err)
		}
		name = appCfg.CutterProfile
	}

	custom, err := export.LoadProfiles(project.DefaultProfilesPath())
	if err != nil {
		return fmt.Errorf("cannot load cutter profiles: %w", err)
	}
	profile := export.ResolveProfile(name, custom)

	if err := export.WriteCutDXF(out, l.Config, l.Placements, profile); err != nil {
		return err
	}
	fmt.Printf("Cut contours written to %s (profile %s)\n", out, profile.Name)
	return nil
}

func runExportXLSX(cmd *cobra.Command, args []string) error {
	l, cat, out, err := exportTargets(args, ".xlsx")
	if err != nil {
		return err
	}

	if err := export.WritePlacementsXLSX(out, l.Config, l.Placements, cat); err != nil {
		return err
	}
	fmt.Printf("Spreadsheet written to %s (%d placements)\n", out, len(l.Placements))
	return nil
}
