package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/stickerlab/sheetkit/internal/catalog"
	"github.com/stickerlab/sheetkit/internal/layout"
	"github.com/stickerlab/sheetkit/internal/project"
)

var (
	layoutCatalogPath string
	layoutAdds        []string
	layoutPaper       string
	layoutMarginMm    float64
	layoutGapMm       float64
	layoutName        string
	layoutOut         string
)

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Arrange stickers on a print sheet",
	Long: `Place stickers from a catalog onto a print sheet and write the
resulting layout file.

Each --add takes a sticker ID or name, optionally with a count:
  sheetkit layout -c stickers.csv --add logo:3 --add "Holo Badge" -o sheet.json`,
	RunE: runLayout,
}

func init() {
	rootCmd.AddCommand(layoutCmd)
	layoutCmd.Flags().StringVarP(&layoutCatalogPath, "catalog", "c", "",
		"sticker catalog file (.csv, .xlsx, .json or .dxf)")
	layoutCmd.Flags().StringArrayVarP(&layoutAdds, "add", "a", nil,
		"sticker to place, as id[:count] (repeatable)")
	layoutCmd.Flags().StringVar(&layoutPaper, "paper", "",
		"paper size: A4 or Letter (default from app config)")
	layoutCmd.Flags().Float64Var(&layoutMarginMm, "margin", -1,
		"sheet margin in mm (default from app config)")
	layoutCmd.Flags().Float64Var(&layoutGapMm, "gap", -1,
		"minimum sticker clearance in mm (default from app config)")
	layoutCmd.Flags().StringVar(&layoutName, "name", "", "layout name stored in the file")
	layoutCmd.Flags().StringVarP(&layoutOut, "out", "o", "", "layout file to write")
	layoutCmd.MarkFlagRequired("catalog")
	layoutCmd.MarkFlagRequired("add")
}

func runLayout(cmd *cobra.Command, args []string) error {
	appCfg, err := loadAppConfig()
	if err != nil {
		return fmt.Errorf("cannot load app config: %w", err)
	}

	cfg, err := sheetConfigFromFlags(appCfg)
	if err != nil {
		return err
	}

	cat, err := loadCatalog(layoutCatalogPath)
	if err != nil {
		return err
	}

	sheet, err := layout.NewSheet(cfg, cat)
	if err != nil {
		return err
	}
	sheet.SetViewScale(appCfg.DefaultViewScale)

	placed, failed := 0, 0
	for _, arg := range layoutAdds {
		idOrName, count, err := parseAddArg(arg)
		if err != nil {
			return err
		}
		id, err := resolveStickerID(cat, idOrName)
		if err != nil {
			return err
		}

		for i := 0; i < count; i++ {
			p, err := sheet.Add(id)
			if err != nil {
				// A failed add leaves the sheet unchanged, so the remaining
				// copies would fail the same way
				fmt.Printf("  %s: %v\n", idOrName, err)
				failed += count - i
				break
			}
			fmt.Printf("  %s -> (%.1f, %.1f)\n", idOrName, p.XMm, p.YMm)
			placed++
		}
	}

	fmt.Printf("Placed %d sticker(s)", placed)
	if failed > 0 {
		fmt.Printf(", %d failed", failed)
	}
	fmt.Printf(" | %.1f%% of printable area used\n", layout.Utilization(cfg, sheet.Placements()))

	if layoutOut != "" {
		if err := project.SaveLayout(layoutOut, project.NewLayout(layoutName, sheet)); err != nil {
			return err
		}
		fmt.Printf("Layout written to %s\n", layoutOut)

		appCfg.AddRecentLayout(layoutOut)
		if err := saveAppConfig(appCfg); err != nil {
			return fmt.Errorf("cannot update app config: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d sticker(s) could not be placed", failed)
	}
	return nil
}

// parseAddArg splits "id:count" into its parts; a bare ID means one copy.
func parseAddArg(arg string) (string, int, error) {
	id := arg
	count := 1
	if i := strings.LastIndex(arg, ":"); i >= 0 {
		n, err := strconv.Atoi(arg[i+1:])
		if err != nil || n < 1 {
			return "", 0, fmt.Errorf("invalid --add %q: count must be a positive integer", arg)
		}
		id = arg[:i]
		count = n
	}
	if id == "" {
		return "", 0, fmt.Errorf("invalid --add %q: missing sticker id", arg)
	}
	return id, count, nil
}

// resolveStickerID accepts either a sticker ID or a display name.
func resolveStickerID(cat *catalog.Catalog, idOrName string) (string, error) {
	if _, ok := cat.Sticker(idOrName); ok {
		return idOrName, nil
	}
	if st := cat.FindByName(idOrName); st != nil {
		return st.ID, nil
	}
	return "", fmt.Errorf("no sticker with id or name %q in catalog", idOrName)
}

// sheetConfigFromFlags merges the layout flags over the app-config defaults.
func sheetConfigFromFlags(appCfg project.AppConfig) (layout.SheetConfig, error) {
	cfg, err := appCfg.SheetConfig()
	if err != nil {
		return layout.SheetConfig{}, fmt.Errorf("app config: %w", err)
	}
	if layoutPaper != "" {
		paper, err := layout.ParsePaperSize(layoutPaper)
		if err != nil {
			return layout.SheetConfig{}, err
		}
		cfg.Paper = paper
	}
	if layoutMarginMm >= 0 {
		cfg.MarginMm = layoutMarginMm
	}
	if layoutGapMm >= 0 {
		cfg.GapMm = layoutGapMm
	}
	if err := cfg.Validate(); err != nil {
		return layout.SheetConfig{}, err
	}
	return cfg, nil
}
