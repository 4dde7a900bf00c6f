package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stickerlab/sheetkit/internal/catalog"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog <catalog-file>",
	Short: "Inspect a sticker catalog file",
	Long: `Import a catalog file (.csv, .xlsx, .json or .dxf) and report every
record with its placement eligibility, plus any import problems.

DXF cut files import one sticker per closed contour, sized by its
bounding box.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalog,
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}

func runCatalog(cmd *cobra.Command, args []string) error {
	result := catalog.LoadFile(args[0])

	for _, w := range result.Warnings {
		fmt.Printf("warning: %s\n", w)
	}
	for _, e := range result.Errors {
		fmt.Printf("error: %s\n", e)
	}
	if len(result.Warnings)+len(result.Errors) > 0 {
		fmt.Println()
	}

	if len(result.Stickers) == 0 {
		return fmt.Errorf("no stickers imported from %s", args[0])
	}

	fmt.Printf("%-10s %-28s %-16s %s\n", "ID", "NAME", "SIZE (MM)", "PLACEABLE")
	for _, st := range result.Stickers {
		size := fmt.Sprintf("%.1f x %.1f", st.WidthMm, st.HeightMm)
		placeable := "yes"
		if !st.HasPrintableSize() {
			size = "-"
			placeable = "no"
		}
		fmt.Printf("%-10s %-28s %-16s %s\n", st.ID, st.Name, size, placeable)
	}

	fmt.Printf("\n%d sticker(s), %d warning(s), %d error(s)\n",
		len(result.Stickers), len(result.Warnings), len(result.Errors))
	return nil
}
