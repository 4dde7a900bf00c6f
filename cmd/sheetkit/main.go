// sheetkit arranges sticker designs on print sheets and exports the result
// for proofing, printing, and contour cutting.
package main

import "github.com/stickerlab/sheetkit/cmd/sheetkit/cmd"

func main() {
	cmd.Execute()
}
