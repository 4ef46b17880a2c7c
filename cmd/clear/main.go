// Command clear writes the ANSI sequence that resets the cursor to the
// top left and erases the visible screen.
package main

import (
	"os"

	"github.com/tlenix/tlenix/pkg/stream"
)

// clearSequence moves the cursor home (CSI H) then erases the entire
// display (CSI 2J).
const clearSequence = "\x1b[H\x1b[2J"

func main() {
	stream.Print("%s", clearSequence)
	os.Exit(0)
}
