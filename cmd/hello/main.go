// Command hello is the smallest possible Tlenix binary: it links the core
// and nothing else, to exercise the stream and exit-status path on its own.
package main

import (
	"os"

	"github.com/tlenix/tlenix/pkg/stream"
)

func main() {
	stream.Println("hello from tlenix")
	os.Exit(0)
}
