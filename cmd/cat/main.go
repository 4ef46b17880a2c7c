// Command cat concatenates its arguments (or stdin) to stdout, applying a
// coreutils-compatible option set: -A/-b/-E/-n/-s/-T/-v and the
// aggregations -e/-t.
package main

import (
	"os"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/tlenix/tlenix/internal/diag"
	"github.com/tlenix/tlenix/pkg/file"
	"github.com/tlenix/tlenix/pkg/stream"
)

type options struct {
	showEnds       bool
	showTabs       bool
	showNonprint   bool
	number         bool
	numberNonblank bool
	squeezeBlank   bool
}

func main() {
	log := diag.New("cat")

	showAll := pflag.BoolP("show-all", "A", false, "equivalent to -vET")
	numberNonblank := pflag.BoolP("number-nonblank", "b", false, "number nonempty output lines")
	showEnds := pflag.BoolP("show-ends", "E", false, "display $ at end of each line")
	number := pflag.BoolP("number", "n", false, "number all output lines")
	squeezeBlank := pflag.BoolP("squeeze-blank", "s", false, "suppress repeated empty output lines")
	showTabs := pflag.BoolP("show-tabs", "T", false, "display TAB characters as ^I")
	showNonprinting := pflag.BoolP("show-nonprinting", "v", false, "use ^ notation, except for LFD and TAB")
	e := pflag.BoolP("e-aggregate", "e", false, "equivalent to -vE")
	tAgg := pflag.BoolP("t-aggregate", "t", false, "equivalent to -vT")
	pflag.Parse()

	// number-nonblank always wins over plain numbering, regardless of flag
	// order.
	opts := options{
		showEnds:       *showEnds || *showAll || *e,
		showTabs:       *showTabs || *showAll || *tAgg,
		showNonprint:   *showNonprinting || *showAll || *e || *tAgg,
		number:         *number && !*numberNonblank,
		numberNonblank: *numberNonblank,
		squeezeBlank:   *squeezeBlank,
	}

	input, err := readInput(pflag.Args())
	if err != nil {
		os.Exit(diag.Fail(log, err))
	}

	stream.Print("%s", render(string(input), opts))
	os.Exit(0)
}

// stdinSymbol is the "-" convention: read standard input in place of a
// file, interspersable with real paths.
const stdinSymbol = "-"

func readInput(paths []string) ([]byte, error) {
	if len(paths) == 0 {
		return file.NewFromDescriptor(0).ReadToBytes()
	}
	var out []byte
	for _, path := range paths {
		if path == stdinSymbol {
			b, err := file.NewFromDescriptor(0).ReadToBytes()
			if err != nil {
				return nil, err
			}
			out = append(out, b...)
			continue
		}

		f, err := file.Open(path)
		if err != nil {
			return nil, err
		}
		b, err := f.ReadToBytes()
		f.Close()
		if err != nil {
			return nil, err
		}
		out = append(out, b...)
	}
	return out, nil
}

// render applies opts to text, splitting on newlines and preserving
// whether the input ended in one.
func render(text string, opts options) string {
	trailingNewline := strings.HasSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	if trailingNewline {
		lines = lines[:len(lines)-1]
	}

	var b strings.Builder
	lineNo := 0
	lastBlank := false
	for i, line := range lines {
		isBlank := line == ""

		if opts.squeezeBlank && isBlank && lastBlank {
			continue
		}
		lastBlank = isBlank

		hadCR := strings.HasSuffix(line, "\r")
		if hadCR {
			line = strings.TrimSuffix(line, "\r")
		}
		if opts.showNonprint {
			line = showNonprinting(line)
		}
		if opts.showTabs {
			line = strings.ReplaceAll(line, "\t", "^I")
		}
		if hadCR && opts.showEnds {
			line += "^M"
		} else if hadCR {
			line += "\r"
		}

		if opts.number || opts.numberNonblank {
			if !opts.numberNonblank || !isBlank {
				lineNo++
				b.WriteString(padLineNumber(lineNo))
				b.WriteByte('\t')
			}
		}

		b.WriteString(line)
		if opts.showEnds {
			b.WriteByte('$')
		}
		if i < len(lines)-1 || trailingNewline {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// showNonprinting rewrites non-printing control bytes using caret
// notation, e.g. "\x01" -> "^A", and bytes with the high bit set as
// "M-" followed by the byte with that bit cleared. Tab and the
// line-ending bytes are left for the caller's own -T/-E handling.
func showNonprinting(s string) string {
	const highBit = 0x80
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c&highBit != 0:
			b.WriteString("M-")
			b.WriteByte(c &^ highBit)
		case c == '\t':
			b.WriteByte(c)
		case c < 0x20:
			b.WriteByte('^')
			b.WriteByte(c + '@')
		case c == 0x7f:
			b.WriteString("^?")
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func padLineNumber(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 6 {
		s = " " + s
	}
	return s
}
