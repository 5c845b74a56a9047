// optdemo echoes the options it was given, to show how a command line
// breaks down into matched options and values.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/MakeNowJust/heredoc"
	"github.com/anacrolix/optlist"
)

const optString = "o:n:vh"

var description = heredoc.Doc(`
	Scans its own command line with the specification "o:n:vh" and prints
	one line per matched option. Unrecognized letters and non-option
	tokens are dropped, as getopt would.
`)

var help = map[byte]string{
	'o': "an option that takes a value",
	'n': "another one, repeatable",
	'v': "a plain option",
	'h': "print this text",
}

func usage(w io.Writer) {
	optlist.WriteUsage(w, optlist.BaseName(os.Args[0]), description, optString, help)
}

func main() {
	opts := optlist.ScanArgv(optString)
	if opts.Has('h') {
		usage(os.Stdout)
		os.Exit(0)
	}
	if len(opts) == 0 {
		usage(os.Stderr)
		os.Exit(2)
	}
	for _, o := range opts {
		if o.HasValue() {
			fmt.Printf("-%c %q (value from argument %d)\n", o.Letter, o.Value, o.ArgIndex)
		} else {
			fmt.Printf("-%c\n", o.Letter)
		}
	}
}
