package optlist

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/anacrolix/missinggo/v2"
)

// WriteUsage renders a usage message for optString: a synopsis line, the
// optional description, and one row per option letter. help supplies the
// per-letter text and may be nil.
func WriteUsage(w io.Writer, program, description, optString string, help map[byte]string) {
	fmt.Fprintf(w, "Usage:\n  %s", program)
	hasOpts := false
	forEachOpt(optString, func(byte, bool) {
		hasOpts = true
	})
	if hasOpts {
		fmt.Fprintf(w, " [OPTIONS...]")
	}
	fmt.Fprintf(w, "\n")
	if description != "" {
		fmt.Fprintf(w, "\n%s\n", missinggo.Unchomp(description))
	}
	if !hasOpts {
		return
	}
	fmt.Fprintf(w, "Options:\n")
	tw := newUsageTabwriter(w)
	forEachOpt(optString, func(letter byte, takesValue bool) {
		fmt.Fprintf(tw, "  -%c", letter)
		if takesValue {
			fmt.Fprintf(tw, " VALUE")
		}
		fmt.Fprintf(tw, "\t%s\n", help[letter])
	})
	tw.Flush()
}

func newUsageTabwriter(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 8, 2, 3, ' ', 0)
}
