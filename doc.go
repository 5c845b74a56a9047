// Package optlist scans a command line for getopt-style single-character
// options. A specification string names the recognized letters, with a ':'
// suffix marking options that take a value:
//
//  opts := optlist.Scan(os.Args, "a:bv")
//  for _, o := range opts {
//      switch o.Letter {
//      case 'a':
//          fmt.Println("a =", o.Value)
//      case 'b':
//          ...
//      }
//  }
//
// Scan returns every recognized option in command-line order, each with its
// value (attached, as in -avalue, or the following token, as in -a value)
// and the index of the argument the value came from. Unrecognized letters,
// bare "-" tokens and non-option tokens are skipped without complaint, the
// way traditional getopt implementations do.
//
// Programs that prefer a struct to a switch can use Run, which derives the
// specification from struct fields and binds the scanned options to them:
//
//  var cmd struct {
//      Verbose bool   `opt:"v" help:"chatty output"`
//      DataDir string `opt:"d" help:"storage directory"`
//  }
//  optlist.Run(&cmd, os.Args)
package optlist
