package optlist

import "os"

// Scan matches the tokens of args against optString and returns every
// recognized option in the order encountered. args[0] is taken to be the
// program name and is not scanned. Tokens that do not begin with '-', a
// bare "-", and letters absent from optString are skipped without error;
// positional arguments do not appear in the result. Scan never mutates
// args, holds no state between calls, and is safe to call concurrently
// over distinct inputs.
func Scan(args []string, optString string) Options {
	s := scanner{
		args:      args,
		optString: optString,
	}
	s.scan()
	return s.opts
}

// ScanArgv scans the process argument vector.
func ScanArgv(optString string) Options {
	return Scan(os.Args, optString)
}

// scanner holds the cursor for one scan: ind is the current token, sp the
// offset within it. The leading '-' is never examined as an option letter,
// so sp starts at 1.
type scanner struct {
	args      []string
	optString string
	ind       int
	sp        int
	opts      Options
}

func (s *scanner) scan() {
	for s.ind = 1; s.ind < len(s.args); s.ind++ {
		for s.sp = 1; s.scanning(); s.sp++ {
			if !s.scanLetter() {
				break
			}
		}
	}
}

// scanning reports whether the current token has characters left to
// interpret at the current offset.
func (s *scanner) scanning() bool {
	tok := s.args[s.ind]
	return s.sp < len(tok) && tok[0] == '-'
}

// scanLetter handles one character of the current token. It returns false
// when scanning of the token is finished: a value-taking option ends its
// token whether or not a value turned up.
func (s *scanner) scanLetter() bool {
	c := s.args[s.ind][s.sp]
	i, ok := matchOpt(s.optString, c)
	if !ok {
		// Unrecognized letters are skipped in place, getopt style.
		return true
	}
	opt := Option{
		Letter:   c,
		ArgIndex: NoIndex,
	}
	if !takesValue(s.optString, i) {
		s.opts = append(s.opts, opt)
		return true
	}
	if s.sp+1 < len(s.args[s.ind]) {
		// Attached form: the rest of the token is the value.
		opt.Value = s.args[s.ind][s.sp+1:]
		opt.ArgIndex = s.ind
	} else if s.ind+1 < len(s.args) {
		// Separated form: the next token, taken verbatim, is the value and
		// is consumed.
		s.ind++
		opt.Value = s.args[s.ind]
		opt.ArgIndex = s.ind
	}
	// Neither form available means the option ends the command line. It is
	// still reported, with no value.
	s.opts = append(s.opts, opt)
	return false
}
