package optlist

type runOpt func(r *runner)

// Program sets the name shown in usage and error output. The default is
// derived from the scanned argument vector with BaseName.
func Program(program string) runOpt {
	return func(r *runner) {
		r.program = program
	}
}

// Description writes extra text between the usage line and the option
// help.
func Description(desc string) runOpt {
	return func(r *runner) {
		r.description = desc
	}
}

// ExitOnError prints binding errors to stderr and exits 2 instead of
// returning them.
func ExitOnError() runOpt {
	return func(r *runner) {
		r.exitOnError = true
	}
}

// HelpFlag reserves -h, unless the command struct claims it: when present
// on the command line, usage goes to stdout and the process exits 0.
func HelpFlag() runOpt {
	return func(r *runner) {
		r.helpFlag = true
	}
}
