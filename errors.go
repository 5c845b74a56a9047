package optlist

// userError is a mistake on the command line: the person invoking the
// program can fix it.
type userError struct {
	msg string
}

func (ue userError) Error() string {
	return ue.msg
}

// logicError is a mistake in the command struct handed to the binding
// layer: the program's author has to fix it.
type logicError struct {
	msg string
}

func (le logicError) Error() string {
	return le.msg
}
