package optlist

// matchOpt returns the position in optString of the first specification
// character equal to c. The scan steps over runs of ':' after each
// mismatch, so a ':' acting as a value marker is never itself a match.
// With duplicate letters the first position wins.
func matchOpt(optString string, c byte) (int, bool) {
	i := 0
	for i < len(optString) && optString[i] != c {
		i++
		for i < len(optString) && optString[i] == ':' {
			i++
		}
	}
	if i == len(optString) {
		return 0, false
	}
	return i, true
}

// takesValue reports whether the option letter at position i requires a
// value.
func takesValue(optString string, i int) bool {
	return i+1 < len(optString) && optString[i+1] == ':'
}

// forEachOpt calls f once per option letter in optString.
func forEachOpt(optString string, f func(letter byte, takesValue bool)) {
	for i := 0; i < len(optString); i++ {
		if optString[i] == ':' {
			continue
		}
		f(optString[i], takesValue(optString, i))
	}
}
