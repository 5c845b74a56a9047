package optlist

// NoIndex marks an option with no associated value. It is distinct from
// every valid argument-vector index.
const NoIndex = -1

// Option is one recognized option occurrence.
type Option struct {
	// Letter is the matched specification letter.
	Letter byte
	// Value is the option's value, or "" when none was found.
	Value string
	// ArgIndex is the index into the scanned argument slice where Value was
	// found, or NoIndex when there is no value.
	ArgIndex int
}

// HasValue reports whether a value was found for the option. A found value
// always has a valid source index, so the index sentinel decides.
func (me Option) HasValue() bool {
	return me.ArgIndex != NoIndex
}

// Options is a scan result, in command-line order.
type Options []Option

// Get returns the value of the first occurrence of letter.
func (me Options) Get(letter byte) (string, bool) {
	for _, o := range me {
		if o.Letter == letter {
			return o.Value, true
		}
	}
	return "", false
}

// Has reports whether letter occurred at all.
func (me Options) Has(letter byte) bool {
	_, ok := me.Get(letter)
	return ok
}

// Values returns the value of every occurrence of letter that has one.
func (me Options) Values(letter byte) (ret []string) {
	for _, o := range me {
		if o.Letter == letter && o.HasValue() {
			ret = append(ret, o.Value)
		}
	}
	return
}
