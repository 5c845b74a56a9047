package optlist

import "github.com/dustin/go-humanize"

// Bytes sets itself from human readable byte quantities like "100GB". See
// https://godoc.org/github.com/dustin/go-humanize.
type Bytes int64

var _ Marshaler = (*Bytes)(nil)

func (me *Bytes) Marshal(s string) error {
	ui64, err := humanize.ParseBytes(s)
	if err != nil {
		return err
	}
	*me = Bytes(ui64)
	return nil
}

func (me Bytes) Int64() int64 {
	return int64(me)
}

func (me Bytes) String() string {
	return humanize.Bytes(uint64(me))
}
