package optlist

import (
	"net"
	"net/url"
	"reflect"
	"time"
)

var typeMarshalFuncs = map[reflect.Type]func(settee reflect.Value, arg string) error{}

// addMarshalFunc registers f, a func(string) (T, error) or func(string) T,
// as the marshaler for T.
func addMarshalFunc(f interface{}) {
	v := reflect.ValueOf(f)
	setType := v.Type().Out(0)
	typeMarshalFuncs[setType] = func(settee reflect.Value, arg string) error {
		out := v.Call([]reflect.Value{reflect.ValueOf(arg)})
		settee.Set(out[0])
		if len(out) > 1 {
			if i := out[1].Interface(); i != nil {
				return i.(error)
			}
		}
		return nil
	}
}

func init() {
	addMarshalFunc(func(s string) (*url.URL, error) {
		return url.Parse(s)
	})
	addMarshalFunc(func(s string) (*net.TCPAddr, error) {
		return net.ResolveTCPAddr("tcp", s)
	})
	addMarshalFunc(func(s string) (time.Duration, error) {
		return time.ParseDuration(s)
	})
	addMarshalFunc(func(s string) net.IP {
		return net.ParseIP(s)
	})
}
