package optlist

import (
	"fmt"
	"reflect"

	"golang.org/x/xerrors"
)

// Marshaler is implemented by types that set themselves from an option
// value.
type Marshaler interface {
	Marshal(in string) error
}

type marshaler interface {
	marshal(v reflect.Value, s string) error
}

type marshalerMarshaler struct{}

func (marshalerMarshaler) marshal(v reflect.Value, s string) error {
	return v.Addr().Interface().(Marshaler).Marshal(s)
}

type dynamicMarshaler struct {
	f func(settee reflect.Value, arg string) error
}

func (me dynamicMarshaler) marshal(v reflect.Value, s string) error {
	return me.f(v, s)
}

// The fallback marshaler: fmt.Sscan, with recursion to append to slice
// fields so that repeated options accumulate.
type defaultMarshaler struct{}

func (defaultMarshaler) marshal(v reflect.Value, s string) error {
	if v.Kind() == reflect.Slice {
		n := reflect.New(v.Type().Elem())
		err := valueMarshaler(n.Elem()).marshal(n.Elem(), s)
		if err != nil {
			return err
		}
		v.Set(reflect.Append(v, n.Elem()))
		return nil
	}
	_, err := fmt.Sscan(s, v.Addr().Interface())
	if err != nil {
		return xerrors.Errorf("parsing %q: %w", s, err)
	}
	return nil
}

// valueMarshaler picks the marshaler for a field value, or nil when the
// type cannot be set from an option value.
func valueMarshaler(v reflect.Value) marshaler {
	if _, ok := v.Addr().Interface().(Marshaler); ok {
		return marshalerMarshaler{}
	}
	if f, ok := typeMarshalFuncs[v.Type()]; ok {
		return dynamicMarshaler{f}
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Struct:
		return nil
	}
	return defaultMarshaler{}
}
