package optlist

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strings"

	"github.com/bradfitz/iter"
	"github.com/huandu/xstrings"
	"github.com/pkg/errors"
)

// flagSpec is one struct field exposed as an option letter.
type flagSpec struct {
	letter byte
	value  reflect.Value
	help   string
}

// Bool fields are plain options, everything else needs a value.
func (me flagSpec) takesValue() bool {
	return me.value.Kind() != reflect.Bool
}

// fieldLetter derives an option letter from a field name: the first letter
// of its snake_cased form.
func fieldLetter(fieldName string) byte {
	return xstrings.ToSnakeCase(fieldName)[0]
}

func foreachStructField(_struct reflect.Value, f func(fv reflect.Value, sf reflect.StructField) (stop bool)) {
	t := _struct.Type()
	for i := range iter.N(t.NumField()) {
		if f(_struct.Field(i), t.Field(i)) {
			break
		}
	}
}

// structFlags flattens cmd's fields into flag specs. Nested structs
// recurse; every leaf field must be settable from an option value.
func structFlags(cmd interface{}) (flags []flagSpec, err error) {
	v := reflect.ValueOf(cmd)
	if v.Kind() != reflect.Ptr || v.IsNil() || v.Elem().Kind() != reflect.Struct {
		return nil, logicError{fmt.Sprintf("cmd must be a struct pointer, got %T", cmd)}
	}
	err = addStructFlags(&flags, v.Elem())
	return
}

func addStructFlags(flags *[]flagSpec, st reflect.Value) (err error) {
	foreachStructField(st, func(f reflect.Value, sf reflect.StructField) (stop bool) {
		if valueMarshaler(f) != nil {
			err = addFlag(flags, f, sf)
			return err != nil
		}
		if f.Kind() == reflect.Struct {
			err = addStructFlags(flags, f)
			return err != nil
		}
		err = logicError{fmt.Sprintf("field %s has bad type %v", sf.Name, f.Type())}
		return true
	})
	return
}

func addFlag(flags *[]flagSpec, f reflect.Value, sf reflect.StructField) error {
	var letter byte
	if tag := sf.Tag.Get("opt"); tag != "" {
		if len(tag) != 1 || tag[0] == ':' || tag[0] == '-' {
			return logicError{fmt.Sprintf("bad opt tag on %s: %q", sf.Name, tag)}
		}
		letter = tag[0]
	} else {
		letter = fieldLetter(sf.Name)
	}
	for _, g := range *flags {
		if g.letter == letter {
			return logicError{fmt.Sprintf("option letter %q defined more than once", string(letter))}
		}
	}
	*flags = append(*flags, flagSpec{
		letter: letter,
		value:  f,
		help:   sf.Tag.Get("help"),
	})
	return nil
}

func flagsOptString(flags []flagSpec) string {
	var b strings.Builder
	for _, f := range flags {
		b.WriteByte(f.letter)
		if f.takesValue() {
			b.WriteByte(':')
		}
	}
	return b.String()
}

// OptString derives a scan specification from cmd's fields: one letter per
// field, with ':' appended for fields that take a value. Letters come from
// the field's `opt` tag, or failing that the first letter of its
// snake_cased name.
func OptString(cmd interface{}) (string, error) {
	flags, err := structFlags(cmd)
	if err != nil {
		return "", err
	}
	return flagsOptString(flags), nil
}

// Bind applies a scan result to cmd. Bool fields are set true per
// occurrence; other fields are set through their marshaler, with repeated
// occurrences appending to slice fields. A value-taking option that turned
// up without a value is an error here, even though the scanner itself
// reports it without complaint.
func Bind(cmd interface{}, opts Options) error {
	flags, err := structFlags(cmd)
	if err != nil {
		return err
	}
	return bindFlags(flags, opts)
}

func bindFlags(flags []flagSpec, opts Options) error {
	for _, o := range opts {
		f, ok := findFlag(flags, o.Letter)
		if !ok {
			continue
		}
		if !f.takesValue() {
			f.value.SetBool(true)
			continue
		}
		if !o.HasValue() {
			return userError{fmt.Sprintf("option -%c requires a value", o.Letter)}
		}
		if err := valueMarshaler(f.value).marshal(f.value, o.Value); err != nil {
			return errors.Wrapf(err, "setting option -%c", o.Letter)
		}
	}
	return nil
}

func findFlag(flags []flagSpec, letter byte) (flagSpec, bool) {
	for _, f := range flags {
		if f.letter == letter {
			return f, true
		}
	}
	return flagSpec{}, false
}

type runner struct {
	program     string
	description string
	exitOnError bool
	helpFlag    bool
}

func (r *runner) writeUsage(w io.Writer, flags []flagSpec, optString string, helpInjected bool) {
	help := make(map[byte]string, len(flags)+1)
	for _, f := range flags {
		help[f.letter] = f.help
	}
	if helpInjected {
		help['h'] = "print this help"
	}
	WriteUsage(w, r.program, r.description, optString, help)
}

// Run scans args with a specification derived from cmd and binds the
// result. The returned Options carry the occurrence order and source
// indexes that the struct alone cannot.
func Run(cmd interface{}, args []string, opts ...runOpt) (Options, error) {
	r := runner{program: "program"}
	if len(args) > 0 {
		r.program = BaseName(args[0])
	}
	for _, o := range opts {
		o(&r)
	}
	flags, err := structFlags(cmd)
	if err != nil {
		return nil, err
	}
	optString := flagsOptString(flags)
	// -h is only reserved when no field claimed it.
	_, hTaken := findFlag(flags, 'h')
	injectHelp := r.helpFlag && !hTaken
	if injectHelp {
		optString += "h"
	}
	scanned := Scan(args, optString)
	if injectHelp && scanned.Has('h') {
		r.writeUsage(os.Stdout, flags, optString, true)
		os.Exit(0)
	}
	err = bindFlags(flags, scanned)
	if err != nil {
		if r.exitOnError {
			fmt.Fprintf(os.Stderr, "%s: %s\n", r.program, err)
			os.Exit(2)
		}
		return nil, err
	}
	return scanned, nil
}
