package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary pointers into random readable names. Runs and
// generators print as something like "WittyMarmot" instead of an address,
// which makes traces of a simplification pass much easier to follow. Names
// are memoized forever, which leaks, but only if you actually use them.

var names map[interface{}]string

func init() {
	names = make(map[interface{}]string)
	// Names are handed out in order of demand, so make them nondeterministic
	// as a reminder that the same name never means the same thing between
	// runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if reflect.ValueOf(obj).IsNil() {
		return "Ø"
	}

	if name, ok := names[obj]; ok {
		return name
	}
	name := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	names[obj] = name
	return name
}
