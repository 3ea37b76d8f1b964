package dbg

import (
	"fmt"
	"reflect"
	"strings"

	petname "github.com/dustinkirkland/golang-petname"
)

// Readable names for jobs and other values in step traces. A pointer printed
// as 0xc000123450 is hard to follow across a few hundred trace lines; a name
// like "BraveOtter" is not. Names are handed out lazily in order of demand and
// are random, so the same name does not refer to the same job between runs.

func init() {
	petname.NonDeterministicMode()
}

// Namer remembers the name it gave every object. It grows with every object
// it names, so keep one per trace rather than one per process.
type Namer struct {
	memo map[interface{}]string
}

func NewNamer() *Namer {
	return &Namer{memo: make(map[interface{}]string)}
}

func (n *Namer) Name(obj interface{}) string {
	if isNil(obj) {
		return "Ø"
	}

	if r, ok := n.memo[obj]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	n.memo[obj] = r
	return r
}

// Len is the number of objects named so far.
func (n *Namer) Len() int {
	return len(n.memo)
}

var global = NewNamer()

// Name uses a process-wide Namer, which leaks every object it has named. This
// is fine for debugging sessions.
func Name(obj interface{}) string {
	return global.Name(obj)
}

func isNil(obj interface{}) bool {
	if obj == nil {
		return true
	}
	v := reflect.ValueOf(obj)
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		return v.IsNil()
	}
	return false
}
