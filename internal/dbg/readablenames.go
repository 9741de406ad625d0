package dbg

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	petname "github.com/dustinkirkland/golang-petname"
)

// This converts arbitrary values (triangles, edges, pointers, slices) into
// random readable names. It leaks memory but generates the names lazily, so
// it's not a problem unless you're actually printing things. It makes a pile
// of triangles in a failing test much easier to tell apart than raw vertex
// coordinates.

var (
	memo   = make(map[interface{}]string)
	memoMu sync.Mutex
)

func init() {
	// Names are handed out in order of demand, so we make them nondeterministic
	// to remind the reader that the same name doesn't refer to the same value
	// between runs.
	petname.NonDeterministicMode()
}

func Name(obj interface{}) string {
	if obj == nil {
		return "Ø"
	}
	key := obj
	switch v := reflect.ValueOf(obj); v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Chan:
		if v.IsNil() {
			return "Ø"
		}
	case reflect.Map, reflect.Slice, reflect.Func:
		if v.IsNil() {
			return "Ø"
		}
		// Not hashable, so these are named by identity
		key = refKey{v.Type(), v.Pointer()}
	default:
		if !v.Type().Comparable() {
			// Structs and arrays holding slices and such are named by content
			key = printedKey(fmt.Sprintf("%T %+v", obj, obj))
		}
	}

	memoMu.Lock()
	defer memoMu.Unlock()
	if r, ok := memo[key]; ok {
		return r
	}
	r := fmt.Sprintf("%s%s", strings.Title(petname.Adjective()), strings.Title(petname.Name()))
	memo[key] = r
	return r
}

type refKey struct {
	t reflect.Type
	p uintptr
}

type printedKey string

// Forget every name handed out so far
func Reset() {
	memoMu.Lock()
	defer memoMu.Unlock()
	memo = make(map[interface{}]string)
}
