package condition

import (
	"cmp"
	"fmt"
	"reflect"

	"github.com/dmitrymomot/conditions/pkg/logger"
)

// Comparer orders two values: negative when a < b, zero when equal and
// positive when a > b.
type Comparer[T any] func(a, b T) int

// typeInfo holds what the checks need to know about a value type. It is
// computed once per type and never changes.
type typeInfo struct {
	typ     reflect.Type
	compare func(a, b reflect.Value) int
	enum    bool
}

var (
	typeInfos   = newOnceCache[reflect.Type, *typeInfo]()
	stringerTyp = reflect.TypeFor[fmt.Stringer]()
)

func infoFor[T any]() *typeInfo {
	t := reflect.TypeFor[T]()
	return typeInfos.get(t, func() *typeInfo {
		info := &typeInfo{
			typ:     t,
			compare: orderFor(t),
			enum:    isEnumType(t),
		}
		current().logger.Debug("value type inspected",
			logger.ValueType(t.String()),
			logger.Flag("orderable", info.compare != nil),
			logger.Flag("enum", info.enum),
		)
		return info
	})
}

// DefaultComparer returns the ordering used by range and ordering checks.
//
// Selection order: a Compare(T) int method, then the built-in integer,
// float, string and bool kinds, then pointers to orderable types (nil sorts
// first) and arrays or slices of orderable elements (lexicographic).
// Other types yield ErrNotComparable.
func DefaultComparer[T any]() (Comparer[T], error) {
	info := infoFor[T]()
	if info.compare == nil {
		return nil, fmt.Errorf("%w: %s", ErrNotComparable, info.typ)
	}
	return func(a, b T) int {
		return info.compare(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
	}, nil
}

// equalFor returns the equality used by IsEqualTo: an Equal(T) bool method,
// then the default comparer, then deep equality.
func equalFor[T any](compare Comparer[T]) func(a, b T) bool {
	return func(a, b T) bool {
		aNil, bNil := isNil(a), isNil(b)
		if aNil || bNil {
			return aNil == bNil
		}
		if eq, ok := any(a).(interface{ Equal(T) bool }); ok {
			return eq.Equal(b)
		}
		if compare != nil {
			return compare(a, b) == 0
		}
		return reflect.DeepEqual(a, b)
	}
}

func orderFor(t reflect.Type) func(a, b reflect.Value) int {
	if m, ok := compareMethod(t); ok {
		compare := func(a, b reflect.Value) int {
			return int(a.Method(m).Call([]reflect.Value{b})[0].Int())
		}
		if t.Kind() == reflect.Pointer {
			return nilFirst(compare)
		}
		return compare
	}

	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b reflect.Value) int { return cmp.Compare(a.Int(), b.Int()) }
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b reflect.Value) int { return cmp.Compare(a.Uint(), b.Uint()) }
	case reflect.Float32, reflect.Float64:
		return func(a, b reflect.Value) int { return cmp.Compare(a.Float(), b.Float()) }
	case reflect.String:
		return func(a, b reflect.Value) int { return cmp.Compare(a.String(), b.String()) }
	case reflect.Bool:
		return func(a, b reflect.Value) int { return cmp.Compare(boolRank(a.Bool()), boolRank(b.Bool())) }
	case reflect.Pointer:
		elem := orderFor(t.Elem())
		if elem == nil {
			return nil
		}
		return nilFirst(func(a, b reflect.Value) int { return elem(a.Elem(), b.Elem()) })
	case reflect.Array, reflect.Slice:
		elem := orderFor(t.Elem())
		if elem == nil {
			return nil
		}
		return func(a, b reflect.Value) int {
			n := min(a.Len(), b.Len())
			for i := range n {
				if c := elem(a.Index(i), b.Index(i)); c != 0 {
					return c
				}
			}
			return cmp.Compare(a.Len(), b.Len())
		}
	}
	return nil
}

// nilFirst orders nil pointers before non-nil ones and hands two non-nil
// pointers to compare.
func nilFirst(compare func(a, b reflect.Value) int) func(a, b reflect.Value) int {
	return func(a, b reflect.Value) int {
		switch {
		case a.IsNil() && b.IsNil():
			return 0
		case a.IsNil():
			return -1
		case b.IsNil():
			return 1
		}
		return compare(a, b)
	}
}

// compareMethod reports the index of a Compare(T) int method on t.
func compareMethod(t reflect.Type) (int, bool) {
	if t.Kind() == reflect.Interface {
		return 0, false
	}
	m, ok := t.MethodByName("Compare")
	if !ok {
		return 0, false
	}
	mt := m.Type
	if mt.NumIn() != 2 || mt.In(1) != t || mt.NumOut() != 1 || mt.Out(0).Kind() != reflect.Int {
		return 0, false
	}
	return m.Index, true
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// isEnumType reports whether t looks like a Go enum: a named integer type
// with a String method, such as time.Weekday.
func isEnumType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
	default:
		return false
	}
	return t.PkgPath() != "" && t.Implements(stringerTyp)
}

// isNil reports whether v is nil, including typed nil pointers, maps,
// slices, channels and funcs.
func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func,
		reflect.Interface, reflect.UnsafePointer:
		return rv.IsNil()
	}
	return false
}
