package pages

import (
	"fmt"
	"reflect"
)

// argRegistry holds the values injected into page methods, keyed by type.
type argRegistry map[reflect.Type]reflect.Value

func (args argRegistry) addArg(v any) error {
	if v == nil {
		return nil
	}
	typ := reflect.TypeOf(v)
	if _, ok := args[typ]; ok {
		return fmt.Errorf("duplicate type %s in args registry", typ)
	}
	args[typ] = reflect.ValueOf(v)
	return nil
}

// getArg finds a value for typ. Pointer and value forms of a registered type
// are interchangeable, and interface types match any registered value that
// implements them.
func (args argRegistry) getArg(typ reflect.Type) (reflect.Value, bool) {
	if v, ok := args[typ]; ok {
		return v, true
	}
	if typ.Kind() == reflect.Ptr {
		if v, ok := args[typ.Elem()]; ok {
			pv := reflect.New(typ.Elem())
			pv.Elem().Set(v)
			return pv, true
		}
	} else if v, ok := args[reflect.PointerTo(typ)]; ok && !v.IsNil() {
		return v.Elem(), true
	}
	if typ.Kind() == reflect.Interface {
		for t, v := range args {
			if t.Implements(typ) {
				return v, true
			}
		}
	}
	return reflect.Value{}, false
}
