package schema

import (
	"reflect"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
)

// fieldIndex maps json tag names to struct field indexes, one entry per struct type.
var fieldIndex = xsync.NewMapOf[reflect.Type, map[string][]int]()

func structFields(t reflect.Type) map[string][]int {
	idx, _ := fieldIndex.LoadOrCompute(t, func() map[string][]int {
		out := make(map[string][]int, t.NumField())
		indexStruct(t, nil, out)
		return out
	})
	return idx
}

func indexStruct(t reflect.Type, parent []int, out map[string][]int) {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		path := append(append([]int(nil), parent...), i)

		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && sf.Tag.Get("json") == "" {
			indexStruct(sf.Type, path, out)
			continue
		}
		if !sf.IsExported() {
			continue
		}

		name, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if name == "-" {
			continue
		}
		if name == "" {
			name = sf.Name
		}
		if _, exists := out[name]; !exists {
			out[name] = path
		}
	}
}
