package canon

import (
	"reflect"
	"strings"

	"github.com/zoobzio/sentinel"
)

func init() {
	// Register the field naming tag with sentinel
	sentinel.Tag("canon")
}

// structField describes how one struct field becomes an object member.
type structField struct {
	name      string
	index     []int
	omitEmpty bool
}

// embedded is a struct type reached through anonymous fields.
type embedded struct {
	typ   reflect.Type
	index []int
}

// structFields lists the members of a struct type in declaration order.
// Untagged embedded structs are flattened breadth first, so a shallower
// field hides a deeper one with the same name; at equal depth the first
// declared field wins.
func structFields(rt reflect.Type) []structField {
	var fields []structField
	names := make(map[string]bool)
	visited := map[reflect.Type]bool{rt: true}

	current := []embedded{{typ: rt}}
	for len(current) > 0 {
		var next []embedded
		for _, e := range current {
			meta := structMetadata(e.typ)
			for _, fm := range meta.Fields {
				index := append(append([]int{}, e.index...), fm.Index...)
				tag := fieldTag(fm)
				if tag == "-" {
					continue
				}
				name, opts := splitTag(tag)

				sf := e.typ.Field(fm.Index[0])
				if sf.Anonymous && name == "" {
					t := fm.ReflectType
					if fm.Kind == sentinel.KindPointer {
						t = t.Elem()
					}
					if t.Kind() == reflect.Struct {
						if !visited[t] {
							visited[t] = true
							next = append(next, embedded{typ: t, index: index})
						}
						continue
					}
				}
				if !sf.IsExported() {
					continue
				}

				if name == "" {
					name = fm.Name
				}
				if names[name] {
					continue
				}
				names[name] = true
				fields = append(fields, structField{
					name:      name,
					index:     index,
					omitEmpty: hasOption(opts, "omitempty"),
				})
			}
		}
		current = next
	}
	return fields
}

// structMetadata scans a struct type. Unexported fields are kept so that
// exported fields of unexported embedded structs can be promoted.
func structMetadata(rt reflect.Type) sentinel.Metadata {
	spec := sentinel.Metadata{
		TypeName:    rt.Name(),
		PackageName: rt.PkgPath(),
		Fields:      make([]sentinel.FieldMetadata, 0, rt.NumField()),
	}

	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() && !sf.Anonymous {
			continue
		}

		fm := sentinel.FieldMetadata{
			Name:        sf.Name,
			Type:        sf.Type.String(),
			ReflectType: sf.Type,
			Index:       sf.Index,
			Tags:        namingTags(sf.Tag),
		}

		switch sf.Type.Kind() {
		case reflect.Struct:
			fm.Kind = sentinel.KindStruct
		case reflect.Ptr:
			fm.Kind = sentinel.KindPointer
		case reflect.Slice, reflect.Array:
			fm.Kind = sentinel.KindSlice
		case reflect.Map:
			fm.Kind = sentinel.KindMap
		case reflect.Interface:
			fm.Kind = sentinel.KindInterface
		default:
			fm.Kind = sentinel.KindScalar
		}

		spec.Fields = append(spec.Fields, fm)
	}

	return spec
}

// namingTags extracts the tags that name a field.
func namingTags(tag reflect.StructTag) map[string]string {
	tags := make(map[string]string, 2)
	for _, key := range []string{"canon", "json"} {
		if val, ok := tag.Lookup(key); ok {
			tags[key] = val
		}
	}
	return tags
}

// fieldTag prefers the canon tag over the json tag.
func fieldTag(fm sentinel.FieldMetadata) string {
	if val, ok := fm.Tags["canon"]; ok {
		return val
	}
	return fm.Tags["json"]
}

func splitTag(tag string) (name, opts string) {
	name, opts, _ = strings.Cut(tag, ",")
	return name, opts
}

func hasOption(opts, option string) bool {
	for opts != "" {
		var opt string
		opt, opts, _ = strings.Cut(opts, ",")
		if opt == option {
			return true
		}
	}
	return false
}
