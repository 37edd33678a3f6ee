package querybuilder

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/jmoiron/sqlx/reflectx"
)

// modelMapper reads the same db tags sqlx uses when scanning rows back.
var modelMapper = reflectx.NewMapperFunc("db", strings.ToLower)

// InsertModel builds an INSERT from the db-tagged top-level fields of model. Fields
// without a db tag are left out; nested structs such as sql.NullInt64 bind as one value.
func InsertModel(table string, model any, suffix string) (string, []any, error) {
	value := reflect.ValueOf(model)
	for value.Kind() == reflect.Pointer {
		if value.IsNil() {
			return "", nil, fmt.Errorf("model cannot be nil")
		}
		value = value.Elem()
	}
	if value.Kind() != reflect.Struct {
		return "", nil, fmt.Errorf("model must be struct, got %s", value.Kind())
	}

	var cols []string
	var vals []any
	for _, field := range modelMapper.TypeMap(value.Type()).Index {
		if len(field.Index) != 1 || strings.TrimSpace(field.Field.Tag.Get("db")) == "" {
			continue
		}
		cols = append(cols, field.Name)
		vals = append(vals, value.Field(field.Index[0]).Interface())
	}
	if len(cols) == 0 {
		return "", nil, fmt.Errorf("model %s has no db columns", value.Type())
	}

	return InsertInto(table).
		Columns(cols...).
		Values(vals...).
		Suffix(suffix).
		ToSQL()
}
