package gen

import (
	"fmt"

	"variantgen/internal/ident"
	"variantgen/internal/schema"
)

// Namespace returns the generated package name for an enum: the
// lower_snake_case transliteration of the enum name.
func Namespace(enumName string) string {
	return ident.Snake(enumName)
}

// FieldName returns the exported Go field name for the i-th field of a
// variant. Named fields are exported in CamelCase; tuple fields become
// positional F0..Fn.
func FieldName(f *schema.Field, i int) string {
	if f.Name == "" {
		return fmt.Sprintf("F%d", i)
	}

	return ident.Export(f.Name)
}
