package jsonstore

import (
	_ "embed"
	"errors"
	"fmt"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed tasks.schema.json
var schemaJSON string

var taskListSchema = jsonschema.MustCompileString("tasks.schema.json", schemaJSON)

// validateShape checks a decoded JSON document against the task list schema
// and returns the first leaf violation as a MalformedError.
func validateShape(path string, doc any) error {
	err := taskListSchema.Validate(doc)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return &MalformedError{Path: path, Err: err}
	}
	leaf := firstLeaf(ve)
	return &MalformedError{
		Path:     path,
		Location: pointerToPath(leaf.InstanceLocation),
		Err:      errors.New(leaf.Message),
	}
}

func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}

// pointerToPath turns "/1/description" into "[1].description".
func pointerToPath(ptr string) string {
	ptr = strings.TrimPrefix(ptr, "#")
	ptr = strings.TrimPrefix(ptr, "/")
	if ptr == "" {
		return ""
	}
	var b strings.Builder
	for _, part := range strings.Split(ptr, "/") {
		part = strings.ReplaceAll(part, "~1", "/")
		part = strings.ReplaceAll(part, "~0", "~")
		if idx, err := strconv.Atoi(part); err == nil {
			fmt.Fprintf(&b, "[%d]", idx)
			continue
		}
		if b.Len() > 0 {
			b.WriteByte('.')
		}
		b.WriteString(part)
	}
	return b.String()
}
