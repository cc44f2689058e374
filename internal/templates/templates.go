// Package templates holds the text fragments bin2c writes around the
// rendered byte array.
package templates

import (
	"embed"
	"fmt"
	"text/template"
)

// Array is the template file providing the "preamble" and "trailer"
// blocks of a generated C array.
const Array = "array.c.tmpl"

//go:embed *.tmpl
var templatesFS embed.FS

// Get returns the raw content of the named template file.
func Get(name string) (string, error) {
	content, err := templatesFS.ReadFile(name)
	if err != nil {
		return "", fmt.Errorf("template %s not found: %w", name, err)
	}
	return string(content), nil
}

// Parse loads and parses the named template file.
func Parse(name string) (*template.Template, error) {
	content, err := Get(name)
	if err != nil {
		return nil, err
	}
	t, err := template.New(name).Option("missingkey=error").Parse(content)
	if err != nil {
		return nil, fmt.Errorf("template %s: %w", name, err)
	}
	return t, nil
}
