package generate

import (
	"bytes"
	"fmt"
	"go/format"
	"text/template"
)

// ImportPath is the package the generated code calls into.
const ImportPath = "git.imaxinacion.net/aibox/staticenum"

var fileTemplate = template.Must(template.New("enum").Parse(`// Code generated by "enumgen {{.Args}}"; DO NOT EDIT.

package {{.Package}}

import "{{.Import}}"
{{range .Enums}}
// EnumName returns the declared name of v, or a digit-prefixed fallback
// when v is not a {{.Name}} constant.
func (v {{.Name}}) EnumName() string {
	switch v {
{{- range .Members}}
	case {{.Name}}:
		return "{{.Name}}"
{{- end}}
	}
	return staticenum.Fallback(v)
}
{{if .Aliases}}
// EnumAliases returns the {{.Name}} constants that repeat the value of an
// earlier constant.
func ({{.Name}}) EnumAliases() map[string]{{.Name}} {
	return map[string]{{.Name}}{
{{- range .Aliases}}
		"{{.Name}}": {{.Name}},
{{- end}}
	}
}
{{end}}{{end}}`))

// Render produces the gofmt-formatted source of the namer file for enums.
// args is recorded in the header line.
func Render(pkgName, args string, enums []Enum) ([]byte, error) {
	var buf bytes.Buffer
	err := fileTemplate.Execute(&buf, struct {
		Args    string
		Package string
		Import  string
		Enums   []Enum
	}{args, pkgName, ImportPath, enums})
	if err != nil {
		return nil, fmt.Errorf("failed to render: %w", err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("failed to format generated code: %w", err)
	}
	return src, nil
}
