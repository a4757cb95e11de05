package hooks

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/mindriot101/hookman/config"
	"github.com/mindriot101/hookman/git"
)

const scriptTemplate = `#!/bin/sh
{{.Marker}}, do not edit directly
# Stage: {{.Stage}}
#
# Hooks run one after another in the order below. When a foreground hook
# exits non-zero the script stops and exits with that status, so the
# remaining hooks do not run. Background hooks are started without waiting
# for them to finish and their exit status is ignored.

hookman_fail() {
    echo "hookman: hook $1 failed with exit status $2" >&2
    exit "$2"
}
{{range .Hooks}}
# {{.Name}}{{with label .}} ({{.}}){{end}}{{if .Background}} (background){{end}}
(
{{.Command}}
){{if .Background}} &{{else}} || hookman_fail {{quote .Name}} $?{{end}}
{{end}}
exit 0
`

var script = template.Must(template.New("hook").
	Funcs(template.FuncMap{"quote": shellQuote, "label": displayLabel}).
	Parse(scriptTemplate))

// Render produces the hook script for stage. Commands are emitted verbatim,
// once each, in the order given.
func Render(stage config.Stage, hooks []HookContext) (string, error) {
	data := struct {
		Marker string
		Stage  string
		Hooks  []HookContext
	}{
		Marker: git.ManagedMarker,
		Stage:  stage.String(),
		Hooks:  hooks,
	}

	var buf bytes.Buffer
	if err := script.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("execute template: %w", err)
	}
	return buf.String(), nil
}

// shellQuote wraps s in single quotes for use as one shell word.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'"'"'`) + "'"
}

// displayLabel returns the configured name for a comment line when it
// differs from the resolved one, collapsed onto a single line.
func displayLabel(h HookContext) string {
	label := strings.Join(strings.Fields(h.OriginalName), " ")
	if label == h.Name {
		return ""
	}
	return label
}
