package commands

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"

	"github.com/Masterminds/sprig/v3"

	"github.com/pixil98/go-adventure/internal/display"
	"github.com/pixil98/go-adventure/internal/game"
)

// templateFuncs provides utility functions for templates.
var templateFuncs = sprig.TxtFuncMap()

const (
	itemTemplate    = `{{ .Name }}: {{ .Description | trim }}`
	takenTemplate   = `{{ .Name }} taken`
	droppedTemplate = `{{ .Name }} dropped`
	helpTemplate    = `You can move by typing directions such as EAST/WEST/IN/OUT.
{{- range .Commands }}
{{ .Usage | printf "%-14s" }}{{ .Description }}
{{- end }}`
)

// ExpandTemplate expands a template string using the provided data.
// The data can be any struct - templates access fields via {{ .FieldName }}.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	err = tmpl.Execute(&buf, data)
	if err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// FormatItems returns one line per item.
func FormatItems(items []game.Item) ([]string, error) {
	lines := make([]string, 0, len(items))
	for _, item := range items {
		line, err := ExpandTemplate(itemTemplate, item)
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
	return lines, nil
}

// DescribeRoom returns the room's wrapped description, or only its name
// when full is false, followed by the items lying there.
func DescribeRoom(ri *game.RoomInstance, full bool) ([]string, error) {
	var lines []string
	if full {
		lines = append(lines, display.Wrap(ri.Room.Description))
	} else {
		lines = append(lines, ri.Room.Name)
	}

	items, err := FormatItems(ri.Items.List())
	if err != nil {
		return nil, fmt.Errorf("formatting items in room %d: %w", ri.Room.Id, err)
	}

	return append(lines, items...), nil
}

// itemArg joins the arguments into an item name.
func itemArg(args []string) string {
	return strings.Join(args, " ")
}
