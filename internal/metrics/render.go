package metrics

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	orderedmap "github.com/wk8/go-ordered-map/v2"
	"gopkg.in/yaml.v3"

	"mission-computer/internal/config"
)

// Render formats snap as indented JSON or YAML using the display labels.
// The result ends with a newline.
func Render(snap *Snapshot, labels Labels, format string, indent int) ([]byte, error) {
	switch format {
	case config.FormatJSON, "":
		return renderJSON(snap, labels, indent)
	case config.FormatYAML:
		return renderYAML(snap, labels, indent)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

func renderJSON(snap *Snapshot, labels Labels, indent int) ([]byte, error) {
	labeled := orderedmap.New[string, any](orderedmap.WithDisableHTMLEscape[string, any]())
	for pair := snap.values.Oldest(); pair != nil; pair = pair.Next() {
		labeled.Set(labels.field(pair.Key), pair.Value)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", strings.Repeat(" ", indent))
	if err := enc.Encode(labeled); err != nil {
		return nil, fmt.Errorf("encode json: %w", err)
	}
	return buf.Bytes(), nil
}

func renderYAML(snap *Snapshot, labels Labels, indent int) ([]byte, error) {
	root := &yaml.Node{Kind: yaml.MappingNode}
	for pair := snap.values.Oldest(); pair != nil; pair = pair.Next() {
		key := &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: labels.field(pair.Key)}

		value, err := yamlValue(pair.Value)
		if err != nil {
			return nil, fmt.Errorf("encode %s: %w", pair.Key, err)
		}
		root.Content = append(root.Content, key, value)
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("encode yaml: %w", err)
	}
	return buf.Bytes(), nil
}

func yamlValue(v any) (*yaml.Node, error) {
	if d, ok := v.(Decimal); ok {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!float", Value: d.String()}, nil
	}
	node := &yaml.Node{}
	if err := node.Encode(v); err != nil {
		return nil, err
	}
	return node, nil
}
