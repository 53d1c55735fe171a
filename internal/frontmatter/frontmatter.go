// Package frontmatter reads and writes the YAML block at the top of a post.
package frontmatter

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/radikecosa/postkit/internal/models"
	"go.yaml.in/yaml/v3"
)

// TimeLayout is the published timestamp format: UTC, millisecond precision.
const TimeLayout = "2006-01-02T15:04:05.000Z07:00"

const delimiter = "---"

// ErrNoFrontMatter is returned by Parse when the input does not open with a
// delimiter line
var ErrNoFrontMatter = errors.New("no front-matter block")

// Render encodes doc as a delimited front-matter block. Keys are written in
// a fixed order regardless of the struct.
func Render(doc models.PostDocument) ([]byte, error) {
	tags := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
	for _, tag := range doc.Tags {
		tags.Content = append(tags.Content, scalar("!!str", tag, 0))
	}

	root := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	add := func(key string, value *yaml.Node) {
		root.Content = append(root.Content, scalar("!!str", key, 0), value)
	}

	add("title", scalar("!!str", doc.Title, yaml.DoubleQuotedStyle))
	add("published", scalar("!!timestamp", doc.Published.UTC().Format(TimeLayout), 0))
	add("description", scalar("!!str", doc.Description, yaml.SingleQuotedStyle))
	add("updated", scalar("!!str", doc.Updated, yaml.SingleQuotedStyle))
	add("tags", tags)
	add("draft", scalar("!!bool", strconv.FormatBool(doc.Draft), 0))
	add("pin", scalar("!!int", strconv.Itoa(doc.Pin), 0))
	add("toc", scalar("!!bool", strconv.FormatBool(doc.TOC), 0))
	add("lang", scalar("!!str", doc.Lang, yaml.DoubleQuotedStyle))
	add("abbrlink", scalar("!!str", doc.Abbrlink, yaml.DoubleQuotedStyle))

	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(root); err != nil {
		return nil, fmt.Errorf("failed to encode front-matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode front-matter: %w", err)
	}

	buf.WriteString(delimiter + "\n")
	return buf.Bytes(), nil
}

func scalar(tag, value string, style yaml.Style) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value, Style: style}
}

// Parse splits data into its front-matter document and the body that
// follows the closing delimiter
func Parse(data []byte) (models.PostDocument, []byte, error) {
	var doc models.PostDocument

	block, body, err := split(data)
	if err != nil {
		return doc, nil, err
	}

	if err := yaml.Unmarshal(block, &doc); err != nil {
		return doc, nil, fmt.Errorf("failed to decode front-matter: %w", err)
	}
	return doc, body, nil
}

// Block returns the front-matter of data exactly as written, delimiters
// included
func Block(data []byte) ([]byte, error) {
	block, _, err := split(data)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	buf.WriteString(delimiter + "\n")
	buf.Write(block)
	buf.WriteString(delimiter + "\n")
	return buf.Bytes(), nil
}

func split(data []byte) ([]byte, []byte, error) {
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	first, rest, _ := cutLine(data)
	if string(first) != delimiter {
		return nil, nil, ErrNoFrontMatter
	}

	start := rest
	for len(rest) > 0 {
		line, next, _ := cutLine(rest)
		if string(line) == delimiter {
			block := start[:len(start)-len(rest)]
			return block, next, nil
		}
		rest = next
	}
	return nil, nil, fmt.Errorf("unterminated front-matter block")
}

// cutLine returns the first line without its terminator (\n or \r\n)
func cutLine(data []byte) ([]byte, []byte, bool) {
	line, rest, found := bytes.Cut(data, []byte("\n"))
	return bytes.TrimSuffix(line, []byte("\r")), rest, found
}
