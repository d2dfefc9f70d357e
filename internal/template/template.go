// Package template renders YAML message documents through message.Builder.
package template

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Template is the YAML structure of a message document.
type Template struct {
	Text            string       `yaml:"text"`
	ResponseType    string       `yaml:"response_type"`
	ReplaceOriginal *bool        `yaml:"replace_original"`
	DisableMarkdown bool         `yaml:"disable_markdown"`
	Attachments     []Attachment `yaml:"attachments"`
}

// Attachment describes one attachment. Nil or empty sections are skipped.
type Attachment struct {
	CallbackID string     `yaml:"callback_id"`
	Type       string     `yaml:"type"`
	Fallback   string     `yaml:"fallback"`
	Title      *Title     `yaml:"title"`
	Text       string     `yaml:"text"`
	Pretext    string     `yaml:"pretext"`
	Image      string     `yaml:"image"`
	Thumbnail  string     `yaml:"thumbnail"`
	Author     *Author    `yaml:"author"`
	Footer     *Footer    `yaml:"footer"`
	Color      string     `yaml:"color"`
	Timestamp  *time.Time `yaml:"timestamp"`
	Fields     []Field    `yaml:"fields"`
	Actions    []Action   `yaml:"actions"`
}

// Title is an attachment title with an optional link.
type Title struct {
	Text string `yaml:"text"`
	Link string `yaml:"link"`
}

// Author is the author line shown above an attachment.
type Author struct {
	Name string `yaml:"name"`
	Icon string `yaml:"icon"`
	Link string `yaml:"link"`
}

// Footer is the small text and icon below an attachment.
type Footer struct {
	Text string `yaml:"text"`
	Icon string `yaml:"icon"`
}

// Field is one title/value pair of an attachment's field table.
type Field struct {
	Title string `yaml:"title"`
	Value string `yaml:"value"`
	Short bool   `yaml:"short"`
}

// Action is a button, optionally guarded by a confirmation dialog.
type Action struct {
	Text    string   `yaml:"text"`
	Name    string   `yaml:"name"`
	Value   string   `yaml:"value"`
	Style   string   `yaml:"style"`
	Confirm *Confirm `yaml:"confirm"`
}

// Confirm is an action's confirmation dialog. Empty labels take the builder defaults.
type Confirm struct {
	Title   string `yaml:"title"`
	Text    string `yaml:"text"`
	Ok      string `yaml:"ok"`
	Dismiss string `yaml:"dismiss"`
}

// Parse decodes a single YAML document. Unknown keys are rejected so typos
// do not silently drop content.
func Parse(data []byte) (*Template, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var t Template
	if err := dec.Decode(&t); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse template: empty document")
		}
		return nil, fmt.Errorf("parse template: %w", err)
	}
	return &t, nil
}

// LoadFile reads and parses the template at path.
func LoadFile(path string) (*Template, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read template %s: %w", path, err)
	}
	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return t, nil
}
