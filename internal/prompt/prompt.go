// Package prompt holds the embedded prompt definitions used when asking an
// AI backend to rewrite or translate analyzed code.
package prompt

import (
	"bytes"
	"text/template"
)

// Prompt is a named prompt definition
type Prompt struct {
	// Name is the identifier used to load the prompt (e.g., "optimize")
	Name string `yaml:"name"`

	// System is sent as the system prompt where the backend supports one
	System string `yaml:"system"`

	// Template is a text/template rendered against the request data
	Template string `yaml:"template"`

	compiled *template.Template
}

// Compile parses the template
func (p *Prompt) Compile() error {
	tmpl, err := template.New(p.Name).Option("missingkey=error").Parse(p.Template)
	if err != nil {
		return err
	}
	p.compiled = tmpl
	return nil
}

// Render executes the template against data
func (p *Prompt) Render(data any) (string, error) {
	if p.compiled == nil {
		if err := p.Compile(); err != nil {
			return "", err
		}
	}

	var buf bytes.Buffer
	if err := p.compiled.Execute(&buf, data); err != nil {
		return "", err
	}
	return buf.String(), nil
}
