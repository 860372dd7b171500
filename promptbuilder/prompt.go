/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"fmt"
	"maps"
	"regexp"
	"strings"
)

// stringLiteral only accepts literal strings, keeping templates and
// developer-supplied fragments apart from request content.
type stringLiteral string

// Prompt is an immutable template with {{name}} placeholders. Bind methods
// return a new Prompt; Build fails if any placeholder is still unbound.
type Prompt struct {
	template string
	bindings map[string]binding
}

var placeholder = regexp.MustCompile(`\{\{\s*([A-Za-z][A-Za-z0-9_]*)\s*\}\}`)

// NewPrompt parses a template literal and records its placeholders.
func NewPrompt(template stringLiteral) (*Prompt, error) {
	tmpl := string(template)

	// Anything brace-delimited that the placeholder pattern does not consume
	// is a malformed binding.
	leftover := placeholder.ReplaceAllString(tmpl, "")
	if i := strings.Index(leftover, "{{"); i != -1 {
		return nil, fmt.Errorf("malformed binding near %q", snippet(leftover[i:]))
	}

	bindings := make(map[string]binding)
	for _, m := range placeholder.FindAllStringSubmatch(tmpl, -1) {
		name := m[1]
		if _, exists := bindings[name]; !exists {
			bindings[name] = &unboundBinding{name: name}
		}
	}

	return &Prompt{template: tmpl, bindings: bindings}, nil
}

// MustNewPrompt is NewPrompt for package-level template variables; it panics
// on a malformed template.
func MustNewPrompt(template stringLiteral) *Prompt {
	p, err := NewPrompt(template)
	if err != nil {
		panic(err)
	}
	return p
}

// GetBindings returns the placeholder names found in the template as a set.
func (p *Prompt) GetBindings() map[string]struct{} {
	names := make(map[string]struct{}, len(p.bindings))
	for name := range p.bindings {
		names[name] = struct{}{}
	}
	return names
}

// BindText binds request content to a placeholder verbatim.
func (p *Prompt) BindText(name, value string) (*Prompt, error) {
	return p.bind(name, &textBinding{val: value})
}

// BindCodeBlock binds source code to a placeholder, wrapped in a fenced code
// block so the model sees it as a snippet rather than instructions.
func (p *Prompt) BindCodeBlock(name, code string) (*Prompt, error) {
	return p.bind(name, &codeBlockBinding{code: code})
}

// BindStringLiteral binds a literal string value to a placeholder. The value
// comes from the developer, not from request content.
func (p *Prompt) BindStringLiteral(name string, value stringLiteral) (*Prompt, error) {
	return p.bind(name, &textBinding{val: string(value)})
}

func (p *Prompt) bind(name string, b binding) (*Prompt, error) {
	existing, ok := p.bindings[name]
	if !ok {
		return nil, fmt.Errorf("unknown placeholder: %s", name)
	}
	if _, unbound := existing.(*unboundBinding); !unbound {
		return nil, fmt.Errorf("placeholder already bound: %s", name)
	}
	next := &Prompt{
		template: p.template,
		bindings: maps.Clone(p.bindings),
	}
	next.bindings[name] = b
	return next, nil
}

// Build constructs the final prompt, failing if any placeholder is unbound.
func (p *Prompt) Build() (string, error) {
	var buildErr error
	out := placeholder.ReplaceAllStringFunc(p.template, func(match string) string {
		name := placeholder.FindStringSubmatch(match)[1]
		val, err := p.bindings[name].value()
		if err != nil && buildErr == nil {
			buildErr = err
		}
		return val
	})
	if buildErr != nil {
		return "", buildErr
	}
	return out, nil
}

func snippet(s string) string {
	if len(s) > 20 {
		return s[:20] + "..."
	}
	return s
}
