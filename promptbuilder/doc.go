/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

/*
Package promptbuilder provides immutable prompt templates with explicit
placeholder bindings.

Templates use {{name}} placeholders. Binding returns a new Prompt, so a
package-level template can be bound per request without synchronization:

	var grading = promptbuilder.MustNewPrompt(`Grade this code:

	{{code}}`)

	p, err := grading.BindCodeBlock("code", snippet)
	if err != nil {
		return err
	}
	prompt, err := p.Build()

Build returns an error if any placeholder is left unbound, which catches
template/binding drift at the call site instead of shipping a prompt with a
literal "{{code}}" in it.
*/
package promptbuilder
