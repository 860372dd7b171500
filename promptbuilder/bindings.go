/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder

import (
	"fmt"
	"strings"
)

// binding represents a value that will be substituted into the template
type binding interface {
	value() (string, error)
}

// unboundBinding is the default state for placeholders that haven't been set
type unboundBinding struct {
	name string
}

func (u *unboundBinding) value() (string, error) {
	return "", fmt.Errorf("unbound placeholder: %s", u.name)
}

// textBinding holds plain text content
type textBinding struct {
	val string
}

func (t *textBinding) value() (string, error) {
	return t.val, nil
}

// codeBlockBinding holds source code rendered as a fenced block
type codeBlockBinding struct {
	code string
}

func (c *codeBlockBinding) value() (string, error) {
	return "```\n" + strings.Trim(c.code, "\n") + "\n```", nil
}
