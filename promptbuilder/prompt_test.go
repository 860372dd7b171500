/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package promptbuilder_test

import (
	"strings"
	"testing"

	"chainguard.dev/codequal/promptbuilder"
	"github.com/google/go-cmp/cmp"
)

func TestBuildBindsPlaceholders(t *testing.T) {
	p, err := promptbuilder.NewPrompt(`Grade {{name}}:

{{code}}`)
	if err != nil {
		t.Fatalf("NewPrompt: %v", err)
	}

	p, err = p.BindText("name", "snippet-1")
	if err != nil {
		t.Fatalf("BindText: %v", err)
	}
	p, err = p.BindCodeBlock("code", "def f(): pass")
	if err != nil {
		t.Fatalf("BindCodeBlock: %v", err)
	}

	got, err := p.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	want := "Grade snippet-1:\n\n```\ndef f(): pass\n```"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildFailsUnbound(t *testing.T) {
	p := promptbuilder.MustNewPrompt(`{{a}} and {{b}}`)
	p, err := p.BindText("a", "x")
	if err != nil {
		t.Fatalf("BindText: %v", err)
	}
	if _, err := p.Build(); err == nil {
		t.Error("Build: got nil error with unbound placeholder")
	}
}

func TestBindUnknownPlaceholder(t *testing.T) {
	p := promptbuilder.MustNewPrompt(`{{a}}`)
	if _, err := p.BindText("nope", "x"); err == nil {
		t.Error("BindText(unknown): got nil error")
	}
}

func TestBindTwice(t *testing.T) {
	p := promptbuilder.MustNewPrompt(`{{a}}`)
	p, err := p.BindText("a", "x")
	if err != nil {
		t.Fatalf("BindText: %v", err)
	}
	if _, err := p.BindText("a", "y"); err == nil {
		t.Error("second BindText: got nil error")
	}
}

func TestBindIsImmutable(t *testing.T) {
	base := promptbuilder.MustNewPrompt(`{{a}}`)
	one, err := base.BindText("a", "one")
	if err != nil {
		t.Fatalf("BindText: %v", err)
	}
	two, err := base.BindText("a", "two")
	if err != nil {
		t.Fatalf("BindText on shared base: %v", err)
	}

	gotOne, err := one.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	gotTwo, err := two.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if gotOne != "one" || gotTwo != "two" {
		t.Errorf("bindings leaked between prompts: %q, %q", gotOne, gotTwo)
	}
}

func TestRepeatedPlaceholder(t *testing.T) {
	p := promptbuilder.MustNewPrompt(`{{x}} then {{x}}`)
	p, err := p.BindText("x", "again")
	if err != nil {
		t.Fatalf("BindText: %v", err)
	}
	got, err := p.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if want := "again then again"; got != want {
		t.Errorf("Build = %q, want %q", got, want)
	}
}

func TestMalformedTemplate(t *testing.T) {
	if _, err := promptbuilder.NewPrompt(`{{unclosed`); err == nil {
		t.Error("NewPrompt({{unclosed): got nil error, wanted rejection")
	}
	if _, err := promptbuilder.NewPrompt(`{{bad name}}`); err == nil {
		t.Error("NewPrompt({{bad name}}): got nil error, wanted rejection")
	}
	if _, err := promptbuilder.NewPrompt(`{{1digit}}`); err == nil {
		t.Error("NewPrompt({{1digit}}): got nil error, wanted rejection")
	}
}

func TestGetBindings(t *testing.T) {
	p := promptbuilder.MustNewPrompt(`{{code}} {{question}} {{code}}`)
	got := p.GetBindings()
	want := map[string]struct{}{"code": {}, "question": {}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("GetBindings mismatch (-want +got):\n%s", diff)
	}
}

func TestCodeBlockTrimsOuterNewlines(t *testing.T) {
	p := promptbuilder.MustNewPrompt(`{{code}}`)
	p, err := p.BindCodeBlock("code", "\n\nx = 1\n")
	if err != nil {
		t.Fatalf("BindCodeBlock: %v", err)
	}
	got, err := p.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !strings.HasPrefix(got, "```\nx = 1") {
		t.Errorf("Build = %q, wanted fenced block without leading blank lines", got)
	}
}
