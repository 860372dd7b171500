/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package fingerprint_test

import (
	"testing"

	"chainguard.dev/codequal/grader/fingerprint"
)

func TestHashIgnoresCommentsAndWhitespace(t *testing.T) {
	tests := []struct {
		name string
		a, b string
	}{{
		name: "hash comments differ",
		a:    "def f(x):\n    return x + 1  # add one\n",
		b:    "def f(x):\n    return x + 1  # increment\n",
	}, {
		name: "slash comments differ",
		a:    "func f(x int) int {\n\treturn x + 1 // add one\n}\n",
		b:    "func f(x int) int {\n\treturn x + 1 // bump\n}\n",
	}, {
		name: "whitespace runs differ",
		a:    "func f(x int) int { return x + 1 }",
		b:    "func  f(x int)  int  {\n\n\treturn x + 1\n}",
	}, {
		name: "block comment content differs",
		a:    "/* one */\nfunc f() {}",
		b:    "/* two\n   lines */\nfunc f() {}",
	}, {
		name: "docstring content differs",
		a:    `def f():\n    """does a thing"""\n    pass`,
		b:    `def f():\n    """does another thing"""\n    pass`,
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got, want := fingerprint.Hash(tt.a), fingerprint.Hash(tt.b); got != want {
				t.Errorf("Hash(a) = %x, Hash(b) = %x, wanted equal\nnormalized a: %q\nnormalized b: %q",
					got, want, fingerprint.Normalize(tt.a), fingerprint.Normalize(tt.b))
			}
		})
	}
}

func TestHashDistinguishesCode(t *testing.T) {
	a := "def f(): pass"
	b := "def f(): pass\nextra_statement()"
	if fingerprint.Hash(a) == fingerprint.Hash(b) {
		t.Errorf("Hash collided for distinct snippets %q and %q", a, b)
	}
}

func TestHashDeterministic(t *testing.T) {
	code := "func main() {\n\tfmt.Println(\"hi\")\n}"
	if got, want := fingerprint.Hash(code), fingerprint.Hash(code); got != want {
		t.Errorf("Hash not deterministic: %x != %x", got, want)
	}
}

func TestHashEmptyInput(t *testing.T) {
	// Total function: the empty snippet gets a fingerprint too.
	if got, want := fingerprint.Hash(""), fingerprint.Hash("   \n\t  "); got != want {
		t.Errorf("Hash(\"\") = %x, Hash(whitespace) = %x, wanted equal", got, want)
	}
}

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{{
		name: "strips line comment",
		in:   "x = 1  # note\ny = 2",
		want: "x = 1 y = 2",
	}, {
		name: "collapses whitespace",
		in:   "a\n\n\tb   c",
		want: "a b c",
	}, {
		name: "replaces block comment span with sentinel",
		in:   "a /* anything\nat all */ b",
		want: "a /**/ b",
	}, {
		name: "replaces triple-quoted span with sentinel",
		in:   "a\n\"\"\"doc\ntext\"\"\"\nb",
		want: `a """""" b`,
	}, {
		name: "empty",
		in:   "",
		want: "",
	}}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fingerprint.Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
