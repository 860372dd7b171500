/*
Copyright 2026 Chainguard, Inc.
SPDX-License-Identifier: Apache-2.0
*/

package judge

import "chainguard.dev/codequal/promptbuilder"

// gradingPrompt scores a snippet on design quality alone.
var gradingPrompt = promptbuilder.MustNewPrompt(`You are a strict code-quality grader.

You will be given a code snippet. Your task is to grade how well the code
is designed on a continuous scale from 0.0 to 1.0.

Score criteria (equally weighted):
- Readability (clear structure, meaningful names, comments/docstrings)
- Modularity (functions, separation of concerns, avoid duplication)
- Robustness (basic error handling, sanity checks when appropriate)
- Maintainability (easy to extend, minimal hard-coding, avoids hacks)

Output format requirements:
- Respond with *only* a single JSON object.
- The JSON must be exactly of the form:
  {
    "score": <float between 0.0 and 1.0>
  }
- Do not include any explanations, markdown, or extra keys.

Code to grade:
{{code}}`)

// gradingWithQuestionPrompt additionally weighs whether the code solves the
// supplied problem statement.
var gradingWithQuestionPrompt = promptbuilder.MustNewPrompt(`You are a strict code-quality grader.

You will be given a problem statement and a code snippet written to solve it.
Your task is to grade the code on a continuous scale from 0.0 to 1.0.

Score criteria (equally weighted):
- Readability (clear structure, meaningful names, comments/docstrings)
- Modularity (functions, separation of concerns, avoid duplication)
- Robustness (basic error handling, sanity checks when appropriate)
- Maintainability (easy to extend, minimal hard-coding, avoids hacks)

Also weigh whether the code actually addresses the problem statement; a
well-styled snippet that solves the wrong problem is not high quality.

Output format requirements:
- Respond with *only* a single JSON object.
- The JSON must be exactly of the form:
  {
    "score": <float between 0.0 and 1.0>
  }
- Do not include any explanations, markdown, or extra keys.

Problem statement:
{{question}}

Code to grade:
{{code}}`)

// BuildGradingPrompt constructs the grading prompt shared by all judge
// implementations. question may be empty, in which case the judge scores
// design quality without correctness context.
func BuildGradingPrompt(code, question string) (string, error) {
	prompt := gradingPrompt
	if question != "" {
		var err error
		if prompt, err = gradingWithQuestionPrompt.BindText("question", question); err != nil {
			return "", err
		}
	}

	prompt, err := prompt.BindCodeBlock("code", code)
	if err != nil {
		return "", err
	}
	return prompt.Build()
}
