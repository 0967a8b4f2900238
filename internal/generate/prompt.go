// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package generate

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// placeholder is the question-count substitution token understood by prompt
// templates.
const placeholder = "{num_questions}"

// LoadTemplate reads a prompt template file. The template is raw UTF-8 text;
// no validation is performed on its contents.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("reading prompt file %s: %w", path, err)
	}
	return string(data), nil
}

// RenderPrompt substitutes the question count into the template and appends
// the lecture text as a second prompt section. A template lacking the
// placeholder renders unchanged.
func RenderPrompt(tmpl string, numQuestions int, lectureText string) string {
	rendered := strings.ReplaceAll(tmpl, placeholder, strconv.Itoa(numQuestions))
	return rendered + "\n\n" + lectureText
}
