// Package assets embeds the default quiz content.
package assets

import _ "embed"

//go:embed quiz.json
var QuizJSON []byte
