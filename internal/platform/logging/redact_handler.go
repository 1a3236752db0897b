package logging

import (
	"log/slog"
	"regexp"

	"github.com/m-mizutani/masq"
)

// SensitiveFields is the set of attribute names (lowercase) whose values are
// always redacted, regardless of content.
var SensitiveFields = map[string]bool{
	"openai_api_key": true,
	"api_key":        true,
	"authorization":  true,
}

// secretTag marks struct fields that masq redacts, e.g. `masq:"secret"`.
const secretTag = "secret"

// openAIKeyPattern matches OpenAI-style secret keys ("sk-..." and
// "sk-proj-...") that leak into free-form values such as error strings.
var openAIKeyPattern = regexp.MustCompile(`sk-[A-Za-z0-9_\-]{8,}`)

// bearerPattern matches "Bearer <token>" strings that appear as raw values.
var bearerPattern = regexp.MustCompile(`(?i)bearer\s+[a-zA-Z0-9\-._~+/]+=*`)

// apiKeyInlinePattern matches inline "api_key=<value>" or "apikey:<value>"
// patterns, including OPENAI_API_KEY=<value> lines from .env files.
var apiKeyInlinePattern = regexp.MustCompile(`(?i)(api[_\-]?key|apikey)\s*[:=]\s*\S+`)

// fixedRedactOptions is the number of masq options beyond SensitiveFields
// (1 tag + 2 field names + 2 prefixes + 3 regexes).
const fixedRedactOptions = 8

// newRedactAttr returns a masq-powered ReplaceAttr function for use in
// slog.HandlerOptions. It redacts by field name, by struct tag, and by regex
// for values that escape call-site redaction.
func newRedactAttr() func([]string, slog.Attr) slog.Attr {
	opts := make([]masq.Option, 0, fixedRedactOptions+len(SensitiveFields))

	for name := range SensitiveFields {
		opts = append(opts, masq.WithFieldName(name))
	}

	opts = append(opts,
		masq.WithTag(secretTag),

		masq.WithFieldName("password"),
		masq.WithFieldName("token"),

		masq.WithFieldPrefix("secret_"),
		masq.WithFieldPrefix("api_key"),

		masq.WithRegex(openAIKeyPattern),
		masq.WithRegex(bearerPattern),
		masq.WithRegex(apiKeyInlinePattern),
	)

	return masq.New(opts...)
}
