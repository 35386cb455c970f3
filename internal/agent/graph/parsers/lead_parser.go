// Package parsers turns untrusted generative-model output into typed values.
// Every parser guarantees a usable fallback value; parse failures are logged
// and never escape into stage logic.
package parsers

import (
	"encoding/json"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
	logx "github.com/InsaneJSK/Inflx-AI/pkg/logger"
)

// safety limit against pathological model output
const maxExtractionLen = 64 * 1024

var codeFenceRe = regexp.MustCompile("(?s)```[a-zA-Z]*\n?|```")

const leadSchemaJSON = `{
  "type": "object",
  "properties": {
    "name":     {"type": ["string", "null"]},
    "email":    {"type": ["string", "null"]},
    "platform": {"type": ["string", "null"]}
  },
  "required": ["name", "email", "platform"]
}`

var leadSchema = mustCompileSchema(leadSchemaJSON)

func mustCompileSchema(raw string) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(raw))
	if err != nil {
		panic(err)
	}
	return s
}

// ParseLeadRecord extracts a LeadRecord from raw model output. Markdown code
// fences are stripped, the outermost JSON object is isolated, and the result
// is validated against the lead schema before decoding. Any failure yields
// the all-null record.
func ParseLeadRecord(raw string) model.LeadRecord {
	var empty model.LeadRecord

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return empty
	}
	if len(raw) > maxExtractionLen {
		logx.Warn().
			Int("max_len", maxExtractionLen).
			Int("orig_len", len(raw)).
			Msg("extraction output truncated due to size limit")
		raw = raw[:maxExtractionLen]
	}

	raw = strings.TrimSpace(codeFenceRe.ReplaceAllString(raw, ""))
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		logx.Warn().Str("snippet", snippet(raw)).Msg("extraction output contains no JSON object")
		return empty
	}
	raw = raw[start : end+1]

	result, err := leadSchema.Validate(gojsonschema.NewStringLoader(raw))
	if err != nil {
		logx.Warn().Err(err).Msg("extraction output is not valid JSON")
		return empty
	}
	if !result.Valid() {
		logx.Warn().Str("snippet", snippet(raw)).Msg("extraction output failed schema validation")
		return empty
	}

	var decoded struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Platform *string `json:"platform"`
	}
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		logx.Warn().Err(err).Msg("extraction output failed to decode")
		return empty
	}

	return model.LeadRecord{
		Name:     normalizeField(decoded.Name),
		Email:    normalizeField(decoded.Email),
		Platform: normalizeField(decoded.Platform),
	}
}

// normalizeField maps JSON null and null-ish string spellings to empty.
func normalizeField(v *string) string {
	if v == nil {
		return ""
	}
	s := strings.TrimSpace(*v)
	switch strings.ToLower(s) {
	case "", "null", "none":
		return ""
	}
	return s
}

func snippet(s string) string {
	const max = 200
	if len(s) <= max {
		return s
	}
	return s[:max]
}
