package parsers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
)

func TestParseLeadRecordPlainJSON(t *testing.T) {
	rec := ParseLeadRecord(`{"name": "Asha", "email": "asha@example.com", "platform": "YouTube"}`)
	assert.Equal(t, model.LeadRecord{Name: "Asha", Email: "asha@example.com", Platform: "YouTube"}, rec)
}

func TestParseLeadRecordStripsCodeFences(t *testing.T) {
	raw := "```json\n{\"name\": \"Asha\", \"email\": null, \"platform\": null}\n```"
	rec := ParseLeadRecord(raw)
	assert.Equal(t, model.LeadRecord{Name: "Asha"}, rec)
}

func TestParseLeadRecordIsolatesObjectFromChatter(t *testing.T) {
	raw := `Sure! Here is the extraction you asked for:
{"name": null, "email": "asha@example.com", "platform": null}
Let me know if you need anything else.`
	rec := ParseLeadRecord(raw)
	assert.Equal(t, model.LeadRecord{Email: "asha@example.com"}, rec)
}

func TestParseLeadRecordNullSpellings(t *testing.T) {
	rec := ParseLeadRecord(`{"name": "None", "email": "null", "platform": "  "}`)
	assert.Equal(t, model.LeadRecord{}, rec)
}

func TestParseLeadRecordMalformedYieldsEmpty(t *testing.T) {
	cases := []string{
		"",
		"no json here at all",
		`{"name": "Asha"}`,                                     // missing required keys
		`{"name": 42, "email": null, "platform": null}`,        // wrong type
		`{"name": "Asha", "email": "a@b.c", "platform": null,`, // truncated
	}
	for _, raw := range cases {
		assert.Equal(t, model.LeadRecord{}, ParseLeadRecord(raw), raw)
	}
}

func TestParseLeadRecordOversizedInput(t *testing.T) {
	raw := strings.Repeat("x", maxExtractionLen+100)
	assert.Equal(t, model.LeadRecord{}, ParseLeadRecord(raw))
}
