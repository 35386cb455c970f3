package intent

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
)

func TestLocalModelPredictsTrainingNeighborhood(t *testing.T) {
	m := NewLocalModel()

	cases := []struct {
		text string
		want model.Intent
	}{
		{"hello there", model.IntentGreeting},
		{"how much does the pro plan cost", model.IntentProductInquiry},
		{"i want to sign up for the pro plan", model.IntentHighIntentLead},
	}
	for _, tc := range cases {
		label, confidence := m.Predict(tc.text)
		assert.Equal(t, tc.want, label, tc.text)
		assert.Greater(t, confidence, 0.40, tc.text)
	}
}

func TestLocalModelConfidenceIsProbability(t *testing.T) {
	m := NewLocalModel()

	_, confidence := m.Predict("completely unrelated gibberish zzz qqq")
	require.GreaterOrEqual(t, confidence, 0.0)
	require.LessOrEqual(t, confidence, 1.0)
}
