package nodes

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
)

func TestRouteByIntent(t *testing.T) {
	cases := []struct {
		intent model.Intent
		want   string
	}{
		{model.IntentProductInquiry, NodeRetriever},
		{model.IntentHighIntentLead, NodeLeadCollector},
		{model.IntentGreeting, NodeResponder},
		{model.IntentPostLead, NodeResponder},
		{model.IntentUnknown, NodeResponder},
	}
	for _, tc := range cases {
		conv := model.NewConversationState()
		conv.LastIntent = tc.intent
		assert.Equal(t, tc.want, Route(conv), string(tc.intent))
	}
}

func TestRouteStickyCollectionOverridesIntent(t *testing.T) {
	conv := model.NewConversationState()
	conv.CollectingLead = true

	// mid-collection every intent routes back to the collector
	for _, in := range []model.Intent{
		model.IntentGreeting,
		model.IntentProductInquiry,
		model.IntentHighIntentLead,
		model.IntentUnknown,
	} {
		conv.LastIntent = in
		assert.Equal(t, NodeLeadCollector, Route(conv), string(in))
	}
}

func TestRouteIsPure(t *testing.T) {
	conv := model.NewConversationState()
	conv.LastIntent = model.IntentProductInquiry
	before := *conv

	for i := 0; i < 3; i++ {
		assert.Equal(t, NodeRetriever, Route(conv))
	}
	assert.Equal(t, before, *conv)
}
