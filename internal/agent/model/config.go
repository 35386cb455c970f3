package model

// ================ Config ================
type ConversationConfig struct {
	TTL string `envconfig:"CONVERSATION_TTL" default:"15m"`
}

type ClassifierConfig struct {
	Model       string  `envconfig:"CLASSIFIER_MODEL" default:"gemini-2.5-flash-lite"`
	MaxTokens   int     `envconfig:"CLASSIFIER_MAX_TOKENS" default:"64"`
	Temperature float32 `envconfig:"CLASSIFIER_TEMPERATURE" default:"0"`
	// Threshold is the minimum local-model confidence accepted before
	// falling through to the generative pass.
	Threshold float64 `envconfig:"CLASSIFIER_CONFIDENCE_THRESHOLD" default:"0.40"`
}

type ExtractionModelConfig struct {
	Model       string  `envconfig:"EXTRACTION_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"EXTRACTION_MAX_TOKENS" default:"512"`
	Temperature float32 `envconfig:"EXTRACTION_TEMPERATURE" default:"0.1"`
}

type ResponseModelConfig struct {
	Model       string  `envconfig:"RESPONSE_MODEL" default:"gemini-2.5-flash"`
	MaxTokens   int     `envconfig:"RESPONSE_MAX_TOKENS" default:"2000"`
	Temperature float32 `envconfig:"RESPONSE_TEMPERATURE" default:"0.4"`
	// FallbackModel is tried when the primary response model fails.
	FallbackModel string `envconfig:"RESPONSE_FALLBACK_MODEL" default:"gemini-2.5-flash-lite"`
}

type ResponsePromptConfig struct {
	BusinessName string `envconfig:"PROMPT_BUSINESS_NAME" default:"AutoStream"`
	BusinessType string `envconfig:"PROMPT_BUSINESS_TYPE" default:"SaaS video clipping platform"`
}

type LeadsConfig struct {
	// WebhookURL posts captured leads to a CRM endpoint. Empty keeps leads
	// in the in-memory capturer.
	WebhookURL string `envconfig:"LEAD_WEBHOOK_URL"`
}
