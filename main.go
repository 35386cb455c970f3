package main

import (
	"bufio"
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/graph"
	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
	"github.com/InsaneJSK/Inflx-AI/internal/agent/repo"
	"github.com/InsaneJSK/Inflx-AI/internal/core"
	"github.com/InsaneJSK/Inflx-AI/internal/knowledge"
	"github.com/InsaneJSK/Inflx-AI/internal/leads"
	logx "github.com/InsaneJSK/Inflx-AI/pkg/logger"
	pkgredis "github.com/InsaneJSK/Inflx-AI/pkg/redis"
)

// AppConfig defines all configurable parameters for the assistant,
// sourced from environment variables (loaded from .env for local runs).
type AppConfig struct {
	Environment string `envconfig:"APP_ENV" default:"development"`

	// LLM provider
	APIKey  string `envconfig:"GEMINI_API_KEY" required:"true"`
	BaseURL string `envconfig:"GEMINI_BASE_URL"`

	// Agent configs
	Classifier   model.ClassifierConfig
	Extraction   model.ExtractionModelConfig
	Response     model.ResponseModelConfig
	Prompt       model.ResponsePromptConfig
	Conversation model.ConversationConfig
	Leads        model.LeadsConfig
}

func main() {
	ctx := context.Background()

	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Warning: Could not load .env file: %v", err)
	}

	var envCfg AppConfig
	if err := envconfig.Process("", &envCfg); err != nil {
		log.Fatalf("Failed to process environment config: %v", err)
	}

	logx.Init(logx.LoggerOpts{Environment: core.ParseEnvironment(envCfg.Environment)})

	ttl, err := time.ParseDuration(envCfg.Conversation.TTL)
	if err != nil {
		log.Fatalf("Invalid CONVERSATION_TTL '%s': %v", envCfg.Conversation.TTL, err)
	}

	stateRepo := newStateRepo(ttl)
	capturer := newLeadCapturer(envCfg.Leads)

	kb, err := knowledge.NewRetriever()
	if err != nil {
		log.Fatalf("Failed to load knowledge base: %v", err)
	}

	runner, err := graph.BuildAssistantGraph(ctx, graph.Config{
		APIKey:         envCfg.APIKey,
		BaseURL:        envCfg.BaseURL,
		Classifier:     envCfg.Classifier,
		Extraction:     envCfg.Extraction,
		Response:       envCfg.Response,
		ResponsePrompt: envCfg.Prompt,
		StateRepo:      stateRepo,
		Knowledge:      kb,
		Leads:          capturer,
	})
	if err != nil {
		log.Fatalf("Failed to build graph: %v", err)
	}

	sessionID := uuid.NewString()
	fmt.Printf("%s assistant ready (session %s). Type /reset to start over, /exit to quit.\n",
		envCfg.Prompt.BusinessName, sessionID)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		switch {
		case line == "":
			continue
		case line == "/exit":
			return
		case line == "/reset":
			if err := stateRepo.Delete(ctx, sessionID); err != nil {
				logx.Warn().Err(err).Msg("failed to reset session")
			}
			sessionID = uuid.NewString()
			fmt.Printf("Started a new session (%s).\n", sessionID)
			continue
		}

		reply, err := runner.Invoke(ctx, model.QueryInput{SessionID: sessionID, Query: line})
		if err != nil {
			logx.Error().Err(err).Msg("traversal failed")
			fmt.Println("Something went wrong, please try again.")
			continue
		}
		fmt.Println(reply)
		announceCapturedLead(ctx, stateRepo, sessionID)
	}
}

// newStateRepo connects to Redis when REDIS_URL is configured and falls back
// to the in-memory repository otherwise.
func newStateRepo(ttl time.Duration) model.StateRepository {
	var redisCfg pkgredis.Config
	if err := envconfig.Process("REDIS", &redisCfg); err != nil {
		logx.Warn().Err(err).Msg("Redis not configured, using in-memory session store")
		return repo.NewMemoryStateRepository()
	}

	rdb, err := redisCfg.New()
	if err != nil {
		logx.Warn().Err(err).Msg("Redis unreachable, using in-memory session store")
		return repo.NewMemoryStateRepository()
	}

	logx.Info().Msg("Connected to Redis")
	return repo.NewRedisStateRepository(rdb, ttl)
}

func newLeadCapturer(cfg model.LeadsConfig) model.LeadCapturer {
	if cfg.WebhookURL != "" {
		logx.Info().Str("url", cfg.WebhookURL).Msg("Posting captured leads to webhook")
		return leads.NewWebhookCapturer(cfg.WebhookURL)
	}
	return leads.NewMemoryCapturer()
}

// announceCapturedLead prints a one-time note when the preceding turn
// completed a lead. The flag is consumed so the note never repeats.
func announceCapturedLead(ctx context.Context, stateRepo model.StateRepository, sessionID string) {
	state, err := stateRepo.Get(ctx, sessionID)
	if err != nil || state == nil {
		return
	}
	if !state.ConsumeLeadJustCaptured() {
		return
	}
	fmt.Println("[lead captured: our team will reach out soon]")
	if err := stateRepo.Put(ctx, sessionID, state); err != nil {
		logx.Warn().Err(err).Msg("failed to persist consumed lead flag")
	}
}
