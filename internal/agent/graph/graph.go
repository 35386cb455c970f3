package graph

import (
	"context"
	"fmt"
	"sync"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/graph/conversations"
	"github.com/InsaneJSK/Inflx-AI/internal/agent/graph/nodes"
	"github.com/InsaneJSK/Inflx-AI/internal/agent/graph/observers"
	"github.com/InsaneJSK/Inflx-AI/internal/agent/intent"
	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
	logx "github.com/InsaneJSK/Inflx-AI/pkg/logger"
)

// Runner is a thin wrapper to execute the compiled graph with the public QueryInput.
type Runner interface {
	Invoke(ctx context.Context, in model.QueryInput) (string, error)
}

// Config holds everything needed to compose the full assistant graph
// end-to-end. This is a convenience layer over GraphConfig that also
// constructs ChatModels and the StateManager.
type Config struct {
	APIKey         string
	BaseURL        string
	Classifier     model.ClassifierConfig
	Extraction     model.ExtractionModelConfig
	Response       model.ResponseModelConfig
	ResponsePrompt model.ResponsePromptConfig

	StateRepo model.StateRepository
	Knowledge model.KnowledgeBase
	Leads     model.LeadCapturer
}

// GraphConfig holds all configuration needed to build the graph
type GraphConfig struct {
	StateManager *conversations.StateManager
	Classify     *nodes.ClassifyHandler
	Retrieve     *nodes.RetrieveHandler
	Collect      *nodes.CollectHandler
	Respond      *nodes.RespondHandler
}

// GraphBuilder handles the construction of the assistant conversation graph
type GraphBuilder struct {
	config *GraphConfig
	graph  *compose.Graph[model.QueryInput, *schema.Message]
}

type graphRunner struct {
	runnable compose.Runnable[model.QueryInput, *schema.Message]
	locks    sync.Map // session id -> *sync.Mutex
}

// Invoke runs one traversal. Traversals for the same session are serialized
// so last-writer-wins races on the conversation state cannot occur.
func (r *graphRunner) Invoke(ctx context.Context, in model.QueryInput) (string, error) {
	mu, _ := r.locks.LoadOrStore(in.SessionID, &sync.Mutex{})
	lock := mu.(*sync.Mutex)
	lock.Lock()
	defer lock.Unlock()

	out, err := r.runnable.Invoke(ctx, model.QueryInput{
		SessionID: in.SessionID,
		Query:     in.Query,
	}, compose.WithCallbacks(observers.NewAllCallbacks()))
	if err != nil {
		return "", err
	}
	if out == nil {
		return "", nil
	}
	return out.Content, nil
}

// BuildAssistantGraph composes chat models, the classifier cascade, and the
// state manager, builds the graph, and returns a Runner.
func BuildAssistantGraph(ctx context.Context, cfg Config) (Runner, error) {
	if cfg.StateRepo == nil {
		return nil, fmt.Errorf("state repo is nil")
	}
	if cfg.Knowledge == nil {
		return nil, fmt.Errorf("knowledge base is nil")
	}
	if cfg.Leads == nil {
		return nil, fmt.Errorf("lead capturer is nil")
	}

	cms, err := nodes.NewChatModels(ctx, nodes.ChatModelConfig{
		APIKey:     cfg.APIKey,
		BaseURL:    cfg.BaseURL,
		Classifier: &cfg.Classifier,
		Extraction: &cfg.Extraction,
		Response:   &cfg.Response,
	})
	if err != nil {
		return nil, err
	}

	classifierGen := nodes.NewGeminiGenerator(cms.Classifier, cms.ClassifierName)
	extractionGen := nodes.NewGeminiGenerator(cms.Extraction, cms.ExtractionName)
	responseGen := nodes.NewFallbackGenerator(
		nodes.NewGeminiGenerator(cms.Response, cms.ResponseName),
		nodes.NewGeminiGenerator(cms.ResponseFallback, cms.ResponseFallbName),
	)

	classifier := intent.NewClassifier(intent.NewLocalModel(), classifierGen, cfg.Classifier.Threshold)
	sm := conversations.NewStateManager(cfg.StateRepo)

	runnable, err := BuildGraph(ctx, &GraphConfig{
		StateManager: sm,
		Classify:     nodes.NewClassifyHandler(classifier),
		Retrieve:     nodes.NewRetrieveHandler(cfg.Knowledge),
		Collect:      nodes.NewCollectHandler(extractionGen, cfg.Leads),
		Respond:      nodes.NewRespondHandler(responseGen, cfg.ResponsePrompt),
	})
	if err != nil {
		return nil, err
	}

	logx.Debug().Msg("Assistant graph built successfully")
	return &graphRunner{runnable: runnable}, nil
}

// BuildGraph constructs and returns the compiled assistant graph
func BuildGraph(ctx context.Context, config *GraphConfig) (compose.Runnable[model.QueryInput, *schema.Message], error) {
	if config == nil {
		return nil, fmt.Errorf("graph config is nil")
	}
	if config.StateManager == nil {
		return nil, fmt.Errorf("state manager is nil")
	}
	if config.Classify == nil || config.Retrieve == nil || config.Collect == nil || config.Respond == nil {
		return nil, fmt.Errorf("stage handlers are not properly initialized")
	}

	builder := &GraphBuilder{
		config: config,
		graph: compose.NewGraph[model.QueryInput, *schema.Message](
			compose.WithGenLocalState(func(ctx context.Context) *model.AppState {
				return &model.AppState{}
			}),
		),
	}

	builder.addNodes()
	builder.addEdges()

	if err := builder.addBranches(); err != nil {
		return nil, err
	}

	return builder.compile(ctx)
}

// addNodes adds all processing nodes to the graph
func (b *GraphBuilder) addNodes() {
	b.graph.AddLambdaNode(nodes.NodeClassifier,
		nodes.NewClassifierNode(b.config.Classify),
		compose.WithStatePreHandler(nodes.NewClassifierPreHandler(b.config.StateManager)),
	)

	b.graph.AddLambdaNode(nodes.NodeRetriever,
		nodes.NewRetrieverNode(b.config.Retrieve),
	)

	b.graph.AddLambdaNode(nodes.NodeLeadCollector,
		nodes.NewLeadCollectorNode(b.config.Collect),
	)

	b.graph.AddLambdaNode(nodes.NodeResponder,
		nodes.NewResponderNode(b.config.Respond),
		compose.WithStatePostHandler(nodes.NewResponderPostHandler(b.config.StateManager)),
	)
}

// addEdges creates the main flow connections between nodes
func (b *GraphBuilder) addEdges() {
	edges := [][2]string{
		{compose.START, nodes.NodeClassifier},
		{nodes.NodeRetriever, nodes.NodeResponder},
		{nodes.NodeLeadCollector, nodes.NodeResponder},
		{nodes.NodeResponder, compose.END},
	}

	for _, edge := range edges {
		b.graph.AddEdge(edge[0], edge[1])
	}
}

// addBranches creates the routing branch after classification
func (b *GraphBuilder) addBranches() error {
	stageBranch := compose.NewGraphBranch(
		nodes.NewStageCondition(),
		map[string]bool{
			nodes.NodeRetriever:     true,
			nodes.NodeLeadCollector: true,
			nodes.NodeResponder:     true,
		},
	)
	if err := b.graph.AddBranch(nodes.NodeClassifier, stageBranch); err != nil {
		logx.Error().Err(err).Msg("Error adding stage branch")
		return fmt.Errorf("error adding stage branch: %w", err)
	}

	return nil
}

// compile finalizes and compiles the graph
func (b *GraphBuilder) compile(ctx context.Context) (compose.Runnable[model.QueryInput, *schema.Message], error) {
	// The graph is acyclic; the step cap is a guard against wiring mistakes.
	runnable, err := b.graph.Compile(ctx, compose.WithMaxRunSteps(10))
	if err != nil {
		logx.Error().Err(err).Msg("Error compiling graph")
		return nil, fmt.Errorf("error compiling graph: %w", err)
	}

	logx.Debug().Msg("Graph compiled successfully")
	return runnable, nil
}
