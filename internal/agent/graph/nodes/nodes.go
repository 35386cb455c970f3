package nodes

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"

	"github.com/InsaneJSK/Inflx-AI/internal/agent/graph/conversations"
	"github.com/InsaneJSK/Inflx-AI/internal/agent/model"
	logx "github.com/InsaneJSK/Inflx-AI/pkg/logger"
)

// NewClassifierPreHandler resets the per-traversal state and loads (or
// initializes) the session's conversation before classification runs.
func NewClassifierPreHandler(sm *conversations.StateManager) func(context.Context, model.QueryInput, *model.AppState) (model.QueryInput, error) {
	return func(ctx context.Context, in model.QueryInput, s *model.AppState) (model.QueryInput, error) {
		s.SessionID = in.SessionID
		s.Query = in.Query
		s.Retrieved = ""
		s.StagedReply = ""

		conv, err := sm.GetOrCreate(ctx, in.SessionID)
		if err != nil {
			return in, err
		}
		s.Conversation = conv
		return in, nil
	}
}

// NewClassifierNode creates the classify stage node.
func NewClassifierNode(h *ClassifyHandler) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.QueryInput) (model.RoutedQuery, error) {
		out := model.RoutedQuery{SessionID: in.SessionID, Query: in.Query}
		err := compose.ProcessState(ctx, func(_ context.Context, s *model.AppState) error {
			if s.Conversation == nil {
				return fmt.Errorf("missing conversation in state")
			}
			out.Intent = h.Handle(ctx, s.Conversation, in.Query)
			return nil
		})
		if err != nil {
			return model.RoutedQuery{}, fmt.Errorf("classify stage: %w", err)
		}
		return out, nil
	})
}

// NewStageCondition creates the branch condition after classification. It
// delegates to the pure router over the conversation state.
func NewStageCondition() func(context.Context, model.RoutedQuery) (string, error) {
	return func(ctx context.Context, in model.RoutedQuery) (string, error) {
		next := NodeResponder
		err := compose.ProcessState(ctx, func(_ context.Context, s *model.AppState) error {
			if s.Conversation == nil {
				return fmt.Errorf("missing conversation in state")
			}
			next = Route(s.Conversation)
			return nil
		})
		if err != nil {
			return "", fmt.Errorf("route stage: %w", err)
		}
		logx.Debug().
			Str("session_id", in.SessionID).
			Str("intent", string(in.Intent)).
			Str("stage", next).
			Msg("routed")
		return next, nil
	}
}

// NewRetrieverNode creates the knowledge lookup stage node. The retrieved
// text is stashed in graph state for the responder.
func NewRetrieverNode(h *RetrieveHandler) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.RoutedQuery) (model.RoutedQuery, error) {
		err := compose.ProcessState(ctx, func(_ context.Context, s *model.AppState) error {
			s.Retrieved = h.Handle(ctx, s.Conversation, in.Query)
			return nil
		})
		if err != nil {
			return model.RoutedQuery{}, fmt.Errorf("retrieve stage: %w", err)
		}
		return in, nil
	})
}

// NewLeadCollectorNode creates the lead-collection stage node. The
// deterministic collect reply is staged for the responder's failure path.
// A capture validation error propagates: it signals an invariant violation,
// not a user-facing condition.
func NewLeadCollectorNode(h *CollectHandler) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.RoutedQuery) (model.RoutedQuery, error) {
		err := compose.ProcessState(ctx, func(_ context.Context, s *model.AppState) error {
			reply, herr := h.Handle(ctx, s.Conversation, in.Query)
			if herr != nil {
				return herr
			}
			s.StagedReply = reply
			// capture may have flipped the intent to post_lead
			in.Intent = s.Conversation.LastIntent
			return nil
		})
		if err != nil {
			return model.RoutedQuery{}, fmt.Errorf("collect stage: %w", err)
		}
		return in, nil
	})
}

// NewResponderNode creates the terminal respond stage node.
func NewResponderNode(h *RespondHandler) *compose.Lambda {
	return compose.InvokableLambda(func(ctx context.Context, in model.RoutedQuery) (*schema.Message, error) {
		var text string
		err := compose.ProcessState(ctx, func(_ context.Context, s *model.AppState) error {
			text = h.Handle(ctx, s.Conversation, in.Query, s.Retrieved, s.StagedReply)
			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("respond stage: %w", err)
		}
		return schema.AssistantMessage(text, nil), nil
	})
}

// NewResponderPostHandler persists the mutated conversation once the
// traversal's reply is ready.
func NewResponderPostHandler(sm *conversations.StateManager) func(context.Context, *schema.Message, *model.AppState) (*schema.Message, error) {
	return func(ctx context.Context, out *schema.Message, s *model.AppState) (*schema.Message, error) {
		if err := sm.Save(ctx, s.SessionID, s.Conversation); err != nil {
			logx.Error().
				Str("session_id", s.SessionID).
				Err(err).
				Msg("failed to persist conversation state")
			return out, err
		}
		return out, nil
	}
}
