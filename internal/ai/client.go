package ai

import (
	"context"
	"errors"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Client is the text-completion boundary. Implementations return the model
// text plus the raw API body for audit logging.
type Client interface {
	Chat(ctx context.Context, messages []Message) (string, []byte, error)
}

// Pipeline failure classes. ErrGeneration covers the completion service being
// unreachable or answering with an unexpected shape; ErrPlanParse covers a
// response that survives sanitization but is not the JSON we asked for.
var (
	ErrGeneration = errors.New("plan generation failed")
	ErrPlanParse  = errors.New("plan parse failed")
)

const defaultMaxTokens = 4096

func resolveMaxTokens(value int) int {
	if value > 0 {
		return value
	}
	return defaultMaxTokens
}
