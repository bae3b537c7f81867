package tools

import (
	"context"

	"github.com/example/veritas-agent/internal/rag"
)

// LibraryTool exposes the trusted retrieval library to the agent. The
// library degrades to advisory strings on failure, so Execute never errors.
type LibraryTool struct {
	Library rag.Library
	TopK    int
}

func (t *LibraryTool) Name() string { return "trusted_library" }

func (t *LibraryTool) Description() string {
	return "ALWAYS use this first. Searches a local database of verified medical facts " +
		"from CDC, WHO, and other trusted sources. Input: the claim or topic."
}

func (t *LibraryTool) Execute(ctx context.Context, input string) (string, error) {
	topK := t.TopK
	if topK <= 0 {
		topK = 2
	}
	return t.Library.Query(ctx, input, topK), nil
}
