package llm

import (
	"context"
)

// Role identifies the author of a conversation turn.
type Role string

const (
	RoleSystem    Role = "system"
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// Message is one turn of the conversation sent to a provider.
type Message struct {
	Role    Role
	Content string
}

// Client is the minimal interface the agent and safety validator need.
// Any provider implementation should satisfy this.
type Client interface {
	// Generate produces the next assistant turn for the given history.
	Generate(ctx context.Context, messages []Message) (string, error)

	// Verify asks the model to judge an output against a rubric prompt.
	// The bool is a best-effort signal; callers that need structure should
	// parse the returned text themselves.
	Verify(ctx context.Context, prompt string, output string) (bool, string, error)
}

// User is shorthand for a user-role message.
func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Assistant is shorthand for an assistant-role message.
func Assistant(content string) Message {
	return Message{Role: RoleAssistant, Content: content}
}

// System is shorthand for a system-role message.
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}
