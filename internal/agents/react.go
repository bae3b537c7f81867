package agents

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/example/veritas-agent/internal/models"
	"github.com/example/veritas-agent/internal/providers/llm"
	"github.com/example/veritas-agent/internal/tools"
)

const reactTemplate = `Answer the following questions as best you can. You have access to the following tools:

%s

Use the following format:

Question: the input question you must answer
Thought: you should always think about what to do
Action: the action to take, should be one of [%s]
Action Input: the input to the action
Observation: the result of the action
... (this Thought/Action/Action Input/Observation can repeat N times)
Thought: I now know the final answer
Final Answer: A JSON object with the following keys:
- "verdict": "True", "False", "Misleading", or "Unverified"
- "confidence": a float between 0.0 and 1.0
- "explanation": a detailed explanation of the analysis
- "sources": a list of source names or URLs
- "corrective_information": specific facts to counter misinformation (if applicable, else null)

Begin!`

// Options bounds the react agent's loops.
type Options struct {
	// MaxRetries is the total number of generation attempts before the
	// safety loop gives up.
	MaxRetries int
	// MaxIterations caps tool rounds within a single attempt.
	MaxIterations int
	// CallTimeout bounds each upstream model call.
	CallTimeout time.Duration
}

func (o *Options) applyDefaults() {
	if o.MaxRetries <= 0 {
		o.MaxRetries = 2
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = 6
	}
	if o.CallTimeout <= 0 {
		o.CallTimeout = 45 * time.Second
	}
}

// ReactAgent drives an LLM through a Thought/Action/Observation loop over
// the registered tools, then gates the result through a safety validator
// with a bounded retry budget.
type ReactAgent struct {
	llm       llm.Client
	tools     *tools.Registry
	validator Validator
	opts      Options
	log       *zap.Logger
}

func NewReactAgent(client llm.Client, registry *tools.Registry, validator Validator, opts Options, log *zap.Logger) *ReactAgent {
	opts.applyDefaults()
	return &ReactAgent{llm: client, tools: registry, validator: validator, opts: opts, log: log}
}

// Invoke runs the validated analysis loop. Provider failures are terminal
// and yield an Error record; a validator that keeps rejecting exhausts the
// retry budget and yields the fixed Unverified record. Invoke itself only
// returns an error for failures outside that contract.
func (a *ReactAgent) Invoke(ctx context.Context, query string) (*models.AnalysisResult, error) {
	history := []llm.Message{llm.User(query)}
	for attempt := 1; attempt <= a.opts.MaxRetries; attempt++ {
		content, err := a.converse(ctx, history)
		if err != nil {
			a.log.Error("agent invocation failed", zap.Error(err))
			return errorResult(err), nil
		}

		passed, reason := a.validator.Validate(ctx, content)
		if passed {
			return parseResult(content), nil
		}

		a.log.Warn("safety check rejected response",
			zap.Int("attempt", attempt),
			zap.Int("budget", a.opts.MaxRetries),
			zap.String("reason", reason))
		history = append(history,
			llm.Assistant(content),
			llm.User(fmt.Sprintf("Safety Agent Feedback: %s. Please regenerate the response fixing these issues.", reason)),
		)
	}
	return exhaustedResult(), nil
}

// converse runs one react episode over the accumulated history and returns
// the model's final text.
func (a *ReactAgent) converse(ctx context.Context, history []llm.Message) (string, error) {
	msgs := make([]llm.Message, 0, len(history)+1)
	msgs = append(msgs, llm.System(a.systemPrompt()))
	msgs = append(msgs, history...)

	var content string
	for i := 0; i < a.opts.MaxIterations; i++ {
		cctx, cancel := context.WithTimeout(ctx, a.opts.CallTimeout)
		out, err := a.llm.Generate(cctx, msgs)
		cancel()
		if err != nil {
			return "", err
		}
		content = out

		if final, ok := parseFinalAnswer(out); ok {
			return final, nil
		}
		action, input, ok := parseAction(out)
		if !ok {
			// The model skipped the scaffold; treat its text as the answer.
			return content, nil
		}

		observation, err := a.tools.Execute(ctx, action, input)
		if err != nil {
			observation = fmt.Sprintf("Error: %v", err)
		}
		a.log.Debug("tool invoked", zap.String("tool", action))
		msgs = append(msgs, llm.Assistant(out), llm.User("Observation: "+observation))
	}
	// Tool budget spent without a final answer; downstream parsing will
	// degrade this to an Unverified record.
	return content, nil
}

func (a *ReactAgent) systemPrompt() string {
	var lines, names []string
	for _, t := range a.tools.List() {
		lines = append(lines, fmt.Sprintf("%s: %s", t.Name(), t.Description()))
		names = append(names, t.Name())
	}
	return fmt.Sprintf(reactTemplate, strings.Join(lines, "\n"), strings.Join(names, ", "))
}

var (
	actionRe      = regexp.MustCompile(`(?m)^\s*Action:\s*(.+)\s*$`)
	actionInputRe = regexp.MustCompile(`(?m)^\s*Action Input:\s*(.+)\s*$`)
)

func parseFinalAnswer(out string) (string, bool) {
	idx := strings.Index(out, "Final Answer:")
	if idx == -1 {
		return "", false
	}
	return strings.TrimSpace(out[idx+len("Final Answer:"):]), true
}

func parseAction(out string) (action, input string, ok bool) {
	am := actionRe.FindStringSubmatch(out)
	im := actionInputRe.FindStringSubmatch(out)
	if am == nil || im == nil {
		return "", "", false
	}
	return strings.TrimSpace(am[1]), strings.TrimSpace(im[1]), true
}
