/*
Package agent runs the GitHub QnA agent: a chat model bound to the
repository-analysis tools, driven in a ReAct loop until the model produces a
final answer.
*/
package agent

import (
	"context"
	"fmt"

	"github.com/cloudwego/eino/components/model"
	"github.com/cloudwego/eino/components/tool"
	"github.com/cloudwego/eino/compose"
	"github.com/cloudwego/eino/schema"
	"github.com/josephgoksu/RepoWing/prompts"
)

const defaultMaxIterations = 10

// Agent drives one chat model with a fixed tool set. It keeps no conversation
// state between Run calls.
type Agent struct {
	chatModel model.BaseChatModel
	tools     []tool.InvokableTool
	maxIters  int
	verbose   bool
}

// New builds an agent from a chat model and the tools it may call.
func New(chatModel model.BaseChatModel, invokable []tool.InvokableTool) *Agent {
	return &Agent{
		chatModel: chatModel,
		tools:     invokable,
		maxIters:  defaultMaxIterations,
	}
}

// SetVerbose enables step-by-step logging of the tool-use loop.
func (a *Agent) SetVerbose(v bool) { a.verbose = v }

// SetMaxIterations caps the number of tool-use rounds before the loop stops.
func (a *Agent) SetMaxIterations(n int) {
	if n > 0 && n <= 20 {
		a.maxIters = n
	}
}

// Run sends one user message through the ReAct loop and returns the model's
// final answer: LLM -> (tool call -> tool result -> LLM)* -> answer.
func (a *Agent) Run(ctx context.Context, userMessage string) (string, error) {
	baseTools := make([]tool.BaseTool, len(a.tools))
	for i, t := range a.tools {
		baseTools[i] = t
	}
	toolsNode, err := compose.NewToolNode(ctx, &compose.ToolsNodeConfig{
		Tools: baseTools,
	})
	if err != nil {
		return "", fmt.Errorf("create tools node: %w", err)
	}

	toolInfos := make([]*schema.ToolInfo, 0, len(a.tools))
	for _, t := range a.tools {
		info, err := t.Info(ctx)
		if err != nil {
			continue
		}
		toolInfos = append(toolInfos, info)
	}

	messages := []*schema.Message{
		schema.SystemMessage(prompts.AgentSystem),
		schema.UserMessage(userMessage),
	}

	var final string
	for iter := 0; iter < a.maxIters; iter++ {
		select {
		case <-ctx.Done():
			return "", ctx.Err()
		default:
		}

		if a.verbose {
			fmt.Printf("  [agent iter %d] calling model...\n", iter+1)
		}

		resp, err := a.chatModel.Generate(ctx, messages, model.WithTools(toolInfos))
		if err != nil {
			return "", fmt.Errorf("generate (iter %d): %w", iter+1, err)
		}
		messages = append(messages, resp)

		if len(resp.ToolCalls) == 0 {
			final = resp.Content
			break
		}

		if a.verbose {
			for _, tc := range resp.ToolCalls {
				fmt.Printf("  [agent] tool call: %s(%s)\n", tc.Function.Name, tc.Function.Arguments)
			}
		}

		toolResults, err := toolsNode.Invoke(ctx, resp)
		if err != nil {
			// Surface tool errors to the model instead of aborting the loop.
			toolResults = []*schema.Message{
				schema.ToolMessage(fmt.Sprintf("Error executing tools: %v", err), "error"),
			}
		}
		messages = append(messages, toolResults...)
	}

	if final == "" {
		// Max iterations hit; fall back to whatever the model said last.
		last := messages[len(messages)-1]
		if last.Content != "" {
			return last.Content, nil
		}
		return "", fmt.Errorf("no final answer after %d iterations", a.maxIters)
	}
	return final, nil
}
