package orchestrator

import (
	"context"
	"fmt"
	"strings"

	"timesheet-assistant/pkg/llmprovider"
)

// ProcessQuery runs the ReAct loop for one user turn: Reason, Act, Observe.
// Only the user text and the final answer are kept in session history.
func (o *Orchestrator) ProcessQuery(ctx context.Context, sessionID, query string) (string, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return "", ErrEmptyQuery
	}

	userMsg := textMessage(llmprovider.RoleUser, query)
	now := o.now().In(o.loc)

	req := &llmprovider.Request{
		SystemInstruction: &llmprovider.Message{Parts: []llmprovider.Part{{Text: SystemPromptAgent + buildTimeContext(now)}}},
		Messages:          append(o.history(sessionID), userMsg),
		Tools:             o.registry.ToFunctionDefinitions(),
		Temperature:       DefaultTemperature,
	}

	var observed []llmprovider.FunctionResponse
	for step := 1; step <= o.maxSteps; step++ {
		o.l.Debugf(ctx, LogMsgAgentStep, LogPrefixProcessQuery, step, o.maxSteps)

		// 1. Reason
		resp, err := o.llm.GenerateContent(ctx, req)
		if err != nil {
			o.l.Errorf(ctx, "%s: %v", LogPrefixProcessQuery, err)
			return "", fmt.Errorf(ErrMsgAgentLLMError, step, err)
		}

		calls := functionCalls(resp)
		if len(calls) == 0 {
			answer := strings.TrimSpace(resp.Text())
			if answer == "" {
				return "", ErrEmptyLLMResponse
			}
			o.l.Infof(ctx, LogMsgAgentFinished, LogPrefixProcessQuery, step)
			if o.needsFormatting(observed, answer) {
				answer = o.formatEntries(ctx, query, answer, observed)
			}
			o.remember(sessionID, userMsg, textMessage(llmprovider.RoleAssistant, answer))
			return answer, nil
		}

		// 2. Act
		results := llmprovider.Message{Role: llmprovider.RoleFunction}
		for _, call := range calls {
			fr := &llmprovider.FunctionResponse{
				ID:       call.ID,
				Name:     call.Name,
				Response: o.executeTool(ctx, call),
			}
			results.Parts = append(results.Parts, llmprovider.Part{FunctionResponse: fr})
			observed = append(observed, *fr)
		}

		// 3. Observe
		req.Messages = append(req.Messages,
			llmprovider.Message{Role: llmprovider.RoleAssistant, Parts: resp.Content.Parts},
			results,
		)
	}

	o.l.Warnf(ctx, LogMsgAgentMaxSteps, LogPrefixProcessQuery, o.maxSteps)
	o.remember(sessionID, userMsg, textMessage(llmprovider.RoleAssistant, ErrMsgMaxStepsExceeded))
	return ErrMsgMaxStepsExceeded, nil
}

func (o *Orchestrator) executeTool(ctx context.Context, call *llmprovider.FunctionCall) interface{} {
	o.l.Infof(ctx, LogMsgAgentCallingTool, LogPrefixProcessQuery, call.Name, call.Args)

	tool, ok := o.registry.Get(call.Name)
	if !ok {
		o.l.Warnf(ctx, LogMsgToolNotFound, LogPrefixProcessQuery, call.Name)
		return map[string]string{"error": "tool not found: " + call.Name}
	}

	res, err := tool.Execute(ctx, call.Args)
	if err != nil {
		o.l.Warnf(ctx, LogMsgToolExecutionError, LogPrefixProcessQuery, call.Name, err)
		return map[string]string{"error": err.Error()}
	}
	return res
}

func functionCalls(resp *llmprovider.Response) []*llmprovider.FunctionCall {
	var calls []*llmprovider.FunctionCall
	for _, p := range resp.Content.Parts {
		if p.FunctionCall != nil {
			calls = append(calls, p.FunctionCall)
		}
	}
	return calls
}

func textMessage(role, text string) llmprovider.Message {
	return llmprovider.Message{Role: role, Parts: []llmprovider.Part{{Text: text}}}
}
