package orchestration

import (
	"context"
	"errors"

	"github.com/cinebrief/cinebrief/schema"
	"github.com/cinebrief/cinebrief/tools"
)

// ToolSelector returns a tool and its parameters based on the input. The
// selector is explicit routing logic, not model generation.
type ToolSelector[I schema.Schema] func(req *I) (tools.OrchestrationTool, any, error)

// Tool is an orchestration tool multiplexing over a tool selector
type Tool[I schema.Schema] struct {
	tools.Config
	selector ToolSelector[I]
}

func New[I schema.Schema](selector ToolSelector[I], opts ...tools.Option) *Tool[I] {
	ret := new(Tool[I])
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("OrchestrationTool")
	}
	ret.selector = selector
	return ret
}

// RunOrchestration returns a tool result based on input for orchestration
func (t *Tool[I]) RunOrchestration(ctx context.Context, input any) (any, error) {
	in, ok := input.(*I)
	if !ok {
		return nil, errors.New("invalid tool input schema")
	}
	tool, params, err := t.selector(in)
	if err != nil {
		return nil, err
	}
	return tool.RunOrchestration(ctx, params)
}
