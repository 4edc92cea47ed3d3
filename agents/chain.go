package agents

import (
	"context"
	"errors"

	"github.com/cinebrief/cinebrief/components"
	"github.com/cinebrief/cinebrief/schema"
)

// Chain runs a fixed sequence of agents, feeding each agent's output into the
// next. The order is deterministic and declared at construction time.
type Chain[I schema.Schema, O schema.Schema] struct {
	name   string
	agents []ChainableAgent
}

// NewChain returns a new Chain instance
func NewChain[I schema.Schema, O schema.Schema](agents ...ChainableAgent) *Chain[I, O] {
	return &Chain[I, O]{
		agents: agents,
	}
}

func (c *Chain[I, O]) Name() string {
	return c.name
}

func (c *Chain[I, O]) SetName(name string) {
	c.name = name
}

// Run runs the chained agents with the given user input synchronously.
func (c *Chain[I, O]) Run(ctx context.Context, input *I, output *O) ([]components.LLMResponse, error) {
	l := len(c.agents)
	llmRespList := make([]components.LLMResponse, 0, l)
	var (
		in  any = input
		out any
	)
	for _, agent := range c.agents {
		llmResp := new(components.LLMResponse)
		if ret, err := agent.RunForChain(ctx, in, llmResp); err != nil {
			return llmRespList, err
		} else {
			in = ret
			out = ret
		}
		llmRespList = append(llmRespList, *llmResp)
	}
	if outO, ok := out.(*O); !ok {
		return llmRespList, errors.New("invalid output schema")
	} else {
		*output = *outO
	}
	return llmRespList, nil
}

// RunForChain runs the chained agents with the given user input for an outer chain.
func (c *Chain[I, O]) RunForChain(ctx context.Context, input any, llmResp *components.LLMResponse) (any, error) {
	in, ok := input.(*I)
	if !ok {
		return nil, errors.New("invalid input schema")
	}
	out := new(O)
	llmRespList, err := c.Run(ctx, in, out)
	if err != nil {
		return nil, err
	}
	for _, v := range llmRespList {
		if v.Usage == nil {
			continue
		}
		if llmResp.Usage == nil {
			llmResp.Usage = new(components.LLMUsage)
		}
		llmResp.Usage.Merge(v.Usage)
	}
	return out, nil
}
