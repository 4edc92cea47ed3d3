package movie

import (
	"errors"

	"github.com/cinebrief/cinebrief/tools"
	"github.com/cinebrief/cinebrief/tools/orchestration"
)

// NewToolRouter returns the orchestration tool dispatching pipeline tool
// requests: lookups go to the movie database tool, documents go to the file
// writer. The routing policy is this selector, nothing else.
func NewToolRouter(lookup, writer tools.OrchestrationTool, opts ...tools.Option) *orchestration.Tool[ToolRequest] {
	selector := func(req *ToolRequest) (tools.OrchestrationTool, any, error) {
		switch {
		case req.Lookup != nil:
			return lookup, req.Lookup, nil
		case req.Document != nil:
			return writer, req.Document, nil
		}
		return nil, nil, errors.New("empty tool request")
	}
	return orchestration.New(selector, opts...)
}
