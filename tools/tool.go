package tools

import (
	"context"

	"github.com/cinebrief/cinebrief/schema"
)

type ITool interface {
	SetTitle(string)
	Title() string
	SetDescription(string)
	Description() string
	SetStartHook(fn func(context.Context, AnonymousTool, any))
	SetEndHook(fn func(context.Context, AnonymousTool, any, any))
	SetErrorHook(fn func(context.Context, AnonymousTool, any, error))
}

type Tool[I schema.Schema, O schema.Schema] interface {
	ITool
	Run(context.Context, *I) (*O, error)
}

type AnonymousTool interface {
	ITool
	RunAnonymous(context.Context, any) (any, error)
}

// OrchestrationTool is a tool runnable with untyped parameters so agents can
// route to it without compile-time schema knowledge.
type OrchestrationTool interface {
	RunOrchestration(context.Context, any) (any, error)
}
