package movie

import (
	"context"
	"testing"

	"github.com/cinebrief/cinebrief/tools"
	"github.com/cinebrief/cinebrief/tools/omdb"
	"github.com/cinebrief/cinebrief/tools/summaryfile"
)

type recordingTool struct {
	calls  int
	lastIn any
	out    any
}

func (t *recordingTool) RunOrchestration(ctx context.Context, input any) (any, error) {
	t.calls++
	t.lastIn = input
	return t.out, nil
}

func TestToolRouterDispatchesLookup(t *testing.T) {
	lookup := &recordingTool{out: &omdb.Record{Title: "Inception", Response: "True"}}
	writer := new(recordingTool)
	router := NewToolRouter(lookup, writer)
	out, err := router.RunOrchestration(context.Background(), &ToolRequest{Lookup: omdb.NewInput("Inception")})
	if err != nil {
		t.Fatalf("route failed: %v", err)
	}
	if lookup.calls != 1 || writer.calls != 0 {
		t.Errorf("expect only the lookup tool, but got lookup=%d writer=%d", lookup.calls, writer.calls)
	}
	if in, ok := lookup.lastIn.(*omdb.Input); !ok || in.Title != "Inception" {
		t.Errorf("expect the unwrapped lookup input, but got %#v", lookup.lastIn)
	}
	if record, ok := out.(*omdb.Record); !ok || record.Title != "Inception" {
		t.Errorf("expect the tool output to pass through, but got %#v", out)
	}
}

func TestToolRouterDispatchesDocument(t *testing.T) {
	lookup := new(recordingTool)
	writer := &recordingTool{out: &summaryfile.Result{Path: "p", Message: "summary written to p"}}
	router := NewToolRouter(lookup, writer)
	doc := summaryfile.NewDocument("f.txt", "body")
	if _, err := router.RunOrchestration(context.Background(), &ToolRequest{Document: doc}); err != nil {
		t.Fatalf("route failed: %v", err)
	}
	if lookup.calls != 0 || writer.calls != 1 {
		t.Errorf("expect only the writer tool, but got lookup=%d writer=%d", lookup.calls, writer.calls)
	}
	if writer.lastIn != doc {
		t.Errorf("expect the unwrapped document, but got %#v", writer.lastIn)
	}
}

func TestToolRouterRejectsEmptyRequest(t *testing.T) {
	router := NewToolRouter(new(recordingTool), new(recordingTool))
	if _, err := router.RunOrchestration(context.Background(), new(ToolRequest)); err == nil {
		t.Error("expect an error for an empty tool request")
	}
}

func TestToolRouterAcceptsToolOptions(t *testing.T) {
	router := NewToolRouter(new(recordingTool), new(recordingTool),
		tools.WithTitle("MovieToolRouter"),
		tools.WithDescription("dispatches tool requests"),
	)
	if got := router.Title(); got != "MovieToolRouter" {
		t.Errorf("expect title MovieToolRouter, but got %s", got)
	}
	if got := router.Description(); got != "dispatches tool requests" {
		t.Errorf("expect the configured description, but got %s", got)
	}
}
