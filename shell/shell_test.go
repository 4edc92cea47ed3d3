package shell

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/cinebrief/cinebrief/components"
	"github.com/cinebrief/cinebrief/schema"
)

type fakeRunner struct {
	calls   []string
	answers map[string]string
	err     error
}

func (r *fakeRunner) Name() string {
	return "FakeRunner"
}

func (r *fakeRunner) Run(ctx context.Context, input *schema.Input, output *schema.Output, llmResp *components.LLMResponse) error {
	r.calls = append(r.calls, input.ChatMessage)
	if r.err != nil {
		return r.err
	}
	if answer, ok := r.answers[input.ChatMessage]; ok {
		output.ChatMessage = answer
	}
	return nil
}

func TestShellInvokesRunnerOncePerLine(t *testing.T) {
	runner := &fakeRunner{
		answers: map[string]string{
			"inception":    "summary written to movie_summaries/Inception_summary.txt",
			"the godfater": "summary written to movie_summaries/The_Godfather_summary.txt",
		},
	}
	in := strings.NewReader("inception\nthe godfater\nquit\n")
	out := new(bytes.Buffer)
	sh := New(runner, WithInput(in), WithOutput(out))
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("shell run failed: %v", err)
	}
	if len(runner.calls) != 2 {
		t.Fatalf("expect 2 runner invocations, but got %d", len(runner.calls))
	}
	if runner.calls[0] != "inception" || runner.calls[1] != "the godfater" {
		t.Errorf("unexpected runner inputs: %v", runner.calls)
	}
	if !strings.Contains(out.String(), "Inception_summary.txt") {
		t.Errorf("expect answer in output, but got %q", out.String())
	}
}

func TestShellQuitIsCaseInsensitive(t *testing.T) {
	for _, word := range []string{"quit", "QUIT", "Quit", "qUiT"} {
		runner := new(fakeRunner)
		in := strings.NewReader(word + "\n")
		out := new(bytes.Buffer)
		sh := New(runner, WithInput(in), WithOutput(out))
		if err := sh.Run(context.Background()); err != nil {
			t.Fatalf("shell run failed for %q: %v", word, err)
		}
		if len(runner.calls) != 0 {
			t.Errorf("expect no runner invocation for %q, but got %d", word, len(runner.calls))
		}
	}
}

func TestShellRejectsBlankInput(t *testing.T) {
	runner := new(fakeRunner)
	in := strings.NewReader("\n   \n\t\nquit\n")
	out := new(bytes.Buffer)
	sh := New(runner, WithInput(in), WithOutput(out))
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("shell run failed: %v", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("expect no runner invocation for blank lines, but got %d", len(runner.calls))
	}
	if got := strings.Count(out.String(), "Please enter a movie title."); got != 3 {
		t.Errorf("expect 3 re-prompt notices, but got %d", got)
	}
}

func TestShellContinuesAfterRunnerError(t *testing.T) {
	runner := &fakeRunner{err: errors.New("upstream call failed")}
	in := strings.NewReader("first\nsecond\nquit\n")
	out := new(bytes.Buffer)
	sh := New(runner, WithInput(in), WithOutput(out))
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("shell run failed: %v", err)
	}
	if len(runner.calls) != 2 {
		t.Fatalf("expect 2 runner invocations despite errors, but got %d", len(runner.calls))
	}
	if got := strings.Count(out.String(), "error: upstream call failed"); got != 2 {
		t.Errorf("expect 2 error lines, but got %d", got)
	}
}

func TestShellStopsAtEndOfInput(t *testing.T) {
	runner := new(fakeRunner)
	in := strings.NewReader("")
	out := new(bytes.Buffer)
	sh := New(runner, WithInput(in), WithOutput(out))
	if err := sh.Run(context.Background()); err != nil {
		t.Fatalf("shell run failed at end of input: %v", err)
	}
	if len(runner.calls) != 0 {
		t.Errorf("expect no runner invocation, but got %d", len(runner.calls))
	}
}
