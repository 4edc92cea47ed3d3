package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cinebrief/cinebrief/components"
	"github.com/cinebrief/cinebrief/schema"
)

const (
	// QuitWord terminates the loop, case-insensitive
	QuitWord      = "quit"
	defaultPrompt = "Enter a movie title: "
)

// Runner resolves one user query to a final answer. The interactive shell
// invokes it exactly once per accepted input line.
type Runner interface {
	Name() string
	Run(ctx context.Context, input *schema.Input, output *schema.Output, llmResp *components.LLMResponse) error
}

// Shell reads movie titles line by line from a terminal, forwards each
// non-empty line to its runner, prints the answer, and loops until the quit
// word or end of input. Requests run strictly one at a time.
type Shell struct {
	runner Runner
	in     io.Reader
	out    io.Writer
	prompt string
}

type Option func(*Shell)

func WithInput(r io.Reader) Option {
	return func(s *Shell) {
		s.in = r
	}
}

func WithOutput(w io.Writer) Option {
	return func(s *Shell) {
		s.out = w
	}
}

func WithPrompt(prompt string) Option {
	return func(s *Shell) {
		s.prompt = prompt
	}
}

func New(runner Runner, opts ...Option) *Shell {
	ret := &Shell{
		runner: runner,
		in:     os.Stdin,
		out:    os.Stdout,
		prompt: defaultPrompt,
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// Run executes the read-resolve-print loop until the quit word or end of
// input. Runner failures are printed and the loop continues; they never end
// the session.
func (s *Shell) Run(ctx context.Context) error {
	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			fmt.Fprintln(s.out)
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			fmt.Fprintln(s.out, "Please enter a movie title.")
			continue
		}
		if strings.EqualFold(line, QuitWord) {
			fmt.Fprintln(s.out, "Goodbye!")
			return nil
		}
		output := schema.NewOutput("")
		if err := s.runner.Run(ctx, schema.NewInput(line), output, nil); err != nil {
			fmt.Fprintf(s.out, "error: %v\n", err)
			continue
		}
		fmt.Fprintln(s.out, output.ChatMessage)
	}
}
