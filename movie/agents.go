package movie

import (
	"strings"

	"github.com/cinebrief/cinebrief/agents"
	"github.com/cinebrief/cinebrief/components/systemprompt/cot"
	"github.com/cinebrief/cinebrief/components/systemprompt/simple"
	"github.com/cinebrief/cinebrief/schema"
	"github.com/cinebrief/cinebrief/tools/omdb"
	"github.com/cinebrief/cinebrief/tools/summaryfile"
)

const (
	RefinerName   = "TitleRefiner"
	EnhancerName  = "MovieEnhancer"
	FormatterName = "SummaryFormatter"
)

// NewRefinerAgent returns the agent correcting and completing movie titles.
// It is free to return the input unchanged when it cannot confidently
// correct it.
func NewRefinerAgent(opts ...agents.Option) *agents.Agent[schema.Input, RefinedTitle] {
	generator := cot.New(
		cot.WithBackground([]string{
			"- This assistant is a movie title expert that corrects misspelled and completes partial movie titles.",
		}),
		cot.WithSteps([]string{
			"- Identify the movie the user most likely means, tolerating typos, partial words and missing subtitles.",
			"- Prefer the official release title, including any subtitle.",
			"- If no confident correction exists, keep the input as the title.",
		}),
		cot.WithOutputInstructs([]string{
			"- Return exactly one movie title and nothing else.",
			"- Do not add commentary, quotes or alternatives.",
		}),
	)
	opts = append(opts,
		agents.WithName(RefinerName),
		agents.WithSystemPromptGenerator(generator),
	)
	return agents.NewAgent[schema.Input, RefinedTitle](opts...)
}

// NewEnhancerAgent returns the agent turning a raw database record into a
// Summary with a more engaging plot. Facts from the record are kept as-is.
func NewEnhancerAgent(opts ...agents.Option) *agents.Agent[omdb.Record, Summary] {
	generator := cot.New(
		cot.WithBackground([]string{
			"- This assistant is a movie editor preparing database records for a reader-facing summary.",
		}),
		cot.WithSteps([]string{
			"- Copy title, year, rating, genre, director, runtime and content rating from the record unchanged.",
			"- Keep at most the first 5 actors, in billing order.",
			"- Rewrite the plot to be more engaging without inventing events or spoiling the ending.",
		}),
		cot.WithOutputInstructs([]string{
			"- Never invent facts that are not in the record.",
		}),
	)
	opts = append(opts,
		agents.WithName(EnhancerName),
		agents.WithSystemPromptGenerator(generator),
	)
	return agents.NewAgent[omdb.Record, Summary](opts...)
}

// NewFormatterAgent returns the agent rendering a Summary into a decorated
// document with a derived filename. Formatting is a fixed layout recipe, so
// the prompt is a free-form instruction block rather than reasoning steps.
func NewFormatterAgent(opts ...agents.Option) *agents.Agent[Summary, summaryfile.Document] {
	generator := simple.New(strings.Join([]string{
		"This assistant formats movie summaries into decorated plain text documents.",
		"",
		"Compose a multi-line document with a banner, then sections for year, rating, cast, genre, director, plot, runtime and content rating.",
		"Use '=' ruler lines and section labels in capitals to decorate the document.",
		"Derive the filename from the movie title: replace spaces and punctuation with underscores and append '_summary.txt'.",
		"The content field holds the full document body, ready to write verbatim.",
		"The filename field holds only the file name, never a directory.",
		"Always respond using the proper JSON schema.",
	}, "\n"))
	opts = append(opts,
		agents.WithName(FormatterName),
		agents.WithSystemPromptGenerator(generator),
	)
	return agents.NewAgent[Summary, summaryfile.Document](opts...)
}
