package movie

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/bububa/instructor-go/pkg/instructor"

	"github.com/cinebrief/cinebrief/agents"
	"github.com/cinebrief/cinebrief/components"
	"github.com/cinebrief/cinebrief/schema"
	"github.com/cinebrief/cinebrief/tools"
	"github.com/cinebrief/cinebrief/tools/omdb"
	"github.com/cinebrief/cinebrief/tools/summaryfile"
)

const PipelineName = "MoviePipeline"

// Pipeline resolves a raw movie query into a written summary file through a
// fixed, deterministic stage order: refine the title, look the movie up,
// enhance and format the record, write the document. The original design let
// a model improvise the tool order; here the order is explicit and the only
// recovery rule is a single refine retry after a lookup miss.
type Pipeline struct {
	refiner  agents.ChainableAgent
	composer agents.ChainableAgent
	router   tools.OrchestrationTool
	logger   *log.Logger
	resets   []func()
}

type Config struct {
	client      instructor.Instructor
	model       string
	temperature float32
	maxTokens   int
	movieAPIKey string
	movieAPIURL string
	outputDir   string
	httpClient  *http.Client
	logger      *log.Logger
	refiner     agents.ChainableAgent
	composer    agents.ChainableAgent
	router      tools.OrchestrationTool
}

type Option func(*Config)

// WithClient set the language model client used by every stage. The client
// is an explicit dependency, never a package level singleton.
func WithClient(clt instructor.Instructor) Option {
	return func(c *Config) {
		c.client = clt
	}
}

func WithModel(model string) Option {
	return func(c *Config) {
		c.model = model
	}
}

func WithTemperature(temperature float32) Option {
	return func(c *Config) {
		c.temperature = temperature
	}
}

func WithMaxTokens(maxTokens int) Option {
	return func(c *Config) {
		c.maxTokens = maxTokens
	}
}

// WithMovieAPIKey set the movie database access key
func WithMovieAPIKey(key string) Option {
	return func(c *Config) {
		c.movieAPIKey = key
	}
}

// WithMovieAPIURL overrides the movie database endpoint, mainly for tests
func WithMovieAPIURL(baseURL string) Option {
	return func(c *Config) {
		c.movieAPIURL = baseURL
	}
}

func WithOutputDir(dir string) Option {
	return func(c *Config) {
		c.outputDir = dir
	}
}

func WithHttpClient(clt *http.Client) Option {
	return func(c *Config) {
		c.httpClient = clt
	}
}

func WithLogger(logger *log.Logger) Option {
	return func(c *Config) {
		c.logger = logger
	}
}

// WithRefiner replaces the refiner stage, mainly for tests
func WithRefiner(a agents.ChainableAgent) Option {
	return func(c *Config) {
		c.refiner = a
	}
}

// WithComposer replaces the enhance+format stage, mainly for tests
func WithComposer(a agents.ChainableAgent) Option {
	return func(c *Config) {
		c.composer = a
	}
}

// WithRouter replaces the tool router, mainly for tests
func WithRouter(t tools.OrchestrationTool) Option {
	return func(c *Config) {
		c.router = t
	}
}

// NewPipeline wires the three stage agents and the two tools together.
func NewPipeline(opts ...Option) *Pipeline {
	cfg := new(Config)
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.logger == nil {
		cfg.logger = log.Default()
	}
	ret := &Pipeline{
		refiner:  cfg.refiner,
		composer: cfg.composer,
		router:   cfg.router,
		logger:   cfg.logger,
	}
	agentOpts := []agents.Option{
		agents.WithClient(cfg.client),
		agents.WithModel(cfg.model),
		agents.WithTemperature(cfg.temperature),
		agents.WithMaxTokens(cfg.maxTokens),
	}
	if ret.refiner == nil {
		refiner := NewRefinerAgent(agentOpts...)
		refiner.SetStartHook(func(ctx context.Context, a *agents.Agent[schema.Input, RefinedTitle], in *schema.Input) {
			cfg.logger.Printf("invoking agent: %s", a.Name())
		})
		ret.refiner = refiner
		ret.resets = append(ret.resets, refiner.ResetMemory)
	}
	if ret.composer == nil {
		enhancer := NewEnhancerAgent(agentOpts...)
		enhancer.SetStartHook(func(ctx context.Context, a *agents.Agent[omdb.Record, Summary], in *omdb.Record) {
			cfg.logger.Printf("invoking agent: %s", a.Name())
		})
		formatter := NewFormatterAgent(agentOpts...)
		formatter.SetStartHook(func(ctx context.Context, a *agents.Agent[Summary, summaryfile.Document], in *Summary) {
			cfg.logger.Printf("invoking agent: %s", a.Name())
		})
		ret.composer = agents.NewChain[omdb.Record, summaryfile.Document](enhancer, formatter)
		ret.resets = append(ret.resets, enhancer.ResetMemory, formatter.ResetMemory)
	}
	if ret.router == nil {
		toolOpts := []tools.Option{
			tools.WithStartHook(func(ctx context.Context, t tools.AnonymousTool, in any) {
				cfg.logger.Printf("invoking tool: %s", t.Title())
			}),
			tools.WithErrorHook(func(ctx context.Context, t tools.AnonymousTool, in any, err error) {
				cfg.logger.Printf("tool %s failed: %v", t.Title(), err)
			}),
		}
		lookupOpts := []omdb.Option{
			omdb.WithAPIKey(cfg.movieAPIKey),
			omdb.WithFullPlot(),
			omdb.WithToolOptions(toolOpts...),
		}
		if cfg.movieAPIURL != "" {
			lookupOpts = append(lookupOpts, omdb.WithBaseURL(cfg.movieAPIURL))
		}
		if cfg.httpClient != nil {
			lookupOpts = append(lookupOpts, omdb.WithHttpClient(cfg.httpClient))
		}
		lookup := omdb.New(lookupOpts...)
		writer := summaryfile.New(
			summaryfile.WithOutputDir(cfg.outputDir),
			summaryfile.WithToolOptions(toolOpts...),
		)
		ret.router = NewToolRouter(lookup, writer,
			tools.WithTitle("MovieToolRouter"),
			tools.WithDescription("routes pipeline tool requests to the movie database or the file writer"),
		)
	}
	return ret
}

func (p *Pipeline) Name() string {
	return PipelineName
}

// Process resolves one query to completion. The stage order is fixed; the
// pipeline terminates only once the file writer has confirmed a write, or an
// unrecoverable stage error occurred. Agent memories are reset afterwards so
// nothing leaks between requests.
func (p *Pipeline) Process(ctx context.Context, query string) (string, error) {
	defer func() {
		for _, reset := range p.resets {
			reset()
		}
	}()
	usage := new(components.LLMUsage)
	refined, err := p.refine(ctx, schema.NewInput(query), usage)
	if err != nil {
		return "", err
	}
	record, err := p.lookup(ctx, refined.Title)
	if err != nil {
		return "", err
	}
	if !record.Found() {
		// one deterministic retry: hand the miss back to the refiner
		retry := fmt.Sprintf("%s (a lookup for %q failed: %s; suggest the official release title instead)", query, refined.Title, record.Error)
		if refined, err = p.refine(ctx, schema.NewInput(retry), usage); err != nil {
			return "", err
		}
		if record, err = p.lookup(ctx, refined.Title); err != nil {
			return "", err
		}
		if !record.Found() {
			return "", fmt.Errorf("movie lookup failed for %q: %s", refined.Title, record.Error)
		}
	}
	llmResp := new(components.LLMResponse)
	composed, err := p.composer.RunForChain(ctx, record, llmResp)
	if err != nil {
		return "", err
	}
	usage.Merge(llmResp.Usage)
	doc, ok := composed.(*summaryfile.Document)
	if !ok {
		return "", errors.New("invalid composer output schema")
	}
	written, err := p.router.RunOrchestration(ctx, &ToolRequest{Document: doc})
	if err != nil {
		return "", err
	}
	result, ok := written.(*summaryfile.Result)
	if !ok {
		return "", errors.New("invalid writer output schema")
	}
	p.logger.Printf("pipeline finished (input_tokens=%d output_tokens=%d)", usage.InputTokens, usage.OutputTokens)
	return result.Message, nil
}

// RunAnonymous lets the pipeline serve as an agent behind an orchestrator.
func (p *Pipeline) RunAnonymous(ctx context.Context, input any, llmResp *components.LLMResponse) (any, error) {
	in, ok := input.(*schema.Input)
	if !ok {
		return nil, errors.New("invalid pipeline input schema")
	}
	answer, err := p.Process(ctx, in.ChatMessage)
	if err != nil {
		return nil, err
	}
	return schema.NewOutput(answer), nil
}

func (p *Pipeline) refine(ctx context.Context, in *schema.Input, usage *components.LLMUsage) (*RefinedTitle, error) {
	llmResp := new(components.LLMResponse)
	out, err := p.refiner.RunForChain(ctx, in, llmResp)
	if err != nil {
		return nil, err
	}
	usage.Merge(llmResp.Usage)
	refined, ok := out.(*RefinedTitle)
	if !ok {
		return nil, errors.New("invalid refiner output schema")
	}
	return refined, nil
}

func (p *Pipeline) lookup(ctx context.Context, title string) (*omdb.Record, error) {
	out, err := p.router.RunOrchestration(ctx, &ToolRequest{Lookup: omdb.NewInput(title)})
	if err != nil {
		return nil, err
	}
	record, ok := out.(*omdb.Record)
	if !ok {
		return nil, errors.New("invalid lookup output schema")
	}
	return record, nil
}

var _ agents.AnonymousAgent = (*Pipeline)(nil)
