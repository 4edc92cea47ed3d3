package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/bububa/instructor-go/pkg/instructor"
	cohereClient "github.com/cohere-ai/cohere-go/v2/client"
	cohereOption "github.com/cohere-ai/cohere-go/v2/option"
	"github.com/joho/godotenv"
	anthropic "github.com/liushuangls/go-anthropic/v2"
	openai "github.com/sashabaranov/go-openai"

	"github.com/cinebrief/cinebrief/agents"
	"github.com/cinebrief/cinebrief/movie"
	"github.com/cinebrief/cinebrief/schema"
	"github.com/cinebrief/cinebrief/shell"
)

func main() {
	configPath := flag.String("config", "config.yaml", "path to the optional YAML configuration file")
	flag.Parse()

	// .env is optional, real environment variables win
	godotenv.Load()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load configuration: %v\n", err)
		os.Exit(1)
	}
	if err := validateSecrets(cfg.Provider, os.Getenv); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := log.New(os.Stderr, "[cinebrief] ", log.LstdFlags)
	pipeline := movie.NewPipeline(
		movie.WithClient(newInstructor(cfg.Provider)),
		movie.WithModel(cfg.Model),
		movie.WithTemperature(cfg.Temperature),
		movie.WithMaxTokens(cfg.MaxTokens),
		movie.WithMovieAPIKey(os.Getenv("OMDB_API_KEY")),
		movie.WithOutputDir(cfg.OutputDir),
		movie.WithLogger(logger),
	)

	// A single explicit route: every query goes to the movie pipeline.
	orchestrator := agents.NewOrchestrationAgent[schema.Input, schema.Output](
		func(req *schema.Input) (agents.AnonymousAgent, any, error) {
			return pipeline, req, nil
		})
	orchestrator.SetName("MovieOrchestrator")

	sh := shell.New(orchestrator)
	if err := sh.Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "shell: %v\n", err)
		os.Exit(1)
	}
}

func newInstructor(provider string) instructor.Instructor {
	switch instructor.Provider(strings.ToLower(provider)) {
	case instructor.ProviderAnthropic:
		authToken := os.Getenv("ANTHROPIC_API_KEY")
		baseURL := os.Getenv("ANTHROPIC_API_BASE_URL")
		opts := make([]anthropic.ClientOption, 0, 1)
		if baseURL != "" {
			opts = append(opts, anthropic.WithBaseURL(baseURL))
		}
		clt := anthropic.NewClient(authToken, opts...)
		return instructor.FromAnthropic(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithValidation())
	case instructor.ProviderCohere:
		authToken := os.Getenv("COHERE_API_KEY")
		baseURL := os.Getenv("COHERE_API_BASE_URL")
		opts := make([]cohereOption.RequestOption, 0, 2)
		opts = append(opts, cohereOption.WithToken(authToken))
		if baseURL != "" {
			opts = append(opts, cohereOption.WithBaseURL(baseURL))
		}
		clt := cohereClient.NewClient(opts...)
		return instructor.FromCohere(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithValidation())
	default:
		authToken := os.Getenv("OPENAI_API_KEY")
		baseURL := os.Getenv("OPENAI_API_BASE_URL")
		cfg := openai.DefaultConfig(authToken)
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		clt := openai.NewClientWithConfig(cfg)
		return instructor.FromOpenAI(clt, instructor.WithMode(instructor.ModeJSON), instructor.WithValidation())
	}
}
