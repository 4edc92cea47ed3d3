package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/cinebrief/cinebrief/schema"
	"github.com/cinebrief/cinebrief/tools"
)

const DefaultBaseURL = "https://www.omdbapi.com"

// MaxCastNames caps the number of actor names surfaced from a record.
const MaxCastNames = 5

// Input is the schema for a movie lookup against the OMDb web API.
type Input struct {
	schema.Base
	// Title is the exact movie title to look up.
	Title string `json:"title" jsonschema:"title=title,description=The exact movie title to look up." validate:"required"`
}

func NewInput(title string) *Input {
	return &Input{
		Title: title,
	}
}

func (s Input) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Record mirrors the OMDb response body. It is deliberately not validated
// beyond JSON decoding: the upstream schema is not under our control, and a
// malformed record is passed downstream as-is.
type Record struct {
	schema.Base
	// Title is the canonical movie title
	Title string `json:"Title,omitempty" jsonschema:"title=Title,description=The canonical movie title."`
	// Year is the release year
	Year string `json:"Year,omitempty" jsonschema:"title=Year,description=The release year."`
	// Rated is the content rating, e.g. PG-13
	Rated string `json:"Rated,omitempty" jsonschema:"title=Rated,description=The content rating."`
	// Runtime e.g. "138 min"
	Runtime string `json:"Runtime,omitempty" jsonschema:"title=Runtime,description=The runtime."`
	// Genre is a comma separated genre list
	Genre string `json:"Genre,omitempty" jsonschema:"title=Genre,description=Comma separated genres."`
	// Director name(s)
	Director string `json:"Director,omitempty" jsonschema:"title=Director,description=The director."`
	// Actors is a comma separated cast list in billing order
	Actors string `json:"Actors,omitempty" jsonschema:"title=Actors,description=Comma separated cast in billing order."`
	// Plot synopsis as provided by the source
	Plot string `json:"Plot,omitempty" jsonschema:"title=Plot,description=The plot synopsis."`
	// ImdbRating on a 0.0-10.0 scale
	ImdbRating string `json:"imdbRating,omitempty" jsonschema:"title=imdbRating,description=The IMDb rating on a 0.0-10.0 scale."`
	// Response is "True" when the lookup succeeded, "False" otherwise
	Response string `json:"Response,omitempty" jsonschema:"title=Response,description=True when the lookup succeeded."`
	// Error carries the upstream failure description when Response is "False"
	Error string `json:"Error,omitempty" jsonschema:"title=Error,description=The upstream failure description."`
}

func (s Record) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Found reports whether the lookup matched a movie.
func (s Record) Found() bool {
	return strings.EqualFold(s.Response, "True")
}

// Cast returns up to MaxCastNames actor names in billing order.
func (s Record) Cast() []string {
	if s.Actors == "" || strings.EqualFold(s.Actors, "N/A") {
		return nil
	}
	parts := strings.Split(s.Actors, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
		if len(names) == MaxCastNames {
			break
		}
	}
	return names
}

type Config struct {
	tools.Config
	baseURL    string
	apiKey     string
	fullPlot   bool
	httpClient *http.Client
}

// Tool looks up structured movie data from an OMDb style web API.
type Tool struct {
	Config
}

var (
	_ tools.Tool[Input, Record] = (*Tool)(nil)
	_ tools.AnonymousTool       = (*Tool)(nil)
	_ tools.OrchestrationTool   = (*Tool)(nil)
)

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("MovieDatabaseTool")
	}
	if ret.baseURL == "" {
		ret.baseURL = DefaultBaseURL
	}
	if ret.httpClient == nil {
		ret.httpClient = http.DefaultClient
	}
	return ret
}

// Run executes the lookup. Upstream trouble (network failure, missing title,
// malformed body) is absorbed into the returned record rather than returned
// as an error, so a miss flows downstream as data.
func (t *Tool) Run(ctx context.Context, input *Input) (*Record, error) {
	if t.apiKey == "" {
		return nil, errors.New("omdb: missing api key")
	}
	values := url.Values{}
	values.Set("apikey", t.apiKey)
	values.Set("t", input.Title)
	if t.fullPlot {
		values.Set("plot", "full")
	}
	lookupURL := fmt.Sprintf("%s/?%s", t.baseURL, values.Encode())
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, lookupURL, nil)
	if err != nil {
		return nil, err
	}
	httpResp, err := t.httpClient.Do(httpReq)
	if err != nil {
		return miss(fmt.Sprintf("lookup request failed: %v", err)), nil
	}
	defer httpResp.Body.Close()
	if httpResp.StatusCode != http.StatusOK {
		return miss(fmt.Sprintf("non-200 response from movie database: %d", httpResp.StatusCode)), nil
	}
	record := new(Record)
	if err := json.NewDecoder(httpResp.Body).Decode(record); err != nil {
		return miss(fmt.Sprintf("malformed response from movie database: %v", err)), nil
	}
	return record, nil
}

// RunAnonymous runs the tool without compile-time schema knowledge.
func (t *Tool) RunAnonymous(ctx context.Context, input any) (any, error) {
	in, ok := input.(*Input)
	if !ok {
		return nil, errors.New("invalid tool input schema")
	}
	if fn := t.StartHook(); fn != nil {
		fn(ctx, t, in)
	}
	out, err := t.Run(ctx, in)
	if err != nil {
		if fn := t.ErrorHook(); fn != nil {
			fn(ctx, t, in, err)
		}
		return nil, err
	}
	if fn := t.EndHook(); fn != nil {
		fn(ctx, t, in, out)
	}
	return out, nil
}

// RunOrchestration returns a tool result based on input for orchestration
func (t *Tool) RunOrchestration(ctx context.Context, input any) (any, error) {
	return t.RunAnonymous(ctx, input)
}

func miss(reason string) *Record {
	return &Record{
		Response: "False",
		Error:    reason,
	}
}
