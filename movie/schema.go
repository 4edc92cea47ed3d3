package movie

import (
	"encoding/json"

	"github.com/cinebrief/cinebrief/schema"
	"github.com/cinebrief/cinebrief/tools/omdb"
	"github.com/cinebrief/cinebrief/tools/summaryfile"
)

// RefinedTitle is the title refiner output: exactly one corrected movie
// title, no commentary. It may legitimately equal the raw user input.
type RefinedTitle struct {
	schema.Base
	// Title is the corrected or completed movie title
	Title string `json:"title" jsonschema:"title=title,description=The corrected or completed movie title without any commentary." validate:"required"`
}

func NewRefinedTitle(title string) *RefinedTitle {
	return &RefinedTitle{
		Title: title,
	}
}

func (s RefinedTitle) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// Summary is the enhanced movie record produced from a database lookup,
// ready for formatting.
type Summary struct {
	schema.Base
	// Title is the canonical movie title
	Title string `json:"title" jsonschema:"title=title,description=The canonical movie title." validate:"required"`
	// Year is the release year
	Year string `json:"year,omitempty" jsonschema:"title=year,description=The release year."`
	// ImdbRating on a 0.0-10.0 scale as provided by the source
	ImdbRating string `json:"imdb_rating,omitempty" jsonschema:"title=imdb_rating,description=The IMDb rating on a 0.0-10.0 scale."`
	// Cast is an ordered list of up to 5 actor names
	Cast []string `json:"cast,omitempty" jsonschema:"title=cast,description=Ordered list of up to 5 actor names." validate:"max=5"`
	// Genre of the movie
	Genre string `json:"genre,omitempty" jsonschema:"title=genre,description=The genre."`
	// Director name(s)
	Director string `json:"director,omitempty" jsonschema:"title=director,description=The director."`
	// Plot is the synopsis, rewritten to be more engaging
	Plot string `json:"plot,omitempty" jsonschema:"title=plot,description=The plot synopsis rewritten to be more engaging."`
	// Runtime e.g. "138 min"
	Runtime string `json:"runtime,omitempty" jsonschema:"title=runtime,description=The runtime."`
	// Rated is the content rating, e.g. PG-13
	Rated string `json:"rated,omitempty" jsonschema:"title=rated,description=The content rating."`
}

func (s Summary) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// ToolRequest is the routing schema for the pipeline's tool router: exactly
// one field is set, and the selector dispatches on it.
type ToolRequest struct {
	schema.Base
	// Lookup requests a movie database lookup
	Lookup *omdb.Input `json:"lookup,omitempty" jsonschema:"title=lookup,description=A movie database lookup request."`
	// Document requests a summary file write
	Document *summaryfile.Document `json:"document,omitempty" jsonschema:"title=document,description=A summary file write request."`
}

func (s ToolRequest) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}
