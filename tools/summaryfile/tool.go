package summaryfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/cinebrief/cinebrief/schema"
	"github.com/cinebrief/cinebrief/tools"
)

const (
	// DefaultOutputDir is resolved against the current working directory.
	DefaultOutputDir = "movie_summaries"
	// DefaultFilename is used when a document arrives without a usable name.
	DefaultFilename = "movie_summary.txt"

	filenameMarker = "FILENAME:"
	contentMarker  = "CONTENT:"
)

// Document is the schema for a summary file to persist.
type Document struct {
	schema.Base
	// Filename is the name of the file to write, without directories.
	Filename string `json:"filename" jsonschema:"title=filename,description=The name of the file to write without directories." validate:"required"`
	// Content is the full file body, written verbatim.
	Content string `json:"content" jsonschema:"title=content,description=The full file body written verbatim."`
}

func NewDocument(filename, content string) *Document {
	return &Document{
		Filename: filename,
		Content:  content,
	}
}

func (s Document) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

// ParseBlob converts legacy marker-delimited generation output into a
// Document. A line starting with "FILENAME:" names the file and everything
// after the "CONTENT:" line is the body, verbatim. Without a filename marker
// the whole blob becomes the content of the default file. This fallback is
// silent, not an error.
func ParseBlob(blob string) *Document {
	doc := NewDocument(DefaultFilename, blob)
	lines := strings.Split(blob, "\n")
	for idx, line := range lines {
		if name, ok := strings.CutPrefix(line, filenameMarker); ok {
			doc.Filename = strings.TrimSpace(name)
			continue
		}
		if strings.TrimSpace(line) == contentMarker {
			doc.Content = strings.Join(lines[idx+1:], "\n")
			break
		}
	}
	if doc.Filename == "" {
		doc.Filename = DefaultFilename
	}
	return doc
}

// Result names the file path written, or describes the failure.
type Result struct {
	schema.Base
	// Path is the path of the written file, empty on failure.
	Path string `json:"path,omitempty" jsonschema:"title=path,description=The path of the written file."`
	// Message is a human readable confirmation or failure description.
	Message string `json:"message" jsonschema:"title=message,description=Confirmation or failure description."`
}

func (s Result) String() string {
	bs, _ := json.Marshal(s)
	return string(bs)
}

type Config struct {
	tools.Config
	outputDir string
	validate  *validator.Validate
}

// Tool persists summary documents under a fixed output directory.
type Tool struct {
	Config
}

var (
	_ tools.Tool[Document, Result] = (*Tool)(nil)
	_ tools.AnonymousTool          = (*Tool)(nil)
	_ tools.OrchestrationTool      = (*Tool)(nil)
)

func New(opts ...Option) *Tool {
	ret := new(Tool)
	for _, opt := range opts {
		opt(&ret.Config)
	}
	if ret.Title() == "" {
		ret.SetTitle("FileWriterTool")
	}
	if ret.outputDir == "" {
		ret.outputDir = DefaultOutputDir
	}
	if ret.validate == nil {
		ret.validate = validator.New()
	}
	return ret
}

// OutputDir returns the directory summaries are written to.
func (t *Tool) OutputDir() string {
	return t.outputDir
}

// Run writes the document. The output directory is created on demand and an
// existing file of the same name is overwritten without warning. Filesystem
// failures are converted into a descriptive Result, not returned as errors.
func (t *Tool) Run(ctx context.Context, input *Document) (*Result, error) {
	doc := *input
	if err := t.validate.StructCtx(ctx, doc); err != nil {
		doc.Filename = DefaultFilename
	}
	doc.Filename = filepath.Base(doc.Filename)
	if err := os.MkdirAll(t.outputDir, 0o755); err != nil {
		return failure(fmt.Sprintf("could not create output directory %s: %v", t.outputDir, err)), nil
	}
	path := filepath.Join(t.outputDir, doc.Filename)
	if err := os.WriteFile(path, []byte(doc.Content), 0o644); err != nil {
		return failure(fmt.Sprintf("could not write %s: %v", path, err)), nil
	}
	return &Result{
		Path:    path,
		Message: fmt.Sprintf("summary written to %s", path),
	}, nil
}

// RunAnonymous runs the tool without compile-time schema knowledge. A raw
// string or String schema is accepted and parsed through the legacy marker
// fallback.
func (t *Tool) RunAnonymous(ctx context.Context, input any) (any, error) {
	var in *Document
	switch v := input.(type) {
	case *Document:
		in = v
	case *schema.String:
		in = ParseBlob(v.String())
	case string:
		in = ParseBlob(v)
	default:
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

func failure(reason string) *Result {
	return &Result{
		Message: reason,
	}
}
