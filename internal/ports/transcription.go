package ports

import (
	"fmt"
	"io"
	"strings"
)

type ResponseFormat string

const (
	FormatText        ResponseFormat = "text"
	FormatJSON        ResponseFormat = "json"
	FormatVerboseJSON ResponseFormat = "verbose_json"
	FormatSRT         ResponseFormat = "srt"
	FormatVTT         ResponseFormat = "vtt"
)

var ResponseFormats = []ResponseFormat{FormatText, FormatJSON, FormatVerboseJSON, FormatSRT, FormatVTT}

// IsJSON reports whether the API answers this format with a JSON object.
func (f ResponseFormat) IsJSON() bool {
	return f == FormatJSON || f == FormatVerboseJSON
}

// String, Set and Type make *ResponseFormat usable as a pflag.Value.
func (f *ResponseFormat) String() string {
	return string(*f)
}

func (f *ResponseFormat) Set(v string) error {
	for _, known := range ResponseFormats {
		if v == string(known) {
			*f = known
			return nil
		}
	}
	names := make([]string, len(ResponseFormats))
	for i, known := range ResponseFormats {
		names[i] = string(known)
	}
	return fmt.Errorf("invalid response format %q (choose from %s)", v, strings.Join(names, ", "))
}

func (f *ResponseFormat) Type() string {
	return "format"
}

// TranscriptionRequest is built once per invocation and never mutated after the call starts.
// An empty Language is omitted from the request so the model auto-detects it.
type TranscriptionRequest struct {
	Model       string
	Audio       io.Reader
	FileName    string
	Language    string
	Format      ResponseFormat
	Temperature float32
}

type TranscriptKind int

const (
	// PlainText carries the transcript text as returned.
	PlainText TranscriptKind = iota
	// Structured carries the raw payload because it has no text field.
	Structured
)

// Transcript is the decoded transcription result. Kind selects which of Text and Raw is set.
type Transcript struct {
	Kind TranscriptKind
	Text string
	Raw  []byte
}

// Output is what the tool prints for this transcript.
func (t Transcript) Output() string {
	if t.Kind == Structured {
		return string(t.Raw)
	}
	return t.Text
}
