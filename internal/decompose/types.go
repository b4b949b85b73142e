package decompose

// Source identifies which tier of the parsing policy produced a step list.
// The response is modeled as a tagged variant rather than duck-typed access:
// every step list a caller receives names the path it came through.
type Source int

const (
	// SourceParsed means the full response body parsed as the steps JSON.
	SourceParsed Source = iota
	// SourceExtracted means a brace-delimited JSON object was extracted
	// from surrounding prose and parsed.
	SourceExtracted
	// SourceText means the response was salvaged line by line with canned
	// encouragements and generic padding.
	SourceText
	// SourceFallback means the network call itself failed and the fixed
	// nine-step generic plan was substituted.
	SourceFallback
)

// String returns the tier name for logging.
func (s Source) String() string {
	switch s {
	case SourceParsed:
		return "parsed"
	case SourceExtracted:
		return "extracted_json"
	case SourceText:
		return "text_fallback"
	case SourceFallback:
		return "api_fallback"
	default:
		return "unknown"
	}
}

// rawStep is a step as produced by the model or a fallback, before
// post-processing assigns identifiers, titles, and estimates.
type rawStep struct {
	Content       string `json:"content"`
	Encouragement string `json:"encouragement"`
}

// stepsEnvelope is the strict response shape the prompt demands.
type stepsEnvelope struct {
	Steps []rawStep `json:"steps"`
}

// ConnectionResult is the outcome of a connection test. Error carries a
// user-facing, status-specific message when Success is false.
type ConnectionResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}
