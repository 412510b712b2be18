package wordimage

import "strings"

// SafetyCategory represents a content safety category.
type SafetyCategory string

const (
	SafetyCategoryHarassment       SafetyCategory = "HARM_CATEGORY_HARASSMENT"
	SafetyCategoryHateSpeech       SafetyCategory = "HARM_CATEGORY_HATE_SPEECH"
	SafetyCategorySexuallyExplicit SafetyCategory = "HARM_CATEGORY_SEXUALLY_EXPLICIT"
	SafetyCategoryDangerousContent SafetyCategory = "HARM_CATEGORY_DANGEROUS_CONTENT"
)

// SafetyThreshold represents the blocking threshold for safety filters.
type SafetyThreshold string

const (
	SafetyThresholdBlockNone      SafetyThreshold = "BLOCK_NONE"
	SafetyThresholdBlockLowAndUp  SafetyThreshold = "BLOCK_LOW_AND_ABOVE"
	SafetyThresholdBlockMedAndUp  SafetyThreshold = "BLOCK_MEDIUM_AND_ABOVE"
	SafetyThresholdBlockHighAndUp SafetyThreshold = "BLOCK_ONLY_HIGH"
)

// SafetySetting configures content filtering for a specific category.
type SafetySetting struct {
	Category  SafetyCategory
	Threshold SafetyThreshold
}

// PartKind classifies a response part.
type PartKind int

const (
	// PartEmpty carries nothing usable, including zero-length inline data.
	PartEmpty PartKind = iota

	// PartInlineImage carries non-empty inline image bytes.
	PartInlineImage

	// PartOther is text, a thought, or inline data that is not an image.
	PartOther
)

func (k PartKind) String() string {
	switch k {
	case PartEmpty:
		return "empty"
	case PartInlineImage:
		return "inline_image"
	case PartOther:
		return "other"
	default:
		return "unknown"
	}
}

// Part is one fragment of a candidate's content. Kind is decided when the
// provider response is converted and is the only thing callers inspect.
type Part struct {
	Kind PartKind

	// Data and MIMEType are set for PartInlineImage, and for PartOther when
	// the payload was non-image inline data.
	Data     []byte
	MIMEType string

	// Text is set for text and thought parts.
	Text    string
	Thought bool
}

// NewInlineDataPart classifies an inline payload. Empty data is PartEmpty;
// data with a MIME type outside image/* is PartOther. An unset MIME type is
// treated as an image and left to the decoder to reject.
func NewInlineDataPart(data []byte, mimeType string) Part {
	if len(data) == 0 {
		return Part{Kind: PartEmpty, MIMEType: mimeType}
	}
	if mimeType != "" && !strings.HasPrefix(strings.ToLower(mimeType), "image/") {
		return Part{Kind: PartOther, Data: data, MIMEType: mimeType}
	}
	return Part{Kind: PartInlineImage, Data: data, MIMEType: mimeType}
}

// NewTextPart wraps a text or thought fragment.
func NewTextPart(text string, thought bool) Part {
	if text == "" {
		return Part{Kind: PartEmpty}
	}
	return Part{Kind: PartOther, Text: text, Thought: thought}
}

// Candidate is one alternative response for a prompt.
type Candidate struct {
	Parts        []Part
	FinishReason string
}

// GeneratedImage represents a single image taken from a response.
type GeneratedImage struct {
	// Data contains the raw image bytes
	Data []byte

	// MIMEType of the generated image
	MIMEType string

	// Index is the position of the part inside its candidate
	Index int
}

// GenerateResult holds the complete result of a generation request.
type GenerateResult struct {
	// Candidates in the order the model returned them
	Candidates []Candidate

	// Text contains the concatenated text of the first candidate
	Text string

	// ThinkingContent contains the model's reasoning
	ThinkingContent string

	// UsageMetadata contains token/billing information
	UsageMetadata *UsageMetadata
}

// FirstImage returns the first inline image of the first candidate.
// Later candidates are never consulted.
func (r *GenerateResult) FirstImage() (GeneratedImage, error) {
	if r == nil || len(r.Candidates) == 0 {
		return GeneratedImage{}, ErrNoImageData
	}

	for i, part := range r.Candidates[0].Parts {
		if part.Kind != PartInlineImage || len(part.Data) == 0 {
			continue
		}
		return GeneratedImage{
			Data:     part.Data,
			MIMEType: part.MIMEType,
			Index:    i,
		}, nil
	}

	return GeneratedImage{}, ErrNoImageData
}

// ImageCount returns the number of inline image parts across all candidates.
func (r *GenerateResult) ImageCount() int {
	if r == nil {
		return 0
	}
	n := 0
	for _, c := range r.Candidates {
		for _, p := range c.Parts {
			if p.Kind == PartInlineImage {
				n++
			}
		}
	}
	return n
}

// UsageMetadata contains usage information for billing and monitoring.
type UsageMetadata struct {
	PromptTokens     int
	CandidatesTokens int
	TotalTokens      int
	ImageCount       int
}
