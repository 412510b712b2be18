package wordimage

// ModelCapabilities describes what features a model supports.
type ModelCapabilities struct {
	SupportsTextToImage bool
	SupportsThinking    bool

	MaxOutputImages int
}

// RateLimits defines rate limiting parameters for a model.
type RateLimits struct {
	TokensPerMinute   int
	RequestsPerMinute int
	TokensPerDay      int // 0 = unlimited
}

// Pricing defines cost information for a model.
type Pricing struct {
	InputTokensPerMillion  float64
	OutputTokensPerMillion float64
	ImageGenerationCost    float64 // Per image (if applicable)
}

// ImageConstraints defines supported image configurations for a model.
type ImageConstraints struct {
	SupportedAspectRatios []AspectRatio
	SupportedSizes        []ImageSize
}

// ModelInfo contains complete metadata for a model.
type ModelInfo struct {
	Name         string   // Public model name (e.g., "nano-banana-1")
	Provider     Provider // Which provider serves this model
	APIModelName string   // Actual API name (e.g., "gemini-2.5-flash-image")

	Capabilities     ModelCapabilities
	ImageConstraints ImageConstraints
	RateLimits       RateLimits
	Pricing          Pricing
}

// EstimatedCost returns the approximate dollar cost of a call with the
// given usage, or 0 when usage is nil.
func (mi *ModelInfo) EstimatedCost(usage *UsageMetadata) float64 {
	if mi == nil || usage == nil {
		return 0
	}
	cost := float64(usage.PromptTokens) / 1e6 * mi.Pricing.InputTokensPerMillion
	cost += float64(usage.CandidatesTokens) / 1e6 * mi.Pricing.OutputTokensPerMillion
	cost += float64(usage.ImageCount) * mi.Pricing.ImageGenerationCost
	return cost
}
