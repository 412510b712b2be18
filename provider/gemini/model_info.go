package gemini

import "github.com/mhpenta/wordimage"

// NanoBanana1Info is the model info for Gemini 2.5 Flash Image (nano-banana-1),
// the default for word illustrations.
var NanoBanana1Info = wordimage.ModelInfo{
	Name:         string(wordimage.ModelNanoBanana1),
	Provider:     wordimage.ProviderGeminiAPI,
	APIModelName: APIModelNanoBanana1,

	Capabilities: wordimage.ModelCapabilities{
		SupportsTextToImage: true,
		SupportsThinking:    false,
		MaxOutputImages:     1,
	},

	ImageConstraints: wordimage.ImageConstraints{
		SupportedAspectRatios: []wordimage.AspectRatio{
			wordimage.AspectRatio1x1,
			wordimage.AspectRatio16x9,
			wordimage.AspectRatio9x16,
			wordimage.AspectRatio4x3,
			wordimage.AspectRatio3x4,
		},
		// Flash Image only supports ~1024px output (1K)
		SupportedSizes: []wordimage.ImageSize{
			wordimage.ImageSize1K,
		},
	},

	RateLimits: wordimage.RateLimits{
		TokensPerMinute:   4000000,
		RequestsPerMinute: 500, // ~500 RPM for Tier 1
		TokensPerDay:      1000000000,
	},

	// Output images bill at $30 per million tokens, 1290 tokens each.
	Pricing: wordimage.Pricing{
		InputTokensPerMillion:  0.30,
		OutputTokensPerMillion: 30.00,
	},
}

// NanoBanana2Info is the model info for Gemini 3 Pro Image (nano-banana-2).
var NanoBanana2Info = wordimage.ModelInfo{
	Name:         string(wordimage.ModelNanoBanana2),
	Provider:     wordimage.ProviderGeminiAPI,
	APIModelName: APIModelNanoBanana2,

	Capabilities: wordimage.ModelCapabilities{
		SupportsTextToImage: true,
		SupportsThinking:    true,
		MaxOutputImages:     4,
	},

	ImageConstraints: wordimage.ImageConstraints{
		SupportedAspectRatios: []wordimage.AspectRatio{
			wordimage.AspectRatio1x1,
			wordimage.AspectRatio16x9,
			wordimage.AspectRatio9x16,
			wordimage.AspectRatio4x3,
			wordimage.AspectRatio3x4,
		},
		SupportedSizes: []wordimage.ImageSize{
			wordimage.ImageSize1K,
			wordimage.ImageSize2K,
			wordimage.ImageSize4K,
		},
	},

	RateLimits: wordimage.RateLimits{
		TokensPerMinute:   4000000,
		RequestsPerMinute: 360,
		TokensPerDay:      1000000000,
	},

	// For prompts >200K tokens, prices double.
	Pricing: wordimage.Pricing{
		InputTokensPerMillion:  2.00,
		OutputTokensPerMillion: 12.00,
	},
}
