package vocab

import (
	"fmt"
	"strings"
)

// Prompt renders the illustration request for w. The scene is drawn from
// the example sentence and the word itself must never appear in the image.
func (w Word) Prompt() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Create a memorable, educational cartoon-style image for the SAT vocabulary word %q.\n\n", w.Word)

	fmt.Fprintf(&b, "Word Definition: %q\n", w.Definition)
	fmt.Fprintf(&b, "Part of Speech: %s\n", w.PartOfSpeech)
	fmt.Fprintf(&b, "Example Sentence: %q\n", w.ExampleSentence)
	fmt.Fprintf(&b, "Synonyms: %s\n", strings.Join(w.Synonyms, ", "))
	fmt.Fprintf(&b, "Difficulty: %s | Tier: %s\n\n", w.Difficulty, w.Tier)

	b.WriteString("Image Requirements:\n")
	for _, line := range []string{
		"Cartoon/animated style (k-pop style animation - vibrant, energetic, colorful)",
		"Create a scene that illustrates the EXAMPLE SENTENCE",
		"Show the word in action through the example context",
		"Clear visual connection to the word's meaning",
		"Memorable and distinctive characters/setting",
		"Appropriate for high school students",
		"Educational value for vocabulary learning",
		"High contrast and clear details",
		"16:9 aspect ratio, high resolution",
		fmt.Sprintf("DO NOT include the actual word %q anywhere in the image", w.Word),
	} {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	b.WriteString("\nVisual Style Guidelines:\n")
	for _, line := range []string{
		"Use bright, vibrant colors with strong contrast",
		"Create engaging characters that students can relate to",
		"Include symbolic elements that reinforce meaning",
		"Avoid text in the image (especially the word itself)",
		"Make it instantly recognizable and memorable",
		"Use visual storytelling through the example sentence",
		"Focus on the ACTION or SITUATION described in the example",
		"K-pop style animation: vibrant, energetic, colorful, dynamic",
	} {
		fmt.Fprintf(&b, "- %s\n", line)
	}

	b.WriteString("\nScene Creation Instructions:\n")
	for i, line := range []string{
		"Read the example sentence carefully",
		"Create a cartoon scene that shows the example situation",
		"Make the characters expressive and relatable",
		"Use visual metaphors that help remember the word",
		"Ensure the scene clearly demonstrates the word's meaning",
		fmt.Sprintf("IMPORTANT: Do not include the word %q in the image", w.Word),
	} {
		fmt.Fprintf(&b, "%d. %s\n", i+1, line)
	}

	fmt.Fprintf(&b, "\nGenerate an image that tells the story of the example sentence: %q\n", w.ExampleSentence)
	fmt.Fprintf(&b, "This will help students remember %q means %q.\n", w.Word, w.Definition)

	return b.String()
}
