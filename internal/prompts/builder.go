// Package prompts implements the MCP prompt surface: named guidance
// templates a user can invoke to direct the AI through a complete
// writing workflow using the server's tools.
//
// Prompt text is advisory, not validated input: recognized parameters
// are substituted, unrecognized ones are ignored.
package prompts

import (
	"fmt"
	"strings"

	"inkwell/internal/project"
)

// Prompt names.
const (
	NameWriteNovel          = "write_novel"
	NameWriteShortStory     = "write_short_story"
	NameWriteNonfictionBook = "write_nonfiction_book"
)

// Build renders a named prompt with the given arguments. Unknown names
// fail with an unknown_prompt error; unknown argument keys within a
// known prompt are silently ignored.
func Build(name string, args map[string]string) (string, error) {
	get := func(key, fallback string) string {
		if v, ok := args[key]; ok && v != "" {
			return v
		}
		return fallback
	}

	switch name {
	case NameWriteNovel:
		return buildNovel(
			get("theme", ""),
			get("genre", ""),
			get("chapters", "8-12"),
			get("length", "medium"),
		), nil
	case NameWriteShortStory:
		return buildShortStory(
			get("theme", ""),
			get("length", "medium"),
			get("tone", "narrative"),
		), nil
	case NameWriteNonfictionBook:
		return buildNonfictionBook(
			get("theme", ""),
			get("audience", "general"),
			get("chapters", "8-12"),
		), nil
	}
	return "", project.Errorf(project.KindUnknownPrompt,
		"prompt %q not available; use %s, %s, or %s",
		name, NameWriteNovel, NameWriteShortStory, NameWriteNonfictionBook)
}

// novelWordCounts maps chapter length to an approximate word range.
var novelWordCounts = map[string]string{
	"short":  "1500-2500",
	"medium": "2500-4000",
	"long":   "4000-6000",
}

// storyWordCounts maps story length to an approximate word range.
var storyWordCounts = map[string]string{
	"short":  "1000-2000",
	"medium": "2000-4000",
	"long":   "4000-6000",
}

func buildNovel(theme, genre, chapters, length string) string {
	words, ok := novelWordCounts[length]
	if !ok {
		words = novelWordCounts["medium"]
	}

	return strings.TrimSpace(fmt.Sprintf(`
Create a %[1]s novel about "%[2]s" with approximately %[3]s chapters.

GENERAL INSTRUCTIONS:
1. First create a writing project using the create_project tool
2. Develop a detailed plan for the novel
3. Write each chapter as a separate file (chapter_01.md, chapter_02.md, etc.)
4. Make sure each chapter has %[4]s words
5. Include typical elements of the %[1]s genre

REQUIRED STRUCTURE:
- Introduction and character establishment
- Development of the main conflict
- Various chapters that develop the plot
- Exciting climax
- Satisfying resolution

WRITING GUIDELINES:
- Develop memorable and realistic characters
- Create interesting and progressive conflicts
- Maintain appropriate narrative pace
- Include natural dialogue and vivid descriptions
- Provide a satisfying ending for all narrative arcs

SPECIFIC TO %[5]s:
%[6]s

Remember to use the MCP server tools to create and manage your writing project in an organized manner.
`, genre, theme, chapters, words, strings.ToUpper(genre), genreGuidance(genre)))
}

func buildShortStory(theme, length, tone string) string {
	words, ok := storyWordCounts[length]
	if !ok {
		words = storyWordCounts["medium"]
	}

	return strings.TrimSpace(fmt.Sprintf(`
Write a short story about "%[1]s" with approximately %[2]s words.

INSTRUCTIONS:
1. First create a writing project using the create_project tool
2. Develop a clear narrative structure (introduction, development, climax, ending)
3. Write the complete story in a single file (short_story.md)
4. Focus on a specific aspect of the theme %[1]s
5. Maintain a %[3]s tone throughout the narrative

NARRATIVE STRUCTURE:
- Introduction: Present characters, setting, and situation
- Development: Establish the conflict or problematic situation
- Climax: Moment of greatest tension or revelation
- Resolution: End that closes the story

OBJECTIVES:
- Self-contained and complete story
- Clear and resonant theme or message
- Literary style appropriate for the %[3]s tone
- Satisfying ending that resolves the main conflict
- Convincing characters even in a short narrative

SPECIFIC TONE: %[4]s
%[5]s

Use the MCP server tools to create and manage your writing project.
`, theme, words, tone, strings.ToUpper(tone), toneGuidance(tone)))
}

func buildNonfictionBook(theme, audience, chapters string) string {
	return strings.TrimSpace(fmt.Sprintf(`
Create a non-fiction book about "%[1]s" targeted at a %[2]s audience.

INSTRUCTIONS:
1. First create a writing project using the create_project tool
2. Develop a complete book structure
3. Write each chapter as a separate file (chapter_01.md, chapter_02.md, etc.)
4. Make sure each chapter has 2000-3000 words
5. Include introduction, thematic development, and conclusions

BOOK STRUCTURE:
- Introduction: Present the theme and establish the book's purpose
- %[3]s thematic chapters that develop the main theme
- Conclusion: Summarize key points and provide closure

AUDIENCE GUIDELINES:
%[4]s

REQUIRED ELEMENTS:
- Factual and verifiable information
- Practical examples and case studies
- Logical and progressive structure
- Clear and accessible language
- References or sources when appropriate
- Exercises or reflection questions

Use the MCP server tools to create and manage your writing project in an organized manner.
`, theme, audience, chapters, audienceGuidance(audience)))
}
