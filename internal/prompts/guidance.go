package prompts

// genreGuidance provides specific writing guidance based on genre.
func genreGuidance(genre string) string {
	guidance := map[string]string{
		"mystery":  "- Include clues and red herrings\n- Develop convincing detective\n- Maintain suspense until the end\n- Resolve all plot threads",
		"romance":  "- Develop chemistry between characters\n- Include believable relationship obstacles\n- Focus on emotional growth\n- Provide satisfying happy ending",
		"sci-fi":   "- Develop consistent worldbuilding\n- Explore technological/scientific implications\n- Create characters that adapt to the future world\n- Balance action with reflection",
		"fantasy":  "- Create coherent magic/world systems\n- Develop rich mythology\n- Include classic fantasy archetypes\n- Balance adventure with character development",
		"thriller": "- Maintain fast pace\n- Use cliffhangers between chapters\n- Create constant tension\n- Include unexpected twists",
		"fiction":  "- Focus on character development\n- Explore universal themes\n- Use symbolism and metaphors\n- Create emotional resonance",
	}
	if g, ok := guidance[genre]; ok {
		return g
	}
	return "- Maintain narrative consistency\n- Develop believable characters\n- Create interesting conflicts"
}

// toneGuidance provides specific writing guidance based on tone.
func toneGuidance(tone string) string {
	guidance := map[string]string{
		"dramatic":    "- Use emotive and powerful language\n- Explore deep internal conflicts\n- Create moments of high emotional tension",
		"comedic":     "- Include humor in situations and dialogue\n- Use irony and satire when appropriate\n- Maintain lightness without trivializing the theme",
		"reflective":  "- Use contemplation and introspection\n- Explore philosophical or existential themes\n- Create contemplative and paced rhythm",
		"narrative":   "- Focus on telling the story clearly\n- Use direct and accessible prose\n- Balance dialogue with description",
		"melancholic": "- Use poetic and evocative language\n- Explore themes of loss, nostalgia, or sadness\n- Create nostalgic atmosphere",
		"optimistic":  "- Focus on hope and growth\n- Use positive and uplifting language\n- Highlight hopeful aspects of the situation",
	}
	if g, ok := guidance[tone]; ok {
		return g
	}
	return "- Maintain tonal consistency\n- Use language appropriate for the theme\n- Ensure tone serves the story"
}

// audienceGuidance provides specific writing guidance based on audience.
func audienceGuidance(audience string) string {
	guidance := map[string]string{
		"beginners": "- Use simple and clear language\n- Define technical terms\n- Provide basic examples\n- Avoid specialized jargon",
		"experts":   "- Use precise terminology\n- Include academic references\n- Assume base knowledge of the topic\n- Deepen into technical details",
		"general":   "- Balance accessibility with depth\n- Explain concepts when necessary\n- Use varied examples\n- Maintain interest of common reader",
	}
	if g, ok := guidance[audience]; ok {
		return g
	}
	return "- Use clear and professional language\n- Provide relevant examples\n- Maintain logical structure"
}
