package llm

import "strings"

// RefinePrompt builds the prompt that turns a rough startup idea into a
// pitch-ready description.
func RefinePrompt(idea string) string {
	var b strings.Builder
	b.WriteString("You are an expert startup coach. Refine the following rough startup idea into a concise, professional description suitable for a pitch.\n\n")
	b.WriteString("Constraints:\n")
	b.WriteString("- 4-6 sentences total\n")
	b.WriteString("- Cover: Problem, Solution, Target Users, Differentiation, and Expected Impact\n")
	b.WriteString("- Be specific and clear\n\n")
	b.WriteString("Rough idea:\n\"\"\"" + strings.TrimSpace(idea) + "\"\"\"\n\n")
	b.WriteString("Refined description:")
	return b.String()
}

// CompilePrompt builds the prompt that expands a refined summary into a
// markdown pitch deck outline. Note and visualURL are optional.
func CompilePrompt(refined, note, visualURL string) string {
	var b strings.Builder
	b.WriteString("Create a concise pitch deck outline based on the refined summary below. Output as clear markdown with section headings and short bullet points. Prioritize clarity over fluff.\n\n")
	b.WriteString("Sections to include:\n")
	b.WriteString("- Title Slide (tagline)\n")
	b.WriteString("- Problem\n")
	b.WriteString("- Solution\n")
	b.WriteString("- Market & Audience\n")
	b.WriteString("- Business Model\n")
	b.WriteString("- Product (features)\n")
	b.WriteString("- Roadmap\n")
	b.WriteString("- Call to Action\n")
	if visualURL != "" {
		b.WriteString("- Visual Notes (explain how to use this visual: " + visualURL + ")\n")
	}
	b.WriteString("\nRefined summary:\n\"\"\"" + strings.TrimSpace(refined) + "\"\"\"\n\n")
	if note = strings.TrimSpace(note); note != "" {
		b.WriteString("Additional instructions: " + note + "\n\n")
	}
	b.WriteString("Return the deck in markdown starting with '# Title Slide'.")
	return b.String()
}
