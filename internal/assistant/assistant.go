// Package assistant implements the rule-based site helper. Replies are
// deterministic keyword matches, not LLM calls; the first matching rule
// wins and unmatched input gets a general guidance reply.
package assistant

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-booster/internal/types"
)

// Role values for chat messages.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Suggestion is a quick action attached to a reply. Target is the app
// route the action navigates to.
type Suggestion struct {
	Label  string `json:"label"`
	Target string `json:"target"`
}

// Message is one chat transcript entry.
type Message struct {
	ID        string       `json:"id"`
	Role      string       `json:"role"`
	Content   string       `json:"content"`
	Suggested []Suggestion `json:"suggested,omitempty"`
}

type rule struct {
	pattern *regexp.Regexp
	reply   func() Message
}

// Rule order matters: the first match wins, so the more specific intents
// sit above the catch-all guidance reply.
var rules = []rule{
	{
		pattern: regexp.MustCompile(`resume|cv|ats|experience|education`),
		reply: func() Message {
			return assistantMessage(
				"Resume Builder helps you craft an ATS-friendly resume with guided sections (Summary, Experience, Education, Skills). You can export anytime.",
				Suggestion{Label: "Open Resume Builder", Target: "/resume"},
				Suggestion{Label: "Tips for a great resume", Target: "/resume#tips"},
			)
		},
	},
	{
		pattern: regexp.MustCompile(`portfolio|projects|showcase|case study|case-study`),
		reply: func() Message {
			return assistantMessage(
				"Portfolio Creator organizes projects into clean, visual sections. Add highlights, images, and outcomes for a polished showcase.",
				Suggestion{Label: "Open Portfolio", Target: "/portfolio"},
				Suggestion{Label: "How to structure a project", Target: "/portfolio#tips"},
			)
		},
	},
	{
		pattern: regexp.MustCompile(`pitch|presentation|slide|deck|idea`),
		reply: func() Message {
			return assistantMessage(
				"Pitch Generator turns your idea into a clear narrative: Problem, Solution, Impact. Great for hackathons and demos.",
				Suggestion{Label: "Open Pitch Generator", Target: "/pitch"},
				Suggestion{Label: "What to include", Target: "/pitch#tips"},
			)
		},
	},
	{
		pattern: regexp.MustCompile(`export|download|pdf|share|txt|save`),
		reply: func() Message {
			return assistantMessage(
				"Use Export Hub to download your work as PDF/TXT or share links quickly. You can export anytime during your flow.",
				Suggestion{Label: "Go to Export Hub", Target: "/export"},
			)
		},
	},
	{
		pattern: regexp.MustCompile(`learn|about|mission|feature|vision`),
		reply: func() Message {
			return assistantMessage(
				"We're focused on helping students present their best work. Read about our mission, features, and vision on the Learn More page.",
				Suggestion{Label: "Open Learn More", Target: "/about"},
			)
		},
	},
	{
		pattern: regexp.MustCompile(`login|sign\s?in|sign\s?up|account|auth`),
		reply: func() Message {
			return assistantMessage(
				"Create an account or sign in to save your progress and export easily.",
				Suggestion{Label: "Go to Get Started", Target: "/auth"},
			)
		},
	},
}

// Welcome is the transcript opener shown before the user says anything.
func Welcome() Message {
	return assistantMessage(
		"Hi! I can guide you around: build a resume, create a portfolio, generate a pitch, or export your work.",
		Suggestion{Label: "Start Resume", Target: "/resume"},
		Suggestion{Label: "Create Portfolio", Target: "/portfolio"},
		Suggestion{Label: "Pitch Generator", Target: "/pitch"},
		Suggestion{Label: "Export Hub", Target: "/export"},
		Suggestion{Label: "Learn More", Target: "/about"},
	)
}

// Reply produces the assistant response for one user message. Matching is
// case-insensitive via lowering the input, mirroring how the rules were
// originally tuned.
func Reply(text string) Message {
	lowered := strings.ToLower(text)
	for _, r := range rules {
		if r.pattern.MatchString(lowered) {
			return r.reply()
		}
	}
	return assistantMessage(
		"I can help you get started or answer questions about using the tools. Want to build a resume, portfolio, or pitch?",
		Suggestion{Label: "Start Resume", Target: "/resume"},
		Suggestion{Label: "Create Portfolio", Target: "/portfolio"},
		Suggestion{Label: "Pitch Generator", Target: "/pitch"},
		Suggestion{Label: "Export Hub", Target: "/export"},
	)
}

func assistantMessage(content string, suggested ...Suggestion) Message {
	return Message{
		ID:        types.NewID(),
		Role:      RoleAssistant,
		Content:   content,
		Suggested: suggested,
	}
}
