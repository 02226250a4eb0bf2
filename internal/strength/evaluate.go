// Package strength scores a resume with a deterministic point-additive
// heuristic and produces improvement tips. Safe to call on every keystroke:
// no side effects, no allocation beyond the result.
package strength

import (
	"regexp"
	"strings"

	"github.com/jonathan/resume-booster/internal/types"
)

// Level buckets the score for display.
type Level string

// Score levels, from weakest to strongest.
const (
	LevelStarter Level = "Starter"
	LevelFair    Level = "Fair"
	LevelGood    Level = "Good"
	LevelStrong  Level = "Strong"
)

// Assessment is the result of evaluating a resume.
type Assessment struct {
	Score int      `json:"score"`
	Level Level    `json:"level"`
	Tips  []string `json:"tips"`
}

// maxTips caps the advice shown; criteria are checked in a fixed priority
// order so the first unmet ones win.
const maxTips = 5

var (
	emailShape = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	hasDigit   = regexp.MustCompile(`\d`)
	actionVerb = regexp.MustCompile(`(?i)led|built|improved|delivered|designed|launched|automated|reduced|optimized`)
)

// Evaluate scores the resume on [0,100]. Each satisfied criterion adds its
// fixed points; each unmet criterion (except education) contributes a tip.
func Evaluate(data types.ResumeData) Assessment {
	score := 0
	var tips []string
	add := func(points int) {
		score += points
		if score > 100 {
			score = 100
		}
	}

	if data.Profile.FirstName != "" && data.Profile.LastName != "" {
		add(8)
	} else {
		tips = append(tips, "Add your full name.")
	}
	if data.Profile.Profession != "" {
		add(6)
	} else {
		tips = append(tips, "Add a clear professional title.")
	}
	if emailShape.MatchString(data.Profile.Email) {
		add(6)
	} else {
		tips = append(tips, "Fix email format.")
	}
	if len(data.Summary) >= 120 {
		add(12)
	} else {
		tips = append(tips, "Write a 2–3 sentence summary (120+ chars).")
	}
	if len(data.Experience) > 0 {
		add(18)
	} else {
		tips = append(tips, "Add at least one experience entry.")
	}

	bullets := data.Bullets()
	if len(bullets) >= 3 {
		add(12)
	} else {
		tips = append(tips, "Add 3+ bullet points with impact.")
	}
	if anyMatch(bullets, hasDigit) {
		add(8)
	} else {
		tips = append(tips, "Quantify achievements with numbers.")
	}
	if anyMatch(bullets, actionVerb) {
		add(8)
	} else {
		tips = append(tips, "Use strong action verbs.")
	}

	if len(data.NamedSkills()) >= 6 {
		add(10)
	} else {
		tips = append(tips, "List 6+ relevant skills.")
	}
	if len(data.Education) > 0 {
		add(8)
	}
	if data.Media.LinkedIn != "" || data.Media.Website != "" {
		add(6)
	} else {
		tips = append(tips, "Add a portfolio or LinkedIn link.")
	}

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}

	return Assessment{Score: score, Level: levelFor(score), Tips: tips}
}

// PortfolioCompletion returns the 0-100 completion percentage over the five
// tracked portfolio fields.
func PortfolioCompletion(state types.PortfolioState) int {
	done := 0
	if state.Name != "" {
		done++
	}
	if state.About != "" {
		done++
	}
	if state.Email != "" {
		done++
	}
	if len(state.Skills) > 0 {
		done++
	}
	if len(state.Projects) > 0 {
		done++
	}
	return done * 100 / 5
}

func levelFor(score int) Level {
	switch {
	case score > 80:
		return LevelStrong
	case score > 60:
		return LevelGood
	case score > 40:
		return LevelFair
	default:
		return LevelStarter
	}
}

func anyMatch(lines []string, re *regexp.Regexp) bool {
	for _, line := range lines {
		if re.MatchString(strings.TrimSpace(line)) {
			return true
		}
	}
	return false
}
