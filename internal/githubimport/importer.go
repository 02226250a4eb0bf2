// Package githubimport suggests resume content from a public GitHub
// profile: the bio becomes a summary draft and repository languages become
// skill suggestions.
package githubimport

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-booster/internal/types"
)

// MaxSkills caps how many language-derived skills an import suggests.
const MaxSkills = 12

// DefaultBaseURL is the public GitHub API.
const DefaultBaseURL = "https://api.github.com"

// Result is the partial resume an import produces. Only the fields GitHub
// can speak to are filled; everything else is left to the user.
type Result struct {
	Email   string            `json:"email"`
	Summary string            `json:"summary"`
	Skills  []types.SkillItem `json:"skills"`
}

// Importer fetches public profile data. The zero value uses the public
// API with a default client.
type Importer struct {
	BaseURL    string
	HTTPClient *http.Client
}

type githubUser struct {
	Email string `json:"email"`
	Bio   string `json:"bio"`
}

type githubRepo struct {
	Language string `json:"language"`
}

// Fetch pulls the user profile and repository list concurrently and maps
// them onto resume fields. Repository languages are deduplicated in
// recently-updated order and suggested at Intermediate level.
func (im *Importer) Fetch(ctx context.Context, username string) (Result, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return Result{}, fmt.Errorf("username is required")
	}

	var (
		user  githubUser
		repos []githubRepo
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return im.getJSON(gctx, "/users/"+url.PathEscape(username), &user)
	})
	g.Go(func() error {
		return im.getJSON(gctx, "/users/"+url.PathEscape(username)+"/repos?per_page=100&sort=updated", &repos)
	})
	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	seen := make(map[string]bool)
	var skills []types.SkillItem
	for _, r := range repos {
		if r.Language == "" || seen[r.Language] {
			continue
		}
		seen[r.Language] = true
		skills = append(skills, types.SkillItem{
			ID:    types.NewID(),
			Name:  r.Language,
			Level: types.LevelIntermediate,
		})
		if len(skills) == MaxSkills {
			break
		}
	}

	return Result{Email: user.Email, Summary: user.Bio, Skills: skills}, nil
}

func (im *Importer) getJSON(ctx context.Context, path string, v any) error {
	base := im.BaseURL
	if base == "" {
		base = DefaultBaseURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, base+path, nil)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	client := im.HTTPClient
	if client == nil {
		client = &http.Client{Timeout: 15 * time.Second}
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("github request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("github returned status %d for %s", resp.StatusCode, path)
	}
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode github response: %w", err)
	}
	return nil
}

// Apply merges the import into a resume without clobbering user content:
// email and summary fill in only when GitHub had them, and suggested
// skills are appended, skipping names already present.
func (r Result) Apply(data types.ResumeData) types.ResumeData {
	if data.Profile.Email == "" && r.Email != "" {
		data.Profile.Email = r.Email
	}
	if data.Summary == "" && r.Summary != "" {
		data.Summary = r.Summary
	}
	have := make(map[string]bool)
	for _, s := range data.Skills {
		have[strings.ToLower(s.Name)] = true
	}
	for _, s := range r.Skills {
		if have[strings.ToLower(s.Name)] {
			continue
		}
		data.Skills = append(data.Skills, s)
	}
	return data
}
