package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-booster/internal/types"
)

func TestAddExperience_AssignsUniqueIDs(t *testing.T) {
	b := NewResume()
	first := b.AddExperience()
	second := b.AddExperience()

	require.Len(t, b.Data.Experience, 2)
	assert.NotEqual(t, first, second)
}

func TestRemoveExperience_PreservesOrder(t *testing.T) {
	b := NewResume()
	a := b.AddExperience()
	mid := b.AddExperience()
	c := b.AddExperience()

	b.RemoveExperience(mid)

	require.Len(t, b.Data.Experience, 2)
	assert.Equal(t, a, b.Data.Experience[0].ID)
	assert.Equal(t, c, b.Data.Experience[1].ID)
}

func TestRemoveExperience_UnknownIDIsNoop(t *testing.T) {
	b := NewResume()
	b.AddExperience()
	b.RemoveExperience("no-such-id")
	assert.Len(t, b.Data.Experience, 1)
}

func TestUpdateExperience_MutatesInPlace(t *testing.T) {
	b := NewResume()
	id := b.AddExperience()

	b.UpdateExperience(id, func(e *types.ExperienceItem) {
		e.JobTitle = "Engineer"
		e.Current = true
	})

	assert.Equal(t, "Engineer", b.Data.Experience[0].JobTitle)
	assert.True(t, b.Data.Experience[0].Current)
}

func TestAddSkill_InvalidLevelFallsBackToBeginner(t *testing.T) {
	b := NewResume()
	b.AddSkill("Go", types.SkillLevel("Wizard"))
	require.Len(t, b.Data.Skills, 1)
	assert.Equal(t, types.LevelBeginner, b.Data.Skills[0].Level)
}

func TestAddInterest_DeduplicatesAndTrims(t *testing.T) {
	b := NewResume()
	b.AddInterest("  chess ")
	b.AddInterest("chess")
	b.AddInterest("")
	b.AddInterest("hiking")

	assert.Equal(t, []string{"chess", "hiking"}, b.Data.Interests)
}

func TestRemoveInterest(t *testing.T) {
	b := NewResume()
	b.AddInterest("chess")
	b.AddInterest("hiking")
	b.RemoveInterest("chess")
	assert.Equal(t, []string{"hiking"}, b.Data.Interests)
}

func TestReset_ReplacesWithEmptyTemplate(t *testing.T) {
	b := NewResume()
	b.AddExperience()
	b.SetSummary("something")
	b.Reset()

	assert.Empty(t, b.Data.Experience)
	assert.Empty(t, b.Data.Summary)
}
