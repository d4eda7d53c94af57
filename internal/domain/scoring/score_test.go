package scoring

import (
	"strings"
	"testing"

	"mentorship/internal/domain/entity"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
)

func TestScore(t *testing.T) {
	longBio := strings.Repeat("a", 51)

	tests := []struct {
		name   string
		mentor *entity.MentorProfile
		want   int
	}{
		{
			name:   "bare profile with capacity",
			mentor: &entity.MentorProfile{MaxMentees: 3},
			want:   60,
		},
		{
			name:   "bare profile at capacity",
			mentor: &entity.MentorProfile{MaxMentees: 3, CurrentMenteeCount: 3},
			want:   30,
		},
		{
			name: "everything maxed clamps to 100",
			mentor: &entity.MentorProfile{
				YearsOfExperience:   10,
				MentoringExperience: "experienced",
				AreasOfStrength:     []string{"a", "b", "c", "d", "e", "f"},
				Bio:                 longBio,
				MaxMentees:          3,
			},
			want: 100,
		},
		{
			name: "three years and some mentoring",
			mentor: &entity.MentorProfile{
				YearsOfExperience:   3,
				MentoringExperience: "some",
				AreasOfStrength:     []string{"go", "sql"},
				MaxMentees:          1,
			},
			want: 50 + 15 + 10 + 4 + 10,
		},
		{
			name: "first hit wins",
			mentor: &entity.MentorProfile{
				YearsOfExperience:   1,
				MentoringExperience: "first time, some practice",
				MaxMentees:          1,
				CurrentMenteeCount:  1,
			},
			want: 50 + 10 + 10 - 20,
		},
		{
			name: "categories are case-sensitive",
			mentor: &entity.MentorProfile{
				MentoringExperience: "Experienced",
				MaxMentees:          2,
			},
			want: 60,
		},
		{
			name:   "bio of exactly fifty characters earns nothing",
			mentor: &entity.MentorProfile{Bio: strings.Repeat("b", 50), MaxMentees: 1},
			want:   60,
		},
		{
			name:   "bio length counts characters not bytes",
			mentor: &entity.MentorProfile{Bio: strings.Repeat("é", 30), MaxMentees: 1},
			want:   60,
		},
		{
			name:   "nil profile",
			mentor: nil,
			want:   MinScore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Score(tt.mentor))
		})
	}
}

func TestScoreProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	mentoring := gen.OneConstOf("", "experienced", "some", "first", "none yet", "first time, some luck")

	build := func(years, areas, current, maxMentees int, bio string, text interface{}) *entity.MentorProfile {
		return &entity.MentorProfile{
			YearsOfExperience:   years,
			AreasOfStrength:     make([]string, areas),
			Bio:                 bio,
			MentoringExperience: text.(string),
			MaxMentees:          maxMentees,
			CurrentMenteeCount:  current,
		}
	}

	properties.Property("score stays within bounds", prop.ForAll(
		func(years, areas, current, maxMentees int, bio string, text interface{}) bool {
			score := Score(build(years, areas, current, maxMentees, bio, text))

			return score >= MinScore && score <= MaxScore
		},
		gen.IntRange(0, 60), gen.IntRange(0, 30), gen.IntRange(0, 10), gen.IntRange(1, 10), gen.AlphaString(), mentoring,
	))

	properties.Property("score is deterministic", prop.ForAll(
		func(years, areas, current, maxMentees int, bio string, text interface{}) bool {
			mentor := build(years, areas, current, maxMentees, bio, text)

			return Score(mentor) == Score(mentor)
		},
		gen.IntRange(0, 60), gen.IntRange(0, 30), gen.IntRange(0, 10), gen.IntRange(1, 10), gen.AlphaString(), mentoring,
	))

	properties.Property("free capacity never lowers the score", prop.ForAll(
		func(years, areas, maxMentees int, bio string, text interface{}) bool {
			open := build(years, areas, 0, maxMentees, bio, text)
			full := build(years, areas, maxMentees, maxMentees, bio, text)

			return Score(open) >= Score(full)
		},
		gen.IntRange(0, 60), gen.IntRange(0, 30), gen.IntRange(1, 10), gen.AlphaString(), mentoring,
	))

	properties.Property("more experience never lowers the score", prop.ForAll(
		func(years, extra int) bool {
			base := &entity.MentorProfile{YearsOfExperience: years, MaxMentees: 1}
			senior := &entity.MentorProfile{YearsOfExperience: years + extra, MaxMentees: 1}

			return Score(senior) >= Score(base)
		},
		gen.IntRange(0, 40), gen.IntRange(0, 40),
	))

	properties.TestingRun(t)
}
