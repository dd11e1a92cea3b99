package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobsieve/jobsieve/internal/profile"
)

func expReq(required bool, minYears float64, maxYears *float64, fields ...string) profile.ExperienceRequirement {
	return profile.ExperienceRequirement{
		Required: required,
		MinYears: fptr(minYears),
		MaxYears: maxYears,
		Fields:   fields,
	}
}

func expRec(years float64, field string) profile.ExperienceRecord {
	return profile.ExperienceRecord{Years: profile.FlexFromFloat(years), Field: field}
}

func TestEvaluateExperienceInRange(t *testing.T) {
	engine := New(nil)

	req := expReq(true, 2, fptr(5), "python")
	recs := []profile.ExperienceRecord{expRec(3, "python")}

	match, score, err := engine.EvaluateExperience(req, recs)
	require.NoError(t, err)
	assert.True(t, match)
	assert.Equal(t, 100.0, score)
}

func TestEvaluateExperienceNotRequired(t *testing.T) {
	engine := New(nil)

	match, score, err := engine.EvaluateExperience(expReq(false, 0, nil), nil)
	require.NoError(t, err)
	assert.True(t, match)
	assert.Zero(t, score)
}

func TestEvaluateExperienceRequiredWithoutRecords(t *testing.T) {
	engine := New(nil)

	match, score, err := engine.EvaluateExperience(expReq(true, 2, nil, "python"), nil)
	require.NoError(t, err)
	assert.False(t, match)
	assert.Zero(t, score)
}

func TestEvaluateExperienceRange(t *testing.T) {
	engine := New(nil)

	cases := []struct {
		name      string
		req       profile.ExperienceRequirement
		recs      []profile.ExperienceRecord
		wantMatch bool
		wantScore float64
	}{
		{
			name:      "below minimum but close earns partial years credit",
			req:       expReq(true, 10, nil),
			recs:      []profile.ExperienceRecord{expRec(8.5, "python")},
			wantMatch: false,
			wantScore: 15 + 70, // no fields required
		},
		{
			name:      "far below minimum earns nothing for years",
			req:       expReq(true, 10, nil),
			recs:      []profile.ExperienceRecord{expRec(2, "python")},
			wantMatch: false,
			wantScore: 70,
		},
		{
			name:      "exceeding a finite maximum keeps partial credit",
			req:       expReq(true, 1, fptr(2), "python"),
			recs:      []profile.ExperienceRecord{expRec(5, "python")},
			wantMatch: false,
			wantScore: 20 + 70,
		},
		{
			name:      "unbounded maximum accepts any total",
			req:       expReq(true, 1, nil, "python"),
			recs:      []profile.ExperienceRecord{expRec(30, "python")},
			wantMatch: true,
			wantScore: 100,
		},
		{
			name: "total years sum across all records regardless of field",
			req:  expReq(true, 4, fptr(10), "python"),
			recs: []profile.ExperienceRecord{
				expRec(2, "python"),
				expRec(3, "accounting"),
			},
			wantMatch: true,
			wantScore: 100,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			match, score, err := engine.EvaluateExperience(tc.req, tc.recs)
			require.NoError(t, err)
			assert.Equal(t, tc.wantMatch, match)
			assert.InDelta(t, tc.wantScore, score, 1e-9)
		})
	}
}

func TestEvaluateExperienceFields(t *testing.T) {
	engine := New(nil)

	t.Run("any matching pair passes the field check", func(t *testing.T) {
		req := expReq(true, 0, nil, "django", "python")
		recs := []profile.ExperienceRecord{expRec(2, "python")}

		match, _, err := engine.EvaluateExperience(req, recs)
		require.NoError(t, err)
		assert.True(t, match)
	})

	t.Run("fields are scored independently", func(t *testing.T) {
		req := expReq(true, 0, nil, "django", "python")
		recs := []profile.ExperienceRecord{expRec(2, "python")}

		_, score, err := engine.EvaluateExperience(req, recs)
		require.NoError(t, err)
		assert.InDelta(t, 30+35, score, 1e-9) // one of two fields matched
	})

	t.Run("no matching field fails", func(t *testing.T) {
		req := expReq(true, 0, nil, "django")
		recs := []profile.ExperienceRecord{expRec(2, "accounting")}

		match, score, err := engine.EvaluateExperience(req, recs)
		require.NoError(t, err)
		assert.False(t, match)
		assert.InDelta(t, 30, score, 1e-9)
	})

	t.Run("containment earns field credit even in fuzzy mode", func(t *testing.T) {
		req := expReq(true, 0, nil, "python")
		recs := []profile.ExperienceRecord{expRec(2, "python development")}

		// The ratio for this pair is below the threshold, so the pass/fail
		// check rejects it, but scoring still counts the contained field.
		match, score, err := engine.EvaluateExperience(req, recs)
		require.NoError(t, err)
		assert.False(t, match)
		assert.InDelta(t, 100, score, 1e-9)
	})

	t.Run("substring mode matches containment", func(t *testing.T) {
		substr := New(nil, WithSubstringMatching())
		req := expReq(true, 0, nil, "python")
		recs := []profile.ExperienceRecord{expRec(2, "python development")}

		// Fuzzy mode rejects this pair; substring containment accepts it.
		match, _, err := engine.EvaluateExperience(req, recs)
		require.NoError(t, err)
		assert.False(t, match)

		match, _, err = substr.EvaluateExperience(req, recs)
		require.NoError(t, err)
		assert.True(t, match)
	})
}

func TestEvaluateExperienceIncomparableData(t *testing.T) {
	engine := New(nil)

	t.Run("unresolvable record years", func(t *testing.T) {
		req := expReq(true, 2, nil, "python")
		recs := []profile.ExperienceRecord{
			{Years: profile.FlexFloat{Present: true}, Field: "python"},
		}

		_, _, err := engine.EvaluateExperience(req, recs)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrIncomparableExperience)

		var incomparable *IncomparableExperienceError
		assert.ErrorAs(t, err, &incomparable)
	})

	t.Run("missing requirement minimum", func(t *testing.T) {
		req := profile.ExperienceRequirement{Required: true}

		_, _, err := engine.EvaluateExperience(req, []profile.ExperienceRecord{expRec(3, "python")})
		assert.ErrorIs(t, err, ErrIncomparableExperience)
	})
}
