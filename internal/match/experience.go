package match

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/jobsieve/jobsieve/internal/profile"
)

const (
	yearsPoints   = 30.0
	overMaxPoints = 20.0
	nearMinPoints = 15.0
	fieldsPoints  = 70.0

	// A total at or above this share of the required minimum earns partial
	// years credit.
	nearMinShare = 0.8
)

// EvaluateExperience runs the two experience computations over the same
// normalized inputs: the range-and-field pass/fail decision and the weighted
// 0-100 score.
//
// It refuses to compare years against a value that normalization should have
// defaulted but did not: a record whose years are still absent, or a
// requirement with a nil minimum. That condition returns an
// IncomparableExperienceError instead of a verdict, since it indicates
// malformed upstream data rather than a genuine mismatch.
func (e *Engine) EvaluateExperience(req profile.ExperienceRequirement, recs []profile.ExperienceRecord) (bool, float64, error) {
	if req.MinYears == nil {
		return false, 0, newIncomparableError("requirement minimum years is absent and was not defaulted")
	}

	totalYears := 0.0
	for i, rec := range recs {
		if !rec.Years.Valid {
			return false, 0, newIncomparableError("experience record %d has unresolvable years", i)
		}
		totalYears += rec.Years.Value
	}

	minYears := *req.MinYears
	maxYears := math.Inf(1)
	if req.MaxYears != nil {
		maxYears = *req.MaxYears
	}

	matched := e.experienceMatches(req, recs, totalYears, minYears, maxYears)
	score := e.scoreExperience(req, recs, totalYears, minYears, maxYears)

	e.logger.Debug("experience evaluated",
		zap.Float64("total_years", totalYears),
		zap.Float64("min_years", minYears),
		zap.Bool("match", matched),
		zap.Float64("score", score),
	)

	return matched, score, nil
}

func (e *Engine) experienceMatches(req profile.ExperienceRequirement, recs []profile.ExperienceRecord, totalYears, minYears, maxYears float64) bool {
	if !req.Required {
		return true
	}
	if len(recs) == 0 {
		return false
	}

	if totalYears < minYears || totalYears > maxYears {
		return false
	}

	// Any required field matching any record field suffices.
	if len(req.Fields) > 0 {
		found := false
		for _, reqField := range req.Fields {
			for _, rec := range recs {
				if e.similar(reqField, rec.Field) {
					found = true
					break
				}
			}
			if found {
				break
			}
		}
		if !found {
			return false
		}
	}

	return true
}

func (e *Engine) scoreExperience(req profile.ExperienceRequirement, recs []profile.ExperienceRecord, totalYears, minYears, maxYears float64) float64 {
	if len(recs) == 0 {
		return 0
	}

	score := 0.0

	switch {
	case totalYears >= minYears && totalYears <= maxYears:
		score += yearsPoints
	case !math.IsInf(maxYears, 1) && totalYears > maxYears:
		score += overMaxPoints
	case totalYears >= nearMinShare*minYears:
		score += nearMinPoints
	}

	if len(req.Fields) == 0 {
		score += fieldsPoints
	} else {
		matchedFields := 0
		for _, reqField := range req.Fields {
			for _, rec := range recs {
				// Unlike the pass/fail check, scoring also credits plain
				// substring containment when the similarity ratio falls short.
				if e.similar(reqField, rec.Field) || strings.Contains(rec.Field, reqField) {
					matchedFields++
					break
				}
			}
		}
		score += float64(matchedFields) / float64(len(req.Fields)) * fieldsPoints
	}

	return round2(math.Min(score, 100))
}
