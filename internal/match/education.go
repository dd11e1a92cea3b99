package match

import (
	"go.uber.org/zap"

	"github.com/jobsieve/jobsieve/internal/profile"
)

// educationWeights fixes the importance of each level. The four weights
// always sum to 1.0 regardless of which levels a requirement marks required.
var educationWeights = map[profile.Level]float64{
	profile.LevelSecondary:     0.1,
	profile.LevelPreUniversity: 0.2,
	profile.LevelUndergraduate: 0.5,
	profile.LevelPostgraduate:  0.2,
}

// EvaluateEducation checks the candidate's education records against the
// per-level requirements. The match is the logical AND across all four
// levels; the score is the weight share of satisfied levels. A level that is
// not marked required is satisfied unconditionally for both.
func (e *Engine) EvaluateEducation(req map[profile.Level]profile.EducationRequirement, recs []profile.EducationRecord) (bool, float64) {
	matched := true
	score := 0.0
	total := 0.0

	for _, level := range profile.Levels() {
		weight := educationWeights[level]
		total += weight

		entry := req[level] // zero value: not required
		rec := findEducationRecord(recs, level)

		ok := e.educationLevelSatisfied(entry, rec, level)
		if ok {
			score += weight
		} else {
			matched = false
		}

		e.logger.Debug("education level evaluated",
			zap.String("level", string(level)),
			zap.Bool("required", entry.Required),
			zap.Bool("satisfied", ok),
		)
	}

	return matched, round2(score / total * 100)
}

func (e *Engine) educationLevelSatisfied(entry profile.EducationRequirement, rec *profile.EducationRecord, level profile.Level) bool {
	if !entry.Required {
		return true
	}
	if rec == nil {
		return false
	}

	if level == profile.LevelUndergraduate || level == profile.LevelPostgraduate {
		reqKey := NormalizeDegree(entry.Degree)
		recKey := NormalizeDegree(rec.Degree)
		if reqKey == "" || recKey == "" {
			return false
		}
		if DegreeRank(recKey) < DegreeRank(reqKey) {
			return false
		}

		// The rank check alone allows any degree of the same bucket; the
		// literal degree string must also resemble the requirement's.
		if entry.Degree != "" && !e.similar(entry.Degree, rec.Degree) {
			return false
		}
	}

	if entry.CGPA != nil {
		recCGPA := rec.CGPA.Float()
		if recCGPA == nil {
			e.logger.Debug("record has no parseable cgpa for required level",
				zap.String("level", string(level)),
			)
			return false
		}
		if *recCGPA < *entry.CGPA {
			return false
		}
	}

	return true
}

// findEducationRecord returns the first record for the level, or nil.
func findEducationRecord(recs []profile.EducationRecord, level profile.Level) *profile.EducationRecord {
	for i := range recs {
		if recs[i].Level == level {
			return &recs[i]
		}
	}
	return nil
}
