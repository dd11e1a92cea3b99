package match

// Overall verdict values.
const (
	ResultPass = "Pass"
	ResultFail = "Fail"
)

// Report is the complete outcome of evaluating one candidate against one
// requirement. Experience fields are nil when that dimension was skipped by
// the caller.
type Report struct {
	SkillsMatch     bool     `json:"skills_match"`
	SkillsScore     float64  `json:"skills_score"`
	EducationMatch  bool     `json:"education_match"`
	EducationScore  float64  `json:"education_score"`
	ExperienceMatch *bool    `json:"experience_match,omitempty"`
	ExperienceScore *float64 `json:"experience_score,omitempty"`
	OverallResult   string   `json:"overall_result"`
	OverallScore    float64  `json:"overall_score"`
}

// DimensionResult is the pass/score pair of a single dimension.
type DimensionResult struct {
	Match bool
	Score float64
}

// Aggregate combines the dimension results into the overall verdict. The
// verdict passes only when every evaluated dimension matched; a skipped
// experience dimension is neutral. The overall score is the unweighted mean
// of the scores that are present.
func Aggregate(skills, education DimensionResult, experience *DimensionResult) *Report {
	report := &Report{
		SkillsMatch:    skills.Match,
		SkillsScore:    skills.Score,
		EducationMatch: education.Match,
		EducationScore: education.Score,
	}

	passed := skills.Match && education.Match
	scores := []float64{skills.Score, education.Score}

	if experience != nil {
		m := experience.Match
		s := experience.Score
		report.ExperienceMatch = &m
		report.ExperienceScore = &s

		passed = passed && experience.Match
		scores = append(scores, experience.Score)
	}

	sum := 0.0
	for _, s := range scores {
		sum += s
	}
	report.OverallScore = round2(sum / float64(len(scores)))

	report.OverallResult = ResultFail
	if passed {
		report.OverallResult = ResultPass
	}

	return report
}
