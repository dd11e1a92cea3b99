// Package match implements the requirement/candidate scoring engine: the
// boolean skill-expression evaluator, the education and experience matchers,
// and the aggregate verdict.
package match

import (
	"math"
	"strings"

	"go.uber.org/zap"

	"github.com/jobsieve/jobsieve/internal/profile"
	"github.com/jobsieve/jobsieve/internal/textmatch"
)

const maxLoggedExpression = 200

// Engine evaluates structured job requirements against candidate profiles.
// It holds no mutable state; a single Engine is safe for concurrent use and
// every evaluation is deterministic in its inputs.
type Engine struct {
	logger    *zap.Logger
	fuzzy     bool
	threshold float64
}

// Option configures an Engine.
type Option func(*Engine)

// WithSubstringMatching switches degree and experience-field comparison from
// the fuzzy similarity ratio to plain substring containment of the
// requirement string within the record string.
func WithSubstringMatching() Option {
	return func(e *Engine) {
		e.fuzzy = false
	}
}

// New creates an Engine. A nil logger falls back to a no-op logger.
func New(logger *zap.Logger, opts ...Option) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}

	e := &Engine{
		logger:    logger,
		fuzzy:     true,
		threshold: textmatch.DefaultThreshold,
	}
	for _, opt := range opts {
		opt(e)
	}

	return e
}

// Evaluate runs every dimension and aggregates the results. The experience
// dimension is evaluated only when withExperience is set; skipping it leaves
// the report's experience fields absent and the verdict neutral on them.
// The inputs are expected to be normalized (see profile.NormalizeRequirement
// and profile.NormalizeProfile).
func (e *Engine) Evaluate(req *profile.JobRequirement, cand *profile.CandidateProfile, withExperience bool) (*Report, error) {
	skillsMatch, skillsScore := e.EvaluateSkills(req.SkillsExpression, cand.Skills)
	e.logger.Info("skills dimension evaluated",
		zap.Bool("match", skillsMatch),
		zap.Float64("score", skillsScore),
	)

	eduMatch, eduScore := e.EvaluateEducation(req.Education, cand.Education)
	e.logger.Info("education dimension evaluated",
		zap.Bool("match", eduMatch),
		zap.Float64("score", eduScore),
	)

	var experience *DimensionResult
	if withExperience {
		expMatch, expScore, err := e.EvaluateExperience(req.Experience, cand.Experience)
		if err != nil {
			return nil, err
		}
		e.logger.Info("experience dimension evaluated",
			zap.Bool("match", expMatch),
			zap.Float64("score", expScore),
		)
		experience = &DimensionResult{Match: expMatch, Score: expScore}
	} else {
		e.logger.Info("experience dimension skipped")
	}

	return Aggregate(
		DimensionResult{Match: skillsMatch, Score: skillsScore},
		DimensionResult{Match: eduMatch, Score: eduScore},
		experience,
	), nil
}

// similar compares a requirement string against a record string in the
// configured mode. Empty inputs never match.
func (e *Engine) similar(req, rec string) bool {
	if req == "" || rec == "" {
		return false
	}
	if e.fuzzy {
		return textmatch.Similar(req, rec, e.threshold)
	}
	return strings.Contains(rec, req)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
