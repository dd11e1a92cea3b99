// Package profile defines the structured job requirement and candidate
// profile records consumed by the match engine, together with their
// normalization and strict loading.
package profile

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// Level identifies one of the four fixed education levels.
type Level string

const (
	LevelSecondary     Level = "10th"
	LevelPreUniversity Level = "pu"
	LevelUndergraduate Level = "ug"
	LevelPostgraduate  Level = "pg"
)

// Levels returns the four education levels in evaluation order.
func Levels() []Level {
	return []Level{LevelSecondary, LevelPreUniversity, LevelUndergraduate, LevelPostgraduate}
}

// JobRequirement describes what a vacancy demands of a candidate.
type JobRequirement struct {
	SkillsExpression string                        `json:"skills_expression" validate:"required"`
	Education        map[Level]EducationRequirement `json:"education" validate:"dive,keys,oneof=10th pu ug pg,endkeys"`
	Experience       ExperienceRequirement          `json:"experience"`
}

// EducationRequirement is the requirement for a single education level.
type EducationRequirement struct {
	Required bool     `json:"required"`
	Degree   string   `json:"degree,omitempty"`
	CGPA     *float64 `json:"cgpa,omitempty" validate:"omitempty,gte=0"`
}

// ExperienceRequirement describes the demanded work experience. A nil
// MinYears is defaulted to zero during normalization; a nil MaxYears means
// unbounded.
type ExperienceRequirement struct {
	Required bool     `json:"required"`
	MinYears *float64 `json:"min_years,omitempty" validate:"omitempty,gte=0"`
	MaxYears *float64 `json:"max_years,omitempty" validate:"omitempty,gte=0"`
	Fields   []string `json:"fields,omitempty"`
}

// CandidateProfile is the structured form of a resume.
type CandidateProfile struct {
	Skills     []string           `json:"skills"`
	Education  []EducationRecord  `json:"education" validate:"dive"`
	Experience []ExperienceRecord `json:"experience" validate:"dive"`
}

// EducationRecord is one education entry of a candidate.
type EducationRecord struct {
	Level  Level     `json:"level" validate:"required"`
	Degree string    `json:"degree,omitempty"`
	CGPA   FlexFloat `json:"cgpa,omitempty"`
}

// ExperienceRecord is one work-experience entry of a candidate.
type ExperienceRecord struct {
	Title string    `json:"title,omitempty"`
	Years FlexFloat `json:"years,omitempty"`
	Field string    `json:"field,omitempty"`
}

// FlexFloat is a numeric field that upstream extraction may deliver as a
// JSON number, a numeric string (optionally suffixed with "%"), or null.
// Values that fail to parse are kept absent instead of failing the decode;
// the distinction between "never present" and "present but unparsable" is
// preserved for the experience matcher.
type FlexFloat struct {
	Value   float64
	Valid   bool // the value parsed to a number
	Present bool // the field carried a non-null value
}

// Float returns the parsed value, or nil when absent.
func (f FlexFloat) Float() *float64 {
	if !f.Valid {
		return nil
	}
	v := f.Value
	return &v
}

// FlexFromFloat builds a parsed, present FlexFloat.
func FlexFromFloat(v float64) FlexFloat {
	return FlexFloat{Value: v, Valid: true, Present: true}
}

func (f *FlexFloat) UnmarshalJSON(data []byte) error {
	*f = FlexFloat{}
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*f = FlexFloat{Value: num, Valid: true, Present: true}
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		// Wrong JSON type. Treat as present-but-unparsable rather than
		// failing the whole document.
		f.Present = true
		return nil
	}

	f.Present = true
	raw = strings.TrimSuffix(strings.TrimSpace(raw), "%")
	if v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil {
		f.Value = v
		f.Valid = true
	}
	return nil
}

func (f FlexFloat) MarshalJSON() ([]byte, error) {
	if !f.Valid {
		return []byte("null"), nil
	}
	return json.Marshal(f.Value)
}
