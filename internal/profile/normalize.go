package profile

import (
	"sort"
	"strings"
)

// Normalization canonicalizes every string that later participates in a
// comparison (trimmed, lowercase) and coerces numeric fields to their
// documented defaults. All functions return copies and are idempotent; the
// originals are never mutated.

func canon(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// NormalizeSkills lowercases and trims every skill, drops empties, and
// collapses duplicates. The result is sorted for determinism.
func NormalizeSkills(skills []string) []string {
	set := make(map[string]struct{}, len(skills))
	for _, s := range skills {
		if c := canon(s); c != "" {
			set[c] = struct{}{}
		}
	}

	out := make([]string, 0, len(set))
	for s := range set {
		out = append(out, s)
	}
	sort.Strings(out)
	return out
}

// NormalizeRequirement returns a normalized copy of the job requirement.
func NormalizeRequirement(req JobRequirement) JobRequirement {
	out := JobRequirement{
		SkillsExpression: strings.TrimSpace(req.SkillsExpression),
		Experience:       normalizeExperienceRequirement(req.Experience),
	}

	if req.Education != nil {
		out.Education = make(map[Level]EducationRequirement, len(req.Education))
		for level, entry := range req.Education {
			out.Education[Level(canon(string(level)))] = normalizeEducationRequirement(entry)
		}
	}

	return out
}

// NormalizeProfile returns a normalized copy of the candidate profile.
func NormalizeProfile(cand CandidateProfile) CandidateProfile {
	out := CandidateProfile{
		Skills: NormalizeSkills(cand.Skills),
	}

	if cand.Education != nil {
		out.Education = make([]EducationRecord, len(cand.Education))
		for i, rec := range cand.Education {
			out.Education[i] = normalizeEducationRecord(rec)
		}
	}

	if cand.Experience != nil {
		out.Experience = make([]ExperienceRecord, len(cand.Experience))
		for i, rec := range cand.Experience {
			out.Experience[i] = normalizeExperienceRecord(rec)
		}
	}

	return out
}

func normalizeEducationRequirement(entry EducationRequirement) EducationRequirement {
	out := EducationRequirement{
		Required: entry.Required,
		Degree:   canon(entry.Degree),
	}
	if entry.CGPA != nil {
		v := *entry.CGPA
		out.CGPA = &v
	}
	return out
}

func normalizeEducationRecord(rec EducationRecord) EducationRecord {
	return EducationRecord{
		Level:  Level(canon(string(rec.Level))),
		Degree: canon(rec.Degree),
		CGPA:   rec.CGPA,
	}
}

func normalizeExperienceRequirement(req ExperienceRequirement) ExperienceRequirement {
	out := ExperienceRequirement{Required: req.Required}

	// The documented defaults: an absent minimum is zero, an absent maximum
	// stays nil (unbounded).
	min := 0.0
	if req.MinYears != nil {
		min = *req.MinYears
	}
	out.MinYears = &min

	if req.MaxYears != nil {
		max := *req.MaxYears
		out.MaxYears = &max
	}

	for _, f := range req.Fields {
		if c := canon(f); c != "" {
			out.Fields = append(out.Fields, c)
		}
	}

	return out
}

func normalizeExperienceRecord(rec ExperienceRecord) ExperienceRecord {
	out := ExperienceRecord{
		Title: canon(rec.Title),
		Field: canon(rec.Field),
		Years: rec.Years,
	}

	// A missing years field defaults to zero. A value that was present but
	// unparsable stays absent so the experience matcher can refuse to
	// compare it.
	if !out.Years.Present {
		out.Years = FlexFromFloat(0)
	}

	return out
}
