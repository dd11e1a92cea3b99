package profile

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// LoadRequirement reads a job requirement document from path, decodes it
// strictly (unknown fields are rejected), normalizes it, and validates the
// result.
func LoadRequirement(path string) (*JobRequirement, error) {
	var req JobRequirement
	if err := decodeFile(path, &req); err != nil {
		return nil, fmt.Errorf("loading requirement: %w", err)
	}

	norm := NormalizeRequirement(req)
	if err := validate.Struct(&norm); err != nil {
		return nil, fmt.Errorf("invalid requirement %s: %w", path, err)
	}

	return &norm, nil
}

// LoadProfile reads a candidate profile document from path, decodes it
// strictly, normalizes it, and validates the result.
func LoadProfile(path string) (*CandidateProfile, error) {
	var cand CandidateProfile
	if err := decodeFile(path, &cand); err != nil {
		return nil, fmt.Errorf("loading profile: %w", err)
	}

	norm := NormalizeProfile(cand)
	if err := validate.Struct(&norm); err != nil {
		return nil, fmt.Errorf("invalid profile %s: %w", path, err)
	}

	return &norm, nil
}

func decodeFile(path string, target any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(target); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	return nil
}
