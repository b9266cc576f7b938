package usecase

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	minAge = 18
	maxAge = 100
)

type requiredField struct {
	name  string
	value string
}

func checkRequired(fields ...requiredField) *ValidationError {
	var missing []string
	for _, f := range fields {
		if strings.TrimSpace(f.value) == "" {
			missing = append(missing, f.name)
		}
	}
	if len(missing) > 0 {
		return newMissingFieldsError(missing)
	}
	return nil
}

// parseAge accepts an empty value (age is optional) and otherwise requires an
// integer in [18,100], both bounds inclusive.
func parseAge(raw string) (*int, *ValidationError) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, &ValidationError{Message: "age must be an integer"}
	}
	if v < minAge || v > maxAge {
		return nil, &ValidationError{Message: fmt.Sprintf("age must be between %d and %d", minAge, maxAge)}
	}
	return &v, nil
}

func checkExtension(fileName string, allowed []string) *ValidationError {
	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fileName), "."))
	for _, a := range allowed {
		if ext == a {
			return nil
		}
	}
	return &ValidationError{
		Message: fmt.Sprintf("file type %q not allowed, expected one of: %s", ext, strings.Join(allowed, ", ")),
	}
}

// profileSummary builds the text handed to the embedder when no resume text
// is available; resume parsing itself lives outside this service.
func profileSummary(jobTitle, skills, experience, resumeText string) string {
	if strings.TrimSpace(resumeText) != "" {
		return strings.TrimSpace(resumeText)
	}
	parts := make([]string, 0, 3)
	if jobTitle != "" {
		parts = append(parts, "Desired role: "+jobTitle)
	}
	if skills != "" {
		parts = append(parts, "Skills: "+skills)
	}
	if experience != "" {
		parts = append(parts, "Experience: "+experience)
	}
	return strings.Join(parts, ". ")
}
