package application

import (
	"fmt"
	"strings"

	"iconpack/internal/domain"
	"iconpack/internal/ports"
)

// ValidateRequired checks if a string argument is non-empty (after trimming whitespace).
// Returns an ArgumentError if the argument is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ArgumentError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// ValidateSourcesFolder checks that the IntelliJ sources folder is given and exists
func ValidateSourcesFolder(repo ports.IconRepository, root string) error {
	if err := ValidateRequired("sourcesPath", root); err != nil {
		return err
	}
	if !repo.IsDir(domain.NormalizePath(root)) {
		return &ArgumentError{
			Field:   "sourcesPath",
			Message: fmt.Sprintf("IntelliJ sources folder '%s' not found", root),
		}
	}
	return nil
}

// NormalizeVersion returns the version to embed in the pack name
func NormalizeVersion(version string) string {
	if strings.TrimSpace(version) == "" {
		return domain.DefaultVersion
	}
	return version
}

// formatFieldName converts camelCase argument names to readable words
// (e.g., "sourcesPath" -> "IntelliJ sources folder")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"sourcesPath": "IntelliJ sources folder",
		"version":     "icon pack version",
		"outputDir":   "output directory",
	}

	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return fieldName
}
