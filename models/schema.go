// ABOUTME: Required-field schema implemented by response types
// ABOUTME: Paths are gjson expressions checked against the raw response body

package models

// Schema is implemented by response types that require fields to be present.
type Schema interface {
	RequiredFields() []string
}
