// Package security cleans user supplied rich text before it is stored.
package security

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/sbilibin2017/keuzekompas/internal/models"
)

// Sanitizer strips scripts, event handlers and unsafe URLs from HTML while
// keeping common formatting.
type Sanitizer struct {
	policy *bluemonday.Policy
}

func NewSanitizer() *Sanitizer {
	return &Sanitizer{policy: bluemonday.UGCPolicy()}
}

// Sanitize cleans a single value. Values without markup come back as plain
// text, so quotes, ampersands and angle brackets stay searchable. Text whose
// entities decode into markup keeps its escaped form.
func (s *Sanitizer) Sanitize(value string) string {
	cleaned := s.policy.Sanitize(value)
	if !strings.Contains(cleaned, "<") {
		if plain := html.UnescapeString(cleaned); s.policy.Sanitize(plain) == cleaned {
			cleaned = plain
		}
	}
	return strings.TrimSpace(cleaned)
}

// SanitizeModule cleans the free-text fields of a module in place.
func (s *Sanitizer) SanitizeModule(m *models.ModuleDB) {
	m.ShortDescription = s.Sanitize(m.ShortDescription)
	m.Description = s.Sanitize(m.Description)
	m.Content = s.Sanitize(m.Content)
	if m.LearningOutcomes != nil {
		cleaned := s.Sanitize(*m.LearningOutcomes)
		m.LearningOutcomes = &cleaned
	}
}
