// Package markdown renders trusted-author markdown into sanitized HTML.
package markdown

import (
	"bytes"
	"fmt"
	"html/template"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
)

// Service renders provider setup guides. Output passes through a
// bluemonday UGC policy before reaching a template.
type Service struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

func NewService() *Service {
	return &Service{
		md:     goldmark.New(),
		policy: bluemonday.UGCPolicy(),
	}
}

// Render converts markdown to sanitized HTML.
func (s *Service) Render(source string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := s.md.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("failed to render markdown: %w", err)
	}
	return template.HTML(s.policy.SanitizeBytes(buf.Bytes())), nil
}
