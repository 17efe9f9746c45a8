package domain

import (
	"bytes"
	"fmt"

	"github.com/yuin/goldmark"
)

// HTML renders the post content from markdown.
func (p *Post) HTML() (string, error) {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(p.Content), &buf); err != nil {
		return "", fmt.Errorf("render post content: %w", err)
	}
	return buf.String(), nil
}
