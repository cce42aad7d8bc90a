package elements

import (
	"strings"

	"github.com/mortonl/zebra-label-generator-sub001/api"
)

// Comment embeds a non-printing note in the command stream.
type Comment struct {
	Content string `yaml:"content" json:"content"`
}

// NewComment builds a comment.
func NewComment(content string) *Comment {
	return &Comment{Content: content}
}

func (c *Comment) ZPL(api.PrintDensity) string {
	return api.CmdComment + c.Content + api.CmdFieldSeparator
}

func (c *Comment) Validate(*ValidationContext) error {
	var failures []string
	if c.Content == "" {
		failures = append(failures, "comment content is required")
	}
	if strings.ContainsAny(c.Content, "^~") {
		failures = append(failures, "comment must not contain the control characters ^ or ~")
	}
	return api.NewValidationError(failures)
}
