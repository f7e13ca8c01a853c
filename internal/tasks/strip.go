package tasks

import (
	"regexp"
	"strings"

	"go.trai.ch/lily/internal/core/domain"
	"go.trai.ch/zerr"
)

// Strip drops every line matching the "match" regexp.
type Strip struct {
	Base
}

// NewStrip creates an unconfigured strip task.
func NewStrip() *Strip {
	return &Strip{Base: NewBase("strip", []string{"match"}, nil)}
}

// Apply mutates the buffer in place.
func (t *Strip) Apply(file *domain.FileBuffer) error {
	re, err := regexp.Compile(t.Param("match"))
	if err != nil {
		return t.finish(zerr.With(zerr.Wrap(err, "invalid match pattern"), "match", t.Param("match")))
	}

	lines := strings.Split(file.Content(), "\n")
	kept := lines[:0]
	for _, line := range lines {
		if !re.MatchString(line) {
			kept = append(kept, line)
		}
	}
	file.SetContent(strings.Join(kept, "\n"))
	return t.finish(nil)
}
