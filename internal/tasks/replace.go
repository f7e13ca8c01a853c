package tasks

import (
	"regexp"

	"go.trai.ch/lily/internal/core/domain"
	"go.trai.ch/zerr"
)

// Replace rewrites every match of the "pattern" regexp with "with".
type Replace struct {
	Base
}

// NewReplace creates an unconfigured replace task.
func NewReplace() *Replace {
	return &Replace{Base: NewBase("replace", []string{"pattern", "with"}, nil)}
}

// Apply mutates the buffer in place.
func (t *Replace) Apply(file *domain.FileBuffer) error {
	re, err := regexp.Compile(t.Param("pattern"))
	if err != nil {
		return t.finish(zerr.With(zerr.Wrap(err, "invalid pattern"), "pattern", t.Param("pattern")))
	}
	file.SetContent(re.ReplaceAllString(file.Content(), t.Param("with")))
	return t.finish(nil)
}
