package tasks

import (
	"strings"

	"go.trai.ch/lily/internal/core/domain"
)

// Define substitutes every ${name} token with the optional "value", or with
// the empty string when no value is bound.
type Define struct {
	Base
}

// NewDefine creates an unconfigured define task.
func NewDefine() *Define {
	return &Define{Base: NewBase("define", []string{"name"}, []string{"value"})}
}

// Apply mutates the buffer in place.
func (t *Define) Apply(file *domain.FileBuffer) error {
	token := "${" + t.Param("name") + "}"
	file.SetContent(strings.ReplaceAll(file.Content(), token, t.Param("value")))
	return t.finish(nil)
}
