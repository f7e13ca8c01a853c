package tasks

import "go.trai.ch/lily/internal/core/domain"

// Banner prepends the "text" line to the file content.
type Banner struct {
	Base
}

// NewBanner creates an unconfigured banner task.
func NewBanner() *Banner {
	return &Banner{Base: NewBase("banner", []string{"text"}, nil)}
}

// Apply mutates the buffer in place.
func (t *Banner) Apply(file *domain.FileBuffer) error {
	file.SetContent(t.Param("text") + "\n" + file.Content())
	return t.finish(nil)
}
