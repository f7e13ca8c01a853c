package tasks

import "go.trai.ch/lily/internal/core/domain"

// Append adds the "text" line at the end of the file content.
type Append struct {
	Base
}

// NewAppend creates an unconfigured append task.
func NewAppend() *Append {
	return &Append{Base: NewBase("append", []string{"text"}, nil)}
}

// Apply mutates the buffer in place.
func (t *Append) Apply(file *domain.FileBuffer) error {
	content := file.Content()
	if content != "" && !endsWithNewline(content) {
		content += "\n"
	}
	file.SetContent(content + t.Param("text") + "\n")
	return t.finish(nil)
}

func endsWithNewline(s string) bool {
	return s[len(s)-1] == '\n'
}
