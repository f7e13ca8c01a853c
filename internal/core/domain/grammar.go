// Package domain contains the core domain models for the patching engine.
package domain

import (
	"regexp"
	"sort"
	"strings"
)

// Structural directive keywords. They are always part of the grammar,
// regardless of which tasks are registered.
const (
	// KeywordPatch marks a source as a patch.
	KeywordPatch = "lily"
	// KeywordTask opens a task block binding subsequent parameter directives.
	KeywordTask = "task"
	// KeywordFiles scopes a patch or a task block to specific relative paths.
	KeywordFiles = "files"
)

// Directive is one structured annotation extracted from a source comment.
type Directive struct {
	// Keyword is the matched keyword without the leading '@'.
	Keyword string
	// Arg is the trimmed argument payload following the keyword, if any.
	Arg string
	// Offset is the byte offset of the directive in the scanned source.
	Offset int
}

// Grammar recognizes directive-bearing comment lines. It is an immutable
// value compiled from a parameter-name set; the registry recompiles it
// whenever the set changes.
type Grammar struct {
	params []string
	re     *regexp.Regexp
}

// CompileGrammar builds a Grammar whose keyword alternation is the three
// structural keywords plus every name in params, deduplicated. The order of
// params does not affect the recognized language.
func CompileGrammar(params []string) *Grammar {
	seen := map[string]bool{
		KeywordPatch: true,
		KeywordTask:  true,
		KeywordFiles: true,
	}
	keywords := []string{KeywordPatch, KeywordTask, KeywordFiles}
	kept := make([]string, 0, len(params))
	for _, p := range params {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		keywords = append(keywords, p)
		kept = append(kept, p)
	}

	// Longer keywords first so a keyword that is a prefix of another
	// ("file" vs "files") cannot shadow it in the alternation.
	sort.SliceStable(keywords, func(i, j int) bool {
		return len(keywords[i]) > len(keywords[j])
	})
	quoted := make([]string, len(keywords))
	for i, k := range keywords {
		quoted[i] = regexp.QuoteMeta(k)
	}

	// The argument runs to the end of the line or the next directive on the
	// same line, so multi-line comment blocks scan directive by directive.
	pattern := `@(` + strings.Join(quoted, "|") + `)\b[ \t]*([^@\r\n]*)`
	return &Grammar{
		params: kept,
		re:     regexp.MustCompile(`(?m)` + pattern),
	}
}

// Params returns the deduplicated parameter names the grammar was compiled
// with, in first-registration order.
func (g *Grammar) Params() []string {
	out := make([]string, len(g.params))
	copy(out, g.params)
	return out
}

// Recognizes reports whether the keyword is part of the grammar.
func (g *Grammar) Recognizes(keyword string) bool {
	if keyword == KeywordPatch || keyword == KeywordTask || keyword == KeywordFiles {
		return true
	}
	for _, p := range g.params {
		if p == keyword {
			return true
		}
	}
	return false
}

// Scan extracts all directives from src in document order.
func (g *Grammar) Scan(src string) []Directive {
	matches := g.re.FindAllStringSubmatchIndex(src, -1)
	if len(matches) == 0 {
		return nil
	}

	directives := make([]Directive, 0, len(matches))
	for _, m := range matches {
		keyword := src[m[2]:m[3]]
		arg := ""
		if m[4] >= 0 {
			arg = trimArg(src[m[4]:m[5]])
		}
		directives = append(directives, Directive{
			Keyword: keyword,
			Arg:     arg,
			Offset:  m[0],
		})
	}
	return directives
}

// trimArg strips comment terminators and surrounding whitespace from an
// argument payload so directives inside block comments parse cleanly.
func trimArg(arg string) string {
	arg = strings.TrimSpace(arg)
	for _, terminator := range []string{"*/", "-->", "#>"} {
		if trimmed, ok := strings.CutSuffix(arg, terminator); ok {
			arg = strings.TrimSpace(trimmed)
			break
		}
	}
	return arg
}
