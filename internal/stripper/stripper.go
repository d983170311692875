package stripper

import (
	"errors"
	"regexp"
	"strings"
)

// DefaultTarget is the call removed when no other target is configured.
const DefaultTarget = "console.log"

// ErrEmptyTarget is returned by New when no target name is given.
var ErrEmptyTarget = errors.New("target call name must not be empty")

// blankRunRegex matches three or more consecutive newlines.
var blankRunRegex = regexp.MustCompile(`\n\n\n+`)

// space is any Unicode whitespace: RE2's \s is ASCII only, so the vertical
// tab, the C0 separators, NEL and the Z categories are added.
const space = `[\s\v\x1c-\x1f\x85\p{Z}]*`

// Stripper removes statements calling a single target function.
type Stripper struct {
	target string

	// singleLineRegex matches a call whose arguments contain no ')'.
	singleLineRegex *regexp.Regexp
	// multiLineRegex matches from the call opening to the first ');' that
	// ends a line, across line boundaries.
	multiLineRegex *regexp.Regexp
}

// New compiles the removal patterns for the given call name, e.g. "console.log".
func New(target string) (*Stripper, error) {
	target = strings.TrimSpace(target)
	if target == "" {
		return nil, ErrEmptyTarget
	}
	quoted := regexp.QuoteMeta(target)

	return &Stripper{
		target:          target,
		singleLineRegex: regexp.MustCompile(`(?m)^` + space + quoted + `\([^)]*\);` + space + `$`),
		multiLineRegex:  regexp.MustCompile(`(?ms)^` + space + quoted + `\(.*?\);` + space + `$`),
	}, nil
}

// Target returns the call name this stripper removes.
func (s *Stripper) Target() string {
	return s.target
}

// Strip removes every target call statement that stands alone on its
// line(s) and collapses the blank-line runs left behind.
//
// A ')' inside the arguments ends the multi-line match early, and a call
// sharing its line with other code is never removed.
func (s *Stripper) Strip(content string) string {
	content = s.singleLineRegex.ReplaceAllLiteralString(content, "")
	content = s.multiLineRegex.ReplaceAllLiteralString(content, "")
	return Collapse(content)
}

// Count reports how many times the target name appears in content.
func (s *Stripper) Count(content string) int {
	return strings.Count(content, s.target)
}

// Collapse reduces every run of three or more newlines to exactly two.
func Collapse(content string) string {
	return blankRunRegex.ReplaceAllLiteralString(content, "\n\n")
}

// CountLines returns the number of newline characters in content.
func CountLines(content string) int {
	return strings.Count(content, "\n")
}
