package model

// Report holds the before/after counters for one processed document.
type Report struct {
	Path        string
	LinesBefore int
	LinesAfter  int
	CallsBefore int
	CallsAfter  int
	// Written is false for dry runs and for failed documents.
	Written bool
	Err     error
}

// OK reports whether the document was processed without error.
func (r Report) OK() bool {
	return r.Err == nil
}

// LinesRemoved is the line count delta.
func (r Report) LinesRemoved() int {
	return r.LinesBefore - r.LinesAfter
}

// CallsRemoved is the target call occurrence delta.
func (r Report) CallsRemoved() int {
	return r.CallsBefore - r.CallsAfter
}

// Summary holds the results of a run for display.
type Summary struct {
	Target  string
	Reports []Report
	Message string
}

// Succeeded counts the reports without error.
func (s Summary) Succeeded() int {
	n := 0
	for _, r := range s.Reports {
		if r.OK() {
			n++
		}
	}
	return n
}

// Failed returns the paths of the documents that could not be processed.
func (s Summary) Failed() []string {
	var failed []string
	for _, r := range s.Reports {
		if !r.OK() {
			failed = append(failed, r.Path)
		}
	}
	return failed
}
