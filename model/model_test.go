package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummary(t *testing.T) {
	s := Summary{
		Reports: []Report{
			{Path: "a.js", LinesBefore: 10, LinesAfter: 5, CallsBefore: 2},
			{Path: "missing.js", Err: errors.New("not found")},
			{Path: "b.js"},
		},
	}

	assert.Equal(t, 2, s.Succeeded())
	assert.Equal(t, []string{"missing.js"}, s.Failed())
	assert.Equal(t, 5, s.Reports[0].LinesRemoved())
	assert.Equal(t, 2, s.Reports[0].CallsRemoved())
}
