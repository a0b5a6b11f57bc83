package util

import "errors"

var (
	ErrAssessmentIncomplete = errors.New("assessment incomplete: all questions must be answered")
	ErrEmptyPrompt          = errors.New("chat prompt is empty")
)
