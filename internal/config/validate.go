package config

import (
	"fmt"

	apperr "titlestats/internal/errors"
)

// IssueSeverity represents the severity of a parameter issue.
type IssueSeverity string

const (
	// SeverityError blocks execution.
	SeverityError IssueSeverity = "error"
	// SeverityWarning is surfaced to the user but does not block.
	SeverityWarning IssueSeverity = "warning"
)

// Issue describes a single validation finding for a Params value. Path is
// the flag-style name of the offending parameter.
type Issue struct {
	Severity IssueSeverity
	Path     string
	Message  string
}

// Error implements the error interface so an Issue can be treated as a
// single error where convenient.
func (i Issue) Error() string {
	return fmt.Sprintf("%s at %s: %s", i.Severity, i.Path, i.Message)
}

// Validate performs static checks over the numeric parameters and returns a
// list of findings. It does not mutate p; callers decide whether warnings
// are fatal.
func (p Params) Validate() []Issue {
	var issues []Issue
	if p.MinVotes < 0 {
		issues = append(issues, Issue{SeverityError, "min-votes", "must be >= 0"})
	} else if p.MinVotes == 0 {
		issues = append(issues, Issue{SeverityWarning, "min-votes", "vote filter disabled; zero-vote titles will be included"})
	}
	if p.MinMovies < 1 {
		issues = append(issues, Issue{SeverityError, "min-movies", "must be >= 1"})
	}
	if p.TopN < 1 {
		issues = append(issues, Issue{SeverityError, "top-n", "must be >= 1"})
	}
	if p.Region == "" {
		issues = append(issues, Issue{SeverityError, "region", "must not be empty"})
	}
	return issues
}

// Check runs Validate and converts the first error-severity issue into a
// PARAMETER application error; warnings are returned for display.
func (p Params) Check() ([]Issue, error) {
	issues := p.Validate()
	var warnings []Issue
	for _, iss := range issues {
		if iss.Severity == SeverityError {
			return warnings, apperr.NewParameterError(iss.Error())
		}
		warnings = append(warnings, iss)
	}
	return warnings, nil
}
