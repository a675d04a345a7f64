package health

import (
	"strings"

	"github.com/matzehuels/repohealth/pkg/errors"
)

// Policy decides what happens to a repository whose checks fail.
type Policy int

const (
	// PolicySkip drops the repository from the report and continues.
	PolicySkip Policy = iota
	// PolicyRecord keeps partial results with an error marker.
	PolicyRecord
	// PolicyAbort stops the whole batch at the first failure.
	PolicyAbort
)

var policyNames = map[Policy]string{
	PolicySkip:   "skip",
	PolicyRecord: "record",
	PolicyAbort:  "abort",
}

func (p Policy) String() string {
	if s, ok := policyNames[p]; ok {
		return s
	}
	return "unknown"
}

// ParsePolicy converts a policy name ("skip", "record", "abort").
func ParsePolicy(s string) (Policy, error) {
	for p, name := range policyNames {
		if strings.EqualFold(s, name) {
			return p, nil
		}
	}
	return 0, errors.New(errors.ErrCodeInvalidInput, "unknown failure policy %q (want skip, record or abort)", s)
}
