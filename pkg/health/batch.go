package health

import (
	"time"

	"github.com/matzehuels/repohealth/pkg/checks"
	pkgio "github.com/matzehuels/repohealth/pkg/io"
	"github.com/matzehuels/repohealth/pkg/metadata"
)

// Outcome is the result of checking one repository.
type Outcome struct {
	Repo        string
	Path        string
	RunID       string
	CheckedAt   time.Time
	Results     checks.Results
	Err         error  // First check failure, if any
	FailedCheck string // Key of the failing check
}

// Batch holds the outcomes of one run in input order.
type Batch struct {
	RunID    string
	Policy   Policy
	Started  time.Time
	Duration time.Duration
	Outcomes []Outcome
}

// Reported returns the outcomes that belong in the report under the
// batch's policy: all of them for PolicyRecord, the successful ones
// otherwise.
func (b *Batch) Reported() []Outcome {
	var out []Outcome
	for _, o := range b.Outcomes {
		if o.Err == nil || b.Policy == PolicyRecord {
			out = append(out, o)
		}
	}
	return out
}

// Failed returns the outcomes whose checks did not all succeed.
func (b *Batch) Failed() []Outcome {
	var out []Outcome
	for _, o := range b.Outcomes {
		if o.Err != nil {
			out = append(out, o)
		}
	}
	return out
}

func (b *Batch) counts() (ok, failed int) {
	failed = len(b.Failed())
	return len(b.Outcomes) - failed, failed
}

// Nested returns the reported results keyed by repository name.
func (b *Batch) Nested() *metadata.ResultSet {
	set := metadata.NewResultSet()
	for _, o := range b.Reported() {
		set.Add(o.Repo, o.Results.Nested())
	}
	return set
}

// Standardized flattens and standardizes the reported results.
func (b *Batch) Standardized(delim string) (*metadata.ResultSet, error) {
	return metadata.FlattenAndStandardize(b.Nested(), delim)
}

// Documents converts the reported outcomes into storable documents.
func (b *Batch) Documents() []*pkgio.Document {
	reported := b.Reported()
	docs := make([]*pkgio.Document, 0, len(reported))
	for _, o := range reported {
		docs = append(docs, &pkgio.Document{
			RunID:     o.RunID,
			Repo:      o.Repo,
			CheckedAt: o.CheckedAt,
			Results:   o.Results.Nested(),
		})
	}
	return docs
}
