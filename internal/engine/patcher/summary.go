package patcher

import (
	"strconv"

	"go.trai.ch/lily/internal/core/domain"
)

// writtenFile records one persisted destination and its content digest.
type writtenFile struct {
	path   string
	digest string
}

// Summary groups all tasks across all patches into terminal-status buckets
// and lists the files persisted by the run. Entries are "patch/task" names in
// patch-registration then directive order.
type Summary struct {
	Succeeded   []string
	Failed      []string
	NotExecuted []string
	// Written maps destination path to content digest for every persisted
	// file. Empty for failed runs and for the in-memory apply mode.
	Written map[string]string
}

// Summary computes the status buckets from the current task states. Valid
// after a run, a failed run, or an apply.
func (p *Patcher) Summary() *Summary {
	s := &Summary{Written: make(map[string]string, len(p.written))}
	for _, patch := range p.patches {
		for _, inv := range patch.Tasks() {
			name := patch.Name() + "/" + inv.Task.Name()
			switch inv.Task.Status() {
			case domain.StatusSucceeded:
				s.Succeeded = append(s.Succeeded, name)
			case domain.StatusFailed:
				s.Failed = append(s.Failed, name)
			default:
				s.NotExecuted = append(s.NotExecuted, name)
			}
		}
	}
	for _, w := range p.written {
		s.Written[w.path] = w.digest
	}
	return s
}

// String renders the bucket counts for log output.
func (s *Summary) String() string {
	return strconv.Itoa(len(s.Succeeded)) + " succeeded, " +
		strconv.Itoa(len(s.Failed)) + " failed, " +
		strconv.Itoa(len(s.NotExecuted)) + " not executed"
}
