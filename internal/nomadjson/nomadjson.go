// Package nomadjson converts Nomad job API payloads into workloads.
package nomadjson

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/fentz26/jobsummary/internal/models"
)

// ErrEmptyInput is returned when the payload holds no JSON value.
var ErrEmptyInput = errors.New("empty job payload")

// TaskGroupSummary is the per task group allocation summary.
type TaskGroupSummary struct {
	Queued   int
	Starting int
	Running  int
	Complete int
	Failed   int
	Lost     int
}

// ChildrenSummary counts the children of a periodic or parameterized job.
type ChildrenSummary struct {
	Pending int
	Running int
	Dead    int
}

// JobSummary mirrors the JobSummary object of the jobs API.
type JobSummary struct {
	JobID    string
	Summary  map[string]TaskGroupSummary
	Children *ChildrenSummary
}

// Job is the subset of a job list stub (or full job) used here. Periodic
// and ParameterizedJob are booleans in list stubs and objects in full jobs.
type Job struct {
	ID               string
	ParentID         string
	Name             string
	Type             string
	Status           string
	Periodic         json.RawMessage
	ParameterizedJob json.RawMessage
	Dispatched       bool
	JobSummary       *JobSummary
}

// Decode reads either a single job object or an array of jobs.
func Decode(r io.Reader) ([]Job, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read payload: %w", err)
	}
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, ErrEmptyInput
	}

	if data[0] == '[' {
		var jobs []Job
		if err := json.Unmarshal(data, &jobs); err != nil {
			return nil, fmt.Errorf("decode job list: %w", err)
		}
		return jobs, nil
	}

	var job Job
	if err := json.Unmarshal(data, &job); err != nil {
		return nil, fmt.Errorf("decode job: %w", err)
	}
	return []Job{job}, nil
}

// DecodeWorkloads decodes r and converts every job.
func DecodeWorkloads(r io.Reader) ([]models.Workload, error) {
	jobs, err := Decode(r)
	if err != nil {
		return nil, err
	}
	out := make([]models.Workload, 0, len(jobs))
	for _, j := range jobs {
		out = append(out, j.Workload())
	}
	return out, nil
}

// IsPeriodic reports whether the job carries a periodic block.
func (j Job) IsPeriodic() bool { return present(j.Periodic) }

// IsParameterized reports whether the job carries a parameterized block.
func (j Job) IsParameterized() bool { return present(j.ParameterizedJob) }

// HasChildren matches the console: periodic jobs and parameterized jobs that
// are not themselves dispatched instances spawn children.
func (j Job) HasChildren() bool {
	if j.IsPeriodic() {
		return true
	}
	return j.IsParameterized() && !j.Dispatched && j.ParentID == ""
}

// Workload converts j, summing allocation counts across task groups.
// Missing summaries count as zero.
func (j Job) Workload() models.Workload {
	w := models.Workload{
		ID:            j.ID,
		Name:          j.Name,
		Type:          j.Type,
		ParentID:      j.ParentID,
		Periodic:      j.IsPeriodic(),
		Parameterized: j.IsParameterized(),
		HasChildren:   j.HasChildren(),
	}
	if j.JobSummary == nil {
		return w
	}

	// Sorted for a stable sum order; the result does not depend on it.
	groups := make([]string, 0, len(j.JobSummary.Summary))
	for tg := range j.JobSummary.Summary {
		groups = append(groups, tg)
	}
	sort.Strings(groups)
	for _, tg := range groups {
		s := j.JobSummary.Summary[tg]
		w.QueuedAllocs += s.Queued
		w.StartingAllocs += s.Starting
		w.RunningAllocs += s.Running
		w.CompleteAllocs += s.Complete
		w.FailedAllocs += s.Failed
		w.LostAllocs += s.Lost
	}

	if c := j.JobSummary.Children; c != nil {
		w.PendingChildren = c.Pending
		w.RunningChildren = c.Running
		w.DeadChildren = c.Dead
	}
	return w
}

// present treats absent, null, false and empty objects as unset.
func present(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 {
		return false
	}
	switch string(v) {
	case "null", "false", "{}":
		return false
	}
	return true
}
