// Package service exposes the pipeline over a small JSON HTTP API.
// Runs execute asynchronously; an in-memory registry tracks each case
// from acceptance to completion.
package service

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"counsel/internal/pipeline"
)

// JobState is the lifecycle state of a submitted case.
type JobState string

const (
	StatePending JobState = "pending"
	StateRunning JobState = "running"
	StateDone    JobState = "done"
	StateFailed  JobState = "failed"
)

// Job is one submitted case and its (eventual) result.
type Job struct {
	ID          string              `json:"id"`
	Label       string              `json:"label,omitempty"`
	State       JobState            `json:"state"`
	Scenario    string              `json:"scenario"`
	SubmittedAt time.Time           `json:"submitted_at"`
	FinishedAt  *time.Time          `json:"finished_at,omitempty"`
	Error       string              `json:"error,omitempty"`
	Result      *pipeline.Aggregate `json:"result,omitempty"`
}

// Registry is a mutex-guarded in-memory job store. Jobs live until
// deleted by the client or the process exits.
type Registry struct {
	mu   sync.RWMutex
	jobs map[string]*Job
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]*Job)}
}

// Create registers a new pending job for a scenario. The label is an
// optional client-chosen name carried through unchanged.
func (r *Registry) Create(scenario, label string) *Job {
	job := &Job{
		ID:          uuid.New().String(),
		Label:       label,
		State:       StatePending,
		Scenario:    scenario,
		SubmittedAt: time.Now(),
	}
	r.mu.Lock()
	r.jobs[job.ID] = job
	r.mu.Unlock()
	return job
}

// Get returns a copy of the job, so callers never observe a job while
// the worker goroutine mutates it.
func (r *Registry) Get(id string) (Job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	job, ok := r.jobs[id]
	if !ok {
		return Job{}, false
	}
	return *job, true
}

// Delete removes a job. Deleting a running job removes the record but
// does not cancel the run.
func (r *Registry) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[id]; !ok {
		return false
	}
	delete(r.jobs, id)
	return true
}

// Count returns the number of tracked jobs.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.jobs)
}

// markRunning transitions a job to running.
func (r *Registry) markRunning(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if job, ok := r.jobs[id]; ok {
		job.State = StateRunning
	}
}

// markDone records a finished run. The job may have been deleted while
// running; that is not an error.
func (r *Registry) markDone(id string, agg *pipeline.Aggregate, runErr error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[id]
	if !ok {
		return
	}
	now := time.Now()
	job.FinishedAt = &now
	if runErr != nil {
		job.State = StateFailed
		job.Error = fmt.Sprintf("%v", runErr)
		job.Result = agg
		return
	}
	job.State = StateDone
	job.Result = agg
}
