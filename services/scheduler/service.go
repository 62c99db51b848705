// Copyright © 2025 MEVShield Pool contributors.
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package scheduler provides scheduling services for the daemon.
package scheduler

import (
	"context"
	"errors"
	"time"
)

// RuntimeFunc is the type for functions that calculate the next runtime of a job.
type RuntimeFunc func(ctx context.Context, data any) (time.Time, error)

// JobFunc is the type for jobs.
type JobFunc func(ctx context.Context, data any)

// ErrNoMoreInstances is returned by runtime functions when the job should not run again.
var ErrNoMoreInstances = errors.New("no more instances")

// ErrNoSuchJob is returned when the job does not exist.
var ErrNoSuchJob = errors.New("no such job")

// ErrJobRunning is returned when an attempt is made to control a running job.
var ErrJobRunning = errors.New("job running")

// Service is the interface for schedulers.
type Service interface {
	// ScheduleJob schedules a one-off job for a given time.
	// This function returns two cancel funcs.  If the first is triggered the job will not run.  If the second is triggered the job
	// runs immediately.
	// Note that if the parent context is cancelled the job wil not run.
	ScheduleJob(ctx context.Context, class string, name string, runtime time.Time, jobFunc JobFunc, data any) error

	// SchedulePeriodicJob schedules a job to run in a loop.
	// The loop starts by calling runtimeFunc, which sets the time for the first run.
	// Once the time as specified by runtimeFunc is met, jobFunc is called.
	// Once jobFunc returns, go back to the beginning of the loop.
	SchedulePeriodicJob(ctx context.Context,
		class string,
		name string,
		runtimeFunc RuntimeFunc,
		runtimeData any,
		jobFunc JobFunc,
		jobData any,
	) error

	// RunJob runs a named job immediately.  If it is already running it will not be run again
	// when the runtime is met.
	RunJob(ctx context.Context, name string) error

	// RunJobIfExists runs a job if it exists.
	// This does not return an error if the job does not exist or is already running.
	RunJobIfExists(ctx context.Context, name string)

	// JobExists returns true if a job exists.
	JobExists(ctx context.Context, name string) bool

	// ListJobs returns the names of all jobs.
	ListJobs(ctx context.Context) []string

	// CancelJob removes a named job.  If the job is currently running it will not be interrupted.
	CancelJob(ctx context.Context, name string) error

	// CancelJobIfExists cancels a job that may or may not exist.
	// If this is a period job then all future instances are cancelled.
	CancelJobIfExists(ctx context.Context, name string)

	// CancelJobs cancels all jobs with the given prefix.
	// If the prefix matches a period job then all future instances are cancelled.
	CancelJobs(ctx context.Context, prefix string)
}
