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

// Package standard is a scheduler that schedules jobs in individual goroutines.
package standard

import (
	"context"
	"strings"
	"time"

	"github.com/Najnomics/MEVShieldPool-sub001/services/scheduler"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
	deadlock "github.com/sasha-s/go-deadlock"
	"go.uber.org/atomic"
)

// job contains control points for a job.
type job struct {
	class    string
	cancelCh chan struct{}
	runCh    chan struct{}
	active   atomic.Bool
	finalise atomic.Bool
}

// Service is a scheduler service.  It uses a goroutine per job.
type Service struct {
	jobs   map[string]*job
	jobsMu deadlock.Mutex
}

// module-wide log.
var log zerolog.Logger

// New creates a new scheduler service.
func New(_ context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log = zerologger.With().Str("service", "scheduler").Str("impl", "standard").Logger().Level(parameters.logLevel)

	if err := registerMetrics(parameters.monitor); err != nil {
		return nil, errors.New("failed to register metrics")
	}

	return &Service{
		jobs: make(map[string]*job),
	}, nil
}

// ScheduleJob schedules a one-off job for a given time.
func (s *Service) ScheduleJob(ctx context.Context,
	class string,
	name string,
	runtime time.Time,
	jobFunc scheduler.JobFunc,
	data any,
) error {
	if name == "" {
		return errors.New("no job name specified")
	}
	if jobFunc == nil {
		return errors.New("no job function specified")
	}

	s.jobsMu.Lock()
	if _, exists := s.jobs[name]; exists {
		s.jobsMu.Unlock()
		return errors.New("job already exists")
	}
	j := &job{
		class:    class,
		cancelCh: make(chan struct{}, 1),
		runCh:    make(chan struct{}, 1),
	}
	s.jobs[name] = j
	s.jobsMu.Unlock()
	monitorJobScheduled(class)

	log.Trace().Str("job", name).Time("scheduled", runtime).Msg("Scheduled job")
	go func() {
		select {
		case <-ctx.Done():
			log.Trace().Str("job", name).Msg("Parent context done; job not running")
			s.removeJob(name)
			monitorJobCancelled(class)
		case <-j.cancelCh:
			log.Trace().Str("job", name).Msg("Cancel triggered; job not running")
			s.removeJob(name)
			monitorJobCancelled(class)
		case <-j.runCh:
			log.Trace().Str("job", name).Msg("Run triggered; job running")
			s.removeJob(name)
			j.active.Store(true)
			jobFunc(ctx, data)
			j.active.Store(false)
			monitorJobStartedNow(class)
		case <-time.After(time.Until(runtime)):
			s.removeJob(name)
			j.active.Store(true)
			log.Trace().Str("job", name).Msg("Running job")
			jobFunc(ctx, data)
			j.active.Store(false)
			monitorJobStartedOnTimer(class)
		}
	}()

	return nil
}

// SchedulePeriodicJob schedules a job to run in a loop.
func (s *Service) SchedulePeriodicJob(ctx context.Context,
	class string,
	name string,
	runtimeFunc scheduler.RuntimeFunc,
	runtimeData any,
	jobFunc scheduler.JobFunc,
	jobData any,
) error {
	if name == "" {
		return errors.New("no job name specified")
	}
	if runtimeFunc == nil {
		return errors.New("no runtime function specified")
	}
	if jobFunc == nil {
		return errors.New("no job function specified")
	}

	s.jobsMu.Lock()
	if _, exists := s.jobs[name]; exists {
		s.jobsMu.Unlock()
		return errors.New("job already exists")
	}
	j := &job{
		class:    class,
		cancelCh: make(chan struct{}, 1),
		runCh:    make(chan struct{}, 1),
	}
	s.jobs[name] = j
	s.jobsMu.Unlock()
	monitorJobScheduled(class)

	go func() {
		for {
			runtime, err := runtimeFunc(ctx, runtimeData)
			if errors.Is(err, scheduler.ErrNoMoreInstances) {
				log.Trace().Str("job", name).Msg("No more instances; period job stopping")
				s.removeJob(name)
				monitorJobCancelled(class)
				return
			}
			if err != nil {
				log.Error().Str("job", name).Err(err).Msg("Failed to obtain runtime; periodic job stopping")
				s.removeJob(name)
				monitorJobCancelled(class)
				return
			}
			log.Trace().Str("job", name).Time("scheduled", runtime).Msg("Scheduled periodic job")
			select {
			case <-ctx.Done():
				log.Trace().Str("job", name).Msg("Parent context done; periodic job stopping")
				s.removeJob(name)
				monitorJobCancelled(class)
				return
			case <-j.cancelCh:
				log.Trace().Str("job", name).Msg("Cancel triggered; periodic job stopping")
				s.removeJob(name)
				monitorJobCancelled(class)
				return
			case <-j.runCh:
				log.Trace().Str("job", name).Msg("Run triggered; periodic job running")
				j.active.Store(true)
				jobFunc(ctx, jobData)
				j.active.Store(false)
				monitorJobStartedNow(class)
			case <-time.After(time.Until(runtime)):
				log.Trace().Str("job", name).Msg("Running periodic job")
				j.active.Store(true)
				jobFunc(ctx, jobData)
				j.active.Store(false)
				monitorJobStartedOnTimer(class)
			}
			if j.finalise.Load() {
				s.removeJob(name)
				return
			}
		}
	}()

	return nil
}

// RunJob runs a named job immediately.
func (s *Service) RunJob(ctx context.Context, name string) error {
	s.jobsMu.Lock()
	j, exists := s.jobs[name]
	s.jobsMu.Unlock()
	if !exists {
		return scheduler.ErrNoSuchJob
	}
	if j.active.Load() {
		return scheduler.ErrJobRunning
	}

	select {
	case j.runCh <- struct{}{}:
	default:
		return scheduler.ErrJobRunning
	}

	return nil
}

// RunJobIfExists runs a job if it exists.
func (s *Service) RunJobIfExists(ctx context.Context, name string) {
	if err := s.RunJob(ctx, name); err != nil &&
		!errors.Is(err, scheduler.ErrNoSuchJob) &&
		!errors.Is(err, scheduler.ErrJobRunning) {
		log.Error().Str("job", name).Err(err).Msg("Failed to run job")
	}
}

// JobExists returns true if a job exists.
func (s *Service) JobExists(_ context.Context, name string) bool {
	s.jobsMu.Lock()
	_, exists := s.jobs[name]
	s.jobsMu.Unlock()

	return exists
}

// ListJobs returns the names of all jobs.
func (s *Service) ListJobs(_ context.Context) []string {
	s.jobsMu.Lock()
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		names = append(names, name)
	}
	s.jobsMu.Unlock()

	return names
}

// CancelJob removes a named job.
func (s *Service) CancelJob(_ context.Context, name string) error {
	s.jobsMu.Lock()
	j, exists := s.jobs[name]
	s.jobsMu.Unlock()
	if !exists {
		return scheduler.ErrNoSuchJob
	}

	j.finalise.Store(true)
	select {
	case j.cancelCh <- struct{}{}:
	default:
		// The job is currently running; the finalise flag stops the next iteration.
	}

	return nil
}

// CancelJobIfExists cancels a job that may or may not exist.
func (s *Service) CancelJobIfExists(ctx context.Context, name string) {
	if err := s.CancelJob(ctx, name); err != nil && !errors.Is(err, scheduler.ErrNoSuchJob) {
		log.Error().Str("job", name).Err(err).Msg("Failed to cancel job")
	}
}

// CancelJobs cancels all jobs with the given prefix.
func (s *Service) CancelJobs(ctx context.Context, prefix string) {
	s.jobsMu.Lock()
	names := make([]string, 0, len(s.jobs))
	for name := range s.jobs {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	s.jobsMu.Unlock()

	for _, name := range names {
		s.CancelJobIfExists(ctx, name)
	}
}

// removeJob removes a job from the jobs list.
func (s *Service) removeJob(name string) {
	s.jobsMu.Lock()
	delete(s.jobs, name)
	s.jobsMu.Unlock()
}
