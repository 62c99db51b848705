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

package standard

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"

	"github.com/Najnomics/MEVShieldPool-sub001/services/scheduler"
)

func TestScheduleJob(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx)
	require.NoError(t, err)

	runs := atomic.NewInt32(0)
	require.NoError(t, svc.ScheduleJob(ctx, "test", "Run soon", time.Now().Add(20*time.Millisecond),
		func(_ context.Context, _ any) {
			runs.Inc()
		},
		nil,
	))
	require.True(t, svc.JobExists(ctx, "Run soon"))

	time.Sleep(200 * time.Millisecond)
	require.Equal(t, int32(1), runs.Load())
	require.False(t, svc.JobExists(ctx, "Run soon"))
}

func TestScheduleJobValidation(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx)
	require.NoError(t, err)

	jobFunc := func(_ context.Context, _ any) {}

	require.EqualError(t, svc.ScheduleJob(ctx, "test", "", time.Now(), jobFunc, nil), "no job name specified")
	require.EqualError(t, svc.ScheduleJob(ctx, "test", "No function", time.Now(), nil, nil), "no job function specified")

	require.NoError(t, svc.ScheduleJob(ctx, "test", "Duplicate", time.Now().Add(time.Hour), jobFunc, nil))
	require.EqualError(t, svc.ScheduleJob(ctx, "test", "Duplicate", time.Now().Add(time.Hour), jobFunc, nil), "job already exists")
}

func TestRunJob(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx)
	require.NoError(t, err)

	runs := atomic.NewInt32(0)
	require.NoError(t, svc.ScheduleJob(ctx, "test", "Run on demand", time.Now().Add(time.Hour),
		func(_ context.Context, _ any) {
			runs.Inc()
		},
		nil,
	))

	require.NoError(t, svc.RunJob(ctx, "Run on demand"))
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, int32(1), runs.Load())
	require.False(t, svc.JobExists(ctx, "Run on demand"))

	require.ErrorIs(t, svc.RunJob(ctx, "Run on demand"), scheduler.ErrNoSuchJob)
}

func TestCancelJob(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx)
	require.NoError(t, err)

	runs := atomic.NewInt32(0)
	require.NoError(t, svc.ScheduleJob(ctx, "test", "Cancel me", time.Now().Add(100*time.Millisecond),
		func(_ context.Context, _ any) {
			runs.Inc()
		},
		nil,
	))
	require.NoError(t, svc.CancelJob(ctx, "Cancel me"))

	time.Sleep(300 * time.Millisecond)
	require.Equal(t, int32(0), runs.Load())
	require.False(t, svc.JobExists(ctx, "Cancel me"))

	require.ErrorIs(t, svc.CancelJob(ctx, "Cancel me"), scheduler.ErrNoSuchJob)
}

func TestCancelJobsByPrefix(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx)
	require.NoError(t, err)

	jobFunc := func(_ context.Context, _ any) {}
	require.NoError(t, svc.ScheduleJob(ctx, "test", "Group 1", time.Now().Add(time.Hour), jobFunc, nil))
	require.NoError(t, svc.ScheduleJob(ctx, "test", "Group 2", time.Now().Add(time.Hour), jobFunc, nil))
	require.NoError(t, svc.ScheduleJob(ctx, "test", "Other", time.Now().Add(time.Hour), jobFunc, nil))
	require.Len(t, svc.ListJobs(ctx), 3)

	svc.CancelJobs(ctx, "Group")
	time.Sleep(100 * time.Millisecond)
	require.Equal(t, []string{"Other"}, svc.ListJobs(ctx))
}

func TestSchedulePeriodicJob(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx)
	require.NoError(t, err)

	runs := atomic.NewInt32(0)
	require.NoError(t, svc.SchedulePeriodicJob(ctx, "test", "Periodic",
		func(_ context.Context, _ any) (time.Time, error) {
			if runs.Load() >= 2 {
				return time.Time{}, scheduler.ErrNoMoreInstances
			}
			return time.Now().Add(10 * time.Millisecond), nil
		},
		nil,
		func(_ context.Context, _ any) {
			runs.Inc()
		},
		nil,
	))

	time.Sleep(300 * time.Millisecond)
	require.Equal(t, int32(2), runs.Load())
	require.False(t, svc.JobExists(ctx, "Periodic"))
}

func TestSchedulePeriodicJobValidation(t *testing.T) {
	ctx := context.Background()

	svc, err := New(ctx)
	require.NoError(t, err)

	runtimeFunc := func(_ context.Context, _ any) (time.Time, error) {
		return time.Now().Add(time.Hour), nil
	}
	jobFunc := func(_ context.Context, _ any) {}

	require.EqualError(t, svc.SchedulePeriodicJob(ctx, "test", "", runtimeFunc, nil, jobFunc, nil), "no job name specified")
	require.EqualError(t, svc.SchedulePeriodicJob(ctx, "test", "No runtime", nil, nil, jobFunc, nil), "no runtime function specified")
	require.EqualError(t, svc.SchedulePeriodicJob(ctx, "test", "No function", runtimeFunc, nil, nil, nil), "no job function specified")
}
