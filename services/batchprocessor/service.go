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

// Package batchprocessor provides parallel processing of scored MEV
// opportunities.  A backlog of opportunities is drained into batches,
// partitioned across independent lanes, and reduced into aggregate
// throughput and profit metrics.
package batchprocessor

import (
	"context"
	"math/big"
	"time"

	"github.com/pkg/errors"
)

// Opportunity is a scored MEV opportunity submitted for processing.
type Opportunity struct {
	// ID is the unique identifier of the opportunity; one is generated if empty.
	ID        string
	Submitter string
	// ProfitPotential is the estimated extractable value; must meet the
	// processor's configured minimum.
	ProfitPotential *big.Int
	CostBudget      *big.Int
	Deadline        time.Time
	Priority        uint32
	GasLimit        uint64
}

// LaneResult holds the outcome of a single lane's work within a batch.
type LaneResult struct {
	Lane      int
	Assigned  int
	Completed int
	Failed    int
	Skipped   int
	Profit    *big.Int
}

// BatchResult holds the reduced outcome of a batch run.
type BatchResult struct {
	BatchID        string
	LaneCount      int
	ProcessedCount int
	FailedCount    int
	SkippedCount   int
	TotalProfit    *big.Int
	Elapsed        time.Duration
	Lanes          []*LaneResult
}

// Metrics holds the processor's rolling performance figures.
type Metrics struct {
	BatchesRun      uint64
	TotalThroughput float64
	AverageLatency  time.Duration
	PeakTPS         float64
}

// ErrProfitTooLow is returned when an opportunity's profit potential is below the configured minimum.
var ErrProfitTooLow = errors.New("profit too low")

// ErrDeadlinePassed is returned when an opportunity's deadline is not in the future.
var ErrDeadlinePassed = errors.New("deadline passed")

// ErrDuplicateOpportunity is returned when an opportunity ID is already queued.
var ErrDuplicateOpportunity = errors.New("duplicate opportunity")

// Service is the interface for batch processors.
type Service interface {
	// Submit adds an opportunity to the backlog, returning its processing slot.
	Submit(ctx context.Context, opportunity *Opportunity) (int, error)

	// RunBatch drains up to maxBatchSize opportunities from the backlog and
	// processes them across parallel lanes.
	RunBatch(ctx context.Context, maxBatchSize int) (*BatchResult, error)

	// QueueLength returns the number of opportunities in the backlog.
	QueueLength(ctx context.Context) int

	// Metrics returns the processor's rolling performance figures.
	Metrics(ctx context.Context) *Metrics
}
