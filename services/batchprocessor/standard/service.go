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

// Package standard is a batch processor that partitions opportunity backlogs
// across parallel lanes.  Lanes share no mutable state except the per-
// opportunity processed flag, claimed with a compare-and-swap so each
// opportunity is executed by exactly one lane.
package standard

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/Najnomics/MEVShieldPool-sub001/services/batchprocessor"
	"github.com/Najnomics/MEVShieldPool-sub001/services/chaintime"
	"github.com/Najnomics/MEVShieldPool-sub001/services/payout"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"
	"go.opentelemetry.io/otel"
	"go.uber.org/atomic"
	"golang.org/x/sync/errgroup"
)

// trackedOpportunity is an opportunity with its in-queue processing state.
type trackedOpportunity struct {
	batchprocessor.Opportunity
	slot      int
	processed atomic.Bool
}

// Service is a parallel batch processor.
type Service struct {
	chainTime  chaintime.Service
	payoutSink payout.Sink
	minProfit  *big.Int
	maxLanes   int

	queueMu deadlock.Mutex
	queue   []*trackedOpportunity
	known   map[string]struct{}

	metricsMu       deadlock.Mutex
	batchesRun      uint64
	totalThroughput float64
	averageLatency  time.Duration
	peakTPS         float64
}

// module-wide log.
var log zerolog.Logger

// New creates a new batch processor.
func New(ctx context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log = zerologger.With().Str("service", "batchprocessor").Str("impl", "standard").Logger()
	if parameters.logLevel != log.GetLevel() {
		log = log.Level(parameters.logLevel)
	}

	if err := registerMetrics(ctx, parameters.monitor); err != nil {
		return nil, errors.Wrap(err, "failed to register metrics")
	}

	s := &Service{
		chainTime:  parameters.chainTime,
		payoutSink: parameters.payoutSink,
		minProfit:  parameters.minProfit,
		maxLanes:   parameters.maxLanes,
		queue:      make([]*trackedOpportunity, 0),
		known:      make(map[string]struct{}),
	}

	return s, nil
}

// Submit adds an opportunity to the backlog, returning its processing slot.
func (s *Service) Submit(ctx context.Context, opportunity *batchprocessor.Opportunity) (int, error) {
	_, span := otel.Tracer("mevshieldpool.services.batchprocessor.standard").Start(ctx, "Submit")
	defer span.End()

	if opportunity == nil {
		return 0, errors.New("opportunity nil")
	}
	if opportunity.Submitter == "" {
		return 0, errors.New("no submitter specified")
	}
	if opportunity.ProfitPotential == nil {
		return 0, errors.New("no profit potential specified")
	}

	now := s.chainTime.CurrentTime()
	if opportunity.ProfitPotential.Cmp(s.minProfit) < 0 {
		return 0, batchprocessor.ErrProfitTooLow
	}
	if !opportunity.Deadline.After(now) {
		return 0, batchprocessor.ErrDeadlinePassed
	}

	id := opportunity.ID
	if id == "" {
		id = uuid.New().String()
	}

	slot := s.processingSlot(opportunity.Priority, opportunity.Deadline, now)

	s.queueMu.Lock()
	defer s.queueMu.Unlock()

	if _, exists := s.known[id]; exists {
		return 0, batchprocessor.ErrDuplicateOpportunity
	}

	tracked := &trackedOpportunity{
		Opportunity: *opportunity,
		slot:        slot,
	}
	tracked.ID = id
	s.queue = append(s.queue, tracked)
	s.known[id] = struct{}{}
	monitorOpportunitySubmitted(len(s.queue))
	log.Trace().Str("opportunity_id", id).Int("slot", slot).Msg("Submitted opportunity")

	return slot, nil
}

// processingSlot assigns an opportunity to a slot from its priority and its
// urgency, measured in whole minutes remaining before the deadline.  Higher
// priority and more urgent opportunities land in lower slots, so a
// lane-ordered scan reaches them earlier; this is a placement choice, not an
// ordering guarantee.
func (s *Service) processingSlot(priority uint32, deadline time.Time, now time.Time) int {
	urgency := int(deadline.Sub(now) / time.Minute)

	return (s.maxLanes - int(priority)%s.maxLanes + urgency%s.maxLanes) % s.maxLanes
}

// laneCount chooses the number of lanes for a batch size.
func (s *Service) laneCount(batchSize int) int {
	switch {
	case batchSize <= 4:
		return 1
	case batchSize <= 16:
		return 4
	case batchSize <= 32:
		return 8
	case batchSize <= 64:
		return 16
	default:
		return s.maxLanes
	}
}

// estimateProfit calculates the deterministic profit estimate for an
// opportunity: a step function of its gas limit, with a bonus for high
// priority work.
func estimateProfit(opportunity *trackedOpportunity) *big.Int {
	pct := int64(60)
	switch {
	case opportunity.GasLimit < 100_000:
		pct = 100
	case opportunity.GasLimit < 500_000:
		pct = 80
	}
	if opportunity.Priority > 5 {
		pct += 10
	}

	profit := new(big.Int).Mul(opportunity.ProfitPotential, big.NewInt(pct))
	return profit.Div(profit, big.NewInt(100))
}

// RunBatch drains up to maxBatchSize opportunities from the backlog and
// processes them across parallel lanes.
func (s *Service) RunBatch(ctx context.Context, maxBatchSize int) (*batchprocessor.BatchResult, error) {
	ctx, span := otel.Tracer("mevshieldpool.services.batchprocessor.standard").Start(ctx, "RunBatch")
	defer span.End()

	if maxBatchSize <= 0 {
		return nil, errors.New("no batch size specified")
	}

	// Drain the backlog in submission order.
	s.queueMu.Lock()
	size := maxBatchSize
	if size > len(s.queue) {
		size = len(s.queue)
	}
	batch := s.queue[:size]
	s.queue = s.queue[size:]
	s.queueMu.Unlock()

	batchID := uuid.New().String()
	result := &batchprocessor.BatchResult{
		BatchID:     batchID,
		TotalProfit: new(big.Int),
		Lanes:       make([]*batchprocessor.LaneResult, 0),
	}
	if len(batch) == 0 {
		return result, nil
	}

	now := s.chainTime.CurrentTime()
	started := time.Now()
	laneCount := s.laneCount(len(batch))
	result.LaneCount = laneCount

	// Contiguous even partition; the last lane absorbs the remainder.
	perLane := len(batch) / laneCount
	lanes := make([]*batchprocessor.LaneResult, laneCount)
	var group errgroup.Group
	for lane := 0; lane < laneCount; lane++ {
		start := lane * perLane
		end := start + perLane
		if lane == laneCount-1 {
			end = len(batch)
		}

		lane := lane
		assigned := batch[start:end]
		lanes[lane] = &batchprocessor.LaneResult{
			Lane:     lane,
			Assigned: len(assigned),
			Profit:   new(big.Int),
		}
		group.Go(func() error {
			s.runLane(ctx, lanes[lane], assigned, now)
			return nil
		})
	}
	//nolint:errcheck
	group.Wait()

	// Reduce lane results into batch totals.
	for _, lane := range lanes {
		result.ProcessedCount += lane.Completed
		result.FailedCount += lane.Failed
		result.SkippedCount += lane.Skipped
		result.TotalProfit.Add(result.TotalProfit, lane.Profit)
		result.Lanes = append(result.Lanes, lane)
	}
	result.Elapsed = time.Since(started)

	s.updateMetrics(result)
	log.Trace().
		Str("batch_id", batchID).
		Int("lanes", laneCount).
		Int("processed", result.ProcessedCount).
		Int("failed", result.FailedCount).
		Int("skipped", result.SkippedCount).
		Stringer("profit", result.TotalProfit).
		Msg("Processed batch")

	return result, nil
}

// runLane executes a lane's assigned opportunities.  The lane writes only its
// own result; the processed flag is the single point of cross-lane contact.
func (s *Service) runLane(ctx context.Context,
	result *batchprocessor.LaneResult,
	assigned []*trackedOpportunity,
	now time.Time,
) {
	for _, opportunity := range assigned {
		// An expired opportunity is never marked processed and never paid.
		if opportunity.Deadline.Before(now) {
			result.Skipped++
			monitorOpportunitySkipped("expired")
			continue
		}
		if !opportunity.processed.CompareAndSwap(false, true) {
			result.Skipped++
			monitorOpportunitySkipped("already_processed")
			continue
		}

		profit := estimateProfit(opportunity)
		transferID := fmt.Sprintf("opportunity:%s", opportunity.ID)
		if err := s.payoutSink.Transfer(ctx, transferID, opportunity.Submitter, profit); err != nil {
			result.Failed++
			monitorOpportunityFailed()
			log.Debug().Err(err).Str("opportunity_id", opportunity.ID).Msg("Opportunity payout failed")
			continue
		}

		result.Completed++
		result.Profit.Add(result.Profit, profit)
		monitorOpportunityProcessed(profit)
	}
}

// updateMetrics folds a batch result into the rolling performance figures.
func (s *Service) updateMetrics(result *batchprocessor.BatchResult) {
	elapsed := result.Elapsed
	if elapsed <= 0 {
		elapsed = time.Nanosecond
	}
	tps := float64(result.ProcessedCount) / elapsed.Seconds()

	s.metricsMu.Lock()
	s.batchesRun++
	s.totalThroughput += tps
	if s.batchesRun == 1 {
		s.averageLatency = result.Elapsed
	} else {
		s.averageLatency += (result.Elapsed - s.averageLatency) / 4
	}
	if tps > s.peakTPS {
		s.peakTPS = tps
	}
	peak := s.peakTPS
	average := s.averageLatency
	s.metricsMu.Unlock()

	monitorBatchRun(peak, average)
}

// QueueLength returns the number of opportunities in the backlog.
func (s *Service) QueueLength(_ context.Context) int {
	s.queueMu.Lock()
	defer s.queueMu.Unlock()

	return len(s.queue)
}

// Metrics returns the processor's rolling performance figures.
func (s *Service) Metrics(_ context.Context) *batchprocessor.Metrics {
	s.metricsMu.Lock()
	defer s.metricsMu.Unlock()

	return &batchprocessor.Metrics{
		BatchesRun:      s.batchesRun,
		TotalThroughput: s.totalThroughput,
		AverageLatency:  s.averageLatency,
		PeakTPS:         s.peakTPS,
	}
}
