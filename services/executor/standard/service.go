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

// Package standard is an in-memory execution scheduler with bounded randomised
// delays and an insertion-ordered dispatch queue.
package standard

import (
	"context"
	"math"
	"math/big"
	"math/rand"
	"sort"
	"time"

	"github.com/Najnomics/MEVShieldPool-sub001/services/chaintime"
	"github.com/Najnomics/MEVShieldPool-sub001/services/executor"
	"github.com/Najnomics/MEVShieldPool-sub001/services/shielddb"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	zerologger "github.com/rs/zerolog/log"
	"github.com/sasha-s/go-deadlock"
	"go.opentelemetry.io/otel"
)

// Service is an in-memory execution scheduler.
type Service struct {
	chainTime           chaintime.Service
	settlementSink      executor.SettlementSink
	ordersSetter        shielddb.ScheduledOrdersSetter
	minDelay            time.Duration
	maxDelay            time.Duration
	randomisationWindow time.Duration
	volumeWeighting     bool
	volumeCoefficient   float64

	queueMu deadlock.Mutex
	// queue holds orders in insertion order; compaction preserves the
	// relative order of queued entries.
	queue []*executor.ScheduledOrder
	// orders holds every order ever enqueued, for state lookups.
	orders map[string]*executor.ScheduledOrder
	rng    *rand.Rand
}

// module-wide log.
var log zerolog.Logger

// New creates a new execution scheduler.
func New(ctx context.Context, params ...Parameter) (*Service, error) {
	parameters, err := parseAndCheckParameters(params...)
	if err != nil {
		return nil, errors.Wrap(err, "problem with parameters")
	}

	// Set logging.
	log = zerologger.With().Str("service", "executor").Str("impl", "standard").Logger()
	if parameters.logLevel != log.GetLevel() {
		log = log.Level(parameters.logLevel)
	}

	if err := registerMetrics(ctx, parameters.monitor); err != nil {
		return nil, errors.Wrap(err, "failed to register metrics")
	}

	s := &Service{
		chainTime:           parameters.chainTime,
		settlementSink:      parameters.settlementSink,
		ordersSetter:        parameters.ordersSetter,
		minDelay:            parameters.minDelay,
		maxDelay:            parameters.maxDelay,
		randomisationWindow: parameters.randomisationWindow,
		volumeWeighting:     parameters.volumeWeighting,
		volumeCoefficient:   parameters.volumeCoefficient,
		queue:               make([]*executor.ScheduledOrder, 0),
		orders:              make(map[string]*executor.ScheduledOrder),
		rng:                 rand.New(rand.NewSource(time.Now().UnixNano())),
	}

	if parameters.scheduler != nil {
		batchSize := parameters.dispatchBatchSize
		runtimeFunc := func(_ context.Context, _ any) (time.Time, error) {
			return time.Now().Add(parameters.dispatchInterval), nil
		}
		jobFunc := func(ctx context.Context, _ any) {
			if _, err := s.DispatchReady(ctx, batchSize); err != nil {
				log.Error().Err(err).Msg("Dispatch pass failed")
			}
		}
		if err := parameters.scheduler.SchedulePeriodicJob(ctx,
			"Executor",
			"Dispatch ready orders",
			runtimeFunc,
			nil,
			jobFunc,
			nil,
		); err != nil {
			return nil, errors.Wrap(err, "failed to schedule dispatch job")
		}
	}

	return s, nil
}

// Enqueue adds an order to the execution queue.
func (s *Service) Enqueue(ctx context.Context, order *executor.Order) (*executor.ScheduledOrder, error) {
	ctx, span := otel.Tracer("mevshieldpool.services.executor.standard").Start(ctx, "Enqueue")
	defer span.End()

	if order == nil {
		return nil, errors.New("order nil")
	}
	if order.Submitter == "" {
		return nil, errors.New("no submitter specified")
	}
	if order.Amount == nil {
		return nil, errors.New("no amount specified")
	}

	orderID := order.OrderID
	if orderID == "" {
		orderID = uuid.New().String()
	}

	now := s.chainTime.CurrentTime()

	s.queueMu.Lock()
	if _, exists := s.orders[orderID]; exists {
		s.queueMu.Unlock()
		return nil, executor.ErrDuplicateOrder
	}

	delay := order.RequestedDelay
	if delay < s.minDelay {
		delay = s.minDelay
	}
	if delay > s.maxDelay {
		delay = s.maxDelay
	}
	jitter := time.Duration(0)
	if s.randomisationWindow > 0 {
		jitter = time.Duration(s.rng.Int63n(int64(s.randomisationWindow)))
	}

	scheduled := &executor.ScheduledOrder{
		Order:               *order,
		SubmittedAt:         now,
		TargetExecutionTime: now.Add(delay).Add(jitter),
		Status:              executor.StatusQueued,
	}
	scheduled.OrderID = orderID
	s.queue = append(s.queue, scheduled)
	s.orders[orderID] = scheduled
	queued := len(s.queue)
	s.queueMu.Unlock()

	monitorOrderEnqueued(queued)
	log.Trace().
		Str("order_id", orderID).
		Str("submitter", order.Submitter).
		Dur("delay", delay).
		Dur("jitter", jitter).
		Time("target_execution_time", scheduled.TargetExecutionTime).
		Msg("Enqueued order")

	s.storeOrder(ctx, scheduled)

	result := *scheduled
	return &result, nil
}

// Cancel withdraws a queued order.
func (s *Service) Cancel(ctx context.Context, orderID string, submitter string) error {
	ctx, span := otel.Tracer("mevshieldpool.services.executor.standard").Start(ctx, "Cancel")
	defer span.End()

	s.queueMu.Lock()
	order, exists := s.orders[orderID]
	if !exists {
		s.queueMu.Unlock()
		return executor.ErrUnknownOrder
	}
	if order.Submitter != submitter {
		s.queueMu.Unlock()
		return executor.ErrNotSubmitter
	}
	if order.Status != executor.StatusQueued {
		s.queueMu.Unlock()
		return executor.ErrTooLateToCancel
	}
	order.Status = executor.StatusCancelled
	s.queueMu.Unlock()

	monitorOrderCancelled()
	log.Trace().Str("order_id", orderID).Msg("Cancelled order")

	s.storeOrder(ctx, order)

	return nil
}

// DispatchReady settles queued orders whose execution time has been reached.
func (s *Service) DispatchReady(ctx context.Context, maxToProcess int) (int, error) {
	ctx, span := otel.Tracer("mevshieldpool.services.executor.standard").Start(ctx, "DispatchReady")
	defer span.End()

	if maxToProcess <= 0 {
		return 0, errors.New("no orders to process")
	}

	now := s.chainTime.CurrentTime()

	// Select the ready set in insertion order and mark it executing, so that
	// a concurrent cancellation cannot race the settlement below.
	s.queueMu.Lock()
	ready := make([]*executor.ScheduledOrder, 0)
	for _, order := range s.queue {
		if order.Status != executor.StatusQueued {
			continue
		}
		if order.TargetExecutionTime.After(now) {
			continue
		}
		ready = append(ready, order)
	}
	if s.volumeWeighting {
		// Scheduling hint only; larger and older orders first.
		sort.SliceStable(ready, func(i int, j int) bool {
			return s.dispatchScore(ready[i]) > s.dispatchScore(ready[j])
		})
	}
	if len(ready) > maxToProcess {
		ready = ready[:maxToProcess]
	}
	for _, order := range ready {
		order.Status = executor.StatusExecuting
	}
	s.queueMu.Unlock()

	dispatched := 0
	for _, order := range ready {
		err := s.settlementSink.Settle(ctx, order)

		s.queueMu.Lock()
		if err != nil {
			order.Status = executor.StatusFailed
			order.Reason = err.Error()
		} else {
			order.Status = executor.StatusCompleted
			dispatched++
		}
		s.queueMu.Unlock()

		if err != nil {
			monitorOrderDispatched("failed")
			log.Debug().Err(err).Str("order_id", order.OrderID).Msg("Order settlement failed")
		} else {
			monitorOrderDispatched("completed")
			log.Trace().Str("order_id", order.OrderID).Msg("Order settled")
		}
		s.storeOrder(ctx, order)
	}

	// Compact the queue, preserving the relative order of queued entries.
	s.queueMu.Lock()
	compacted := make([]*executor.ScheduledOrder, 0, len(s.queue))
	for _, order := range s.queue {
		if order.Status == executor.StatusQueued {
			compacted = append(compacted, order)
		}
	}
	s.queue = compacted
	queued := len(s.queue)
	s.queueMu.Unlock()

	monitorQueueLength(queued)

	return dispatched, nil
}

// Order returns the state of an order in the queue.
func (s *Service) Order(_ context.Context, orderID string) (*executor.ScheduledOrder, error) {
	s.queueMu.Lock()
	defer s.queueMu.Unlock()

	order, exists := s.orders[orderID]
	if !exists {
		return nil, executor.ErrUnknownOrder
	}

	result := *order
	return &result, nil
}

// QueueLength returns the number of orders currently queued.
func (s *Service) QueueLength(_ context.Context) int {
	s.queueMu.Lock()
	defer s.queueMu.Unlock()

	queued := 0
	for _, order := range s.queue {
		if order.Status == executor.StatusQueued {
			queued++
		}
	}

	return queued
}

// dispatchScore calculates the volume-weighted dispatch hint for an order.
func (s *Service) dispatchScore(order *executor.ScheduledOrder) float64 {
	volume, _ := new(big.Float).SetInt(new(big.Int).Abs(order.Amount)).Float64()
	volumeTerm := float64(0)
	if volume >= 1 {
		volumeTerm = math.Log2(volume) * s.volumeCoefficient
	}

	return volumeTerm + float64(order.SubmittedAt.Unix())/60
}

// storeOrder persists order state when a store is configured; failures are
// logged, not returned, as the in-memory queue remains authoritative.
func (s *Service) storeOrder(ctx context.Context, order *executor.ScheduledOrder) {
	if s.ordersSetter == nil {
		return
	}

	s.queueMu.Lock()
	record := &shielddb.ScheduledOrder{
		OrderID:     order.OrderID,
		PoolKey:     order.PoolKey,
		Owner:       order.Submitter,
		Volume:      order.Amount,
		ReadyAt:     order.TargetExecutionTime,
		Status:      order.Status.String(),
		Reason:      order.Reason,
		ScheduledAt: order.SubmittedAt,
	}
	if order.Status == executor.StatusCompleted || order.Status == executor.StatusFailed {
		record.DispatchedAt = s.chainTime.CurrentTime()
	}
	s.queueMu.Unlock()

	ctx, cancel, err := s.ordersSetter.BeginTx(ctx)
	if err != nil {
		log.Warn().Err(err).Str("order_id", record.OrderID).Msg("Failed to begin order store transaction")
		return
	}
	if err := s.ordersSetter.SetScheduledOrder(ctx, record); err != nil {
		cancel()
		log.Warn().Err(err).Str("order_id", record.OrderID).Msg("Failed to store order")
		return
	}
	if err := s.ordersSetter.CommitTx(ctx); err != nil {
		cancel()
		log.Warn().Err(err).Str("order_id", record.OrderID).Msg("Failed to commit order store transaction")
	}
}
