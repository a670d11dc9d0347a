/*
calculator.go - Whole-run batch orchestration

PURPOSE:
  Calculator ties the layers together for one portfolio: validate the run
  parameters, validate each contract, resolve payout windows, generate the
  monthly entries, and assemble the globally ordered ledger. The result is
  computed exactly once; every later call returns the cached ledger.

RUN SHAPE:
  1. Parameters.Validate - a bad parameter aborts before any generation
  2. Contract validation pass - skip-and-report, or abort in strict mode
  3. Per-contract generation - serial, or fanned out when Workers > 1
  4. schedule.Assemble - the global (date, contract) sort
  5. Report - run id, timing, counts, skipped contracts

SEE ALSO:
  - resolver.go: window resolution used in step 3
  - schedule/generator.go: the monthly loop used in step 3
*/
package pension

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/warp/pension-engine/schedule"
)

// =============================================================================
// RUN REPORT
// =============================================================================

// SkippedContract identifies a contract left out of the ledger and why.
type SkippedContract struct {
	ContractID schedule.ContractID
	Reason     string
}

// Report summarizes one batch run.
type Report struct {
	RunID              string
	StartedAt          time.Time
	CompletedAt        time.Time
	ContractsTotal     int
	ContractsScheduled int
	PaymentsEmitted    int
	Skipped            []SkippedContract
}

// Duration returns the wall time the run took.
func (r *Report) Duration() time.Duration { return r.CompletedAt.Sub(r.StartedAt) }

// =============================================================================
// OPTIONS
// =============================================================================

// Options tune a Calculator without changing schedule semantics.
type Options struct {
	// Strict aborts the whole run on the first unschedulable contract
	// instead of skipping it.
	Strict bool

	// Workers bounds the goroutines generating schedules. Values below 2
	// mean serial generation. The ledger is identical either way; only
	// wall time changes.
	Workers int

	// Logger receives run progress and skip warnings. Nil disables logging.
	Logger *logrus.Logger
}

// =============================================================================
// CALCULATOR
// =============================================================================

// Calculator computes the payment ledger for one portfolio exactly once.
// The first Calculate call does the work; later calls, from any goroutine,
// return the cached ledger, report, and error.
type Calculator struct {
	portfolio Portfolio
	params    Parameters
	opts      Options

	once   sync.Once
	ledger []schedule.PaymentEntry
	report *Report
	err    error
}

// NewCalculator binds a portfolio and parameters to a fresh calculator.
// The caller must not mutate the portfolio after this point.
func NewCalculator(portfolio Portfolio, params Parameters, opts Options) *Calculator {
	return &Calculator{portfolio: portfolio, params: params, opts: opts}
}

// Calculate returns the assembled ledger and the run report.
func (c *Calculator) Calculate() ([]schedule.PaymentEntry, *Report, error) {
	c.once.Do(func() {
		c.ledger, c.report, c.err = c.run()
	})
	return c.ledger, c.report, c.err
}

func (c *Calculator) run() ([]schedule.PaymentEntry, *Report, error) {
	if err := c.params.Validate(); err != nil {
		return nil, nil, err
	}

	report := &Report{
		RunID:          uuid.NewString(),
		StartedAt:      time.Now().UTC(),
		ContractsTotal: len(c.portfolio),
	}
	c.infof("run %s: %d contracts, report date %s",
		report.RunID, report.ContractsTotal, c.params.ReportDate.Format(schedule.DateLayout))

	// Deterministic iteration order regardless of map layout.
	ids := make([]schedule.ContractID, 0, len(c.portfolio))
	for id := range c.portfolio {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	// Validation pass first, so strict mode fails before any generation.
	schedulable := make([]schedule.ContractID, 0, len(ids))
	for _, id := range ids {
		if err := c.portfolio[id].Validate(id); err != nil {
			if c.opts.Strict {
				return nil, nil, err
			}
			report.Skipped = append(report.Skipped, SkippedContract{ContractID: id, Reason: err.Error()})
			c.warnf("skipping contract %s: %v", id, err)
			continue
		}
		schedulable = append(schedulable, id)
	}

	gen := schedule.NewGenerator(schedule.JanuaryIndexation(c.params.IndexingRate))

	var batches [][]schedule.PaymentEntry
	if c.opts.Workers > 1 {
		batches = c.generateParallel(gen, schedulable)
	} else {
		batches = c.generateSerial(gen, schedulable)
	}

	ledger := schedule.Assemble(batches...)

	report.ContractsScheduled = len(schedulable)
	report.PaymentsEmitted = len(ledger)
	report.CompletedAt = time.Now().UTC()
	c.infof("run %s: %d contracts scheduled, %d payments, %d skipped, took %s",
		report.RunID, report.ContractsScheduled, report.PaymentsEmitted, len(report.Skipped), report.Duration())

	return ledger, report, nil
}

func (c *Calculator) generate(gen *schedule.Generator, id schedule.ContractID) []schedule.PaymentEntry {
	rec := c.portfolio[id]
	window := ResolveWindow(rec.BirthDate, rec.PensionStartAge, c.params)
	c.debugf("contract %s: payout window %s", id, window)
	return gen.Schedule(id, window, *rec.InitialAmount)
}

func (c *Calculator) generateSerial(gen *schedule.Generator, ids []schedule.ContractID) [][]schedule.PaymentEntry {
	batches := make([][]schedule.PaymentEntry, len(ids))
	for i, id := range ids {
		batches[i] = c.generate(gen, id)
	}
	return batches
}

// generateParallel fans contracts across a bounded worker pool. Every worker
// writes to a distinct batch index, so no locking is needed; the assembler's
// global sort erases any completion-order effects.
func (c *Calculator) generateParallel(gen *schedule.Generator, ids []schedule.ContractID) [][]schedule.PaymentEntry {
	batches := make([][]schedule.PaymentEntry, len(ids))

	workers := c.opts.Workers
	if workers > len(ids) {
		workers = len(ids)
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				batches[i] = c.generate(gen, ids[i])
			}
		}()
	}
	for i := range ids {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return batches
}

func (c *Calculator) infof(format string, args ...interface{}) {
	if c.opts.Logger != nil {
		c.opts.Logger.Infof(format, args...)
	}
}

func (c *Calculator) debugf(format string, args ...interface{}) {
	if c.opts.Logger != nil {
		c.opts.Logger.Debugf(format, args...)
	}
}

func (c *Calculator) warnf(format string, args ...interface{}) {
	if c.opts.Logger != nil {
		c.opts.Logger.Warnf(format, args...)
	}
}
