package batch

import (
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/trustmatch/go-contacthash/detect"
	liberrors "github.com/trustmatch/go-contacthash/errors"
	"github.com/trustmatch/go-contacthash/hashutil"
	"github.com/trustmatch/go-contacthash/logger"
	"github.com/trustmatch/go-contacthash/metrics"
	"github.com/trustmatch/go-contacthash/pii"
	"github.com/trustmatch/go-contacthash/timeutil"
	"github.com/trustmatch/go-contacthash/validator"
)

// wrapPrefix prefixes unexpected mid-batch failures, per the error
// contract callers rely on. The row-limit rejection is not wrapped.
const wrapPrefix = "Error processing CSV file: "

// Processor orchestrates detection, normalization and hashing over a
// batch. It holds no cross-call state; concurrent Process calls on one
// instance are safe.
type Processor struct {
	cfg   Config
	norms Normalizers
	log   logger.LoggerInterface
	met   *metrics.Pipeline
	clock timeutil.Clock
}

type Option func(*Processor)

func WithNormalizers(n Normalizers) Option {
	return func(p *Processor) {
		if n != nil {
			p.norms = n
		}
	}
}

func WithLogger(l logger.LoggerInterface) Option {
	return func(p *Processor) {
		if l != nil {
			p.log = l
		}
	}
}

func WithMetrics(m *metrics.Pipeline) Option {
	return func(p *Processor) { p.met = m }
}

func WithClock(c timeutil.Clock) Option {
	return func(p *Processor) {
		if c != nil {
			p.clock = c
		}
	}
}

// NewProcessor validates cfg and applies options. A zero Config is valid
// and means "defaults".
func NewProcessor(cfg Config, opts ...Option) (*Processor, error) {
	if cfg.MaxRows == 0 {
		cfg.MaxRows = DefaultMaxRows
	}
	if fields := validator.Validate(cfg); fields != nil {
		return nil, liberrors.ValidationFields(fields)
	}

	p := &Processor{
		cfg:   cfg,
		norms: Default(),
		log:   logger.Nop(),
		clock: timeutil.UTCClock{},
	}
	for _, o := range opts {
		o(p)
	}
	return p, nil
}

// Process runs the whole batch synchronously. It fails without partial
// results when the non-blank line count exceeds the row limit; any other
// failure is wrapped with wrapPrefix and the original message.
func (p *Processor) Process(contents string) (ProcessedData, error) {
	log := p.log.With("batch_id", uuid.NewString())
	start := p.clock.Now()

	lines := splitLines(contents)
	if len(lines) > p.cfg.MaxRows {
		if p.met != nil {
			p.met.BatchesRejected.Inc()
		}
		log.Warnw("batch rejected", "lines", len(lines), "limit", p.cfg.MaxRows)
		return ProcessedData{}, fmt.Errorf("csv file exceeds the row limit of %d", p.cfg.MaxRows)
	}

	data, err := p.processLines(log, lines)
	if err != nil {
		return ProcessedData{}, fmt.Errorf("%s%s", wrapPrefix, err)
	}

	p.observe(log, data, p.clock.Since(start).Seconds())
	return data, nil
}

// ProcessReader drains r once and processes the result. Reading the
// input source is the only I/O in the pipeline.
func (p *Processor) ProcessReader(r io.Reader) (ProcessedData, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return ProcessedData{}, fmt.Errorf("read batch input: %w", err)
	}
	return p.Process(string(b))
}

// processLines walks the filtered lines. A panic out of an injected
// normalizer is converted to an error so one bad dependency cannot take
// the caller down; Process wraps it into the terminal batch error.
func (p *Processor) processLines(log logger.LoggerInterface, lines []string) (data ProcessedData, err error) {
	defer func() {
		if r := recover(); r != nil {
			data = ProcessedData{}
			err = fmt.Errorf("%v", r)
		}
	}()

	data.Headers = append([]string(nil), Headers...)
	for _, line := range lines {
		value, ok := candidate(line)
		if !ok {
			// Empty first column: ignored, not counted as skipped.
			continue
		}

		row, ok := p.processValue(value)
		if !ok {
			data.SkippedRows++
			log.Debugw("row skipped", "value", pii.MaskValue(value))
			continue
		}
		data.Rows = append(data.Rows, row)
	}
	return data, nil
}

// processValue classifies one value and produces its row. The same code
// path backs Process and ProcessParallel so both emit identical rows.
func (p *Processor) processValue(value string) (ProcessedRow, bool) {
	var normalized string
	var ok bool

	switch detect.Classify(value, p.norms.ValidateEmail) {
	case detect.KindEmail:
		if p.norms.ValidateEmail(value) {
			normalized, ok = p.norms.NormalizeEmail(value), true
		}
	case detect.KindPhone:
		normalized, ok = p.norms.NormalizePhone(value)
	}
	if !ok || normalized == "" {
		return ProcessedRow{}, false
	}

	res := hashutil.HashValue(normalized)
	return ProcessedRow{
		Original:   value,
		Normalized: normalized,
		SHA256:     res.SHA256,
		Base64:     res.Base64,
	}, true
}

func (p *Processor) observe(log logger.LoggerInterface, data ProcessedData, seconds float64) {
	if p.met != nil {
		p.met.BatchesTotal.Inc()
		p.met.RowsProcessed.Add(float64(len(data.Rows)))
		p.met.RowsSkipped.Add(float64(data.SkippedRows))
		p.met.BatchDuration.Observe(seconds)
	}
	log.Infow("batch processed",
		"rows", len(data.Rows),
		"skipped", data.SkippedRows,
		"duration_s", seconds,
	)
}
