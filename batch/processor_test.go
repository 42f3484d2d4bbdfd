//go:build unit
// +build unit

package batch_test

import (
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trustmatch/go-contacthash/batch"
	"github.com/trustmatch/go-contacthash/metrics"
	"github.com/trustmatch/go-contacthash/timeutil"
)

// fakeNormalizers overrides individual behaviors; nil fields fall back
// to the production rules.
type fakeNormalizers struct {
	validateEmail  func(string) bool
	normalizeEmail func(string) string
	normalizePhone func(string) (string, bool)
}

func (f fakeNormalizers) ValidateEmail(v string) bool {
	if f.validateEmail != nil {
		return f.validateEmail(v)
	}
	return batch.Default().ValidateEmail(v)
}

func (f fakeNormalizers) NormalizeEmail(v string) string {
	if f.normalizeEmail != nil {
		return f.normalizeEmail(v)
	}
	return batch.Default().NormalizeEmail(v)
}

func (f fakeNormalizers) NormalizePhone(v string) (string, bool) {
	if f.normalizePhone != nil {
		return f.normalizePhone(v)
	}
	return batch.Default().NormalizePhone(v)
}

func newProcessor(t *testing.T, opts ...batch.Option) *batch.Processor {
	t.Helper()
	p, err := batch.NewProcessor(batch.Config{}, opts...)
	require.NoError(t, err)
	return p
}

func TestProcess_MixedInput(t *testing.T) {
	p := newProcessor(t)

	data, err := p.Process("Test.User@Example.com\n1234567890\nnot-a-contact\n+61 0212 345 678")
	require.NoError(t, err)

	assert.Equal(t, []string{"Input", "Normalized", "SHA256", "Base64"}, data.Headers)
	require.Len(t, data.Rows, 3)
	assert.Equal(t, 1, data.SkippedRows)

	assert.Equal(t, "Test.User@Example.com", data.Rows[0].Original)
	assert.Equal(t, "testuser@example.com", data.Rows[0].Normalized)
	assert.Equal(t, "a744863d83aefc35f62f9a247025dedfc8964b3c0b39dd794dd3816851fc4a94", data.Rows[0].SHA256)
	assert.Equal(t, "p0SGPYOu/DX2L5okcCXe38iWSzwLOd15TdOBaFH8SpQ=", data.Rows[0].Base64)

	// Ten digits get the batch-path "+1" country code.
	assert.Equal(t, "+11234567890", data.Rows[1].Normalized)

	// Twelve digits only get the "+" prefix; no AU fix-up on this path.
	assert.Equal(t, "+610212345678", data.Rows[2].Normalized)
}

func TestProcess_EmailValidatorStubbedFalse(t *testing.T) {
	p := newProcessor(t, batch.WithNormalizers(fakeNormalizers{
		validateEmail: func(string) bool { return false },
	}))

	data, err := p.Process("invalid\n1234567890\ninvalid2")
	require.NoError(t, err)

	require.Len(t, data.Rows, 1)
	assert.Equal(t, "1234567890", data.Rows[0].Original)
	assert.Equal(t, "+11234567890", data.Rows[0].Normalized)
	assert.Equal(t, "1fa6b8d986d9b9cd01bf36951815158bbde9f520c0567c835dfe34783d0a4231", data.Rows[0].SHA256)
	assert.Equal(t, "H6a42YbZuc0BvzaVGBUVi73p9SDAVnyDXf40eD0KQjE=", data.Rows[0].Base64)
	assert.Equal(t, 2, data.SkippedRows)
}

func TestProcess_RowLimit(t *testing.T) {
	p := newProcessor(t)

	at := strings.Repeat("1234567890\n", batch.DefaultMaxRows)
	_, err := p.Process(at)
	assert.NoError(t, err, "exactly the limit must pass")

	over := at + "1234567890\n"
	data, err := p.Process(over)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "10000")
	assert.Empty(t, data.Rows, "no partial results on rejection")
}

func TestProcess_BlankLines(t *testing.T) {
	p := newProcessor(t)

	data, err := p.Process("user@example.com\n\n   \n\t\n1234567890\n")
	require.NoError(t, err)
	assert.Len(t, data.Rows, 2)
	assert.Equal(t, 0, data.SkippedRows, "blank lines are dropped, not skipped")
}

func TestProcess_FirstColumnOnly(t *testing.T) {
	p := newProcessor(t)

	data, err := p.Process("user@example.com,ignored,trailing\n,leading-comma\n1234567890,x")
	require.NoError(t, err)

	require.Len(t, data.Rows, 2)
	assert.Equal(t, "user@example.com", data.Rows[0].Original)
	assert.Equal(t, "1234567890", data.Rows[1].Original)
	// The empty first column is ignored without touching the counter.
	assert.Equal(t, 0, data.SkippedRows)
}

func TestProcess_PhoneDigitBounds(t *testing.T) {
	p := newProcessor(t)

	data, err := p.Process("123456789\n1234567890\n123456789012345\n1234567890123456")
	require.NoError(t, err)

	require.Len(t, data.Rows, 2)
	assert.Equal(t, "+11234567890", data.Rows[0].Normalized)
	assert.Equal(t, "+123456789012345", data.Rows[1].Normalized)
	assert.Equal(t, 2, data.SkippedRows, "nine and sixteen digits are out of range")
}

func TestProcess_WrapsUnexpectedFailures(t *testing.T) {
	p := newProcessor(t, batch.WithNormalizers(fakeNormalizers{
		normalizePhone: func(string) (string, bool) { panic("normalizer exploded") },
	}))

	_, err := p.Process("1234567890")
	require.Error(t, err)
	assert.True(t, strings.HasPrefix(err.Error(), "Error processing CSV file: "), err.Error())
	assert.Contains(t, err.Error(), "normalizer exploded")
}

func TestProcessReader(t *testing.T) {
	p := newProcessor(t)

	data, err := p.ProcessReader(strings.NewReader("user@example.com\n1234567890"))
	require.NoError(t, err)
	assert.Len(t, data.Rows, 2)
}

func TestProcess_Determinism(t *testing.T) {
	p := newProcessor(t)

	in := "user@example.com\n+12345678901\nnope"
	d1, err := p.Process(in)
	require.NoError(t, err)
	d2, err := p.Process(in)
	require.NoError(t, err)
	assert.Equal(t, d1, d2)
}

func TestProcess_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	met := metrics.NewPipeline(reg)
	p := newProcessor(t, batch.WithMetrics(met))

	_, err := p.Process("user@example.com\n1234567890\nnope")
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(met.BatchesTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(met.RowsProcessed))
	assert.Equal(t, 1.0, testutil.ToFloat64(met.RowsSkipped))

	_, err = p.Process(strings.Repeat("1\n", batch.DefaultMaxRows+1))
	require.Error(t, err)
	assert.Equal(t, 1.0, testutil.ToFloat64(met.BatchesRejected))
}

func TestProcess_DurationUsesInjectedClock(t *testing.T) {
	clk := timeutil.NewFrozenClock(time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC))
	reg := prometheus.NewRegistry()
	met := metrics.NewPipeline(reg)
	p := newProcessor(t, batch.WithClock(clk), batch.WithMetrics(met))

	_, err := p.Process("1234567890")
	require.NoError(t, err)
	assert.Equal(t, 1, testutil.CollectAndCount(met.BatchDuration))
}

func TestNewProcessor_ConfigValidation(t *testing.T) {
	_, err := batch.NewProcessor(batch.Config{Workers: -1})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Workers")
}

func TestWriteCSV(t *testing.T) {
	p := newProcessor(t)

	data, err := p.Process("user@example.com")
	require.NoError(t, err)

	var b strings.Builder
	require.NoError(t, data.WriteCSV(&b))

	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "Input,Normalized,SHA256,Base64", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "user@example.com,user@example.com,"), lines[1])
}
