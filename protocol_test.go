package natset

import (
	"bytes"
	"log/slog"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder_ValidAfterEveryStep(t *testing.T) {
	b := NewBuilder()

	for i, n := range []int{5, 1, 5, 3} {
		require.NoError(t, b.Add(n))
		assert.True(t, b.set.Contains(n), "step %d", i)
	}

	s := b.Build()
	assert.Equal(t, []int{1, 3, 5}, s.ToSlice())
}

func TestBuilder_Transform(t *testing.T) {
	b := NewBuilder(WithTransform(func(x int) int { return x * x }))

	for _, n := range []int{-3, -2, 2, 3} {
		require.NoError(t, b.Add(n))
	}

	assert.Equal(t, []int{4, 9}, b.Build().ToSlice())
}

func TestBuilder_RejectsNegative(t *testing.T) {
	metrics := &BasicMetricsCollector{}
	b := NewBuilder(WithMetricsCollector(metrics))

	require.NoError(t, b.Add(1))
	err := b.Add(-1)
	require.ErrorIs(t, err, ErrInvalidArgument)
	require.NoError(t, b.Add(2))

	s := b.Build()
	assert.Equal(t, []int{1, 2}, s.ToSlice())

	stats := metrics.GetStats()
	assert.Equal(t, int64(3), stats.AddCount)
	assert.Equal(t, int64(1), stats.AddErrors)
	assert.Equal(t, int64(1), stats.BuildCount)
	assert.Equal(t, int64(2), stats.BuildItems)
	assert.Equal(t, int64(2), stats.BuildMembers)
}

func TestBuilder_Logging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	b := NewBuilder(WithLogger(logger))
	require.NoError(t, b.Add(7))
	require.Error(t, b.Add(-7))
	b.Build()

	out := buf.String()
	assert.Contains(t, out, `"msg":"element rejected"`)
	assert.Contains(t, out, `"value":-7`)
	assert.Contains(t, out, `"msg":"set built"`)
	assert.Contains(t, out, `"members":1`)
}

func TestBuilder_NilOptions(t *testing.T) {
	b := NewBuilder(nil, WithLogger(nil), WithMetricsCollector(nil), WithTransform(nil))

	require.NoError(t, b.Add(1))
	assert.Equal(t, []int{1}, b.Build().ToSlice())
}

func TestCollect(t *testing.T) {
	metrics := &BasicMetricsCollector{}

	s, err := Collect(slices.Values([]int{3, 3, 3, 2, 2, 1}), WithMetricsCollector(metrics))
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, s.ToSlice())

	stats := metrics.GetStats()
	assert.Equal(t, int64(6), stats.BuildItems)
	assert.Equal(t, int64(3), stats.BuildMembers)
	assert.Equal(t, int64(3), stats.Duplicates)
}

func TestCollect_Error(t *testing.T) {
	s, err := Collect(slices.Values([]int{1, 2, -3, 4}))

	assert.Nil(t, s)
	require.ErrorIs(t, err, ErrInvalidArgument)
	assert.Contains(t, err.Error(), "collect item 2")

	var neg *ErrNegativeElement
	require.ErrorAs(t, err, &neg)
	assert.Equal(t, -3, neg.Value)
}

// Generic consumers written only against the protocol interfaces.

func countAll(c Counter) int { return c.Len() }

func containsAll(c Container, xs ...int) bool {
	for _, x := range xs {
		if !c.Contains(x) {
			return false
		}
	}
	return true
}

func drain(it Iterable) []int { return slices.Collect(it.All()) }

func fill(c Collector, xs ...int) (*Set, error) {
	for _, x := range xs {
		if err := c.Add(x); err != nil {
			return nil, err
		}
	}
	return c.Build(), nil
}

func TestProtocolInterfaces(t *testing.T) {
	s, err := fill(NewBuilder(), 10, 20, 30)
	require.NoError(t, err)

	assert.Equal(t, 3, countAll(s))
	assert.True(t, containsAll(s, 10, 30))
	assert.False(t, containsAll(s, 10, 31))
	assert.Equal(t, []int{10, 20, 30}, drain(s))
}

func TestBasicMetricsCollector_Empty(t *testing.T) {
	stats := (&BasicMetricsCollector{}).GetStats()

	assert.Equal(t, MetricsStats{}, stats)
}
