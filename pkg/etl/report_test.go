package etl_test

import (
	"sync"
	"testing"

	"github.com/akash-pandit/CACourses/pkg/etl"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFailureReport(t *testing.T) {
	report := etl.NewFailureReport()
	assert.True(t, report.Empty())
	assert.Zero(t, report.Len())

	report.Add(113, 7)
	report.Add(105, 7)
	report.Add(113, 89)

	assert.False(t, report.Empty())
	assert.Equal(t, 3, report.Len())

	pairs := report.Pairs()
	require.Len(t, pairs, 2)
	assert.Equal(t, []int{105, 113}, pairs[7])
	assert.Equal(t, []int{113}, pairs[89])
}

func TestFailureReportString(t *testing.T) {
	report := etl.NewFailureReport()
	report.Add(113, 89)
	report.Add(105, 7)
	report.Add(113, 7)

	assert.Equal(t, "  7 <- 105, 113\n  89 <- 113", report.String())
}

func TestFailureReportConcurrent(t *testing.T) {
	report := etl.NewFailureReport()

	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			report.Add(i, i%3)
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, report.Len())
}
