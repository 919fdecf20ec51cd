package batch_test

import (
	"io"
	"testing"

	"github.com/KereMath/tiac/batch"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestRunCollectsAllResultsInOrder(t *testing.T) {
	log := zerolog.New(io.Discard)

	jobs := []batch.Job{
		func() error { return nil },
		func() error { return errBoom },
		func() error { return nil },
		func() error { return errBoom },
	}

	results := batch.Run(log, jobs)
	require.Len(t, results, len(jobs))
	require.NoError(t, results[0])
	require.ErrorIs(t, results[1], errBoom)
	require.NoError(t, results[2])
	require.ErrorIs(t, results[3], errBoom)
}

func TestRunWithNoJobsReturnsEmptySlice(t *testing.T) {
	log := zerolog.New(io.Discard)
	results := batch.Run(log, nil)
	require.Empty(t, results)
}

var errBoom = &boomError{}

type boomError struct{}

func (e *boomError) Error() string { return "boom" }
