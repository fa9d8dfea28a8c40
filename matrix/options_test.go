// SPDX-License-Identifier: MIT
package matrix

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGatherOptions_Defaults verifies the documented defaults.
func TestGatherOptions_Defaults(t *testing.T) {
	o := gatherOptions()

	assert.Equal(t, DefaultWorkers, o.workers)
	require.NotNil(t, o.logger)
	assert.Nil(t, o.progress)
}

// TestGatherOptions_LeftToRight checks that later options win and nil ones are skipped.
func TestGatherOptions_LeftToRight(t *testing.T) {
	l := hclog.NewNullLogger()
	var calls int
	o := gatherOptions(WithWorkers(2), nil, WithWorkers(4), WithLogger(l), WithLogger(nil),
		WithProgress(func(int, int) { calls++ }))

	assert.Equal(t, 4, o.workers)
	assert.Same(t, l, o.logger)
	require.NotNil(t, o.progress)
	o.progress(1, 1)
	assert.Equal(t, 1, calls)
}
