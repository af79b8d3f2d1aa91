// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package prob_test

import (
	"math"
	"testing"

	"github.com/born-ml/probkit/prob"
	"github.com/born-ml/probkit/tensor"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestPipeline composes the public functions the way a caller would.
func TestPipeline(t *testing.T) {
	scores, err := tensor.FromRows([][]float64{
		{2, 1, 0},
		{0, 0, 0},
	})
	require.NoError(t, err)

	p, err := prob.Softmax(scores, prob.DefaultTemperature)
	require.NoError(t, err)

	h, err := prob.Entropy(p)
	require.NoError(t, err)
	assert.Less(t, h.At(0), h.At(1))
	assert.InDelta(t, math.Log(3), h.At(1), 1e-12)

	kl, err := prob.KLDivergence(p, p)
	require.NoError(t, err)
	assert.Equal(t, 0.0, kl)

	gates, err := prob.Logistic(scores, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1, 0.5}, {0.5, 0.5, 0.5}}, gates.Rows())

	c := prob.NewCollapser(prob.CollapseConfig{Seed: 1})
	states, err := c.Collapse(gates, prob.Binary)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, 1}, states.RowView(0)[:2])
}

func TestPublicDuoRamp(t *testing.T) {
	x, err := tensor.Vector(1, 3, 7)
	require.NoError(t, err)

	y, err := prob.DuoRamp(x, prob.WithLow(2), prob.WithHigh(5))
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 3, 5}, y.Data())

	s, err := prob.DuoRampSlice([]float64{-1, 0.5}, prob.WithLow(0))
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.5}, s)
}

func TestPublicCollapseMode(t *testing.T) {
	mode, err := prob.ParseMode("ter")
	require.NoError(t, err)
	assert.Equal(t, prob.Ternary, mode)

	x, err := tensor.Vector(1, -1)
	require.NoError(t, err)
	out, err := prob.Collapse(x, mode)
	require.NoError(t, err)
	assert.Equal(t, []float64{1, -1}, out.Data())

	_, err = prob.Collapse(x, prob.Mode(0))
	require.ErrorIs(t, err, prob.ErrInvalidMode)

	assert.Equal(t, int64(-1), prob.DefaultCollapseConfig().Seed)
}

func TestPublicErrors(t *testing.T) {
	v, err := tensor.Vector(1, 2)
	require.NoError(t, err)

	_, err = prob.Softmax(v, 1)
	require.ErrorIs(t, err, prob.ErrNotMatrix)
	_, err = prob.Entropy(v)
	require.ErrorIs(t, err, tensor.ErrNotMatrix)
	_, err = prob.Logistic(v, -1)
	require.ErrorIs(t, err, prob.ErrInvalidTemperature)
	_, err = prob.KLDivergence(v, v, prob.WithBase(-1))
	require.ErrorIs(t, err, prob.ErrInvalidBase)

	assert.Equal(t, 0.5, prob.LogisticScalar(0, 1))
}
