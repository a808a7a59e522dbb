package calculator

import (
	"math"
	"testing"

	"tech100/internal/db/models/postgres/public/model"
	"tech100/internal/util"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func quote(provider string, adjClose float64) ProviderPrice {
	return ProviderPrice{Provider: provider, AdjClose: util.FloatPointer(adjClose)}
}

func TestReconcile(t *testing.T) {
	t.Run("providers agree - median wins", func(t *testing.T) {
		result := Reconcile(ReconcileInput{
			Quotes: []ProviderPrice{
				quote("P1", 100.00),
				quote("P2", 100.40),
			},
			ThresholdPct: 0.50,
		})

		require.Equal(t, model.PriceQuality_High, result.Quality)
		require.NotNil(t, result.CanonAdjClose)
		require.InDelta(t, 100.20, *result.CanonAdjClose, 1e-9)
		require.NotNil(t, result.ChosenProvider)
		require.Equal(t, ChosenProviderMedian, *result.ChosenProvider)
		require.Equal(t, int32(2), result.ProvidersOk)
		require.NotNil(t, result.DivergencePct)
		require.InDelta(t, 0.399, *result.DivergencePct, 0.001)
	})

	t.Run("providers conflict - preferred provider wins", func(t *testing.T) {
		result := Reconcile(ReconcileInput{
			Quotes: []ProviderPrice{
				quote("P1", 101.00),
				quote("P2", 95.00),
			},
			ThresholdPct:      0.50,
			PreferredProvider: "P2",
		})

		require.Equal(t, model.PriceQuality_Conflict, result.Quality)
		require.NotNil(t, result.CanonAdjClose)
		require.Equal(t, 95.00, *result.CanonAdjClose)
		require.Equal(t, "P2", *result.ChosenProvider)
		require.NotNil(t, result.DivergencePct)
		require.InDelta(t, 6.12, *result.DivergencePct, 0.01)
	})

	t.Run("conflict falls back to secondary then first seen", func(t *testing.T) {
		in := ReconcileInput{
			Quotes: []ProviderPrice{
				quote("P3", 101.00),
				quote("P4", 95.00),
			},
			ThresholdPct:      0.50,
			PreferredProvider: "P1",
			SecondaryProvider: "P4",
		}
		result := Reconcile(in)
		require.Equal(t, "P4", *result.ChosenProvider)

		in.SecondaryProvider = "P9"
		result = Reconcile(in)
		require.Equal(t, "P3", *result.ChosenProvider)
	})

	t.Run("no providers", func(t *testing.T) {
		result := Reconcile(ReconcileInput{ThresholdPct: 0.50})
		require.Equal(t, model.PriceQuality_Low, result.Quality)
		require.Nil(t, result.CanonAdjClose)
		require.Equal(t, int32(0), result.ProvidersOk)
	})

	t.Run("single provider used verbatim", func(t *testing.T) {
		result := Reconcile(ReconcileInput{
			Quotes: []ProviderPrice{
				{Provider: "P1", AdjClose: util.FloatPointer(55.5), Close: util.FloatPointer(56.0)},
			},
			ThresholdPct: 0.50,
		})
		require.Equal(t, model.PriceQuality_Low, result.Quality)
		require.Equal(t, 55.5, *result.CanonAdjClose)
		require.Equal(t, 56.0, *result.CanonClose)
		require.Equal(t, "P1", *result.ChosenProvider)
	})

	t.Run("median of odd provider count", func(t *testing.T) {
		result := Reconcile(ReconcileInput{
			Quotes: []ProviderPrice{
				quote("P1", 100.0),
				quote("P2", 100.1),
				quote("P3", 100.2),
			},
			ThresholdPct: 0.50,
		})
		require.Equal(t, model.PriceQuality_High, result.Quality)
		require.InDelta(t, 100.1, *result.CanonAdjClose, 1e-9)
	})

	t.Run("zero pair average forces conflict", func(t *testing.T) {
		result := Reconcile(ReconcileInput{
			Quotes: []ProviderPrice{
				quote("P1", -1.0),
				quote("P2", 1.0),
			},
			ThresholdPct: 0.50,
		})
		require.Equal(t, model.PriceQuality_Conflict, result.Quality)
		require.True(t, math.IsInf(*result.DivergencePct, 1))
	})

	t.Run("both zero is zero divergence", func(t *testing.T) {
		result := Reconcile(ReconcileInput{
			Quotes: []ProviderPrice{
				quote("P1", 0),
				quote("P2", 0),
			},
			ThresholdPct: 0.50,
		})
		require.Equal(t, model.PriceQuality_High, result.Quality)
		require.Equal(t, 0.0, *result.DivergencePct)
	})

	t.Run("deterministic for identical input", func(t *testing.T) {
		in := ReconcileInput{
			Quotes: []ProviderPrice{
				quote("P1", 100.00),
				quote("P2", 100.40),
				quote("P3", 100.10),
			},
			ThresholdPct:      0.50,
			PreferredProvider: "P1",
		}
		first := Reconcile(in)
		for i := 0; i < 10; i++ {
			require.Empty(t, cmp.Diff(first, Reconcile(in)))
		}
	})
}
