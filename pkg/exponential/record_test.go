package exponential

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func fptr(v float64) *float64 { return &v }

func requireConsistent(t *testing.T, r *Record) {
	t.Helper()
	require.InEpsilon(t, r.Principal()*math.Exp(r.Rate()*r.Time()), r.FinalValue(), 1e-9)
}

func TestNewUnknownCount(t *testing.T) {
	tests := []struct {
		name       string
		principal  *float64
		rate       *float64
		time       *float64
		finalValue *float64
		wantErr    bool
	}{
		{
			name:       "no unknowns",
			principal:  fptr(1000),
			rate:       fptr(0.05),
			time:       fptr(10),
			finalValue: fptr(1648.72),
			wantErr:    true,
		},
		{
			name:      "two unknowns",
			principal: fptr(1000),
			rate:      fptr(0.05),
			wantErr:   true,
		},
		{
			name:    "all unknown",
			wantErr: true,
		},
		{
			name:      "final value unknown",
			principal: fptr(1000),
			rate:      fptr(0.05),
			time:      fptr(10),
		},
		{
			name:       "rate unknown",
			principal:  fptr(1000),
			time:       fptr(10),
			finalValue: fptr(2000),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := New(tt.principal, tt.rate, tt.time, tt.finalValue)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidInput)
				require.Nil(t, rec)
				return
			}
			require.NoError(t, err)
			requireConsistent(t, rec)
		})
	}
}

func TestSolveRate(t *testing.T) {
	tests := []struct {
		name       string
		principal  float64
		time       float64
		finalValue float64
		wantRate   float64
		wantErr    bool
	}{
		{
			name:       "decaying bacteria culture",
			principal:  5000,
			time:       3,
			finalValue: 2000,
			wantRate:   -0.30543024395805174, // ln(0.4)/3
		},
		{
			name:       "doubling population",
			principal:  100,
			time:       10,
			finalValue: 200,
			wantRate:   math.Ln2 / 10,
		},
		{
			name:       "zero time",
			principal:  100,
			time:       0,
			finalValue: 200,
			wantErr:    true,
		},
		{
			name:       "negative final value",
			principal:  100,
			time:       5,
			finalValue: -1,
			wantErr:    true,
		},
		{
			name:       "zero principal",
			principal:  0,
			time:       5,
			finalValue: 100,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := SolveRate(tt.principal, tt.time, tt.finalValue)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrDomain)
				return
			}
			require.NoError(t, err)
			require.InDelta(t, tt.wantRate, rec.Rate(), 1e-12)
			requireConsistent(t, rec)
		})
	}
}

func TestSolveTime(t *testing.T) {
	tests := []struct {
		name       string
		principal  float64
		rate       float64
		finalValue float64
		wantTime   float64
		wantErr    bool
	}{
		{
			name:       "last person standing",
			principal:  1000,
			rate:       -0.04605170185988091, // ln(0.1)/50
			finalValue: 1,
			wantTime:   150,
		},
		{
			name:       "zero rate",
			principal:  1000,
			rate:       0,
			finalValue: 2000,
			wantErr:    true,
		},
		{
			name:       "non-positive ratio",
			principal:  -1000,
			rate:       0.05,
			finalValue: 2000,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec, err := SolveTime(tt.principal, tt.rate, tt.finalValue)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrDomain)
				return
			}
			require.NoError(t, err)
			require.InDelta(t, tt.wantTime, rec.Time(), 1e-9)
			requireConsistent(t, rec)
		})
	}
}

func TestSolvePrincipal(t *testing.T) {
	rec, err := SolvePrincipal(0.025, 18, 1_881_974.6225882433)
	require.NoError(t, err)
	require.InDelta(t, 1_200_000, rec.Principal(), 1e-6)
	requireConsistent(t, rec)
}

func TestPopulationScenario(t *testing.T) {
	// Population of 1.2M growing at 2.5% for 18 years.
	rec, err := New(fptr(1_200_000), fptr(0.025), fptr(18), nil)
	require.NoError(t, err)
	require.InDelta(t, 1_881_974.62, rec.FinalValue(), 0.5)

	// When does it reach 2 million?
	require.NoError(t, rec.UpdateFinalValue(2_000_000))
	require.InDelta(t, 20.433, rec.Time(), 1e-3)
	requireConsistent(t, rec)
}

func TestUpdatesPreserveInvariant(t *testing.T) {
	rec, err := SolveFinalValue(5000, -0.30543024395805174, 3)
	require.NoError(t, err)
	require.InDelta(t, 2000, rec.FinalValue(), 1e-6)

	require.NoError(t, rec.UpdateTime(5))
	require.InDelta(t, 1085.767, rec.FinalValue(), 1e-2)
	requireConsistent(t, rec)

	require.NoError(t, rec.UpdatePrincipal(10_000))
	requireConsistent(t, rec)

	require.NoError(t, rec.UpdateRate(0.1))
	requireConsistent(t, rec)

	require.NoError(t, rec.UpdateFinalValue(20_000))
	requireConsistent(t, rec)
}

func TestUpdateIdempotence(t *testing.T) {
	rec, err := SolveFinalValue(1000, 0.05, 10)
	require.NoError(t, err)
	before := *rec

	require.NoError(t, rec.UpdatePrincipal(rec.Principal()))
	require.Equal(t, before, *rec)

	require.NoError(t, rec.UpdateRate(rec.Rate()))
	require.Equal(t, before, *rec)

	require.NoError(t, rec.UpdateTime(rec.Time()))
	require.Equal(t, before, *rec)

	require.NoError(t, rec.UpdateFinalValue(rec.FinalValue()))
	require.InDelta(t, before.time, rec.Time(), 1e-9)
	require.Equal(t, before.finalValue, rec.FinalValue())
}

func TestFailedUpdateLeavesRecordUntouched(t *testing.T) {
	rec, err := SolveFinalValue(1000, 0.05, 10)
	require.NoError(t, err)
	before := *rec

	require.ErrorIs(t, rec.UpdateFinalValue(-5), ErrDomain)
	require.Equal(t, before, *rec)

	// Zero rate makes the time unsolvable.
	require.NoError(t, rec.UpdateRate(0))
	require.ErrorIs(t, rec.UpdateFinalValue(2000), ErrDomain)
	require.Equal(t, 0.0, rec.Rate())
	require.Equal(t, before.time, rec.Time())
}
