package split

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr(s string) *decimal.Decimal {
	d := dec(s)
	return &d
}

func nan() float64 { return math.NaN() }

func inf() float64 { return math.Inf(1) }

func ids(n int) []SplitInput {
	out := make([]SplitInput, n)
	for i := range out {
		out[i] = SplitInput{UserID: int64(i + 1)}
	}
	return out
}

type owed struct {
	id     int64
	amount string
}

func assertOwed(t *testing.T, want []owed, got []SplitOutput) {
	t.Helper()
	require.Len(t, got, len(want))
	for i, w := range want {
		assert.Equal(t, w.id, got[i].UserID, "entry %d id", i)
		assert.Equal(t, w.amount, got[i].Amount.StringFixed(2), "entry %d amount", i)
	}
}

func TestCompute_Equal(t *testing.T) {
	tests := []struct {
		name         string
		total        string
		participants []SplitInput
		payerID      int64
		want         []owed
	}{
		{
			name:         "payer not selected gets a zero entry",
			total:        "40",
			participants: []SplitInput{{UserID: 2}, {UserID: 3}},
			payerID:      1,
			want:         []owed{{2, "20.00"}, {3, "20.00"}, {1, "0.00"}},
		},
		{
			name:         "payer among participants",
			total:        "40",
			participants: []SplitInput{{UserID: 1}, {UserID: 2}},
			payerID:      1,
			want:         []owed{{1, "20.00"}, {2, "20.00"}},
		},
		{
			name:         "remainder is not redistributed",
			total:        "100",
			participants: ids(3),
			payerID:      1,
			want:         []owed{{1, "33.33"}, {2, "33.33"}, {3, "33.33"}},
		},
		{
			name:         "half cent rounds away from zero",
			total:        "0.05",
			participants: ids(2),
			payerID:      1,
			want:         []owed{{1, "0.03"}, {2, "0.03"}},
		},
		{
			name:         "inputs are ignored",
			total:        "10",
			participants: []SplitInput{{UserID: 1, Amount: ptr("9")}, {UserID: 2, Percentage: ptr("10")}},
			payerID:      2,
			want:         []owed{{1, "5.00"}, {2, "5.00"}},
		},
		{
			name:         "single participant who is the payer",
			total:        "12.34",
			participants: ids(1),
			payerID:      1,
			want:         []owed{{1, "12.34"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(dec(tt.total), SplitTypeEqual, tt.participants, tt.payerID)
			require.NoError(t, err)
			assertOwed(t, tt.want, got)
		})
	}
}

func TestCompute_EqualProperty(t *testing.T) {
	totals := []string{"0.01", "1", "10", "33.33", "100", "1234.56", "99999.99"}

	for _, total := range totals {
		for n := 1; n <= 12; n++ {
			t.Run(fmt.Sprintf("%s/%d", total, n), func(t *testing.T) {
				amount := dec(total)
				got, err := Compute(amount, SplitTypeEqual, ids(n), 1)
				require.NoError(t, err)
				require.Len(t, got, n)

				share := amount.Div(decimal.NewFromInt(int64(n))).Round(2)
				for _, o := range got {
					assert.True(t, o.Amount.Equal(share), "got %s want %s", o.Amount, share)
					assert.False(t, o.Amount.IsNegative())
				}

				maxDrift := decimal.New(5, -3).Mul(decimal.NewFromInt(int64(n)))
				drift := Sum(got).Sub(amount).Abs()
				assert.True(t, drift.LessThanOrEqual(maxDrift), "drift %s exceeds %s", drift, maxDrift)
			})
		}
	}
}

func TestCompute_EqualDistributeRemainder(t *testing.T) {
	opts := DefaultOptions()
	opts.DistributeRemainder = true
	calc := NewCalculator(opts)

	got, err := calc.Compute(dec("100"), SplitTypeEqual, ids(3), 1)
	require.NoError(t, err)
	assertOwed(t, []owed{{1, "33.34"}, {2, "33.33"}, {3, "33.33"}}, got)

	got, err = calc.Compute(dec("0.05"), SplitTypeEqual, ids(3), 4)
	require.NoError(t, err)
	assertOwed(t, []owed{{1, "0.02"}, {2, "0.02"}, {3, "0.01"}, {4, "0.00"}}, got)

	for _, total := range []string{"0.01", "1", "10", "33.33", "100", "1234.56", "99999.99"} {
		for n := 1; n <= 12; n++ {
			got, err := calc.Compute(dec(total), SplitTypeEqual, ids(n), 1)
			require.NoError(t, err)
			assert.True(t, Sum(got).Equal(dec(total)), "%s/%d sums to %s", total, n, Sum(got))

			lo, hi := got[0].Amount, got[0].Amount
			for _, o := range got {
				lo = decimal.Min(lo, o.Amount)
				hi = decimal.Max(hi, o.Amount)
			}
			assert.True(t, hi.Sub(lo).LessThanOrEqual(dec("0.01")), "%s/%d spread %s", total, n, hi.Sub(lo))
		}
	}
}

func TestCompute_Percentage(t *testing.T) {
	tests := []struct {
		name         string
		total        string
		participants []SplitInput
		payerID      int64
		want         []owed
	}{
		{
			name:         "even halves",
			total:        "100",
			participants: []SplitInput{{UserID: 1, Percentage: ptr("50")}, {UserID: 2, Percentage: ptr("50")}},
			payerID:      1,
			want:         []owed{{1, "50.00"}, {2, "50.00"}},
		},
		{
			name:         "uneven shares with payer appended",
			total:        "90",
			participants: []SplitInput{{UserID: 2, Percentage: ptr("60")}, {UserID: 3, Percentage: ptr("40")}},
			payerID:      1,
			want:         []owed{{2, "54.00"}, {3, "36.00"}, {1, "0.00"}},
		},
		{
			name:  "thirds round per participant",
			total: "10",
			participants: []SplitInput{
				{UserID: 1, Percentage: ptr("33.33")},
				{UserID: 2, Percentage: ptr("33.33")},
				{UserID: 3, Percentage: ptr("33.34")},
			},
			payerID: 3,
			want:    []owed{{1, "3.33"}, {2, "3.33"}, {3, "3.33"}},
		},
		{
			name:         "sum inside tolerance is accepted",
			total:        "200",
			participants: []SplitInput{{UserID: 1, Percentage: ptr("50.01")}, {UserID: 2, Percentage: ptr("50")}},
			payerID:      1,
			want:         []owed{{1, "100.02"}, {2, "100.00"}},
		},
		{
			name:         "zero percent participant",
			total:        "25",
			participants: []SplitInput{{UserID: 1, Percentage: ptr("100")}, {UserID: 2, Percentage: ptr("0")}},
			payerID:      2,
			want:         []owed{{1, "25.00"}, {2, "0.00"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(dec(tt.total), SplitTypePercentage, tt.participants, tt.payerID)
			require.NoError(t, err)
			assertOwed(t, tt.want, got)
		})
	}
}

func TestCompute_PercentageProperty(t *testing.T) {
	sets := [][]string{
		{"100"},
		{"50", "50"},
		{"12.5", "87.5"},
		{"99.99", "0.01"},
		{"25", "25", "50"},
		{"10", "20", "30", "40"},
		{"33.33", "33.33", "33.34"},
	}
	totals := []string{"0.01", "1", "10", "33.33", "100", "1234.56", "99999.99"}

	for _, set := range sets {
		for _, total := range totals {
			t.Run(fmt.Sprintf("%v/%s", set, total), func(t *testing.T) {
				inputs := make([]SplitInput, len(set))
				for i, pct := range set {
					inputs[i] = SplitInput{UserID: int64(i + 1), Percentage: ptr(pct)}
				}

				amount := dec(total)
				got, err := Compute(amount, SplitTypePercentage, inputs, 1)
				require.NoError(t, err)
				require.Len(t, got, len(set))

				rounded := make([]SplitOutput, len(set))
				for i, pct := range set {
					rounded[i] = SplitOutput{Amount: amount.Mul(dec(pct)).Div(dec("100")).Round(2)}
				}
				plainRounding := Sum(rounded).Sub(amount).Abs().LessThanOrEqual(dec("0.01"))

				for i, o := range got {
					want := rounded[i].Amount
					if plainRounding {
						assert.True(t, o.Amount.Equal(want), "participant %d: got %s want %s", o.UserID, o.Amount, want)
					} else {
						assert.True(t, o.Amount.Sub(want).Abs().LessThanOrEqual(dec("0.01")), "participant %d: got %s want %s", o.UserID, o.Amount, want)
					}
				}

				drift := Sum(got).Sub(amount).Abs()
				assert.True(t, drift.LessThanOrEqual(dec("0.01")), "drift %s exceeds 0.01", drift)
			})
		}
	}
}

func TestCompute_PercentageManySmallShares(t *testing.T) {
	t.Run("small shares that round to zero", func(t *testing.T) {
		inputs := []SplitInput{{UserID: 6, Percentage: ptr("98")}}
		for id := int64(1); id <= 5; id++ {
			inputs = append(inputs, SplitInput{UserID: id, Percentage: ptr("0.4")})
		}

		got, err := Compute(dec("1.00"), SplitTypePercentage, inputs, 6)
		require.NoError(t, err)
		assertOwed(t, []owed{{6, "0.98"}, {1, "0.01"}, {2, "0.01"}, {3, "0.00"}, {4, "0.00"}, {5, "0.00"}}, got)
		assert.Equal(t, "1.00", Sum(got).StringFixed(2))
	})

	t.Run("cents are taken from shares rounded up", func(t *testing.T) {
		// 0.5% of 1.00 is 0.005 which rounds up to 0.01 for everyone
		inputs := []SplitInput{{UserID: 1, Percentage: ptr("96")}}
		for id := int64(2); id <= 9; id++ {
			inputs = append(inputs, SplitInput{UserID: id, Percentage: ptr("0.5")})
		}

		got, err := Compute(dec("1.00"), SplitTypePercentage, inputs, 1)
		require.NoError(t, err)
		assert.Equal(t, "1.00", Sum(got).StringFixed(2))
		assert.Equal(t, "0.96", got[0].Amount.StringFixed(2))
		for _, o := range got {
			assert.False(t, o.Amount.IsNegative(), "participant %d", o.UserID)
		}
	})

	for _, n := range []int{3, 7, 30, 99} {
		t.Run(fmt.Sprintf("%d participants", n), func(t *testing.T) {
			// one large share, the rest split across n-1 tiny ones
			small := dec("1").Div(decimal.NewFromInt(int64(n - 1))).Truncate(4)
			rest := dec("100").Sub(small.Mul(decimal.NewFromInt(int64(n - 1))))
			inputs := []SplitInput{{UserID: 1, Percentage: &rest}}
			for id := 2; id <= n; id++ {
				inputs = append(inputs, SplitInput{UserID: int64(id), Percentage: &small})
			}

			for _, total := range []string{"0.01", "0.99", "1.00", "7.77", "1000.01"} {
				got, err := Compute(dec(total), SplitTypePercentage, inputs, 1)
				require.NoError(t, err)
				drift := Sum(got).Sub(dec(total)).Abs()
				assert.True(t, drift.LessThanOrEqual(dec("0.01")), "total %s drift %s", total, drift)
				for _, o := range got {
					assert.False(t, o.Amount.IsNegative(), "total %s participant %d", total, o.UserID)
				}
			}
		})
	}
}

func TestCompute_Exact(t *testing.T) {
	got, err := Compute(dec("90.00"), SplitTypeExact, []SplitInput{
		{UserID: 1, Amount: ptr("30.00")},
		{UserID: 2, Amount: ptr("60.00")},
	}, 1)
	require.NoError(t, err)
	assertOwed(t, []owed{{1, "30.00"}, {2, "60.00"}}, got)

	got, err = Compute(dec("15"), SplitTypeExact, []SplitInput{
		{UserID: 2, Amount: ptr("10")},
		{UserID: 3, Amount: ptr("5")},
	}, 1)
	require.NoError(t, err)
	assertOwed(t, []owed{{2, "10.00"}, {3, "5.00"}, {1, "0.00"}}, got)
}

func TestCompute_ExactTolerance(t *testing.T) {
	inputs := func(a, b string) []SplitInput {
		return []SplitInput{{UserID: 1, Amount: ptr(a)}, {UserID: 2, Amount: ptr(b)}}
	}

	tests := []struct {
		name      string
		tolerance string
		a, b      string
		wantErr   error
	}{
		{name: "exact match", tolerance: "0.01", a: "30", b: "60"},
		{name: "one cent short", tolerance: "0.01", a: "30", b: "59.99", wantErr: ErrExactSumMismatch},
		{name: "one cent over", tolerance: "0.01", a: "30.01", b: "60", wantErr: ErrExactSumMismatch},
		{name: "fraction of a cent", tolerance: "0.01", a: "30.004", b: "60", wantErr: ErrInvalidAmount},
		{name: "zero tolerance exact", tolerance: "0", a: "45", b: "45"},
		{name: "zero tolerance fraction of a cent", tolerance: "0", a: "45.001", b: "45", wantErr: ErrInvalidAmount},
		{name: "wider tolerance", tolerance: "0.05", a: "30", b: "59.99"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			opts.ExactTolerance = dec(tt.tolerance)
			_, err := NewCalculator(opts).Compute(dec("90"), SplitTypeExact, inputs(tt.a, tt.b), 1)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestCompute_AmountPrecision(t *testing.T) {
	tests := []struct {
		name         string
		total        string
		splitType    SplitType
		participants []SplitInput
		wantErr      error
		wantUserID   int64
	}{
		{name: "total below one cent", total: "0.004", splitType: SplitTypeEqual, participants: ids(2), wantErr: ErrInvalidAmount},
		{name: "total with a fraction of a cent", total: "10.005", splitType: SplitTypeEqual, participants: ids(2), wantErr: ErrInvalidAmount},
		{name: "trailing zeros are fine", total: "10.500", splitType: SplitTypeEqual, participants: ids(2)},
		{name: "largest storable total", total: "9999999999.99", splitType: SplitTypeEqual, participants: ids(3)},
		{name: "total too large", total: "10000000000", splitType: SplitTypeEqual, participants: ids(2), wantErr: ErrInvalidAmount},
		{
			name: "exact amount with a fraction of a cent", total: "10", splitType: SplitTypeExact,
			participants: []SplitInput{{UserID: 1, Amount: ptr("5")}, {UserID: 2, Amount: ptr("4.999")}},
			wantErr:      ErrInvalidAmount, wantUserID: 2,
		},
		{
			name: "percentage with four decimals", total: "10", splitType: SplitTypePercentage,
			participants: []SplitInput{{UserID: 1, Percentage: ptr("33.3333")}, {UserID: 2, Percentage: ptr("66.6667")}},
		},
		{
			name: "percentage with five decimals", total: "10", splitType: SplitTypePercentage,
			participants: []SplitInput{{UserID: 1, Percentage: ptr("33.33333")}, {UserID: 2, Percentage: ptr("66.66667")}},
			wantErr:      ErrInvalidAmount, wantUserID: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(dec(tt.total), tt.splitType, tt.participants, 1)
			if tt.wantErr == nil {
				require.NoError(t, err)
				for _, o := range got {
					assert.True(t, hasPlaces(o.Amount, 2), "participant %d owes %s", o.UserID, o.Amount)
				}
				return
			}

			assert.ErrorIs(t, err, tt.wantErr)
			verr, ok := AsValidationError(err)
			require.True(t, ok)
			assert.Equal(t, tt.wantUserID, verr.UserID)
		})
	}
}

func TestValidationError_InvalidAmountMessages(t *testing.T) {
	assert.Equal(t, "amount must be greater than zero, in whole cents and at most 9999999999.99", ErrInvalidAmount.Error())

	_, err := Compute(dec("10"), SplitTypePercentage, []SplitInput{{UserID: 3, Percentage: ptr("99.99999")}}, 3)
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "participant 3 has a percentage with more than 4 decimal places", verr.Error())
	assert.Equal(t, map[string]any{"user_id": int64(3), "split_type": "PERCENTAGE"}, verr.Details())

	_, err = Compute(dec("10"), SplitTypeExact, []SplitInput{{UserID: 4, Amount: ptr("10.001")}}, 4)
	verr, ok = AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, "participant 4 has an amount with more than 2 decimal places", verr.Error())
}

func TestCompute_ValidationErrors(t *testing.T) {
	two := []SplitInput{{UserID: 1, Percentage: ptr("50"), Amount: ptr("5")}, {UserID: 2, Percentage: ptr("50"), Amount: ptr("5")}}

	tests := []struct {
		name         string
		total        string
		splitType    SplitType
		participants []SplitInput
		payerID      int64
		wantErr      error
		check        func(t *testing.T, verr *ValidationError)
	}{
		{name: "zero total equal", total: "0", splitType: SplitTypeEqual, participants: two, payerID: 1, wantErr: ErrInvalidAmount},
		{name: "negative total exact", total: "-10", splitType: SplitTypeExact, participants: two, payerID: 1, wantErr: ErrInvalidAmount},
		{name: "zero total without participants", total: "0", splitType: SplitTypePercentage, payerID: 0, wantErr: ErrInvalidAmount},
		{name: "zero total with unsupported type", total: "0", splitType: SplitTypeShares, participants: two, payerID: 1, wantErr: ErrInvalidAmount},
		{name: "no participants", total: "10", splitType: SplitTypeEqual, payerID: 1, wantErr: ErrNoParticipantsSelected},
		{name: "no payer", total: "10", splitType: SplitTypeEqual, participants: two, payerID: 0, wantErr: ErrPayerNotSelected},
		{
			name: "shares not implemented", total: "10", splitType: SplitTypeShares, participants: two, payerID: 1,
			wantErr: ErrUnsupportedStrategy,
			check: func(t *testing.T, verr *ValidationError) {
				assert.Equal(t, SplitTypeShares, verr.SplitType)
			},
		},
		{name: "unknown type", total: "10", splitType: "BY_WEIGHT", participants: two, payerID: 1, wantErr: ErrUnsupportedStrategy},
		{
			name: "duplicate participant", total: "10", splitType: SplitTypeEqual,
			participants: []SplitInput{{UserID: 1}, {UserID: 2}, {UserID: 1}}, payerID: 1,
			wantErr: ErrDuplicateParticipant,
			check: func(t *testing.T, verr *ValidationError) {
				assert.Equal(t, int64(1), verr.UserID)
			},
		},
		{
			name: "missing participant id", total: "10", splitType: SplitTypeEqual,
			participants: []SplitInput{{UserID: 1}, {}}, payerID: 1,
			wantErr: ErrInvalidParticipant,
		},
		{
			name: "missing percentage", total: "10", splitType: SplitTypePercentage,
			participants: []SplitInput{{UserID: 1, Percentage: ptr("100")}, {UserID: 7}}, payerID: 1,
			wantErr: ErrMissingSplitInput,
			check: func(t *testing.T, verr *ValidationError) {
				assert.Equal(t, int64(7), verr.UserID)
				assert.Equal(t, "participant 7 is missing a percentage", verr.Error())
			},
		},
		{
			name: "missing exact amount", total: "10", splitType: SplitTypeExact,
			participants: []SplitInput{{UserID: 3}, {UserID: 1, Amount: ptr("10")}}, payerID: 1,
			wantErr: ErrMissingSplitInput,
			check: func(t *testing.T, verr *ValidationError) {
				assert.Equal(t, int64(3), verr.UserID)
				assert.Equal(t, "participant 3 is missing an exact amount", verr.Error())
			},
		},
		{
			name: "percentages over tolerance", total: "100", splitType: SplitTypePercentage,
			participants: []SplitInput{{UserID: 1, Percentage: ptr("50.01")}, {UserID: 2, Percentage: ptr("50.01")}}, payerID: 1,
			wantErr: ErrPercentageSumMismatch,
			check: func(t *testing.T, verr *ValidationError) {
				assert.Equal(t, "100.02", verr.Sum.String())
			},
		},
		{
			name: "percentages under", total: "100", splitType: SplitTypePercentage,
			participants: []SplitInput{{UserID: 1, Percentage: ptr("40")}, {UserID: 2, Percentage: ptr("50")}}, payerID: 1,
			wantErr: ErrPercentageSumMismatch,
		},
		{
			name: "negative percentage", total: "100", splitType: SplitTypePercentage,
			participants: []SplitInput{{UserID: 1, Percentage: ptr("110")}, {UserID: 2, Percentage: ptr("-10")}}, payerID: 1,
			wantErr: ErrNegativeSplitInput,
			check: func(t *testing.T, verr *ValidationError) {
				assert.Equal(t, int64(2), verr.UserID)
			},
		},
		{
			name: "exact short by a cent", total: "90.00", splitType: SplitTypeExact,
			participants: []SplitInput{{UserID: 1, Amount: ptr("30.00")}, {UserID: 2, Amount: ptr("59.99")}}, payerID: 1,
			wantErr: ErrExactSumMismatch,
			check: func(t *testing.T, verr *ValidationError) {
				assert.Equal(t, "89.99", verr.Sum.StringFixed(2))
				assert.Equal(t, "90.00", verr.Expected.StringFixed(2))
				assert.Equal(t, "exact amounts must add up to 90.00, got 89.99", verr.Error())
			},
		},
		{
			name: "negative exact amount", total: "10", splitType: SplitTypeExact,
			participants: []SplitInput{{UserID: 1, Amount: ptr("15")}, {UserID: 2, Amount: ptr("-5")}}, payerID: 1,
			wantErr: ErrNegativeSplitInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Compute(dec(tt.total), tt.splitType, tt.participants, tt.payerID)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.ErrorIs(t, err, tt.wantErr)

			verr, ok := AsValidationError(err)
			require.True(t, ok)
			if tt.check != nil {
				tt.check(t, verr)
			}
		})
	}
}

func TestCompute_Idempotent(t *testing.T) {
	inputs := []SplitInput{
		{UserID: 4, Percentage: ptr("20")},
		{UserID: 5, Percentage: ptr("30")},
		{UserID: 6, Percentage: ptr("50")},
	}
	snapshot := make([]SplitInput, len(inputs))
	copy(snapshot, inputs)

	first, err := Compute(dec("77.77"), SplitTypePercentage, inputs, 9)
	require.NoError(t, err)
	second, err := Compute(dec("77.77"), SplitTypePercentage, inputs, 9)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, snapshot, inputs, "inputs must not be modified")
}

func TestCalculator_ConcurrentUse(t *testing.T) {
	calc := NewCalculator(DefaultOptions())
	inputs := []SplitInput{{UserID: 1}, {UserID: 2}, {UserID: 3}}

	want, err := calc.Compute(dec("50"), SplitTypeEqual, inputs, 4)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]SplitOutput, 32)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = calc.Compute(dec("50"), SplitTypeEqual, inputs, 4)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		require.Len(t, got, len(want))
		for j := range want {
			assert.Equal(t, want[j].UserID, got[j].UserID)
			assert.True(t, want[j].Amount.Equal(got[j].Amount))
		}
	}
}

func TestValidationError_Is(t *testing.T) {
	err := fmt.Errorf("create expense: %w", &ValidationError{Kind: KindPayerNotSelected})

	assert.ErrorIs(t, err, ErrPayerNotSelected)
	assert.False(t, errors.Is(err, ErrInvalidAmount))

	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, KindPayerNotSelected, verr.Kind)

	_, ok = AsValidationError(errors.New("boom"))
	assert.False(t, ok)
}

func TestParseAmount(t *testing.T) {
	d, err := ParseAmount("12.50")
	require.NoError(t, err)
	assert.Equal(t, "12.50", d.StringFixed(2))

	for _, in := range []string{"", "abc", "0", "-3", "1e", "NaN", "0.004", "12.345", "10000000000"} {
		_, err := ParseAmount(in)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %q", in)
	}
}

func TestAmountFromFloat(t *testing.T) {
	d, err := AmountFromFloat(19.99)
	require.NoError(t, err)
	assert.Equal(t, "19.99", d.StringFixed(2))

	for _, f := range []float64{0, -1, nan(), inf()} {
		_, err := AmountFromFloat(f)
		assert.ErrorIs(t, err, ErrInvalidAmount)
	}
}

func TestParseSplitType(t *testing.T) {
	assert.Equal(t, SplitTypeEqual, ParseSplitType("equal"))
	assert.Equal(t, SplitTypeEqual, ParseSplitType("EVEN"))
	assert.Equal(t, SplitTypePercentage, ParseSplitType(" percentage "))
	assert.Equal(t, SplitTypeShares, ParseSplitType("Shares"))

	_, err := NewSplitStrategyFactory(DefaultOptions()).CreateFromString("shares")
	assert.ErrorIs(t, err, ErrUnsupportedStrategy)

	s, err := NewSplitStrategyFactory(DefaultOptions()).CreateFromString("exact")
	require.NoError(t, err)
	assert.Equal(t, SplitTypeExact, s.Type())
}

func TestValidationError_Details(t *testing.T) {
	_, err := Compute(dec("90"), SplitTypeExact, []SplitInput{
		{UserID: 1, Amount: ptr("30")},
		{UserID: 2, Amount: ptr("59.99")},
	}, 1)
	verr, ok := AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"sum": "89.99", "expected": "90.00"}, verr.Details())

	_, err = Compute(dec("90"), SplitTypePercentage, []SplitInput{{UserID: 4}}, 4)
	verr, ok = AsValidationError(err)
	require.True(t, ok)
	assert.Equal(t, map[string]any{"user_id": int64(4), "split_type": "PERCENTAGE"}, verr.Details())

	assert.Nil(t, ErrInvalidAmount.Details())
	assert.Equal(t, "payer 9 is not a known user", (&ValidationError{Kind: KindPayerNotSelected, UserID: 9}).Error())
}
