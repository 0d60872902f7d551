package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fkhayef/expensesplit/internal/expense/split"
)

type outputRow struct {
	ID     int64       `json:"id"`
	Amount json.Number `json:"amount"`
}

func computeCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compute",
		Short: "Validate and compute a split",
		Long: `Compute each participant's share of a total.

Participants are given as ID or ID=VALUE. VALUE is the percentage for
PERCENTAGE splits and the amount for EXACT splits; it is ignored for EQUAL.

  splitcalc compute --total 90 --type EXACT --payer 1 -p 1=30 -p 2=60`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runCompute(cmd, v)
		},
	}

	cmd.Flags().String("total", "", "expense total, e.g. 90 or 12.50")
	cmd.Flags().String("type", string(split.SplitTypeEqual), "split type (EQUAL, EXACT, PERCENTAGE)")
	cmd.Flags().Int64("payer", 0, "user ID of the payer")
	cmd.Flags().StringArrayP("participant", "p", nil, "participant as ID or ID=VALUE (repeatable)")
	cmd.Flags().String("exact-tolerance", split.DefaultOptions().ExactTolerance.String(), "allowed |sum - total| for EXACT splits, exclusive")
	cmd.Flags().Bool("distribute-remainder", false, "give leftover cents of an EQUAL split to the first participants")
	cmd.Flags().Bool("pretty", false, "indent the JSON output")

	_ = v.BindPFlags(cmd.Flags())

	return cmd
}

func runCompute(cmd *cobra.Command, v *viper.Viper) error {
	total, err := split.ParseAmount(v.GetString("total"))
	if err != nil {
		return describe(err)
	}

	opts := split.DefaultOptions()
	opts.DistributeRemainder = v.GetBool("distribute-remainder")
	opts.ExactTolerance, err = decimal.NewFromString(v.GetString("exact-tolerance"))
	if err != nil || opts.ExactTolerance.IsNegative() {
		return fmt.Errorf("invalid --exact-tolerance %q", v.GetString("exact-tolerance"))
	}

	strategy, err := split.NewSplitStrategyFactory(opts).CreateFromString(v.GetString("type"))
	if err != nil {
		return describe(err)
	}
	splitType := strategy.Type()

	// SPLITCALC_PARTICIPANT takes a space separated list
	raw := v.GetStringSlice("participant")
	inputs := make([]split.SplitInput, 0, len(raw))
	for _, s := range raw {
		in, err := parseParticipant(s, splitType)
		if err != nil {
			return err
		}
		inputs = append(inputs, in)
	}

	payerID := v.GetInt64("payer")

	slog.Debug("computing split",
		"total", total.String(),
		"split_type", splitType,
		"participants", len(inputs),
		"payer", payerID)

	outputs, err := split.NewCalculator(opts).Compute(total, splitType, inputs, payerID)
	if err != nil {
		return describe(err)
	}

	rows := make([]outputRow, len(outputs))
	for i, o := range outputs {
		rows[i] = outputRow{ID: o.UserID, Amount: json.Number(o.Amount.StringFixed(2))}
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	if v.GetBool("pretty") {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(rows)
}

// parseParticipant reads "ID" or "ID=VALUE".
func parseParticipant(s string, splitType split.SplitType) (split.SplitInput, error) {
	idPart, valuePart, hasValue := strings.Cut(strings.TrimSpace(s), "=")

	id, err := strconv.ParseInt(strings.TrimSpace(idPart), 10, 64)
	if err != nil {
		return split.SplitInput{}, fmt.Errorf("invalid participant %q: id must be an integer", s)
	}
	in := split.SplitInput{UserID: id}
	if !hasValue {
		return in, nil
	}

	value, err := decimal.NewFromString(strings.TrimSpace(valuePart))
	if err != nil {
		return split.SplitInput{}, fmt.Errorf("invalid participant %q: value must be a number", s)
	}

	switch splitType {
	case split.SplitTypePercentage:
		in.Percentage = &value
	case split.SplitTypeExact:
		in.Amount = &value
	}
	return in, nil
}

// describe prefixes validation errors with their kind.
func describe(err error) error {
	if verr, ok := split.AsValidationError(err); ok {
		return fmt.Errorf("%s: %w", verr.Kind, err)
	}
	return err
}
