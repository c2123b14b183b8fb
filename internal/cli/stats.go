package cli

import (
	"fmt"
	"io"

	"github.com/amp-labs/amp-query/internal/records"
	"github.com/amp-labs/amp-query/query"
	"github.com/spf13/cobra"
)

// Stats summarizes the numeric values of one field.
type Stats struct {
	Field   string  `json:"field"`
	Count   int     `json:"count"`
	Sum     float64 `json:"sum"`
	Average float64 `json:"average"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
}

func newStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats FIELD FILE|-",
		Short: "Summarize the numeric values of a field",
		Long: `Count, sum, average, minimum and maximum of FIELD over the records where it
holds a number. Records without a numeric FIELD are ignored.`,
		Args: exactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := loadInput(cmd, args[1])
			if err != nil {
				return err
			}

			stats, err := FieldStats(recs, args[0])
			if err != nil {
				return queryError(fmt.Errorf("no numeric values for %q: %w", args[0], err))
			}

			return rootOpts.formatter(cmd).Success(stats, func(w io.Writer) error {
				_, err := fmt.Fprintf(w, "count=%d sum=%g average=%g min=%g max=%g\n",
					stats.Count, stats.Sum, stats.Average, stats.Min, stats.Max)

				return err
			})
		},
	}
}

// FieldStats aggregates the numeric values found at path. It fails with
// ErrEmptySequence when no record has one.
func FieldStats(recs []records.Record, path string) (Stats, error) {
	// Numbers decode as int, int64, uint64 or float64 depending on size.
	// records.Number folds them all, matching how --where and --order-by
	// see them.
	nums := query.SelectMany(query.From(recs), func(r records.Record) []float64 {
		v, _ := r.Field(path)
		if n, ok := records.Number(v); ok {
			return []float64{n}
		}

		return nil
	})

	out := Stats{Field: path}

	var err error

	if out.Average, err = query.Average(nums); err != nil {
		return out, err
	}

	if out.Count, err = nums.Count(); err != nil {
		return out, err
	}

	if out.Sum, err = query.Sum(nums); err != nil {
		return out, err
	}

	if out.Min, err = query.Min(nums); err != nil {
		return out, err
	}

	out.Max, err = query.Max(nums)

	return out, err
}
