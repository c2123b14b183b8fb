package cli

import (
	"fmt"
	"io"
	"maps"
	"slices"

	"github.com/amp-labs/amp-query/compare"
	"github.com/amp-labs/amp-query/internal/records"
	"github.com/amp-labs/amp-query/query"
	"github.com/spf13/cobra"
)

// FieldUsage reports how many records carry a top-level field.
type FieldUsage struct {
	Name    string `json:"name"`
	Records int    `json:"records"`
}

func newFieldsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "fields FILE|-",
		Short: "List the top-level fields used by the records",
		Args:  exactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recs, err := loadInput(cmd, args[0])
			if err != nil {
				return err
			}

			usage, err := FieldUsages(recs)
			if err != nil {
				return queryError(err)
			}

			return rootOpts.formatter(cmd).Success(usage, func(w io.Writer) error {
				for _, u := range usage {
					if _, err := fmt.Fprintf(w, "%s\t%d\n", u.Name, u.Records); err != nil {
						return err
					}
				}

				return nil
			})
		},
	}
}

// FieldUsages counts, for every top-level field name, the records that
// have it. Names are returned in natural order.
func FieldUsages(recs []records.Record) ([]FieldUsage, error) {
	names := query.SelectMany(query.From(recs), func(r records.Record) []string {
		return slices.Collect(maps.Keys(r))
	})

	groups := query.OrderByFunc(query.GroupBy(names, func(n string) string { return n }),
		compare.By(func(g query.Group[string, string]) string { return g.Key }, compare.Natural))

	return query.Select(groups.Sequence, func(g query.Group[string, string]) FieldUsage {
		n, _ := g.Items.Count()

		return FieldUsage{Name: g.Key, Records: n}
	}).ToSlice()
}
