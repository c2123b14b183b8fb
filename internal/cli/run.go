package cli

import (
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/amp-labs/amp-query/compare"
	qerrors "github.com/amp-labs/amp-query/errors"
	"github.com/amp-labs/amp-query/internal/records"
	"github.com/amp-labs/amp-query/logger"
	"github.com/amp-labs/amp-query/query"
	"github.com/spf13/cobra"
)

// QueryOptions holds the flags of the root query command. They are applied
// in a fixed order: where, distinct-by, order-by, skip, take, then select,
// count or first.
type QueryOptions struct {
	Where      []string
	OrderBy    []string
	DistinctBy string
	Skip       int
	Take       int
	Select     []string
	Count      bool
	First      bool

	takeSet bool
}

func (q *QueryOptions) register(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringArrayVar(&q.Where, "where", nil, "keep records matching FIELD(=|!=|<|<=|>|>=)VALUE; repeatable, all must match")
	flags.StringArrayVar(&q.OrderBy, "order-by", nil, "sort by FIELD, or -FIELD for descending; repeat for tie-breakers")
	flags.StringVar(&q.DistinctBy, "distinct-by", "", "keep the first record for each value of FIELD")
	flags.IntVar(&q.Skip, "skip", 0, "drop the first N records")
	flags.IntVar(&q.Take, "take", 0, "keep at most N records")
	flags.StringSliceVar(&q.Select, "select", nil, "comma-separated fields to output")
	flags.BoolVar(&q.Count, "count", false, "print the number of matching records")
	flags.BoolVar(&q.First, "first", false, "print only the first matching record")

	cmd.MarkFlagsMutuallyExclusive("count", "first")
}

// Build turns the options into a query over recs. Only malformed --where
// expressions fail here; operator errors such as a negative --take travel
// with the returned sequence.
func (q *QueryOptions) Build(recs []records.Record) (query.Sequence[records.Record], error) {
	seq := query.From(recs)

	for _, expr := range q.Where {
		cond, err := records.ParseCondition(expr)
		if err != nil {
			return seq, err
		}

		seq = seq.Where(cond.Match)
	}

	if q.DistinctBy != "" {
		seq = query.DistinctBy(seq, records.KeyOf(q.DistinctBy))
	}

	if len(q.OrderBy) > 0 {
		ordered := query.OrderByFunc(seq, fieldOrder(q.OrderBy[0]))
		for _, key := range q.OrderBy[1:] {
			ordered = ordered.ThenByFunc(fieldOrder(key))
		}

		seq = ordered.Sequence
	}

	seq = seq.Skip(q.Skip)

	if q.takeSet {
		seq = seq.Take(q.Take)
	}

	if len(q.Select) > 0 {
		seq = query.Select(seq, func(r records.Record) records.Record { return r.Project(q.Select) })
	}

	return seq, nil
}

func fieldOrder(key string) compare.Comparator[records.Record] {
	if path, desc := strings.CutPrefix(key, "-"); desc {
		return compare.Reverse(records.ByField(path))
	}

	return records.ByField(key)
}

func loadInput(cmd *cobra.Command, path string) ([]records.Record, error) {
	recs, err := records.LoadFile(path, cmd.InOrStdin())
	if err != nil {
		return nil, commandError(err)
	}

	logger.Get(cmd.Context()).Debug("loaded input", "path", path, "records", len(recs))

	return recs, nil
}

// queryError maps operator failures to exit codes: bad arguments are the
// caller's mistake, anything else is a query that found nothing usable.
func queryError(err error) error {
	if errors.Is(err, qerrors.ErrInvalidArgument) {
		return commandError(err)
	}

	return err
}

func runQuery(cmd *cobra.Command, opts *RootOptions, q *QueryOptions, path string) error {
	q.takeSet = cmd.Flags().Changed("take")

	recs, err := loadInput(cmd, path)
	if err != nil {
		return err
	}

	seq, err := q.Build(recs)
	if err != nil {
		return commandError(err)
	}

	out := opts.formatter(cmd)

	switch {
	case q.Count:
		n, err := seq.Count()
		if err != nil {
			return queryError(err)
		}

		return out.Success(n, nil)
	case q.First:
		rec, err := seq.First()
		if err != nil {
			return queryError(err)
		}

		return out.Success(rec, func(w io.Writer) error { return writeRecords(w, []records.Record{rec}) })
	default:
		rows, err := seq.ToSlice()
		if err != nil {
			return queryError(err)
		}

		return out.Success(rows, func(w io.Writer) error {
			if _, err := io.WriteString(w, BannerAutoWidth(fmt.Sprintf("%d of %d records", len(rows), len(recs)), AlignCenter)); err != nil {
				return err
			}

			return writeRecords(w, rows)
		})
	}
}

// writeRecords prints one record per line as key=value pairs, keys in
// natural order.
func writeRecords(w io.Writer, rows []records.Record) error {
	for _, rec := range rows {
		keys := query.OrderByFunc(query.FromSeq(maps.Keys(rec)), compare.Natural)

		pairs, err := query.Select(keys.Sequence, func(k string) string {
			return fmt.Sprintf("%s=%v", k, rec[k])
		}).ToSlice()
		if err != nil {
			return err
		}

		if _, err := fmt.Fprintln(w, strings.Join(pairs, " ")); err != nil {
			return err
		}
	}

	return nil
}
