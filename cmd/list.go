package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/export"
	"github.com/chrisdamba/foodadmin/internal/listing"
)

// autoExport is the --export value used when the flag is given without a
// file name.
const autoExport = "auto"

type listFlags struct {
	status string
	search string
	facets map[string]*string
	page   int
	export string
}

func bindListFlags[T any](cmd *cobra.Command, spec listing.Spec[T]) *listFlags {
	f := &listFlags{facets: make(map[string]*string, len(spec.Facets))}
	flags := cmd.Flags()
	flags.StringVar(&f.status, "status", listing.All, "filter by status: "+strings.Join(spec.Options(), ", "))
	flags.StringVarP(&f.search, "search", "s", "", "show only records with a field containing this text")
	for _, facet := range spec.Facets {
		f.facets[facet.Name] = flags.String(facet.Name, listing.All,
			fmt.Sprintf("filter by %s: all, %s", facet.Name, strings.Join(facet.Values, ", ")))
	}
	flags.StringVar(&f.export, "export", "", "also write the visible rows to a .csv, .json or .parquet file")
	flags.Lookup("export").NoOptDefVal = autoExport
	return f
}

func (f *listFlags) query() listing.Query {
	q := listing.Query{Status: f.status, Search: f.search, Page: f.page}
	if len(f.facets) > 0 {
		q.Facets = make(map[string]string, len(f.facets))
		for name, v := range f.facets {
			q.Facets[name] = *v
		}
	}
	return q
}

// showList fetches the screen's list and prints its visible view. A failed
// fetch still prints the emptied list after the error.
func showList[T any](ctx context.Context, a *App, screen *listing.Screen[T], f *listFlags) error {
	defer screen.Close()
	spec := screen.Spec()
	q := f.query()
	if err := spec.Validate(q); err != nil {
		return err
	}
	screen.SetQuery(q)

	loadErr := screen.Refresh(ctx)
	if errors.Is(loadErr, api.ErrNoSession) {
		return loadErr
	}
	if loadErr != nil {
		a.log.Error("list fetch failed", "entity", spec.Entity, "error", loadErr)
		a.notifier().Failure(api.Message(loadErr, fmt.Sprintf("Error fetching %ss", spec.Entity)))
	}

	snap := screen.Snapshot()
	if err := renderList(a, spec, snap); err != nil {
		return err
	}
	if f.export != "" {
		if err := exportRows(ctx, a, spec, snap.Visible, f.export); err != nil {
			return err
		}
	}
	if loadErr != nil {
		return &reportedError{loadErr}
	}
	return nil
}

func renderList[T any](a *App, spec listing.Spec[T], snap listing.Snapshot[T]) error {
	if a.output == "json" {
		return writeJSON(a.out, snap.Visible)
	}
	fmt.Fprintln(a.out, buttonLine(snap.Buttons))
	fmt.Fprintln(a.out)
	if len(snap.Visible) == 0 {
		fmt.Fprintf(a.out, "No %ss found\n", spec.Entity)
		return nil
	}
	if err := writeTable(a.out, export.Tabulate(spec, snap.Visible)); err != nil {
		return err
	}
	if snap.TotalPages > 1 {
		fmt.Fprintf(a.out, "\nPage %d of %d\n", max(snap.Query.Page, 1), snap.TotalPages)
	}
	return nil
}

func exportRows[T any](ctx context.Context, a *App, spec listing.Spec[T], rows []T, name string) error {
	if name == autoExport {
		name = ""
	}
	e, err := a.exporterFor(ctx)
	if err != nil {
		return err
	}
	where, err := e.Export(ctx, name, export.Tabulate(spec, rows))
	if err != nil {
		return fmt.Errorf("export %ss: %w", spec.Entity, err)
	}
	fmt.Fprintf(a.errOut, "Exported %d %s(s) to %s\n", len(rows), spec.Entity, where)
	return nil
}

// buttonLine renders the filter buttons with the current one in brackets.
func buttonLine(buttons []listing.Button) string {
	labels := make([]string, len(buttons))
	for i, b := range buttons {
		if b.Active {
			labels[i] = "[" + b.Label + "]"
		} else {
			labels[i] = b.Label
		}
	}
	return strings.Join(labels, "  ")
}

var cellReplacer = strings.NewReplacer("\t", " ", "\r", " ", "\n", " ")

func writeTable(w io.Writer, t export.Table) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, strings.Join(t.Headers, "\t"))
	for _, row := range t.Rows {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = cellReplacer.Replace(c)
		}
		fmt.Fprintln(tw, strings.Join(cells, "\t"))
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// fetch loads the screen for a command that acts on one of its records.
func fetch[T any](ctx context.Context, screen *listing.Screen[T]) error {
	if err := screen.Refresh(ctx); err != nil {
		if errors.Is(err, api.ErrNoSession) {
			return err
		}
		return fmt.Errorf("fetch %ss: %s", screen.Spec().Entity, api.Message(err, err.Error()))
	}
	return nil
}

// find loads the screen and returns the record with the given id.
func find[T any](ctx context.Context, screen *listing.Screen[T], id string) (T, error) {
	var zero T
	if err := fetch(ctx, screen); err != nil {
		return zero, err
	}
	r, ok := screen.Find(id)
	if !ok {
		return zero, fmt.Errorf("%s %s not found", screen.Spec().Entity, id)
	}
	return r, nil
}

// showCounts prints the refreshed per-status counts after a mutation.
func showCounts[T any](a *App, screen *listing.Screen[T]) {
	if a.output != "table" {
		return
	}
	snap := screen.Snapshot()
	if snap.State == listing.Loaded {
		fmt.Fprintln(a.out, buttonLine(snap.Buttons))
	}
}
