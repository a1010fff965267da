package cmd

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/chrisdamba/foodadmin/internal/api"
	"github.com/chrisdamba/foodadmin/internal/models"
)

const chartWidth = 40

func dashboardCmd(a *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show platform statistics, the weekly delivery chart and suggestions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			// each panel degrades on its own
			stats, err := a.client.DashboardStats(ctx)
			if err != nil {
				if errors.Is(err, api.ErrNoSession) {
					return err
				}
				a.log.Error("dashboard stats fetch failed", "error", err)
			}
			points, err := a.client.ChartData(ctx)
			if err != nil {
				a.log.Error("chart data fetch failed", "error", err)
			}
			suggestions, err := a.client.Suggestions(ctx)
			if err != nil {
				a.log.Error("suggestions fetch failed", "error", err)
			}

			if a.output == "json" {
				return writeJSON(a.out, map[string]any{
					"stats":       stats,
					"chartData":   points,
					"suggestions": suggestions,
				})
			}
			if err := writeStats(a.out, stats); err != nil {
				return err
			}
			fmt.Fprintln(a.out)
			writeChart(a.out, points)
			fmt.Fprintln(a.out)
			writeSuggestions(a.out, suggestions)
			return nil
		},
	}
}

func writeStats(w io.Writer, s models.DashboardStats) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Active drivers\t%d\t%s\n", s.ActiveDrivers, models.FormatChange(s.ActiveDriversChange))
	fmt.Fprintf(tw, "Active orders\t%d\t%s\n", s.ActiveOrders, models.FormatChange(s.ActiveOrdersChange))
	fmt.Fprintf(tw, "Total deliveries\t%d\t%s\n", s.TotalDeliveries, models.FormatChange(s.TotalDeliveriesChange))
	fmt.Fprintf(tw, "Ongoing deliveries\t%d\t%.1f%% from yesterday\n", s.OngoingDeliveries, math.Abs(s.OngoingDeliveriesChange))
	return tw.Flush()
}

// writeChart draws one bar per day scaled to the busiest day.
func writeChart(w io.Writer, points []models.ChartPoint) {
	fmt.Fprintln(w, "Delivered order value, last 7 days")
	if len(points) == 0 {
		fmt.Fprintln(w, "  no data")
		return
	}
	var peak float64
	for _, p := range points {
		peak = max(peak, p.Value)
	}
	for _, p := range points {
		n := 0
		if peak > 0 {
			n = int(p.Value / peak * chartWidth)
		}
		fmt.Fprintf(w, "  %-10s %-*s %s\n", p.Date, chartWidth, strings.Repeat("#", n), models.FormatCurrency(p.Value))
	}
}

func writeSuggestions(w io.Writer, suggestions []models.Suggestion) {
	fmt.Fprintln(w, "Suggestions")
	if len(suggestions) == 0 {
		fmt.Fprintln(w, "  none")
		return
	}
	for _, s := range suggestions {
		var marker string
		switch s.Priority {
		case "high":
			marker = "(!!) "
		case "medium":
			marker = "(!) "
		}
		fmt.Fprintf(w, "  %s%s\n      %s\n", marker, s.Title, s.Description)
	}
}
