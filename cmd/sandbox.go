package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/chrisdamba/foodadmin/internal/factories"
	"github.com/chrisdamba/foodadmin/internal/sandbox"
)

func sandboxCmd(a *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sandbox",
		Short: "Serve a local copy of the admin API filled with generated data",
		Long: `sandbox runs an in-memory implementation of the admin API on --addr. It is seeded from
--seed with fake drivers, customers, restaurants, menus, orders, documents and payments, and accepts
the configured admin credentials. Point --api-url at it to try every command without a backend.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.cfg.Sandbox
			sizes := sandbox.Sizes{
				Drivers:     cfg.Drivers,
				Customers:   cfg.Customers,
				Restaurants: cfg.Restaurants,
				Orders:      cfg.Orders,
			}

			bar := progressbar.NewOptions(sizes.Drivers+sizes.Customers+sizes.Restaurants+sizes.Orders,
				progressbar.OptionSetWriter(a.errOut),
				progressbar.OptionSetDescription("seeding sandbox"),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
			store := sandbox.NewStore()
			store.Seed(factories.New(cfg.Seed, time.Now()), sizes, func() { _ = bar.Add(1) })
			_ = bar.Finish()

			srv, err := sandbox.New(store, sandbox.Config{
				JWTSecret:  cfg.JWTSecret,
				AdminEmail: cfg.AdminEmail,
				AdminPass:  cfg.AdminPass,
				Logger:     a.log,
			})
			if err != nil {
				return err
			}
			return serve(cmd.Context(), a, &http.Server{
				Addr:              cfg.Addr,
				Handler:           srv.Handler(),
				ReadHeaderTimeout: 10 * time.Second,
			})
		},
	}

	flags := cmd.Flags()
	flags.String("addr", "127.0.0.1:5000", "address to listen on")
	flags.Int64("seed", 42, "random seed for the generated data")
	flags.Int("drivers", 25, "number of drivers to generate")
	flags.Int("customers", 40, "number of customers to generate")
	flags.Int("restaurants", 15, "number of restaurants to generate")
	flags.Int("orders", 60, "number of orders to generate")
	for _, name := range []string{"addr", "seed", "drivers", "customers", "restaurants", "orders"} {
		a.v.BindPFlag("sandbox."+name, flags.Lookup(name))
	}
	return cmd
}

// serve runs hs until ctx is cancelled, then drains it.
func serve(ctx context.Context, a *App, hs *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- hs.ListenAndServe()
	}()
	a.log.Info("sandbox listening", "addr", hs.Addr, "admin", a.cfg.Sandbox.AdminEmail)
	fmt.Fprintf(a.out, "Sandbox API on http://%s (log in as %s / %s). Press Ctrl+C to stop.\n",
		hs.Addr, a.cfg.Sandbox.AdminEmail, a.cfg.Sandbox.AdminPass)

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := hs.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("sandbox shutdown: %w", err)
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	a.log.Info("sandbox stopped")
	return nil
}
