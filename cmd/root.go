package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chrisdamba/foodadmin/internal/api"
)

func newRootCmd(app *App) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "foodadmin",
		Short: "Administers a food delivery platform from the terminal",
		Long: `foodadmin is a CLI for the operators of a food delivery platform. It lists, filters and
edits orders, drivers, customers, driver documents, payments, restaurants and menus through the
platform's admin REST API, and can run a local sandbox of that API seeded with fake data.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.setup()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&app.cfgFile, "config", "", "config file (default is $HOME/.foodadmin.yaml)")
	flags.String("api-url", "http://localhost:5000", "base URL of the admin API")
	flags.String("log-level", "info", "log level: debug, info, warn or error")
	flags.BoolP("yes", "y", false, "answer yes to every confirmation")
	flags.StringVarP(&app.output, "output", "o", "table", "output format: table or json")

	app.v.BindPFlag("api_base_url", flags.Lookup("api-url"))
	app.v.BindPFlag("log_level", flags.Lookup("log-level"))
	app.v.BindPFlag("assume_yes", flags.Lookup("yes"))

	rootCmd.AddCommand(
		loginCmd(app),
		registerCmd(app),
		logoutCmd(app),
		whoamiCmd(app),
		dashboardCmd(app),
		ordersCmd(app),
		driversCmd(app),
		customersCmd(app),
		documentsCmd(app),
		paymentsCmd(app),
		restaurantsCmd(app),
		menuCmd(app),
		sandboxCmd(app),
		auditCmd(app),
	)
	return rootCmd
}

// run executes one command line and returns the process exit code.
func run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	app := newApp(in, out, errOut)
	root := newRootCmd(app)
	root.SetArgs(args)
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)

	err := root.ExecuteContext(ctx)
	if cerr := app.close(); cerr != nil && app.log != nil {
		app.log.Warn("shutdown", "error", cerr)
	}

	var shown *reportedError
	switch {
	case err == nil:
		return 0
	case errors.Is(err, api.ErrNoSession):
		fmt.Fprintln(errOut, "Not logged in. Run `foodadmin login` first.")
	case errors.As(err, &shown):
	default:
		fmt.Fprintln(errOut, "Error:", err)
	}
	return 1
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
