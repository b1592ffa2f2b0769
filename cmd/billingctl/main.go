// billingctl recomputes reservation billing from the command line.
//
// Usage:
//
//	billingctl compute --file inputs.json [--json]
//	billingctl reconcile --server URL --token T --reservation ID [--fix] [--json]
//	billingctl token --secret S --user ID [--role admin]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"fablab-billing/internal/domain/billing"
	"fablab-billing/internal/domain/user"
	"fablab-billing/internal/infra/billingclient"
	"fablab-billing/internal/pkg/config"
	"fablab-billing/internal/pkg/jwt"

	"github.com/google/uuid"
	"github.com/urfave/cli/v2"
)

const version = "0.1.0"

func main() {
	if err := newApp(os.Stdout).Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newApp(out io.Writer) *cli.App {
	return &cli.App{
		Name:    "billingctl",
		Usage:   "Recompute and reconcile FabLab reservation billing",
		Version: version,
		Writer:  out,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "default-unit",
				Value:   "hour",
				Usage:   "Pricing unit for listed costs without a rule (minute, hour, day)",
				EnvVars: []string{"BILLING_DEFAULT_UNIT"},
			},
			&cli.StringFlag{
				Name:    "default-price-per-min",
				Value:   "0",
				Usage:   "Per-minute price for lines without any cost",
				EnvVars: []string{"BILLING_DEFAULT_PRICE_PER_MIN"},
			},
		},
		Commands: []*cli.Command{
			{
				Name:  "compute",
				Usage: "Recompute billing from an inputs document",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the inputs JSON document (- for stdin)",
						Required: true,
					},
					&cli.BoolFlag{Name: "json", Usage: "Output JSON"},
				},
				Action: runCompute,
			},
			{
				Name:  "reconcile",
				Usage: "Fetch a reservation's inputs from the server and reconcile its stored total",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "server",
						Aliases: []string{"s"},
						Value:   "http://localhost:8080",
						Usage:   "Billing API base URL",
						EnvVars: []string{"BILLING_SERVER"},
					},
					&cli.StringFlag{
						Name:     "token",
						Aliases:  []string{"t"},
						Usage:    "Bearer token",
						EnvVars:  []string{"BILLING_TOKEN"},
						Required: true,
					},
					&cli.StringFlag{
						Name:     "reservation",
						Aliases:  []string{"r"},
						Usage:    "Reservation id",
						Required: true,
					},
					&cli.BoolFlag{Name: "fix", Usage: "Write the correction back when totals differ"},
					&cli.BoolFlag{Name: "json", Usage: "Output JSON"},
					&cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, Usage: "Request timeout"},
				},
				Action: runReconcile,
			},
			{
				Name:  "token",
				Usage: "Issue a bearer token for local testing",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "secret",
						Usage:    "JWT signing secret",
						EnvVars:  []string{"JWT_SECRET"},
						Required: true,
					},
					&cli.StringFlag{Name: "user", Usage: "User id (random when empty)"},
					&cli.StringFlag{Name: "role", Value: string(user.RoleAdmin), Usage: "Role: user, staff or admin"},
					&cli.DurationFlag{Name: "duration", Value: 24 * time.Hour, Usage: "Token lifetime"},
				},
				Action: runToken,
			},
		},
	}
}

func engineConfig(c *cli.Context) billing.Config {
	return config.BillingConfig{
		DefaultUnit:        c.String("default-unit"),
		DefaultPricePerMin: c.String("default-price-per-min"),
	}.ToEngine()
}

func runCompute(c *cli.Context) error {
	in, err := readInputs(c.String("file"), os.Stdin)
	if err != nil {
		return err
	}

	state := billing.Recompute(engineConfig(c), in)
	if c.Bool("json") {
		return writeJSON(c.App.Writer, stateReport(in, state))
	}
	printState(c.App.Writer, in, state)
	return nil
}

func runReconcile(c *cli.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), c.Duration("timeout"))
	defer cancel()

	client := billingclient.New(c.String("server"), c.String("token"))
	in, err := client.FetchInputs(ctx, c.String("reservation"))
	if err != nil {
		return fmt.Errorf("failed to fetch billing inputs: %w", err)
	}

	var writer billing.Writer
	if c.Bool("fix") {
		writer = client
	}
	outcome := billing.Refresh(ctx, engineConfig(c), in, writer, billing.RefreshOptions{CanFix: c.Bool("fix")})

	if c.Bool("json") {
		return writeJSON(c.App.Writer, refreshReport(in, outcome))
	}
	printState(c.App.Writer, in, outcome.Local)
	fmt.Fprintf(c.App.Writer, "\n%s\n", outcome.Message)
	if outcome.Remote == billing.SyncFailed {
		return fmt.Errorf("correction was not saved: %w", outcome.Err)
	}
	return nil
}

func runToken(c *cli.Context) error {
	role, err := user.NewRole(c.String("role"))
	if err != nil {
		return fmt.Errorf("invalid role %q: %w", c.String("role"), err)
	}

	userID := uuid.New()
	if raw := c.String("user"); raw != "" {
		if userID, err = uuid.Parse(raw); err != nil {
			return fmt.Errorf("invalid user id %q: %w", raw, err)
		}
	}

	token, err := jwt.NewService(c.String("secret"), c.Duration("duration")).GenerateToken(userID, role)
	if err != nil {
		return fmt.Errorf("failed to sign token: %w", err)
	}
	fmt.Fprintln(c.App.Writer, token)
	return nil
}

func readInputs(path string, stdin io.Reader) (billing.Inputs, error) {
	var r io.Reader
	if path == "-" {
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return billing.Inputs{}, fmt.Errorf("failed to open inputs: %w", err)
		}
		defer f.Close()
		r = f
	}

	var in billing.Inputs
	if err := json.NewDecoder(r).Decode(&in); err != nil {
		return billing.Inputs{}, fmt.Errorf("failed to decode inputs: %w", err)
	}
	return in, nil
}
