package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"time"

	"targetrack/internal/client"
	"targetrack/internal/config"
	"targetrack/internal/consistency"
	"targetrack/internal/logger"
	"targetrack/internal/report"
)

const usage = `usage: targetctl <command> [args]

commands:
  report [year]                                       print the dashboard
  watch [interval]                                    reprint the dashboard every interval (default 30s)
  edit <target-id> <product-id> <nominal> [achieved]  change a target and its achievement
  delete <target-id>                                  delete a target and its achievement`

func main() {
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(os.Args[1:]); err != nil {
		logger.Get().Errorw("targetctl failed", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 1 {
		return errors.New(usage)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	api := client.New(cfg.APIBaseURL, &http.Client{Timeout: cfg.RequestTimeout})

	switch args[0] {
	case "report":
		year := cfg.ReportYear
		if len(args) > 1 {
			if year, err = strconv.Atoi(args[1]); err != nil {
				return fmt.Errorf("invalid year %q", args[1])
			}
		}
		d, err := report.Load(ctx, api, year, cfg.ReportTopN)
		if err != nil {
			return err
		}
		return report.Render(os.Stdout, d)

	case "watch":
		interval := 30 * time.Second
		if len(args) > 1 {
			if interval, err = time.ParseDuration(args[1]); err != nil || interval <= 0 {
				return fmt.Errorf("invalid interval %q", args[1])
			}
		}
		return watch(ctx, api, cfg, interval)

	case "edit":
		if len(args) < 4 {
			return errors.New(usage)
		}
		return edit(ctx, api, args[1], args[2], args[3], args[4:])

	case "delete":
		if len(args) < 2 {
			return errors.New(usage)
		}
		out := consistency.NewGuard(api).DeleteTarget(ctx, args[1])
		return reportOutcome(out)

	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}
}

// watch redraws the dashboard on every tick until interrupted.
func watch(ctx context.Context, api *client.Client, cfg *config.Config, interval time.Duration) error {
	log := logger.Named("watch")
	w := &report.Watcher{
		Load: func(ctx context.Context) (*report.Dashboard, error) {
			return report.Load(ctx, api, cfg.ReportYear, cfg.ReportTopN)
		},
		Out:      os.Stdout,
		Interval: interval,
		OnError: func(err error) {
			log.Warnw("refresh failed", "error", err)
		},
	}
	return w.Run(ctx)
}

func edit(ctx context.Context, api *client.Client, targetID, productID, nominalArg string, rest []string) error {
	nominal, err := report.ParseRupiah(nominalArg)
	if err != nil {
		return err
	}
	var achieved *int64
	if len(rest) > 0 {
		v, err := report.ParseRupiah(rest[0])
		if err != nil {
			return err
		}
		achieved = &v
	}

	target, err := api.GetTarget(ctx, targetID)
	if err != nil {
		return fmt.Errorf("loading target %s: %w", targetID, err)
	}

	out := consistency.NewGuard(api).SaveTargetAndAchievement(ctx, target, productID, nominal, achieved)
	return reportOutcome(out)
}

// reportOutcome prints what landed. A partial write is reported as an error
// so the exit status reflects that the data needs attention.
func reportOutcome(out consistency.Outcome) error {
	if err := out.Err(); err != nil {
		return err
	}
	switch out.Operation {
	case consistency.OpDeleteTarget:
		fmt.Printf("Target %s deleted\n", out.TargetID)
	default:
		fmt.Printf("Target %s saved", out.TargetID)
		if out.Target != nil {
			fmt.Printf(": %s", report.FormatRupiah(out.Target.Nominal))
		}
		if out.Achievement != nil {
			fmt.Printf(", achieved %s", report.FormatRupiah(out.Achievement.Nominal))
		}
		fmt.Println()
	}
	return nil
}
