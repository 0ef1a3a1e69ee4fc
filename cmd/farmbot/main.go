package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/nathanvsn/BotFarmManager/internal/adapter/farmapi"
	metricsinmem "github.com/nathanvsn/BotFarmManager/internal/adapter/metrics/inmemory"
	"github.com/nathanvsn/BotFarmManager/internal/adapter/ops"
	"github.com/nathanvsn/BotFarmManager/internal/app/cooldown"
	"github.com/nathanvsn/BotFarmManager/internal/app/cycle"
	"github.com/nathanvsn/BotFarmManager/internal/app/seeding"
	"github.com/nathanvsn/BotFarmManager/internal/app/silo"
	"github.com/nathanvsn/BotFarmManager/internal/config"
)

var version = "dev"

func main() {
	root := &cobra.Command{
		Use:   "farmbot",
		Short: "Automation bot for the farm game API",
	}
	root.AddCommand(runCmd(), versionCmd())
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the farmbot version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Println(version)
		},
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:          "run",
		Short:        "Start the polling loop",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			return runLoop(cfg)
		},
	}
}

func runLoop(cfg config.Config) error {
	client, err := farmapi.NewClient(farmapi.Config{
		BaseURL:  cfg.BaseURL,
		Email:    cfg.Email,
		Password: cfg.Password,
		Timeout:  cfg.RequestTimeout,
	})
	if err != nil {
		return err
	}
	if err := client.Login(context.Background()); err != nil {
		return err
	}
	log.Printf("[bot] logged in to %s", cfg.BaseURL)

	recorder := metricsinmem.NewRecorder()
	if cfg.OpsAddr != "" {
		go ops.NewServer(cfg.OpsAddr, recorder).Spin()
		log.Printf("[bot] ops endpoint on %s", cfg.OpsAddr)
	}

	uc := cycle.UseCase{
		Tabs:                 client,
		Plots:                client,
		Market:               client,
		Actions:              client,
		Cooldown:             cooldown.NewTracker(cfg.HarvestCooldown),
		Seeder:               seeding.UseCase{Market: client},
		Seller:               silo.Seller{Market: client, Delay: cfg.SellDelay},
		Metrics:              recorder,
		SiloThresholdPercent: cfg.SiloThresholdPercent,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	ticker := time.NewTicker(cfg.PollInterval)
	defer ticker.Stop()

	for {
		// A stop signal only takes effect between cycles, so a purchase is
		// never left without its planting action. Each cycle therefore runs
		// on a background context.
		cycleID := uuid.NewString()[:8]
		report, err := uc.Execute(context.Background(), cycle.Request{CycleID: cycleID})
		if err != nil {
			log.Printf("[cycle %s] failed: %v", cycleID, err)
		} else {
			log.Printf("[cycle %s] tasks=%v dispatched=%d failed=%d skipped=%v fetchErrors=%d",
				cycleID, report.Tasks, report.ActionsDispatched, report.ActionsFailed, report.Skipped, report.FetchErrors)
			if report.FetchErrors > 0 {
				// Expired sessions show up as failed fetches; refresh before
				// the next cycle rather than retrying mid-cycle.
				if err := client.Login(context.Background()); err != nil {
					log.Printf("[bot] re-login failed: %v", err)
				}
			}
		}

		select {
		case <-ctx.Done():
			log.Println("[bot] stop requested, exiting between cycles")
			return nil
		case <-ticker.C:
		}
	}
}
