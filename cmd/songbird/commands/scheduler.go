package commands

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/songbird/backend/internal/engine/leaderboard"
	"github.com/songbird/backend/internal/entries"
	"github.com/songbird/backend/internal/scheduler"
	"github.com/songbird/backend/internal/scheduler/jobs"
	"github.com/songbird/backend/pkg/config"
	"github.com/songbird/backend/pkg/database"
	"github.com/songbird/backend/pkg/logger"
	"github.com/songbird/backend/pkg/redis"
)

// schedulerCmd represents the scheduler command
var schedulerCmd = &cobra.Command{
	Use:   "scheduler",
	Short: "Manage the scheduler",
	Long: `Start the scheduler or inspect its jobs.

Registered jobs:
- leaderboard_close: shortly after midnight UTC, finalizes and caches
  yesterday's leaderboard

Subcommands:
  start   - Start the scheduler daemon
  run     - Run a job immediately

Example:
  go run ./cmd/songbird scheduler start
  go run ./cmd/songbird scheduler run leaderboard_close`,
}

var (
	schedulerStartCmd = &cobra.Command{
		Use:   "start",
		Short: "Start the scheduler daemon",
		RunE:  runScheduler,
	}

	schedulerRunCmd = &cobra.Command{
		Use:   "run [job_name]",
		Short: "Run a job immediately",
		Args:  cobra.ExactArgs(1),
		RunE:  runJob,
	}
)

func init() {
	rootCmd.AddCommand(schedulerCmd)
	schedulerCmd.AddCommand(schedulerStartCmd)
	schedulerCmd.AddCommand(schedulerRunCmd)
}

func runScheduler(cmd *cobra.Command, args []string) error {
	fmt.Println("=== SongBird Scheduler ===")

	sched, cleanup, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer cleanup()

	sched.Start()

	fmt.Println("\nScheduler started")
	fmt.Println("Registered jobs:")
	for _, jobName := range sched.GetAllJobs() {
		fmt.Printf("  - %s\n", jobName)
	}
	fmt.Println("\nPress Ctrl+C to stop")

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	sched.Stop()
	return nil
}

func runJob(cmd *cobra.Command, args []string) error {
	jobName := args[0]

	sched, cleanup, err := initScheduler()
	if err != nil {
		return fmt.Errorf("init scheduler: %w", err)
	}
	defer cleanup()

	fmt.Printf("Running job %s...\n", jobName)
	if err := sched.RunJob(jobName); err != nil {
		return err
	}

	// RunJob is asynchronous; give it a moment, then report history.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	fmt.Println("Job dispatched, press Ctrl+C to exit")
	<-quit
	return nil
}

// initScheduler wires the scheduler with all jobs. The returned cleanup
// closes the shared connections.
func initScheduler() (*scheduler.Scheduler, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	db, err := database.New(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("connect to database: %w", err)
	}

	rdb, err := redis.New(cfg)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	cleanup := func() {
		rdb.Close()
		db.Close()
	}

	entryRepo := entries.NewRepository(db.Pool)
	aggregator := leaderboard.NewAggregator(log.Zerolog())
	cache := redis.NewCache(rdb, "songbird")

	sched := scheduler.New(log)
	closeJob := jobs.NewLeaderboardCloseJob(entryRepo, aggregator, cache, cfg.Engine.LeaderboardCloseCron, log)
	if err := sched.AddJob(closeJob); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("add job: %w", err)
	}

	return sched, cleanup, nil
}
