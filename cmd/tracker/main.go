// Package main provides the entry point for the MMA EV bet tracker.
package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rohan411hegde/mma-ev-tool/internal/config"
	"github.com/rohan411hegde/mma-ev-tool/internal/database"
	"github.com/rohan411hegde/mma-ev-tool/internal/feed"
	"github.com/rohan411hegde/mma-ev-tool/internal/health"
	"github.com/rohan411hegde/mma-ev-tool/internal/ledger"
	"github.com/rohan411hegde/mma-ev-tool/internal/logger"
	"github.com/rohan411hegde/mma-ev-tool/internal/metrics"
	"github.com/rohan411hegde/mma-ev-tool/internal/models"
	"github.com/rohan411hegde/mma-ev-tool/internal/odds"
	"github.com/rohan411hegde/mma-ev-tool/internal/scheduler"
	"github.com/rohan411hegde/mma-ev-tool/internal/store"
)

// Build information - set via ldflags
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	configFile string
	appLog     *logrus.Logger
	cfg        *config.Config
	db         *database.DB
	betLedger  *ledger.Ledger
	feedClient *feed.Client
	auditLog   *logger.AuditLogger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "./config/config.yaml", "Path to configuration file")

	rootCmd.AddCommand(opportunitiesCmd)
	rootCmd.AddCommand(placeCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(settleCmd)
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(versionCmd)

	addCmd.Flags().String("fighter", "", "Fighter the bet is on (required)")
	addCmd.Flags().String("opponent", "", "Opposing fighter")
	addCmd.Flags().String("book", "", "Sportsbook the bet was placed at")
	addCmd.Flags().Int("odds", 0, "American odds at placement")
	addCmd.Flags().Float64("amount", 0, "Stake in dollars")
	addCmd.Flags().Float64("unit", 1, "Stake in units")
	addCmd.Flags().Float64("ev", 0, "EV percentage at placement")
	addCmd.Flags().Float64("confidence", 0, "Confidence score at placement")
	addCmd.Flags().Float64("kelly", 0, "Recommended Kelly fraction")
	addCmd.Flags().String("fight-date", "", "Fight date (YYYY-MM-DD)")
	addCmd.Flags().String("notes", "", "Free-form notes")
	addCmd.MarkFlagRequired("fighter")

	updateCmd.Flags().String("fighter", "", "New fighter name")
	updateCmd.Flags().String("opponent", "", "New opponent name")
	updateCmd.Flags().String("book", "", "New sportsbook")
	updateCmd.Flags().Int("odds", 0, "New American odds")
	updateCmd.Flags().Float64("amount", 0, "New stake in dollars")
	updateCmd.Flags().Float64("unit", 0, "New stake in units")
	updateCmd.Flags().String("fight-date", "", "New fight date (YYYY-MM-DD)")
	updateCmd.Flags().String("notes", "", "New notes")

	settleCmd.Flags().Bool("won", false, "Settle the bet as won")
	settleCmd.Flags().Bool("lost", false, "Settle the bet as lost")
	settleCmd.Flags().Float64("result", 0, "Explicit result amount (stake + profit)")
}

var rootCmd = &cobra.Command{
	Use:   "tracker",
	Short: "Track MMA +EV bets against sharp line signals",
	Long: `Tracks placed MMA bets in a persistent ledger, translates EV
opportunities from the line shopping feed into draft bets, and reports
record, profit and ROI.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(); err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		return setupDependencies(cmd.Context())
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if db != nil {
			db.Close()
		}
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func loadConfig() error {
	var err error
	cfg, err = config.LoadWithDefaults(configFile)
	if err != nil {
		return err
	}

	if os.Getenv("AWS_SECRETS_ENABLED") == "true" {
		region := os.Getenv("AWS_REGION")
		secretName := os.Getenv("AWS_SECRET_NAME")
		if region == "" || secretName == "" {
			return fmt.Errorf("AWS_REGION and AWS_SECRET_NAME must be set when AWS_SECRETS_ENABLED is true")
		}
		if err := config.LoadSecretsFromAWS(cfg, region, secretName); err != nil {
			return fmt.Errorf("failed to load secrets: %w", err)
		}
	}

	return config.Validate(cfg)
}

func setupDependencies(ctx context.Context) error {
	appLog = logger.NewLogger(cfg.App.LogLevel, cfg.App.Environment)
	auditLog = logger.NewAuditLogger(appLog)

	var (
		st  store.Store
		err error
	)
	switch cfg.Storage.Backend {
	case "postgres":
		db, err = database.NewDB(ctx, &cfg.Storage.Database)
		if err != nil {
			return fmt.Errorf("failed to connect to database: %w", err)
		}
		st, err = store.NewPostgresStore(ctx, db, appLog)
		if err != nil {
			return fmt.Errorf("failed to initialize snapshot table: %w", err)
		}
	default:
		st, err = store.NewFileStore(cfg.Storage.DataDir, appLog)
		if err != nil {
			return fmt.Errorf("failed to initialize data directory: %w", err)
		}
	}

	key := cfg.Storage.SnapshotKey
	if key == "" {
		key = ledger.DefaultSnapshotKey
	}
	betLedger = ledger.New(ctx, st, key, appLog)

	httpCfg := feed.DefaultHTTPClientConfig()
	httpCfg.Timeout = time.Duration(cfg.Feed.TimeoutSeconds) * time.Second
	httpCfg.MaxRetries = cfg.Feed.MaxRetries
	httpCfg.RateLimit = cfg.Feed.RequestsPerSecond
	httpClient := feed.NewRateLimitedHTTPClient(httpCfg, appLog)

	feedClient = feed.NewClient(
		httpClient,
		cfg.Feed.BaseURL,
		time.Duration(cfg.Feed.CacheTTLSeconds)*time.Second,
		appLog,
	)

	return nil
}

var opportunitiesCmd = &cobra.Command{
	Use:   "opportunities",
	Short: "Show current fights and +EV opportunities from the feed",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()

		fights := feedClient.Fights(ctx)
		fmt.Printf("\nUpcoming fights (%d):\n", len(fights))
		for _, f := range fights {
			fmt.Printf("  %s vs %s", f.Fighter1, f.Fighter2)
			if f.EventName != "" {
				fmt.Printf("  [%s]", f.EventName)
			}
			fmt.Println()
			for _, o := range f.Odds {
				fmt.Printf("    %-12s %+d / %+d\n", o.Book, o.Fighter1Odds, o.Fighter2Odds)
			}
		}

		opps := feedClient.Opportunities(ctx)
		fmt.Printf("\n+EV opportunities (%d):\n", len(opps))
		for i, opp := range opps {
			tier := odds.ClassifyEV(opp.EVPercentage)
			band := odds.ClassifyConfidence(opp.ConfidenceScore)
			fmt.Printf("  [%d] %s @ %s  EV %.1f%% (%s)  confidence %.0f (%s)\n",
				i+1, opp.Fighter, opp.Book, opp.EVPercentage, tier, opp.ConfidenceScore, band)
			if opp.FightInfo != "" {
				fmt.Printf("      %s\n", opp.FightInfo)
			}
			if opp.Recommendation != "" {
				fmt.Printf("      %s\n", opp.Recommendation)
			}
			if opp.KellyDollars != 0 {
				fmt.Printf("      Kelly: $%.2f (%.1f units, %s)\n", opp.KellyDollars, opp.KellyUnits, opp.KellyCategory)
			}
		}
		fmt.Println()
	},
}

var placeCmd = &cobra.Command{
	Use:   "place <opportunity-number>",
	Short: "Track a bet from a feed opportunity",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid opportunity number %q", args[0])
		}

		opps := feedClient.Opportunities(ctx)
		if n < 1 || n > len(opps) {
			return fmt.Errorf("opportunity number %d out of range (have %d)", n, len(opps))
		}

		draft := ledger.ToDraft(opps[n-1], time.Now())
		id := betLedger.Add(ctx, draft)

		bet, _ := betLedger.Get(id)
		auditLog.LogBetPlacement(bet.ID, bet.Fighter, bet.Opponent, bet.Book, bet.BetAmount, bet.Odds, bet.PlacedDate)
		fmt.Printf("Tracked bet %s: %s @ %s, $%.2f at %+d\n", bet.ID, bet.Fighter, bet.Book, bet.BetAmount, bet.Odds)
		return nil
	},
}

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Track a manually placed bet",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		flags := cmd.Flags()

		draft := models.BetDraft{}
		draft.Fighter, _ = flags.GetString("fighter")
		draft.Opponent, _ = flags.GetString("opponent")
		draft.Book, _ = flags.GetString("book")
		draft.Odds, _ = flags.GetInt("odds")
		draft.BetAmount, _ = flags.GetFloat64("amount")
		draft.UnitSize, _ = flags.GetFloat64("unit")
		draft.EVPercentage, _ = flags.GetFloat64("ev")
		draft.ConfidenceScore, _ = flags.GetFloat64("confidence")
		draft.KellyRecommended, _ = flags.GetFloat64("kelly")
		draft.Notes, _ = flags.GetString("notes")

		if fd, _ := flags.GetString("fight-date"); fd != "" {
			t, err := time.Parse("2006-01-02", fd)
			if err != nil {
				return fmt.Errorf("invalid fight date %q: %w", fd, err)
			}
			draft.FightDate = t
		}

		id := betLedger.Add(ctx, draft)

		bet, _ := betLedger.Get(id)
		auditLog.LogBetPlacement(bet.ID, bet.Fighter, bet.Opponent, bet.Book, bet.BetAmount, bet.Odds, bet.PlacedDate)
		fmt.Printf("Tracked bet %s: %s, $%.2f at %+d\n", bet.ID, bet.Fighter, bet.BetAmount, bet.Odds)
		return nil
	},
}

var updateCmd = &cobra.Command{
	Use:   "update <bet-id>",
	Short: "Correct fields on a tracked bet",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		flags := cmd.Flags()
		id := args[0]

		patch := models.BetPatch{}
		var changed []string
		if flags.Changed("fighter") {
			v, _ := flags.GetString("fighter")
			patch.Fighter = &v
			changed = append(changed, "fighter")
		}
		if flags.Changed("opponent") {
			v, _ := flags.GetString("opponent")
			patch.Opponent = &v
			changed = append(changed, "opponent")
		}
		if flags.Changed("book") {
			v, _ := flags.GetString("book")
			patch.Book = &v
			changed = append(changed, "book")
		}
		if flags.Changed("odds") {
			v, _ := flags.GetInt("odds")
			patch.Odds = &v
			changed = append(changed, "odds")
		}
		if flags.Changed("amount") {
			v, _ := flags.GetFloat64("amount")
			patch.BetAmount = &v
			changed = append(changed, "bet_amount")
		}
		if flags.Changed("unit") {
			v, _ := flags.GetFloat64("unit")
			patch.UnitSize = &v
			changed = append(changed, "unit_size")
		}
		if flags.Changed("fight-date") {
			s, _ := flags.GetString("fight-date")
			t, err := time.Parse("2006-01-02", s)
			if err != nil {
				return fmt.Errorf("invalid fight date %q: %w", s, err)
			}
			patch.FightDate = &t
			changed = append(changed, "fight_date")
		}
		if flags.Changed("notes") {
			v, _ := flags.GetString("notes")
			patch.Notes = &v
			changed = append(changed, "notes")
		}

		betLedger.Update(ctx, id, patch)
		if bet, ok := betLedger.Get(id); ok {
			auditLog.LogBetCorrection(bet.ID, changed)
			fmt.Printf("Updated bet %s\n", bet.ID)
		} else {
			fmt.Printf("No bet with id %s\n", id)
		}
		return nil
	},
}

var settleCmd = &cobra.Command{
	Use:   "settle <bet-id>",
	Short: "Settle a tracked bet as won or lost",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		flags := cmd.Flags()
		id := args[0]

		won, _ := flags.GetBool("won")
		lost, _ := flags.GetBool("lost")
		if won == lost {
			return fmt.Errorf("exactly one of --won or --lost is required")
		}

		var result *float64
		if flags.Changed("result") {
			v, _ := flags.GetFloat64("result")
			result = &v
		}

		if err := betLedger.Settle(ctx, id, won, result); err != nil {
			return fmt.Errorf("failed to settle bet %s: %w", id, err)
		}

		bet, ok := betLedger.Get(id)
		if !ok {
			fmt.Printf("No bet with id %s\n", id)
			return nil
		}

		outcome := "lost"
		if won {
			outcome = "won"
		}
		auditLog.LogBetSettlement(bet.ID, outcome, bet.BetAmount, bet.Returned())
		fmt.Printf("Settled bet %s as %s, returned $%.2f\n", bet.ID, outcome, bet.Returned())
		return nil
	},
}

var deleteCmd = &cobra.Command{
	Use:   "delete <bet-id>",
	Short: "Remove a tracked bet from the ledger",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := cmd.Context()
		id := args[0]

		_, ok := betLedger.Get(id)
		betLedger.Delete(ctx, id)
		if ok {
			auditLog.LogBetDeletion(id)
			fmt.Printf("Deleted bet %s\n", id)
		} else {
			fmt.Printf("No bet with id %s\n", id)
		}
	},
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all tracked bets",
	Run: func(cmd *cobra.Command, args []string) {
		bets := betLedger.Bets()
		if len(bets) == 0 {
			fmt.Println("No tracked bets.")
			return
		}

		fmt.Printf("\nTracked bets (%d):\n", len(bets))
		for _, b := range bets {
			status := string(b.Status)
			if b.IsSettled() {
				status = fmt.Sprintf("%s ($%.2f)", b.Status, b.Returned())
			}
			fmt.Printf("  %-38s %-22s %+5d  $%7.2f  %s\n", b.ID, b.Fighter, b.Odds, b.BetAmount, status)
			if b.Opponent != "" {
				fmt.Printf("  %-38s vs %s @ %s\n", "", b.Opponent, b.Book)
			}
		}
		fmt.Println()
	},
}

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show ledger performance metrics",
	Run: func(cmd *cobra.Command, args []string) {
		display := ledger.ComputeStats(betLedger.Bets()).Display()

		fmt.Println("\nBetting performance:")
		fmt.Printf("  Record:         %d-%d (%d pending)\n", display.WonBets, display.LostBets, display.PendingBets)
		fmt.Printf("  Total wagered:  $%.2f\n", display.TotalWagered)
		fmt.Printf("  Total returned: $%.2f\n", display.TotalReturned)
		fmt.Printf("  Net profit:     $%.2f (%.2f units)\n", display.NetProfit, display.NetProfit/cfg.Betting.StandardUnit)
		fmt.Printf("  Win rate:       %.1f%%\n", display.WinRate)
		fmt.Printf("  ROI:            %.1f%%\n", display.ROI)
		fmt.Printf("  Bankroll:       $%.2f\n", cfg.Betting.Bankroll+display.NetProfit)
		fmt.Println()
	},
}

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Run the tracker as a long-lived service",
	Long: `Keeps the feed cache fresh on a schedule, follows the live odds
stream when enabled, and serves health and metrics endpoints until
interrupted.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		metrics.InitRegistry()

		var pinger health.StorePinger
		if db != nil {
			pinger = db
		}
		healthServer := health.NewServer(health.Config{
			ServiceName: cfg.App.Name,
			Version:     Version,
			Port:        cfg.Health.Port,
			Logger:      appLog,
			Store:       pinger,
		})
		if err := healthServer.Start(ctx); err != nil {
			return fmt.Errorf("failed to start health server: %w", err)
		}

		if cfg.Metrics.Enabled {
			metricsMux := http.NewServeMux()
			metricsMux.Handle(cfg.Metrics.Path, metrics.Handler())
			metricsServer := &http.Server{
				Addr:    fmt.Sprintf(":%d", cfg.Metrics.Port),
				Handler: metricsMux,
			}
			go func() {
				appLog.WithField("port", cfg.Metrics.Port).Info("Metrics server starting")
				if err := metricsServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					appLog.WithError(err).Error("Metrics server error")
				}
			}()
			go func() {
				<-ctx.Done()
				shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer shutdownCancel()
				metricsServer.Shutdown(shutdownCtx)
			}()
		}

		sched := scheduler.NewScheduler(feedClient, appLog)
		schedule := cfg.Feed.RefreshSchedule
		if schedule == "" {
			schedule = "*/10 * * * *"
		}
		if err := sched.ScheduleFeedRefresh(schedule); err != nil {
			return fmt.Errorf("failed to schedule feed refresh: %w", err)
		}
		if err := sched.Start(); err != nil {
			return fmt.Errorf("failed to start scheduler: %w", err)
		}

		if cfg.Feed.StreamEnabled {
			stream := feed.NewStreamClient(cfg.Feed.StreamURL, feedClient, appLog)
			go stream.Run(ctx)
			appLog.WithField("url", cfg.Feed.StreamURL).Info("Odds stream subscriber started")
		}

		// Warm the cache so the first scrape window is covered.
		feedClient.Refresh(ctx)

		stats := ledger.ComputeStats(betLedger.Bets())
		metrics.UpdateLedgerGauges(stats.PendingBets, stats.NetProfit, stats.WinRate)

		healthServer.SetReady(true)
		appLog.WithFields(logrus.Fields{
			"bets":     betLedger.Len(),
			"schedule": schedule,
			"next_run": sched.GetNextRun().Format(time.RFC3339),
		}).Info("Tracker watch mode running")

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
		sig := <-sigChan
		appLog.WithField("signal", sig).Info("Shutdown signal received")

		healthServer.SetReady(false)
		cancel()

		if err := sched.Stop(); err != nil {
			appLog.WithError(err).Error("Error stopping scheduler")
		}
		if err := healthServer.Shutdown(); err != nil {
			appLog.WithError(err).Error("Error stopping health server")
		}

		appLog.Info("Tracker shut down")
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build information",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {},
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("tracker %s (commit %s, built %s)\n", Version, GitCommit, BuildDate)
	},
}
