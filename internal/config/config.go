package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// TierBand is one named tier with an inclusive lower bound. MinPoints of the
// next band is the exclusive upper bound of this one.
type TierBand struct {
	Name      string
	MinPoints int
	Benefits  []string
}

// Config holds every externally overridable knob. It is built once in main
// and passed to components at construction time; nothing reads the
// environment after Load returns.
type Config struct {
	DatabaseURL string
	BotToken    string
	Environment string
	HealthPort  string

	LeaderboardChannelID string

	SyncInterval     time.Duration
	SyncInitialDelay time.Duration
	LeaderboardTopN  int
	ScanWindow       int
	RankWindow       int

	// Per-action point values.
	PointsLinking           int
	PointsDailyCheckin      int
	PointsContentSubmission int
	PointsCommunityHelp     int
	PointsReferral          int

	// Ordered lowest to highest. Single source of truth for every tier
	// consumer (display, upgrade guidance, leaderboard breakdown).
	Tiers []TierBand
}

func Load() (*Config, error) {
	// .env file is optional, continue without it
	_ = godotenv.Load()

	cfg := &Config{
		DatabaseURL: getEnv("DATABASE_URL", ""),
		BotToken:    getEnv("DISCORD_BOT_TOKEN", ""),
		Environment: getEnv("ENVIRONMENT", "development"),
		HealthPort:  getEnv("HEALTH_PORT", "8080"),

		LeaderboardChannelID: getEnv("LEADERBOARD_CHANNEL_ID", ""),

		SyncInterval:     getEnvDuration("SYNC_INTERVAL", time.Hour),
		SyncInitialDelay: getEnvDuration("SYNC_INITIAL_DELAY", 10*time.Second),
		LeaderboardTopN:  getEnvInt("LEADERBOARD_TOP_N", 10),
		ScanWindow:       getEnvInt("LEADERBOARD_SCAN_WINDOW", 10),
		RankWindow:       getEnvInt("RANK_WINDOW", 100),

		PointsLinking:           getEnvInt("POINTS_LINKING", 10),
		PointsDailyCheckin:      getEnvInt("POINTS_DAILY_CHECKIN", 5),
		PointsContentSubmission: getEnvInt("POINTS_CONTENT_SUBMISSION", 20),
		PointsCommunityHelp:     getEnvInt("POINTS_COMMUNITY_HELP", 10),
		PointsReferral:          getEnvInt("POINTS_REFERRAL", 15),

		Tiers: []TierBand{
			{
				Name:      "Rookie",
				MinPoints: 0,
				Benefits:  []string{"Starter kit digital"},
			},
			{
				Name:      "Pro",
				MinPoints: getEnvInt("PRO_MIN_POINTS", 500),
				Benefits:  []string{"Bonus poin", "Tampil di media komunitas"},
			},
			{
				Name:      "Legend",
				MinPoints: getEnvInt("LEGEND_MIN_POINTS", 1500),
				Benefits:  []string{"Produk gratis", "Event eksklusif"},
			},
		},
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("DISCORD_BOT_TOKEN is required")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
