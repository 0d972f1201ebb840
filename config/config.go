package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Defaults mirror the observed championship structure: a 3,700-4,000
// player day 1 of 9 rounds, advancement at 19 match points, 4 day-2
// rounds, and a top 8 cut.
const (
	DefaultFieldSizeMin    = 3700
	DefaultFieldSizeMax    = 4000
	DefaultDay1Rounds      = 9
	DefaultDay2Rounds      = 4
	DefaultAdvancePoints   = 19
	DefaultTopCutSize      = 8
	DefaultSkillFactor     = 0.5
	DefaultTieRate         = 0.15
	DefaultResistanceFloor = 0.25
	DefaultSkillThreshold  = 331
	DefaultSeasonRank      = 140
)

// Config holds every knob of a simulation run plus the optional
// external collaborators (player database, report storage).
type Config struct {
	FieldSizeMin    int
	FieldSizeMax    int
	Day1Rounds      int
	Day2Rounds      int
	AdvancePoints   int
	TopCutSize      int
	SkillFactor     float64
	TieRate         float64
	ResistanceFloor float64
	SkillThreshold  int

	// Batch experiment surface.
	Seed       int64
	Scenarios  int
	Workers    int
	SeasonRank int

	// Optional collaborators; empty values disable them.
	DatabaseURL       string
	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2PublicBaseURL   string
}

// Load reads configuration from environment variables, optionally
// seeded from a .env file. A missing .env is not an error.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		FieldSizeMin:    getEnvInt("FIELD_SIZE_MIN", DefaultFieldSizeMin),
		FieldSizeMax:    getEnvInt("FIELD_SIZE_MAX", DefaultFieldSizeMax),
		Day1Rounds:      getEnvInt("DAY1_ROUNDS", DefaultDay1Rounds),
		Day2Rounds:      getEnvInt("DAY2_ROUNDS", DefaultDay2Rounds),
		AdvancePoints:   getEnvInt("ADVANCE_POINTS", DefaultAdvancePoints),
		TopCutSize:      getEnvInt("TOP_CUT_SIZE", DefaultTopCutSize),
		SkillFactor:     getEnvFloat("SKILL_FACTOR", DefaultSkillFactor),
		TieRate:         getEnvFloat("TIE_RATE", DefaultTieRate),
		ResistanceFloor: getEnvFloat("RESISTANCE_FLOOR", DefaultResistanceFloor),
		SkillThreshold:  getEnvInt("SKILL_THRESHOLD", DefaultSkillThreshold),
		Seed:            int64(getEnvInt("SEED", 0)),
		Scenarios:       getEnvInt("SCENARIOS", 10),
		Workers:         getEnvInt("WORKERS", 0),
		SeasonRank:      getEnvInt("SEASON_RANK", DefaultSeasonRank),

		DatabaseURL:       os.Getenv("DATABASE_URL"),
		R2AccountID:       os.Getenv("R2_ACCOUNT_ID"),
		R2AccessKeyID:     os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey: os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2BucketName:      os.Getenv("R2_BUCKET_NAME"),
		R2PublicBaseURL:   os.Getenv("R2_PUBLIC_BASE_URL"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects malformed run parameters before any simulation
// starts; these are the only fatal errors in the system.
func (c *Config) Validate() error {
	if c.FieldSizeMin <= 0 || c.FieldSizeMax <= 0 {
		return fmt.Errorf("field size must be positive, got %d..%d", c.FieldSizeMin, c.FieldSizeMax)
	}
	if c.FieldSizeMax < c.FieldSizeMin {
		return fmt.Errorf("field size range inverted: %d..%d", c.FieldSizeMin, c.FieldSizeMax)
	}
	if c.Day1Rounds <= 0 {
		return fmt.Errorf("day 1 round count must be positive, got %d", c.Day1Rounds)
	}
	if c.Day2Rounds < 0 {
		return fmt.Errorf("day 2 round count must not be negative, got %d", c.Day2Rounds)
	}
	if c.AdvancePoints < 0 {
		return fmt.Errorf("advancement threshold must not be negative, got %d", c.AdvancePoints)
	}
	if c.TopCutSize < 2 {
		return fmt.Errorf("top cut size must be at least 2, got %d", c.TopCutSize)
	}
	if c.TopCutSize > c.FieldSizeMin {
		return fmt.Errorf("top cut of %d cannot come from a field of %d", c.TopCutSize, c.FieldSizeMin)
	}
	if c.SkillFactor < 0 || c.SkillFactor > 1 {
		return fmt.Errorf("skill factor must be in [0,1], got %g", c.SkillFactor)
	}
	if c.TieRate < 0 || c.TieRate >= 1 {
		return fmt.Errorf("tie rate must be in [0,1), got %g", c.TieRate)
	}
	if c.ResistanceFloor < 0 || c.ResistanceFloor > 1 {
		return fmt.Errorf("resistance floor must be in [0,1], got %g", c.ResistanceFloor)
	}
	if c.Scenarios < 1 {
		return fmt.Errorf("scenario count must be positive, got %d", c.Scenarios)
	}
	if c.SeasonRank < 1 {
		return fmt.Errorf("season rank must be positive, got %d", c.SeasonRank)
	}
	return nil
}

func getEnvInt(key string, def int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	return v
}

func getEnvFloat(key string, def float64) float64 {
	raw := os.Getenv(key)
	if raw == "" {
		return def
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return def
	}
	return v
}
