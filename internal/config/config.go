package config

import (
	"time"

	"spinx_backend/internal/model"

	"github.com/joho/godotenv"
)

func Load(path string) error {
	err := godotenv.Load(path)
	if err != nil {
		return err
	}
	return nil
}

type WheelConfig interface {
	Segments() []model.Segment
	BetWindowSeconds() int
	CooldownSeconds() int
	MinStake() int
	ReferenceStakeUnit() int
	BadgeThreshold() int
	MaxHistory() int
	MaxFeed() int
	MaxAutoAttempts() int
	Currency() string
}

type HTTPConfig interface {
	Address() string
}

type PGConfig interface {
	DSN() string
}

type SQLiteConfig interface {
	Path() string
}

type JWTConfig interface {
	AccessTokenSecretKey() []byte
	AccessTokenDuration() time.Duration
	RefreshTokenDuration() time.Duration
}
