package env

import (
	"errors"
	"fmt"
	"os"

	"spinx_backend/internal/config"
	"spinx_backend/internal/model"

	"gopkg.in/yaml.v3"
)

// yamlSegment — сегмент колеса как он лежит в config.yaml
type yamlSegment struct {
	Label  string `yaml:"label"`
	Value  int    `yaml:"value"`
	Gift   string `yaml:"gift"`
	Weight int    `yaml:"weight"`
}

type yamlWheel struct {
	BetWindowSeconds   int           `yaml:"bet_window_seconds"`
	CooldownSeconds    int           `yaml:"cooldown_seconds"`
	MinStake           int           `yaml:"min_stake"`
	ReferenceStakeUnit int           `yaml:"reference_stake_unit"`
	BadgeThreshold     int           `yaml:"badge_threshold"`
	MaxHistory         int           `yaml:"max_history"`
	MaxFeed            int           `yaml:"max_feed"`
	MaxAutoAttempts    int           `yaml:"max_auto_attempts"`
	Currency           string        `yaml:"currency"`
	Segments           []yamlSegment `yaml:"segments"`
}

type yamlRoot struct {
	Wheel yamlWheel `yaml:"wheel"`
}

type wheelConfig struct {
	wheel    yamlWheel
	segments []model.Segment
}

// NewWheelConfigFromYAML читает конфигурацию колеса из YAML файла
func NewWheelConfigFromYAML(path string) (config.WheelConfig, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read wheel config: %w", err)
	}

	var root yamlRoot
	if err := yaml.Unmarshal(raw, &root); err != nil {
		return nil, fmt.Errorf("parse wheel config: %w", err)
	}

	cfg := &wheelConfig{wheel: root.Wheel}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	cfg.segments = make([]model.Segment, len(root.Wheel.Segments))
	for i, s := range root.Wheel.Segments {
		cfg.segments[i] = model.Segment{
			Label:     s.Label,
			CashValue: s.Value,
			Gift:      model.Gift(s.Gift),
			Weight:    s.Weight,
		}
	}

	return cfg, nil
}

func (c *wheelConfig) validate() error {
	w := c.wheel
	if len(w.Segments) == 0 {
		return errors.New("wheel config: at least one segment required")
	}

	totalWeight := 0
	for i, s := range w.Segments {
		if s.Value < 0 {
			return fmt.Errorf("wheel config: segment %d has negative value", i)
		}
		if s.Weight < 0 {
			return fmt.Errorf("wheel config: segment %d has negative weight", i)
		}
		totalWeight += s.Weight
	}
	if totalWeight == 0 {
		return errors.New("wheel config: at least one segment must have weight > 0")
	}

	if w.BetWindowSeconds <= 0 {
		return errors.New("wheel config: bet_window_seconds must be positive")
	}
	if w.ReferenceStakeUnit <= 0 {
		return errors.New("wheel config: reference_stake_unit must be positive")
	}
	if w.BadgeThreshold <= 0 {
		return errors.New("wheel config: badge_threshold must be positive")
	}
	if w.MaxHistory <= 0 || w.MaxFeed <= 0 {
		return errors.New("wheel config: history and feed caps must be positive")
	}

	return nil
}

func (c *wheelConfig) Segments() []model.Segment {
	// Копия, чтобы конфигурация оставалась неизменяемой
	out := make([]model.Segment, len(c.segments))
	copy(out, c.segments)
	return out
}

func (c *wheelConfig) BetWindowSeconds() int   { return c.wheel.BetWindowSeconds }
func (c *wheelConfig) CooldownSeconds() int    { return c.wheel.CooldownSeconds }
func (c *wheelConfig) MinStake() int           { return c.wheel.MinStake }
func (c *wheelConfig) ReferenceStakeUnit() int { return c.wheel.ReferenceStakeUnit }
func (c *wheelConfig) BadgeThreshold() int     { return c.wheel.BadgeThreshold }
func (c *wheelConfig) MaxHistory() int         { return c.wheel.MaxHistory }
func (c *wheelConfig) MaxFeed() int            { return c.wheel.MaxFeed }
func (c *wheelConfig) MaxAutoAttempts() int    { return c.wheel.MaxAutoAttempts }
func (c *wheelConfig) Currency() string        { return c.wheel.Currency }
