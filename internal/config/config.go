package config

import (
	derrors "github.com/saucesteals/silk/internal/errors"
)

// Config represents the complete application configuration structure.
type Config struct {
	General GeneralConfig `json:"general" toml:"general"`
	Motion  MotionConfig  `json:"motion"  toml:"motion"`
	Scroll  ScrollConfig  `json:"scroll"  toml:"scroll"`
	Click   ClickConfig   `json:"click"   toml:"click"`
	Type    TypeConfig    `json:"type"    toml:"type"`
	Logging LoggingConfig `json:"logging" toml:"logging"`
}

// GeneralConfig defines engine-wide settings.
type GeneralConfig struct {
	// MaxDepth bounds every tree traversal.
	MaxDepth int `json:"maxDepth" toml:"max_depth"`

	// AccessibilityPromptOnStart asks the OS to show the grant prompt when
	// trust is missing.
	AccessibilityPromptOnStart bool `json:"accessibilityPromptOnStart" toml:"accessibility_prompt_on_start"`
}

// MotionConfig tunes the humanized movement generator.
type MotionConfig struct {
	Humanize             bool    `json:"humanize"             toml:"humanize"`
	Randomness           float64 `json:"randomness"           toml:"randomness"`
	FittsA               float64 `json:"fittsA"               toml:"fitts_a"`
	FittsB               float64 `json:"fittsB"               toml:"fitts_b"`
	MinSteps             int     `json:"minSteps"             toml:"min_steps"`
	MaxSteps             int     `json:"maxSteps"             toml:"max_steps"`
	OvershootProbability float64 `json:"overshootProbability" toml:"overshoot_probability"`
}

// ScrollConfig tunes the scroll-into-view service.
type ScrollConfig struct {
	SettleDelayMS int `json:"settleDelayMs" toml:"settle_delay_ms"`
	MaxAttempts   int `json:"maxAttempts"   toml:"max_attempts"`
	HardTimeoutMS int `json:"hardTimeoutMs" toml:"hard_timeout_ms"`
}

// ClickConfig tunes click pacing.
type ClickConfig struct {
	ActivationSettleMS int `json:"activationSettleMs" toml:"activation_settle_ms"`
	DwellMinMS         int `json:"dwellMinMs"         toml:"dwell_min_ms"`
	DwellMaxMS         int `json:"dwellMaxMs"         toml:"dwell_max_ms"`
}

// TypeConfig tunes keystroke pacing and the paste lane.
type TypeConfig struct {
	FocusSettleMS     int  `json:"focusSettleMs"     toml:"focus_settle_ms"`
	ValueVerifyMS     int  `json:"valueVerifyMs"     toml:"value_verify_ms"`
	KeyHoldMinMS      int  `json:"keyHoldMinMs"      toml:"key_hold_min_ms"`
	KeyHoldMaxMS      int  `json:"keyHoldMaxMs"      toml:"key_hold_max_ms"`
	KeyDelayMinMS     int  `json:"keyDelayMinMs"     toml:"key_delay_min_ms"`
	KeyDelayMaxMS     int  `json:"keyDelayMaxMs"     toml:"key_delay_max_ms"`
	RestorePasteboard bool `json:"restorePasteboard" toml:"restore_pasteboard"`
}

// LoggingConfig defines logging behavior.
type LoggingConfig struct {
	Level              string `json:"level"              toml:"level"`
	File               string `json:"file"               toml:"file"`
	Structured         bool   `json:"structured"         toml:"structured"`
	DisableFileLogging bool   `json:"disableFileLogging" toml:"disable_file_logging"`
	MaxFileSizeMB      int    `json:"maxFileSizeMb"      toml:"max_file_size_mb"`
	MaxBackups         int    `json:"maxBackups"         toml:"max_backups"`
	MaxAgeDays         int    `json:"maxAgeDays"         toml:"max_age_days"`
}

// Validate checks the configuration for out-of-range values.
func (c *Config) Validate() error {
	if c.General.MaxDepth < 1 {
		return derrors.New(derrors.CodeInvalidConfig, "general.max_depth must be at least 1")
	}

	if c.Motion.Randomness < 0 || c.Motion.Randomness > 1 {
		return derrors.New(derrors.CodeInvalidConfig, "motion.randomness must be within [0, 1]")
	}

	if c.Motion.OvershootProbability < 0 || c.Motion.OvershootProbability > 1 {
		return derrors.New(
			derrors.CodeInvalidConfig,
			"motion.overshoot_probability must be within [0, 1]",
		)
	}

	if c.Motion.MinSteps < 1 || c.Motion.MaxSteps < c.Motion.MinSteps {
		return derrors.New(
			derrors.CodeInvalidConfig,
			"motion.min_steps must be at least 1 and at most motion.max_steps",
		)
	}

	if c.Scroll.MaxAttempts < 1 {
		return derrors.New(derrors.CodeInvalidConfig, "scroll.max_attempts must be at least 1")
	}

	if c.Scroll.SettleDelayMS < 0 || c.Scroll.HardTimeoutMS < 0 {
		return derrors.New(derrors.CodeInvalidConfig, "scroll delays cannot be negative")
	}

	if c.Click.DwellMinMS < 0 || c.Click.DwellMaxMS < c.Click.DwellMinMS {
		return derrors.New(
			derrors.CodeInvalidConfig,
			"click.dwell_min_ms must be non-negative and at most click.dwell_max_ms",
		)
	}

	if c.Type.KeyDelayMinMS < 0 || c.Type.KeyDelayMaxMS < c.Type.KeyDelayMinMS {
		return derrors.New(
			derrors.CodeInvalidConfig,
			"type.key_delay_min_ms must be non-negative and at most type.key_delay_max_ms",
		)
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "error":
	default:
		return derrors.Newf(
			derrors.CodeInvalidConfig,
			"logging.level %q is not one of debug, info, warn, error",
			c.Logging.Level,
		)
	}

	return nil
}
