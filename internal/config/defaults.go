package config

// Default returns the configuration silk runs with when no file overrides
// it.
func Default() *Config {
	return &Config{
		General: GeneralConfig{
			MaxDepth:                   50,
			AccessibilityPromptOnStart: false,
		},
		Motion: MotionConfig{
			Humanize:             true,
			Randomness:           0.3,
			FittsA:               0.05,
			FittsB:               0.15,
			MinSteps:             20,
			MaxSteps:             80,
			OvershootProbability: 0.2,
		},
		Scroll: ScrollConfig{
			SettleDelayMS: 100,
			MaxAttempts:   8,
			HardTimeoutMS: 10000,
		},
		Click: ClickConfig{
			ActivationSettleMS: 50,
			DwellMinMS:         50,
			DwellMaxMS:         150,
		},
		Type: TypeConfig{
			FocusSettleMS:     200,
			ValueVerifyMS:     50,
			KeyHoldMinMS:      20,
			KeyHoldMaxMS:      60,
			KeyDelayMinMS:     30,
			KeyDelayMaxMS:     80,
			RestorePasteboard: true,
		},
		Logging: LoggingConfig{
			Level:         "info",
			Structured:    false,
			MaxFileSizeMB: 10,
			MaxBackups:    3,
			MaxAgeDays:    28,
		},
	}
}
