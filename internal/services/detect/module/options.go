package module

import (
	"watchdog/internal/platform/config"
	"watchdog/internal/services/detect/domain"
)

// FromConfig extracts detection defaults from the environment. CLI flags
// and request payloads override these per run.
func FromConfig(cfg config.Conf) domain.Options {
	df := cfg.Prefix("DETECT_")
	return domain.Options{
		WindowDays: df.MayInt("WINDOW_DAYS", 30),
		Threshold:  df.MayFloat64("THRESHOLD", 3.0),
		MinAmount:  df.MayFloat64("MIN_AMOUNT", 0),
		MinPercent: df.MayFloat64("MIN_PERCENT", 0),
		DropRatio:  df.MayFloat64("DROP_RATIO", 0.9),
		Workers:    df.MayInt("WORKERS", 4),
		GroupBy:    df.MayString("GROUP_BY", "service"),
	}
}
