package config

import (
	"fmt"

	"github.com/robfig/cron/v3"
)

// cronParser accepts standard five-field expressions and descriptors such
// as "@hourly" or "@every 30s", matching cron.New's default parser.
var cronParser = cron.NewParser(
	cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
)

// ValidateCronSchedule validates a cron expression using the robfig/cron/v3 parser.
//
// Accepted forms:
//   - "minute hour day month weekday", e.g. "*/5 * * * *"
//   - descriptors, e.g. "@hourly" or "@every 30s"
//
// Validation tool: https://crontab.guru/
func ValidateCronSchedule(schedule string) error {
	if schedule == "" {
		return fmt.Errorf("invalid cron schedule: cannot be empty")
	}

	if _, err := cronParser.Parse(schedule); err != nil {
		return fmt.Errorf("invalid cron schedule '%s': %w", schedule, err)
	}

	return nil
}

// ValidateIntRange validates that value is within [min, max].
func ValidateIntRange(value, min, max int) error {
	if min > max {
		return fmt.Errorf("invalid range: min (%d) cannot be greater than max (%d)", min, max)
	}

	if value < min {
		return fmt.Errorf("value %d is below minimum %d", value, min)
	}

	if value > max {
		return fmt.Errorf("value %d exceeds maximum %d", value, max)
	}

	return nil
}
