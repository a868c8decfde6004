package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValidateCronSchedule_Valid(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
	}{
		{"every 30 seconds", "@every 30s"},
		{"hourly descriptor", "@hourly"},
		{"every minute", "* * * * *"},
		{"every 5 minutes", "*/5 * * * *"},
		{"weekdays at 9:30", "30 9 * * 1-5"},
		{"complex expression", "15,45 */2 * * 1,3,5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NoError(t, ValidateCronSchedule(tt.schedule))
		})
	}
}

func TestValidateCronSchedule_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		schedule string
	}{
		{"empty string", ""},
		{"too few fields", "0 0"},
		{"too many fields", "0 0 * * * * *"},
		{"invalid minute", "60 0 * * *"},
		{"invalid hour", "0 24 * * *"},
		{"unknown descriptor", "@sometimes"},
		{"bad every duration", "@every soon"},
		{"random text", "invalid format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCronSchedule(tt.schedule)
			assert.Error(t, err)
			assert.Contains(t, err.Error(), "invalid cron schedule")
		})
	}
}

func TestValidateCronSchedule_ErrorMessage(t *testing.T) {
	err := ValidateCronSchedule("invalid")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "invalid cron schedule 'invalid'")
}

func TestValidateDuration(t *testing.T) {
	assert.NoError(t, ValidateDuration(10*time.Second, 0, time.Minute))
	assert.NoError(t, ValidateDuration(0, 0, time.Minute))
	assert.NoError(t, ValidateDuration(time.Minute, 0, time.Minute))

	err := ValidateDuration(-time.Second, 0, time.Minute)
	assert.ErrorContains(t, err, "below minimum")

	err = ValidateDuration(2*time.Minute, 0, time.Minute)
	assert.ErrorContains(t, err, "exceeds maximum")

	err = ValidateDuration(time.Second, time.Minute, time.Second)
	assert.ErrorContains(t, err, "invalid range")
}

func TestValidateInt64Range(t *testing.T) {
	assert.NoError(t, ValidateInt64Range(1024, 1024, 100<<20))
	assert.ErrorContains(t, ValidateInt64Range(1, 1024, 100<<20), "below minimum")
	assert.ErrorContains(t, ValidateInt64Range(200<<20, 1024, 100<<20), "exceeds maximum")
	assert.ErrorContains(t, ValidateInt64Range(5, 10, 1), "invalid range")
}

func TestValidatePositiveFloat(t *testing.T) {
	assert.NoError(t, ValidatePositiveFloat(30))
	assert.Error(t, ValidatePositiveFloat(0))
	assert.Error(t, ValidatePositiveFloat(-1.5))
}
