package config

import (
	"time"

	"github.com/spf13/viper"
)

type (
	Config struct {
		HTTP
		Database
		Store
		Session
		Loans
		Scheduler
		UI
		Global
	}

	HTTP struct {
		Port int32
		Host string
	}
	Database struct {
		Path string
	}
	Store struct {
		QueryTimeout time.Duration // deadline applied to every store round-trip
	}
	Session struct {
		Secret        string // hex-encoded; generated at startup when empty
		Lifetime      time.Duration
		SecureCookies bool // set to false for local dev without HTTPS
	}
	Loans struct {
		PeriodDays int // calendar days until a loan is due
	}
	Scheduler struct {
		OverdueScanEnabled  bool
		OverdueScanSchedule string // cron format: "0 8 * * *" = daily at 08:00
	}
	UI struct {
		TemplatesPath string
	}
	Global struct {
		ShutdownTimeoutInSeconds int
	}
)

func NewConfig() *Config {
	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("port", 8190)
	v.SetDefault("host", "0.0.0.0")
	v.SetDefault("shutdown_timeout_in_seconds", 2)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("store_query_timeout", 5*time.Second)
	v.SetDefault("session_secret", "")
	v.SetDefault("session_lifetime", 12*time.Hour)
	v.SetDefault("secure_cookies", false)
	v.SetDefault("loan_period_days", DefaultLoanPeriodDays)
	v.SetDefault("overdue_scan_enabled", true)
	v.SetDefault("overdue_scan_schedule", "0 8 * * *") // Daily at 08:00
	v.SetDefault("templates_path", "./templates")

	return &Config{
		HTTP: HTTP{
			Port: v.GetInt32("port"),
			Host: v.GetString("host"),
		},
		Database: Database{
			Path: v.GetString("database_path"),
		},
		Store: Store{
			QueryTimeout: v.GetDuration("store_query_timeout"),
		},
		Session: Session{
			Secret:        v.GetString("session_secret"),
			Lifetime:      v.GetDuration("session_lifetime"),
			SecureCookies: v.GetBool("secure_cookies"),
		},
		Loans: Loans{
			PeriodDays: v.GetInt("loan_period_days"),
		},
		Scheduler: Scheduler{
			OverdueScanEnabled:  v.GetBool("overdue_scan_enabled"),
			OverdueScanSchedule: v.GetString("overdue_scan_schedule"),
		},
		UI: UI{
			TemplatesPath: v.GetString("templates_path"),
		},
		Global: Global{
			ShutdownTimeoutInSeconds: v.GetInt("shutdown_timeout_in_seconds"),
		},
	}
}
