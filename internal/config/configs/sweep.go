package configs

import "time"

// Sweep configures the background job that finalizes campaigns whose
// deadline has passed. It is off by default: finalization is normally
// requested by a caller.
type Sweep struct {
	Enabled  bool          `env:"ENABLED" envDefault:"false"`
	Interval time.Duration `env:"INTERVAL" envDefault:"1m"`
	// BatchSize bounds the campaigns finalized per run; zero means no bound.
	BatchSize int    `env:"BATCH_SIZE" envDefault:"100"`
	Caller    string `env:"CALLER" envDefault:"system:sweeper"`
}
