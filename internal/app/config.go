package app

// Config contains the runtime options of the evaluator. Keep this small —
// add fields as the presentation layers need them.
type Config struct {
	// EnforceKPIs validates external input against the fixed KPI
	// vocabulary and the 0–5 score range before comparing. The agreement
	// core never does this itself.
	EnforceKPIs bool

	// MaxBatchRecords caps the size of uploaded batches. 0 means
	// unlimited.
	MaxBatchRecords int

	// SampleBatchSize is the default size of generated sample batches.
	SampleBatchSize int

	// SampleSeed seeds the sample generator. 0 picks a time-based seed.
	SampleSeed int64
}

// DefaultConfig returns a Config populated with sensible development defaults.
func DefaultConfig() *Config {
	return &Config{
		EnforceKPIs:     true,
		MaxBatchRecords: 10000,
		SampleBatchSize: 10,
	}
}
