package config

// RawConfig mirrors the file layout. Nil fields were not set and keep the
// default.
type RawConfig struct {
	Format   *string         `yaml:"format"`
	Pretty   *bool           `yaml:"pretty"`
	LogLevel *string         `yaml:"log_level"`
	Query    *RawQueryConfig `yaml:"query"`
	Serve    *RawServeConfig `yaml:"serve"`
}

type RawQueryConfig struct {
	IncludeTitle    *bool `yaml:"include_title"`
	IncludeOwnerPID *bool `yaml:"include_owner_pid"`
}

type RawServeConfig struct {
	Transport *string `yaml:"transport"`
	Port      *int    `yaml:"port"`
}

// apply overlays the set fields of raw onto cfg.
func (raw RawConfig) apply(cfg *Config) {
	if raw.Format != nil {
		cfg.Format = *raw.Format
	}
	if raw.Pretty != nil {
		cfg.Pretty = *raw.Pretty
	}
	if raw.LogLevel != nil {
		cfg.LogLevel = *raw.LogLevel
	}
	if q := raw.Query; q != nil {
		if q.IncludeTitle != nil {
			cfg.Query.IncludeTitle = *q.IncludeTitle
		}
		if q.IncludeOwnerPID != nil {
			cfg.Query.IncludeOwnerPID = *q.IncludeOwnerPID
		}
	}
	if s := raw.Serve; s != nil {
		if s.Transport != nil {
			cfg.Serve.Transport = *s.Transport
		}
		if s.Port != nil {
			cfg.Serve.Port = *s.Port
		}
	}
}
