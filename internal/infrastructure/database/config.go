package database

type Config struct {
	URI               string
	ConnectionTimeout int64 `yaml:"connection_timeout_in_ms"`
	QueryTimeout      int64 `yaml:"query_timeout_in_ms"`
	MaxOpenConns      int   `yaml:"max_open_conns"`
	MaxIdleConns      int   `yaml:"max_idle_conns"`
	SlowQueryInMS     int64 `yaml:"slow_query_in_ms"`
}

const (
	defaultConnectionTimeout = 10000
	defaultQueryTimeout      = 5000
)

func (c Config) withDefaults() Config {
	if c.ConnectionTimeout <= 0 {
		c.ConnectionTimeout = defaultConnectionTimeout
	}
	if c.QueryTimeout <= 0 {
		c.QueryTimeout = defaultQueryTimeout
	}

	return c
}
