package decisionrecorder

import "os"

type Config struct {
	Disabled bool

	InfluxDBURL    string
	InfluxDBToken  string
	InfluxDBOrg    string
	InfluxDBBucket string
}

func LoadConfig() *Config {
	cfg := &Config{
		Disabled: os.Getenv("DECISION_RECORDS_DISABLED") == "true",

		InfluxDBURL:    os.Getenv("INFLUXDB_URL"),
		InfluxDBToken:  os.Getenv("INFLUXDB_TOKEN"),
		InfluxDBOrg:    os.Getenv("INFLUXDB_ORG"),
		InfluxDBBucket: os.Getenv("INFLUXDB_BUCKET"),
	}

	if cfg.InfluxDBURL == "" {
		cfg.InfluxDBURL = "http://localhost:8086"
	}
	if cfg.InfluxDBBucket == "" {
		cfg.InfluxDBBucket = "hydration"
	}

	return cfg
}
