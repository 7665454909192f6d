package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// Settings holds the process-level configuration of confsync. Defaults match
// the file layout the tool has always used, so a bare checkout works without
// any variable set.
type Settings struct {
	// Region of the SSM endpoint
	Region string `env:"AWS_REGION" envDefault:"eu-west-1"`
	// SSMEndpoint overrides the resolved SSM endpoint, e.g. for localstack
	SSMEndpoint string `env:"CONFSYNC_SSM_ENDPOINT"`

	ReplacementsPath string `env:"CONFSYNC_REPLACEMENTS" envDefault:"replacements.yml"`
	VariablesPath    string `env:"CONFSYNC_VARIABLES" envDefault:"variables.yml"`
	SnapshotPath     string `env:"CONFSYNC_SNAPSHOT" envDefault:"replacement_params.yml"`
	TemplateGlob     string `env:"CONFSYNC_TEMPLATES" envDefault:"config/*.default.php"`
	OutputDir        string `env:"CONFSYNC_OUTPUT_DIR" envDefault:"config"`
	// Marker is removed from template file names to build the output name
	Marker string `env:"CONFSYNC_MARKER" envDefault:".default"`

	// RetryTimeout bounds the backoff of a single remote call. Zero disables retries.
	RetryTimeout       time.Duration `env:"CONFSYNC_RETRY_TIMEOUT" envDefault:"30s"`
	PublishConcurrency int           `env:"CONFSYNC_PUBLISH_CONCURRENCY" envDefault:"5"`

	LogLevel string `env:"CONFSYNC_LOG_LEVEL" envDefault:"info"`
}

func GetEnvironmentVariables[T any]() (T, error) {
	var envObj T

	if err := env.Parse(&envObj); err != nil {
		return envObj, err
	}

	return envObj, nil
}
