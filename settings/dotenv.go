package settings

import (
	"os"

	"github.com/blockparty-sh/cpp-slp-graph-search/errors"
	"github.com/joho/godotenv"
)

// DefaultDotEnvFile is read by the gateway on startup when present.
const DefaultDotEnvFile = ".env"

// LoadDotEnv copies the KEY=value lines of filename into the process environment,
// where gocore finds them ahead of settings.conf. Variables that are already set
// keep their value. A missing file is not an error.
func LoadDotEnv(filename string) error {
	if _, err := os.Stat(filename); err != nil {
		if os.IsNotExist(err) {
			return nil
		}

		return errors.NewConfigurationError("[settings] cannot read %s", filename, err)
	}

	if err := godotenv.Load(filename); err != nil {
		return errors.NewConfigurationError("[settings] cannot parse %s", filename, err)
	}

	return nil
}
