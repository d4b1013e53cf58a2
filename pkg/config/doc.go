// Package config loads configuration from environment variables into typed
// structs.
//
// It wraps github.com/joho/godotenv and github.com/caarlos0/env/v11:
//
//   - The default .env file in the working directory is loaded on first use;
//     LoadEnv loads explicit files, later files overriding earlier ones.
//   - Load parses the environment into any struct using `env` field tags and
//     caches the result per type for the lifetime of the process.
//   - MustLoad and MustLoadEnv panic on failure for configuration the program
//     cannot start without.
//   - ResetCache and ForceReload drop cached values, mostly for tests.
//
// Settings describes the variables understood by the condition package and
// the condcheck tool:
//
//	CONDITIONS_LOCALE                 BCP 47 tag for value formatting (en)
//	CONDITIONS_DEFAULT_ARGUMENT_NAME  name of unnamed validators (value)
//	CONDITIONS_LOG_LEVEL              debug, info, warn or error
//	CONDITIONS_LOG_FORMAT             text or json
//	CONDITIONS_ENV                    development, staging or production
//
// Example:
//
//	var s config.Settings
//	config.MustLoad(&s)
//
//	logOpts, err := s.LoggerOptions("condcheck")
//	if err != nil {
//		return err
//	}
//	log := logger.New(logOpts...)
//
//	opts, err := s.Options(log)
//	if err != nil {
//		return err
//	}
//	condition.Configure(opts...)
package config
