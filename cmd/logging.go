package cmd

import (
	"github.com/achilleasa/whitted/log"
	"github.com/urfave/cli"
)

var logger = log.New("whitted")

// Apply the configured log level. The global -v and -vv flags take
// precedence over the config file.
func setupLogging(ctx *cli.Context, configLevel string) error {
	level, err := log.ParseLevel(configLevel)
	if err != nil {
		return err
	}

	if ctx.GlobalBool("v") {
		level = log.Info
	}

	if ctx.GlobalBool("vv") {
		level = log.Debug
	}

	log.SetLevel(level)
	logger.Debugf("log level set to %s", log.GetLevel())
	return nil
}
