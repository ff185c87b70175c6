package cmd

import (
	"github.com/urfave/cli"
)

// Display scene info.
func ShowSceneInfo(ctx *cli.Context) error {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	if err = setupLogging(ctx, cfg.LogLevel); err != nil {
		return err
	}

	sc, err := cfg.Scene()
	if err != nil {
		return err
	}

	logger.Noticef("scene information:\n%s", sc.Stats())
	return nil
}
