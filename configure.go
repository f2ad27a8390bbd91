package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

const (
	envFileFlag   = "env-file"
	logLevelFlag  = "log-level"
	logFormatFlag = "log-format"
)

func configure(app *cli.App) {
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  envFileFlag,
			Usage: "dotenv file with credentials",
			Value: ".env",
		},
		cli.StringFlag{
			Name:   logLevelFlag,
			Usage:  "log level",
			Value:  "info",
			EnvVar: "LOG_LEVEL",
		},
		cli.StringFlag{
			Name:   logFormatFlag,
			Usage:  "log format (text or json)",
			Value:  "text",
			EnvVar: "LOG_FORMAT",
		},
	}
	app.Before = before
	serveCMD := makeServeCMD()
	showCMD := makeShowCMD()
	browseCMD := makeBrowseCMD()
	app.Commands = []cli.Command{serveCMD, showCMD, browseCMD}
}

func before(c *cli.Context) error {
	err := loadEnv(c.String(envFileFlag), c.IsSet(envFileFlag))
	if err != nil {
		return err
	}
	return configureLog(c.String(logLevelFlag), c.String(logFormatFlag))
}

// loadEnv loads file into the environment. A missing file is only an error when required.
func loadEnv(file string, required bool) error {
	if file == "" {
		return nil
	}
	if _, err := os.Stat(file); os.IsNotExist(err) && !required {
		return nil
	}
	if err := godotenv.Load(file); err != nil {
		return errors.Wrapf(err, "failed to load env file %v", file)
	}
	return nil
}

func configureLog(level string, format string) error {
	l, err := log.ParseLevel(level)
	if err != nil {
		return errors.Wrapf(err, "wrong log level %v", level)
	}
	log.SetLevel(l)
	switch format {
	case "json":
		log.SetFormatter(&log.JSONFormatter{})
	case "text", "":
		log.SetFormatter(&log.TextFormatter{})
	default:
		return errors.Errorf("wrong log format %v", format)
	}
	return nil
}
