package main

import (
	"fmt"
	"os"

	"github.com/surdtool/surd/config"
	"github.com/surdtool/surd/logger"
	"github.com/urfave/cli/v2"
)

func main() {
	app := cli.NewApp()
	app.Name = "surd"
	app.Usage = "Compute the square root of any integer to arbitrary precision using continued fractions."
	app.Version = config.BuildVersion
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "the optional TOML configuration file",
		},
		&cli.IntFlag{
			Name:    "log",
			Aliases: []string{"l"},
			Value:   logger.INFO,
			Usage:   "the log level",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: "the RE2 regex pattern to filter log",
		},
		&cli.IntFlag{
			Name:  "limiter",
			Usage: "the maximum count of one log line",
		},
	}
	app.EnableBashCompletion = true
	app.Commands = []*cli.Command{
		{
			Name:      "sqrt",
			Aliases:   []string{"s"},
			Usage:     "Compute the square root of an integer",
			ArgsUsage: "INTEGER",
			Action:    sqrtCmd,
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "digits",
					Aliases: []string{"d"},
					Usage:   "the count of decimal digits to compute",
				},
			},
		},
		{
			Name:    "prompt",
			Aliases: []string{"p"},
			Usage:   "Read integers and precisions interactively and print their square roots",
			Action:  promptCmd,
		},
	}
	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err)
	}
}
