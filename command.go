package main

import (
	"bufio"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/surdtool/surd/config"
	"github.com/surdtool/surd/kernel"
	"github.com/surdtool/surd/logger"
	"github.com/urfave/cli/v2"
)

func sqrtCmd(c *cli.Context) error {
	custom, err := setupRuntime(c)
	if err != nil {
		return err
	}

	if c.NArg() != 1 {
		return fmt.Errorf("sqrt wants exactly one integer argument, got %d", c.NArg())
	}
	n, err := parseRadicand(c.Args().Get(0))
	if err != nil {
		return err
	}

	digits := c.Int("digits")
	if digits == 0 {
		digits = custom.Precision.Digits
	}

	s, err := kernel.SqrtToDigits(n, digits)
	if err != nil {
		return err
	}
	fmt.Println(s)
	return nil
}

func promptCmd(c *cli.Context) error {
	_, err := setupRuntime(c)
	if err != nil {
		return err
	}

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("Enter an integer (press Ctrl-C to quit): ")
		if !scanner.Scan() {
			break
		}
		n, err := parseRadicand(scanner.Text())
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		fmt.Print("Enter number of digits of precision (at least 1): ")
		if !scanner.Scan() {
			break
		}
		digits, err := parsePrecision(scanner.Text())
		if err != nil {
			fmt.Println("Error:", err)
			continue
		}
		s, err := kernel.SqrtToDigits(n, digits)
		if err != nil {
			logger.Errorf("SqrtToDigits(%s, %d) %s\n", n, digits, err)
			fmt.Println("Error:", err)
			continue
		}
		fmt.Println(s)
	}
	return scanner.Err()
}

func setupRuntime(c *cli.Context) (*config.Custom, error) {
	var custom config.Custom
	custom.Precision.Digits = config.DefaultDigits
	custom.Log.Level = c.Int("log")
	custom.Log.Filter = c.String("filter")
	custom.Log.Limiter = c.Int("limiter")
	if file := c.String("config"); file != "" {
		loaded, err := config.Initialize(file)
		if err != nil {
			return nil, err
		}
		custom.Precision.Digits = loaded.Precision.Digits
		if !c.IsSet("log") {
			custom.Log.Level = loaded.Log.Level
		}
		if !c.IsSet("filter") {
			custom.Log.Filter = loaded.Log.Filter
		}
		if !c.IsSet("limiter") {
			custom.Log.Limiter = loaded.Log.Limiter
		}
	}

	logger.SetLevel(custom.Log.Level)
	logger.SetLimiter(custom.Log.Limiter)
	err := logger.SetFilter(custom.Log.Filter)
	if err != nil {
		return nil, err
	}
	return &custom, nil
}

// parseRadicand accepts any decimal form of an integer, so 16 and 16.0
// both pass while 2.5 is rejected before the kernel ever runs.
func parseRadicand(s string) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%q is not a number", strings.TrimSpace(s))
	}
	if !d.Equal(d.Truncate(0)) {
		return nil, fmt.Errorf("%q is not an integer", strings.TrimSpace(s))
	}
	return d.BigInt(), nil
}

func parsePrecision(s string) (int, error) {
	digits, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q is not an integer", strings.TrimSpace(s))
	}
	return digits, nil
}
