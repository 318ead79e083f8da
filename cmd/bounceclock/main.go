package main

import (
	"fmt"
	"os"

	"github.com/mjurik/bounceclock/internal/app"
	"github.com/mjurik/bounceclock/internal/config"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	application := app.NewApp(cfg)
	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  bounceclock [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --format <12|24>    Clock format (default: 24)")
	fmt.Fprintln(os.Stderr, "  --speed-x <n>       Horizontal cells per tick (default: 2)")
	fmt.Fprintln(os.Stderr, "  --speed-y <n>       Vertical cells per tick (default: 1)")
	fmt.Fprintln(os.Stderr, "  --interval <ms>     Animation tick (default: 50)")
	fmt.Fprintln(os.Stderr, "  --idle <sec>        Motion before settling (default: 5)")
	fmt.Fprintln(os.Stderr, "  --settle <ms>       Deceleration period (default: 2000)")
	fmt.Fprintln(os.Stderr, "  --sound             Bounce blips and an hourly chime")
	fmt.Fprintln(os.Stderr, "  --mono              White on black, no color cycling")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Keys: any key wakes the clock, 'q' or Esc quits")
}
