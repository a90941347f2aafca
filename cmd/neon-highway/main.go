package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/alecthomas/kong"

	"github.com/lixenwraith/neon-highway/config"
)

// Version is set at build time with -ldflags "-X main.Version=..."
var Version = "dev"

var CLI struct {
	Version bool `help:"Print version information and exit." short:"v"`

	Play playCmd `cmd:"" default:"1" help:"Start the game (default)."`

	Config struct {
	} `cmd:"" help:"Write the default configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "neon-highway: %v\n", err)
	os.Exit(1)
}

func main() {
	// Panic Recovery: the terminal is restored by deferred Fini calls inside play before this runs
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "\n\x1b[31mNEON HIGHWAY CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()

	ctx := kong.Parse(&CLI,
		kong.Name("neon-highway"),
		kong.Description("an endless synthwave runner for the terminal"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	if CLI.Version {
		fmt.Printf("neon-highway %s\n", Version)
		os.Exit(0)
	}

	switch ctx.Command() {
	case "play":
		score, err := CLI.Play.run()
		if err != nil {
			writeError(err)
		}
		fmt.Printf("Final score: %d\n", score)
	case "config":
		data, err := config.DefaultYAML()
		if err != nil {
			writeError(err)
		}
		os.Stdout.Write(data)
	}
}
