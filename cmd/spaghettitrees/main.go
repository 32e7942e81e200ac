package main

import (
	"context"
	"flag"
	"log/slog"
	"os"

	"github.com/df-mc/spaghettitrees/server"
	"github.com/google/subcommands"
)

var (
	configPath = flag.String("config", "spaghettitrees.toml", "path of the TOML configuration file")
	debug      = flag.Bool("debug", false, "log debug messages")
)

func main() {
	subcommands.Register(subcommands.HelpCommand(), "")
	subcommands.Register(subcommands.FlagsCommand(), "")
	subcommands.Register(&listCMD{}, "registry")
	subcommands.Register(&dumpCMD{}, "registry")
	subcommands.Register(&inspectCMD{}, "registry")
	subcommands.Register(&simulateCMD{}, "generation")
	subcommands.Register(&growCMD{}, "generation")
	subcommands.Register(&generateCMD{}, "generation")
	subcommands.ImportantFlag("config")

	flag.Parse()
	os.Exit(int(subcommands.Execute(context.Background())))
}

// logger returns the Logger that commands report to.
func logger() *slog.Logger {
	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// loadExtension loads the configuration file and registers every feature.
// seed overrides the world seed of the configuration if not 0.
func loadExtension(log *slog.Logger, seed int64) (*server.Extension, error) {
	uc, err := server.LoadUserConfig(*configPath)
	if err != nil {
		return nil, err
	}
	if seed != 0 {
		uc.Generation.Seed = seed
	}
	conf, err := uc.Config(log)
	if err != nil {
		return nil, err
	}
	return conf.New()
}

// fail logs the error passed and returns the failure exit status.
func fail(log *slog.Logger, msg string, err error) subcommands.ExitStatus {
	log.Error(msg, "err", err)
	return subcommands.ExitFailure
}
