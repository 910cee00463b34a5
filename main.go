package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/hbomb79/Videomania/internal"
	"github.com/hbomb79/Videomania/pkg/logger"
)

var log = logger.Get("Bootstrap")

// main is the entry point to Videomania. Configuration is read from the YAML
// file named by the -config flag (if any), with the environment taking
// precedence over the file.
func main() {
	configPath := flag.String("config", "", "path to a YAML configuration file")
	flag.Parse()

	config := internal.VideomaniaConfig{}
	var err error
	if *configPath != "" {
		err = config.LoadFromFile(*configPath)
	} else {
		err = config.LoadFromEnv()
	}
	if err != nil {
		log.Emit(logger.FATAL, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	level, err := config.MinLoggingLevel()
	if err != nil {
		log.Emit(logger.WARNING, "%v, defaulting to %s\n", err, level)
	}
	logger.SetMinLoggingLevel(level.Level())

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := internal.New(config).Run(ctx); err != nil {
		log.Emit(logger.FATAL, "Videomania exited with error: %v\n", err)
		os.Exit(1)
	}
}
