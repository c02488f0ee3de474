package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-formstate/internal/config"
	"github.com/MKhiriev/go-formstate/internal/logger"
	"github.com/MKhiriev/go-formstate/internal/tui"
	"github.com/MKhiriev/go-formstate/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Println(buildInfo)

	cfg, err := config.GetFormDemoConfig(os.Args[1:])
	if err != nil {
		log := logger.NewLogger("formdemo")
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.Nop()
	if cfg.App.LogFile != "" {
		log = logger.NewFileLogger("formdemo", cfg.App.LogFile)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx = log.WithContext(ctx)

	ui, err := tui.New(ctx, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	values, err := ui.Run()
	if errors.Is(err, tui.ErrUserQuit) {
		fmt.Println("Bye!")
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("ui run error")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("Signed up %v <%v>\n", values["username"], values["email"])
}
