package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	pkg "github.com/foodgram/foodgram/pkg/internal"
	"github.com/foodgram/foodgram/pkg/internal/cache"
	"github.com/foodgram/foodgram/pkg/internal/database"
	"github.com/foodgram/foodgram/pkg/internal/grpc"
	"github.com/foodgram/foodgram/pkg/internal/http"
	"github.com/foodgram/foodgram/pkg/internal/services"
	"github.com/fatih/color"
	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})
}

func main() {
	// Booting screen
	fmt.Println(color.YellowString(" _____               _\n|  ___|__   ___   __| | __ _ _ __ __ _ _ __ ___\n| |_ / _ \\ / _ \\ / _` |/ _` | '__/ _` | '_ ` _ \\\n|  _| (_) | (_) | (_| | (_| | | | (_| | | | | | |\n|_|  \\___/ \\___/ \\__,_|\\__, |_|  \\__,_|_| |_| |_|\n                       |___/"))
	fmt.Printf("%s v%s\n", color.New(color.FgHiYellow).Add(color.Bold).Sprintf("Foodgram"), pkg.AppVersion)
	fmt.Printf("The recipe sharing service\n")
	color.HiBlack("=====================================================\n")

	// Load settings
	if err := pkg.LoadSettings(); err != nil {
		log.Panic().Err(err).Msg("An error occurred when loading settings.")
	}

	// Connect to database
	if err := database.NewGorm(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when connect to database.")
	} else if err := database.RunMigration(database.C); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when running database auto migration.")
	}

	// Initialize cache
	if err := cache.NewStore(); err != nil {
		log.Fatal().Err(err).Msg("An error occurred when initializing cache.")
	}

	// Server
	server := http.NewServer()
	go server.Listen()

	grpcServer := grpc.NewGrpc()
	go func() {
		if err := grpcServer.Listen(); err != nil {
			log.Fatal().Err(err).Msg("An error occurred when starting grpc server...")
		}
	}()

	// Configure timed tasks
	quartz := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(&log.Logger)))
	quartz.AddFunc("@every 60m", services.DoAutoDatabaseCleanup)
	quartz.AddFunc("@every 1m", grpcServer.DoDatabaseProbe)
	quartz.Start()

	// Messages
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	quartz.Stop()
	grpcServer.Stop()
	if err := server.Shutdown(); err != nil {
		log.Error().Err(err).Msg("An error occurred when shutting down server...")
	}
}
