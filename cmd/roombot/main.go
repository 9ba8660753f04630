package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"room-bot/domain"
	"room-bot/domain/event"
	"room-bot/internal"
	"room-bot/observability"
	"room-bot/platform/local"
	"room-bot/runtime"
	"room-bot/runtime/workers"
	"room-bot/services"
	"syscall"
	"time"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/pflag"
	_ "go.uber.org/automaxprocs"
	"k8s.io/utils/clock"
)

// Exit codes to provide meaningful status to the operating system or service manager.
const (
	exitOK      = 0
	exitRuntime = 1
	exitConfig  = 2
)

const drainTimeout = 10 * time.Second

func main() {
	code, err := run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "roombot terminated with error: %v\n", err)
	}
	os.Exit(code)
}

func run() (int, error) {
	// 1. Flags & configuration
	var envFile string
	var noConsole bool
	flagSet := pflag.NewFlagSet("roombot", pflag.ContinueOnError)
	flagSet.StringVar(&envFile, "env-file", "", "load environment variables from this file first")
	flagSet.BoolVar(&noConsole, "no-console", false, "do not read console commands from stdin")
	if err := flagSet.Parse(os.Args[1:]); err != nil {
		if err == pflag.ErrHelp {
			return exitOK, nil
		}
		return exitConfig, err
	}
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return exitConfig, fmt.Errorf("env file %s: %w", envFile, err)
		}
	}

	config, err := internal.Load()
	if err != nil {
		return exitConfig, err
	}
	platformConfig, err := local.LoadConfig()
	if err != nil {
		return exitConfig, err
	}

	logger, closer := internal.NewLogger(config)
	defer func() { _ = closer.Close() }()

	printBanner(os.Stdout, config)

	// 2. Context & signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 3. Supervision & orchestration
	metrics := observability.NewMetrics()
	telemetryChan := make(chan event.Event, config.BufferSize)
	sup := workers.NewSupervisor(logger, telemetryChan, config.RestartInterval)
	orchestrator := runtime.NewOrchestrator(logger, sup, telemetryChan, metrics,
		config.NumberOfWorkers, config.BufferSize, config.HandlerTimeout, config.MetricInterval)

	// 4. Platform & policy
	platform := local.NewPlatform(logger, platformConfig)
	state := domain.NewState()
	registry := runtime.NewRegistry()
	clk := clock.RealClock{}
	scheduler := runtime.NewEvictionScheduler(logger, clk, platform, metrics, config.HandlerTimeout)
	policy := services.Policy{
		TriggerWord:   config.TriggerWord,
		RoomPrefix:    config.RoomPrefix,
		HelperName:    config.HelperName,
		EvictionGrace: config.EvictionGrace,
	}
	dispatcher := services.NewMessageDispatcher(logger, platform, metrics)
	rooms := services.NewRoomService(logger, platform, state, registry, dispatcher, metrics, policy)
	membership := services.NewMembershipService(logger, state, dispatcher, platform, scheduler, metrics, policy)
	trigger := services.NewTriggerService(logger, platform, rooms, dispatcher, metrics, policy)

	router := runtime.NewRouter(logger, runtime.RouterConfig{
		Platform:   platform,
		State:      state,
		Rooms:      rooms,
		Membership: membership,
		Trigger:    trigger,
		Clock:      clk,
		Warmup:     config.WarmupDelay,
		Jobs:       orchestrator.Jobs(),
		Telemetry:  telemetryChan,
	})
	orchestrator.Add(router, scheduler)
	if !noConsole {
		orchestrator.Add(local.NewConsole(logger, platform, os.Stdin, os.Stdout))
	}
	if config.DebugPort > 0 {
		orchestrator.Add(internal.NewDebugServer(logger, config.DebugPort, metrics.Registry(), state, registry, scheduler))
	}

	// 5. Start the workers, then log in
	errChan := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := orchestrator.Start(ctx); err != nil {
			errChan <- fmt.Errorf("orchestrator error: %w", err)
		}
	}()

	if err := platform.Login(ctx); err != nil {
		return exitRuntime, fmt.Errorf("login failed: %w", err)
	}

	// 6. Wait for stop or error
	select {
	case <-ctx.Done():
		logger.Info("Shutdown signal received")
	case err := <-errChan:
		return exitRuntime, err
	}

	// 7. Let the workers drain
	select {
	case <-done:
		logger.Info("Program stopped cleanly")
	case <-time.After(drainTimeout):
		logger.Warn("Workers still running after drain timeout")
	}
	return exitOK, nil
}

func printBanner(out io.Writer, config internal.Config) {
	banner := fmt.Sprintf(`
=================== room-bot ===================

Hello,

I'm a bot with the following super powers:

1. Find a room
2. Add people to room
3. Del people from room
4. Change room topic
5. Monitor room events

If you send me the magic word '%s',
you will get an invitation to join my own room!
________________________________________________
`, config.TriggerWord)
	fmt.Fprintln(out, color.New(color.FgGreen, color.OpBold).Render(banner))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Setting", "Value"})
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.AppendBulk(config.Rows())
	table.Render()
	fmt.Fprintln(out, "Type help for console commands.")
}
