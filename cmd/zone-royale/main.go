// Command zone-royale plays a battle royale match in the terminal
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/zone-royale/audio"
	"github.com/lixenwraith/zone-royale/config"
	"github.com/lixenwraith/zone-royale/core"
	"github.com/lixenwraith/zone-royale/engine"
	"github.com/lixenwraith/zone-royale/store"
	"github.com/lixenwraith/zone-royale/terminal"
)

var (
	configPath = flag.String("config", "", "TOML config file")
	envFile    = flag.String("env", ".env", "dotenv file with ZONE_ROYALE_* overrides")
	debugFlag  = flag.Bool("debug", false, "log to logs/zone-royale.log and show the metrics line")
	seedFlag   = flag.Int64("seed", 0, "simulation seed, 0 seeds from the clock")
	muteFlag   = flag.Bool("mute", false, "start with sound off")
	headless   = flag.Bool("headless", false, "autoplay one match on a simulated clock and print the summary")
)

func main() {
	flag.Parse()
	os.Exit(run())
}

func run() int {
	if f := setupLogging(*debugFlag); f != nil {
		defer f.Close()
	}

	cfg, err := config.Load(*configPath, *envFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}
	if *muteFlag {
		cfg.Audio.Enabled = false
	}

	mem, err := store.NewMemory()
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: %v\n", err)
		return 1
	}

	seed := *seedFlag
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := log.Default()
	logger.Printf("[MAIN] seed %d", seed)
	opts := []engine.Option{engine.WithLogger(logger), engine.WithSeed(seed)}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *headless {
		sum, err := runHeadless(ctx, cfg, mem, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "headless: %v\n", err)
			return 1
		}
		fmt.Println(sum.Text())
		return 0
	}

	if err := runTerminal(ctx, cfg, mem, logger, opts); err != nil {
		fmt.Fprintf(os.Stderr, "zone-royale: %v\n", err)
		return 1
	}
	return 0
}

// runTerminal plays interactively until the user quits
func runTerminal(ctx context.Context, cfg config.Config, mem *store.Memory, logger *log.Logger, opts []engine.Option) error {
	eng, err := engine.New(cfg, mem, mem, mem, opts...)
	if err != nil {
		return err
	}

	// Audio is optional; a missing device leaves the player silent
	player := audio.NewPlayer(cfg.Audio, logger)
	if err := player.Start(); err == nil {
		defer player.Close()
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	core.OnCrash(screen.Fini)
	defer screen.Fini()

	runCtx, cancel := context.WithCancel(ctx)
	defer func() {
		cancel()
		<-eng.Done()
	}()
	core.Go(func() {
		if err := eng.Run(runCtx); err != nil {
			logger.Printf("[MAIN] engine: %v", err)
		}
	})

	app := terminal.NewApp(screen, eng,
		terminal.WithNotifier(player),
		terminal.WithAppLogger(logger),
		terminal.WithFrame(cfg.Timing.Frame.Duration),
		terminal.WithDebug(*debugFlag),
	)
	return app.Run(runCtx)
}
