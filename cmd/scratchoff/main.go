// Command scratchoff opens a scratch-off card in a window, or in the terminal
// with -terminal. Drag with the left button held to reveal the message.
package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/image/font/gofont/gomono"

	"github.com/phanxgames/scratchoff"
	"github.com/phanxgames/scratchoff/audio"
	"github.com/phanxgames/scratchoff/terminal"
)

const windowTitle = "Scratch Off"

func main() {
	useTerminal := flag.Bool("terminal", false, "run in the terminal instead of a window")
	sound := flag.Bool("sound", false, "play a scratch sound for every revealed cell")
	showFPS := flag.Bool("fps", false, "show the FPS/TPS overlay")
	debug := flag.Bool("debug", false, "log per-frame timing at debug level")
	script := flag.String("script", "", "replay a JSON test script")
	shots := flag.String("screenshots", "", "directory for script screenshots")
	flag.Parse()

	_ = godotenv.Load()
	if lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info")); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if *debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// The terminal host owns stdout and stderr while it runs.
	out := zerolog.ConsoleWriter{Out: os.Stderr}
	if *useTerminal {
		f, err := os.OpenFile("scratchoff.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatal().Err(err).Msg("open log file")
		}
		defer f.Close()
		out = zerolog.ConsoleWriter{Out: f, NoColor: true}
	}
	log.Logger = zerolog.New(out).With().Timestamp().Logger()

	card := scratchoff.NewCard(scratchoff.WithLogger(log.With().Str("component", "card").Logger()))

	if *sound {
		player := audio.NewPlayer(log.With().Str("component", "audio").Logger())
		if err := player.Init(); err != nil {
			log.Warn().Err(err).Msg("audio unavailable, sound disabled")
		} else {
			card.OnReveal(player.Scratch)
			defer player.Close()
		}
	}

	if *useTerminal {
		runTerminal(card)
		return
	}
	runWindow(card, *showFPS, *debug, *script, *shots)
}

func runTerminal(card *scratchoff.Card) {
	screen, err := terminal.NewScreen()
	if err != nil {
		log.Fatal().Err(err).Msg("terminal")
	}
	host := terminal.New(screen, card, scratchoff.DefaultCalibration, log.With().Str("component", "terminal").Logger())
	if err := host.Init(); err != nil {
		log.Fatal().Err(err).Msg("terminal")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	err = host.Run(ctx)
	host.Fini()
	if err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal().Err(err).Msg("terminal exited")
	}
}

func runWindow(card *scratchoff.Card, showFPS, debug bool, script, shots string) {
	cal := scratchoff.DefaultCalibration
	scene := scratchoff.NewScene(card, cal)
	scene.ClearColor = scratchoff.Color{R: 0.08, G: 0.08, B: 0.1, A: 1}
	scene.SetLogger(log.With().Str("component", "scene").Logger())
	scene.SetDebugMode(debug)

	font, err := scratchoff.LoadCardFont(gomono.TTF, cal)
	if err != nil {
		log.Fatal().Err(err).Msg("load font")
	}
	scene.SetFont(font)

	if shots != "" {
		scene.ScreenshotDir = shots
	}
	if script != "" {
		data, err := os.ReadFile(script)
		if err != nil {
			log.Fatal().Err(err).Str("path", script).Msg("read test script")
		}
		runner, err := scratchoff.LoadTestScript(data)
		if err != nil {
			log.Fatal().Err(err).Str("path", script).Msg("load test script")
		}
		scene.SetTestRunner(runner)
		// Quit one frame after the script ends so a final screenshot is drawn.
		finished := false
		scene.SetUpdateFunc(func() error {
			if finished {
				log.Info().Float64("progress", card.Progress()).Msg("test script finished")
				return ebiten.Termination
			}
			finished = runner.Done()
			return nil
		})
	}

	err = scratchoff.Run(scene, scratchoff.RunConfig{
		Title:   windowTitle,
		ShowFPS: showFPS,
	})
	if err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal().Err(err).Msg("run")
	}
}

func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
