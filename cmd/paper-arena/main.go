package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/debug"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"github.com/lixenwraith/paper-arena/asset"
	"github.com/lixenwraith/paper-arena/audio"
	"github.com/lixenwraith/paper-arena/config"
	"github.com/lixenwraith/paper-arena/engine"
	"github.com/lixenwraith/paper-arena/input"
	"github.com/lixenwraith/paper-arena/parameter"
	"github.com/lixenwraith/paper-arena/persistence"
	"github.com/lixenwraith/paper-arena/render"
	"github.com/lixenwraith/paper-arena/scene"
)

var (
	configFlag  = flag.String("config", "", "YAML file overlaid on the default tuning")
	debugFlag   = flag.Bool("debug", false, "Write logs under ./logs and show the metric line")
	muteFlag    = flag.Bool("mute", false, "Start without audio")
	tokenFlag   = flag.String("token", "", "Leaderboard token; empty keeps scores local")
	scoresFlag  = flag.String("scores", "scores", "Directory for local and leaderboard score files")
	offlineFlag = flag.Bool("offline", false, "Never contact the leaderboard")
	fpsFlag     = flag.Int("fps", 60, "Target frame rate")
	followFlag  = flag.Bool("follow", false, "Center the view on the player instead of the arena")
)

func main() {
	flag.Parse()

	logger, logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(logger); err != nil {
		fmt.Fprintf(os.Stderr, "paper-arena: %v\n", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger) error {
	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return errors.Wrap(err, "create screen")
	}
	if err := screen.Init(); err != nil {
		return errors.Wrap(err, "init screen")
	}
	// Restore the terminal even if the game crashes
	defer func() {
		if r := recover(); r != nil {
			screen.Fini()
			fmt.Fprintf(os.Stderr, "\n\x1b[31mPAPER-ARENA CRASHED: %v\x1b[0m\n", r)
			fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
			os.Exit(1)
		}
	}()
	defer screen.Fini()

	sound := audio.NewSoundManager(audio.FromConfig(cfg.Audio), logger)
	if !*muteFlag {
		if err := sound.Initialize(); err != nil {
			logger.Warn("audio unavailable, continuing without sound", "error", err)
		}
	}
	defer sound.Cleanup()
	sound.SetMuted(*muteFlag)

	graph := scene.NewGraph()
	hud := render.NewHUD()
	assets := asset.NewArenaCatalog(cfg.Assets.LoadLatency, logger)

	files := persistence.NewFileStore(*scoresFlag)
	var remote persistence.Remote = persistence.NewFileRemote(files)
	if *offlineFlag {
		remote = persistence.Offline{}
	}
	store := persistence.NewStore(files, remote, logger)

	in := input.NewState(input.DefaultHold)
	keys := input.DefaultKeyTable()

	session, err := engine.NewGameSession(engine.Options{
		Config:      cfg,
		Scene:       graph,
		Assets:      assets,
		Display:     hud,
		Persistence: store,
		Sound:       sound,
		Input:       in,
		Clock:       engine.NewPausableClock(nil),
		Token:       *tokenFlag,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	renderer := render.NewTerminalRenderer(screen, graph, hud, parameter.ArenaHalfSize, cfg.Wall.MinHeight, cfg.Wall.MaxHeight)
	renderer.Follow = *followFlag

	session.Start(session.Now())
	loop(screen, session, renderer, hud, sound, in, keys, cfg.Session.PersistenceTimeout)
	logger.Info("exiting", "score", session.Score())
	return nil
}

// loop runs the frame ticker and handles keys until quit
func loop(
	screen tcell.Screen,
	session *engine.GameSession,
	renderer *render.TerminalRenderer,
	hud *render.HUD,
	sound *audio.SoundManager,
	in *input.State,
	keys *input.KeyTable,
	quitTimeout time.Duration,
) {
	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	fps := max(*fpsFlag, 1)
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch keys.Apply(in, ev, session.Now()) {
				case input.CommandQuit:
					// Let an outstanding score submission land before exiting
					ctx, cancel := context.WithTimeout(context.Background(), quitTimeout)
					_ = session.FinishGameOver(ctx)
					cancel()
					return
				case input.CommandPause:
					in.ReleaseAll()
					session.TogglePause()
				case input.CommandRestart:
					if session.Over() {
						hud.HideOverlay()
						in.ReleaseAll()
						session.Restart(session.Now())
					}
				case input.CommandMute:
					sound.ToggleMute()
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			session.Tick(session.Now())
			f := render.Frame{Paused: session.Paused(), Muted: sound.Muted()}
			if *debugFlag {
				f.Debug = session.Status().Line()
			}
			renderer.RenderFrame(f)
		}
	}
}
