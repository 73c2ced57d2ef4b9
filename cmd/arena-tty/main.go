// Command arena-tty plays the cell arena in a terminal.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/pthm-cable/arena/config"
	"github.com/pthm-cable/arena/game"
	"github.com/pthm-cable/arena/highscore"
)

func main() {
	configPath := flag.String("config", "", "Path to config.yaml (empty = use defaults)")
	seed := flag.Int64("seed", 0, "RNG seed (0 = time-based)")
	highScorePath := flag.String("highscore", "", "High score file (empty = use config)")
	mute := flag.Bool("mute", false, "Start with sound off")
	logPath := flag.String("log", "", "Write JSON logs to this file (default: discard)")
	flag.Parse()

	if err := setupLogging(*logPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if err := run(*configPath, *seed, *highScorePath, *mute); err != nil {
		slog.Error("arena-tty exited", "error", err)
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogging keeps slog off the terminal, which belongs to the screen.
func setupLogging(path string) error {
	if path == "" {
		slog.SetDefault(slog.New(slog.NewJSONHandler(io.Discard, nil)))
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(f, nil)))
	return nil
}

func run(configPath string, seed int64, highScorePath string, mute bool) error {
	if err := config.Init(configPath); err != nil {
		return err
	}
	cfg := config.Cfg()
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	if highScorePath == "" {
		highScorePath = cfg.Persistence.HighScorePath
	}

	g, err := game.New(game.Options{
		Config:     cfg,
		Seed:       seed,
		HighScores: highscore.NewFileStore(highScorePath),
	})
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("creating screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("initializing screen: %w", err)
	}
	defer screen.Fini()
	screen.SetStyle(styleBase)
	screen.HideCursor()

	sound, err := NewSound()
	if err != nil {
		slog.Warn("sound disabled", "error", err)
	}
	if mute {
		sound.ToggleMute()
	}

	t := &terminal{
		game:   g,
		view:   newView(screen, cfg.Player.StartRadius),
		sound:  sound,
		events: make(chan tcell.Event, 64),
	}
	go t.poll(screen)
	return t.loop()
}

// terminal owns the screen session. Everything except event polling runs
// on one goroutine.
type terminal struct {
	game   *game.Game
	view   *view
	sound  *Sound
	events chan tcell.Event

	keys     keyHold
	lastOver *game.GameOver
	quit     bool
	cancel   context.CancelFunc
}

func (t *terminal) poll(screen tcell.Screen) {
	for {
		ev := screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		t.events <- ev
	}
}

// loop alternates between the menu and play sessions until the player quits.
func (t *terminal) loop() error {
	t.game.OnGameOver(func(over game.GameOver) {
		t.lastOver = &over
	})
	for {
		if !t.waitForStart() {
			return nil
		}
		if err := t.play(); err != nil && !errors.Is(err, context.Canceled) {
			return err
		}
		if t.quit {
			return nil
		}
	}
}

// waitForStart shows the menu until start (true) or quit (false).
func (t *terminal) waitForStart() bool {
	for {
		t.drawMenu()
		ev, ok := <-t.events
		if !ok {
			return false
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			t.view.resize()
		case *tcell.EventKey:
			action, _ := classifyKey(ev)
			switch action {
			case keyStart:
				return true
			case keyQuit:
				return false
			case keyMute:
				t.sound.ToggleMute()
			}
		}
	}
}

func (t *terminal) drawMenu() {
	snap := t.game.Snapshot()
	if t.game.Tick() > 0 {
		t.view.drawArena(&snap)
	} else {
		t.view.screen.Clear()
	}
	t.view.drawMenu(t.lastOver, t.game.HighScore())
	t.view.screen.Show()
}

// play runs one session on a driver until game over or quit.
func (t *terminal) play() error {
	t.lastOver = nil
	t.keys.release()
	t.game.Start()
	t.view.cam.Reset()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	t.cancel = cancel

	driver := game.NewDriver(t.game, game.WallClock{}, game.FrameInterval)
	driver.OnFrame(t.frame)
	return driver.Run(ctx)
}

// frame runs after every tick: it applies pending input for the next tick,
// voices this tick's events and redraws.
func (t *terminal) frame(g *game.Game) {
	now := time.Now()
	t.drainInput(now)
	g.SetIntent(t.keys.intent(now))

	t.sound.Play(g.Events())

	snap := g.Snapshot()
	t.view.drawArena(&snap)
	t.view.drawHUD(&snap, t.sound.muted)
	t.view.text(0, t.view.screenHeight()-1, controlsHelp, styleBorder)
	t.view.screen.Show()
}

func (t *terminal) drainInput(now time.Time) {
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.stop(true)
				return
			}
			t.handle(ev, now)
		default:
			return
		}
	}
}

func (t *terminal) handle(ev tcell.Event, now time.Time) {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		t.view.resize()
	case *tcell.EventKey:
		action, dir := classifyKey(ev)
		switch action {
		case keyMove:
			t.keys.press(dir, now)
		case keySplit:
			t.game.RequestSplit()
		case keyMute:
			t.sound.ToggleMute()
		case keyQuit:
			t.stop(true)
		}
	}
}

func (t *terminal) stop(quit bool) {
	t.quit = quit
	if t.cancel != nil {
		t.cancel()
	}
}
