package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"time"

	"github.com/akmonengine/spherecubed"
	"github.com/akmonengine/spherecubed/config"
	"github.com/akmonengine/spherecubed/level"
	"github.com/akmonengine/spherecubed/levels"

	"github.com/alecthomas/kong"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var CLI struct {
	Config   string `help:"YAML configuration file." type:"existingfile"`
	LogLevel string `help:"Log level." enum:"debug,info,warn,error" default:"info"`

	Run struct {
		Ticks    int    `help:"Number of ticks to simulate, 0 runs in real time until interrupted." default:"600"`
		Script   string `help:"Keys to hit, as comma separated TICK=KEY entries (e.g. 0=space,5=up)."`
		LevelDir string `help:"Directory holding level1.txt to levelN.txt, instead of the embedded campaign." type:"existingdir"`
	} `cmd:"" help:"Run a headless game."`

	Check struct {
		Files []string `arg:"" name:"files" help:"Level files to check." type:"existingfile"`
	} `cmd:"" help:"Parse and validate level files."`

	Watch struct {
		Dir      string        `arg:"" name:"dir" help:"Directory of level files." type:"existingdir"`
		Debounce time.Duration `help:"Delay after the last change before checking again." default:"250ms"`
	} `cmd:"" help:"Check level files again whenever they change."`

	Dump struct {
	} `cmd:"" name:"config" help:"Write the effective configuration to standard output."`
}

func writeError(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(1)
}

func main() {
	consoleWriter := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	log.Logger = log.Output(consoleWriter)

	ctx := kong.Parse(&CLI,
		kong.Name("spherecubed"),
		kong.Description("a ball rolling over a grid of cubes"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
			Summary: true,
		}))

	logLevel, err := zerolog.ParseLevel(CLI.LogLevel)
	if err != nil {
		writeError(err)
	}
	zerolog.SetGlobalLevel(logLevel)

	cfg, err := loadConfig(CLI.Config)
	if err != nil {
		writeError(err)
	}

	switch ctx.Command() {
	case "run":
		if CLI.Run.LevelDir != "" {
			cfg.LevelDir = CLI.Run.LevelDir
		}
		err = runCommand(cfg, CLI.Run.Ticks, CLI.Run.Script)
	case "check <files>":
		err = checkCommand(CLI.Check.Files)
	case "watch <dir>":
		err = watchCommand(CLI.Watch.Dir, CLI.Watch.Debounce)
	case "config":
		var data []byte
		data, err = cfg.Marshal()
		if err == nil {
			_, err = os.Stdout.Write(data)
		}
	}

	if err != nil {
		writeError(err)
	}
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}

// campaign reads the levels from the configured directory, or the embedded ones
func campaign(cfg config.Config) ([]*level.Level, error) {
	var fsys fs.FS = levels.FS
	count := min(cfg.LevelCount, levels.GAME_LEVEL_COUNT)
	if cfg.LevelDir != "" {
		fsys = os.DirFS(cfg.LevelDir)
		count = cfg.LevelCount
	}

	return spherecubed.LoadCampaign(fsys, levels.Names(count), cfg.Workers)
}

func runCommand(cfg config.Config, ticks int, keys string) error {
	script, err := spherecubed.ParseScript(keys)
	if err != nil {
		return err
	}

	levels, err := campaign(cfg)
	if err != nil {
		return err
	}

	world, err := spherecubed.NewWorld(cfg, levels, spherecubed.NopRenderer{})
	if err != nil {
		return err
	}
	game := spherecubed.NewGame(world)
	engine := spherecubed.NewEngine(world, game, cfg.Interval())

	world.Events.Subscribe(spherecubed.ON_STATE_CHANGED, func(event spherecubed.Event) {
		e := event.(spherecubed.StateChangedEvent)
		log.Info().Str("machine", e.Machine).Str("from", e.From).Str("to", e.To).Msg("state changed")
	})
	world.Events.Subscribe(spherecubed.ON_DIED, func(event spherecubed.Event) {
		e := event.(spherecubed.DiedEvent)
		log.Info().Int("level", e.Level+1).Int("lives", e.Lives).Msg("died")
	})
	world.Events.Subscribe(spherecubed.ON_FINISHED, func(event spherecubed.Event) {
		e := event.(spherecubed.FinishedEvent)
		log.Info().Int("level", e.Level+1).Bool("last", e.Last).Msg("finished")
	})

	if ticks > 0 {
		engine.Replay(script, ticks)
	} else {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()
		if err := engine.Run(ctx); err != nil && err != context.Canceled {
			return err
		}
	}

	log.Info().
		Uint64("ticks", engine.Ticks()).
		Str("state", game.Current().Name()).
		Int("level", world.LevelIndex+1).
		Int("lives", world.Lives).
		Str("position", fmt.Sprintf("%.3f", world.Player.Position())).
		Msg("done")

	return nil
}

// checkFile parses and validates one level file
func checkFile(path string) (*level.Level, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := level.Parse(f)
	if err != nil {
		return nil, err
	}

	return l, level.Validate(l)
}

func checkCommand(files []string) error {
	failed := 0
	for _, file := range files {
		l, err := checkFile(file)
		if err != nil {
			failed++
			log.Error().Str("file", file).Err(err).Msg("invalid level")
			continue
		}
		log.Info().Str("file", file).Int("rows", l.Rows).Int("cols", l.Cols).Msg("ok")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d levels are invalid", failed, len(files))
	}
	return nil
}
