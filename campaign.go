package spherecubed

import (
	"fmt"
	"io/fs"

	"github.com/akmonengine/spherecubed/level"
	"github.com/rs/zerolog/log"
)

// LoadCampaign parses the named level files of fsys, using workers goroutines.
// Levels keep the order of names. The first failing file, in that order, is reported.
func LoadCampaign(fsys fs.FS, names []string, workers int) ([]*level.Level, error) {
	levels := make([]*level.Level, len(names))
	errs := make([]error, len(names))

	task(workers, names, func(i int, name string) {
		levels[i], errs[i] = loadLevel(fsys, name)
	})

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("%s: %w", names[i], err)
		}
	}

	log.Debug().Int("levels", len(levels)).Int("workers", workers).Msg("campaign loaded")

	return levels, nil
}

func loadLevel(fsys fs.FS, name string) (*level.Level, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	l, err := level.Parse(f)
	if err != nil {
		return nil, err
	}

	// An unreachable finish is still loaded, the level can be fixed while watched.
	if err := level.Validate(l); err != nil {
		log.Warn().Str("level", name).Err(err).Msg("level is not playable")
	}

	return l, nil
}
