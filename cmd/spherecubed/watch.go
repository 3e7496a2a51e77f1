package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog/log"
)

// shouldCheck keeps the creations, writes and removals of level files
func shouldCheck(event fsnotify.Event) bool {
	if event.Op&fsnotify.Create == 0 &&
		event.Op&fsnotify.Write == 0 &&
		event.Op&fsnotify.Remove == 0 {
		return false
	}

	return strings.HasSuffix(event.Name, ".txt")
}

// checkDir checks every level file of dir, it returns the number of invalid ones
func checkDir(dir string) (int, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*.txt"))
	if err != nil {
		return 0, err
	}

	failed := 0
	for _, file := range files {
		if _, err := checkFile(file); err != nil {
			failed++
			log.Error().Str("file", file).Err(err).Msg("invalid level")
		}
	}
	log.Info().Str("dir", dir).Int("levels", len(files)).Int("invalid", failed).Msg("checked")

	return failed, nil
}

func watchCommand(dir string, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	if _, err := checkDir(dir); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	debounceTimer := time.NewTimer(0)
	<-debounceTimer.C

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if shouldCheck(event) {
				log.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("level changed")
				debounceTimer.Reset(debounce)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("watcher error")
		case <-debounceTimer.C:
			if _, err := checkDir(dir); err != nil {
				return err
			}
		case <-ctx.Done():
			log.Info().Msg("stopping watcher")
			return nil
		}
	}
}
