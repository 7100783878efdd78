package config

import (
	"context"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const settle = 100 * time.Millisecond

// Watch reloads the profile file whenever it changes and sends each valid
// result to out, until ctx is cancelled. Invalid files are logged and skipped.
//
// The directory is watched rather than the file, editors often replace the
// file on save which would drop a watch on the file itself.
func Watch(ctx context.Context, file string, base Profile, out chan<- Profile, logger *log.Logger) error {
	file = filepath.Clean(file)

	w, err := fsnotify.NewWatcher()
	if nil != err {
		return err
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(file)); nil != err {
		return err
	}
	logger.Info("watching profile", "file", file)

	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if nil != timer {
				timer.Stop()
			}
			return nil

		case <-fire:
			fire = nil
			p, err := LoadProfile(file, base)
			if nil != err {
				logger.Warn("keeping previous profile", "err", err)
				continue
			}
			logger.Info("profile reloaded", "file", file)
			select {
			case out <- p:
			case <-ctx.Done():
				return nil
			}

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != file || ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
				continue
			}
			if nil == timer {
				timer = time.NewTimer(settle)
			} else {
				timer.Reset(settle)
			}
			fire = timer.C

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Error("profile watcher", "err", err)
		}
	}
}
