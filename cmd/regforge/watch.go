package main

import (
	"context"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// fileWatcher reports changes to a single file. It watches the parent
// directory so editors that replace the file by rename are still seen.
type fileWatcher struct {
	w    *fsnotify.Watcher
	path string
}

func newFileWatcher(path string) (*fileWatcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := w.Add(filepath.Dir(abs)); err != nil {
		w.Close()
		return nil, err
	}
	return &fileWatcher{w: w, path: abs}, nil
}

// Run calls onChange after every write, create or rename of the file until
// ctx is done. Errors from onChange and from the watcher go to onError and
// do not stop the loop.
func (fw *fileWatcher) Run(ctx context.Context, onChange func() error, onError func(error)) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != fw.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if err := onChange(); err != nil {
				onError(err)
			}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return nil
			}
			onError(err)
		}
	}
}

func (fw *fileWatcher) Close() error { return fw.w.Close() }
