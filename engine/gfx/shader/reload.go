package shader

import (
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"slices"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Reloader watches the source files of a Program's stages. File events are
// collected on a background goroutine; Apply must be called from the thread
// owning the graphics context to recompile and relink.
type Reloader struct {
	prog    *Program
	files   map[Stage]string
	watcher *fsnotify.Watcher

	mu    sync.Mutex
	dirty map[Stage]bool

	done chan struct{}
}

// NewReloader starts watching files. The directories of the files are
// watched rather than the files themselves so editors that replace files
// on save are still seen.
func NewReloader(prog *Program, files map[Stage]string) (*Reloader, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("shader watcher: %w", err)
	}
	r := &Reloader{
		prog:    prog,
		files:   map[Stage]string{},
		watcher: w,
		dirty:   map[Stage]bool{},
		done:    make(chan struct{}),
	}
	dirs := map[string]bool{}
	for stage, path := range files {
		abs, err := filepath.Abs(path)
		if err != nil {
			w.Close()
			return nil, fmt.Errorf("shader watcher: %w", err)
		}
		r.files[stage] = abs
		dirs[filepath.Dir(abs)] = true
	}
	for dir := range dirs {
		if err := w.Add(dir); err != nil {
			w.Close()
			return nil, fmt.Errorf("shader watcher: watch %q: %w", dir, err)
		}
	}
	go r.loop()
	return r, nil
}

func (r *Reloader) loop() {
	defer close(r.done)
	log := r.prog.cfg.Logger
	for {
		select {
		case ev, ok := <-r.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Clean(ev.Name)
			for stage, path := range r.files {
				if path == name {
					r.mu.Lock()
					r.dirty[stage] = true
					r.mu.Unlock()
				}
			}
		case err, ok := <-r.watcher.Errors:
			if !ok {
				return
			}
			log.Error("shader watcher error", "err", err)
		}
	}
}

// Pending reports whether any stage has changed since the last Apply.
func (r *Reloader) Pending() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.dirty) > 0
}

// Apply re-adds every changed stage from its file and relinks the program if
// any stage changed. It returns the stages that were reloaded successfully.
// A stage whose new source fails to compile is left empty until its file is
// fixed.
func (r *Reloader) Apply() ([]Stage, error) {
	r.mu.Lock()
	stages := slices.Sorted(maps.Keys(r.dirty))
	clear(r.dirty)
	r.mu.Unlock()
	if len(stages) == 0 {
		return nil, nil
	}

	var (
		reloaded []Stage
		errs     []error
	)
	for _, stage := range stages {
		if err := r.prog.AddShaderFromFile(stage, r.files[stage]); err != nil {
			errs = append(errs, fmt.Errorf("reload %s shader: %w", stage, err))
			continue
		}
		reloaded = append(reloaded, stage)
	}
	if err := r.prog.Link(); err != nil {
		errs = append(errs, err)
	}
	r.prog.cfg.Logger.Info("shaders reloaded", "stages", reloaded, "failed", len(errs))
	return reloaded, errors.Join(errs...)
}

// Close stops watching and waits for the event goroutine to exit.
func (r *Reloader) Close() error {
	err := r.watcher.Close()
	<-r.done
	return err
}
