package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchCmd watches a markup file and reprints the styled spans after
// every write. Editors often emit bursts of write events per save, so
// re-derivation is debounced.
type WatchCmd struct {
	File     string        `arg:"" type:"existingfile" help:"Markup file."`
	JSON     bool          `help:"Emit spans as JSON."`
	Debounce time.Duration `default:"100ms" help:"Quiet period before re-deriving."`
}

func (c *WatchCmd) Run(cc *cmdContext) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(c.File); err != nil {
		return fmt.Errorf("watching %s: %w", c.File, err)
	}

	if err := c.derive(cc); err != nil {
		fmt.Fprintf(os.Stderr, "mathedit: %v\n", err)
	}

	var timer *time.Timer
	pending := make(chan struct{}, 1)
	for {
		select {
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(c.Debounce, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})

		case <-pending:
			if err := c.derive(cc); err != nil {
				// Mid-save parse failures are routine; report and keep
				// watching.
				fmt.Fprintf(os.Stderr, "mathedit: %v\n", err)
			}

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "mathedit: watch: %v\n", err)
		}
	}
}

func (c *WatchCmd) derive(cc *cmdContext) error {
	doc, err := loadDocument(c.File)
	if err != nil {
		return err
	}
	return printSpans(doc, cc.palette, c.JSON)
}
