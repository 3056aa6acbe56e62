package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/dskane/keyhud/internal/binding"
	"github.com/dskane/keyhud/internal/config"
	"github.com/dskane/keyhud/internal/input"
	"github.com/dskane/keyhud/internal/profile"
	"github.com/dskane/keyhud/internal/stats"
)

var runProfilePath string

func init() {
	runCmd.Flags().StringVarP(&runProfilePath, "profile", "p", "", "Profile file (overrides settings)")
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the matcher against events from stdin",
	Long: `Run loads the profile and feeds the coordinator from stdin, one
event per line:

    down <key>     key press        e.g. "down LeftControl", "down A"
    up <key>       key release
    mouse <button> mouse press      e.g. "mouse MouseWheelUp"

The held-modifier snapshot is tracked from the down/up lines, standing in
for the platform capture hook.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runOverlay(); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
			os.Exit(1)
		}
	},
}

func runOverlay() error {
	settings := config.Default()
	if settingsPath != "" {
		loaded, err := config.LoadSettings(settingsPath)
		if err != nil {
			return err
		}
		settings = loaded
	}
	if runProfilePath != "" {
		settings.Profile.Path = runProfilePath
	}
	if settings.Profile.Path == "" {
		return fmt.Errorf("no profile: pass --profile or set profile.path in settings")
	}

	logger := newLogger(settings.Logging.Level)

	manager := profile.NewManager(profile.WithLogger(logger))
	if err := manager.Load(settings.Profile.Path); err != nil {
		return err
	}

	if settings.Profile.Watch {
		watcher, err := profile.NewWatcher(manager, settings.Profile.Path,
			profile.WithWatcherLogger(logger))
		if err != nil {
			return err
		}
		defer watcher.Close()
	}

	opts := []input.Option{
		input.WithEffects(&printEffects{}),
		input.WithFlashDuration(settings.Input.FlashDuration()),
		input.WithQueueSize(settings.Input.QueueSize),
	}
	if settings.Stats.Enabled {
		store, err := stats.Open(settings.Stats.Path, stats.WithStoreLogger(logger))
		if err != nil {
			return err
		}
		defer store.Close()
		opts = append(opts, input.WithRecorder(store))
	}

	coord := input.NewCoordinator(manager, opts...)
	if err := coord.Start(); err != nil {
		return err
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = coord.Stop(ctx)
	}()
	coord.SetLive(settings.Input.Live)

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	var mods binding.Modifier
	for {
		select {
		case <-signals:
			return nil
		case line, ok := <-lines:
			if !ok {
				return nil
			}
			mods = dispatchLine(coord, line, mods)
		}
	}
}

// dispatchLine parses one stdin event line, updates the modifier
// snapshot, and feeds the coordinator. Returns the new snapshot.
func dispatchLine(coord *input.Coordinator, line string, mods binding.Modifier) binding.Modifier {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return mods
	}
	verb, key := fields[0], fields[1]

	switch verb {
	case "down":
		if m := input.ModifierForKey(key); m != binding.ModNone {
			mods = mods.With(m)
		}
		coord.ProcessKeyDown(key, mods)
	case "up":
		if m := input.ModifierForKey(key); m != binding.ModNone {
			mods = mods.Without(m)
		}
		coord.ProcessKeyUp(key, mods)
	case "mouse":
		coord.ProcessMouseDown(key, mods)
	}
	return mods
}

// printEffects writes matches and completion sets to stdout. It diffs the
// completions against the previously shown set to avoid repeating output.
type printEffects struct {
	mu       sync.Mutex
	lastMods binding.Modifier
	lastLen  int
	shown    bool
}

func (p *printEffects) BindingMatched(kb *binding.Keybinding) {
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Printf("match: %s [%s] (%s)\n", kb.DisplayName(), kb.Primary, kb.Category)
	p.shown = false
}

func (p *printEffects) ShowCompletions(mods binding.Modifier, bindings []*binding.Keybinding) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.shown && mods == p.lastMods && len(bindings) == p.lastLen {
		return
	}
	p.lastMods, p.lastLen, p.shown = mods, len(bindings), true

	held := mods.String()
	if held == "" {
		held = "none"
	}
	fmt.Printf("completions for %s: %d\n", held, len(bindings))
	for _, kb := range bindings {
		fmt.Printf("  %s  %s\n", kb.Primary, kb.DisplayName())
	}
}
