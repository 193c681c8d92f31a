package adapter

import (
	"errors"
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
	"strings"
)

// ErrNoFullscreenBrowser is returned when no fullscreen candidate could be launched
var ErrNoFullscreenBrowser = errors.New("no fullscreen-capable browser found")

// openAppPrefix marks a macOS application launched through "open -a"
const openAppPrefix = "open-a:"

// Launcher opens URLs in a browser
type Launcher struct {
	command    string          // configured browser command, empty for system default
	args       []string        // additional arguments for the browser
	fullscreen []LaunchCommand // fullscreen candidates, tried in order
	logger     *slog.Logger

	lookPath func(string) (string, error)
	findApp  func(appName string) error
	start    func(name string, args ...string) error
}

// NewLauncher creates a new Launcher from the browser configuration
func NewLauncher(cfg BrowserConfig, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{
		command:    cfg.Command,
		args:       cfg.Args,
		fullscreen: cfg.Fullscreen,
		logger:     logger,
		lookPath:   exec.LookPath,
		findApp:    findMacApp,
		start:      startCommand,
	}
}

// startCommand starts a process without waiting for it
func startCommand(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// findMacApp reports whether Launch Services can resolve a macOS application
func findMacApp(appName string) error {
	return exec.Command("open", "-Ra", appName).Run()
}

// Open opens a URL in the configured browser or system default
func (l *Launcher) Open(url string) error {
	if l.command != "" {
		l.logger.Info("using configured browser", "command", l.command)
		return l.launch(LaunchCommand{Command: l.command, Args: l.args}, url)
	}
	return l.launchDefault(url)
}

// Fullscreen tries each fullscreen candidate in order until one launches
func (l *Launcher) Fullscreen(url string) error {
	for _, candidate := range l.fullscreen {
		if err := l.launch(candidate, url); err != nil {
			l.logger.Debug("fullscreen candidate not available", "command", candidate.Command, "error", err)
			continue
		}
		l.logger.Info("launched fullscreen", "command", candidate.Command)
		return nil
	}
	return ErrNoFullscreenBrowser
}

// launch runs a single browser invocation with the URL appended
func (l *Launcher) launch(lc LaunchCommand, url string) error {
	if strings.HasPrefix(lc.Command, openAppPrefix) {
		appName := strings.TrimPrefix(lc.Command, openAppPrefix)
		if err := l.findApp(appName); err != nil {
			return fmt.Errorf("application %q not found: %w", appName, err)
		}
		cmdArgs := []string{"-n", "-a", appName}
		if len(lc.Args) > 0 {
			cmdArgs = append(cmdArgs, "--args")
			cmdArgs = append(cmdArgs, lc.Args...)
		}
		cmdArgs = append(cmdArgs, url)
		return l.start("open", cmdArgs...)
	}

	// Check if command exists in PATH
	if _, err := l.lookPath(lc.Command); err != nil {
		return err
	}

	cmdArgs := append(append([]string{}, lc.Args...), url)
	l.logger.Info("launching browser", "command", lc.Command, "args", cmdArgs)
	return l.start(lc.Command, cmdArgs...)
}

// launchDefault opens the URL using the system default handler
func (l *Launcher) launchDefault(url string) error {
	var name string
	var args []string

	switch runtime.GOOS {
	case "darwin":
		name, args = "open", []string{url}
	case "windows":
		name, args = "cmd", []string{"/c", "start", "", url}
	default:
		// Linux and other Unix-like systems
		name, args = "xdg-open", []string{url}
	}

	l.logger.Info("launching with system default", "os", runtime.GOOS, "url", url)

	if err := l.start(name, args...); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}
