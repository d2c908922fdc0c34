package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/IssaKamara958/WiFiQRCode/internal/client"
	"github.com/IssaKamara958/WiFiQRCode/internal/config"
	"github.com/IssaKamara958/WiFiQRCode/internal/notify"
	"github.com/IssaKamara958/WiFiQRCode/internal/tui"
)

func main() {
	configFlag := flag.String("config", "", "Path to the config file (default ~/.config/wifiqr/config.toml)")
	serverFlag := flag.String("server", "", "Backend base URL, overrides the config file")
	dirFlag := flag.String("dir", "", "Directory the file browser opens in (default current directory)")
	debugFlag := flag.String("debug", "", "Write a request/response debug log (JSONL) to the specified file path")
	flag.Parse()

	var loadResult *config.LoadResult
	var err error
	if *configFlag != "" {
		loadResult, err = config.LoadFrom(*configFlag)
	} else {
		loadResult, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "wifiqr: config error: %v\n", err)
		os.Exit(1)
	}
	cfg := loadResult.Config

	for _, w := range loadResult.Warnings {
		fmt.Fprintf(os.Stderr, "wifiqr: config warning: %s\n", w)
	}

	if *serverFlag != "" {
		cfg.Server.BaseURL = *serverFlag
	}

	var clientOpts []client.Option
	var debugFile *os.File
	if *debugFlag != "" {
		debugFile, err = os.OpenFile(*debugFlag, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "wifiqr: failed to open debug log %q: %v\n", *debugFlag, err)
			os.Exit(1)
		}
		defer debugFile.Close()
		clientOpts = append(clientOpts, client.WithLogger(client.NewFileLogger(debugFile)))
	}
	clientOpts = append(clientOpts, client.WithRateLimit(cfg.Server.RequestsPerSecond))

	api := client.New(cfg.Server.BaseURL,
		time.Duration(cfg.Server.TimeoutSeconds)*time.Second,
		clientOpts...)

	startDir := *dirFlag
	if startDir == "" {
		startDir, _ = os.Getwd()
	}

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	// The TUI owns the terminal; stray log output would corrupt it.
	log.SetOutput(io.Discard)

	model := tui.NewModel(cfg,
		tui.WithScanClient(api),
		tui.WithNotifier(notify.NewCenter()),
		tui.WithStartDir(startDir),
		tui.WithHealthProbe(),
		tui.WithOnShutdown(func() {
			if debugFile != nil {
				_ = debugFile.Sync()
			}
		}),
	)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
	)

	go func() {
		<-sigCh
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "wifiqr: %v\n", err)
		os.Exit(1)
	}
}
