package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"

	"github.com/geurime/geurime-tui/core"
	"github.com/geurime/geurime-tui/internal/config"
	"github.com/geurime/geurime-tui/internal/database"
	"github.com/geurime/geurime-tui/internal/database/repository"
	"github.com/geurime/geurime-tui/internal/i18n"
	"github.com/geurime/geurime-tui/internal/logging"
	"github.com/geurime/geurime-tui/internal/reveal"
	"github.com/geurime/geurime-tui/internal/route"
	"github.com/geurime/geurime-tui/pages"
)

var version = "dev"

const (
	snapshotWidth  = 80
	snapshotHeight = 24
)

func main() {
	_ = godotenv.Load()

	startFlag := flag.String("route", "", "start route (overrides ui.start_route)")
	langFlag := flag.String("lang", "", "interface language: ko or en (overrides ui.language)")
	printFlag := flag.Bool("print", false, "print one frame and exit")
	versionFlag := flag.Bool("version", false, "print version and exit")
	saveFlag := flag.Bool("save-config", false, "write the effective config, flags included, to the config file and exit")
	flag.Parse()

	if *versionFlag {
		fmt.Println("geurime", version)
		return
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if *startFlag != "" {
		cfg.UI.StartRoute = *startFlag
	}
	if *langFlag != "" {
		cfg.UI.Language = *langFlag
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}
	start, _ := route.Parse(cfg.UI.StartRoute)
	if *saveFlag {
		cfg.UI.StartRoute = string(start)
		if err := config.Save(cfg); err != nil {
			log.Fatalf("config: %v", err)
		}
		fmt.Println("wrote", config.Path())
		return
	}

	logger, logCloser, err := logging.Open(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		log.Fatalf("log: %v", err)
	}
	defer logCloser.Close()

	tr, err := i18n.New(cfg.UI.Language)
	if err != nil {
		log.Fatalf("i18n: %v", err)
	}

	bindings := core.DefaultKeyBindings()
	if unknown := core.UnknownActions(bindings, cfg.Keys); len(unknown) > 0 {
		logger.Warn("ignoring key overrides for unknown actions", "actions", strings.Join(unknown, ","))
	}
	keys := core.NewKeyRegistry(core.ApplyActionKeybindings(bindings, cfg.Keys))

	session := uuid.NewString()
	var (
		recorder core.VisitRecorder
		lister   pages.VisitLister
	)
	if cfg.History.Enabled {
		repo, closeDB, err := openHistory(cfg.History.Path, cfg.History.Keep, logger)
		if err != nil {
			log.Fatalf("history: %v", err)
		}
		defer closeDB.Close()
		recorder, lister = repo, repo
	}

	interactive := !*printFlag && isatty.IsTerminal(os.Stdout.Fd())

	var zones *zone.Manager
	if interactive && cfg.UI.Mouse {
		zones = zone.New()
		defer zones.Close()
	}
	var anim *reveal.Animator
	if cfg.UI.Animations {
		anim = reveal.New()
	}

	model := core.NewModel(core.Options{
		Pages:     pages.Defaults(pages.Options{Labels: tr, Visits: lister, Limit: cfg.History.Limit}),
		Keys:      keys,
		Labels:    tr,
		Visits:    recorder,
		SessionID: session,
		Zones:     zones,
		Reveal:    anim,
		Start:     start,
		Logger:    logger,
	})
	logger.Info("start", "version", version, "session", session, "route", start, "lang", tr.Language().String())

	if !interactive {
		fmt.Println(core.Snapshot(model, snapshotWidth, snapshotHeight))
		return
	}

	opts := []tea.ProgramOption{}
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	if cfg.UI.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(model, opts...)
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", "err", err)
		fmt.Printf("error: %v\n", err)
	}
	logger.Info("exit", "session", session)
}

func openHistory(path string, keep int, logger *slog.Logger) (*repository.VisitRepo, io.Closer, error) {
	if err := database.RunMigrations(path); err != nil {
		return nil, nil, fmt.Errorf("migrate: %w", err)
	}
	schema, dirty, err := database.SchemaVersion(path)
	if err != nil {
		return nil, nil, err
	}
	logger.Info("history", "path", path, "schema", schema, "dirty", dirty, "keep", keep)
	db, err := database.Open(path)
	if err != nil {
		return nil, nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, nil, fmt.Errorf("ping %s: %w", path, err)
	}
	return repository.NewVisitRepo(db).WithRetention(keep), db, nil
}
