package main

import (
	"flag"
	"fmt"
	"os"

	"wsa-guard/probe/internal/config"
	"wsa-guard/probe/internal/journal"
	"wsa-guard/probe/internal/logger"
	"wsa-guard/probe/internal/report"
	"wsa-guard/probe/internal/service"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		cfgPath = flag.String("config", "config/config.yaml", "Path to configuration file")
		major   = flag.Int("major", -1, "Requested major version (overrides config)")
		minor   = flag.Int("minor", -1, "Requested minor version (overrides config)")
		history = flag.Int("history", -1, "Number of earlier probes to show (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Cannot load configuration:", err)
		return 2
	}
	if err := applyFlags(&cfg, *major, *minor, *history); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}
	if err := logger.Init(cfg.LogPath, cfg.LogLevel); err != nil {
		fmt.Fprintln(os.Stderr, "Cannot initialize logger:", err)
		return 2
	}

	prober := &service.Prober{Logger: logger.L}

	var repo *journal.Repository
	if cfg.Journal.Enabled {
		gdb, err := journal.Open(journalConfig(cfg.Journal))
		if err != nil {
			logger.Errorf("Journal disabled: %v", err)
		} else {
			repo = journal.NewRepository(gdb)
			defer repo.Close()
			prober.Recorder = repo
			logger.Info("Journal driver: ", cfg.Journal.Driver)
		}
	}

	logger.Infof("Probing socket subsystem with version %d.%d", cfg.Version.Major, cfg.Version.Minor)
	res, earlier, err := runProbe(prober, repo, cfg)
	fmt.Println(report.Render(res))
	if err != nil {
		logger.Error("Cannot read journal: ", err)
	} else if repo != nil && cfg.History > 0 {
		fmt.Println(report.History(earlier))
	}

	if !res.OK() {
		return 1
	}
	return 0
}

// runProbe reads the journal before probing so the history holds only earlier runs.
func runProbe(p *service.Prober, repo *journal.Repository, cfg config.AppConfig) (service.Result, []journal.Probe, error) {
	var (
		earlier []journal.Probe
		err     error
	)
	if repo != nil && cfg.History > 0 {
		earlier, err = repo.Latest(cfg.History)
	}
	return p.Run(cfg.Version.Major, cfg.Version.Minor), earlier, err
}

func applyFlags(cfg *config.AppConfig, major, minor, history int) error {
	if major > 255 || minor > 255 {
		return fmt.Errorf("version parts must be in 0..255, got %d.%d", major, minor)
	}
	if major >= 0 {
		cfg.Version.Major = uint8(major)
	}
	if minor >= 0 {
		cfg.Version.Minor = uint8(minor)
	}
	if history >= 0 {
		cfg.History = history
	}
	return nil
}

func journalConfig(j config.Journal) journal.Config {
	return journal.Config{
		Driver:   j.Driver,
		Path:     j.Path,
		Host:     j.MySQL.Host,
		Port:     j.MySQL.Port,
		User:     j.MySQL.User,
		Password: j.MySQL.Pass,
		DBName:   j.MySQL.Name,
	}
}
