// Package bootstrap handles application initialization and the single linear
// run: invoke the detector, parse its report, show the selection dialog and
// persist the outcome.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rivo/tview"
	"golang.org/x/term"

	"github.com/osdeploy/winedition/internal/config"
	"github.com/osdeploy/winedition/internal/detector"
	"github.com/osdeploy/winedition/internal/edition"
	"github.com/osdeploy/winedition/internal/envstore"
	"github.com/osdeploy/winedition/internal/logger"
	"github.com/osdeploy/winedition/internal/ui/components"
)

// ErrCanceled is returned when the operator cancels the dialog. The
// surrounding deployment tooling interprets the matching exit code as "stop",
// so cancellation must stay distinguishable from real failures.
var ErrCanceled = errors.New("selection canceled by operator")

// Options contains all the options for bootstrapping the application.
type Options struct {
	ConfigPath string
	// Flag values for config overrides
	FlagFamily             string
	FlagDetector           string
	FlagReport             string
	FlagLog                string
	FlagStore              string
	FlagTesting            bool
	FlagSkipFamily         bool
	FlagDefaultFamily      string
	FlagUnknownFamilyLabel string
	FlagFamilyVar          string
	FlagEditionVar         string
	FlagAutoVar            string
	FlagKeyVar             string
	FlagDebug              bool
}

// Bootstrap assembles the effective configuration from environment, config
// file and flags, in that precedence order (flags win).
func Bootstrap(opts Options) (*config.Config, error) {
	cfg := config.NewConfig()

	if opts.ConfigPath != "" {
		if err := cfg.MergeWithFile(opts.ConfigPath); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	applyFlagsToConfig(cfg, opts)
	cfg.SetDefaults()
	config.DebugEnabled = cfg.Debug

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// applyFlagsToConfig applies command line flags to the config object.
func applyFlagsToConfig(cfg *config.Config, opts Options) {
	if opts.FlagFamily != "" {
		cfg.Family = opts.FlagFamily
	}
	if opts.FlagDetector != "" {
		cfg.DetectorPath = opts.FlagDetector
	}
	if opts.FlagReport != "" {
		cfg.ReportPath = opts.FlagReport
	}
	if opts.FlagLog != "" {
		cfg.LogPath = opts.FlagLog
	}
	if opts.FlagStore != "" {
		cfg.StorePath = opts.FlagStore
	}
	if opts.FlagTesting {
		cfg.Testing = true
	}
	if opts.FlagSkipFamily {
		cfg.SkipFamily = true
	}
	if opts.FlagDefaultFamily != "" {
		cfg.DefaultFamily = opts.FlagDefaultFamily
	}
	if opts.FlagUnknownFamilyLabel != "" {
		cfg.UnknownFamilyLabel = opts.FlagUnknownFamilyLabel
	}
	if opts.FlagFamilyVar != "" {
		cfg.Variables.Family = opts.FlagFamilyVar
	}
	if opts.FlagEditionVar != "" {
		cfg.Variables.Edition = opts.FlagEditionVar
	}
	if opts.FlagAutoVar != "" {
		cfg.Variables.Auto = opts.FlagAutoVar
	}
	if opts.FlagKeyVar != "" {
		cfg.Variables.Key = opts.FlagKeyVar
	}
	if opts.FlagDebug {
		cfg.Debug = true
	}
}

// Run executes one complete selection run. It returns ErrCanceled when the
// operator cancels; any other error is a real failure.
func Run(opts Options) error {
	cfg, err := Bootstrap(opts)
	if err != nil {
		return err
	}

	if cfg.Testing {
		logger.InitGlobalDiscardLogger()
	} else {
		level := logger.LevelInfo
		if cfg.Debug {
			level = logger.LevelDebug
		}
		if err := logger.InitGlobalLogger(level, cfg.LogPath); err != nil {
			// Logging is best-effort; the selection flow matters more.
			fmt.Fprintf(os.Stderr, "warning: log file unavailable: %v\n", err)
		}
	}

	log := logger.GetGlobalLogger()
	log.Info("starting edition selection, report=%s detector=%s", cfg.ReportPath, cfg.DetectorPath)

	store, err := openStore(cfg)
	if err != nil {
		log.Error("environment store unavailable: %v", err)
		notifyStoreFailure(err)

		return fmt.Errorf("environment store unavailable: %w", err)
	}

	detection := runDetection(context.Background(), cfg, log)

	resolver := &edition.Resolver{
		Editions:  edition.DefaultEditions(),
		Detection: detection,
	}
	if cfg.Family == "" && !cfg.SkipFamily {
		resolver.Families = edition.DefaultFamilies()
		resolver.DefaultFamily = cfg.DefaultFamily
		resolver.FamilyBlankLabel = cfg.UnknownFamilyLabel
	}

	result, err := runDialog(resolver)
	if err != nil {
		return err
	}

	if result.Canceled {
		log.Info("selection canceled")

		return ErrCanceled
	}

	outcome := result.Outcome
	log.Info("selection confirmed: edition=%s auto=%t family=%q",
		outcome.EditionCode, outcome.AutoSelected, outcome.Family)

	if err := outcome.Persist(store, varNames(cfg)); err != nil {
		log.Error("persisting outcome: %v", err)
		if !cfg.Testing {
			return err
		}
	}

	return nil
}

func varNames(cfg *config.Config) edition.VarNames {
	return edition.VarNames{
		Family:  cfg.Variables.Family,
		Edition: cfg.Variables.Edition,
		Auto:    cfg.Variables.Auto,
		Key:     cfg.Variables.Key,
	}
}

// openStore selects the environment store backend. Testing mode swaps in an
// in-memory store so no persistence side effects escape the run.
func openStore(cfg *config.Config) (envstore.Store, error) {
	if cfg.Testing {
		return envstore.NewMemoryStore(), nil
	}

	if cfg.StorePath != "" {
		return envstore.OpenFileStore(cfg.StorePath)
	}

	return envstore.ProcessStore{}, nil
}

// notifyStoreFailure surfaces a fatal store failure to the operator. The
// dialog blocks until dismissed; on a broken terminal it falls back to stderr.
func notifyStoreFailure(err error) {
	msg := fmt.Sprintf("Cannot reach the deployment environment store:\n\n%v\n\nThe deployment step will be aborted.", err)
	if !term.IsTerminal(int(os.Stdin.Fd())) || components.ShowBlockingError("Environment Store", msg) != nil {
		fmt.Fprintln(os.Stderr, msg)
	}
}

// runDetection invokes the external detector and parses its report. Every
// failure path degrades to a disabled result and a manual-only dialog.
func runDetection(ctx context.Context, cfg *config.Config, log *logger.Logger) edition.DetectionResult {
	disabled := edition.DetectionResult{
		EditionCode:    edition.Unknown,
		EditionDisplay: edition.Unknown,
	}

	inv := detector.NewInvoker()

	res, err := inv.Run(ctx, cfg.DetectorPath, cfg.ReportPath)
	if err != nil {
		log.Error("detector failed to run: %v", err)

		return disabled
	}

	if res.Skipped {
		log.Info("no detector at %q, skipping detection", cfg.DetectorPath)

		return disabled
	}

	log.Debug("detector exit=%d stdout=%q stderr=%q", res.ExitCode, res.Stdout, res.Stderr)

	lines, err := detector.ReadReport(cfg.ReportPath)
	if err != nil {
		log.Error("reading detection report: %v", err)

		return disabled
	}

	detection := edition.ParseReport(lines, edition.DefaultEditions())
	log.Info("detection result: edition=%s enabled=%t key_found=%t",
		detection.EditionDisplay, detection.Enabled, detection.OEMKey != "")

	return detection
}

// runDialog shows the blocking selection dialog and waits for a single
// confirmed-or-canceled decision.
func runDialog(resolver *edition.Resolver) (components.SelectionResult, error) {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return components.SelectionResult{}, fmt.Errorf("an interactive terminal is required for edition selection")
	}

	resultChan := make(chan components.SelectionResult, 1)

	app := tview.NewApplication()
	page := components.NewSelectionPage(app, resolver, resultChan)

	if err := app.SetRoot(page, true).EnableMouse(true).Run(); err != nil {
		return components.SelectionResult{}, fmt.Errorf("running selection dialog: %w", err)
	}

	select {
	case res := <-resultChan:
		return res, nil
	default:
		// The application stopped without a decision (e.g. interrupt);
		// treat it as cancellation.
		return components.SelectionResult{Canceled: true}, nil
	}
}
