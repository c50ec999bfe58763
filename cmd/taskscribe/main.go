package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/msageha/taskscribe/internal/config"
	"github.com/msageha/taskscribe/internal/fileio"
	"github.com/msageha/taskscribe/internal/lock"
	"github.com/msageha/taskscribe/internal/logger"
	"github.com/msageha/taskscribe/internal/model"
	"github.com/msageha/taskscribe/internal/pipeline"
	"github.com/msageha/taskscribe/internal/render"
	"github.com/msageha/taskscribe/internal/roster"
	"github.com/msageha/taskscribe/internal/stt"
	"github.com/msageha/taskscribe/internal/watcher"
)

const version = "0.1.0"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	switch os.Args[1] {
	case "process":
		runProcess(os.Args[2:])
	case "watch":
		runWatch(os.Args[2:])
	case "roster":
		runRoster(os.Args[2:])
	case "version":
		fmt.Printf("taskscribe %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", os.Args[1])
		printUsage()
		os.Exit(2)
	}
}

// commonFlags holds flags shared by process and watch.
type commonFlags struct {
	configPath string
	rosterPath string
	format     string
	logLevel   string
	date       string
}

func (f *commonFlags) parse(flagName, value string) bool {
	switch flagName {
	case "--config":
		f.configPath = value
	case "--roster":
		f.rosterPath = value
	case "--format":
		f.format = value
	case "--log-level":
		f.logLevel = value
	case "--date":
		f.date = value
	default:
		return false
	}
	return true
}

// loadConfig merges the config file (if any) with command-line overrides.
func loadConfig(f commonFlags) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		loaded, err := config.Load(f.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if f.rosterPath != "" {
		cfg.Roster.Path = f.rosterPath
	}
	if f.format != "" {
		cfg.Output.Format = f.format
	}
	if f.logLevel != "" {
		cfg.Logging.Level = f.logLevel
	}
	if f.date != "" {
		cfg.ReferenceDate = f.date
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runProcess(args []string) {
	if len(args) < 1 || strings.HasPrefix(args[0], "--") {
		fmt.Fprintln(os.Stderr, "usage: taskscribe process <transcript-or-audio-file> [options]")
		os.Exit(2)
	}

	inputPath := args[0]
	rest := args[1:]

	var flags commonFlags
	var outPath, reportPath string

	for i := 0; i < len(rest); i++ {
		name := rest[i]
		if i+1 >= len(rest) {
			fmt.Fprintf(os.Stderr, "%s requires a value\n", name)
			os.Exit(2)
		}
		i++
		value := rest[i]

		switch name {
		case "--out":
			outPath = value
		case "--report":
			reportPath = value
		default:
			if !flags.parse(name, value) {
				fmt.Fprintf(os.Stderr, "unknown flag: %s\nusage: taskscribe process <file> [--roster path] [--config path] [--format json|table|csv|yaml] [--out path] [--report path.docx] [--date YYYY-MM-DD] [--log-level level]\n", name)
				os.Exit(2)
			}
		}
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	log := logger.New(cfg.Logging.Level)
	ctx := context.Background()

	dir, err := roster.LoadFile(cfg.Roster.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		os.Exit(1)
	}

	p := pipeline.New(newTranscriber(cfg, log))

	var result model.PipelineResult
	if watcher.IsAudioFile(inputPath) {
		result = p.ProcessAudio(ctx, inputPath, dir.Members(), cfg.Reference())
	} else {
		data, err := os.ReadFile(inputPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "read transcript: %v\n", err)
			os.Exit(1)
		}
		result = p.ProcessTranscript(ctx, string(data), dir.Members(), cfg.Reference())
	}

	if err := emit(result, cfg.Output.Format, outPath); err != nil {
		fmt.Fprintf(os.Stderr, "output: %v\n", err)
		os.Exit(1)
	}

	if reportPath != "" {
		if err := render.WriteReport(result, reportPath); err != nil {
			fmt.Fprintf(os.Stderr, "report: %v\n", err)
			os.Exit(1)
		}
		log.Info(ctx, "Report written to %s", reportPath)
	}

	if !result.Success {
		os.Exit(1)
	}
}

func runWatch(args []string) {
	var flags commonFlags
	var watchDir string

	for i := 0; i < len(args); i++ {
		name := args[i]
		if i+1 >= len(args) {
			fmt.Fprintf(os.Stderr, "%s requires a value\n", name)
			os.Exit(2)
		}
		i++
		value := args[i]

		switch name {
		case "--dir":
			watchDir = value
		default:
			if !flags.parse(name, value) {
				fmt.Fprintf(os.Stderr, "unknown flag: %s\nusage: taskscribe watch [--dir path] [--roster path] [--config path] [--format json|csv|yaml] [--date YYYY-MM-DD] [--log-level level]\n", name)
				os.Exit(2)
			}
		}
	}

	cfg, err := loadConfig(flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if watchDir != "" {
		cfg.Watch.Dir = watchDir
	}
	if cfg.Watch.Dir == "" {
		fmt.Fprintln(os.Stderr, "watch directory not set (use --dir or watch.dir in config)")
		os.Exit(2)
	}
	if cfg.Output.Format == "table" {
		fmt.Fprintln(os.Stderr, "watch mode writes artifact files; use --format json, csv, or yaml")
		os.Exit(2)
	}

	log := logger.New(cfg.Logging.Level)

	dir, err := roster.LoadFile(cfg.Roster.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "roster: %v\n", err)
		os.Exit(1)
	}

	// One watcher per drop folder.
	fl := lock.New(filepath.Join(cfg.Watch.Dir, ".taskscribe.lock"))
	if err := fl.TryLock(); err != nil {
		fmt.Fprintf(os.Stderr, "watch: %v\n", err)
		os.Exit(1)
	}
	defer fl.Unlock()

	p := pipeline.New(newTranscriber(cfg, log))

	outputDir := cfg.Output.Dir
	if outputDir == "" {
		outputDir = cfg.Watch.Dir
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "create output dir: %v\n", err)
		os.Exit(1)
	}

	handler := func(ctx context.Context, filePath string) error {
		var result model.PipelineResult
		if watcher.IsAudioFile(filePath) {
			result = p.ProcessAudio(ctx, filePath, dir.Members(), cfg.Reference())
		} else {
			data, err := os.ReadFile(filePath)
			if err != nil {
				return fmt.Errorf("read transcript: %w", err)
			}
			result = p.ProcessTranscript(ctx, string(data), dir.Members(), cfg.Reference())
		}

		outPath := artifactPath(outputDir, filePath, cfg.Output.Format)
		if err := emit(result, cfg.Output.Format, outPath); err != nil {
			return err
		}
		if result.Success {
			log.Info(ctx, "Processed %s: %d tasks -> %s", filePath, len(result.Tasks), outPath)
		} else {
			log.Warn(ctx, "Processed %s with failure: %s", filePath, result.ErrorMessage)
		}
		return nil
	}

	debounce := time.Duration(cfg.Watch.DebounceSec * float64(time.Second))
	w, err := watcher.New(cfg.Watch.Dir, handler, log, cfg.Watch.MaxConcurrent, debounce)
	if err != nil {
		fmt.Fprintf(os.Stderr, "watcher: %v\n", err)
		os.Exit(1)
	}
	defer w.Stop()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := w.Start(ctx); err != nil && err != context.Canceled {
		fmt.Fprintf(os.Stderr, "watcher: %v\n", err)
		os.Exit(1)
	}
}

func runRoster(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(os.Stderr, "usage: taskscribe roster validate [--roster path]")
		os.Exit(2)
	}
	switch args[0] {
	case "validate":
		runRosterValidate(args[1:])
	default:
		fmt.Fprintf(os.Stderr, "unknown roster subcommand: %s\n", args[0])
		fmt.Fprintln(os.Stderr, "usage: taskscribe roster validate [--roster path]")
		os.Exit(2)
	}
}

func runRosterValidate(args []string) {
	rosterPath := "roster.yaml"
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--roster":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "--roster requires a value")
				os.Exit(2)
			}
			i++
			rosterPath = args[i]
		default:
			fmt.Fprintf(os.Stderr, "unknown flag: %s\nusage: taskscribe roster validate [--roster path]\n", args[i])
			os.Exit(2)
		}
	}

	dir, err := roster.LoadFile(rosterPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid roster: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("roster OK: %d members (%s)\n", dir.Len(), strings.Join(dir.Names(), ", "))
}

// newTranscriber builds the configured speech-to-text backend. Audio
// inputs fail fast at transcription time when the backend is missing
// its API key, so plain-transcript runs never require one.
func newTranscriber(cfg *config.Config, log logger.Logger) stt.Transcriber {
	if cfg.STT.Provider == "mock" {
		return &stt.Mock{}
	}
	return stt.NewGemini(cfg.STT.APIKey, cfg.STT.Model, log)
}

// emit writes the result in the requested format, to stdout when
// outPath is empty.
func emit(result model.PipelineResult, format, outPath string) error {
	var data []byte
	switch format {
	case "json":
		b, err := render.JSON(result)
		if err != nil {
			return err
		}
		data = append(b, '\n')
	case "csv":
		s, err := render.CSV(result)
		if err != nil {
			return err
		}
		data = []byte(s)
	case "yaml":
		b, err := render.YAML(result)
		if err != nil {
			return err
		}
		data = b
	case "table":
		data = []byte(render.Table(result))
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}

	if outPath == "" {
		_, err := os.Stdout.Write(data)
		return err
	}
	return fileio.AtomicWrite(outPath, data)
}

// artifactPath derives the output file name for a processed input:
// meeting.txt becomes meeting.tasks.json in the output directory.
func artifactPath(outputDir, inputPath, format string) string {
	base := filepath.Base(inputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(outputDir, base+".tasks."+format)
}

func printUsage() {
	fmt.Fprintf(os.Stderr, `taskscribe %s - Meeting transcript to task pipeline

Usage: taskscribe <command> [options]

Commands:
  process <file>    Extract tasks from a transcript or audio file
  watch             Watch a drop folder and process new meeting files
  roster validate   Check a roster file for errors
  version           Show version
  help              Show this help

Process options:
  --roster <path>     Roster file (default roster.yaml)
  --config <path>     Configuration file
  --format <fmt>      Output format: json, table, csv, yaml (default json)
  --out <path>        Write output to a file instead of stdout
  --report <path>     Also write a docx meeting report
  --date YYYY-MM-DD   Pin the reference date for relative deadlines
  --log-level <lvl>   debug, info, warn, error (default info)

Watch options:
  --dir <path>        Directory to watch for new meeting files

`, version)
}
