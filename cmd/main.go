// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"golang.org/x/term"

	"burocrata-scan/internal/catalog"
	"burocrata-scan/internal/config"
	"burocrata-scan/internal/core"
	"burocrata-scan/internal/engine"
	"burocrata-scan/internal/help"
	"burocrata-scan/internal/version"
	"burocrata-scan/internal/web"

	_ "burocrata-scan/internal/formatters/csv"
	_ "burocrata-scan/internal/formatters/json"
	_ "burocrata-scan/internal/formatters/text"
)

// cliFlags holds the raw command line flag values.
type cliFlags struct {
	inputFile    string
	configFile   string
	profileName  string
	listProfiles bool

	format      string
	forceClass  string
	permissive  bool
	minSeverity string
	failOn      string

	catalogFile string
	listRules   bool
	explainRule string

	suppressionsFile string
	historyFile      string
	historyList      bool

	outputFile string
	verbose    bool
	debug      bool
	noColor    bool

	webMode bool
	webPort string

	showHelp    bool
	showVersion bool
}

func main() {
	flags := parseFlags()

	if flags.showVersion {
		fmt.Println(version.Info())
		return
	}
	if flags.showHelp {
		help.NewSystem(flags.noColor).ShowGeneralHelp()
		return
	}

	cfg := loadConfiguration(flags.configFile)

	if flags.listProfiles {
		printProfiles(cfg)
		return
	}

	settings, err := resolveSettings(cfg, flags)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Auto-detect non-interactive environments.
	if !term.IsTerminal(int(os.Stdout.Fd())) || os.Getenv("CI") != "" {
		settings.NoColor = true
	}
	if os.Getenv("BUROCRATA_DEBUG") != "" {
		settings.Debug = true
	}

	analyzer, err := core.NewAnalyzer(settings)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer analyzer.Close()

	helpSystem := help.NewSystem(settings.NoColor)

	switch {
	case flags.listRules:
		helpSystem.ShowRules(analyzer.Engine().Catalog())
		return
	case flags.explainRule != "":
		if err := helpSystem.ShowRule(analyzer.Engine().Catalog(), flags.explainRule); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	case flags.historyList:
		if err := printHistory(analyzer); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	case flags.webMode:
		server := web.NewServer(flags.webPort, analyzer)
		if err := server.Start(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	if flags.inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: --file is required (or use --web, --list-rules, --history-list)")
		fmt.Fprintln(os.Stderr, "Run with --help for usage.")
		os.Exit(1)
	}

	opts := engine.Options{Permissive: settings.Permissive}
	if flags.forceClass != "" {
		dc := catalog.DocumentClass(strings.ToUpper(flags.forceClass))
		if !dc.Valid() || dc == catalog.ClassUnknown {
			fmt.Fprintf(os.Stderr, "Error: unknown document class %q\n", flags.forceClass)
			os.Exit(1)
		}
		opts.ForceClass = dc
	}

	result, err := analyzeInput(analyzer, flags.inputFile, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	output, err := analyzer.Render(result)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := writeOutput(output, flags.outputFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if flags.failOn != "" && worstAtLeast(result, catalog.Severity(strings.ToUpper(flags.failOn))) {
		os.Exit(2)
	}
}

func parseFlags() *cliFlags {
	flags := &cliFlags{}

	flag.StringVar(&flags.inputFile, "file", "", "Path to the PDF or text document to analyze, or - for stdin")
	flag.StringVar(&flags.configFile, "config", "", "Path to configuration file (YAML)")
	flag.StringVar(&flags.profileName, "profile", "", "Profile name to use from config file")
	flag.BoolVar(&flags.listProfiles, "list-profiles", false, "List available profiles in config file")

	flag.StringVar(&flags.format, "format", "", "Output format: text, json, csv (default: text)")
	flag.StringVar(&flags.forceClass, "class", "", "Force the document class instead of classifying")
	flag.BoolVar(&flags.permissive, "permissive", false, "Evaluate every rule regardless of the detected document class")
	flag.StringVar(&flags.minSeverity, "min-severity", "", "Hide findings below this severity: CRITICAL, HIGH, MEDIUM, LOW, INFO")
	flag.StringVar(&flags.failOn, "fail-on", "", "Exit with code 2 when a finding at or above this severity remains")

	flag.StringVar(&flags.catalogFile, "catalog", "", "YAML rule catalog that extends or overrides the builtin rules")
	flag.BoolVar(&flags.listRules, "list-rules", false, "List the active rule catalog and exit")
	flag.StringVar(&flags.explainRule, "explain", "", "Show detailed help for one rule and exit")

	flag.StringVar(&flags.suppressionsFile, "suppressions", "", "Path to the reviewed-waiver file")
	flag.StringVar(&flags.historyFile, "history", "", "SQLite database to record analyses in")
	flag.BoolVar(&flags.historyList, "history-list", false, "List recorded analyses and exit (requires --history)")

	flag.StringVar(&flags.outputFile, "output", "", "Path to output file (if not specified, output to stdout)")
	flag.BoolVar(&flags.verbose, "verbose", false, "Display detail and remedy for each finding")
	flag.BoolVar(&flags.debug, "debug", false, "Enable step-by-step debug logging of the pipeline")
	flag.BoolVar(&flags.noColor, "no-color", false, "Disable colored output")

	flag.BoolVar(&flags.webMode, "web", false, "Start the JSON API server instead of analyzing a file")
	flag.StringVar(&flags.webPort, "port", "8080", "Port for the API server")

	flag.BoolVar(&flags.showHelp, "help", false, "Show help information")
	flag.BoolVar(&flags.showVersion, "version", false, "Show version information")

	flag.Parse()
	return flags
}

// loadConfiguration loads the configuration file or returns default config
func loadConfiguration(configFile string) *config.Config {
	cfg, err := config.LoadConfigOrDefault(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Error loading config file: %v\n", err)
		fmt.Fprintf(os.Stderr, "Using default configuration\n")
		cfg, _ = config.LoadConfig("")
	}
	return cfg
}

// resolveSettings layers the profile over the config defaults and the
// explicitly set flags over both.
func resolveSettings(cfg *config.Config, flags *cliFlags) (config.Settings, error) {
	settings, err := cfg.ApplyProfile(flags.profileName)
	if err != nil {
		return config.Settings{}, err
	}

	if isFlagSet("format") {
		settings.Format = flags.format
	}
	if settings.Format == "" {
		settings.Format = "text"
	}
	if isFlagSet("min-severity") {
		settings.MinSeverity = strings.ToUpper(flags.minSeverity)
	}
	if isFlagSet("catalog") {
		settings.CatalogFile = flags.catalogFile
	}
	if isFlagSet("suppressions") {
		settings.SuppressionsFile = flags.suppressionsFile
	}
	if isFlagSet("history") {
		settings.HistoryFile = flags.historyFile
	}
	if isFlagSet("verbose") {
		settings.Verbose = flags.verbose
	}
	if isFlagSet("debug") {
		settings.Debug = flags.debug
	}
	if isFlagSet("no-color") {
		settings.NoColor = flags.noColor
	}
	if isFlagSet("permissive") {
		settings.Permissive = flags.permissive
	}

	if settings.MinSeverity != "" && !catalog.Severity(settings.MinSeverity).Valid() {
		return config.Settings{}, fmt.Errorf("unknown min-severity %q", settings.MinSeverity)
	}
	if flags.failOn != "" && !catalog.Severity(strings.ToUpper(flags.failOn)).Valid() {
		return config.Settings{}, fmt.Errorf("unknown fail-on severity %q", flags.failOn)
	}
	return settings, nil
}

// isFlagSet checks if a flag was explicitly set on the command line
func isFlagSet(name string) bool {
	found := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			found = true
		}
	})
	return found
}

// analyzeInput analyzes a file path or, for "-", text read from stdin.
func analyzeInput(analyzer *core.Analyzer, inputFile string, opts engine.Options) (*core.Result, error) {
	if inputFile == "-" {
		text, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return analyzer.AnalyzeText("stdin", string(text), opts)
	}
	return analyzer.AnalyzeFile(inputFile, opts)
}

func writeOutput(output, outputFile string) error {
	if outputFile == "" {
		fmt.Println(output)
		return nil
	}
	if err := os.WriteFile(outputFile, []byte(output), 0o600); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	fmt.Printf("Results written to %s\n", outputFile)
	return nil
}

// worstAtLeast reports whether any remaining finding reaches the threshold.
func worstAtLeast(result *core.Result, threshold catalog.Severity) bool {
	for _, f := range result.Report.Findings {
		if f.Severity.Rank() >= threshold.Rank() {
			return true
		}
	}
	return false
}

func printProfiles(cfg *config.Config) {
	if len(cfg.Profiles) == 0 {
		fmt.Println("No profiles configured.")
		return
	}
	names := make([]string, 0, len(cfg.Profiles))
	for name := range cfg.Profiles {
		names = append(names, name)
	}
	sort.Strings(names)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PROFILE\tFORMAT\tMIN SEVERITY\tDESCRIPTION")
	for _, name := range names {
		p := cfg.Profiles[name]
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", name, p.Format, p.MinSeverity, p.Description)
	}
	w.Flush()
}

func printHistory(analyzer *core.Analyzer) error {
	store := analyzer.History()
	if store == nil {
		return fmt.Errorf("--history-list requires --history <path>")
	}

	entries, err := store.ListRecent(20)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No recorded analyses.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tDATE\tSOURCE\tCLASS\tSCORE\tTIER\tC\tH\tM\tL\tI")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%d\t%s\t%d\t%d\t%d\t%d\t%d\n",
			e.ID, e.CreatedAt.Local().Format("2006-01-02 15:04"), e.Source, e.DocumentClass,
			e.Score, e.RiskTier, e.Critical, e.High, e.Medium, e.Low, e.Info)
	}
	return w.Flush()
}
