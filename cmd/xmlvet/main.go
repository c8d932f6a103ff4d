package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ormasoftchile/xmlvet/pkg/check"
	"github.com/ormasoftchile/xmlvet/pkg/config"
	"github.com/ormasoftchile/xmlvet/pkg/inspect"
	"github.com/ormasoftchile/xmlvet/pkg/report"
)

// Version is set at build time via ldflags.
var (
	version = "dev"
	commit  = "unknown"
)

func main() {
	loadDotEnv() // load .env file if present (gitignored)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadDotEnv reads a .env file from the working directory and sets any
// variables that aren't already set in the environment. Useful for proxy
// settings (HTTPS_PROXY etc.) that remote schema fetches should honor.
// Lines are KEY=VALUE (or KEY="VALUE"). Comments (#) and blanks are skipped.
func loadDotEnv() {
	f, err := os.Open(".env")
	if err != nil {
		return // no .env file — that's fine
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		val = strings.Trim(val, `"'`)
		// Don't overwrite existing env vars
		if os.Getenv(key) == "" {
			os.Setenv(key, val)
		}
	}
}

var (
	flagConfig string
	flagXSD    string
	flagStrict bool
)

var rootCmd = &cobra.Command{
	Use:   "xmlvet [xml_path]",
	Short: "Validate XML files against XSD schemas (local or remote)",
	Long: `xmlvet — validates XML documents against an XSD: either a local schema
given with --xsd, or the one each document declares through its
xsi:noNamespaceSchemaLocation attribute (a path relative to the document,
or an HTTP(S) URL). Given a directory, every .xml file directly inside it
is validated independently.`,
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE:          runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	target := args[0]

	runner, cfg, err := newRunner(cmd)
	if err != nil {
		return err
	}

	results := checkPath(runner, target)

	// The default contract is exit 0 regardless of outcomes; only
	// --strict (or strict: true in config) surfaces failures to callers.
	if cfg.Strict && check.StrictFailure(results) {
		os.Exit(1)
	}
	return nil
}

// checkPath dispatches to directory or single-file validation.
func checkPath(runner *check.Runner, target string) []check.Result {
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return runner.CheckDir(target)
	}
	return []check.Result{runner.CheckFile(target)}
}

// newRunner builds a Runner from config file plus flag overrides.
// Flags win over config values.
func newRunner(cmd *cobra.Command) (*check.Runner, *config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, nil, err
	}
	if flagXSD != "" {
		cfg.XSD = flagXSD
	}
	if cmd.Flags().Changed("strict") {
		cfg.Strict = flagStrict
	}

	timeout, err := cfg.Timeout()
	if err != nil {
		return nil, nil, err
	}

	runner := &check.Runner{
		Override:     cfg.XSD,
		FetchTimeout: timeout,
		Reporter:     report.New(os.Stdout, cfg.ColorMode()),
	}
	return runner, cfg, nil
}

// --- inspect ---

var inspectCmd = &cobra.Command{
	Use:   "inspect [xml_file]",
	Short: "Show a document's root element, namespaces and declared schema location",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	p, err := inspect.File(args[0])
	if err != nil {
		return fmt.Errorf("inspect %s: %w", args[0], err)
	}

	fmt.Printf("Root element:    %s\n", p.Root)
	if p.RootNamespace != "" {
		fmt.Printf("Namespace:       %s\n", p.RootNamespace)
	}
	switch {
	case p.SchemaLocation == "":
		fmt.Println("Schema location: (none — validation would be skipped)")
	case p.Remote:
		fmt.Printf("Schema location: %s (remote)\n", p.SchemaLocation)
	default:
		fmt.Printf("Schema location: %s (relative to the document)\n", p.SchemaLocation)
	}
	for prefix, uri := range p.Namespaces {
		if prefix == "" {
			prefix = "(default)"
		}
		fmt.Printf("  xmlns %-10s %s\n", prefix, uri)
	}
	fmt.Printf("Elements:        %d\n", p.Elements)
	return nil
}

// --- config ---

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration utilities",
}

var configSchemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema for .xmlvet.yaml",
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := config.GenerateJSONSchema()
		if err != nil {
			return err
		}
		fmt.Println(string(data))
		return nil
	},
}

// --- version ---

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("xmlvet %s (build: %s)\n", version, commit)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to an .xmlvet.yaml config file (default: ./"+config.DefaultPath+")")
	rootCmd.PersistentFlags().StringVar(&flagXSD, "xsd", "", "Local XSD file overriding xsi:noNamespaceSchemaLocation")
	rootCmd.PersistentFlags().BoolVar(&flagStrict, "strict", false, "Exit non-zero when any file fails or is skipped")

	// watch flags
	watchCmd.Flags().StringVar(&watchInterval, "interval", "2s", "Re-validation interval (e.g. 2s, 1m)")
	watchCmd.Flags().IntVar(&watchCount, "count", 0, "Number of rounds to run (0 = until interrupted)")

	// config subcommands
	configCmd.AddCommand(configSchemaCmd)

	// root subcommands
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
