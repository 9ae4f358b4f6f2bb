// Package main provides the raciboard CLI: parse a RACI spreadsheet,
// print its validation report, export it, or serve the dashboard.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"raciboard/internal/config"
	"raciboard/internal/logging"
	"raciboard/pkg/raci"
	"raciboard/pkg/raci/models"
	"raciboard/pkg/raci/output"
	"raciboard/pkg/raci/server"
)

var (
	sheetName  string
	jsonPath   string
	htmlPath   string
	kitDir     string
	serve      bool
	host       string
	port       string
	tuningPath string
	pretty     bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "raciboard [input.xlsx|input.csv]",
		Short: "Parse any RACI spreadsheet into a structured dashboard",
		Long: `raciboard auto-detects the layout of a RACI spreadsheet - header
position, column roles, labeling dialect, orientation - and produces a
canonical model with a validation report. The model can be printed,
exported (JSON, self-contained HTML, BI starter kit), or served as an
interactive dashboard.`,
		Args: cobra.MaximumNArgs(1),
		RunE: run,
	}

	rootCmd.Flags().StringVarP(&sheetName, "sheet", "s", "", "Excel sheet name (default: auto-select)")
	rootCmd.Flags().StringVarP(&jsonPath, "json", "j", "", "Write parsed model as JSON to this path")
	rootCmd.Flags().StringVarP(&htmlPath, "export", "e", "", "Write self-contained HTML dashboard to this path")
	rootCmd.Flags().StringVar(&kitDir, "bi-kit", "", "Write BI starter kit (CSVs + scripts) into this directory")
	rootCmd.Flags().BoolVar(&serve, "serve", false, "Serve the interactive dashboard")
	rootCmd.Flags().StringVar(&host, "host", "", "Server host (default: RACIBOARD_HOST or 127.0.0.1)")
	rootCmd.Flags().StringVarP(&port, "port", "p", "", "Server port (default: RACIBOARD_PORT or 8080)")
	rootCmd.Flags().StringVar(&tuningPath, "tuning", "", "YAML file overriding inference thresholds")
	rootCmd.Flags().BoolVar(&pretty, "pretty", true, "Pretty-print JSON output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	opts := raci.DefaultOptions()
	if tuningPath != "" {
		if err := opts.LoadTuning(tuningPath); err != nil {
			return err
		}
	}

	var model *models.Model
	if len(args) == 1 {
		inputPath := args[0]
		if _, err := os.Stat(inputPath); os.IsNotExist(err) {
			return fmt.Errorf("file not found: %s", inputPath)
		}

		fmt.Printf("Parsing: %s\n", inputPath)
		var err error
		model, err = raci.ParseFile(inputPath, sheetName, opts)
		if err != nil {
			return err
		}
		printReport(model)
	} else if !serve {
		return cmd.Help()
	}

	if model == nil && (jsonPath != "" || kitDir != "" || htmlPath != "") {
		return fmt.Errorf("export flags require an input file")
	}

	if jsonPath != "" {
		data, err := output.ToJSON(model, pretty)
		if err != nil {
			return fmt.Errorf("serialize model: %w", err)
		}
		if err := os.WriteFile(jsonPath, data, 0o644); err != nil {
			return fmt.Errorf("write JSON: %w", err)
		}
		fmt.Printf("\n  JSON exported to: %s\n", jsonPath)
	}
	if kitDir != "" {
		files, err := output.WriteKit(model, kitDir)
		if err != nil {
			return fmt.Errorf("write BI kit: %w", err)
		}
		fmt.Printf("\n  BI starter kit exported to: %s/\n", kitDir)
		for _, f := range files {
			fmt.Printf("    - %s\n", filepath.Base(f))
		}
	}
	if htmlPath != "" {
		page, err := output.ExportHTML(model)
		if err != nil {
			return fmt.Errorf("export HTML: %w", err)
		}
		if err := os.WriteFile(htmlPath, page, 0o644); err != nil {
			return fmt.Errorf("write HTML: %w", err)
		}
		fmt.Printf("\n  HTML dashboard exported to: %s\n", htmlPath)
	}
	if !serve {
		return nil
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if host != "" {
		cfg.Host = host
	}
	if port != "" {
		cfg.Port = port
	}

	log, err := logging.New(cfg.LogLevel)
	if err != nil {
		return err
	}
	defer log.Sync()

	fmt.Printf("\n  Starting dashboard at http://%s\n  Press Ctrl+C to stop\n\n", cfg.Addr())
	srv := server.New(log, opts, model, cfg.MaxUploadMB)
	return srv.ListenAndServe(cfg.Addr())
}

// printReport writes the validation summary to stdout: counts, orphaned
// capabilities, roles never marked Responsible, and the column table.
func printReport(model *models.Model) {
	meta := model.Meta
	fmt.Printf("\n  Sheet:        %s\n", meta.Sheet)
	fmt.Printf("  Layout:       %s\n", meta.Layout)
	fmt.Printf("  Roles:        %d\n", meta.RoleCount)
	fmt.Printf("  Categories:   %d\n", meta.CategoryCount)
	fmt.Printf("  Capabilities: %d\n", meta.CapabilityCount)
	if meta.HasMaturity {
		fmt.Printf("  Maturity:     detected (scale 0-%d)\n", meta.MaturityScale)
	}

	if n := len(meta.OrphanedCapabilities); n > 0 {
		fmt.Printf("\n  Warning: %d capabilities with no R assigned:\n", n)
		limit := n
		if limit > 10 {
			limit = 10
		}
		for _, cap := range meta.OrphanedCapabilities[:limit] {
			fmt.Printf("    - %s\n", cap)
		}
		if n > 10 {
			fmt.Printf("    ... and %d more\n", n-10)
		}
	}
	if len(meta.ZeroRRoles) > 0 {
		fmt.Printf("\n  Warning: Roles with zero R assignments: %v\n", meta.ZeroRRoles)
	}

	if len(meta.ColumnClassifications) > 0 {
		fmt.Println("\n  Column classifications:")
		cols := make([]int, 0, len(meta.ColumnClassifications))
		for ci := range meta.ColumnClassifications {
			cols = append(cols, ci)
		}
		sort.Ints(cols)
		for _, ci := range cols {
			info := meta.ColumnClassifications[ci]
			fmt.Printf("    Col %d: %-30q -> %s\n", ci, info.Header, info.Classification)
		}
	}
}
