package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/browser"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"dprsim/internal/simulation"
	"dprsim/internal/visuals"
)

var (
	reportDprID string
	reportOut   string
	reportOpen  bool
)

var reportCmd = &cobra.Command{
	Use:   "report <features.json>",
	Short: "Render an HTML what-if report for a features file",
	Long: `Runs the preset scenario sweep against the baseline and writes a standalone
HTML report with the scenario comparison and risk charts. With --open the report is
opened in the default browser.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		features, err := readFeatures(args[0])
		if err != nil {
			return err
		}

		analysis, err := simulation.RunWhatIf(context.Background(), reportDprID, features, simulation.PresetScenarios(), cfg.WhatIfWorkers)
		if err != nil {
			return err
		}

		html, err := renderReport(analysis)
		if err != nil {
			return err
		}

		out := reportOut
		if out == "" {
			out = filepath.Join(cfg.DataPath, fmt.Sprintf("dpr-report-%s.html", reportDprID))
		}
		if err := os.WriteFile(out, []byte(html), 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		log.Info().Str("path", out).Msg("What-if report written")

		if reportOpen {
			if err := browser.OpenFile(out); err != nil {
				log.Warn().Err(err).Msg("Failed to open report in browser")
			}
		}
		return nil
	},
}

// renderReport wraps the Mermaid chart blocks and the raw analysis JSON into
// a standalone HTML page.
func renderReport(analysis simulation.WhatIfAnalysis) (string, error) {
	raw, err := json.MarshalIndent(analysis, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode analysis: %w", err)
	}

	whatIfChart := stripFence(visuals.GenerateWhatIfChart(analysis))

	var sb strings.Builder
	sb.WriteString("<!DOCTYPE html>\n<html>\n<head>\n")
	sb.WriteString(fmt.Sprintf("<title>What-If Report — %s</title>\n", analysis.DprID))
	sb.WriteString("<script type=\"module\">import mermaid from 'https://cdn.jsdelivr.net/npm/mermaid@11/dist/mermaid.esm.min.mjs'; mermaid.initialize({startOnLoad: true});</script>\n")
	sb.WriteString("<style>body{font-family:sans-serif;max-width:960px;margin:2em auto}pre{background:#f5f5f5;padding:1em;overflow:auto}</style>\n")
	sb.WriteString("</head>\n<body>\n")
	sb.WriteString(fmt.Sprintf("<h1>What-If Analysis — DPR %s</h1>\n", analysis.DprID))
	sb.WriteString(fmt.Sprintf("<p>Baseline probability %.1f%% (%s). Best scenario: <b>%s</b> at %.1f%%. Worst scenario: <b>%s</b> at %.1f%%.</p>\n",
		analysis.BaselineScenario.CompletionProbability,
		analysis.BaselineScenario.FeasibilityRating,
		analysis.BestScenario.ScenarioName, analysis.BestScenario.CompletionProbability,
		analysis.WorstScenario.ScenarioName, analysis.WorstScenario.CompletionProbability))
	sb.WriteString(fmt.Sprintf("<pre class=\"mermaid\">\n%s\n</pre>\n", whatIfChart))
	sb.WriteString("<h2>Full analysis</h2>\n")
	sb.WriteString(fmt.Sprintf("<pre>%s</pre>\n", string(raw)))
	sb.WriteString("</body>\n</html>\n")
	return sb.String(), nil
}

// stripFence removes the markdown code fence so the chart can live in a
// mermaid-classed HTML block.
func stripFence(block string) string {
	block = strings.TrimPrefix(block, "```mermaid\n")
	return strings.TrimSuffix(block, "```")
}

func init() {
	reportCmd.Flags().StringVar(&reportDprID, "dpr-id", "local", "DPR document ID to stamp on the report")
	reportCmd.Flags().StringVar(&reportOut, "out", "", "output path (default: DATA_PATH/dpr-report-<id>.html)")
	reportCmd.Flags().BoolVar(&reportOpen, "open", false, "open the report in the default browser")
	rootCmd.AddCommand(reportCmd)
}
