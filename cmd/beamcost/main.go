// BeamCost — laser cutting cost estimator
//
// Prices 2D part schemas (JSON vertex/edge files or DXF drawings) as
// cutting time plus stock material for each closed profile.
//
// Build:
//
//	go build -o beamcost ./cmd/beamcost
//
// Usage:
//
//	beamcost [flags] schema.json [schema2.json part.dxf ...]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/beamcost/beamcost/internal/estimator"
	"github.com/beamcost/beamcost/internal/export"
	"github.com/beamcost/beamcost/internal/importer"
	"github.com/beamcost/beamcost/internal/model"
	"github.com/beamcost/beamcost/internal/project"
)

var (
	materialCost float64
	laserSpeed   float64
	timeCost     float64
	padding      float64

	configPath string
	workers    int

	pdfOut    string
	xlsxOut   string
	labelsOut string
)

func main() {
	flag.Float64Var(&materialCost, "material", 0.75, "material price per square unit of stock")
	flag.Float64Var(&laserSpeed, "speed", 0.5, "nominal laser speed in units per second")
	flag.Float64Var(&timeCost, "timecost", 0.07, "price per second of cutting time")
	flag.Float64Var(&padding, "padding", 0.1, "margin added to both stock rectangle dimensions")
	flag.StringVar(&configPath, "config", project.DefaultConfigPath(), "path of the cost config file")
	flag.IntVar(&workers, "workers", 4, "number of schemas priced concurrently")
	flag.StringVar(&pdfOut, "pdf", "", "write a quote document to this path")
	flag.StringVar(&xlsxOut, "xlsx", "", "write a quote workbook to this path")
	flag.StringVar(&labelsOut, "labels", "", "write QR job labels to this path")
	flag.Parse()

	files := flag.Args()
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "usage: beamcost [flags] schema.json [schema2.json part.dxf ...]")
		os.Exit(2)
	}

	cfg, err := project.LoadCostConfig(configPath)
	if err != nil {
		log.Fatalf("cannot read config %s: %v", configPath, err)
	}
	applyFlagOverrides(&cfg)

	results := estimate(files, cfg)

	failed := 0
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(os.Stderr, "%s: %v\n", res.Schema, res.Err)
			continue
		}
		fmt.Printf("%s %s\n", res.Schema, res.Quote.FormatPrice())
	}

	writeExports(results, cfg)

	if failed > 0 {
		os.Exit(1)
	}
}

// applyFlagOverrides lets explicitly-set flags win over the config file.
func applyFlagOverrides(cfg *model.CostConfig) {
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "material":
			cfg.MaterialCostPerArea = materialCost
		case "speed":
			cfg.NominalLaserSpeed = laserSpeed
		case "timecost":
			cfg.TimeUnitCost = timeCost
		case "padding":
			cfg.PaddingMargin = padding
		}
	})
}

// estimate loads every schema file and prices the loadable ones on the
// worker pool. Load failures become per-file results so one bad file
// never blocks the rest of the batch.
func estimate(files []string, cfg model.CostConfig) []estimator.Result {
	results := make([]estimator.Result, len(files))
	var schemas []*model.Schema
	var indices []int

	for i, f := range files {
		s, err := importer.LoadSchema(f)
		if err != nil {
			results[i] = estimator.Result{Schema: f, Err: err}
			continue
		}
		schemas = append(schemas, s)
		indices = append(indices, i)
	}

	for j, res := range estimator.EstimateBatch(schemas, cfg, workers) {
		results[indices[j]] = res
	}
	return results
}

func writeExports(results []estimator.Result, cfg model.CostConfig) {
	if pdfOut != "" {
		if err := export.ExportPDF(pdfOut, results, cfg); err != nil {
			log.Printf("pdf export: %v", err)
		}
	}
	if xlsxOut != "" {
		if err := export.ExportExcel(xlsxOut, results); err != nil {
			log.Printf("excel export: %v", err)
		}
	}
	if labelsOut != "" {
		if err := export.ExportLabels(labelsOut, results); err != nil {
			log.Printf("labels export: %v", err)
		}
	}
}
