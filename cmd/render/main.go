package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/GlibAI/GenXL/internal/config"
	"github.com/GlibAI/GenXL/internal/logger"
	"github.com/GlibAI/GenXL/pkg/document"
	"github.com/GlibAI/GenXL/pkg/ingest"
	"github.com/GlibAI/GenXL/pkg/layout"
	"github.com/GlibAI/GenXL/pkg/xlrender"
)

// One-shot renderer: reads an extracted document file (JSON or YAML) or a
// raw producer mapping and writes the styled workbook.
func main() {
	in := flag.String("in", "", "Input document file (.json, .yaml)")
	mapping := flag.String("mapping", "", "Raw layout mapping file (alternative to -in)")
	out := flag.String("out", "", "Output .xlsx path (default from RENDER_OUTPUT_PATH)")
	flag.Parse()

	ctx := context.Background()

	if err := config.LoadEnvConfig(); err != nil {
		log.Fatalf("failed to load env config: %v", err)
	}
	logger.InitLogging(config.DefaultEnvConfig.LOG_FILE_PATH)

	outPath := *out
	if outPath == "" {
		outPath = config.DefaultEnvConfig.RENDER_OUTPUT_PATH
	}

	var (
		result layout.LayoutOutput
		err    error
	)
	switch {
	case *in != "" && *mapping != "":
		log.Fatal("use either -in or -mapping, not both")
	case *in != "":
		var docs []document.Document
		docs, err = document.LoadFile(*in)
		if err == nil {
			result, err = layout.AssembleAll(docs)
		}
	case *mapping != "":
		var raw []byte
		raw, err = os.ReadFile(*mapping)
		if err == nil {
			result, err = ingest.Parse(string(raw))
		}
	default:
		flag.Usage()
		os.Exit(2)
	}
	if err != nil {
		logger.ErrorLog(ctx, "Failed to build layout mapping", err)
		log.Fatal(err)
	}

	if err := xlrender.SaveFile(result, outPath); err != nil {
		logger.ErrorLog(ctx, "Failed to write workbook", err)
		log.Fatal(err)
	}

	logger.InfoLog(ctx, "Workbook generated: %s", outPath)
	fmt.Println("Workbook generated:", outPath)
}
