// Command extractcsv converts Indian bank and credit-card statement PDFs
// to CSV or JSON, either as a one-shot CLI or as a small upload server.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/insightdelivered/statement-extractor/internal/api"
	"github.com/insightdelivered/statement-extractor/internal/config"
	"github.com/insightdelivered/statement-extractor/internal/extract"
	"github.com/insightdelivered/statement-extractor/internal/logging"
	"github.com/insightdelivered/statement-extractor/internal/writer"
	"github.com/sirupsen/logrus"
)

const version = "1.0.0"

func main() {
	outputFlag := flag.String("output", "", "Output file path (defaults to input filename with .csv or .json extension)")
	headerFlag := flag.Bool("header", true, "Include summary metadata rows in CSV output")
	jsonFlag := flag.Bool("json", false, "Write JSON instead of CSV")
	passwordFlag := flag.String("password", "", "Password for an encrypted PDF")
	versionFlag := flag.Bool("version", false, "Print version and exit")
	helpFlag := flag.Bool("help", false, "Show usage help")
	serveFlag := flag.Bool("serve", false, "Start the upload server instead of CLI mode")
	portFlag := flag.String("port", "", "Port for the upload server (used with --serve)")
	staticFlag := flag.String("static", "", "Path to a static UI directory (used with --serve)")
	logLevelFlag := flag.String("log-level", "", "Log level: debug, info, warn, error")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Statement Extractor (Fiber v2)

Converts SBI, HDFC, IndusInd, and ICICI credit card statements, plus
generic savings-account statements, from PDF to CSV or JSON.

Usage:
  extractcsv [flags] <input.pdf> [input2.pdf ...]

  Server mode:
  extractcsv --serve [--port=8080] [--static=./web/dist]

Flags:
`)
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  extractcsv statement.pdf
  extractcsv --json --output=out.json statement.pdf
  extractcsv --password=1234 encrypted.pdf
  extractcsv --serve --port=3001
`)
	}

	flag.Parse()

	if *versionFlag {
		fmt.Printf("extractcsv v%s\n", version)
		os.Exit(0)
	}

	cfg := config.Load()
	if *portFlag != "" {
		cfg.Port = *portFlag
	}
	if *logLevelFlag != "" {
		cfg.LogLevel = *logLevelFlag
	}
	log := logging.New(cfg.LogLevel)

	if *serveFlag {
		startServer(cfg, *staticFlag, log)
		return
	}

	if *helpFlag || flag.NArg() == 0 {
		flag.Usage()
		os.Exit(0)
	}

	for _, inputPath := range flag.Args() {
		if err := processFile(inputPath, *passwordFlag, *outputFlag, *headerFlag, *jsonFlag, log); err != nil {
			fmt.Fprintf(os.Stderr, "Error processing %s: %v\n", inputPath, err)
			os.Exit(1)
		}
	}
}

func startServer(cfg config.Config, staticDir string, log *logrus.Logger) {
	app := fiber.New(fiber.Config{
		AppName:   "Statement Extractor v" + version,
		BodyLimit: int(cfg.MaxUploadBytes),
	})

	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "${time} | ${status} | ${latency} | ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	apiGroup := app.Group("/api")
	apiGroup.Get("/health", api.HandleHealth)
	apiGroup.Post("/convert", api.HandleConvert)

	if staticDir != "" {
		app.Static("/", staticDir, fiber.Static{Index: "index.html"})
		app.Get("/*", func(c *fiber.Ctx) error {
			if strings.HasPrefix(c.Path(), "/api/") {
				return c.SendStatus(fiber.StatusNotFound)
			}
			fullPath := filepath.Join(staticDir, c.Path())
			if _, err := os.Stat(fullPath); os.IsNotExist(err) {
				return c.SendFile(filepath.Join(staticDir, "index.html"))
			}
			return c.Next()
		})
	}

	addr := ":" + cfg.Port
	log.Infof("Statement Extractor v%s listening on %s", version, addr)
	log.Fatal(app.Listen(addr))
}

func processFile(inputPath, password, outputPath string, includeHeader, asJSON bool, log *logrus.Logger) error {
	if _, err := os.Stat(inputPath); os.IsNotExist(err) {
		return fmt.Errorf("input file not found: %s", inputPath)
	}
	if ext := strings.ToLower(filepath.Ext(inputPath)); ext != ".pdf" {
		return fmt.Errorf("expected .pdf file, got %q", ext)
	}

	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}

	log.Infof("processing %s", inputPath)

	result, err := extract.Extract(context.Background(), data, password, log)
	if err != nil {
		return fmt.Errorf("extraction failed: %w", err)
	}

	log.Infof("classified as %s, found %d transaction(s)", result.Summary.Issuer, len(result.Transactions))
	if len(result.Transactions) == 0 {
		log.Warn("no transactions recognized; the statement layout may be unsupported")
	}

	outPath := outputPath
	ext := ".csv"
	if asJSON {
		ext = ".json"
	}
	if outPath == "" {
		base := strings.TrimSuffix(inputPath, filepath.Ext(inputPath))
		outPath = base + ext
	}

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer f.Close()

	if asJSON {
		jw := &writer.JSONWriter{Indent: true}
		if err := jw.Write(f, result); err != nil {
			return fmt.Errorf("JSON write failed: %w", err)
		}
	} else {
		cw := &writer.CSVWriter{IncludeHeader: includeHeader}
		if err := cw.Write(f, result); err != nil {
			return fmt.Errorf("CSV write failed: %w", err)
		}
	}

	log.Infof("wrote %s", outPath)
	return nil
}
