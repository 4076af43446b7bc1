package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/alexanderjulianmartinez/schema-catalog/internal/catalog"
	"github.com/alexanderjulianmartinez/schema-catalog/internal/config"
	"github.com/alexanderjulianmartinez/schema-catalog/internal/reflection"
	"github.com/alexanderjulianmartinez/schema-catalog/internal/reflection/mssql"
	"github.com/alexanderjulianmartinez/schema-catalog/internal/reflection/mysql"
	"github.com/alexanderjulianmartinez/schema-catalog/internal/reflection/postgres"
	kafkasink "github.com/alexanderjulianmartinez/schema-catalog/internal/sink/kafka"
	"github.com/alexanderjulianmartinez/schema-catalog/internal/typemap"
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "schemacatalog error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) < 2 {
		printUsage()
		return nil
	}

	switch args[1] {
	case "extract":
		return runExtract(args[2:])
	case "help", "--help", "-h":
		printUsage()
		return nil
	default:
		return fmt.Errorf("unknown command: %s", args[1])
	}
}

type inspector interface {
	reflection.Inspector
	Close() error
}

func openInspector(src config.SourceConfig) (inspector, error) {
	switch src.Type {
	case "mysql":
		return mysql.New(src.DSN)
	case "postgres":
		return postgres.New(src.DSN)
	case "mssql":
		return mssql.New(src.DSN)
	default:
		return nil, fmt.Errorf("unsupported source type: %s", src.Type)
	}
}

func runExtract(args []string) error {
	fs := flag.NewFlagSet("extract", flag.ContinueOnError)
	configPath := fs.String("config", "", "Path to config.yaml")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *configPath == "" {
		return fmt.Errorf("missing required flag: --config")
	}

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		return err
	}

	insp, err := openInspector(cfg.Source)
	if err != nil {
		return err
	}
	defer insp.Close()

	ctx := context.Background()
	extractor := catalog.New(typemap.Default(), cfg.SystemSchemas)

	groups, err := extractor.ExtractAll(ctx, insp)
	if err != nil {
		return err
	}

	out, err := json.MarshalIndent(catalog.AsMap(groups), "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(out))

	if cfg.SinkEnabled() {
		publisher := kafkasink.New(cfg.Sink.Brokers, cfg.Sink.Topic)
		defer publisher.Close()
		for _, group := range groups {
			for _, m := range group.Tables {
				if err := publisher.Publish(ctx, group.Schema, m); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

func printUsage() {
	fmt.Print(`schemacatalog - database schema to catalog metadata

Usage:
  schemacatalog extract --config <path>

Commands:
  extract   Reflect the configured database and print catalog metadata
  help      Show this help message
`)
}
