package main

import (
	"encoding/json"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/sunwaytravel/tripsearch/db/catalog"
	"github.com/sunwaytravel/tripsearch/logger"
	"github.com/urfave/cli/v2"
)

// seedFile is the JSON document the seed command loads into the store.
type seedFile struct {
	Packages []catalog.Package `json:"packages"`
	Tours    []catalog.Tour    `json:"tours"`
}

func main() {
	app := &cli.App{
		Name:  "catalogctl",
		Usage: "Seed and inspect the tripsearch catalog store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "seed",
				Usage:  "Load a JSON catalog file into the store",
				Action: seedCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the catalog database file",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "file",
						Aliases:  []string{"f"},
						Usage:    "Path to the JSON catalog file",
						Required: true,
					},
				},
			},
			{
				Name:   "list",
				Usage:  "List stored package and tour titles",
				Action: listCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "db",
						Aliases:  []string{"d"},
						Usage:    "Path to the catalog database file",
						Required: true,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func setupLogger(c *cli.Context) error {
	var level slog.Level
	switch strings.ToLower(c.String("log-level")) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

func seedCommand(c *cli.Context) error {
	data, err := os.ReadFile(c.String("file"))
	if err != nil {
		return fmt.Errorf("failed to read catalog file: %w", err)
	}

	var seed seedFile
	if err := json.Unmarshal(data, &seed); err != nil {
		return fmt.Errorf("failed to parse catalog file: %w", err)
	}

	store, err := catalog.New(logger.New(), c.String("db"))
	if err != nil {
		return err
	}
	defer store.Close()

	for _, pkg := range seed.Packages {
		if err := store.PutPackage(pkg); err != nil {
			return fmt.Errorf("failed to store package %s: %w", pkg.ID, err)
		}
	}
	for _, tour := range seed.Tours {
		if err := store.PutTour(tour); err != nil {
			return fmt.Errorf("failed to store tour %s: %w", tour.ID, err)
		}
	}

	slog.Info("seeded catalog", "packages", len(seed.Packages), "tours", len(seed.Tours))
	return nil
}

func listCommand(c *cli.Context) error {
	store, err := catalog.New(logger.New(), c.String("db"))
	if err != nil {
		return err
	}
	defer store.Close()

	packages, err := store.ListPackages()
	if err != nil {
		return err
	}
	tours, err := store.ListTours()
	if err != nil {
		return err
	}

	for _, pkg := range packages {
		fmt.Printf("package\t%s\t%s\n", pkg.ID, pkg.Title)
	}
	for _, tour := range tours {
		fmt.Printf("tour\t%s\t%s\n", tour.ID, tour.Title)
	}

	return nil
}
