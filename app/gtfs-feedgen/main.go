package main

import (
	"fmt"
	logger "log"
	"os"

	"github.com/ardanlabs/conf"

	"github.com/ColumbiaCountyTransit/gtfsgen/app/gtfs-feedgen/feedgen"
)

var build = "develop"

func main() {
	log := logger.New(os.Stdout, "GTFS_FEEDGEN : ", logger.LstdFlags|logger.Lmicroseconds|logger.Lshortfile)
	if err := run(log); err != nil {
		log.Printf("main: error: %v", err)
		os.Exit(1)
	}
}

func run(log *logger.Logger) error {
	var cfg struct {
		conf.Version
		Args conf.Args
		Data struct {
			StopsFile string `conf:"default:stops.csv"`
			NogosFile string `conf:"default:nogos.csv"`
			ShapesDir string `conf:"default:shapes"`
			FeedFile  string `conf:"default:columbia_county_gtfs.zip"`
		}
		Reconcile struct {
			ToleranceMeters float64 `conf:"default:1.0"`
		}
	}
	cfg.Version.SVN = build
	cfg.Version.Desc = "Generate the Columbia County gtfs feed and maintain its stop registry"
	if err := conf.Parse(os.Args[1:], "GTFS_FEEDGEN", &cfg); err != nil {
		switch err {
		case conf.ErrHelpWanted:
			usage, err := conf.Usage("GTFS_FEEDGEN", &cfg)
			if err != nil {
				return fmt.Errorf("generating config usage: %w", err)
			}
			fmt.Println(usage)
			return nil
		case conf.ErrVersionWanted:
			version, err := conf.VersionString("GTFS_FEEDGEN", &cfg)
			if err != nil {
				return fmt.Errorf("generating config version: %w", err)
			}
			fmt.Println(version)
			return nil
		}
		return fmt.Errorf("parsing config: %w", err)
	}

	log.Printf("main : Started : Application initializing : version %s", build)
	defer log.Println("main: Completed")

	paths := feedgen.Paths{
		StopsFile: cfg.Data.StopsFile,
		NogosFile: cfg.Data.NogosFile,
		ShapesDir: cfg.Data.ShapesDir,
		FeedFile:  cfg.Data.FeedFile,
	}

	switch cfg.Args.Num(0) {
	case "gen":
		return feedgen.GenerateFeed(log, paths)

	case "stops":
		return feedgen.AssignStopIds(log, paths)

	case "urls":
		return feedgen.PrintRouteLinks(log, os.Stdout, paths)

	case "reconcile":
		tripId := cfg.Args.Num(1)
		rawURL := cfg.Args.Num(2)
		if tripId == "" || rawURL == "" {
			return fmt.Errorf("expected trip id and brouter url with command reconcile")
		}
		return feedgen.ReconcilePositions(log, os.Stdout, rawURL, tripId, paths, cfg.Reconcile.ToleranceMeters)

	default:
		fmt.Println("gen: assemble the gtfs feed bundle")
		fmt.Println("stops: assign ids to new entries in the stop registry")
		fmt.Println("urls: emit a brouter link for every route shape")
		fmt.Println("reconcile <trip_id> <url>: pull edited stop positions and exclusion zones back from a brouter link")
		usage, err := conf.Usage("GTFS_FEEDGEN", &cfg)
		if err != nil {
			return fmt.Errorf("generating config usage: %w", err)
		}
		fmt.Println(usage)
	}
	return nil
}
