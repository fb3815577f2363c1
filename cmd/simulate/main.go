package main

import (
	"flag"
	"log"
	"os"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/skywa04885/apollo"
	"github.com/skywa04885/apollo/metrics"
)

// This code only reads the scenario and runs a single simulation of its launch.

const defaultScenario = "~~unset~~"

var (
	scenario string
	export   string
	verbose  bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "simulation scenario TOML file")
	flag.StringVar(&export, "export", "", "name of the CSV file the path is exported to (in the output directory)")
	flag.BoolVar(&verbose, "verbose", false, "log every simulator event")
}

func main() {
	flag.Parse()
	if scenario == defaultScenario {
		log.Fatal("no scenario provided")
	}
	if !strings.HasSuffix(scenario, ".toml") {
		scenario += ".toml"
	}
	conf, err := apollo.LoadScenario(scenario)
	if err != nil {
		log.Fatalf("could not load scenario: %s", err)
	}

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "scenario", scenario)
	if verbose || conf.Verbose {
		conf.Options.Logger = logger
		logger.Log("level", "info", "subsys", "conf", "body", conf.Options.Body, "weather", conf.Weather, "projectile", conf.Projectile, "dt", conf.Dt)
	}
	conf.Options.GenerateDataPoints = conf.Options.GenerateDataPoints || export != ""
	reg := prometheus.NewRegistry()
	conf.Options.Metrics = metrics.NewCollector(reg)

	sim := apollo.NewSimulator(conf.Options, conf.Weather, conf.Projectile, conf.LaunchVelocity(), conf.LaunchPosition)
	if err = sim.Run(conf.Dt); err != nil {
		log.Fatalf("simulation failed: %s", err)
	}
	position, _ := sim.Position()
	flightTime, _ := sim.FlightTime()
	iterations, _ := sim.Iterations()
	impacted, _ := sim.Impacted()
	duration, _ := sim.Duration()
	logger.Log("level", "notice", "subsys", "sim", "position", position, "range(m)", position.Sub(conf.LaunchPosition).Horizontal().Length(), "flight(s)", flightTime, "iterations", iterations, "impacted", impacted, "duration", duration)

	if export != "" {
		filename, err := apollo.ExportPathFile(conf.OutputDir, export, false, sim)
		if err != nil {
			log.Fatalf("could not export path: %s", err)
		}
		logger.Log("level", "info", "subsys", "export", "file", filename)
	}
}
