package main

import (
	"flag"
	"log"
	"os"
	"runtime"
	"strings"

	kitlog "github.com/go-kit/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/skywa04885/apollo"
	"github.com/skywa04885/apollo/metrics"
)

const defaultScenario = "~~unset~~"

var (
	scenario   string
	numCPUs    int
	ultraDebug bool
)

func init() {
	flag.StringVar(&scenario, "scenario", defaultScenario, "optimization scenario TOML file")
	flag.IntVar(&numCPUs, "cpus", -1, "number of CPUs to use for concurrent probes (set to 0 for max CPUs)")
	flag.BoolVar(&ultraDebug, "debug", false, "debug everything (really verbose)")
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
	availableCPUs := runtime.NumCPU()
	if numCPUs <= 0 || numCPUs > availableCPUs {
		numCPUs = availableCPUs
	}
	runtime.GOMAXPROCS(numCPUs)

	logger := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	logger = kitlog.With(logger, "scenario", scenario)
	if ultraDebug || conf.Verbose {
		conf.Options.Logger = logger
	}
	reg := prometheus.NewRegistry()
	conf.Options.Metrics = metrics.NewCollector(reg)
	logger.Log("level", "info", "subsys", "conf", "target", conf.Target, "speed(m/s)", conf.LaunchSpeed, "cpus", numCPUs, "concurrent", conf.Concurrent)

	opti := conf.NewOptimizer()
	if _, err = opti.RunWithin(conf.Target, conf.PitchInterval, conf.YawInterval); err != nil {
		log.Fatalf("optimization failed: %s", err)
	}
	pitch, _ := opti.Pitch()
	yaw, _ := opti.Yaw()
	rsltErr, _ := opti.Error()
	iterations, _ := opti.Iterations()
	reason, _ := opti.Reason()
	logger.Log("level", "notice", "subsys", "optimizer", "pitch(deg)", apollo.Rad2deg(pitch), "yaw(deg)", apollo.Rad2deg(yaw), "error(m)", rsltErr, "iterations", iterations, "reason", reason)
	if rsltErr >= conf.Threshold {
		logger.Log("level", "warning", "subsys", "optimizer", "message", "threshold not reached")
	}

	// Replay the best launch to report where it lands.
	rslt, err := apollo.Simulate(conf.Options, conf.Weather, conf.Projectile, apollo.VelocityFromAngles(conf.LaunchSpeed, pitch, yaw), apollo.Vector3{}, conf.Dt)
	if err != nil {
		log.Fatalf("replay failed: %s", err)
	}
	logger.Log("level", "info", "subsys", "sim", "landing", rslt.FinalPosition, "flight(s)", rslt.FlightTime)

	if mfs, err := reg.Gather(); err == nil {
		for _, mf := range mfs {
			for _, m := range mf.GetMetric() {
				var val float64
				switch {
				case m.GetCounter() != nil:
					val = m.GetCounter().GetValue()
				case m.GetGauge() != nil:
					val = m.GetGauge().GetValue()
				default:
					continue
				}
				logger.Log("level", "debug", "subsys", "metrics", "name", mf.GetName(), "value", val)
			}
		}
	}
}
