package apollo

import (
	"fmt"
	"math"
	"strings"

	"github.com/spf13/viper"
)

// Scenario is a simulation and optimization scenario read from a TOML file.
type Scenario struct {
	Options    SimulatorOptions
	Dt         float64 // s
	Weather    WeatherCondition
	Projectile Projectile

	LaunchSpeed    float64 // m/s
	LaunchPitch    float64 // rad
	LaunchYaw      float64 // rad
	LaunchPosition Vector3

	Target                 Vector3
	OptimizerMaxIterations int
	Threshold              float64 // m
	PitchInterval          Interval
	YawInterval            Interval
	Concurrent             bool

	OutputDir string
	Verbose   bool
}

// LaunchVelocity returns the initial velocity of the scenario's launch.
func (s Scenario) LaunchVelocity() Vector3 {
	return VelocityFromAngles(s.LaunchSpeed, s.LaunchPitch, s.LaunchYaw)
}

// NewOptimizer returns the optimizer described by the scenario.
func (s Scenario) NewOptimizer() *SimulatorOptimizer {
	opti := NewSimulatorOptimizer(s.OptimizerMaxIterations, s.Threshold, s.LaunchSpeed, s.Options, s.Weather, s.Projectile)
	opti.Dt = s.Dt
	opti.Concurrent = s.Concurrent
	return opti
}

func setScenarioDefaults(v *viper.Viper) {
	v.SetDefault("general.body", "earth")
	v.SetDefault("general.output_dir", "./")
	v.SetDefault("general.verbose", false)
	v.SetDefault("simulator.max_iterations", DefaultMaxIterations)
	v.SetDefault("simulator.record_path", false)
	v.SetDefault("simulator.dt", DefaultStep)
	v.SetDefault("weather.wind_speed", 0)
	v.SetDefault("weather.wind_direction", 0)
	v.SetDefault("weather.temperature", 288)
	v.SetDefault("weather.pressure", 101325)
	v.SetDefault("weather.humidity", 0)
	v.SetDefault("projectile.shape", "sphere")
	v.SetDefault("projectile.mass", 0.15)
	v.SetDefault("projectile.radius", 0.09)
	v.SetDefault("launch.speed", 20)
	v.SetDefault("launch.pitch", 45)
	v.SetDefault("launch.yaw", 0)
	v.SetDefault("optimizer.max_iterations", 100)
	v.SetDefault("optimizer.threshold", 0.01)
	v.SetDefault("optimizer.concurrent", false)
	v.SetDefault("optimizer.pitch.begin", Rad2deg(DefaultPitchInterval.Begin))
	v.SetDefault("optimizer.pitch.end", Rad2deg(DefaultPitchInterval.End))
	v.SetDefault("optimizer.yaw.begin", Rad2deg(DefaultYawInterval.Begin))
	v.SetDefault("optimizer.yaw.end", Rad2deg(DefaultYawInterval.End))
}

// LoadScenario reads the scenario from the provided TOML file. Any key may be overridden by an
// environment variable prefixed by APOLLO_, e.g. APOLLO_WEATHER_WIND_SPEED.
// Angles are in degrees in the file and in radians in the returned Scenario.
func LoadScenario(path string) (Scenario, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix("apollo")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setScenarioDefaults(v)
	if err := v.ReadInConfig(); err != nil {
		return Scenario{}, fmt.Errorf("%s: %w", path, err)
	}
	return scenarioFromViper(v)
}

func scenarioFromViper(v *viper.Viper) (Scenario, error) {
	s := Scenario{}
	body, err := BodyFromString(v.GetString("general.body"))
	if err != nil {
		return s, err
	}
	s.OutputDir = v.GetString("general.output_dir")
	s.Verbose = v.GetBool("general.verbose")

	s.Options = NewSimulatorOptions(v.GetInt("simulator.max_iterations"), v.GetBool("simulator.record_path"))
	s.Options.Body = body
	if s.Options.MaxIterations < 1 {
		return s, fmt.Errorf("simulator.max_iterations: %w", ErrInvalidIterations)
	}
	s.Dt = v.GetFloat64("simulator.dt")
	if !(s.Dt > 0) {
		return s, fmt.Errorf("simulator.dt: %w", ErrInvalidStep)
	}

	s.Weather = NewWeatherCondition(
		v.GetFloat64("weather.wind_speed"),
		Deg2rad(v.GetFloat64("weather.wind_direction")),
		v.GetFloat64("weather.temperature"),
		v.GetFloat64("weather.pressure"),
		v.GetFloat64("weather.humidity"),
	)
	if h := s.Weather.Air.Humidity; h < 0 || h > 1 {
		return s, fmt.Errorf("weather.humidity must be within [0, 1], got %f", h)
	}

	mass := v.GetFloat64("projectile.mass")
	radius := v.GetFloat64("projectile.radius")
	if mass <= 0 || radius <= 0 {
		return s, fmt.Errorf("projectile mass and radius must be positive (mass=%f, radius=%f)", mass, radius)
	}
	if s.Projectile, err = ProjectileFromString(v.GetString("projectile.shape"), mass, radius); err != nil {
		return s, err
	}

	s.LaunchSpeed = v.GetFloat64("launch.speed")
	s.LaunchPitch = Deg2rad(v.GetFloat64("launch.pitch"))
	s.LaunchYaw = Deg2rad(v.GetFloat64("launch.yaw"))
	s.LaunchPosition = readVector(v, "launch.position")

	s.Target = readVector(v, "optimizer.target")
	s.OptimizerMaxIterations = v.GetInt("optimizer.max_iterations")
	s.Threshold = v.GetFloat64("optimizer.threshold")
	s.Concurrent = v.GetBool("optimizer.concurrent")
	s.PitchInterval = readInterval(v, "optimizer.pitch")
	s.YawInterval = readInterval(v, "optimizer.yaw")
	if math.IsNaN(s.Threshold) || s.Threshold < 0 {
		return s, fmt.Errorf("optimizer.threshold must be positive, got %f", s.Threshold)
	}
	return s, nil
}

// readVector reads the x, y and z sub keys of the provided key, defaulting to zero.
func readVector(v *viper.Viper, key string) Vector3 {
	return Vector3{
		X: v.GetFloat64(key + ".x"),
		Y: v.GetFloat64(key + ".y"),
		Z: v.GetFloat64(key + ".z"),
	}
}

// readInterval reads the begin and end sub keys of the provided key, in degrees.
func readInterval(v *viper.Viper, key string) Interval {
	return Interval{Deg2rad(v.GetFloat64(key + ".begin")), Deg2rad(v.GetFloat64(key + ".end"))}
}
