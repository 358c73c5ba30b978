package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/adammck/forceplate/overlay"
	"gopkg.in/yaml.v3"
)

// Config describes one replay: which files to load, how fast to tick, and
// where the plates are in the scene.
type Config struct {

	// Force plate CSV export.
	CSV string `yaml:"csv"`

	// Animation clip JSON, and the track to graph from it.
	Clip  string `yaml:"clip"`
	Track string `yaml:"track"`

	// Ticks per second.
	FPS int `yaml:"fps"`

	// Clip length in seconds, used when the clip doesn't say.
	Duration float64 `yaml:"duration"`

	TimeScale float64 `yaml:"time_scale"`

	// Progress through the clip to start the replay at.
	Start float64 `yaml:"start"`

	// Add angular velocity to the graph of rotation tracks.
	Velocity bool `yaml:"velocity"`

	Layout overlay.Layout `yaml:"layout"`

	Debug bool `yaml:"debug"`
}

// Default returns the configuration used for anything a file leaves out.
func Default() Config {
	return Config{
		FPS:       60,
		Duration:  10,
		TimeScale: 1,
		Velocity:  true,
		Layout: overlay.Layout{
			Start:       -1.5,
			Spacing:     1,
			Scale:       1,
			VectorScale: 0.001,
		},
	}
}

// Load reads the YAML file at path over the defaults. The result is not
// validated, so that flags can still override it; call Validate once they
// have.
func Load(path string) (Config, error) {
	c := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return c, fmt.Errorf("reading config: %w", err)
	}

	err = yaml.Unmarshal(b, &c)
	if err != nil {
		return c, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return c, nil
}

// Validate returns an error describing every invalid field.
func (c Config) Validate() error {
	var errs []error

	if c.FPS <= 0 {
		errs = append(errs, fmt.Errorf("fps must be positive, got %d", c.FPS))
	}

	if c.Duration <= 0 {
		errs = append(errs, fmt.Errorf("duration must be positive, got %v", c.Duration))
	}

	if c.TimeScale <= 0 {
		errs = append(errs, fmt.Errorf("time_scale must be positive, got %v", c.TimeScale))
	}

	if c.Start < 0 || c.Start >= 1 {
		errs = append(errs, fmt.Errorf("start must be in [0, 1), got %v", c.Start))
	}

	if c.Layout.Scale <= 0 {
		errs = append(errs, fmt.Errorf("layout.scale must be positive, got %v", c.Layout.Scale))
	}

	return errors.Join(errs...)
}
