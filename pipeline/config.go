package pipeline

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/selago-ml/selago/core/model"
	"github.com/selago-ml/selago/linear"
	"github.com/selago-ml/selago/modelselection"
	"github.com/selago-ml/selago/pkg/errors"
)

// Config describes a full selection run: the data, the model, the
// cross-validation scheme and the search strategy.
type Config struct {
	Data struct {
		Path        string   `yaml:"path"`
		Target      string   `yaml:"target"`
		Categorical []string `yaml:"categorical"`
	} `yaml:"data"`

	Model struct {
		// Kind is "linear" or "ridge".
		Kind  string  `yaml:"kind"`
		Alpha float64 `yaml:"alpha"`
	} `yaml:"model"`

	CV struct {
		// Folds is the k of k-fold splitting; ignored when
		// LeaveOneOut is set.
		Folds       int  `yaml:"folds"`
		Shuffle     bool `yaml:"shuffle"`
		Seed        int  `yaml:"seed"`
		LeaveOneOut bool `yaml:"leave_one_out"`
	} `yaml:"cv"`

	Search struct {
		// Strategy is "exhaustive", "forward" or "backward".
		Strategy string `yaml:"strategy"`
		Parallel bool   `yaml:"parallel"`
	} `yaml:"search"`
}

// LoadConfig reads a run configuration from a YAML file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "pipeline.LoadConfig: read")
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "pipeline.LoadConfig: parse yaml")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the configuration before any data is touched.
func (c *Config) Validate() error {
	if c.Data.Target == "" {
		return errors.NewConfigurationError("pipeline.Config", "data.target is required", nil)
	}
	switch c.Model.Kind {
	case "", "linear", "ridge":
	default:
		return errors.NewConfigurationError("pipeline.Config", "model.kind must be linear or ridge", c.Model.Kind)
	}
	if c.Model.Alpha < 0 {
		return errors.NewConfigurationError("pipeline.Config", "model.alpha must be non-negative", c.Model.Alpha)
	}
	switch c.Search.Strategy {
	case "", "exhaustive", "forward", "backward":
	default:
		return errors.NewConfigurationError("pipeline.Config", "search.strategy must be exhaustive, forward or backward", c.Search.Strategy)
	}
	return nil
}

// Estimator builds the configured regression model.
func (c *Config) Estimator() model.Regressor {
	if c.Model.Kind == "ridge" {
		return linear.NewRidge(c.Model.Alpha)
	}
	return linear.NewLinearRegression()
}

// Splitter builds the configured cross-validation splitter.
func (c *Config) Splitter() modelselection.Splitter {
	if c.CV.LeaveOneOut {
		return modelselection.NewLeaveOneOut()
	}
	return modelselection.NewKFold(c.CV.Folds, c.CV.Shuffle, c.CV.Seed)
}
