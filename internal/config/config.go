// Package config defines the data structures related to configuration and
// includes functions for loading and parsing the config.
package config

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
	"github.com/srivastava-utkarsh/car-loan-planner/pkg/constants"
)

// DateTimeLayout is the format expected in config files and is also the output
// date format.
const DateTimeLayout = constants.DateTimeLayout

// Configuration holds all configuration for the planner: the base loan, the
// prepayment scenarios evaluated against it, and the optional affordability
// inputs.
type Configuration struct {
	Loan          LoanConfig
	Scenarios     []Scenario
	Affordability *AffordabilityConfig `yaml:"affordability,omitempty"`
	StartDate     string               `yaml:"startDate,omitempty"`
	Logging       LoggingConfig        `yaml:"logging,omitempty"`
	Output        OutputConfig         `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// Scenario holds one named prepayment plan to evaluate against the base loan.
// A scenario without a prepayment reproduces the baseline schedule. A solve
// directive replaces the fixed amount with a searched one.
type Scenario struct {
	Name       string
	Active     bool
	Prepayment *PrepaymentConfig `yaml:"prepayment,omitempty"`
	Solve      *SolverConfig     `yaml:"solve,omitempty"`
}

// PrepaymentConfig describes extra principal payments within a scenario.
// A FrequencyMonths of 0 means a single lump sum in the first month.
type PrepaymentConfig struct {
	Amount             float64
	FrequencyMonths    int
	Strategy           string
	PenaltyRatePercent float64
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ActiveScenarios returns the scenarios marked active, preserving order.
func (conf *Configuration) ActiveScenarios() []Scenario {
	var active []Scenario
	for _, scenario := range conf.Scenarios {
		if scenario.Active {
			active = append(active, scenario)
		}
	}
	return active
}

// EffectiveStartDate returns the configured start month, falling back to the
// current month when unset.
func (conf *Configuration) EffectiveStartDate() string {
	return conf.EffectiveStartDateWithFixedTime(time.Now())
}

// EffectiveStartDateWithFixedTime resolves the start month using an
// injectable clock for testing.
func (conf *Configuration) EffectiveStartDateWithFixedTime(fixedTime time.Time) string {
	if conf.StartDate != "" {
		return conf.StartDate
	}
	return fixedTime.Format(DateTimeLayout)
}
