package config

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/spf13/viper"

	"github.com/boardgameodds/fief/internal/models"
	"github.com/boardgameodds/fief/internal/odds"
	"github.com/boardgameodds/fief/internal/simulator"
)

// EnvPrefix is prepended to environment variable overrides, e.g. FIEF_TRIALS
const EnvPrefix = "FIEF"

// Config is the full application configuration
type Config struct {
	Trials   int        `json:"trials" mapstructure:"trials"`
	Workers  int        `json:"workers" mapstructure:"workers"`
	Seed     uint64     `json:"seed" mapstructure:"seed"`
	LogLevel string     `json:"logLevel" mapstructure:"logLevel"`
	Army     ArmyPair   `json:"army" mapstructure:"army"`
	Odds     OddsConfig `json:"odds" mapstructure:"odds"`
}

// ArmyPair holds the two opposing army configurations
type ArmyPair struct {
	A models.ArmyConfig `json:"a" mapstructure:"a"`
	B models.ArmyConfig `json:"b" mapstructure:"b"`
}

// OddsConfig holds odds table settings
type OddsConfig struct {
	Cutoff float64 `json:"cutoff" mapstructure:"cutoff"`
	Output string  `json:"output" mapstructure:"output"`
}

// SetDefaults registers default values for every key
func SetDefaults() {
	viper.SetDefault("trials", simulator.DefaultTrials)
	viper.SetDefault("workers", runtime.NumCPU())
	viper.SetDefault("seed", 0)
	viper.SetDefault("logLevel", "info")

	setArmyDefaults("army.a", models.DefaultAttacker())
	setArmyDefaults("army.b", models.DefaultDefender())

	viper.SetDefault("odds.cutoff", odds.DefaultCutoff)
	viper.SetDefault("odds.output", "odds.csv")
}

func setArmyDefaults(prefix string, a models.Army) {
	c := models.ConfigFromArmy(a)
	viper.SetDefault(prefix+".menAtArms", c.MenAtArms)
	viper.SetDefault(prefix+".knights", c.Knights)
	viper.SetDefault(prefix+".structure", c.Structure)
	viper.SetDefault(prefix+".leader", c.Leader)
}

// Load sets default values, enables FIEF_* environment overrides and reads
// the config file at path. An empty path looks for an optional fief.json,
// fief.yaml or fief.toml in the working directory.
func Load(path string) error {
	SetDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("error reading config file: %w", err)
		}
		return nil
	}

	viper.SetConfigName("fief")
	viper.AddConfigPath(".")
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("error reading config file: %w", err)
	}
	return nil
}

// Get decodes the current settings into a Config
func Get() (Config, error) {
	var c Config
	if err := viper.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("error decoding config: %w", err)
	}
	return c, nil
}

// Armies converts both army configurations into validated armies
func (c Config) Armies() (a, b models.Army, err error) {
	a, err = c.Army.A.ToArmy()
	if err != nil {
		return models.Army{}, models.Army{}, fmt.Errorf("army a: %w", err)
	}
	b, err = c.Army.B.ToArmy()
	if err != nil {
		return models.Army{}, models.Army{}, fmt.Errorf("army b: %w", err)
	}
	return a, b, nil
}

// Simulator returns the simulator settings
func (c Config) Simulator() simulator.Config {
	return simulator.Config{
		Trials:  c.Trials,
		Workers: c.Workers,
		Seed:    c.Seed,
	}
}

// UsedFile returns the config file that was read, if any
func UsedFile() string {
	return viper.ConfigFileUsed()
}
