package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

const keyEnv = "ENV"
const envLocal = "local"

type Config struct {
	config *viper.Viper
}

func Load(env string) (*Config, error) {

	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}

	configPath, err := getConfigPath(env)

	viperConfig := viper.New()
	if err == nil {
		viperConfig.SetConfigFile(configPath)
		if err := viperConfig.ReadInConfig(); err != nil {
			slog.Warn(fmt.Sprintf("error reading config file, %s", err))
		}
	}
	viperConfig.AutomaticEnv()

	cfg := &Config{
		config: viperConfig,
	}

	return cfg, nil
}

func (c *Config) GetPort() string {
	port := c.config.GetString("PORT")
	if len(port) == 0 {
		port = c.config.GetString("server.port")
	}

	return port
}

func (c *Config) GetCatalogDBPath() string {
	catalogPath := c.config.GetString("CATALOG_DB_PATH")
	if len(catalogPath) == 0 {
		catalogPath = c.config.GetString("database.catalog_path")
	}

	return catalogPath
}

func (c *Config) GetMaxResults() int {
	maxResults := c.config.GetInt("SEARCH_MAX_RESULTS")
	if maxResults == 0 {
		maxResults = c.config.GetInt("search.max_results")
	}

	return maxResults
}

func (c *Config) GetMinScore() float64 {
	minScore := c.config.GetFloat64("SEARCH_MIN_SCORE")
	if minScore == 0 {
		minScore = c.config.GetFloat64("search.min_score")
	}

	return minScore
}

func (c *Config) GetFuzzyThreshold() float64 {
	threshold := c.config.GetFloat64("SEARCH_FUZZY_THRESHOLD")
	if threshold == 0 {
		threshold = c.config.GetFloat64("search.fuzzy_threshold")
	}

	return threshold
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}

		parent := filepath.Dir(currentDir)

		if parent == currentDir {
			break
		}

		currentDir = parent
	}

	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)

	projectRoot, err := getProjectRoot()
	if err != nil {
		slog.Warn("failed to find project root with config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("failed to find project root: %w", err)
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		slog.Warn("failed to find config file within config directory, will use environment variables instead", "err", err.Error())
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}

	return configPath, nil
}
