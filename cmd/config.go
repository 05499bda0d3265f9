package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/josephgoksu/RepoWing/llm"
	"github.com/josephgoksu/RepoWing/potpie"
	"github.com/josephgoksu/RepoWing/tools"
	"github.com/josephgoksu/RepoWing/types"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	configName = ".repowing"
	envPrefix  = "REPOWING"
)

// GlobalAppConfig holds the global application configuration instance.
var GlobalAppConfig types.AppConfig

// validate is a single instance of Validate, it caches struct info
var validate *validator.Validate

func init() {
	validate = validator.New()
}

// validateAppConfig performs validation on the AppConfig struct.
func validateAppConfig(config *types.AppConfig) error {
	return validate.Struct(config)
}

// InitConfig reads in config file and ENV variables if set.
func InitConfig() {
	// Load .env file first if present. It's okay if it doesn't exist.
	_ = godotenv.Load()

	// Environment variable handling must be set up BEFORE reading the config
	// file, so env vars can influence config loading.
	viper.SetEnvPrefix(envPrefix) // e.g., REPOWING_VERBOSE
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // potpie.apiKey -> REPOWING_POTPIE_APIKEY

	cfgFileFlag := viper.GetString("config") // Value from --config flag

	if cfgFileFlag != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFileFlag)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)
		viper.AddConfigPath(".")        // ./.repowing.yaml
		viper.AddConfigPath(home)       // $HOME/.repowing.yaml
		viper.SetConfigName(configName)
	}

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	} else {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			if cfgFileFlag != "" {
				fmt.Fprintln(os.Stderr, "Error: Specified config file not found:", cfgFileFlag)
			} else if viper.GetBool("verbose") {
				fmt.Fprintln(os.Stderr, "No config file found. Using defaults and environment variables.")
			}
		} else {
			fmt.Fprintln(os.Stderr, "Error reading config file:", viper.ConfigFileUsed(), "-", err)
		}
	}

	setConfigDefaults()

	// After all sources are configured, unmarshal into GlobalAppConfig
	if err := viper.Unmarshal(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Error unmarshaling config: %s\n", err)
		os.Exit(1)
	}

	resolveCredentials(&GlobalAppConfig)

	if err := validateAppConfig(&GlobalAppConfig); err != nil {
		fmt.Fprintf(os.Stderr, "Configuration validation error: %s\n", err)
		os.Exit(1)
	}
}

func setConfigDefaults() {
	viper.SetDefault("potpie.baseUrl", potpie.DefaultBaseURL)
	viper.SetDefault("potpie.requestTimeoutSeconds", 60)
	viper.SetDefault("potpie.readyTimeoutSeconds", 600)
	viper.SetDefault("potpie.pollIntervalSeconds", 10)

	viper.SetDefault("llm.provider", "groq")
	viper.SetDefault("llm.modelName", llm.DefaultGroqModel)
	viper.SetDefault("llm.baseUrl", llm.DefaultGroqBaseURL)
	viper.SetDefault("llm.maxIterations", 10)
	viper.SetDefault("llm.requestTimeoutSeconds", 120)
}

// resolveCredentials fills API keys from the well-known environment variables
// when the config file leaves them empty.
func resolveCredentials(cfg *types.AppConfig) {
	if cfg.Potpie.APIKey == "" {
		cfg.Potpie.APIKey = os.Getenv("POTPIE_API_KEY")
	}
	if cfg.LLM.APIKey == "" {
		cfg.LLM.APIKey = os.Getenv("GROQ_API_KEY")
	}
}

// GetConfig returns a pointer to the global types.AppConfig instance.
func GetConfig() *types.AppConfig {
	return &GlobalAppConfig
}

// HasAnalysisCredentials reports whether both required API keys are present.
// Without them no analysis tools are registered.
func HasAnalysisCredentials() bool {
	cfg := GetConfig()
	return cfg.Potpie.APIKey != "" && cfg.LLM.APIKey != ""
}

// newPotpieClient builds the API client from the global configuration.
// It fails when the Potpie API key is missing.
func newPotpieClient() (*potpie.Client, error) {
	cfg := GetConfig()
	if cfg.Potpie.APIKey == "" {
		return nil, fmt.Errorf("POTPIE_API_KEY not set; export POTPIE_API_KEY or set potpie.apiKey in %s.yaml", configName)
	}
	return potpie.NewClient(potpie.Config{
		APIKey:  cfg.Potpie.APIKey,
		BaseURL: cfg.Potpie.BaseURL,
		Timeout: time.Duration(cfg.Potpie.RequestTimeoutSeconds) * time.Second,
		Verbose: cfg.Verbose,
	}), nil
}

// newToolbox builds the analysis toolbox from the global configuration.
func newToolbox() (*tools.Toolbox, error) {
	cfg := GetConfig()
	client, err := newPotpieClient()
	if err != nil {
		return nil, err
	}
	tb := tools.New(client)
	tb.SetVerbose(cfg.Verbose)
	tb.SetPollSettings(
		time.Duration(cfg.Potpie.ReadyTimeoutSeconds)*time.Second,
		time.Duration(cfg.Potpie.PollIntervalSeconds)*time.Second,
	)
	return tb, nil
}
