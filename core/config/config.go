package config

import (
	_ "embed"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"sigs.k8s.io/yaml"
)

var (
	//go:embed default/config.yaml
	defaultConfigData []byte
)

const (
	ConfigurationName = "config.yaml"
)

// Configuration holds the tool's own settings. The shared control files
// sourced for the wrapper are separate, see ControlEnv.
type Configuration struct {
	// DeprecationNotice is the line the wrapper prints before delegating.
	DeprecationNotice string `json:"deprecation_notice" validate:"required"`
	// Helper is the theming helper's file name, looked up as a sibling of
	// the wrapper's resolved location.
	Helper string `json:"helper" validate:"required,excludes=/"`
	// ListingTool is the binary named in the listing alias expansions.
	ListingTool string `json:"listing_tool" validate:"required"`
	// PromptEngine is the prompt initializer hooked into interactive
	// sessions.
	PromptEngine string `json:"prompt_engine" validate:"required"`
}

// Validate the configuration for basic semantic errors.
func (c *Configuration) Validate() error {
	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		return name
	})

	return validate.Struct(c)
}

func defaultConfig() *Configuration {
	var out Configuration
	if err := yaml.UnmarshalStrict(defaultConfigData, &out); err != nil {
		panic(err)
	}
	return &out
}

// Default returns the built-in configuration.
func Default() *Configuration {
	return defaultConfig()
}
