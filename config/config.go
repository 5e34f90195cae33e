package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const defaultPath = "."

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port     int `json:"port" yaml:"port"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// Registry configures the public facility registry the collector and
	// region search read from.
	Registry *RegistryConfig `json:"registry" yaml:"registry"`

	// Geocode configures the forward/reverse geocoding collaborator.
	Geocode *GeocodeConfig `json:"geocode" yaml:"geocode"`

	// Search configures radius search limits and result caps.
	Search *SearchConfig `json:"search" yaml:"search"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// RegistryConfig defines the upstream registry endpoints and paging.
type RegistryConfig struct {
	BaseURL    string        `json:"baseUrl" yaml:"baseUrl"`
	ServiceKey string        `json:"serviceKey" yaml:"serviceKey"`
	PageSize   int           `json:"pageSize" yaml:"pageSize"`
	Timeout    time.Duration `json:"timeout" yaml:"timeout"`
}

// GeocodeConfig defines the Nominatim-compatible geocoding endpoint.
type GeocodeConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	UserAgent string        `json:"userAgent" yaml:"userAgent"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
}

// SearchConfig defines query-side limits.
type SearchConfig struct {
	DefaultRadiusKm float64 `json:"defaultRadiusKm" yaml:"defaultRadiusKm"`
	MaxRadiusKm     float64 `json:"maxRadiusKm" yaml:"maxRadiusKm"`
	NearbyLimit     int     `json:"nearbyLimit" yaml:"nearbyLimit"`
}

// Defaults applied when a section is missing from the YAML file.
const (
	defaultPageSize        = 1000
	defaultRegistryTimeout = 30 * time.Second
	defaultGeocodeTimeout  = 10 * time.Second
	defaultRadiusKm        = 3.0
	defaultMaxRadiusKm     = 500.0
	defaultNearbyLimit     = 1000
)

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	// Try to find and load the config file
	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	// Load YAML config file
	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	// Load environment variables
	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Convert ENV_VAR_NAME to path and align each segment with existing YAML keys.
			// Example: REGISTRY_SERVICEKEY -> registry.serviceKey (not registry.servicekey)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	// Unmarshal into the config struct (case-insensitive to match env vars)
	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				// Case-insensitive matching for env var overrides
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.applyDefaults()

	return cfg, nil
}

func (cfg *Config) applyDefaults() {
	if cfg.Registry == nil {
		cfg.Registry = &RegistryConfig{}
	}
	if cfg.Registry.PageSize <= 0 {
		cfg.Registry.PageSize = defaultPageSize
	}
	if cfg.Registry.Timeout <= 0 {
		cfg.Registry.Timeout = defaultRegistryTimeout
	}

	if cfg.Geocode == nil {
		cfg.Geocode = &GeocodeConfig{}
	}
	if cfg.Geocode.Timeout <= 0 {
		cfg.Geocode.Timeout = defaultGeocodeTimeout
	}

	if cfg.Search == nil {
		cfg.Search = &SearchConfig{}
	}
	if cfg.Search.DefaultRadiusKm <= 0 {
		cfg.Search.DefaultRadiusKm = defaultRadiusKm
	}
	if cfg.Search.MaxRadiusKm <= 0 {
		cfg.Search.MaxRadiusKm = defaultMaxRadiusKm
	}
	if cfg.Search.NearbyLimit <= 0 {
		cfg.Search.NearbyLimit = defaultNearbyLimit
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
