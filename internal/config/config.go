package config

import (
	"fmt"

	"cube-netter/internal/logger"

	"github.com/spf13/viper"
)

// BorderZones holds the normalized centroid cutoffs that split a face image
// into its four border bands. A centroid exactly on a cutoff matches no zone.
type BorderZones struct {
	EdgeNear float64 `mapstructure:"edge_near"`
	SpanLow  float64 `mapstructure:"span_low"`
	SpanHigh float64 `mapstructure:"span_high"`
	EdgeFar  float64 `mapstructure:"edge_far"`
}

// Config is the process-wide tuning surface. Loaded once at startup and
// treated as immutable afterwards.
type Config struct {
	FaceHeight      int                     `mapstructure:"face_height"`
	MinBlobArea     float64                 `mapstructure:"min_blob_area"`
	BackgroundColor string                  `mapstructure:"background_color"`
	BorderZones     BorderZones             `mapstructure:"border_zone_thresholds"`
	ColorProfiles   map[string]ColorProfile `mapstructure:"color_profiles"`
}

// Load reads the optional YAML config file at path and fills the gaps with
// the built-in defaults. An empty path means defaults only.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigType("yaml")

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("face_height", 300)
	v.SetDefault("min_blob_area", 100)
	v.SetDefault("background_color", "white")
	v.SetDefault("border_zone_thresholds.edge_near", 0.2)
	v.SetDefault("border_zone_thresholds.span_low", 0.3)
	v.SetDefault("border_zone_thresholds.span_high", 0.7)
	v.SetDefault("border_zone_thresholds.edge_far", 0.8)

	for name, profile := range defaultProfiles {
		v.SetDefault("color_profiles."+name+".lower", profile.Lower)
		v.SetDefault("color_profiles."+name+".upper", profile.Upper)
	}
}

func (c *Config) validate() error {
	if c.FaceHeight <= 0 {
		return fmt.Errorf("face_height must be positive, got %d", c.FaceHeight)
	}

	if c.MinBlobArea < 0 {
		return fmt.Errorf("min_blob_area must be non-negative, got %g", c.MinBlobArea)
	}

	z := c.BorderZones
	if !(0 < z.EdgeNear && z.EdgeNear <= z.SpanLow && z.SpanLow < z.SpanHigh && z.SpanHigh <= z.EdgeFar && z.EdgeFar < 1) {
		return fmt.Errorf("border zone thresholds must satisfy 0 < edge_near <= span_low < span_high <= edge_far < 1")
	}

	if len(c.ColorProfiles) == 0 {
		return fmt.Errorf("no color profiles configured")
	}

	if _, ok := c.ColorProfiles[c.BackgroundColor]; !ok {
		return fmt.Errorf("background color %q has no profile", c.BackgroundColor)
	}

	for name, profile := range c.ColorProfiles {
		if err := profile.validate(); err != nil {
			return fmt.Errorf("color profile %q: %w", name, err)
		}
	}

	return nil
}

// WarnDeadProfiles logs profiles whose hue bounds can never match. Hue
// wrap-around is not handled: an upper hue below the lower hue matches
// nothing rather than wrapping past the top of the channel.
func (c *Config) WarnDeadProfiles(log logger.Logger) {
	for name, profile := range c.ColorProfiles {
		for ch := 0; ch < 3; ch++ {
			if profile.Upper[ch] < profile.Lower[ch] {
				log.Warning("Config", "color profile can never match", map[string]interface{}{
					"profile": name,
					"channel": ch,
					"lower":   profile.Lower[ch],
					"upper":   profile.Upper[ch],
				})
			}
		}
	}
}
