package config

import (
	"errors"
	"log"
	"strings"
	"sync/atomic"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// Preset is a named product configuration offered by the shop. The
// category/description pair keys the material consumption rules stored in
// the product_materials table.
type Preset struct {
	Category    string  `mapstructure:"category" json:"category"`
	Description string  `mapstructure:"description" json:"description"`
	Price       float64 `mapstructure:"price" json:"price"`
}

func DefaultPresets() []Preset {
	return []Preset{
		{Category: "business_cards", Description: "standard 90x50", Price: 25},
		{Category: "business_cards", Description: "premium laminated", Price: 40},
		{Category: "flyers", Description: "A5 color", Price: 15},
		{Category: "flyers", Description: "A4 color", Price: 22},
		{Category: "banners", Description: "vinyl 2x1m", Price: 80},
		{Category: "stickers", Description: "die-cut sheet", Price: 18},
	}
}

// PresetCatalogHolder serves the current preset catalog and hot-reloads it
// when the backing file changes.
type PresetCatalogHolder struct {
	current atomic.Value // holds []Preset
}

func NewPresetCatalogHolder() (*PresetCatalogHolder, error) {
	v := viper.New()

	v.SetConfigName("presets")
	v.SetConfigType("yml")
	v.AddConfigPath("/var/lib/printdesk/config") // Volume-mounted config
	v.AddConfigPath("/etc/printdesk")            // System config
	v.AddConfigPath(".")                         // Current directory (dev mode)

	v.SetEnvPrefix("PRINTDESK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
		// if config file not found, use defaults
		v.SetDefault("presets", DefaultPresets())
	}

	var presets []Preset
	if err := v.UnmarshalKey("presets", &presets); err != nil {
		return nil, err
	}
	if err := validatePresets(presets); err != nil {
		return nil, err
	}

	holder := &PresetCatalogHolder{}
	holder.current.Store(presets)

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		var updated []Preset
		if err := v.UnmarshalKey("presets", &updated); err != nil {
			log.Printf("[preset-catalog] reload failed: %v", err)
			return
		}
		if err := validatePresets(updated); err != nil {
			log.Printf("[preset-catalog] invalid catalog ignored: %v", err)
			return
		}
		holder.current.Store(updated)
		log.Printf("[preset-catalog] reloaded from %s", e.Name)
	})

	return holder, nil
}

func (h *PresetCatalogHolder) Get() []Preset {
	return h.current.Load().([]Preset)
}

func validatePresets(presets []Preset) error {
	if len(presets) == 0 {
		return errors.New("presets cannot be empty")
	}
	seen := make(map[string]struct{}, len(presets))
	for _, p := range presets {
		if strings.TrimSpace(p.Category) == "" {
			return errors.New("preset category cannot be empty")
		}
		if strings.TrimSpace(p.Description) == "" {
			return errors.New("preset description cannot be empty")
		}
		if p.Price < 0 {
			return errors.New("preset price cannot be negative")
		}
		key := p.Category + "/" + p.Description
		if _, ok := seen[key]; ok {
			return errors.New("duplicate preset " + key)
		}
		seen[key] = struct{}{}
	}
	return nil
}
