// Package config loads tuning overrides from tidewake.toml and TIDEWAKE_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/lixenwraith/tidewake/parameter"
)

const (
	FileName  = "tidewake"
	FileType  = "toml"
	EnvPrefix = "TIDEWAKE"
)

var ErrInvalidConfig = errors.New("invalid config")

type WaveConfig struct {
	GridSegments   int     `mapstructure:"gridSegments"`
	Size           float64 `mapstructure:"size"`
	NormalInterval int     `mapstructure:"normalInterval"`
}

type VesselConfig struct {
	PathSpeed         float64 `mapstructure:"pathSpeed"`
	Acceleration      float64 `mapstructure:"acceleration"`
	Friction          float64 `mapstructure:"friction"`
	MaxSpeed          float64 `mapstructure:"maxSpeed"`
	RotationSpeed     float64 `mapstructure:"rotationSpeed"`
	AngularFriction   float64 `mapstructure:"angularFriction"`
	Restitution       float64 `mapstructure:"restitution"`
	PlayerScaleFactor float64 `mapstructure:"playerScaleFactor"`
}

type CameraConfig struct {
	Preset          string  `mapstructure:"preset"`
	AutoRotateSpeed float64 `mapstructure:"autoRotateSpeed"`
	FOV             float64 `mapstructure:"fov"`
}

type CollectibleConfig struct {
	Count        int     `mapstructure:"count"`
	PickupRadius float64 `mapstructure:"pickupRadius"`
}

type InputConfig struct {
	JoystickRadius   float64           `mapstructure:"joystickRadius"`
	JoystickDeadZone float64           `mapstructure:"joystickDeadZone"`
	Bindings         map[string]string `mapstructure:"bindings"`
}

type EngineConfig struct {
	TickInterval time.Duration `mapstructure:"tickInterval"`
	MaxDelta     float64       `mapstructure:"maxDelta"`
	Seed         uint64        `mapstructure:"seed"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type BridgeConfig struct {
	Listen          string        `mapstructure:"listen"`
	SnapshotStride  int           `mapstructure:"snapshotStride"`
	WriteTimeout    time.Duration `mapstructure:"writeTimeout"`
	AllowAnyOrigin  bool          `mapstructure:"allowAnyOrigin"`
	MaxMessageBytes int64         `mapstructure:"maxMessageBytes"`
	MaxSessions     int           `mapstructure:"maxSessions"`
}

type AudioConfig struct {
	Enabled      bool               `mapstructure:"enabled"`
	MasterVolume float64            `mapstructure:"masterVolume"`
	Volumes      map[string]float64 `mapstructure:"volumes"` // per cue name, 0..1
}

// Config is the typed view of every tunable key
type Config struct {
	Wave        WaveConfig        `mapstructure:"wave"`
	Vessel      VesselConfig      `mapstructure:"vessel"`
	Camera      CameraConfig      `mapstructure:"camera"`
	Collectible CollectibleConfig `mapstructure:"collectible"`
	Input       InputConfig       `mapstructure:"input"`
	Engine      EngineConfig      `mapstructure:"engine"`
	Log         LogConfig         `mapstructure:"log"`
	Bridge      BridgeConfig      `mapstructure:"bridge"`
	Audio       AudioConfig       `mapstructure:"audio"`

	// Source is the config file used, empty when defaults and env only
	Source string `mapstructure:"-"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("wave.gridSegments", parameter.OceanGridSegments)
	v.SetDefault("wave.size", parameter.OceanSize)
	v.SetDefault("wave.normalInterval", parameter.WaveNormalInterval)

	v.SetDefault("vessel.pathSpeed", parameter.VesselPathSpeed)
	v.SetDefault("vessel.acceleration", parameter.VesselAcceleration)
	v.SetDefault("vessel.friction", parameter.VesselFriction)
	v.SetDefault("vessel.maxSpeed", parameter.VesselMaxSpeed)
	v.SetDefault("vessel.rotationSpeed", parameter.VesselRotationSpeed)
	v.SetDefault("vessel.angularFriction", parameter.VesselAngularFriction)
	v.SetDefault("vessel.restitution", parameter.VesselRestitution)
	v.SetDefault("vessel.playerScaleFactor", parameter.VesselPlayerScaleFactor)

	v.SetDefault("camera.preset", "desktop")
	v.SetDefault("camera.autoRotateSpeed", parameter.CameraAutoRotateSpeed)
	v.SetDefault("camera.fov", parameter.CameraFOV)

	v.SetDefault("collectible.count", parameter.FragmentCount)
	v.SetDefault("collectible.pickupRadius", parameter.FragmentPickupRadius)

	v.SetDefault("input.joystickRadius", parameter.JoystickMaxRadius)
	v.SetDefault("input.joystickDeadZone", parameter.JoystickDeadZone)
	v.SetDefault("input.bindings", map[string]string{})

	v.SetDefault("engine.tickInterval", parameter.FrameUpdateInterval)
	v.SetDefault("engine.maxDelta", parameter.MaxFrameDelta)
	v.SetDefault("engine.seed", uint64(parameter.DefaultSeed))

	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetDefault("bridge.listen", "127.0.0.1:8470")
	v.SetDefault("bridge.snapshotStride", 4)
	v.SetDefault("bridge.writeTimeout", 2*time.Second)
	v.SetDefault("bridge.allowAnyOrigin", false)
	v.SetDefault("bridge.maxMessageBytes", int64(4096))
	v.SetDefault("bridge.maxSessions", parameter.BridgeMaxSessions)

	v.SetDefault("audio.enabled", true)
	v.SetDefault("audio.masterVolume", parameter.AudioMasterVolume)
	v.SetDefault("audio.volumes", map[string]float64{})
}

// Load reads tidewake.toml from configDir when present, applies env overrides, and validates
// A missing file is not an error
func Load(configDir string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetConfigName(FileName)
	v.SetConfigType(FileType)
	if configDir != "" {
		v.AddConfigPath(configDir)
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error decoding config: %w", err)
	}
	cfg.Source = v.ConfigFileUsed()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Default returns the built-in configuration without touching disk or env
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	// Defaults always decode
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// Validate rejects values the simulation cannot run with
func (c *Config) Validate() error {
	var errs []error
	check := func(ok bool, format string, args ...any) {
		if !ok {
			errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalidConfig}, args...)...))
		}
	}
	check(c.Wave.GridSegments > 0, "wave.gridSegments %d", c.Wave.GridSegments)
	check(c.Wave.Size > 0, "wave.size %v", c.Wave.Size)
	check(c.Wave.NormalInterval > 0, "wave.normalInterval %d", c.Wave.NormalInterval)
	check(c.Vessel.Friction > 0 && c.Vessel.Friction <= 1, "vessel.friction %v", c.Vessel.Friction)
	check(c.Vessel.AngularFriction > 0 && c.Vessel.AngularFriction <= 1, "vessel.angularFriction %v", c.Vessel.AngularFriction)
	check(c.Vessel.MaxSpeed > 0, "vessel.maxSpeed %v", c.Vessel.MaxSpeed)
	check(c.Vessel.Restitution >= 0 && c.Vessel.Restitution <= 1, "vessel.restitution %v", c.Vessel.Restitution)
	check(c.Vessel.PlayerScaleFactor > 0, "vessel.playerScaleFactor %v", c.Vessel.PlayerScaleFactor)
	check(c.Camera.FOV > 0 && c.Camera.FOV < 180, "camera.fov %v", c.Camera.FOV)
	check(c.Collectible.Count >= 0, "collectible.count %d", c.Collectible.Count)
	check(c.Collectible.PickupRadius > 0, "collectible.pickupRadius %v", c.Collectible.PickupRadius)
	check(c.Input.JoystickDeadZone >= 0 && c.Input.JoystickDeadZone < 1, "input.joystickDeadZone %v", c.Input.JoystickDeadZone)
	check(c.Engine.TickInterval > 0, "engine.tickInterval %v", c.Engine.TickInterval)
	check(c.Engine.MaxDelta > 0, "engine.maxDelta %v", c.Engine.MaxDelta)
	check(c.Bridge.SnapshotStride > 0, "bridge.snapshotStride %d", c.Bridge.SnapshotStride)
	check(c.Bridge.MaxSessions > 0, "bridge.maxSessions %d", c.Bridge.MaxSessions)
	check(c.Audio.MasterVolume >= 0 && c.Audio.MasterVolume <= 1, "audio.masterVolume %v", c.Audio.MasterVolume)
	return errors.Join(errs...)
}
