package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Mesh    Mesh
	Output  OutputConfig
	Logging LoggingConfig
}

// Mesh holds every knob of a terrain generation run.
type Mesh struct {
	Size             int
	Scale            float64 // inert, kept for parity with existing scene settings
	HeightCurve      string
	HeightMultiplier float64

	Seed       int
	NoiseScale float64 // inert, per-layer scales take precedence
	NoiseKind  string

	Invert bool

	LayerScales     []float64
	LayerAmplitudes []float64

	OffsetX, OffsetY                float64
	PositionX, PositionY, PositionZ float64

	Material        string
	MaterialTexture string
}

type OutputConfig struct {
	Format string
}

type LoggingConfig struct {
	Level string
}

// DefaultMesh returns the stock terrain parameters.
func DefaultMesh() Mesh {
	return Mesh{
		Size:             10,
		Scale:            10,
		HeightCurve:      "identity",
		HeightMultiplier: 2,
		Seed:             42,
		NoiseScale:       1,
		NoiseKind:        "perlin",
		LayerScales:      []float64{10, 5, 1},
		LayerAmplitudes:  []float64{1, 0.5, 0.25},
	}
}

func Load() *Config {
	def := DefaultMesh()
	return &Config{
		Mesh: Mesh{
			Size:             getEnvInt("MESH_SIZE", def.Size),
			Scale:            getEnvFloat("MESH_SCALE", def.Scale),
			HeightCurve:      getEnvStr("HEIGHT_CURVE", def.HeightCurve),
			HeightMultiplier: getEnvFloat("HEIGHT_MULTIPLIER", def.HeightMultiplier),
			Seed:             getEnvInt("NOISE_SEED", def.Seed),
			NoiseScale:       getEnvFloat("NOISE_SCALE", def.NoiseScale),
			NoiseKind:        getEnvStr("NOISE_KIND", def.NoiseKind),
			Invert:           getEnvBool("INVERT_HEIGHT", def.Invert),
			LayerScales:      getEnvFloatList("LAYER_SCALES", def.LayerScales),
			LayerAmplitudes:  getEnvFloatList("LAYER_AMPLITUDES", def.LayerAmplitudes),
			OffsetX:          getEnvFloat("OFFSET_X", 0),
			OffsetY:          getEnvFloat("OFFSET_Y", 0),
			PositionX:        getEnvFloat("POSITION_X", 0),
			PositionY:        getEnvFloat("POSITION_Y", 0),
			PositionZ:        getEnvFloat("POSITION_Z", 0),
			Material:         getEnvStr("MATERIAL", ""),
			MaterialTexture:  getEnvStr("MATERIAL_TEXTURE", ""),
		},
		Output: OutputConfig{
			Format: getEnvStr("OUTPUT_FORMAT", "obj"),
		},
		Logging: LoggingConfig{
			Level: getEnvStr("LOG_LEVEL", "info"),
		},
	}
}

func getEnvStr(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(strings.TrimSpace(value), 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

// getEnvFloatList parses a comma separated list. Any malformed element discards the whole value.
func getEnvFloatList(key string, defaultValue []float64) []float64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return append([]float64(nil), defaultValue...)
	}

	parts := strings.Split(value, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return append([]float64(nil), defaultValue...)
		}
		out = append(out, f)
	}
	return out
}
