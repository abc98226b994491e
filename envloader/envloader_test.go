package envloader

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type basicConfig struct {
	Region  string        `env:"TEST_AWS_REGION" envDefault:"us-east-1"`
	Port    int           `env:"TEST_PORT" envDefault:"8080"`
	Debug   bool          `env:"TEST_DEBUG"`
	Ratio   float64       `env:"TEST_RATIO" envDefault:"0.5"`
	Timeout time.Duration `env:"TEST_TIMEOUT" envDefault:"30s"`
	Tags    []string      `env:"TEST_TAGS"`
	Ignored string        `env:"-"`
	NoTag   string
}

type nestedConfig struct {
	Name  string `env:"TEST_NESTED_NAME"`
	Inner struct {
		Level string `env:"TEST_NESTED_LEVEL" envDefault:"info"`
	}
	Ptr *basicConfig
}

func TestLoad_Defaults(t *testing.T) {
	var cfg basicConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "us-east-1", cfg.Region)
	assert.Equal(t, 8080, cfg.Port)
	assert.False(t, cfg.Debug)
	assert.Equal(t, 0.5, cfg.Ratio)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("TEST_AWS_REGION", "sa-east-1")
	t.Setenv("TEST_PORT", "9000")
	t.Setenv("TEST_DEBUG", "true")
	t.Setenv("TEST_TIMEOUT", "1500ms")
	t.Setenv("TEST_TAGS", "a, b,c")

	var cfg basicConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "sa-east-1", cfg.Region)
	assert.Equal(t, 9000, cfg.Port)
	assert.True(t, cfg.Debug)
	assert.Equal(t, 1500*time.Millisecond, cfg.Timeout)
	assert.Equal(t, []string{"a", "b", "c"}, cfg.Tags)
}

func TestLoad_NestedStructs(t *testing.T) {
	t.Setenv("TEST_NESTED_NAME", "outer")
	t.Setenv("TEST_AWS_REGION", "eu-west-1")

	var cfg nestedConfig
	require.NoError(t, Load(&cfg))

	assert.Equal(t, "outer", cfg.Name)
	assert.Equal(t, "info", cfg.Inner.Level)
	require.NotNil(t, cfg.Ptr)
	assert.Equal(t, "eu-west-1", cfg.Ptr.Region)
}

func TestLoad_InvalidTarget(t *testing.T) {
	var notAPointer basicConfig
	err := Load(notAPointer)

	var invalid *InvalidConfigError
	assert.ErrorAs(t, err, &invalid)
}

func TestLoad_ConversionError(t *testing.T) {
	t.Setenv("TEST_PORT", "not-a-number")

	var cfg basicConfig
	err := Load(&cfg)

	var fieldErr *FieldError
	assert.ErrorAs(t, err, &fieldErr)
	assert.Equal(t, "Port", fieldErr.FieldName)
	assert.Equal(t, "TEST_PORT", fieldErr.EnvVar)
}

func TestLoad_UnsupportedType(t *testing.T) {
	type badConfig struct {
		Data map[string]string `env:"TEST_DATA"`
	}
	t.Setenv("TEST_DATA", "x")

	var cfg badConfig
	err := Load(&cfg)

	var fieldErr *FieldError
	assert.ErrorAs(t, err, &fieldErr)

	var unsupported *UnsupportedTypeError
	assert.ErrorAs(t, fieldErr.Err, &unsupported)
}

func TestMustLoad_PanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustLoad("not a struct")
	})
}
