package scope

import (
	"context"
	"errors"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testOptions() Options {
	return Options{
		AccessKeyID:     "AKIATEST",
		SecretAccessKey: "secret",
		Region:          "us-east-1",
	}
}

func TestScope_ConfigBuiltOncePerScope(t *testing.T) {
	builds := 0
	opts := testOptions()
	opts.Extra = []func(*awsconfig.LoadOptions) error{
		func(*awsconfig.LoadOptions) error { builds++; return nil },
	}
	s := New(opts)

	cfg1, err := s.Config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "us-east-1", cfg1.Region)

	_, err = s.Config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, builds, "aws.Config deve ser construído uma única vez por scope")

	s.Reset()
	_, err = s.Config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, builds, "Reset deve forçar reconstrução lazy")
}

func TestScope_ConfigUsesBaseConfig(t *testing.T) {
	base := aws.Config{Region: "sa-east-1"}
	s := New(Options{BaseConfig: &base})

	cfg, err := s.Config(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "sa-east-1", cfg.Region)
}

func TestScope_GetOrCreate(t *testing.T) {
	s := New(testOptions())
	key := "descriptor-a"

	builds := 0
	ctor := func() (any, error) {
		builds++
		return &struct{ n int }{builds}, nil
	}

	h1, err := s.GetOrCreate(key, ctor, false)
	require.NoError(t, err)

	h2, err := s.GetOrCreate(key, ctor, false)
	require.NoError(t, err)
	assert.Same(t, h1, h2, "acesso repetido deve retornar o mesmo handle")
	assert.Equal(t, 1, builds)

	h3, err := s.GetOrCreate(key, ctor, true)
	require.NoError(t, err)
	assert.NotSame(t, h1, h3, "force deve reconstruir o handle")
	assert.Equal(t, 2, builds)

	// Depois do force, o novo handle passa a ser o cacheado.
	h4, err := s.GetOrCreate(key, ctor, false)
	require.NoError(t, err)
	assert.Same(t, h3, h4)
}

func TestScope_GetOrCreate_FailureDoesNotPopulateCache(t *testing.T) {
	s := New(testOptions())
	key := "descriptor-b"
	boom := errors.New("boom")

	_, err := s.GetOrCreate(key, func() (any, error) { return nil, boom }, false)
	assert.ErrorIs(t, err, boom)

	builds := 0
	h, err := s.GetOrCreate(key, func() (any, error) {
		builds++
		return "ok", nil
	}, false)
	require.NoError(t, err)
	assert.Equal(t, "ok", h)
	assert.Equal(t, 1, builds, "a falha anterior não pode ter deixado entrada no cache")
}

func TestScope_ResetHandle(t *testing.T) {
	s := New(testOptions())

	n := 0
	ctor := func() (any, error) { n++; return &struct{ n int }{n}, nil }

	a1, _ := s.GetOrCreate("a", ctor, false)
	b1, _ := s.GetOrCreate("b", ctor, false)

	s.ResetHandle("a")

	a2, _ := s.GetOrCreate("a", ctor, false)
	b2, _ := s.GetOrCreate("b", ctor, false)

	assert.NotSame(t, a1, a2, "entrada resetada deve ser reconstruída")
	assert.Same(t, b1, b2, "as demais entradas devem permanecer intactas")
}

func TestScope_SetOptionsResetsEverything(t *testing.T) {
	s := New(testOptions())

	n := 0
	ctor := func() (any, error) { n++; return &struct{ n int }{n}, nil }
	h1, _ := s.GetOrCreate("a", ctor, false)

	opts := testOptions()
	opts.Region = "us-west-2"
	s.SetOptions(opts)

	assert.Equal(t, "us-west-2", s.Options().Region)

	h2, _ := s.GetOrCreate("a", ctor, false)
	assert.NotSame(t, h1, h2, "nenhum handle sobrevive à substituição de opções")
}

func TestScope_OptionsDefensiveCopy(t *testing.T) {
	s := New(testOptions())

	got := s.Options()
	got.Region = "mutated"

	assert.Equal(t, "us-east-1", s.Options().Region,
		"mutação da cópia não pode alterar o estado interno")
}

func TestScope_IDsAreUnique(t *testing.T) {
	assert.NotEqual(t, New(Options{}).ID(), New(Options{}).ID())
}
