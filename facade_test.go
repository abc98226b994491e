package lazyaws

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/ssm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raywall/lazyaws-toolkit/dyndb"
	"github.com/raywall/lazyaws-toolkit/registry"
	"github.com/raywall/lazyaws-toolkit/scope"
)

// pushTestScope ativa um scope com aws.Config pré-construído, para que os
// testes não dependam do ambiente (nem de credential chain).
func pushTestScope(t *testing.T, opts scope.Options) *scope.Scope {
	t.Helper()
	if opts.BaseConfig == nil {
		opts.BaseConfig = &aws.Config{Region: "us-east-1"}
	}
	s := scope.New(opts)
	restore := scope.Push(s)
	t.Cleanup(restore)
	return s
}

// pin fixa um endpoint no descriptor, habilitando o cache normal do
// handle, e desfaz no fim do teste (o registry default é compartilhado).
func pin(t *testing.T, f *Facade, name string) {
	t.Helper()
	d, err := f.Descriptor(name)
	require.NoError(t, err)
	d.SetOptions(registry.Options{EndpointURL: "http://localhost:4566"})
	t.Cleanup(func() { d.SetOptions(registry.Options{}) })
}

func TestFacadeRepeatedAccess(t *testing.T) {
	ctx := context.Background()

	t.Run("endpoint fixo cacheia o handle", func(t *testing.T) {
		pushTestScope(t, scope.Options{})
		pin(t, Clients, "dynamodb")

		h1, err := Clients.Resolve(ctx, "dynamodb")
		require.NoError(t, err)
		h2, err := Clients.Resolve(ctx, "dynamodb")
		require.NoError(t, err)
		assert.Same(t, h1, h2)
	})

	t.Run("sem endpoint todo acesso reconstrói", func(t *testing.T) {
		pushTestScope(t, scope.Options{})

		h1, err := Clients.Resolve(ctx, "sqs")
		require.NoError(t, err)
		h2, err := Clients.Resolve(ctx, "sqs")
		require.NoError(t, err)
		assert.NotSame(t, h1, h2)
	})
}

func TestFacadeScopeOverride(t *testing.T) {
	ctx := context.Background()

	pushTestScope(t, scope.Options{})
	pin(t, Clients, "ssm")

	h1, err := SSM(ctx)
	require.NoError(t, err)

	// Override: escopo S2 com outra região por cima de S1.
	override := scope.New(scope.Options{BaseConfig: &aws.Config{Region: "us-west-2"}})
	restore := scope.Push(override)

	h2, err := SSM(ctx)
	require.NoError(t, err)
	assert.NotSame(t, h1, h2)

	restore()

	// S1 nunca foi resetado: o handle anterior volta por referência.
	h3, err := SSM(ctx)
	require.NoError(t, err)
	assert.Same(t, h1, h3)
}

func TestFacadeCrossKindIsolation(t *testing.T) {
	ctx := context.Background()

	pushTestScope(t, scope.Options{})
	pin(t, Clients, "dynamodb")
	pin(t, Resources, "dynamodb")

	client, err := Clients.Resolve(ctx, "dynamodb")
	require.NoError(t, err)
	resource, err := Resources.Resolve(ctx, "dynamodb")
	require.NoError(t, err)

	assert.NotSame(t, client, resource)
	assert.IsType(t, &dynamodb.Client{}, client)
	assert.IsType(t, &dyndb.Resource{}, resource)
}

func TestFacadeNameValidation(t *testing.T) {
	ctx := context.Background()
	pushTestScope(t, scope.Options{})

	t.Run("nome vazio", func(t *testing.T) {
		_, err := Clients.Resolve(ctx, "")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `invalid client name ""`)
	})

	t.Run("prefixo reservado", func(t *testing.T) {
		_, err := Clients.Descriptor("_private")
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"_private"`)
	})

	t.Run("nome desconhecido só falha no uso", func(t *testing.T) {
		// A referência ao descriptor nunca falha; o erro vem na construção.
		d, err := Clients.Descriptor("servico-inexistente")
		require.NoError(t, err)

		_, err = d.Get(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), `"servico-inexistente"`)
	})
}

func TestFacadeNormalizationEquivalence(t *testing.T) {
	a, err := Clients.Descriptor("foo_bar")
	require.NoError(t, err)
	b, err := Clients.Descriptor("foo-bar")
	require.NoError(t, err)
	c, err := Clients.Descriptor("FOO_BAR")
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Same(t, a, c)
}

func TestTypedAccessorsShareDescriptor(t *testing.T) {
	ctx := context.Background()

	pushTestScope(t, scope.Options{})
	pin(t, Clients, "ssm")

	typed, err := SSM(ctx)
	require.NoError(t, err)

	byName, err := Clients.Load(ctx, "ssm")
	require.NoError(t, err)
	assert.Same(t, typed, byName.(*ssm.Client))
}

func TestOptionsOverridesReachBuilder(t *testing.T) {
	ctx := context.Background()

	pushTestScope(t, scope.Options{})

	d, err := Clients.Descriptor("s3")
	require.NoError(t, err)
	d.SetOptions(registry.Options{
		Region:      "sa-east-1",
		EndpointURL: "http://localhost:9000",
	})
	t.Cleanup(func() { d.SetOptions(registry.Options{}) })

	// A materialização em si já valida: endpoint custom liga path-style e
	// região override substitui a do scope sem erro de construção.
	h, err := Clients.Resolve(ctx, "s3")
	require.NoError(t, err)
	assert.NotNil(t, h)
}
