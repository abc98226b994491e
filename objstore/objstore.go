// Copyright 2025 Raywall Malheiros de Souza
// Licensed under the Mozilla Public License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//	https://www.mozilla.org/en-US/MPL/2.0/
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package objstore é o handle de alto nível ("resource") do S3: buckets
// como objetos, com leitura e escrita de conteúdo em []byte.
package objstore

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// ErrNotFound – erro padrão quando o objeto não existe
var ErrNotFound = errors.New("objstore: object not found")

// Client abstrai o subconjunto do client S3 que o resource usa.
type Client interface {
	GetObject(ctx context.Context, params *s3.GetObjectInput, optFns ...func(*s3.Options)) (*s3.GetObjectOutput, error)
	PutObject(ctx context.Context, params *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
	DeleteObject(ctx context.Context, params *s3.DeleteObjectInput, optFns ...func(*s3.Options)) (*s3.DeleteObjectOutput, error)
	ListObjectsV2(ctx context.Context, params *s3.ListObjectsV2Input, optFns ...func(*s3.Options)) (*s3.ListObjectsV2Output, error)
}

// Resource é o handle resource-kind do S3.
type Resource struct {
	client Client
}

// NewResource cria o resource sobre um client existente.
func NewResource(client Client) *Resource {
	return &Resource{client: client}
}

// Client expõe o client subjacente.
func (r *Resource) Client() Client {
	return r.client
}

// Bucket retorna o objeto de acesso ao bucket informado.
func (r *Resource) Bucket(name string) *Bucket {
	return &Bucket{client: r.client, name: name}
}

// Bucket dá acesso orientado a objetos a um bucket do S3.
type Bucket struct {
	client Client
	name   string
}

// Name retorna o nome do bucket.
func (b *Bucket) Name() string { return b.name }

// Get lê o conteúdo do objeto. Retorna ErrNotFound para chaves inexistentes.
func (b *Bucket) Get(ctx context.Context, key string) ([]byte, error) {
	res, err := b.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
	})
	if err != nil {
		var noKey *types.NoSuchKey
		if errors.As(err, &noKey) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("objstore: get failed: %w", err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("objstore: read body failed: %w", err)
	}
	return data, nil
}

// Put grava o conteúdo no objeto, com content-type opcional.
func (b *Bucket) Put(ctx context.Context, key string, data []byte, contentType string) error {
	input := &s3.PutObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
		Body:   bytes.NewReader(data),
	}
	if contentType != "" {
		input.ContentType = aws.String(contentType)
	}

	if _, err := b.client.PutObject(ctx, input); err != nil {
		return fmt.Errorf("objstore: put failed: %w", err)
	}
	return nil
}

// Delete remove o objeto. Idempotente: chaves inexistentes não geram erro.
func (b *Bucket) Delete(ctx context.Context, key string) error {
	_, err := b.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(b.name),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("objstore: delete failed: %w", err)
	}
	return nil
}

// List retorna as chaves do bucket com o prefixo dado (uma página).
func (b *Bucket) List(ctx context.Context, prefix string) ([]string, error) {
	input := &s3.ListObjectsV2Input{
		Bucket: aws.String(b.name),
	}
	if prefix != "" {
		input.Prefix = aws.String(prefix)
	}

	res, err := b.client.ListObjectsV2(ctx, input)
	if err != nil {
		return nil, fmt.Errorf("objstore: list failed: %w", err)
	}

	keys := make([]string, 0, len(res.Contents))
	for _, obj := range res.Contents {
		keys = append(keys, aws.ToString(obj.Key))
	}
	return keys, nil
}
