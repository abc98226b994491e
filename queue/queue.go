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

// Package queue é o handle de alto nível ("resource") do SQS: filas como
// objetos, com envio, recebimento e remoção de mensagens.
package queue

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
)

// Client abstrai o subconjunto do client SQS que o resource usa.
type Client interface {
	SendMessage(ctx context.Context, params *sqs.SendMessageInput, optFns ...func(*sqs.Options)) (*sqs.SendMessageOutput, error)
	ReceiveMessage(ctx context.Context, params *sqs.ReceiveMessageInput, optFns ...func(*sqs.Options)) (*sqs.ReceiveMessageOutput, error)
	DeleteMessage(ctx context.Context, params *sqs.DeleteMessageInput, optFns ...func(*sqs.Options)) (*sqs.DeleteMessageOutput, error)
	GetQueueUrl(ctx context.Context, params *sqs.GetQueueUrlInput, optFns ...func(*sqs.Options)) (*sqs.GetQueueUrlOutput, error)
}

// Message é uma mensagem recebida da fila, com o handle necessário
// para confirmá-la depois do processamento.
type Message struct {
	ID            string
	Body          string
	ReceiptHandle string
}

// Resource é o handle resource-kind do SQS.
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

// Queue retorna o objeto de acesso à fila pela URL.
func (r *Resource) Queue(url string) *Queue {
	return &Queue{client: r.client, url: url}
}

// QueueByName resolve a URL da fila pelo nome e retorna o objeto de acesso.
func (r *Resource) QueueByName(ctx context.Context, name string) (*Queue, error) {
	res, err := r.client.GetQueueUrl(ctx, &sqs.GetQueueUrlInput{
		QueueName: aws.String(name),
	})
	if err != nil {
		return nil, fmt.Errorf("queue: resolve url for %q failed: %w", name, err)
	}
	return &Queue{client: r.client, url: aws.ToString(res.QueueUrl)}, nil
}

// Queue dá acesso orientado a objetos a uma fila do SQS.
type Queue struct {
	client Client
	url    string
}

// URL retorna a URL da fila.
func (q *Queue) URL() string { return q.url }

// Send envia uma mensagem e retorna o ID atribuído pelo SQS.
func (q *Queue) Send(ctx context.Context, body string) (string, error) {
	res, err := q.client.SendMessage(ctx, &sqs.SendMessageInput{
		QueueUrl:    aws.String(q.url),
		MessageBody: aws.String(body),
	})
	if err != nil {
		return "", fmt.Errorf("queue: send failed: %w", err)
	}
	return aws.ToString(res.MessageId), nil
}

// Receive busca até max mensagens, aguardando wait em long polling.
func (q *Queue) Receive(ctx context.Context, max int32, wait time.Duration) ([]Message, error) {
	res, err := q.client.ReceiveMessage(ctx, &sqs.ReceiveMessageInput{
		QueueUrl:            aws.String(q.url),
		MaxNumberOfMessages: max,
		WaitTimeSeconds:     int32(wait / time.Second),
	})
	if err != nil {
		return nil, fmt.Errorf("queue: receive failed: %w", err)
	}

	msgs := make([]Message, 0, len(res.Messages))
	for _, m := range res.Messages {
		msgs = append(msgs, Message{
			ID:            aws.ToString(m.MessageId),
			Body:          aws.ToString(m.Body),
			ReceiptHandle: aws.ToString(m.ReceiptHandle),
		})
	}
	return msgs, nil
}

// Delete confirma o processamento da mensagem, removendo-a da fila.
func (q *Queue) Delete(ctx context.Context, msg Message) error {
	_, err := q.client.DeleteMessage(ctx, &sqs.DeleteMessageInput{
		QueueUrl:      aws.String(q.url),
		ReceiptHandle: aws.String(msg.ReceiptHandle),
	})
	if err != nil {
		return fmt.Errorf("queue: delete failed: %w", err)
	}
	return nil
}
