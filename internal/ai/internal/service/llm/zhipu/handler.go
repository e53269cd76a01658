// Copyright 2023 ecodeclub
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package zhipu

import (
	"context"

	"github.com/yankeguo/zhipu"
)

const model = "glm-4"

const systemPrompt = "You write concise, achievement-oriented resume bullet points. " +
	"Answer with the description text only, no preamble."

// Handler 如果后续有不同的实现，就提供不同的实现
type Handler struct {
	client *zhipu.Client
}

func NewHandler(apikey string) (*Handler, error) {
	client, err := zhipu.NewClient(zhipu.WithAPIKey(apikey))
	if err != nil {
		return nil, err
	}
	return &Handler{
		client: client,
	}, nil
}

func (h *Handler) Name() string {
	return "zhipu"
}

func (h *Handler) Handle(ctx context.Context, prompt string) (int64, string, error) {
	chatReq := h.client.ChatCompletion(model).
		AddMessage(zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleSystem,
			Content: systemPrompt,
		}).
		AddMessage(zhipu.ChatCompletionMessage{
			Role:    zhipu.RoleUser,
			Content: prompt,
		})
	completion, err := chatReq.Do(ctx)
	if err != nil {
		return 0, "", err
	}
	var answer string
	if len(completion.Choices) > 0 {
		answer = completion.Choices[0].Message.Content
	}
	return completion.Usage.TotalTokens, answer, nil
}
