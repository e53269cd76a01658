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

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ecodeclub/resumeverse/internal/ai/internal/domain"
	"github.com/ecodeclub/resumeverse/internal/ai/internal/service/llm"
	"github.com/ecodeclub/resumeverse/internal/pkg/sanitize"
)

var ErrEmptyProjectName = errors.New("项目名不能为空")

type Service interface {
	// GenerateDescription 根据项目名和技术列表生成一段描述，
	// 用户可以改，也可以整段不要。
	GenerateDescription(ctx context.Context, req domain.GenRequest) (domain.GenResponse, error)
}

type descriptionService struct {
	hdl llm.Handler
}

func NewService(hdl llm.Handler) Service {
	return &descriptionService{hdl: hdl}
}

func (s *descriptionService) GenerateDescription(ctx context.Context, req domain.GenRequest) (domain.GenResponse, error) {
	// 进大模型之前先清洗，跟落库走同一套规则
	name := sanitize.Sanitize(req.ProjectName)
	techs := sanitize.Sanitize(req.Technologies)
	if name == "" {
		return domain.GenResponse{}, ErrEmptyProjectName
	}
	tokens, answer, err := s.hdl.Handle(ctx, s.prompt(name, techs))
	if err != nil {
		return domain.GenResponse{}, fmt.Errorf("生成项目描述失败: %w", err)
	}
	return domain.GenResponse{
		Tokens:      tokens,
		Description: strings.TrimSpace(answer),
	}, nil
}

func (s *descriptionService) prompt(name, techs string) string {
	var sb strings.Builder
	sb.WriteString("Write a two to three sentence resume description for a software project named \"")
	sb.WriteString(name)
	sb.WriteString("\".")
	if techs != "" {
		sb.WriteString(" It was built with: ")
		sb.WriteString(techs)
		sb.WriteString(".")
	}
	return sb.String()
}
