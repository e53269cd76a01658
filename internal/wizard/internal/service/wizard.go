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

	"github.com/ecodeclub/resumeverse/internal/export"
	"github.com/ecodeclub/resumeverse/internal/resume"
	"github.com/ecodeclub/resumeverse/internal/wizard/internal/domain"
	"github.com/ecodeclub/resumeverse/internal/wizard/internal/repository"
	"github.com/gotomicro/ego/core/elog"
)

// ErrExportFailed 最后一步导出失败，进度不动，可以重试
var ErrExportFailed = errors.New("导出文档失败")

// NextOutcome Exported 为 true 时 Document 是最后一步生成的文档
type NextOutcome struct {
	Wizard   domain.Wizard
	Exported bool
	Document export.Document
}

type Service interface {
	Current(ctx context.Context, uid int64, rid string) (domain.Wizard, error)
	// Next 在最后一步会先导出文档，导出成功才清掉进度。
	// 导出失败停留在最后一步，用户可以重试。
	Next(ctx context.Context, uid int64, rid string) (NextOutcome, error)
	Prev(ctx context.Context, uid int64, rid string) (domain.Wizard, error)
	Reset(ctx context.Context, uid int64, rid string) error
}

type service struct {
	repo      repository.WizardRepo
	exportSvc export.Service
	logger    *elog.Component
}

func NewService(repo repository.WizardRepo, exportSvc export.Service) Service {
	return &service{
		repo:      repo,
		exportSvc: exportSvc,
		logger:    elog.DefaultLogger,
	}
}

func (s *service) Current(ctx context.Context, uid int64, rid string) (domain.Wizard, error) {
	return s.repo.Get(ctx, uid, rid)
}

func (s *service) Next(ctx context.Context, uid int64, rid string) (NextOutcome, error) {
	w, err := s.repo.Get(ctx, uid, rid)
	if err != nil {
		return NextOutcome{}, err
	}
	if !w.IsFinal() {
		next := w.Next()
		if err = s.repo.Save(ctx, uid, rid, next); err != nil {
			return NextOutcome{}, fmt.Errorf("保存进度失败: %w", err)
		}
		return NextOutcome{Wizard: next}, nil
	}
	// 最后一步：先导出，再变更状态。导出失败就停在原地。
	doc, err := s.exportSvc.ExportPDF(ctx, uid, rid)
	if err != nil {
		if errors.Is(err, resume.ErrResumeNotFound) {
			return NextOutcome{Wizard: w}, err
		}
		return NextOutcome{Wizard: w}, fmt.Errorf("%w: %w", ErrExportFailed, err)
	}
	if rerr := s.repo.Reset(ctx, uid, rid); rerr != nil {
		// 文档已经到手，进度清理失败只记日志
		s.logger.Error("重置向导进度失败",
			elog.Int64("uid", uid),
			elog.String("rid", rid),
			elog.FieldErr(rerr))
	}
	return NextOutcome{
		Wizard:   domain.NewWizard(w.Total),
		Exported: true,
		Document: doc,
	}, nil
}

func (s *service) Prev(ctx context.Context, uid int64, rid string) (domain.Wizard, error) {
	w, err := s.repo.Get(ctx, uid, rid)
	if err != nil {
		return domain.Wizard{}, err
	}
	prev := w.Prev()
	if prev.Step != w.Step {
		if err = s.repo.Save(ctx, uid, rid, prev); err != nil {
			return domain.Wizard{}, fmt.Errorf("保存进度失败: %w", err)
		}
	}
	return prev, nil
}

func (s *service) Reset(ctx context.Context, uid int64, rid string) error {
	return s.repo.Reset(ctx, uid, rid)
}
