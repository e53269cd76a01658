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
	"time"

	"github.com/ecodeclub/resumeverse/internal/pkg/throttle"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/domain"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/event"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/repository"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
	"github.com/lithammer/shortuuid/v4"
)

var (
	// ErrMissingIdentity 没有 uid 或简历 id，持久化操作直接中止，不重试
	ErrMissingIdentity = errors.New("缺少用户或简历标识")
	ErrResumeNotFound  = errors.New("简历不存在")
)

// AutosaveWindow 自动保存的节流窗口，同一份简历一个窗口内最多落库一次
const AutosaveWindow = 2 * time.Second

type Service interface {
	// Create 新建一份空白简历，返回生成的简历 id
	Create(ctx context.Context, uid int64, title string) (string, error)
	// Save 校验并保存。校验失败时返回 字段->错误信息，不落库。
	Save(ctx context.Context, r domain.Resume) (map[string]string, error)
	// Autosave 只做清洗不做校验，按 (uid, 简历id) 节流落库。
	// 窗口内的调用合并成窗口结束时的一次写入，以最后一次的内容为准。
	Autosave(ctx context.Context, r domain.Resume) error
	Detail(ctx context.Context, uid int64, rid string) (domain.Resume, error)
	List(ctx context.Context, uid int64) ([]domain.Resume, error)
}

type service struct {
	repo     repository.ResumeRepo
	producer event.SavedEventProducer
	saver    *throttle.Keyed[domain.Resume]
	logger   *elog.Component
}

func NewService(repo repository.ResumeRepo, producer event.SavedEventProducer) Service {
	svc := &service{
		repo:     repo,
		producer: producer,
		logger:   elog.DefaultLogger,
	}
	svc.saver = throttle.NewKeyed(svc.flush, AutosaveWindow)
	return svc
}

func (s *service) Create(ctx context.Context, uid int64, title string) (string, error) {
	if uid == 0 {
		return "", ErrMissingIdentity
	}
	r := domain.Resume{
		Uid:   uid,
		ID:    shortuuid.New(),
		Title: title,
	}.Sanitized()
	if err := s.repo.Save(ctx, r); err != nil {
		return "", err
	}
	return r.ID, nil
}

func (s *service) Save(ctx context.Context, r domain.Resume) (map[string]string, error) {
	if r.Uid == 0 || r.ID == "" {
		return nil, ErrMissingIdentity
	}
	r = r.Sanitized()
	if fieldErrs := r.Validate(); len(fieldErrs) > 0 {
		return fieldErrs, nil
	}
	if err := s.repo.Save(ctx, r); err != nil {
		return nil, err
	}
	s.produceSaved(r)
	return nil, nil
}

func (s *service) Autosave(ctx context.Context, r domain.Resume) error {
	if r.Uid == 0 || r.ID == "" {
		return ErrMissingIdentity
	}
	s.saver.Call(fmt.Sprintf("%d:%s", r.Uid, r.ID), r.Sanitized())
	return nil
}

// flush 节流窗口到期后真正落库。请求上下文早没了，这里换一个带超时的。
func (s *service) flush(r domain.Resume) {
	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()
	if err := s.repo.Save(ctx, r); err != nil {
		s.logger.Error("自动保存简历失败",
			elog.FieldErr(err),
			elog.Int64("uid", r.Uid),
			elog.String("rid", r.ID))
		return
	}
	s.produceSaved(r)
}

func (s *service) Detail(ctx context.Context, uid int64, rid string) (domain.Resume, error) {
	if uid == 0 || rid == "" {
		return domain.Resume{}, ErrMissingIdentity
	}
	res, err := s.repo.Find(ctx, uid, rid)
	if errors.Is(err, dao.ErrRecordNotFound) {
		return domain.Resume{}, ErrResumeNotFound
	}
	return res, err
}

func (s *service) List(ctx context.Context, uid int64) ([]domain.Resume, error) {
	if uid == 0 {
		return nil, ErrMissingIdentity
	}
	return s.repo.List(ctx, uid)
}

func (s *service) produceSaved(r domain.Resume) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := s.producer.Produce(ctx, event.NewResumeSavedEvent(r)); err != nil {
		s.logger.Error("发送简历保存事件失败", elog.FieldErr(err))
	}
}
