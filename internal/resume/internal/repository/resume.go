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

package repository

import (
	"context"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/domain"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/repository/cache"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/repository/dao"
	"github.com/gotomicro/ego/core/elog"
)

type ResumeRepo interface {
	// Save 整体合并写入一份草稿
	Save(ctx context.Context, r domain.Resume) error
	Find(ctx context.Context, uid int64, rid string) (domain.Resume, error)
	List(ctx context.Context, uid int64) ([]domain.Resume, error)
}

type resumeRepo struct {
	rdao   dao.ResumeDAO
	cache  cache.ResumeCache
	logger *elog.Component
}

func NewResumeRepo(rdao dao.ResumeDAO, c cache.ResumeCache) ResumeRepo {
	return &resumeRepo{
		rdao:   rdao,
		cache:  c,
		logger: elog.DefaultLogger,
	}
}

func (r *resumeRepo) Save(ctx context.Context, re domain.Resume) error {
	err := r.rdao.Upsert(ctx, r.toEntity(re))
	if err != nil {
		return err
	}
	// 缓存失效失败只记日志，下次读穿透就好
	if err := r.cache.Del(ctx, re.Uid, re.ID); err != nil {
		r.logger.Error("删除简历缓存失败", elog.FieldErr(err))
	}
	return nil
}

func (r *resumeRepo) Find(ctx context.Context, uid int64, rid string) (domain.Resume, error) {
	res, err := r.cache.Get(ctx, uid, rid)
	if err == nil {
		return res, nil
	}
	entity, err := r.rdao.Find(ctx, uid, rid)
	if err != nil {
		return domain.Resume{}, err
	}
	res = r.toDomain(entity)
	if err := r.cache.Set(ctx, res); err != nil {
		r.logger.Error("回写简历缓存失败", elog.FieldErr(err))
	}
	return res, nil
}

func (r *resumeRepo) List(ctx context.Context, uid int64) ([]domain.Resume, error) {
	entities, err := r.rdao.FindByUid(ctx, uid)
	if err != nil {
		return nil, err
	}
	return slice.Map(entities, func(idx int, src dao.Resume) domain.Resume {
		return r.toDomain(src)
	}), nil
}

func (r *resumeRepo) toEntity(re domain.Resume) dao.Resume {
	return dao.Resume{
		Uid:       re.Uid,
		Rid:       re.ID,
		Title:     re.Title,
		FirstName: re.FirstName,
		LastName:  re.LastName,
		Address:   re.Address,
		Email:     re.Email,
		PhoneNo:   re.PhoneNo,
		Linkedin:  re.Linkedin,
		Github:    re.Github,
		JobTitle:  re.JobTitle,
		Education: sqlx.JsonColumn[[]domain.EducationEntry]{
			Valid: true,
			Val:   re.Education,
		},
		WorkExperience: sqlx.JsonColumn[[]domain.WorkEntry]{
			Valid: true,
			Val:   re.WorkExperience,
		},
		Skills: sqlx.JsonColumn[[]string]{
			Valid: true,
			Val:   re.Skills,
		},
		Projects: sqlx.JsonColumn[[]domain.ProjectEntry]{
			Valid: true,
			Val:   re.Projects,
		},
	}
}

func (r *resumeRepo) toDomain(entity dao.Resume) domain.Resume {
	return domain.Resume{
		Uid:            entity.Uid,
		ID:             entity.Rid,
		Title:          entity.Title,
		FirstName:      entity.FirstName,
		LastName:       entity.LastName,
		Address:        entity.Address,
		Email:          entity.Email,
		PhoneNo:        entity.PhoneNo,
		Linkedin:       entity.Linkedin,
		Github:         entity.Github,
		JobTitle:       entity.JobTitle,
		Education:      entity.Education.Val,
		WorkExperience: entity.WorkExperience.Val,
		Skills:         entity.Skills.Val,
		Projects:       entity.Projects.Val,
		Utime:          entity.Utime,
		Ctime:          entity.Ctime,
	}
}
