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

package resume

import (
	"sync"

	"github.com/ecodeclub/resumeverse/internal/resume/internal/domain"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/repository/dao"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/service"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/web"
	"github.com/ego-component/egorm"
)

// Handler 暴露出去给 ioc 使用
type Handler = web.Handler

// Service 其他模块（预览、导出、向导）通过它拿草稿
type Service = service.Service

type Resume = domain.Resume
type EducationEntry = domain.EducationEntry
type WorkEntry = domain.WorkEntry
type ProjectEntry = domain.ProjectEntry

var (
	ErrMissingIdentity = service.ErrMissingIdentity
	ErrResumeNotFound  = service.ErrResumeNotFound
)

type Module struct {
	Hdl *Handler
	Svc Service
}

var daoOnce = sync.Once{}

func InitTableOnce(db *egorm.Component) {
	daoOnce.Do(func() {
		if err := dao.InitTables(db); err != nil {
			panic(err)
		}
	})
}

func InitResumeDAO(db *egorm.Component) dao.ResumeDAO {
	InitTableOnce(db)
	return dao.NewResumeDAO(db)
}
