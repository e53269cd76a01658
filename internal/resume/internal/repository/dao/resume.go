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

package dao

import (
	"context"
	"time"

	"github.com/ecodeclub/ekit/sqlx"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/domain"
	"github.com/ego-component/egorm"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrRecordNotFound = gorm.ErrRecordNotFound

type ResumeDAO interface {
	// Upsert 按 (uid, rid) 合并写入，不存在就创建。
	// 只覆盖这次带了内容的列，空字段不会清掉已有数据。
	// 后写覆盖先写，不带乐观锁，这是已接受的限制。
	Upsert(ctx context.Context, r Resume) error
	Find(ctx context.Context, uid int64, rid string) (Resume, error)
	FindByUid(ctx context.Context, uid int64) ([]Resume, error)
}

type Resume struct {
	ID  int64  `gorm:"primaryKey,autoIncrement"`
	Uid int64  `gorm:"uniqueIndex:uid_rid;not null"`
	Rid string `gorm:"uniqueIndex:uid_rid;type:varchar(64);not null"`

	Title     string `gorm:"type:varchar(256)"`
	FirstName string `gorm:"type:varchar(128)"`
	LastName  string `gorm:"type:varchar(128)"`
	Address   string `gorm:"type:varchar(512)"`
	Email     string `gorm:"type:varchar(256)"`
	PhoneNo   string `gorm:"type:varchar(32)"`
	Linkedin  string `gorm:"type:varchar(512)"`
	Github    string `gorm:"type:varchar(512)"`
	JobTitle  string `gorm:"type:varchar(256)"`

	Education      sqlx.JsonColumn[[]domain.EducationEntry] `gorm:"type:text"`
	WorkExperience sqlx.JsonColumn[[]domain.WorkEntry]      `gorm:"type:text"`
	Skills         sqlx.JsonColumn[[]string]                `gorm:"type:text"`
	Projects       sqlx.JsonColumn[[]domain.ProjectEntry]   `gorm:"type:text"`

	Utime int64
	Ctime int64
}

func (Resume) TableName() string {
	return "resumes"
}

func InitTables(db *egorm.Component) error {
	return db.AutoMigrate(&Resume{})
}

type resumeDAO struct {
	db *egorm.Component
}

func NewResumeDAO(db *egorm.Component) ResumeDAO {
	return &resumeDAO{
		db: db,
	}
}

func (d *resumeDAO) Upsert(ctx context.Context, r Resume) error {
	now := time.Now().UnixMilli()
	r.Utime = now
	r.Ctime = now
	return d.db.WithContext(ctx).Model(&Resume{}).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "uid"}, {Name: "rid"}},
			DoUpdates: clause.AssignmentColumns(upsertColumns(r)),
		}).Create(&r).Error
}

// upsertColumns 客户端是分步提交的，零值当作没填，
// 部分保存不能把别的步骤已经存好的内容冲掉
func upsertColumns(r Resume) []string {
	cols := []string{"utime"}
	texts := []struct {
		name string
		val  string
	}{
		{"title", r.Title},
		{"first_name", r.FirstName},
		{"last_name", r.LastName},
		{"address", r.Address},
		{"email", r.Email},
		{"phone_no", r.PhoneNo},
		{"linkedin", r.Linkedin},
		{"github", r.Github},
		{"job_title", r.JobTitle},
	}
	for _, c := range texts {
		if c.val != "" {
			cols = append(cols, c.name)
		}
	}
	if len(r.Education.Val) > 0 {
		cols = append(cols, "education")
	}
	if len(r.WorkExperience.Val) > 0 {
		cols = append(cols, "work_experience")
	}
	if len(r.Skills.Val) > 0 {
		cols = append(cols, "skills")
	}
	if len(r.Projects.Val) > 0 {
		cols = append(cols, "projects")
	}
	return cols
}

func (d *resumeDAO) Find(ctx context.Context, uid int64, rid string) (Resume, error) {
	var r Resume
	err := d.db.WithContext(ctx).
		Where("uid = ? AND rid = ?", uid, rid).First(&r).Error
	return r, err
}

func (d *resumeDAO) FindByUid(ctx context.Context, uid int64) ([]Resume, error) {
	var res []Resume
	err := d.db.WithContext(ctx).
		Where("uid = ?", uid).Order("utime DESC").Find(&res).Error
	return res, err
}
