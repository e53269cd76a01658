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
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/resumeverse/internal/wizard/internal/domain"
)

// WizardRepo 进度只存 Redis。丢了也不要紧，用户从第一步重新走。
type WizardRepo interface {
	Get(ctx context.Context, uid int64, rid string) (domain.Wizard, error)
	Save(ctx context.Context, uid int64, rid string, w domain.Wizard) error
	// Reset 清掉进度，下次读取回到第一步
	Reset(ctx context.Context, uid int64, rid string) error
}

const expiration = time.Hour * 24

type wizardRepo struct {
	ec ecache.Cache
}

func NewWizardRepo(ec ecache.Cache) WizardRepo {
	return &wizardRepo{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "wizard:",
		},
	}
}

func (r *wizardRepo) Get(ctx context.Context, uid int64, rid string) (domain.Wizard, error) {
	val := r.ec.Get(ctx, r.key(uid, rid))
	if val.KeyNotFound() {
		return domain.NewWizard(domain.DefaultTotalSteps), nil
	}
	if val.Err != nil {
		return domain.Wizard{}, val.Err
	}
	step, err := val.AsInt64()
	if err != nil {
		return domain.Wizard{}, err
	}
	w := domain.NewWizard(domain.DefaultTotalSteps)
	if int(step) > 1 {
		w.Step = int(step)
	}
	if w.Step > w.Total {
		w.Step = w.Total
	}
	return w, nil
}

func (r *wizardRepo) Save(ctx context.Context, uid int64, rid string, w domain.Wizard) error {
	return r.ec.Set(ctx, r.key(uid, rid), int64(w.Step), expiration)
}

func (r *wizardRepo) Reset(ctx context.Context, uid int64, rid string) error {
	_, err := r.ec.Delete(ctx, r.key(uid, rid))
	return err
}

func (r *wizardRepo) key(uid int64, rid string) string {
	return fmt.Sprintf("%d:%s", uid, rid)
}
