package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/domain"
)

// ResumeCache 缓存整份草稿，保存之后失效。
type ResumeCache interface {
	Get(ctx context.Context, uid int64, rid string) (domain.Resume, error)
	Set(ctx context.Context, r domain.Resume) error
	Del(ctx context.Context, uid int64, rid string) error
}

const expiration = time.Minute * 30

type resumeCache struct {
	ec ecache.Cache
}

func NewResumeCache(ec ecache.Cache) ResumeCache {
	return &resumeCache{
		ec: &ecache.NamespaceCache{
			C:         ec,
			Namespace: "resume:",
		},
	}
}

func (c *resumeCache) Get(ctx context.Context, uid int64, rid string) (domain.Resume, error) {
	val := c.ec.Get(ctx, c.key(uid, rid))
	if val.Err != nil {
		return domain.Resume{}, val.Err
	}
	data, err := val.String()
	if err != nil {
		return domain.Resume{}, err
	}
	var res domain.Resume
	err = json.Unmarshal([]byte(data), &res)
	return res, err
}

func (c *resumeCache) Set(ctx context.Context, r domain.Resume) error {
	data, err := json.Marshal(r)
	if err != nil {
		return err
	}
	return c.ec.Set(ctx, c.key(r.Uid, r.ID), string(data), expiration)
}

func (c *resumeCache) Del(ctx context.Context, uid int64, rid string) error {
	_, err := c.ec.Delete(ctx, c.key(uid, rid))
	return err
}

func (c *resumeCache) key(uid int64, rid string) string {
	return fmt.Sprintf("%d:%s", uid, rid)
}
