package event

import (
	"encoding/json"

	"github.com/ecodeclub/resumeverse/internal/resume/internal/domain"
)

// ResumeSavedEvent 保存成功之后发出去，下游做搜索同步之类的事情。
type ResumeSavedEvent struct {
	Biz   string `json:"biz"`
	Uid   int64  `json:"uid"`
	BizID string `json:"bizID"`
	Data  string `json:"data"`
}

func NewResumeSavedEvent(r domain.Resume) ResumeSavedEvent {
	data, _ := json.Marshal(r)
	return ResumeSavedEvent{
		Biz:   "resume",
		Uid:   r.Uid,
		BizID: r.ID,
		Data:  string(data),
	}
}
