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

package web

import (
	"errors"

	"github.com/ecodeclub/ekit/slice"
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/domain"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/errs"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/service"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc    service.Service
	logger *elog.Component
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{
		svc:    svc,
		logger: elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/resume/create", ginx.BS[CreateReq](h.Create))
	server.POST("/resume/save", ginx.BS[SaveReq](h.Save))
	server.POST("/resume/autosave", ginx.BS[SaveReq](h.Autosave))
	server.POST("/resume/detail", ginx.BS[RidReq](h.Detail))
	server.POST("/resume/list", ginx.S(h.List))
	server.POST("/resume/validate", ginx.BS[SaveReq](h.Validate))
}

func (h *Handler) Create(ctx *ginx.Context, req CreateReq, sess session.Session) (ginx.Result, error) {
	rid, err := h.svc.Create(ctx, sess.Claims().Uid, req.Title)
	if errors.Is(err, service.ErrMissingIdentity) {
		return missingIdentityResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: rid,
	}, nil
}

// Save 校验通过才落库。校验失败把 字段->错误信息 放在 Data 里返回，
// 只拦截提交，不拦截用户继续编辑。
func (h *Handler) Save(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	fieldErrs, err := h.svc.Save(ctx, req.Resume.toDomain(sess.Claims().Uid))
	if errors.Is(err, service.ErrMissingIdentity) {
		return missingIdentityResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	if len(fieldErrs) > 0 {
		return ginx.Result{
			Code: errs.ValidationFailed.Code,
			Msg:  errs.ValidationFailed.Msg,
			Data: fieldErrs,
		}, nil
	}
	return ginx.Result{
		Data: req.Resume.ID,
	}, nil
}

// Autosave 立刻返回，落库由节流器在窗口结束时完成
func (h *Handler) Autosave(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Autosave(ctx, req.Resume.toDomain(sess.Claims().Uid))
	if errors.Is(err, service.ErrMissingIdentity) {
		return missingIdentityResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}

func (h *Handler) Detail(ctx *ginx.Context, req RidReq, sess session.Session) (ginx.Result, error) {
	res, err := h.svc.Detail(ctx, sess.Claims().Uid, req.Rid)
	switch {
	case errors.Is(err, service.ErrMissingIdentity):
		return missingIdentityResult, nil
	case errors.Is(err, service.ErrResumeNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newResume(res),
	}, nil
}

func (h *Handler) List(ctx *ginx.Context, sess session.Session) (ginx.Result, error) {
	resumes, err := h.svc.List(ctx, sess.Claims().Uid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: ListResp{
			Resumes: slice.Map(resumes, func(idx int, src domain.Resume) Resume {
				return newResume(src)
			}),
		},
	}, nil
}

// Validate 只校验不保存，给前端逐步提示用
func (h *Handler) Validate(ctx *ginx.Context, req SaveReq, sess session.Session) (ginx.Result, error) {
	fieldErrs := req.Resume.toDomain(sess.Claims().Uid).Sanitized().Validate()
	return ginx.Result{
		Data: fieldErrs,
	}, nil
}
