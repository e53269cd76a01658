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
	"fmt"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/resumeverse/internal/resume"
	"github.com/ecodeclub/resumeverse/internal/wizard/internal/errs"
	"github.com/ecodeclub/resumeverse/internal/wizard/internal/service"
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
	// next 在最后一步会直接下发导出的文档，所以不走统一包装
	server.POST("/wizard/next", h.Next)
	server.POST("/wizard/prev", ginx.BS[RidReq](h.Prev))
	server.POST("/wizard/current", ginx.BS[RidReq](h.Current))
	server.POST("/wizard/reset", ginx.BS[RidReq](h.Reset))
}

func (h *Handler) Next(ctx *gin.Context) {
	gtx := &ginx.Context{Context: ctx}
	sess, err := session.Get(gtx)
	if err != nil {
		h.logger.Error("获取 Session 失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	uid := sess.Claims().Uid

	var req RidReq
	if err := ctx.Bind(&req); err != nil {
		h.logger.Error("绑定参数失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusBadRequest)
		return
	}

	outcome, err := h.svc.Next(ctx.Request.Context(), uid, req.Rid)
	switch {
	case errors.Is(err, resume.ErrResumeNotFound):
		ctx.JSON(http.StatusOK, notFoundResult)
		return
	case errors.Is(err, service.ErrExportFailed):
		h.logger.Error("最后一步导出失败",
			elog.Int64("uid", uid),
			elog.String("rid", req.Rid),
			elog.FieldErr(err))
		ctx.JSON(http.StatusOK, ginx.Result{
			Code: errs.ExportFailed.Code,
			Msg:  errs.ExportFailed.Msg,
			Data: newStepResp(outcome.Wizard),
		})
		return
	case err != nil:
		h.logger.Error("向导前进失败",
			elog.Int64("uid", uid),
			elog.String("rid", req.Rid),
			elog.FieldErr(err))
		ctx.JSON(http.StatusOK, systemErrorResult)
		return
	}
	if outcome.Exported {
		doc := outcome.Document
		ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
		ctx.Data(http.StatusOK, doc.ContentType, doc.Data)
		return
	}
	ctx.JSON(http.StatusOK, ginx.Result{
		Data: newStepResp(outcome.Wizard),
	})
}

func (h *Handler) Prev(ctx *ginx.Context, req RidReq, sess session.Session) (ginx.Result, error) {
	w, err := h.svc.Prev(ctx, sess.Claims().Uid, req.Rid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newStepResp(w),
	}, nil
}

func (h *Handler) Current(ctx *ginx.Context, req RidReq, sess session.Session) (ginx.Result, error) {
	w, err := h.svc.Current(ctx, sess.Claims().Uid, req.Rid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newStepResp(w),
	}, nil
}

func (h *Handler) Reset(ctx *ginx.Context, req RidReq, sess session.Session) (ginx.Result, error) {
	err := h.svc.Reset(ctx, sess.Claims().Uid, req.Rid)
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Msg: "OK",
	}, nil
}
