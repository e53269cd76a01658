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
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/resumeverse/internal/export/internal/service"
	"github.com/ecodeclub/resumeverse/internal/resume"
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
	g := server.Group("/export")
	// 响应是二进制附件，不走统一的 Result 包装
	g.POST("/pdf", h.ExportPDF)
	g.POST("/docx", h.ExportDocx)
}

func (h *Handler) ExportPDF(ctx *gin.Context) {
	h.export(ctx, h.svc.ExportPDF)
}

func (h *Handler) ExportDocx(ctx *gin.Context) {
	h.export(ctx, h.svc.ExportDocx)
}

func (h *Handler) export(ctx *gin.Context,
	fn func(ctx context.Context, uid int64, rid string) (service.Document, error)) {
	gtx := &ginx.Context{Context: ctx}
	sess, err := session.Get(gtx)
	if err != nil {
		h.logger.Error("获取 Session 失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusUnauthorized)
		return
	}
	uid := sess.Claims().Uid

	var req ExportReq
	if err := ctx.Bind(&req); err != nil {
		h.logger.Error("绑定参数失败", elog.FieldErr(err))
		ctx.AbortWithStatus(http.StatusBadRequest)
		return
	}

	doc, err := fn(ctx.Request.Context(), uid, req.Rid)
	// 出错时退回 JSON 的统一返回结构，客户端按 Content-Type 区分
	if errors.Is(err, resume.ErrResumeNotFound) {
		ctx.JSON(http.StatusOK, notFoundResult)
		return
	}
	if err != nil {
		h.logger.Error("导出简历失败",
			elog.Int64("uid", uid),
			elog.String("rid", req.Rid),
			elog.FieldErr(err))
		ctx.JSON(http.StatusOK, systemErrorResult)
		return
	}

	ctx.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, doc.Filename))
	ctx.Data(http.StatusOK, doc.ContentType, doc.Data)
}
