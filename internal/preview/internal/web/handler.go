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

	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/resumeverse/internal/preview/internal/service"
	"github.com/ecodeclub/resumeverse/internal/resume"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/elog"
)

type Handler struct {
	svc       service.Service
	resumeSvc resume.Service
	logger    *elog.Component
}

func NewHandler(svc service.Service, resumeSvc resume.Service) *Handler {
	return &Handler{
		svc:       svc,
		resumeSvc: resumeSvc,
		logger:    elog.DefaultLogger,
	}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/preview/detail", ginx.BS[PreviewReq](h.Detail))
}

func (h *Handler) Detail(ctx *ginx.Context, req PreviewReq, sess session.Session) (ginx.Result, error) {
	r, err := h.resumeSvc.Detail(ctx, sess.Claims().Uid, req.Rid)
	switch {
	case errors.Is(err, resume.ErrMissingIdentity):
		return missingIdentityResult, nil
	case errors.Is(err, resume.ErrResumeNotFound):
		return notFoundResult, nil
	case err != nil:
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: newDocumentView(h.svc.Render(r)),
	}, nil
}
