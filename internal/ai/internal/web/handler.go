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
	"github.com/ecodeclub/resumeverse/internal/ai/internal/domain"
	"github.com/ecodeclub/resumeverse/internal/ai/internal/service"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc service.Service
}

func NewHandler(svc service.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) PrivateRoutes(server *gin.Engine) {
	server.POST("/ai/project-description", ginx.BS[GenerateDescriptionReq](h.GenerateDescription))
}

func (h *Handler) GenerateDescription(ctx *ginx.Context, req GenerateDescriptionReq, sess session.Session) (ginx.Result, error) {
	resp, err := h.svc.GenerateDescription(ctx, domain.GenRequest{
		Uid:          sess.Claims().Uid,
		ProjectName:  req.ProjectName,
		Technologies: req.Technologies,
	})
	if errors.Is(err, service.ErrEmptyProjectName) {
		return invalidInputResult, nil
	}
	if err != nil {
		return systemErrorResult, err
	}
	return ginx.Result{
		Data: GenerateDescriptionResp{
			Description: resp.Description,
		},
	}, nil
}
