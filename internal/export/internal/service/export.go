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

package service

import (
	"context"
	"fmt"
	"time"

	"github.com/ecodeclub/resumeverse/internal/export/internal/event"
	"github.com/ecodeclub/resumeverse/internal/pkg/pdf"
	"github.com/ecodeclub/resumeverse/internal/preview"
	"github.com/ecodeclub/resumeverse/internal/resume"
	"github.com/gotomicro/ego/core/elog"
)

// Document 可下载的导出产物
type Document struct {
	Filename    string
	ContentType string
	Data        []byte
}

type Service interface {
	// ExportPDF 加载草稿、投影成版式 HTML、交给 Chrome 打印。
	// A4 纵向，排不下自动分页。
	ExportPDF(ctx context.Context, uid int64, rid string) (Document, error)
	// ExportDocx 基于占位符模板生成 Word 文档
	ExportDocx(ctx context.Context, uid int64, rid string) (Document, error)
}

type service struct {
	resumeSvc  resume.Service
	previewSvc preview.Service
	converter  pdf.Converter
	docx       DocxRenderer
	producer   event.ExportedEventProducer
	logger     *elog.Component
}

func NewService(resumeSvc resume.Service,
	previewSvc preview.Service,
	converter pdf.Converter,
	docx DocxRenderer,
	producer event.ExportedEventProducer) Service {
	return &service{
		resumeSvc:  resumeSvc,
		previewSvc: previewSvc,
		converter:  converter,
		docx:       docx,
		producer:   producer,
		logger:     elog.DefaultLogger,
	}
}

func (s *service) ExportPDF(ctx context.Context, uid int64, rid string) (Document, error) {
	r, err := s.resumeSvc.Detail(ctx, uid, rid)
	if err != nil {
		return Document{}, err
	}
	view := s.previewSvc.Render(r)
	html, err := s.previewSvc.RenderHTML(view)
	if err != nil {
		return Document{}, fmt.Errorf("渲染版式失败: %w", err)
	}
	// RenderHTML 给出的是完整文档，标题不再二次包装
	data, err := s.converter.ConvertHTMLToPDF(ctx, html, pdf.PaperA4)
	if err != nil {
		return Document{}, err
	}
	s.produceExported(r, "pdf", len(data))
	return Document{
		Filename:    s.filename(r, "pdf"),
		ContentType: "application/pdf",
		Data:        data,
	}, nil
}

func (s *service) ExportDocx(ctx context.Context, uid int64, rid string) (Document, error) {
	r, err := s.resumeSvc.Detail(ctx, uid, rid)
	if err != nil {
		return Document{}, err
	}
	data, err := s.docx.Render(s.previewSvc.Render(r))
	if err != nil {
		return Document{}, err
	}
	s.produceExported(r, "docx", len(data))
	return Document{
		Filename:    s.filename(r, "docx"),
		ContentType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Data:        data,
	}, nil
}

func (s *service) filename(r resume.Resume, ext string) string {
	name := r.Title
	if name == "" {
		name = "resume"
	}
	return fmt.Sprintf("%s.%s", name, ext)
}

func (s *service) produceExported(r resume.Resume, format string, size int) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	evt := event.ResumeExportedEvent{
		Uid:    r.Uid,
		Rid:    r.ID,
		Format: format,
		Size:   size,
	}
	if err := s.producer.Produce(ctx, evt); err != nil {
		s.logger.Error("发送导出事件失败", elog.FieldErr(err))
	}
}
