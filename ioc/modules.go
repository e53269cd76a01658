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

package ioc

import (
	"github.com/ecodeclub/mq-api"
	"github.com/ecodeclub/resumeverse/internal/ai"
	"github.com/ecodeclub/resumeverse/internal/export"
	"github.com/ecodeclub/resumeverse/internal/pkg/pdf"
	"github.com/ecodeclub/resumeverse/internal/preview"
	"github.com/ecodeclub/resumeverse/internal/resume"
	"github.com/gotomicro/ego/core/econf"
)

// InitExportModule 导出配置在这里读，避免把裸字符串塞进依赖图
func InitExportModule(resumeModule *resume.Module,
	previewModule *preview.Module,
	q mq.MQ) *export.Module {
	type Config struct {
		ChromeWebSocketURL string `yaml:"chromeWebSocketURL"`
		DocxTemplate       string `yaml:"docxTemplate"`
	}
	var cfg Config
	err := econf.UnmarshalKey("export", &cfg)
	if err != nil {
		panic(err)
	}
	converter := pdf.NewChromeDPConverter(cfg.ChromeWebSocketURL)
	m, err := export.InitModule(resumeModule, previewModule, converter, cfg.DocxTemplate, q)
	if err != nil {
		panic(err)
	}
	return m
}

func InitAIModule() *ai.Module {
	m, err := ai.InitModule(econf.GetString("zhipu.apikey"))
	if err != nil {
		panic(err)
	}
	return m
}
