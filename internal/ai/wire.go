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

//go:build wireinject

package ai

import (
	"github.com/ecodeclub/resumeverse/internal/ai/internal/service"
	"github.com/ecodeclub/resumeverse/internal/ai/internal/service/llm"
	"github.com/ecodeclub/resumeverse/internal/ai/internal/service/llm/zhipu"
	"github.com/ecodeclub/resumeverse/internal/ai/internal/web"
	"github.com/google/wire"
)

func InitModule(apikey string) (*Module, error) {
	wire.Build(
		zhipu.NewHandler,
		wire.Bind(new(llm.Handler), new(*zhipu.Handler)),
		service.NewService,
		web.NewHandler,
		wire.Struct(new(Module), "*"),
	)
	return new(Module), nil
}
