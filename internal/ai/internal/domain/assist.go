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

package domain

// GenRequest 生成项目描述的输入
type GenRequest struct {
	Uid int64
	// 项目名
	ProjectName string
	// 自由文本的技术列表，逗号分隔也行，一行一个也行
	Technologies string
}

type GenResponse struct {
	Tokens int64
	// 生成的描述，直接预填进描述输入框
	Description string
}
