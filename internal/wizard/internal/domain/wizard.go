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

// DefaultTotalSteps 个人信息、教育经历、工作经历、技能与项目、预览确认
const DefaultTotalSteps = 5

// Wizard 分步填写的进度。值语义，步骤变更返回新值。
type Wizard struct {
	Step  int
	Total int
}

func NewWizard(total int) Wizard {
	if total <= 0 {
		total = DefaultTotalSteps
	}
	return Wizard{Step: 1, Total: total}
}

func (w Wizard) IsFinal() bool {
	return w.Step >= w.Total
}

// Next 最后一步不再前进，完成动作由上层触发
func (w Wizard) Next() Wizard {
	if w.IsFinal() {
		return w
	}
	w.Step++
	return w
}

// Prev 下限是第一步
func (w Wizard) Prev() Wizard {
	if w.Step > 1 {
		w.Step--
	}
	return w
}
