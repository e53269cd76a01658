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

import "github.com/ecodeclub/resumeverse/internal/wizard/internal/domain"

type RidReq struct {
	Rid string `json:"rid"`
}

type StepResp struct {
	Step  int `json:"step"`
	Total int `json:"total"`
}

func newStepResp(w domain.Wizard) StepResp {
	return StepResp{
		Step:  w.Step,
		Total: w.Total,
	}
}
