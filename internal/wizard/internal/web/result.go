package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/resumeverse/internal/wizard/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.ResumeNotFound.Code,
		Msg:  errs.ResumeNotFound.Msg,
	}
)
