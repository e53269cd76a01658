package web

import (
	"github.com/ecodeclub/ginx"
	"github.com/ecodeclub/resumeverse/internal/preview/internal/errs"
)

var (
	systemErrorResult = ginx.Result{
		Code: errs.SystemError.Code,
		Msg:  errs.SystemError.Msg,
	}
	missingIdentityResult = ginx.Result{
		Code: errs.MissingIdentity.Code,
		Msg:  errs.MissingIdentity.Msg,
	}
	notFoundResult = ginx.Result{
		Code: errs.ResumeNotFound.Code,
		Msg:  errs.ResumeNotFound.Msg,
	}
)
