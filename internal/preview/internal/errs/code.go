package errs

var (
	SystemError     = ErrorCode{Code: 517001, Msg: "系统错误"}
	MissingIdentity = ErrorCode{Code: 417001, Msg: "缺少用户或简历标识"}
	ResumeNotFound  = ErrorCode{Code: 417002, Msg: "简历不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
