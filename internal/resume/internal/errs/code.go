package errs

var (
	SystemError = ErrorCode{Code: 516001, Msg: "系统错误"}
	// ValidationFailed Data 里带 字段->错误信息 的映射
	ValidationFailed = ErrorCode{Code: 416001, Msg: "校验失败"}
	MissingIdentity  = ErrorCode{Code: 416002, Msg: "缺少用户或简历标识"}
	ResumeNotFound   = ErrorCode{Code: 416003, Msg: "简历不存在"}
)

type ErrorCode struct {
	Code int
	Msg  string
}
