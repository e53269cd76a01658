//go:build wireinject

package ioc

import (
	"github.com/ecodeclub/resumeverse/internal/ai"
	"github.com/ecodeclub/resumeverse/internal/export"
	"github.com/ecodeclub/resumeverse/internal/preview"
	"github.com/ecodeclub/resumeverse/internal/resume"
	"github.com/ecodeclub/resumeverse/internal/wizard"
	"github.com/google/wire"
)

var BaseSet = wire.NewSet(InitDB, InitCache, InitRedis, InitMQ)

func InitApp() (*App, error) {
	wire.Build(wire.Struct(new(App), "*"),
		BaseSet,
		resume.InitModule,
		preview.InitModule,
		InitExportModule,
		wizard.InitModule,
		InitAIModule,
		wire.FieldsOf(new(*resume.Module), "Hdl"),
		wire.FieldsOf(new(*preview.Module), "Hdl"),
		wire.FieldsOf(new(*export.Module), "Hdl"),
		wire.FieldsOf(new(*wizard.Module), "Hdl"),
		wire.FieldsOf(new(*ai.Module), "Hdl"),
		InitSession,
		initGinxServer)
	return new(App), nil
}
