package ioc

import (
	"net/http"
	"strings"

	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/resumeverse/internal/ai"
	"github.com/ecodeclub/resumeverse/internal/export"
	"github.com/ecodeclub/resumeverse/internal/preview"
	"github.com/ecodeclub/resumeverse/internal/resume"
	"github.com/ecodeclub/resumeverse/internal/wizard"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/server/egin"
)

func initGinxServer(sp session.Provider,
	resumeHdl *resume.Handler,
	wizardHdl *wizard.Handler,
	previewHdl *preview.Handler,
	exportHdl *export.Handler,
	aiHdl *ai.Handler,
) *egin.Component {
	session.SetDefaultProvider(sp)
	res := egin.Load("web").Build()
	res.Use(cors.New(cors.Config{
		ExposeHeaders:    []string{"X-Refresh-Token", "X-Access-Token", "Content-Disposition"},
		AllowCredentials: true,
		AllowHeaders:     []string{"Authorization", "Content-Type"},
		AllowOriginFunc: func(origin string) bool {
			if strings.HasPrefix(origin, "http://localhost") {
				return true
			}
			// 只允许我的域名过来的
			return strings.Contains(origin, "resumeverse.dev")
		},
	}))
	res.GET("/hello", func(ctx *gin.Context) {
		ctx.String(http.StatusOK, "hello, world!")
	})
	// 登录校验
	res.Use(session.CheckLoginMiddleware())
	resumeHdl.PrivateRoutes(res.Engine)
	wizardHdl.PrivateRoutes(res.Engine)
	previewHdl.PrivateRoutes(res.Engine)
	exportHdl.PrivateRoutes(res.Engine)
	aiHdl.PrivateRoutes(res.Engine)
	return res
}
