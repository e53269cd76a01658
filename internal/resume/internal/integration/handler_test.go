//go:build e2e

package integration

import (
	"net/http"
	"testing"

	"github.com/ecodeclub/ekit/iox"
	"github.com/ecodeclub/ginx/session"
	"github.com/ecodeclub/resumeverse/internal/resume"
	"github.com/ecodeclub/resumeverse/internal/resume/internal/web"
	"github.com/ecodeclub/resumeverse/internal/test"
	testioc "github.com/ecodeclub/resumeverse/internal/test/ioc"
	"github.com/ego-component/egorm"
	"github.com/gin-gonic/gin"
	"github.com/gotomicro/ego/core/econf"
	"github.com/gotomicro/ego/server/egin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const uid = 2061

type HandlerTestSuite struct {
	suite.Suite
	server *egin.Component
	db     *egorm.Component
}

func (s *HandlerTestSuite) SetupSuite() {
	s.db = testioc.InitDB()
	m, err := resume.InitModule(s.db, testioc.InitCache(), testioc.InitMQ())
	require.NoError(s.T(), err)

	econf.Set("server", map[string]any{"contextTimeout": "1s"})
	server := egin.Load("server").Build()
	server.Use(func(ctx *gin.Context) {
		ctx.Set("_session", session.NewMemorySession(session.Claims{
			Uid: uid,
		}))
	})
	m.Hdl.PrivateRoutes(server.Engine)
	s.server = server
}

func (s *HandlerTestSuite) TearDownTest() {
	err := s.db.Exec("TRUNCATE TABLE `resumes`").Error
	require.NoError(s.T(), err)
}

// 建草稿、填姓名、保存，再按同一对 (uid, rid) 读回来
func (s *HandlerTestSuite) TestSaveThenDetail() {
	t := s.T()

	req, err := http.NewRequest(http.MethodPost,
		"/resume/create", iox.NewJSONReader(web.CreateReq{Title: "后端简历"}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[string]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)
	rid := recorder.MustScan().Data
	require.NotEmpty(t, rid)

	req, err = http.NewRequest(http.MethodPost,
		"/resume/save", iox.NewJSONReader(web.SaveReq{
			Resume: web.Resume{
				ID:        rid,
				Title:     "后端简历",
				FirstName: "Ada",
				LastName:  "Lovelace",
				Email:     "ada@example.com",
				Education: []web.Education{
					{InstituteName: "University of London", Degree: "BSc", Duration: "2019-2023"},
				},
				Skills: []string{"Go", "MySQL"},
			},
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	saveRecorder := test.NewJSONResponseRecorder[string]()
	s.server.ServeHTTP(saveRecorder, req)
	require.Equal(t, 200, saveRecorder.Code)
	assert.Equal(t, rid, saveRecorder.MustScan().Data)

	req, err = http.NewRequest(http.MethodPost,
		"/resume/detail", iox.NewJSONReader(web.RidReq{Rid: rid}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	detailRecorder := test.NewJSONResponseRecorder[web.Resume]()
	s.server.ServeHTTP(detailRecorder, req)
	require.Equal(t, 200, detailRecorder.Code)

	got := detailRecorder.MustScan().Data
	assert.Equal(t, "Ada", got.FirstName)
	assert.Equal(t, "Lovelace", got.LastName)
	assert.Equal(t, "ada@example.com", got.Email)
	require.Len(t, got.Education, 1)
	assert.Equal(t, "University of London", got.Education[0].InstituteName)
	assert.Equal(t, []string{"Go", "MySQL"}, got.Skills)
}

// 校验失败：返回 字段->错误信息，不落库
func (s *HandlerTestSuite) TestSaveValidationFailure() {
	t := s.T()

	req, err := http.NewRequest(http.MethodPost,
		"/resume/save", iox.NewJSONReader(web.SaveReq{
			Resume: web.Resume{
				ID:    "not-persisted",
				Email: "not-an-email",
			},
		}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	recorder := test.NewJSONResponseRecorder[map[string]string]()
	s.server.ServeHTTP(recorder, req)
	require.Equal(t, 200, recorder.Code)

	res := recorder.MustScan()
	assert.NotZero(t, res.Code)
	assert.Contains(t, res.Data, "firstName")
	assert.Contains(t, res.Data, "email")

	req, err = http.NewRequest(http.MethodPost,
		"/resume/detail", iox.NewJSONReader(web.RidReq{Rid: "not-persisted"}))
	req.Header.Set("content-type", "application/json")
	require.NoError(t, err)
	detailRecorder := test.NewJSONResponseRecorder[web.Resume]()
	s.server.ServeHTTP(detailRecorder, req)
	assert.NotZero(t, detailRecorder.MustScan().Code)
}

func TestHandler(t *testing.T) {
	suite.Run(t, new(HandlerTestSuite))
}
