package service

import (
	"context"
	"sync"
	"testing"

	"github.com/ecodeclub/resumeverse/internal/export/internal/event"
	"github.com/ecodeclub/resumeverse/internal/pkg/pdf"
	"github.com/ecodeclub/resumeverse/internal/preview"
	"github.com/ecodeclub/resumeverse/internal/resume"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResumeSvc struct {
	resume.Service
	r   resume.Resume
	err error
}

func (f *fakeResumeSvc) Detail(ctx context.Context, uid int64, rid string) (resume.Resume, error) {
	return f.r, f.err
}

type fakeConverter struct {
	html string
}

func (f *fakeConverter) ConvertHTMLToPDF(ctx context.Context, html string, opts ...pdf.Option) ([]byte, error) {
	f.html = html
	return []byte("%PDF-fake"), nil
}

type fakeDocx struct{}

func (f *fakeDocx) Render(view preview.DocumentView) ([]byte, error) {
	return []byte("PK-fake"), nil
}

type fakeProducer struct {
	mu   sync.Mutex
	evts []event.ResumeExportedEvent
}

func (f *fakeProducer) Produce(ctx context.Context, evt event.ResumeExportedEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.evts = append(f.evts, evt)
	return nil
}

func TestExportPDF(t *testing.T) {
	converter := &fakeConverter{}
	producer := &fakeProducer{}
	svc := NewService(&fakeResumeSvc{
		r: resume.Resume{
			Uid:       1,
			ID:        "r1",
			Title:     "后端简历",
			FirstName: "Ada",
			LastName:  "Lovelace",
		},
	}, preview.InitModule(&resume.Module{}).Svc, converter, &fakeDocx{}, producer)

	doc, err := svc.ExportPDF(context.Background(), 1, "r1")
	require.NoError(t, err)
	assert.Equal(t, "后端简历.pdf", doc.Filename)
	assert.Equal(t, "application/pdf", doc.ContentType)
	assert.NotEmpty(t, doc.Data)
	// 转换用的就是预览渲染出来的版式
	assert.Contains(t, converter.html, "Ada Lovelace")

	require.Len(t, producer.evts, 1)
	assert.Equal(t, "pdf", producer.evts[0].Format)
	assert.Equal(t, "r1", producer.evts[0].Rid)
}

func TestExportDocx(t *testing.T) {
	producer := &fakeProducer{}
	svc := NewService(&fakeResumeSvc{
		r: resume.Resume{Uid: 1, ID: "r1"},
	}, preview.InitModule(&resume.Module{}).Svc, &fakeConverter{}, &fakeDocx{}, producer)

	doc, err := svc.ExportDocx(context.Background(), 1, "r1")
	require.NoError(t, err)
	// 没有标题就用默认文件名
	assert.Equal(t, "resume.docx", doc.Filename)
	require.Len(t, producer.evts, 1)
	assert.Equal(t, "docx", producer.evts[0].Format)
}

func TestExportNotFound(t *testing.T) {
	svc := NewService(&fakeResumeSvc{err: resume.ErrResumeNotFound},
		preview.InitModule(&resume.Module{}).Svc, &fakeConverter{}, &fakeDocx{}, &fakeProducer{})
	_, err := svc.ExportPDF(context.Background(), 1, "missing")
	assert.ErrorIs(t, err, resume.ErrResumeNotFound)
}
