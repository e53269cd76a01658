package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ecodeclub/resumeverse/internal/export"
	"github.com/ecodeclub/resumeverse/internal/wizard/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	steps map[string]int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{steps: make(map[string]int)}
}

func (f *fakeRepo) key(uid int64, rid string) string {
	return fmt.Sprintf("%d:%s", uid, rid)
}

func (f *fakeRepo) Get(ctx context.Context, uid int64, rid string) (domain.Wizard, error) {
	w := domain.NewWizard(domain.DefaultTotalSteps)
	if step, ok := f.steps[f.key(uid, rid)]; ok {
		w.Step = step
	}
	return w, nil
}

func (f *fakeRepo) Save(ctx context.Context, uid int64, rid string, w domain.Wizard) error {
	f.steps[f.key(uid, rid)] = w.Step
	return nil
}

func (f *fakeRepo) Reset(ctx context.Context, uid int64, rid string) error {
	delete(f.steps, f.key(uid, rid))
	return nil
}

type fakeExporter struct {
	calls int
	err   error
}

func (f *fakeExporter) ExportPDF(ctx context.Context, uid int64, rid string) (export.Document, error) {
	f.calls++
	if f.err != nil {
		return export.Document{}, f.err
	}
	return export.Document{
		Filename:    "resume.pdf",
		ContentType: "application/pdf",
		Data:        []byte("%PDF-fake"),
	}, nil
}

func (f *fakeExporter) ExportDocx(ctx context.Context, uid int64, rid string) (export.Document, error) {
	return export.Document{}, errors.New("不应该被调用")
}

func TestNextAdvances(t *testing.T) {
	repo := newFakeRepo()
	exporter := &fakeExporter{}
	svc := NewService(repo, exporter)

	outcome, err := svc.Next(context.Background(), 1, "r1")
	require.NoError(t, err)
	assert.Equal(t, 2, outcome.Wizard.Step)
	assert.False(t, outcome.Exported)
	// 中间步骤不触发导出
	assert.Equal(t, 0, exporter.calls)

	w, err := svc.Current(context.Background(), 1, "r1")
	require.NoError(t, err)
	assert.Equal(t, 2, w.Step)
}

func TestPrevFloorsAtFirstStep(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, &fakeExporter{})

	w, err := svc.Prev(context.Background(), 1, "r1")
	require.NoError(t, err)
	assert.Equal(t, 1, w.Step)
}

// 最后一步 Next：恰好导出一次，且导出发生在任何状态变更之前
func TestFinalStepExportsExactlyOnce(t *testing.T) {
	repo := newFakeRepo()
	repo.steps["1:r1"] = domain.DefaultTotalSteps
	exporter := &fakeExporter{}
	svc := NewService(repo, exporter)

	outcome, err := svc.Next(context.Background(), 1, "r1")
	require.NoError(t, err)
	assert.Equal(t, 1, exporter.calls)
	assert.True(t, outcome.Exported)
	assert.Equal(t, "application/pdf", outcome.Document.ContentType)
	// 导出成功后进度归位
	assert.Equal(t, 1, outcome.Wizard.Step)

	w, err := svc.Current(context.Background(), 1, "r1")
	require.NoError(t, err)
	assert.Equal(t, 1, w.Step)
}

// 导出失败：不前进、进度不动，可以重试
func TestFinalStepExportFailureBlocksAdvance(t *testing.T) {
	repo := newFakeRepo()
	repo.steps["1:r1"] = domain.DefaultTotalSteps
	exporter := &fakeExporter{err: errors.New("chrome不可用")}
	svc := NewService(repo, exporter)

	outcome, err := svc.Next(context.Background(), 1, "r1")
	assert.ErrorIs(t, err, ErrExportFailed)
	assert.False(t, outcome.Exported)
	assert.Equal(t, domain.DefaultTotalSteps, outcome.Wizard.Step)
	assert.Equal(t, 1, exporter.calls)

	w, err := svc.Current(context.Background(), 1, "r1")
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultTotalSteps, w.Step)

	// 恢复之后重试成功
	exporter.err = nil
	outcome, err = svc.Next(context.Background(), 1, "r1")
	require.NoError(t, err)
	assert.True(t, outcome.Exported)
	assert.Equal(t, 2, exporter.calls)
}

func TestReset(t *testing.T) {
	repo := newFakeRepo()
	repo.steps["1:r1"] = 3
	svc := NewService(repo, &fakeExporter{})

	require.NoError(t, svc.Reset(context.Background(), 1, "r1"))
	w, err := svc.Current(context.Background(), 1, "r1")
	require.NoError(t, err)
	assert.Equal(t, 1, w.Step)
}
