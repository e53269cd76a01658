package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWizardSteps(t *testing.T) {
	w := NewWizard(DefaultTotalSteps)
	assert.Equal(t, 1, w.Step)

	// 第一步再往前退还是第一步
	assert.Equal(t, 1, w.Prev().Step)

	for i := 2; i <= DefaultTotalSteps; i++ {
		w = w.Next()
		assert.Equal(t, i, w.Step)
	}
	assert.True(t, w.IsFinal())
	// 最后一步 Next 不再前进
	assert.Equal(t, DefaultTotalSteps, w.Next().Step)

	assert.Equal(t, DefaultTotalSteps-1, w.Prev().Step)
}

func TestNewWizardDefaultsTotal(t *testing.T) {
	assert.Equal(t, DefaultTotalSteps, NewWizard(0).Total)
	assert.Equal(t, 6, NewWizard(6).Total)
}
