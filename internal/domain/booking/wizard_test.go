package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWizard_HappyPath(t *testing.T) {
	s := NewWizard()
	assert.Equal(t, StepClientInfo, s.Step)
	assert.False(t, s.CanProceed())

	s.Name = "João Silva"
	s.Phone = "(61) 99203-0064"
	s, err := s.Next()
	require.NoError(t, err)
	assert.Equal(t, StepBarber, s.Step)

	s.BarberID = AnyBarber
	s, err = s.Next()
	require.NoError(t, err)

	s = s.ToggleService("svc-1")
	s, err = s.Next()
	require.NoError(t, err)

	s.Date = "2026-03-15"
	s.Time = "14:00"
	assert.True(t, s.Complete())

	_, err = s.Next()
	assert.Error(t, err, "não há passo depois do último")
}

func TestWizard_IncompleteStepBlocksNext(t *testing.T) {
	s := NewWizard()
	s.Name = "J" // curto demais
	s.Phone = "61992030064"

	_, err := s.Next()
	assert.Error(t, err)
}

func TestWizard_TransitionsAreImmutable(t *testing.T) {
	s := NewWizard()
	s.Name = "João Silva"
	s.Phone = "61992030064"

	next, err := s.Next()
	require.NoError(t, err)

	assert.Equal(t, StepClientInfo, s.Step, "estado original não muda")
	assert.Equal(t, StepBarber, next.Step)
}

func TestWizard_ToggleService(t *testing.T) {
	s := NewWizard()

	s = s.ToggleService("a")
	s = s.ToggleService("b")
	assert.Equal(t, []string{"a", "b"}, s.ServiceIDs)

	s = s.ToggleService("a")
	assert.Equal(t, []string{"b"}, s.ServiceIDs)
}

func TestWizard_BackAndReset(t *testing.T) {
	s := WizardState{Step: StepServices}

	s = s.Back()
	assert.Equal(t, StepBarber, s.Step)

	s = s.Back().Back()
	assert.Equal(t, StepClientInfo, s.Step, "não desce abaixo do primeiro passo")

	s.Name = "João"
	assert.Equal(t, NewWizard(), s.Reset())
}
