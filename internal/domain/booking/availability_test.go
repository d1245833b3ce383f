package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var testNow = time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

func TestIsSlotAvailable_PastAndMalformed(t *testing.T) {
	a := Availability{Now: testNow, ActiveBarbers: 1}

	assert.False(t, a.IsSlotAvailable("2026-03-10", "09:00", AnyBarber), "horário no passado")
	assert.False(t, a.IsSlotAvailable("2026-03-09", "15:00", AnyBarber), "dia anterior")
	assert.True(t, a.IsSlotAvailable("2026-03-10", "10:30", AnyBarber), "horário futuro")

	assert.False(t, a.IsSlotAvailable("10/03/2026", "15:00", AnyBarber), "data malformada")
	assert.False(t, a.IsSlotAvailable("2026-03-10", "3pm", AnyBarber), "hora malformada")
	assert.False(t, a.IsSlotAvailable("", "", AnyBarber))
}

func TestIsSlotAvailable_FullDayBlock(t *testing.T) {
	a := Availability{
		Now:           testNow,
		ActiveBarbers: 2,
		Blocked: []BlockedSlot{
			{Date: "2026-03-15", FullDay: true},
		},
	}

	assert.False(t, a.IsSlotAvailable("2026-03-15", "10:00", AnyBarber))
	assert.False(t, a.IsSlotAvailable("2026-03-15", "19:30", "b1"))
	assert.True(t, a.IsSlotAvailable("2026-03-16", "10:00", AnyBarber), "outro dia segue livre")
}

func TestIsSlotAvailable_EmptyTimeBlocksWholeDay(t *testing.T) {
	a := Availability{
		Now:           testNow,
		ActiveBarbers: 2,
		Blocked: []BlockedSlot{
			{Date: "2026-03-15", Time: ""},
		},
	}

	assert.False(t, a.IsSlotAvailable("2026-03-15", "10:00", "b1"))
	assert.False(t, a.IsSlotAvailable("2026-03-15", "18:00", "b2"))
}

func TestIsSlotAvailable_BarberScopedBlock(t *testing.T) {
	a := Availability{
		Now:           testNow,
		ActiveBarbers: 2,
		Blocked: []BlockedSlot{
			{Date: "2026-03-15", Time: "14:00", BarberID: "b1"},
		},
	}

	assert.False(t, a.IsSlotAvailable("2026-03-15", "14:00", "b1"), "barbeiro bloqueado")
	assert.True(t, a.IsSlotAvailable("2026-03-15", "14:00", "b2"), "outro barbeiro livre")
	assert.True(t, a.IsSlotAvailable("2026-03-15", "14:30", "b1"), "outro horário livre")

	// "qualquer barbeiro" é conservador: bloqueio de um barbeiro fecha o slot
	assert.False(t, a.IsSlotAvailable("2026-03-15", "14:00", AnyBarber))
}

func TestIsSlotAvailable_SpecificBarberBooking(t *testing.T) {
	a := Availability{
		Now:           testNow,
		ActiveBarbers: 2,
		Booked: []BookedSlot{
			{Date: "2026-03-15", Time: "14:00", BarberID: "b1"},
		},
	}

	assert.False(t, a.IsSlotAvailable("2026-03-15", "14:00", "b1"))
	assert.True(t, a.IsSlotAvailable("2026-03-15", "14:00", "b2"))
}

func TestIsSlotAvailable_AnyBarberCountsActiveBarbers(t *testing.T) {
	booked := []BookedSlot{
		{Date: "2026-03-15", Time: "14:00", BarberID: "b1"},
		{Date: "2026-03-15", Time: "14:00", BarberID: "b2"},
	}

	a := Availability{Now: testNow, ActiveBarbers: 3, Booked: booked}
	assert.True(t, a.IsSlotAvailable("2026-03-15", "14:00", AnyBarber),
		"2 ocupados de 3 barbeiros: ainda há capacidade")

	a.Booked = append(booked, BookedSlot{Date: "2026-03-15", Time: "14:00", BarberID: ""})
	assert.False(t, a.IsSlotAvailable("2026-03-15", "14:00", AnyBarber),
		"3 ocupados de 3 barbeiros: slot fecha")
}

func TestIsSlotAvailable_AnyBarberCountsNullBarberRows(t *testing.T) {
	// Agendamentos sem barbeiro definido também consomem capacidade.
	a := Availability{
		Now:           testNow,
		ActiveBarbers: 1,
		Booked: []BookedSlot{
			{Date: "2026-03-15", Time: "14:00", BarberID: ""},
		},
	}

	assert.False(t, a.IsSlotAvailable("2026-03-15", "14:00", AnyBarber))
	assert.True(t, a.IsSlotAvailable("2026-03-15", "14:30", AnyBarber))
}

func TestIsSlotAvailable_NoActiveBarbers(t *testing.T) {
	a := Availability{Now: testNow, ActiveBarbers: 0}
	assert.False(t, a.IsSlotAvailable("2026-03-15", "14:00", AnyBarber))
}
