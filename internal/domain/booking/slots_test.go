package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeSlots(t *testing.T) {
	slots := TimeSlots("09:00", "11:00")
	assert.Equal(t, []string{"09:00", "09:30", "10:00", "10:30"}, slots)
}

func TestTimeSlots_DefaultsOnBadInput(t *testing.T) {
	slots := TimeSlots("abc", "xyz")
	// 09:00 até 20:00 = 11 horas, dois slots por hora
	assert.Len(t, slots, 22)
	assert.Equal(t, "09:00", slots[0])
	assert.Equal(t, "19:30", slots[len(slots)-1])
}

func TestTimeSlots_EmptyWhenClosed(t *testing.T) {
	assert.Empty(t, TimeSlots("20:00", "09:00"))
}
