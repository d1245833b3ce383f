package booking

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeSlots gera a grade de meia em meia hora entre a abertura e o
// fechamento. Só a hora cheia dos parâmetros é considerada, como na grade
// exibida aos clientes.
func TimeSlots(openingHour, closingHour string) []string {
	openH := hourOf(openingHour, 9)
	closeH := hourOf(closingHour, 20)

	var slots []string
	for h := openH; h < closeH; h++ {
		slots = append(slots, fmt.Sprintf("%02d:00", h))
		slots = append(slots, fmt.Sprintf("%02d:30", h))
	}
	return slots
}

func hourOf(hm string, def int) int {
	parts := strings.SplitN(hm, ":", 2)
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return def
	}
	return h
}
