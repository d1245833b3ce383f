package timezone

import "time"

// A barbearia opera em um fuso só.
const DefaultTimezone = "America/Sao_Paulo"

func Location() *time.Location {
	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func Now() time.Time {
	return time.Now().In(Location())
}

// Today devolve a data corrente no formato usado nas tabelas de agenda.
func Today() string {
	return Now().Format("2006-01-02")
}
