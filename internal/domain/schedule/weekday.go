package schedule

import "time"

// Os dias armazenados em WorkingDays usam os nomes franceses exibidos
// pelo front; internamente tudo é time.Weekday.
var dayNames = map[time.Weekday]string{
	time.Monday:    "Lundi",
	time.Tuesday:   "Mardi",
	time.Wednesday: "Mercredi",
	time.Thursday:  "Jeudi",
	time.Friday:    "Vendredi",
	time.Saturday:  "Samedi",
	time.Sunday:    "Dimanche",
}

var dayByName = func() map[string]time.Weekday {
	m := make(map[string]time.Weekday, len(dayNames))
	for wd, name := range dayNames {
		m[name] = wd
	}
	return m
}()

func DayName(d time.Weekday) string {
	return dayNames[d]
}

func IsValidDayName(name string) bool {
	_, ok := dayByName[name]
	return ok
}
