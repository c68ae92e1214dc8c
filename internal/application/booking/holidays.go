package booking

import "time"

// feriados fijos del calendario peruano, como pares (día, mes).
// Se repiten todos los años.
var fixedHolidays = [][2]int{
	{1, 1},   // Año Nuevo
	{18, 4},  // Viernes Santo
	{1, 5},   // Día del Trabajo
	{28, 7},  // Fiestas Patrias
	{29, 7},  // Fiestas Patrias
	{8, 10},  // Combate de Angamos
	{1, 11},  // Todos los Santos
	{8, 12},  // Inmaculada Concepción
	{25, 12}, // Navidad
}

// isHoliday indica si la fecha cae en feriado fijo.
func isHoliday(date time.Time) bool {
	for _, h := range fixedHolidays {
		if date.Day() == h[0] && int(date.Month()) == h[1] {
			return true
		}
	}
	return false
}
