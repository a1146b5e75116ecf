package booking

import "github.com/PedroGomesFR/myPlanning/internal/models"

type Stats struct {
	Total        int     `json:"total"`
	Pending      int     `json:"pending"`
	Confirmed    int     `json:"confirmed"`
	Completed    int     `json:"completed"`
	Cancelled    int     `json:"cancelled"`
	TotalRevenue float64 `json:"totalRevenue"`
}

// ComputeStats agrega as reservas de um profissional. A receita conta
// apenas reservas concluídas, sobre o preço copiado na criação.
func ComputeStats(bookings []models.Booking) Stats {
	stats := Stats{Total: len(bookings)}

	for _, b := range bookings {
		switch Status(b.Status) {
		case StatusPending:
			stats.Pending++
		case StatusConfirmed:
			stats.Confirmed++
		case StatusCompleted:
			stats.Completed++
			stats.TotalRevenue += b.ServicePrice
		case StatusCancelled:
			stats.Cancelled++
		}
	}

	return stats
}
