package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/PedroGomesFR/myPlanning/internal/models"
)

func TestComputeStats(t *testing.T) {
	bookings := []models.Booking{
		{Status: "pending", ServicePrice: 30},
		{Status: "confirmed", ServicePrice: 45},
		{Status: "completed", ServicePrice: 50},
		{Status: "completed", ServicePrice: 70.5},
		{Status: "cancelled", ServicePrice: 90},
	}

	stats := ComputeStats(bookings)

	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 1, stats.Pending)
	assert.Equal(t, 1, stats.Confirmed)
	assert.Equal(t, 2, stats.Completed)
	assert.Equal(t, 1, stats.Cancelled)

	// Só reservas concluídas contam na receita.
	assert.Equal(t, 120.5, stats.TotalRevenue)

	assert.Equal(t, stats.Total, stats.Pending+stats.Confirmed+stats.Completed+stats.Cancelled)
}

func TestComputeStatsEmpty(t *testing.T) {
	stats := ComputeStats(nil)

	assert.Equal(t, Stats{}, stats)
}
