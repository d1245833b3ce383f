package booking

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/goldblade/barbershop-api/internal/models"
)

func catalogForTest() ([]models.Service, []string) {
	ids := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	catalog := []models.Service{
		{ID: ids[0], Name: "Corte", Price: decimal.RequireFromString("35.00")},
		{ID: ids[1], Name: "Barba", Price: decimal.RequireFromString("15.00")},
		{ID: ids[2], Name: "Corte + Barba", Price: decimal.RequireFromString("45.00")},
	}
	strIDs := make([]string, len(ids))
	for i, id := range ids {
		strIDs[i] = id.String()
	}
	return catalog, strIDs
}

func TestTotalPrice_SumsSelected(t *testing.T) {
	catalog, ids := catalogForTest()

	total := TotalPrice(catalog, []string{ids[0], ids[1]})
	assert.True(t, total.Equal(decimal.RequireFromString("50.00")), "35 + 15 = 50, got %s", total)

	total = TotalPrice(catalog, ids)
	assert.True(t, total.Equal(decimal.RequireFromString("95.00")), "35 + 15 + 45 = 95, got %s", total)
}

func TestTotalPrice_OrderIndependent(t *testing.T) {
	catalog, ids := catalogForTest()

	forward := TotalPrice(catalog, []string{ids[0], ids[1], ids[2]})
	reversed := TotalPrice(catalog, []string{ids[2], ids[1], ids[0]})

	assert.True(t, forward.Equal(reversed))
}

func TestTotalPrice_IgnoresUnknownIDs(t *testing.T) {
	catalog, ids := catalogForTest()

	total := TotalPrice(catalog, []string{ids[0], uuid.NewString()})
	assert.True(t, total.Equal(decimal.RequireFromString("35.00")))
}

func TestTotalPrice_EmptySelection(t *testing.T) {
	catalog, _ := catalogForTest()

	total := TotalPrice(catalog, nil)
	assert.True(t, total.IsZero())
}

func TestTotalPrice_DecimalSafe(t *testing.T) {
	id := uuid.New()
	catalog := []models.Service{
		{ID: id, Name: "Sobrancelha", Price: decimal.RequireFromString("0.10")},
	}

	// 0.10 somado três vezes tem que dar exatamente 0.30
	total := decimal.Zero
	for i := 0; i < 3; i++ {
		total = total.Add(TotalPrice(catalog, []string{id.String()}))
	}
	assert.Equal(t, "0.30", total.StringFixed(2))
}
