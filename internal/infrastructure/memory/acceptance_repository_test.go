package memory_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/suministros-api/internal/domain/entity"
	"github.com/tu-usuario/suministros-api/internal/domain/repository"
	"github.com/tu-usuario/suministros-api/internal/infrastructure/memory"
)

func sampleRecord(id, orderID, status string) *entity.AcceptanceRecord {
	return &entity.AcceptanceRecord{
		ID:           id,
		OrderID:      orderID,
		RestaurantID: "rest-1",
		SupplierName: "Distribuidora La Sabana",
		Status:       status,
		Items: []entity.AcceptanceItem{
			{ItemCode: "TOM-01", Name: "Tomate chonto", OrderedQty: 10, ReceivedQty: 9.5, Condition: entity.ConditionGood},
		},
	}
}

func TestAcceptanceRepo_CreateYGetByID(t *testing.T) {
	repo := memory.NewAcceptanceRepository()

	require.NoError(t, repo.Create(sampleRecord("a1", "ord-1", entity.AcceptancePending)))

	got, err := repo.GetByID("a1")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "ord-1", got.OrderID)
	assert.Equal(t, entity.AcceptancePending, got.Status)
}

func TestAcceptanceRepo_GetByID_NoExiste(t *testing.T) {
	repo := memory.NewAcceptanceRepository()

	got, err := repo.GetByID("no-existe")
	require.NoError(t, err)
	assert.Nil(t, got, "un ID desconocido devuelve nil, nil")
}

func TestAcceptanceRepo_GetDevuelveCopia(t *testing.T) {
	repo := memory.NewAcceptanceRepository()
	require.NoError(t, repo.Create(sampleRecord("a1", "ord-1", entity.AcceptancePending)))

	got, err := repo.GetByID("a1")
	require.NoError(t, err)
	got.Status = entity.AcceptanceCompleted // mutar la copia no debe tocar el store

	again, err := repo.GetByID("a1")
	require.NoError(t, err)
	assert.Equal(t, entity.AcceptancePending, again.Status,
		"mutar lo devuelto por GetByID no debe afectar al store")
}

func TestAcceptanceRepo_List_Filtros(t *testing.T) {
	repo := memory.NewAcceptanceRepository()
	require.NoError(t, repo.Create(sampleRecord("a1", "ord-1", entity.AcceptancePending)))
	require.NoError(t, repo.Create(sampleRecord("a2", "ord-1", entity.AcceptanceCompleted)))
	require.NoError(t, repo.Create(sampleRecord("a3", "ord-2", entity.AcceptancePending)))

	// Sin filtros: todo
	all, err := repo.List(repository.AcceptanceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	// Por orden
	byOrder, err := repo.List(repository.AcceptanceFilter{OrderID: "ord-1"})
	require.NoError(t, err)
	assert.Len(t, byOrder, 2)

	// Por estado
	pending, err := repo.List(repository.AcceptanceFilter{Status: entity.AcceptancePending})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	// Combinado
	both, err := repo.List(repository.AcceptanceFilter{OrderID: "ord-1", Status: entity.AcceptanceCompleted})
	require.NoError(t, err)
	require.Len(t, both, 1)
	assert.Equal(t, "a2", both[0].ID)

	// Filtro sin coincidencias: slice vacío, no nil error
	none, err := repo.List(repository.AcceptanceFilter{RestaurantID: "rest-otro"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestAcceptanceRepo_ListByOrder(t *testing.T) {
	repo := memory.NewAcceptanceRepository()
	require.NoError(t, repo.Create(sampleRecord("a1", "ord-1", entity.AcceptancePending)))
	require.NoError(t, repo.Create(sampleRecord("a2", "ord-2", entity.AcceptancePending)))

	list, err := repo.ListByOrder("ord-2")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, "a2", list[0].ID)
}

func TestAcceptanceRepo_Update(t *testing.T) {
	repo := memory.NewAcceptanceRepository()
	require.NoError(t, repo.Create(sampleRecord("a1", "ord-1", entity.AcceptancePending)))

	rec, err := repo.GetByID("a1")
	require.NoError(t, err)
	rec.Status = entity.AcceptanceInProgress
	rec.DeliveryNote = "REM-00042"
	require.NoError(t, repo.Update(rec))

	got, err := repo.GetByID("a1")
	require.NoError(t, err)
	assert.Equal(t, entity.AcceptanceInProgress, got.Status)
	assert.Equal(t, "REM-00042", got.DeliveryNote)
}

func TestAcceptanceRepo_AccesoConcurrente(t *testing.T) {
	repo := memory.NewAcceptanceRepository()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(i int) {
			defer wg.Done()
			_ = repo.Create(sampleRecord(fmt.Sprintf("a%d", i), "ord-1", entity.AcceptancePending))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = repo.List(repository.AcceptanceFilter{OrderID: "ord-1"})
		}()
	}
	wg.Wait()

	all, err := repo.List(repository.AcceptanceFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 50)
}
