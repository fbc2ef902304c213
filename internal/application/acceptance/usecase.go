// Package acceptance implementa el microservicio de recepción de mercancía:
// registros de goods-receipt sobre un store en memoria, fotos de evidencia y
// el comprobante PDF. Los registros se pierden al reiniciar el proceso.
package acceptance

import (
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/tu-usuario/suministros-api/internal/application/dto"
	"github.com/tu-usuario/suministros-api/internal/domain"
	"github.com/tu-usuario/suministros-api/internal/domain/entity"
	"github.com/tu-usuario/suministros-api/internal/domain/repository"
)

// UseCase casos de uso del servicio de recepciones.
type UseCase struct {
	repo     repository.AcceptanceRepository
	photos   PhotoStore
	receipts ReceiptGenerator
	maxPhoto int64
}

// NewUseCase construye el caso de uso.
func NewUseCase(repo repository.AcceptanceRepository, photos PhotoStore, receipts ReceiptGenerator, maxPhotoBytes int64) *UseCase {
	return &UseCase{repo: repo, photos: photos, receipts: receipts, maxPhoto: maxPhotoBytes}
}

// Create registra una recepción nueva: id generado, timestamps presentes,
// estado inicial pending.
func (uc *UseCase) Create(in dto.CreateAcceptanceRequest) (*entity.AcceptanceRecord, error) {
	if in.OrderID == "" || in.RestaurantID == "" {
		return nil, domain.ErrInvalidInput
	}
	now := time.Now()
	rec := &entity.AcceptanceRecord{
		ID:           uuid.New().String(),
		OrderID:      in.OrderID,
		RestaurantID: in.RestaurantID,
		SupplierName: in.SupplierName,
		Status:       entity.AcceptancePending,
		DeliveryNote: in.DeliveryNote,
		AcceptedBy:   in.AcceptedBy,
		Items:        toItems(in.Items),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := uc.repo.Create(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// List filtra por orderId, status y restaurantId; cada filtro presente
// restringe el resultado a los registros que coinciden.
func (uc *UseCase) List(q dto.AcceptanceListQuery) ([]*entity.AcceptanceRecord, error) {
	return uc.repo.List(repository.AcceptanceFilter{
		OrderID:      q.OrderID,
		Status:       q.Status,
		RestaurantID: q.RestaurantID,
	})
}

// GetByID devuelve ErrNotFound si el id no existe.
func (uc *UseCase) GetByID(id string) (*entity.AcceptanceRecord, error) {
	rec, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	return rec, nil
}

// ListByOrder recepciones de una orden de compra.
func (uc *UseCase) ListByOrder(orderID string) ([]*entity.AcceptanceRecord, error) {
	return uc.repo.ListByOrder(orderID)
}

// Update hace merge superficial de los campos presentes. ErrNotFound si el id no existe.
func (uc *UseCase) Update(id string, in dto.UpdateAcceptanceRequest) (*entity.AcceptanceRecord, error) {
	rec, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	if in.Status != nil {
		rec.Status = *in.Status
	}
	if in.SupplierName != nil {
		rec.SupplierName = *in.SupplierName
	}
	if in.DeliveryNote != nil {
		rec.DeliveryNote = *in.DeliveryNote
	}
	if in.AcceptedBy != nil {
		rec.AcceptedBy = *in.AcceptedBy
	}
	if in.Items != nil {
		rec.Items = toItems(*in.Items)
	}
	rec.UpdatedAt = time.Now()
	if err := uc.repo.Update(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Complete marca la recepción como completada y estampa acceptanceTime.
// Re-completar es idempotente: conserva el acceptanceTime original.
func (uc *UseCase) Complete(id string) (*entity.AcceptanceRecord, error) {
	rec, err := uc.repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, domain.ErrNotFound
	}
	now := time.Now()
	rec.Status = entity.AcceptanceCompleted
	if rec.AcceptanceTime == nil {
		rec.AcceptanceTime = &now
	}
	rec.UpdatedAt = now
	if err := uc.repo.Update(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// UploadPhoto valida tipo y tamaño y delega en el PhotoStore.
// Solo imágenes; más de maxPhoto bytes → ErrFileTooLarge (HTTP 413).
func (uc *UseCase) UploadPhoto(filename, contentType string, size int64, r io.Reader) (*dto.UploadPhotoResponse, error) {
	if !strings.HasPrefix(contentType, "image/") {
		return nil, domain.ErrNotAnImage
	}
	if size > uc.maxPhoto {
		return nil, domain.ErrFileTooLarge
	}
	url, stored, err := uc.photos.Save(filename, r)
	if err != nil {
		return nil, err
	}
	return &dto.UploadPhotoResponse{URL: url, Filename: stored, Size: size}, nil
}

// Receipt genera el comprobante PDF de una recepción.
func (uc *UseCase) Receipt(id string) ([]byte, error) {
	rec, err := uc.GetByID(id)
	if err != nil {
		return nil, err
	}
	return uc.receipts.GenerateReceipt(rec)
}

func toItems(in []dto.AcceptanceItemInput) []entity.AcceptanceItem {
	items := make([]entity.AcceptanceItem, 0, len(in))
	for _, it := range in {
		condition := it.Condition
		if condition == "" {
			condition = entity.ConditionGood
		}
		items = append(items, entity.AcceptanceItem{
			ItemCode:      it.ItemCode,
			Name:          it.Name,
			Unit:          it.Unit,
			OrderedQty:    it.OrderedQty,
			ReceivedQty:   it.ReceivedQty,
			QualityRating: it.QualityRating,
			Condition:     condition,
			Photos:        it.Photos,
			Notes:         it.Notes,
		})
	}
	return items
}
