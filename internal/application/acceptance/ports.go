package acceptance

import (
	"io"

	"github.com/tu-usuario/suministros-api/internal/domain/entity"
)

// PhotoStore puerto de almacenamiento de fotos de recepción.
type PhotoStore interface {
	// Save persiste el contenido y devuelve la URL pública y el nombre final.
	Save(filename string, r io.Reader) (url, storedName string, err error)
}

// ReceiptGenerator puerto del generador del comprobante PDF de recepción.
type ReceiptGenerator interface {
	GenerateReceipt(rec *entity.AcceptanceRecord) ([]byte, error)
}
