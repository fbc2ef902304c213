package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/suministros-api/internal/application/acceptance"
	"github.com/tu-usuario/suministros-api/internal/application/dto"
	"github.com/tu-usuario/suministros-api/internal/domain"
	"github.com/tu-usuario/suministros-api/pkg/validate"
)

// AcceptanceHandler endpoints del microservicio de recepciones. A diferencia
// del resto de la plataforma responde con el envoltorio {success, data, message}
// que espera el front; los errores van como {success:false, error}.
type AcceptanceHandler struct {
	uc *acceptance.UseCase
}

// NewAcceptanceHandler construye el handler.
func NewAcceptanceHandler(uc *acceptance.UseCase) *AcceptanceHandler {
	return &AcceptanceHandler{uc: uc}
}

// List godoc
// @Summary      Listar recepciones
// @Tags         acceptance
// @Security     Bearer
// @Produce      json
// @Param        orderId       query  string  false  "Filtrar por orden"
// @Param        status        query  string  false  "Filtrar por estado"
// @Param        restaurantId  query  string  false  "Filtrar por restaurante"
// @Success      200  {object}  dto.APIResponse
// @Router       /api/acceptance [get]
func (h *AcceptanceHandler) List(c *fiber.Ctx) error {
	var q dto.AcceptanceListQuery
	if err := c.QueryParser(&q); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("parámetros de consulta inválidos"))
	}
	list, err := h.uc.List(q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	return c.JSON(dto.OK(list, ""))
}

// Create godoc
// @Summary      Registrar recepción
// @Tags         acceptance
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateAcceptanceRequest  true  "Datos de la recepción"
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIResponse
// @Router       /api/acceptance [post]
func (h *AcceptanceHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateAcceptanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(validate.Explain(err)))
	}
	rec, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("orderId y restaurantId son requeridos"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(rec, "recepción registrada"))
}

// GetByID GET /api/acceptance/:id
func (h *AcceptanceHandler) GetByID(c *fiber.Ctx) error {
	rec, err := h.uc.GetByID(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("recepción no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	return c.JSON(dto.OK(rec, ""))
}

// Update PUT /api/acceptance/:id — merge superficial de los campos presentes.
func (h *AcceptanceHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateAcceptanceRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("cuerpo inválido"))
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail(validate.Explain(err)))
	}
	rec, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("recepción no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	return c.JSON(dto.OK(rec, "recepción actualizada"))
}

// Complete PUT /api/acceptance/:id/complete — transiciona a completed y
// estampa acceptanceTime. Idempotente.
func (h *AcceptanceHandler) Complete(c *fiber.Ctx) error {
	rec, err := h.uc.Complete(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("recepción no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	return c.JSON(dto.OK(rec, "recepción completada"))
}

// ListByOrder GET /api/acceptance/order/:orderId
func (h *AcceptanceHandler) ListByOrder(c *fiber.Ctx) error {
	list, err := h.uc.ListByOrder(c.Params("orderId"))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	return c.JSON(dto.OK(list, ""))
}

// UploadPhoto godoc
// @Summary      Subir foto de evidencia
// @Tags         acceptance
// @Security     Bearer
// @Accept       multipart/form-data
// @Produce      json
// @Param        photo  formData  file  true  "Imagen (máx. 10 MiB)"
// @Success      201  {object}  dto.APIResponse
// @Failure      400  {object}  dto.APIResponse
// @Failure      413  {object}  dto.APIResponse
// @Router       /api/acceptance/upload-photo [post]
func (h *AcceptanceHandler) UploadPhoto(c *fiber.Ctx) error {
	fh, err := c.FormFile("photo")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("falta el archivo 'photo'"))
	}
	f, err := fh.Open()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	defer f.Close()

	out, err := h.uc.UploadPhoto(fh.Filename, fh.Header.Get("Content-Type"), fh.Size, f)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAnImage):
			return c.Status(fiber.StatusBadRequest).JSON(dto.Fail("solo se aceptan imágenes"))
		case errors.Is(err, domain.ErrFileTooLarge):
			return c.Status(fiber.StatusRequestEntityTooLarge).JSON(dto.Fail("la imagen supera el límite de 10 MiB"))
		default:
			return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
		}
	}
	return c.Status(fiber.StatusCreated).JSON(dto.OK(out, "foto guardada"))
}

// Receipt GET /api/acceptance/:id/receipt — comprobante PDF.
func (h *AcceptanceHandler) Receipt(c *fiber.Ctx) error {
	data, err := h.uc.Receipt(c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.Fail("recepción no encontrada"))
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.Fail(err.Error()))
	}
	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `inline; filename="recepcion-`+c.Params("id")+`.pdf"`)
	return c.Send(data)
}
