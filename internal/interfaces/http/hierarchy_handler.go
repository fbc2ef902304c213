package http

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/suministros-api/internal/application/dto"
	"github.com/tu-usuario/suministros-api/internal/application/hierarchy"
	"github.com/tu-usuario/suministros-api/internal/domain"
	"github.com/tu-usuario/suministros-api/pkg/validate"
)

// HierarchyHandler endpoints /v2/hierarchy: árbol, búsqueda y CRUD de nodos.
type HierarchyHandler struct {
	uc *hierarchy.UseCase
}

func NewHierarchyHandler(uc *hierarchy.UseCase) *HierarchyHandler {
	return &HierarchyHandler{uc: uc}
}

// Tree godoc
// @Summary      Árbol de clientes de la organización
// @Tags         hierarchy
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.HierarchyTreeResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /v2/hierarchy/tree [get]
func (h *HierarchyHandler) Tree(c *fiber.Ctx) error {
	tree, err := h.uc.Tree(GetOrgID(c))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL_ERROR", Message: err.Error(),
		})
	}
	return c.JSON(tree)
}

// Search godoc
// @Summary      Buscar nodos por nombre (insensible a tildes)
// @Tags         hierarchy
// @Security     Bearer
// @Produce      json
// @Param        q  query  string  true  "Texto a buscar"
// @Success      200  {array}  dto.HierarchySearchResult
// @Router       /v2/hierarchy/search [get]
func (h *HierarchyHandler) Search(c *fiber.Ctx) error {
	q := strings.TrimSpace(c.Query("q"))
	if q == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "MISSING_QUERY", Message: "el parámetro q es requerido",
		})
	}
	results, err := h.uc.Search(GetOrgID(c), q)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL_ERROR", Message: err.Error(),
		})
	}
	return c.JSON(results)
}

// GetNode GET /v2/hierarchy/nodes/:id
func (h *HierarchyHandler) GetNode(c *fiber.Ctx) error {
	node, err := h.uc.GetNode(GetOrgID(c), c.Params("id"))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Code: "NODE_NOT_FOUND", Message: "nodo no encontrado",
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL_ERROR", Message: err.Error(),
		})
	}
	return c.JSON(node)
}

// CreateNode godoc
// @Summary      Crear nodo de jerarquía
// @Tags         hierarchy
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNodeRequest  true  "Datos del nodo"
// @Success      201  {object}  dto.HierarchyNodeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /v2/hierarchy/nodes [post]
func (h *HierarchyHandler) CreateNode(c *fiber.Ctx) error {
	var in dto.CreateNodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION_ERROR", Message: validate.Explain(err),
		})
	}
	node, err := h.uc.CreateNode(GetOrgID(c), in)
	if err != nil {
		return h.mapNodeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(node)
}

// UpdateNode PUT /v2/hierarchy/nodes/:id — renombrar, activar/desactivar o mover.
func (h *HierarchyHandler) UpdateNode(c *fiber.Ctx) error {
	var in dto.UpdateNodeRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_BODY", Message: "cuerpo inválido",
		})
	}
	if err := validate.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "VALIDATION_ERROR", Message: validate.Explain(err),
		})
	}
	node, err := h.uc.UpdateNode(GetOrgID(c), c.Params("id"), in)
	if err != nil {
		return h.mapNodeError(c, err)
	}
	return c.JSON(node)
}

// DeleteNode DELETE /v2/hierarchy/nodes/:id — solo nodos hoja.
func (h *HierarchyHandler) DeleteNode(c *fiber.Ctx) error {
	if err := h.uc.DeleteNode(GetOrgID(c), c.Params("id")); err != nil {
		return h.mapNodeError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *HierarchyHandler) mapNodeError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Code: "NODE_NOT_FOUND", Message: "nodo no encontrado",
		})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Code: "INVALID_NODE", Message: err.Error(),
		})
	case errors.Is(err, domain.ErrCycle):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "CYCLE_DETECTED", Message: "el movimiento crearía un ciclo en la jerarquía",
		})
	case errors.Is(err, domain.ErrHasChildren):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "NODE_HAS_CHILDREN", Message: "no se puede eliminar un nodo con hijos",
		})
	case errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
			Code: "INVALID_PARENT", Message: err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Code: "INTERNAL_ERROR", Message: err.Error(),
		})
	}
}
