package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/suministros-api/internal/application/dto"
	"github.com/tu-usuario/suministros-api/internal/infrastructure/bff"
)

// BFFHandler passthrough /api/bff/* → servicio de jerarquía. No interpreta el
// JSON: reenvía estado, cuerpo y Content-Type tal cual llegan del upstream.
type BFFHandler struct {
	proxy *bff.Proxy
}

func NewBFFHandler(proxy *bff.Proxy) *BFFHandler {
	return &BFFHandler{proxy: proxy}
}

// Forward godoc
// @Summary      Passthrough al servicio de jerarquía
// @Tags         bff
// @Security     Bearer
// @Router       /api/bff/{path} [get]
func (h *BFFHandler) Forward(c *fiber.Ctx) error {
	path := "/" + strings.TrimPrefix(c.Params("*"), "/")
	// El front habla /api/bff/hierarchy/...; el servicio expone /v2/hierarchy/...
	if strings.HasPrefix(path, "/hierarchy") {
		path = "/v2" + path
	}
	if qs := string(c.Request().URI().QueryString()); qs != "" {
		path += "?" + qs
	}

	res, err := h.proxy.Forward(
		c.UserContext(),
		c.Method(),
		path,
		c.Get("Authorization"),
		c.Body(),
	)
	if err != nil {
		return c.Status(fiber.StatusBadGateway).JSON(dto.ErrorResponse{
			Code: "UPSTREAM_ERROR", Message: err.Error(),
		})
	}

	c.Status(res.Status)
	if res.ContentType != "" {
		c.Set("Content-Type", res.ContentType)
	}
	return c.Send(res.Body)
}
