package http_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/suministros-api/internal/application/acceptance"
	"github.com/tu-usuario/suministros-api/internal/domain/entity"
	"github.com/tu-usuario/suministros-api/internal/infrastructure/memory"
	apphttp "github.com/tu-usuario/suministros-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Dobles de los puertos de infraestructura
// ──────────────────────────────────────────────────────────────────────────────

type fakePhotoStore struct{ saved int }

func (f *fakePhotoStore) Save(filename string, _ io.Reader) (string, string, error) {
	f.saved++
	return "/uploads/" + filename, filename, nil
}

type fakeReceiptGen struct{}

func (fakeReceiptGen) GenerateReceipt(_ *entity.AcceptanceRecord) ([]byte, error) {
	return []byte("%PDF-1.4 fake"), nil
}

// envelope refleja el contrato {success, data, message, error} del servicio.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
	Error   string          `json:"error"`
}

const maxTestPhotoBytes = 64 // límite bajito para probar el 413 sin archivos grandes

func buildAcceptanceApp(t *testing.T) (*fiber.App, *fakePhotoStore) {
	t.Helper()
	photos := &fakePhotoStore{}
	uc := acceptance.NewUseCase(memory.NewAcceptanceRepository(), photos, fakeReceiptGen{}, maxTestPhotoBytes)
	h := apphttp.NewAcceptanceHandler(uc)

	app := fiber.New()
	acc := app.Group("/api/acceptance")
	acc.Get("/", h.List)
	acc.Post("/", h.Create)
	acc.Post("/upload-photo", h.UploadPhoto)
	acc.Get("/order/:orderId", h.ListByOrder)
	acc.Get("/:id", h.GetByID)
	acc.Put("/:id", h.Update)
	acc.Put("/:id/complete", h.Complete)
	acc.Get("/:id/receipt", h.Receipt)
	return app, photos
}

func postJSON(t *testing.T, app *fiber.App, path string, body string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeEnvelope(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

// createRecord registra una recepción y devuelve su ID.
func createRecord(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := postJSON(t, app, "/api/acceptance", `{
		"orderId": "ord-1",
		"restaurantId": "rest-1",
		"supplierName": "Distribuidora La Sabana",
		"items": [
			{"itemCode": "TOM-01", "name": "Tomate chonto", "orderedQty": 10, "receivedQty": 9.5}
		]
	}`)
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	require.True(t, env.Success)
	var rec entity.AcceptanceRecord
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	require.NotEmpty(t, rec.ID)
	return rec.ID
}

// ──────────────────────────────────────────────────────────────────────────────
// Crear y consultar
// ──────────────────────────────────────────────────────────────────────────────

func TestAcceptance_Create_EstadoInicialPending(t *testing.T) {
	app, _ := buildAcceptanceApp(t)
	id := createRecord(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/acceptance/"+id, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var rec entity.AcceptanceRecord
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, entity.AcceptancePending, rec.Status)
	assert.Nil(t, rec.AcceptanceTime, "una recepción nueva no tiene acceptanceTime")
	require.Len(t, rec.Items, 1)
	assert.Equal(t, entity.ConditionGood, rec.Items[0].Condition,
		"condición por defecto good cuando no se envía")
}

func TestAcceptance_Create_SinOrderID_Retorna400(t *testing.T) {
	app, _ := buildAcceptanceApp(t)

	resp := postJSON(t, app, "/api/acceptance", `{"restaurantId": "rest-1"}`)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
	assert.NotEmpty(t, env.Error)
}

func TestAcceptance_GetByID_NoExiste_Retorna404(t *testing.T) {
	app, _ := buildAcceptanceApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/acceptance/no-existe", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.False(t, env.Success)
}

func TestAcceptance_List_FiltraPorOrderYStatus(t *testing.T) {
	app, _ := buildAcceptanceApp(t)
	id := createRecord(t, app)
	_ = createRecord(t, app) // segunda recepción de la misma orden

	// Completar la primera para diferenciar estados
	req := httptest.NewRequest(http.MethodPut, "/api/acceptance/"+id+"/complete", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	// Filtro por status=completed → solo la primera
	req = httptest.NewRequest(http.MethodGet, "/api/acceptance?orderId=ord-1&status=completed", nil)
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var list []entity.AcceptanceRecord
	require.NoError(t, json.Unmarshal(env.Data, &list))
	require.Len(t, list, 1)
	assert.Equal(t, id, list[0].ID)
}

func TestAcceptance_ListByOrder(t *testing.T) {
	app, _ := buildAcceptanceApp(t)
	createRecord(t, app)
	createRecord(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/acceptance/order/ord-1", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var list []entity.AcceptanceRecord
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 2)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualizar y completar
// ──────────────────────────────────────────────────────────────────────────────

func TestAcceptance_Update_MergeSuperficial(t *testing.T) {
	app, _ := buildAcceptanceApp(t)
	id := createRecord(t, app)

	req := httptest.NewRequest(http.MethodPut, "/api/acceptance/"+id,
		strings.NewReader(`{"status": "in_progress", "deliveryNote": "REM-00042"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env := decodeEnvelope(t, resp)
	var rec entity.AcceptanceRecord
	require.NoError(t, json.Unmarshal(env.Data, &rec))
	assert.Equal(t, entity.AcceptanceInProgress, rec.Status)
	assert.Equal(t, "REM-00042", rec.DeliveryNote)
	// Los campos no enviados no se tocan
	assert.Equal(t, "Distribuidora La Sabana", rec.SupplierName)
}

func TestAcceptance_Complete_EsIdempotente(t *testing.T) {
	app, _ := buildAcceptanceApp(t)
	id := createRecord(t, app)

	complete := func() entity.AcceptanceRecord {
		req := httptest.NewRequest(http.MethodPut, "/api/acceptance/"+id+"/complete", nil)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)

		env := decodeEnvelope(t, resp)
		var rec entity.AcceptanceRecord
		require.NoError(t, json.Unmarshal(env.Data, &rec))
		return rec
	}

	first := complete()
	require.Equal(t, entity.AcceptanceCompleted, first.Status)
	require.NotNil(t, first.AcceptanceTime)

	second := complete()
	assert.Equal(t, entity.AcceptanceCompleted, second.Status)
	require.NotNil(t, second.AcceptanceTime)
	assert.True(t, first.AcceptanceTime.Equal(*second.AcceptanceTime),
		"re-completar debe conservar el acceptanceTime original")
}

// ──────────────────────────────────────────────────────────────────────────────
// Fotos de evidencia
// ──────────────────────────────────────────────────────────────────────────────

// multipartPhoto arma un cuerpo multipart con una parte "photo" del
// Content-Type y tamaño indicados.
func multipartPhoto(t *testing.T, contentType string, payload []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	hdr := textproto.MIMEHeader{}
	hdr.Set("Content-Disposition", `form-data; name="photo"; filename="evidencia.png"`)
	hdr.Set("Content-Type", contentType)
	part, err := w.CreatePart(hdr)
	require.NoError(t, err)
	_, err = part.Write(payload)
	require.NoError(t, err)
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func TestAcceptance_UploadPhoto_OK(t *testing.T) {
	app, photos := buildAcceptanceApp(t)

	body, ct := multipartPhoto(t, "image/png", []byte("png-bytes"))
	req := httptest.NewRequest(http.MethodPost, "/api/acceptance/upload-photo", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	env := decodeEnvelope(t, resp)
	assert.True(t, env.Success)
	assert.Equal(t, 1, photos.saved)
}

func TestAcceptance_UploadPhoto_NoImagen_Retorna400(t *testing.T) {
	app, photos := buildAcceptanceApp(t)

	body, ct := multipartPhoto(t, "text/plain", []byte("no soy una foto"))
	req := httptest.NewRequest(http.MethodPost, "/api/acceptance/upload-photo", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, 0, photos.saved, "nada debe guardarse si el tipo no es imagen")
}

func TestAcceptance_UploadPhoto_DemasiadoGrande_Retorna413(t *testing.T) {
	app, photos := buildAcceptanceApp(t)

	grande := bytes.Repeat([]byte("x"), maxTestPhotoBytes+1)
	body, ct := multipartPhoto(t, "image/jpeg", grande)
	req := httptest.NewRequest(http.MethodPost, "/api/acceptance/upload-photo", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusRequestEntityTooLarge, resp.StatusCode)
	assert.Equal(t, 0, photos.saved)
}

func TestAcceptance_UploadPhoto_SinArchivo_Retorna400(t *testing.T) {
	app, _ := buildAcceptanceApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/acceptance/upload-photo", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// ──────────────────────────────────────────────────────────────────────────────
// Comprobante PDF
// ──────────────────────────────────────────────────────────────────────────────

func TestAcceptance_Receipt_DevuelvePDF(t *testing.T) {
	app, _ := buildAcceptanceApp(t)
	id := createRecord(t, app)

	req := httptest.NewRequest(http.MethodGet, "/api/acceptance/"+id+"/receipt", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/pdf", resp.Header.Get("Content-Type"))
}

func TestAcceptance_Receipt_NoExiste_Retorna404(t *testing.T) {
	app, _ := buildAcceptanceApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api/acceptance/no-existe/receipt", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

// Réplica del fiber.Config de producción: BodyLimit queda por encima del
// máximo por foto para que el 413 lo decida el caso de uso y no el framework.
func TestAcceptance_UploadPhoto_FotoDe5MB_PasaElLimiteDelFramework(t *testing.T) {
	const maxFotoBytes = 10 << 20
	photos := &fakePhotoStore{}
	uc := acceptance.NewUseCase(memory.NewAcceptanceRepository(), photos, fakeReceiptGen{}, maxFotoBytes)
	h := apphttp.NewAcceptanceHandler(uc)

	app := fiber.New(fiber.Config{BodyLimit: maxFotoBytes + 1<<20})
	app.Post("/api/acceptance/upload-photo", h.UploadPhoto)

	body, ct := multipartPhoto(t, "image/jpeg", bytes.Repeat([]byte{0xAB}, 5<<20))
	req := httptest.NewRequest(http.MethodPost, "/api/acceptance/upload-photo", body)
	req.Header.Set("Content-Type", ct)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, 1, photos.saved)
}
