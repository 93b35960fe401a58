package Controllers_test

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func uploadMenuRequest(t *testing.T, url string, filename string, content []byte) *http.Request {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("menu_pdf", filename)
	assert.NoError(t, err)
	_, err = part.Write(content)
	assert.NoError(t, err)
	assert.NoError(t, writer.Close())

	req, err := http.NewRequest("PUT", url, body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	return req
}

func TestUploadAndFetchMenu(t *testing.T) {
	client := newTestClient(t)
	pdfBytes := []byte("%PDF-1.4 fake menu")

	w := client.doRaw(uploadMenuRequest(t, "/restaurants/3/menu", "carta.pdf", pdfBytes))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = client.do("GET", "/restaurants/3/menu", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, pdfBytes, w.Body.Bytes())
}

func TestUploadMenuOverwrites(t *testing.T) {
	client := newTestClient(t)

	w := client.doRaw(uploadMenuRequest(t, "/restaurants/3/menu", "v1.pdf", []byte("%PDF-1.4 first")))
	assert.Equal(t, http.StatusCreated, w.Code)
	w = client.doRaw(uploadMenuRequest(t, "/restaurants/3/menu", "v2.pdf", []byte("%PDF-1.4 second")))
	assert.Equal(t, http.StatusCreated, w.Code)

	w = client.do("GET", "/restaurants/3/menu", nil)
	assert.Equal(t, []byte("%PDF-1.4 second"), w.Body.Bytes())
}

func TestUploadMenuRejectsNonPDF(t *testing.T) {
	client := newTestClient(t)

	w := client.doRaw(uploadMenuRequest(t, "/restaurants/3/menu", "carta.docx", []byte("not a pdf")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUploadMenuUnknownRestaurant(t *testing.T) {
	client := newTestClient(t)

	w := client.doRaw(uploadMenuRequest(t, "/restaurants/77/menu", "carta.pdf", []byte("%PDF-1.4")))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetMenuFallsBackToSynthesizedPDF(t *testing.T) {
	client := newTestClient(t)

	// No upload for restaurant 5: a menu is synthesized from its dishes.
	w := client.do("GET", "/restaurants/5/menu", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Equal(t, "%PDF", w.Body.String()[:4])
}

func TestMenuPreview(t *testing.T) {
	client := newTestClient(t)

	w := client.do("GET", "/restaurants/3/menu/preview", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	assert.Equal(t, "Simulated menu", response["message"])

	items := response["data"].([]interface{})
	assert.Len(t, items, 3)

	first := items[0].(map[string]interface{})
	assert.Equal(t, "Pasta carbonara", first["name"])
	assert.Equal(t, "9,00 €", first["price"])
}

func TestMenuPreviewNoDishesNotice(t *testing.T) {
	client := newTestClient(t)

	// A restaurant added at runtime has no dishes; the preview is a notice,
	// not an error.
	body, contentType := newRestaurantForm(t, map[string]string{
		"name":         "Sin Platos",
		"rating":       "4.0",
		"cuisine_type": "Otro",
		"price_min":    "10",
		"price_max":    "20",
	})
	req, err := http.NewRequest("POST", "/restaurants", body)
	assert.NoError(t, err)
	req.Header.Set("Content-Type", contentType)
	w := client.doRaw(req)
	assert.Equal(t, http.StatusCreated, w.Code)

	w = client.do("GET", "/restaurants/6/menu/preview", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	response := decodeResponse(t, w)
	assert.Equal(t, "No dishes found for this restaurant", response["message"])
}
