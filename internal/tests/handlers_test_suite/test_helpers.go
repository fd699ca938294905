package handlers_test_suite

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/shelfwatch/inventory-screen/internal/catalog"
	"github.com/shelfwatch/inventory-screen/internal/config"
	api "github.com/shelfwatch/inventory-screen/internal/http"
	handler "github.com/shelfwatch/inventory-screen/internal/http/handlers"
	"github.com/shelfwatch/inventory-screen/internal/models"
	"github.com/shelfwatch/inventory-screen/internal/session"
)

var (
	token  string
	memory *catalog.Memory
	store  *session.Store
	router http.Handler
)

func init() {
	memory = catalog.NewMemory()
	store = session.NewStore(memory, 10)
	handler.SetScreenStore(store)
	handler.SetBanTracker(nil)

	hash, _ := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	handler.SetOperators([]config.Operator{{
		Username:     "admin",
		DisplayName:  "Admin",
		PasswordHash: string(hash),
	}})

	router = api.NewRouter()

	var err error
	token, err = generateToken("admin", "secret")
	if err != nil {
		panic(fmt.Sprintf("error generating token: %v", err))
	}
}

func resetState() {
	memory.Clear()
	memory.FetchErr = nil
	store.Reset()
}

func generateToken(username, password string) (string, error) {
	jsonBody, _ := json.Marshal(handler.UserLogin{Username: username, Password: password})
	req := httptest.NewRequest(http.MethodPost, "/login", bytes.NewReader(jsonBody))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		return "", fmt.Errorf("login returned %d: %s", w.Code, w.Body.String())
	}
	var result handler.LoginResult
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		return "", err
	}
	return result.Token, nil
}

func newRecorderFor(req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// doRequest issues an authenticated request against the router.
func doRequest(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshaling request body: %v", err)
		}
		reader = bytes.NewReader(jsonBody)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Authorization", "Bearer "+token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// seedAndRefresh loads products into the fake backend and pulls them onto
// the screen.
func seedAndRefresh(t *testing.T, products ...models.Product) {
	t.Helper()
	memory.Seed(products)
	if w := doRequest(t, http.MethodPost, "/screen/refresh", nil); w.Code != http.StatusOK {
		t.Fatalf("refresh failed with %d: %s", w.Code, w.Body.String())
	}
}

func getScreen(t *testing.T) handler.ScreenResponse {
	t.Helper()
	w := doRequest(t, http.MethodGet, "/screen", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("GET /screen returned %d", w.Code)
	}
	var resp handler.ScreenResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("decoding screen response: %v", err)
	}
	return resp
}

// csvUpload builds a multipart request body carrying one CSV file.
func csvUpload(t *testing.T, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("file", "products.csv")
	if err != nil {
		t.Fatalf("creating form file: %v", err)
	}
	if _, err := part.Write([]byte(content)); err != nil {
		t.Fatalf("writing csv: %v", err)
	}
	writer.Close()
	return &buf, writer.FormDataContentType()
}
