package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	stdhttp "net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	jwt "github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/catalog-service/internal/api/dto"
	"github.com/spec-kit/catalog-service/internal/api/http/handlers"
	"github.com/spec-kit/catalog-service/internal/auth"
	"github.com/spec-kit/catalog-service/internal/config"
	"github.com/spec-kit/catalog-service/internal/domain"
	"github.com/spec-kit/catalog-service/internal/observability"
	"github.com/spec-kit/catalog-service/internal/persistence"
	"github.com/spec-kit/catalog-service/internal/repository"
	"github.com/spec-kit/catalog-service/internal/service"
)

const testSecret = "test-secret"

type memoryProductRepo struct {
	mu       sync.Mutex
	products map[string]domain.Product
}

var _ repository.ProductRepository = (*memoryProductRepo)(nil)

func newMemoryProductRepo() *memoryProductRepo {
	return &memoryProductRepo{products: map[string]domain.Product{}}
}

func (r *memoryProductRepo) List(_ context.Context) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := []domain.Product{}
	for _, p := range r.products {
		out = append(out, p)
	}
	return out, nil
}

func (r *memoryProductRepo) GetByID(_ context.Context, id string) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	return &p, nil
}

func (r *memoryProductRepo) Create(_ context.Context, product *domain.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.products[product.ID] = *product
	return nil
}

func (r *memoryProductRepo) Update(_ context.Context, id string, patch domain.ProductPatch) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Image != nil {
		p.Image = *patch.Image
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Specs != nil {
		p.Specs = *patch.Specs
	}
	if patch.Rating != nil {
		p.Rating = *patch.Rating
	}
	if patch.Reviews != nil {
		p.Reviews = *patch.Reviews
	}
	if patch.Featured != nil {
		p.Featured = *patch.Featured
	}
	if patch.AffiliateLink != nil {
		p.AffiliateLink = *patch.AffiliateLink
	}
	p.UpdatedAt = time.Now().UTC()
	r.products[id] = p
	return &p, nil
}

func (r *memoryProductRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.products, id)
	return nil
}

type memoryStatusRepo struct {
	mu     sync.Mutex
	checks []domain.StatusCheck
}

var _ repository.StatusCheckRepository = (*memoryStatusRepo)(nil)

func (r *memoryStatusRepo) Create(_ context.Context, check *domain.StatusCheck) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.checks = append(r.checks, *check)
	return nil
}

func (r *memoryStatusRepo) List(_ context.Context, limit int) ([]domain.StatusCheck, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := append([]domain.StatusCheck{}, r.checks...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func newTestApp() *fiber.App {
	logger := zap.NewNop()
	metrics := observability.NewMetrics()

	authService := service.NewAuthService(config.AuthConfig{
		AdminUsername: "admin",
		AdminPassword: "admin123",
		JWTSecret:     testSecret,
		TokenTTLHours: 1,
	})
	catalogService := service.NewCatalogService(service.CatalogDependencies{
		ProductRepo: newMemoryProductRepo(),
	})
	statusService := service.NewStatusService(&memoryStatusRepo{}, nil)

	app := fiber.New()
	app.Use(errorHandlingMiddleware(logger, metrics))
	app.Use(observability.RequestLogger(logger, metrics))

	RegisterRoutes(app, RouteConfig{
		Health:         handlers.NewHealthHandler("test", "dev", &persistence.Postgres{}, &persistence.Redis{}),
		Auth:           handlers.NewAuthHandler(authService),
		Products:       handlers.NewProductsHandler(catalogService),
		Categories:     handlers.NewCategoriesHandler(),
		Status:         handlers.NewStatusHandler(statusService),
		AuthMiddleware: auth.NewMiddleware(authService.TokenManager()),
	})
	return app
}

func doRequest(t *testing.T, app *fiber.App, method, path, token string, body any) *stdhttp.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("request %s %s: %v", method, path, err)
	}
	return resp
}

func decodeBody[T any](t *testing.T, resp *stdhttp.Response) T {
	t.Helper()
	var out T
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	return out
}

func loginAdmin(t *testing.T, app *fiber.App) string {
	t.Helper()
	resp := doRequest(t, app, stdhttp.MethodPost, "/api/admin/login", "", dto.AdminLoginRequest{
		Username: "admin",
		Password: "admin123",
	})
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("login: expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody[dto.AdminTokenResponse](t, resp)
	if body.Token == "" {
		t.Fatal("login: empty token")
	}
	return body.Token
}

type errorBody struct {
	Error struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func TestRootGreeting(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, stdhttp.MethodGet, "/api/", "", nil)
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody[map[string]string](t, resp)
	if body["message"] != "Hello World" {
		t.Errorf("unexpected greeting: %v", body)
	}
}

func TestAdminLoginAndVerifyFlow(t *testing.T) {
	app := newTestApp()
	token := loginAdmin(t, app)

	resp := doRequest(t, app, stdhttp.MethodGet, "/api/admin/verify", token, nil)
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("verify: expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody[dto.AdminVerifyResponse](t, resp)
	if !body.Valid || body.Username != "admin" {
		t.Errorf("unexpected verify body: %+v", body)
	}
}

func TestAdminLoginInvalidCredentials(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, stdhttp.MethodPost, "/api/admin/login", "", dto.AdminLoginRequest{
		Username: "admin",
		Password: "wrong",
	})
	if resp.StatusCode != stdhttp.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", resp.StatusCode)
	}
	body := decodeBody[errorBody](t, resp)
	if body.Error.Message != "Credenciales incorrectas" {
		t.Errorf("unexpected message: %q", body.Error.Message)
	}
}

func TestVerifyWithoutToken(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, stdhttp.MethodGet, "/api/admin/verify", "", nil)
	if resp.StatusCode != stdhttp.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func TestVerifyWithExpiredToken(t *testing.T) {
	app := newTestApp()

	claims := jwt.RegisteredClaims{
		Subject:   "admin",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
	}
	expired, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}

	resp := doRequest(t, app, stdhttp.MethodGet, "/api/admin/verify", expired, nil)
	if resp.StatusCode != stdhttp.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	body := decodeBody[errorBody](t, resp)
	if body.Error.Message != "Token expirado" {
		t.Errorf("unexpected message: %q", body.Error.Message)
	}
}

func TestVerifyWithGarbageToken(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, stdhttp.MethodGet, "/api/admin/verify", "garbage", nil)
	if resp.StatusCode != stdhttp.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
	body := decodeBody[errorBody](t, resp)
	if body.Error.Message != "Token inválido" {
		t.Errorf("unexpected message: %q", body.Error.Message)
	}
}

func TestCreateProductRequiresToken(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, stdhttp.MethodPost, "/api/products", "", dto.ProductCreateRequest{Name: "X"})
	if resp.StatusCode != stdhttp.StatusForbidden {
		t.Fatalf("expected 403, got %d", resp.StatusCode)
	}
}

func createRequestFixture() dto.ProductCreateRequest {
	price := 9.99
	return dto.ProductCreateRequest{
		Name:          "X",
		Category:      "Electrónica",
		Price:         &price,
		Image:         "u",
		Description:   "d",
		AffiliateLink: "l",
	}
}

func TestCreateProductDefaults(t *testing.T) {
	app := newTestApp()
	token := loginAdmin(t, app)

	resp := doRequest(t, app, stdhttp.MethodPost, "/api/products", token, createRequestFixture())
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	product := decodeBody[domain.Product](t, resp)
	if product.ID == "" {
		t.Error("expected generated id")
	}
	if product.Rating != 4.5 || product.Reviews != 0 || product.Featured {
		t.Errorf("defaults not applied: %+v", product)
	}
	if product.Name != "X" || product.Category != "Electrónica" || product.Price != 9.99 {
		t.Errorf("fields not persisted: %+v", product)
	}
	if product.CreatedAt.IsZero() || product.UpdatedAt.IsZero() {
		t.Error("expected timestamps populated")
	}
}

func TestGetProductRoundTrip(t *testing.T) {
	app := newTestApp()
	token := loginAdmin(t, app)

	created := decodeBody[domain.Product](t, doRequest(t, app, stdhttp.MethodPost, "/api/products", token, createRequestFixture()))

	resp := doRequest(t, app, stdhttp.MethodGet, "/api/products/"+created.ID, "", nil)
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	fetched := decodeBody[domain.Product](t, resp)
	if fetched.ID != created.ID || fetched.Name != created.Name || fetched.Price != created.Price {
		t.Errorf("fetched product differs: %+v vs %+v", fetched, created)
	}
}

func TestGetProductNotFound(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, stdhttp.MethodGet, "/api/products/missing", "", nil)
	if resp.StatusCode != stdhttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
	body := decodeBody[errorBody](t, resp)
	if body.Error.Message != "Producto no encontrado" {
		t.Errorf("unexpected message: %q", body.Error.Message)
	}
}

func TestUpdateProductPartial(t *testing.T) {
	app := newTestApp()
	token := loginAdmin(t, app)

	created := decodeBody[domain.Product](t, doRequest(t, app, stdhttp.MethodPost, "/api/products", token, createRequestFixture()))

	price := 10.0
	resp := doRequest(t, app, stdhttp.MethodPut, "/api/products/"+created.ID, token, dto.ProductUpdateRequest{Price: &price})
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	updated := decodeBody[domain.Product](t, resp)
	if updated.Price != 10.0 {
		t.Errorf("expected price 10.0, got %v", updated.Price)
	}
	if updated.Name != created.Name || updated.Category != created.Category ||
		updated.Image != created.Image || updated.Description != created.Description ||
		updated.Rating != created.Rating || updated.Reviews != created.Reviews ||
		updated.Featured != created.Featured || updated.AffiliateLink != created.AffiliateLink {
		t.Errorf("fields other than price changed: %+v vs %+v", updated, created)
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Errorf("expected updatedAt to advance: %v vs %v", updated.UpdatedAt, created.UpdatedAt)
	}
}

func TestUpdateProductNotFound(t *testing.T) {
	app := newTestApp()
	token := loginAdmin(t, app)

	price := 10.0
	resp := doRequest(t, app, stdhttp.MethodPut, "/api/products/missing", token, dto.ProductUpdateRequest{Price: &price})
	if resp.StatusCode != stdhttp.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp.StatusCode)
	}
}

func TestDeleteProductFlow(t *testing.T) {
	app := newTestApp()
	token := loginAdmin(t, app)

	created := decodeBody[domain.Product](t, doRequest(t, app, stdhttp.MethodPost, "/api/products", token, createRequestFixture()))

	resp := doRequest(t, app, stdhttp.MethodDelete, "/api/products/"+created.ID, token, nil)
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	body := decodeBody[dto.DeleteResponse](t, resp)
	if body.Message != "Producto eliminado exitosamente" {
		t.Errorf("unexpected message: %q", body.Message)
	}

	if resp := doRequest(t, app, stdhttp.MethodGet, "/api/products/"+created.ID, "", nil); resp.StatusCode != stdhttp.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", resp.StatusCode)
	}
	if resp := doRequest(t, app, stdhttp.MethodDelete, "/api/products/"+created.ID, token, nil); resp.StatusCode != stdhttp.StatusNotFound {
		t.Errorf("expected 404 on second delete, got %d", resp.StatusCode)
	}
}

func TestListProducts(t *testing.T) {
	app := newTestApp()
	token := loginAdmin(t, app)

	doRequest(t, app, stdhttp.MethodPost, "/api/products", token, createRequestFixture())
	doRequest(t, app, stdhttp.MethodPost, "/api/products", token, createRequestFixture())

	resp := doRequest(t, app, stdhttp.MethodGet, "/api/products", "", nil)
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	products := decodeBody[[]domain.Product](t, resp)
	if len(products) != 2 {
		t.Errorf("expected 2 products, got %d", len(products))
	}
}

func TestCategoriesFixture(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, stdhttp.MethodGet, "/api/categories", "", nil)
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	categories := decodeBody[[]domain.Category](t, resp)
	if len(categories) != 5 {
		t.Fatalf("expected 5 categories, got %d", len(categories))
	}
	if categories[0].Name != "Electrónica" || categories[0].Slug != "electronica" {
		t.Errorf("unexpected first category: %+v", categories[0])
	}
	for i, category := range categories {
		if category.ID != i+1 {
			t.Errorf("expected id %d, got %d", i+1, category.ID)
		}
	}
}

func TestStatusCheckRoundTrip(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, stdhttp.MethodPost, "/api/status", "", dto.StatusCheckCreateRequest{ClientName: "probe"})
	if resp.StatusCode != stdhttp.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	created := decodeBody[domain.StatusCheck](t, resp)
	if created.ID == "" || created.ClientName != "probe" || created.Timestamp.IsZero() {
		t.Errorf("unexpected status check: %+v", created)
	}

	listResp := doRequest(t, app, stdhttp.MethodGet, "/api/status", "", nil)
	checks := decodeBody[[]domain.StatusCheck](t, listResp)
	if len(checks) != 1 || checks[0].ID != created.ID {
		t.Errorf("unexpected list: %+v", checks)
	}
}

func TestStatusCheckRequiresClientName(t *testing.T) {
	app := newTestApp()

	resp := doRequest(t, app, stdhttp.MethodPost, "/api/status", "", dto.StatusCheckCreateRequest{})
	if resp.StatusCode != stdhttp.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}
