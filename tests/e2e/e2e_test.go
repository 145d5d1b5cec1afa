package e2e

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"studioops/internal/config"
	"studioops/internal/database"
	"studioops/internal/domain"
	"studioops/internal/middleware"
	"studioops/internal/modules/auth"
	"studioops/internal/modules/directory"
	"studioops/internal/modules/feed"
	"studioops/internal/modules/ledger"
	"studioops/internal/modules/production"
	"studioops/internal/modules/scheduling"
	jwtsvc "studioops/internal/pkg/jwt"
	"studioops/internal/repository"
)

type Suite struct {
	router *gin.Engine
	db     *gorm.DB
	hub    *feed.Hub
}

type TestResponse struct {
	Success bool                   `json:"success"`
	Data    map[string]interface{} `json:"data,omitempty"`
	Error   *ErrorDetail           `json:"error,omitempty"`
}

type ErrorDetail struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

func setupSuite(t *testing.T) *Suite {
	t.Helper()

	dsn := fmt.Sprintf("file:e2e_%s?mode=memory&cache=shared", t.Name())
	db, err := database.Connect(dsn)
	require.NoError(t, err, "failed to connect to test database")

	require.NoError(t, db.AutoMigrate(
		&domain.User{},
		&domain.Client{},
		&domain.Room{},
		&domain.Staff{},
		&domain.Equipment{},
		&domain.PackageTemplate{},
		&domain.Account{},
		&domain.Booking{},
		&domain.Transaction{},
	))

	cfg := &config.Config{
		OpenTime:           "09:00",
		CloseTime:          "21:00",
		BufferMinutes:      15,
		TaxRate:            0.11,
		RequiredDepositPct: 30,
		Workflow: map[string][]string{
			"shooting": {"Prepare equipment"},
		},
	}

	userRepo := repository.NewUserRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	accountRepo := repository.NewAccountRepository(db)
	txnRepo := repository.NewTransactionRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	staffRepo := repository.NewStaffRepository(db)
	equipmentRepo := repository.NewEquipmentRepository(db)
	clientRepo := repository.NewClientRepository(db)
	packageRepo := repository.NewPackageRepository(db)
	store := repository.NewLedgerStore(db)
	health := database.NewHealth(db)

	j := jwtsvc.New("test_secret_key_32_characters_min", 24*time.Hour)
	hub := feed.NewHub()
	t.Cleanup(hub.Close)

	authHandler := auth.NewHandler(auth.NewService(userRepo, j))

	ledgerService := ledger.NewService(store, bookingRepo, accountRepo, txnRepo, health, hub)
	ledgerHandler := ledger.NewHandler(ledgerService)

	schedulingHandler := scheduling.NewHandler(
		scheduling.NewService(bookingRepo, staffRepo, clientRepo, packageRepo, ledgerService, cfg))

	productionHandler := production.NewHandler(production.NewService(bookingRepo, cfg, hub))

	directoryHandler := directory.NewHandler(
		directory.NewService(roomRepo, staffRepo, equipmentRepo, clientRepo, packageRepo, accountRepo))

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(gin.Recovery())

	v1 := r.Group("/api/v1")
	authHandler.RegisterRoutes(v1)

	protected := v1.Group("/")
	protected.Use(middleware.Auth(j))
	{
		directoryHandler.RegisterRoutes(protected)
		schedulingHandler.RegisterRoutes(protected)
		productionHandler.RegisterRoutes(protected)
		ledgerHandler.RegisterRoutes(protected)
	}

	// Seed the tenant's manager account.
	hash, err := bcrypt.GenerateFromPassword([]byte("manager123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	require.NoError(t, db.Create(&domain.User{
		TenantID:     1,
		Email:        "manager@studioops.local",
		PasswordHash: string(hash),
		Name:         "Front Desk",
		Role:         domain.RoleManager,
	}).Error)

	return &Suite{router: r, db: db, hub: hub}
}

func (s *Suite) makeRequest(t *testing.T, method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	t.Helper()

	var bodyBytes []byte
	if body != nil {
		var err error
		bodyBytes, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, bytes.NewBuffer(bodyBytes))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func parseResponse(t *testing.T, w *httptest.ResponseRecorder) *TestResponse {
	t.Helper()
	var resp TestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), "body: %s", w.Body.String())
	return &resp
}

func dataID(t *testing.T, resp *TestResponse, key string) int64 {
	t.Helper()
	obj, ok := resp.Data[key].(map[string]interface{})
	require.True(t, ok, "missing %q in %+v", key, resp.Data)
	idVal, ok := obj["id"].(float64)
	require.True(t, ok, "missing id in %q", key)
	return int64(idVal)
}

func TestFullStudioLifecycle(t *testing.T) {
	suite := setupSuite(t)

	var token string
	var roomID, staffID, clientID, cashID, bankID int64
	var bookingID int64

	t.Run("POST /auth/login", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/v1/auth/login", map[string]interface{}{
			"email":    "manager@studioops.local",
			"password": "manager123",
		}, "")
		require.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		require.True(t, resp.Success)
		token = resp.Data["token"].(string)
		require.NotEmpty(t, token)
	})

	t.Run("Setup: directory records", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/v1/rooms", map[string]interface{}{
			"name": "Cyclorama A", "area_sqm": 80,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code)
		roomID = dataID(t, parseResponse(t, w), "room")

		w = suite.makeRequest(t, "POST", "/api/v1/staff", map[string]interface{}{
			"name": "Lead Photographer",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code)
		staffID = dataID(t, parseResponse(t, w), "staff")

		w = suite.makeRequest(t, "POST", "/api/v1/clients", map[string]interface{}{
			"name": "Aiya K.", "phone": "+7 777 123 4567",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code)
		clientID = dataID(t, parseResponse(t, w), "client")

		w = suite.makeRequest(t, "POST", "/api/v1/accounts", map[string]interface{}{
			"name": "Front desk cash", "kind": "cash",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code)
		cashID = dataID(t, parseResponse(t, w), "account")

		w = suite.makeRequest(t, "POST", "/api/v1/accounts", map[string]interface{}{
			"name": "Operating bank", "kind": "bank",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code)
		bankID = dataID(t, parseResponse(t, w), "account")
	})

	t.Run("POST /bookings with deposit", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/v1/bookings", map[string]interface{}{
			"client_id":    clientID,
			"date":         "2026-09-15",
			"start":        "10:00",
			"duration_min": 120,
			"room_id":      roomID,
			"staff_id":     staffID,
			"price":        1000000,
			"confirmed":    true,
			"deposit": map[string]interface{}{
				"amount":     500000,
				"account_id": cashID,
			},
			"idempotency_key": "intake-e2e-1",
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

		resp := parseResponse(t, w)
		require.True(t, resp.Success)
		bookingID = dataID(t, resp, "booking")

		booking := resp.Data["booking"].(map[string]interface{})
		assert.Equal(t, "booked", booking["status"])
		assert.Equal(t, float64(500000), booking["paid_amount"])
		assert.Equal(t, "partial", booking["payment_state"])
		// 30% of the 1,110,000 grand total.
		assert.Equal(t, float64(333000), resp.Data["required_deposit"])
	})

	t.Run("POST /bookings/check reports buffered room conflict", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/v1/bookings/check", map[string]interface{}{
			"date":         "2026-09-15",
			"start":        "12:10",
			"duration_min": 60,
			"room_id":      roomID,
		}, token)
		require.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		conflict, ok := resp.Data["conflict"].(map[string]interface{})
		require.True(t, ok, "expected a conflict, got %+v", resp.Data)
		assert.Equal(t, "room", conflict["kind"])
		assert.Equal(t, "hard", conflict["severity"])
	})

	t.Run("POST /bookings rejects hard conflict", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/v1/bookings", map[string]interface{}{
			"client_id":    clientID,
			"date":         "2026-09-15",
			"start":        "11:00",
			"duration_min": 60,
			"room_id":      roomID,
			"price":        500000,
			"force":        true,
		}, token)
		require.Equal(t, http.StatusConflict, w.Code)

		resp := parseResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "HARD_CONFLICT", resp.Error.Code)
	})

	t.Run("POST /bookings/:id/status blocked while balance outstanding", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", fmt.Sprintf("/api/v1/bookings/%d/status", bookingID), map[string]interface{}{
			"status": "completed",
		}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		resp := parseResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "PAYMENT_OUTSTANDING", resp.Error.Code)
	})

	t.Run("POST /bookings/:id/settle", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", fmt.Sprintf("/api/v1/bookings/%d/settle", bookingID), map[string]interface{}{
			"amount":     610000,
			"account_id": cashID,
		}, token)
		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

		resp := parseResponse(t, w)
		assert.Equal(t, float64(0), resp.Data["amount_due"])
		assert.Equal(t, "paid", resp.Data["payment_state"])
	})

	t.Run("Settle beyond amount due is rejected", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", fmt.Sprintf("/api/v1/bookings/%d/settle", bookingID), map[string]interface{}{
			"amount":     1,
			"account_id": cashID,
		}, token)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)

		resp := parseResponse(t, w)
		require.NotNil(t, resp.Error)
		assert.Equal(t, "OVER_ALLOCATION", resp.Error.Code)
	})

	t.Run("POST /bookings/:id/status completes once settled", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", fmt.Sprintf("/api/v1/bookings/%d/status", bookingID), map[string]interface{}{
			"status": "completed",
		}, token)
		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

		resp := parseResponse(t, w)
		assert.Equal(t, "completed", resp.Data["status"])
	})

	t.Run("GET /bookings/outstanding is empty", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/v1/bookings/outstanding", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		outstanding, ok := resp.Data["outstanding"].([]interface{})
		require.True(t, ok)
		assert.Empty(t, outstanding)
	})

	var transferID int64
	t.Run("POST /transfers", func(t *testing.T) {
		w := suite.makeRequest(t, "POST", "/api/v1/transfers", map[string]interface{}{
			"from_account_id": cashID,
			"to_account_id":   bankID,
			"amount":          200000,
		}, token)
		require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

		resp := parseResponse(t, w)
		transferID = dataID(t, resp, "transaction")
	})

	t.Run("GET /accounts reflects all movements", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/v1/accounts", nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		accounts := resp.Data["accounts"].([]interface{})
		require.Len(t, accounts, 2)

		balances := map[string]float64{}
		for _, raw := range accounts {
			a := raw.(map[string]interface{})
			balances[a["name"].(string)] = a["balance"].(float64)
		}
		// 500,000 deposit + 610,000 settlement - 200,000 transfer out.
		assert.Equal(t, float64(910000), balances["Front desk cash"])
		assert.Equal(t, float64(200000), balances["Operating bank"])
	})

	t.Run("DELETE /transactions/:id reverses the transfer", func(t *testing.T) {
		w := suite.makeRequest(t, "DELETE", fmt.Sprintf("/api/v1/transactions/%d", transferID), nil, token)
		require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

		w = suite.makeRequest(t, "GET", "/api/v1/accounts", nil, token)
		resp := parseResponse(t, w)
		for _, raw := range resp.Data["accounts"].([]interface{}) {
			a := raw.(map[string]interface{})
			switch a["name"].(string) {
			case "Front desk cash":
				assert.Equal(t, float64(1110000), a["balance"])
			case "Operating bank":
				assert.Equal(t, float64(0), a["balance"])
			}
		}
	})

	t.Run("GET /transactions filters by booking", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", fmt.Sprintf("/api/v1/transactions?booking_id=%d", bookingID), nil, token)
		require.Equal(t, http.StatusOK, w.Code)

		resp := parseResponse(t, w)
		txns := resp.Data["transactions"].([]interface{})
		// Deposit plus settlement.
		assert.Len(t, txns, 2)
	})

	t.Run("Unauthenticated request rejected", func(t *testing.T) {
		w := suite.makeRequest(t, "GET", "/api/v1/accounts", nil, "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestIdempotentIntakeReplay(t *testing.T) {
	suite := setupSuite(t)

	w := suite.makeRequest(t, "POST", "/api/v1/auth/login", map[string]interface{}{
		"email": "manager@studioops.local", "password": "manager123",
	}, "")
	require.Equal(t, http.StatusOK, w.Code)
	token := parseResponse(t, w).Data["token"].(string)

	w = suite.makeRequest(t, "POST", "/api/v1/clients", map[string]interface{}{"name": "Bek T."}, token)
	clientID := dataID(t, parseResponse(t, w), "client")
	w = suite.makeRequest(t, "POST", "/api/v1/rooms", map[string]interface{}{"name": "Daylight B"}, token)
	roomID := dataID(t, parseResponse(t, w), "room")
	w = suite.makeRequest(t, "POST", "/api/v1/accounts", map[string]interface{}{"name": "Cash", "kind": "cash"}, token)
	accountID := dataID(t, parseResponse(t, w), "account")

	body := map[string]interface{}{
		"client_id":    clientID,
		"date":         "2026-09-16",
		"start":        "10:00",
		"duration_min": 60,
		"room_id":      roomID,
		"price":        800000,
		"confirmed":    true,
		"deposit": map[string]interface{}{
			"amount":     240000,
			"account_id": accountID,
		},
		"idempotency_key": "intake-replay-1",
	}

	w = suite.makeRequest(t, "POST", "/api/v1/bookings", body, token)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	// The replay collides on the idempotency key; the second booking and its
	// deposit never commit. Use a conflict-free slot so only the key trips.
	body["date"] = "2026-09-17"
	w = suite.makeRequest(t, "POST", "/api/v1/bookings", body, token)
	require.Equal(t, http.StatusConflict, w.Code)
	resp := parseResponse(t, w)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "DUPLICATE_REQUEST", resp.Error.Code)

	var count int64
	require.NoError(t, suite.db.Model(&domain.Booking{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}
