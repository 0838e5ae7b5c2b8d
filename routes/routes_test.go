package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/Misheck-bot/transport-system-sub001/configs"
	"github.com/Misheck-bot/transport-system-sub001/entity"
	"github.com/Misheck-bot/transport-system-sub001/utils"
	"github.com/Misheck-bot/transport-system-sub001/ws"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type env struct {
	router *gin.Engine
	db     *gorm.DB
	cfg    *configs.Config
}

func newEnv(t *testing.T) *env {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Truck{}, &entity.Document{},
		&entity.Payment{},
		&entity.ECard{}, &entity.EcardScan{},
		&entity.SecurityAlert{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &configs.Config{
		JWTSecret:   "test-secret",
		JWTTTL:      time.Hour,
		SettleDelay: time.Hour, // never settles on its own in tests
	}

	hub := ws.NewAlertHub()
	go hub.Run()

	r := gin.New()
	RegisterRoutes(r, db, cfg, hub, nil, nil)

	return &env{router: r, db: db, cfg: cfg}
}

func (e *env) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return out
}

func dataField(t *testing.T, w *httptest.ResponseRecorder, key string) any {
	t.Helper()
	data, ok := decode(t, w)["data"].(map[string]any)
	if !ok {
		t.Fatalf("no data object in %q", w.Body.String())
	}
	return data[key]
}

// seedStaff inserts an agent or admin directly and returns a session
// token; only drivers come in through public registration.
func (e *env) seedStaff(t *testing.T, email, role string) (uint, string) {
	t.Helper()
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	u := entity.User{
		Email: email, Password: string(hash),
		FirstName: "Staff", LastName: "User",
		Role: role, IsVerified: true, Status: entity.UserActive,
	}
	if err := e.db.Create(&u).Error; err != nil {
		t.Fatalf("seed %s: %v", role, err)
	}
	token, err := utils.GenerateToken(u.ID, u.Role, u.IsVerified, e.cfg.JWTSecret, e.cfg.JWTTTL)
	if err != nil {
		t.Fatalf("token: %v", err)
	}
	return u.ID, token
}

func (e *env) registerDriver(t *testing.T, email string) string {
	t.Helper()
	w := e.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"email": email, "password": "secret1",
		"firstName": "J", "lastName": "Phiri",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register %s: %d %s", email, w.Code, w.Body.String())
	}

	w = e.do(t, http.MethodPost, "/auth/login", "", gin.H{"email": email, "password": "secret1"})
	if w.Code != http.StatusOK {
		t.Fatalf("login %s: %d %s", email, w.Code, w.Body.String())
	}
	token, _ := decode(t, w)["token"].(string)
	if token == "" {
		t.Fatal("no token in login response")
	}
	return token
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	e := newEnv(t)
	e.registerDriver(t, "dup@example.com")

	w := e.do(t, http.MethodPost, "/auth/register", "", gin.H{
		"email": "DUP@example.com", "password": "secret1",
		"firstName": "J", "lastName": "Phiri",
	})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d %s", w.Code, w.Body.String())
	}

	var count int64
	e.db.Model(&entity.User{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected one user, got %d", count)
	}
}

func TestRoleMismatchIsUnauthorized(t *testing.T) {
	e := newEnv(t)
	driverToken := e.registerDriver(t, "d@example.com")

	// a driver hitting an agent route gets 401 with the fixed body
	w := e.do(t, http.MethodPost, "/agent/scans", driverToken, gin.H{})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
	if got := decode(t, w)["error"]; got != "Unauthorized" {
		t.Fatalf("expected Unauthorized body, got %v", got)
	}

	// and no token at all reads the same
	w = e.do(t, http.MethodGet, "/profile", "", nil)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestCrossDriverTruckDeleteIsNotFound(t *testing.T) {
	e := newEnv(t)
	ownerToken := e.registerDriver(t, "owner@example.com")
	otherToken := e.registerDriver(t, "other@example.com")

	w := e.do(t, http.MethodPost, "/trucks", ownerToken, gin.H{
		"plateNumber": "ZM 77", "make": "Volvo", "model": "FH16",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("register truck: %d %s", w.Code, w.Body.String())
	}
	truckID := uint(dataField(t, w, "ID").(float64))

	w = e.do(t, http.MethodDelete, fmt.Sprintf("/trucks/%d", truckID), otherToken, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d %s", w.Code, w.Body.String())
	}

	var count int64
	e.db.Model(&entity.Truck{}).Where("id = ?", truckID).Count(&count)
	if count != 1 {
		t.Fatal("truck vanished after a foreign delete attempt")
	}
}

// The full journey: driver registers, pays K500 for an e-card
// application, the payment settles, the card is issued pending
// approval, an admin activates it, and an agent records an entry scan
// at Chirundu Border.
func TestECardJourney(t *testing.T) {
	e := newEnv(t)
	driverToken := e.registerDriver(t, "j.phiri@example.com")
	_, adminToken := e.seedStaff(t, "admin@example.com", entity.RoleAdmin)
	_, agentToken := e.seedStaff(t, "agent@example.com", entity.RoleAgent)

	// initiate the application payment
	w := e.do(t, http.MethodPost, "/payments", driverToken, gin.H{
		"type": "E-Card Application", "amount": "K500", "method": "mobile",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("initiate payment: %d %s", w.Code, w.Body.String())
	}
	paymentID := uint(dataField(t, w, "ID").(float64))
	if got := dataField(t, w, "status"); got != "pending" {
		t.Fatalf("fresh payment should be pending, got %v", got)
	}

	// issuing before settlement must fail
	w = e.do(t, http.MethodPost, "/ecards", driverToken, gin.H{"paymentId": paymentID})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("issue before settlement: expected 400, got %d", w.Code)
	}

	// settle (admin adjudication drives the same pending guard the
	// worker uses)
	w = e.do(t, http.MethodPut, fmt.Sprintf("/admin/payments/%d", paymentID), adminToken, gin.H{"status": "completed"})
	if w.Code != http.StatusOK {
		t.Fatalf("adjudicate: %d %s", w.Code, w.Body.String())
	}

	// the driver observes the outcome by re-querying
	w = e.do(t, http.MethodGet, fmt.Sprintf("/payments/%d", paymentID), driverToken, nil)
	if got := dataField(t, w, "status"); got != "completed" {
		t.Fatalf("payment should be completed, got %v", got)
	}

	// issue the card; driver caller, so pending approval
	w = e.do(t, http.MethodPost, "/ecards", driverToken, gin.H{"paymentId": paymentID})
	if w.Code != http.StatusCreated {
		t.Fatalf("issue: %d %s", w.Code, w.Body.String())
	}
	cardID := uint(dataField(t, w, "ID").(float64))
	if got := dataField(t, w, "status"); got != "pending_approval" {
		t.Fatalf("card should be pending_approval, got %v", got)
	}

	// a second issuance against the same payment conflicts
	w = e.do(t, http.MethodPost, "/ecards", driverToken, gin.H{"paymentId": paymentID})
	if w.Code != http.StatusConflict {
		t.Fatalf("re-issue: expected 409, got %d %s", w.Code, w.Body.String())
	}

	// scanning a pending card fails
	var driver entity.User
	e.db.Where("email = ?", "j.phiri@example.com").First(&driver)
	scanBody := gin.H{
		"ecardId": cardID, "driverId": driver.ID,
		"borderPost": "Chirundu Border", "scanType": "entry",
	}
	w = e.do(t, http.MethodPost, "/agent/scans", agentToken, scanBody)
	if w.Code != http.StatusNotFound {
		t.Fatalf("scan on pending card: expected 404, got %d %s", w.Code, w.Body.String())
	}

	// admin activates the card
	w = e.do(t, http.MethodPatch, fmt.Sprintf("/admin/ecards/%d/approve", cardID), adminToken, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("approve: %d %s", w.Code, w.Body.String())
	}

	// now the scan lands
	w = e.do(t, http.MethodPost, "/agent/scans", agentToken, scanBody)
	if w.Code != http.StatusCreated {
		t.Fatalf("scan: %d %s", w.Code, w.Body.String())
	}

	// and the card carries the last-seen border post
	w = e.do(t, http.MethodGet, fmt.Sprintf("/ecards/%d", cardID), driverToken, nil)
	if got := dataField(t, w, "lastBorderPost"); got != "Chirundu Border" {
		t.Fatalf("lastBorderPost = %v, want Chirundu Border", got)
	}
	if dataField(t, w, "lastScanDate") == nil {
		t.Fatal("lastScanDate not set")
	}
}

func TestScanRequiresBorderPostAndType(t *testing.T) {
	e := newEnv(t)
	_, agentToken := e.seedStaff(t, "agent@example.com", entity.RoleAgent)

	w := e.do(t, http.MethodPost, "/agent/scans", agentToken, gin.H{
		"ecardId": 1, "driverId": 1, "scanType": "entry",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("missing borderPost: expected 400, got %d", w.Code)
	}

	w = e.do(t, http.MethodPost, "/agent/scans", agentToken, gin.H{
		"ecardId": 1, "driverId": 1, "borderPost": "Chirundu Border", "scanType": "sideways",
	})
	if w.Code != http.StatusBadRequest {
		t.Fatalf("bad scanType: expected 400, got %d", w.Code)
	}
}

func TestFeeEstimate(t *testing.T) {
	e := newEnv(t)
	token := e.registerDriver(t, "d@example.com")

	w := e.do(t, http.MethodGet, "/fees/estimate?origin=Lusaka&destination=Harare", token, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("estimate: %d %s", w.Code, w.Body.String())
	}
	if got := dataField(t, w, "borderPost"); got != "Chirundu Border" {
		t.Fatalf("borderPost = %v", got)
	}

	w = e.do(t, http.MethodGet, "/fees/estimate?origin=Lusaka&destination=Atlantis", token, nil)
	if w.Code != http.StatusNotFound {
		t.Fatalf("unknown route: expected 404, got %d", w.Code)
	}
}

func TestAdminUsersStorageFailureIsServerError(t *testing.T) {
	e := newEnv(t)
	_, adminToken := e.seedStaff(t, "admin@example.com", entity.RoleAdmin)

	// sessions are stateless, so the token survives the table
	if err := e.db.Migrator().DropTable(&entity.User{}); err != nil {
		t.Fatalf("drop table: %v", err)
	}

	w := e.do(t, http.MethodGet, "/admin/users", adminToken, nil)
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d %s", w.Code, w.Body.String())
	}
	if got := decode(t, w)["error"]; got != "internal error" {
		t.Fatalf("internal detail leaked: %v", got)
	}
}
