package routes

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"tourguide/database/repository/memory"
	"tourguide/handlers"
	"tourguide/resolvers"
	"tourguide/services/booking"
	"tourguide/services/catalog"
	"tourguide/services/contact"
	"tourguide/services/user"
	"tourguide/utils"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

type testServer struct {
	router *gin.Engine
	hotels *memory.HotelRepo
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	tokens := utils.NewTokenStore(client)

	hotels, cabs, dests := memory.NewHotelRepo(), memory.NewCabRepo(), memory.NewDestinationRepo()
	resolver := resolvers.NewReferenceResolver(hotels, cabs, dests)

	users := user.NewUserService(memory.NewUserRepo(), tokens, time.Hour, []string{"admin@example.com"})
	users.HashCost = bcrypt.MinCost

	hb := &handlers.HandlerBundle{
		Tokens:   tokens,
		Bookings: handlers.NewBookingHandler(booking.NewBookingService(memory.NewBookingRepo(), resolver, nil)),
		Auth:     handlers.NewAuthHandler(users),
		Catalog:  handlers.NewCatalogHandler(catalog.NewCatalogService(dests, hotels, cabs, nil)),
		Contact:  handlers.NewContactHandler(contact.NewContactService(memory.NewContactRepo())),
		Health: &handlers.HealthHandler{Status: func() utils.HealthStatus {
			return utils.HealthStatus{Mongo: true, Redis: true, CheckedAt: time.Now()}
		}},
	}

	r := gin.New()
	RegisterRoutes(r, hb)
	return &testServer{router: r, hotels: hotels}
}

func (s *testServer) do(t *testing.T, method, path, token string, body interface{}) (int, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)

	var out map[string]interface{}
	if w.Body.Len() > 0 {
		_ = json.Unmarshal(w.Body.Bytes(), &out)
	}
	return w.Code, out
}

func (s *testServer) signup(t *testing.T, username, email string) (string, string) {
	t.Helper()
	code, body := s.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"username": username, "email": email, "password": "s3cret-pass",
	})
	require.Equal(t, http.StatusCreated, code, body)
	u := body["user"].(map[string]interface{})
	return body["token"].(string), u["id"].(string)
}

func bookingOf(t *testing.T, body map[string]interface{}) map[string]interface{} {
	t.Helper()
	b, ok := body["booking"].(map[string]interface{})
	require.True(t, ok, body)
	return b
}

func TestBookingScenarios(t *testing.T) {
	s := newTestServer(t)
	aliceToken, aliceID := s.signup(t, "alice", "alice@example.com")
	bobToken, _ := s.signup(t, "bob", "bob@example.com")
	adminToken, _ := s.signup(t, "admin", "admin@example.com")

	code, body := s.do(t, http.MethodPost, "/api/bookings", aliceToken, gin.H{
		"bookingType": "hotel", "hotelId": "H1", "cabId": "C9", "totalPrice": 5000,
		"ownerUserId": "someone-else", "bookingStatus": "completed",
	})
	require.Equal(t, http.StatusCreated, code, body)
	created := bookingOf(t, body)
	assert.Equal(t, "confirmed", created["bookingStatus"])
	assert.Equal(t, "pending", created["paymentStatus"])
	assert.Equal(t, aliceID, created["ownerUserId"])
	assert.Equal(t, "H1", created["hotelId"])
	assert.NotContains(t, created, "cabId")
	id := created["id"].(string)

	code, _ = s.do(t, http.MethodGet, "/api/bookings/"+id, bobToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, body = s.do(t, http.MethodGet, "/bookings/"+id, aliceToken, nil)
	require.Equal(t, http.StatusOK, code)
	detail := bookingOf(t, body)
	assert.Nil(t, detail["reference"])

	code, body = s.do(t, http.MethodPut, "/api/bookings/"+id, adminToken, gin.H{"bookingStatus": "cancelled"})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "cancelled", bookingOf(t, body)["bookingStatus"])

	code, body = s.do(t, http.MethodDelete, "/api/bookings/"+id, aliceToken, nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "cancelled", bookingOf(t, body)["bookingStatus"])

	code, body = s.do(t, http.MethodGet, "/api/bookings", aliceToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["bookings"], 1)

	code, body = s.do(t, http.MethodGet, "/api/bookings", bobToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, []interface{}{}, body["bookings"])
}

func TestBookingErrors(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.signup(t, "alice", "alice@example.com")

	code, body := s.do(t, http.MethodGet, "/api/bookings", "", nil)
	assert.Equal(t, http.StatusUnauthorized, code)
	assert.NotEmpty(t, body["message"])

	code, body = s.do(t, http.MethodPost, "/api/bookings", token, gin.H{"bookingType": "flight", "totalPrice": 100})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["details"], "bookingType")

	code, body = s.do(t, http.MethodPost, "/bookings", token, gin.H{"bookingType": "hotel", "hotelId": "H1", "totalPrice": -100})
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Contains(t, body["details"], "totalPrice")

	code, _ = s.do(t, http.MethodPost, "/api/bookings", token, "not an object")
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = s.do(t, http.MethodGet, "/api/bookings/6f1d2a8e-0d7b-4d8e-9a43-2f3c9c1b7e10", token, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestOwnerCancelsCompletedBooking(t *testing.T) {
	s := newTestServer(t)
	aliceToken, _ := s.signup(t, "alice", "alice@example.com")
	adminToken, _ := s.signup(t, "admin", "admin@example.com")

	code, body := s.do(t, http.MethodPost, "/api/bookings", aliceToken, gin.H{"bookingType": "cab", "cabId": "C1", "totalPrice": 80})
	require.Equal(t, http.StatusCreated, code, body)
	id := bookingOf(t, body)["id"].(string)

	code, body = s.do(t, http.MethodPut, "/api/bookings/"+id, adminToken, gin.H{"bookingStatus": "completed"})
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "completed", bookingOf(t, body)["bookingStatus"])

	code, body = s.do(t, http.MethodDelete, "/api/bookings/"+id, aliceToken, nil)
	require.Equal(t, http.StatusOK, code, body)
	assert.Equal(t, "cancelled", bookingOf(t, body)["bookingStatus"])
}

func TestLogoutRevokesToken(t *testing.T) {
	s := newTestServer(t)
	token, _ := s.signup(t, "alice", "alice@example.com")

	code, body := s.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "alice@example.com", body["user"].(map[string]interface{})["email"])

	code, _ = s.do(t, http.MethodPost, "/api/auth/logout", token, nil)
	require.Equal(t, http.StatusOK, code)

	code, _ = s.do(t, http.MethodGet, "/api/bookings", token, nil)
	assert.Equal(t, http.StatusUnauthorized, code)

	code, body = s.do(t, http.MethodPost, "/api/auth/login", "", gin.H{"email": "alice@example.com", "password": "s3cret-pass"})
	require.Equal(t, http.StatusOK, code)
	assert.NotEmpty(t, body["token"])
}

func TestCatalogWritesRequireAdmin(t *testing.T) {
	s := newTestServer(t)
	userToken, _ := s.signup(t, "alice", "alice@example.com")
	adminToken, _ := s.signup(t, "admin", "admin@example.com")

	hotel := gin.H{"name": "Lakeview", "location": "Nairobi", "pricePerNight": 120, "rating": 4.5,
		"rooms": gin.H{"available": 3, "total": 10}}

	code, _ := s.do(t, http.MethodPost, "/api/hotels", "", hotel)
	assert.Equal(t, http.StatusUnauthorized, code)
	code, _ = s.do(t, http.MethodPost, "/api/hotels", userToken, hotel)
	assert.Equal(t, http.StatusForbidden, code)

	code, body := s.do(t, http.MethodPost, "/api/hotels", adminToken, hotel)
	require.Equal(t, http.StatusCreated, code, body)
	hotelID := body["hotel"].(map[string]interface{})["id"].(string)

	code, body = s.do(t, http.MethodGet, "/api/hotels/search?location=nair", "", nil)
	require.Equal(t, http.StatusOK, code)
	assert.Len(t, body["hotels"], 1)

	code, body = s.do(t, http.MethodPost, "/api/bookings", userToken, gin.H{"bookingType": "hotel", "hotelId": hotelID, "totalPrice": 240})
	require.Equal(t, http.StatusCreated, code, body)
	id := bookingOf(t, body)["id"].(string)

	code, body = s.do(t, http.MethodGet, "/api/bookings/"+id, userToken, nil)
	require.Equal(t, http.StatusOK, code)
	ref, ok := bookingOf(t, body)["reference"].(map[string]interface{})
	require.True(t, ok, body)
	assert.Equal(t, "Lakeview", ref["name"])

	code, _ = s.do(t, http.MethodGet, "/api/cabs/filter?minPrice=abc", "", nil)
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestContactInbox(t *testing.T) {
	s := newTestServer(t)
	userToken, _ := s.signup(t, "alice", "alice@example.com")
	adminToken, _ := s.signup(t, "admin", "admin@example.com")

	code, body := s.do(t, http.MethodPost, "/api/contact", "", gin.H{
		"name": "Visitor", "email": "visitor@example.com", "subject": "Hi", "message": "Question",
	})
	require.Equal(t, http.StatusCreated, code, body)
	id := body["contact"].(map[string]interface{})["id"].(string)

	code, _ = s.do(t, http.MethodGet, "/api/contact", userToken, nil)
	assert.Equal(t, http.StatusForbidden, code)

	code, body = s.do(t, http.MethodPut, "/api/contact/"+id+"/read", adminToken, nil)
	require.Equal(t, http.StatusOK, code)
	assert.Equal(t, "read", body["contact"].(map[string]interface{})["status"])

	code, _ = s.do(t, http.MethodDelete, "/api/contact/"+id, adminToken, nil)
	assert.Equal(t, http.StatusOK, code)
	code, _ = s.do(t, http.MethodGet, "/api/contact/"+id, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, code)
}

func TestHealthAndMetrics(t *testing.T) {
	s := newTestServer(t)

	code, body := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "ok", body["status"])

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	code, _ = s.do(t, http.MethodGet, "/nowhere", "", nil)
	assert.Equal(t, http.StatusNotFound, code)
}

