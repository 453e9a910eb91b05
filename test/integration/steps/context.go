// Package steps provides step definitions for BDD integration tests.
package steps

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"github.com/owner-portal/backend/config"
	"github.com/owner-portal/backend/internal/infra/dependency"
	"github.com/owner-portal/backend/internal/integration/persistence/model"
	"github.com/owner-portal/backend/test/integration/mock"
)

const testJWTSecret = "test-jwt-secret-key-for-testing-purposes"

type testContext struct {
	server   *httptest.Server
	client   *http.Client
	injector *dependency.Injector
	headers  map[string]string
	response *response

	db       *mock.Db
	timeMock *mock.Time

	accessToken     string
	ownerID         uuid.UUID
	propertyID      uuid.UUID
	otherPropertyID uuid.UUID
}

type response struct {
	status int
	body   any
}

// InitializeTestSuite sets up resources before any scenarios run.
func InitializeTestSuite(ctx *godog.TestSuiteContext) {
	ctx.BeforeSuite(func() {
		_ = os.Setenv("ENV", "test")
		_ = os.Setenv("JWT_SECRET", testJWTSecret)
		gin.SetMode(gin.TestMode)
	})
}

// InitializeScenario registers all step definitions.
func InitializeScenario(ctx *godog.ScenarioContext) {
	test := &testContext{
		client:   &http.Client{Timeout: 10 * time.Second},
		timeMock: mock.NewTime(),
		db: mock.NewDb(map[string]any{
			"properties":            &model.PropertyModel{},
			"short_term_bookings":   &model.ShortTermBookingModel{},
			"mid_term_leases":       &model.MidTermLeaseModel{},
			"reconciled_statements": &model.ReconciledStatementModel{},
		}),
	}

	ctx.Before(func(ctx context.Context, sc *godog.Scenario) (context.Context, error) {
		return ctx, test.before()
	})

	ctx.After(func(ctx context.Context, sc *godog.Scenario, err error) (context.Context, error) {
		if test.server != nil {
			test.server.Close()
		}
		return ctx, nil
	})

	// Background steps
	ctx.Given(`^the API server is running$`, test.theAPIServerIsRunning)
	ctx.Given(`^the current time is "([^"]*)"$`, test.theCurrentTimeIs)

	// Portfolio setup steps
	ctx.Given(`^I am logged in as the owner "([^"]*)"$`, test.iAmLoggedInAsTheOwner)
	ctx.Given(`^I own a property named "([^"]*)"$`, test.iOwnAPropertyNamed)
	ctx.Given(`^another owner has a property named "([^"]*)"$`, test.anotherOwnerHasAPropertyNamed)
	ctx.Given(`^the property has a booking from "([^"]*)" to "([^"]*)" totalling "([^"]*)" with status "([^"]*)"$`, test.thePropertyHasABooking)
	ctx.Given(`^the property has a booking from "([^"]*)" to "([^"]*)" without an amount$`, test.thePropertyHasABookingWithoutAmount)
	ctx.Given(`^the property has a lease from "([^"]*)" to "([^"]*)" with monthly rent "([^"]*)" and status "([^"]*)"$`, test.thePropertyHasALease)
	ctx.Given(`^the property has a statement for "([^"]*)" with revenue "([^"]*)", expenses "([^"]*)" and net "([^"]*)"$`, test.thePropertyHasAStatement)
	ctx.Given(`^the property has a statement for "([^"]*)" with revenue "([^"]*)", expenses "([^"]*)", net "([^"]*)" and actual net "([^"]*)"$`, test.thePropertyHasAStatementWithActualNet)
	ctx.Step(`^the property bookings are removed from the database$`, test.thePropertyBookingsAreRemoved)

	// Header steps
	ctx.Given(`^the header is empty$`, test.theHeaderIsEmpty)
	ctx.Given(`^the header contains the key "([^"]*)" with "([^"]*)"$`, test.theHeaderContainsTheKeyWith)

	// Request steps
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)"$`, test.iSendARequestTo)
	ctx.When(`^I send a "([^"]*)" request to "([^"]*)" with body:$`, test.iSendARequestToWithBody)

	// Response assertion steps
	ctx.Then(`^the response status should be (\d+)$`, test.theResponseStatusShouldBe)
	ctx.Then(`^the response should be JSON$`, test.theResponseShouldBeJSON)
	ctx.Then(`^the response should contain "([^"]*)"$`, test.theResponseShouldContain)
	ctx.Then(`^the response field "([^"]*)" should be "([^"]*)"$`, test.theResponseFieldShouldBe)
	ctx.Then(`^the response field "([^"]*)" should exist$`, test.theResponseFieldShouldExist)
	ctx.Then(`^the response field "([^"]*)" should be null$`, test.theResponseFieldShouldBeNull)
	ctx.Then(`^the response field "([^"]*)" should have (\d+) items$`, test.theResponseFieldShouldHaveItems)

	// Storage assertion steps
	ctx.Then(`^the db should contain (\d+) objects in the "([^"]*)" table$`, test.theDbShouldContainObjectsInTheTable)
	ctx.Then(`^the snapshot cache should hold the property$`, test.theSnapshotCacheShouldHoldTheProperty)
}

func (t *testContext) before() error {
	t.headers = make(map[string]string)
	t.response = nil
	t.accessToken = ""
	t.ownerID = uuid.Nil
	t.propertyID = uuid.Nil
	t.otherPropertyID = uuid.Nil
	t.timeMock.SetCurrentTime(time.Now())

	if err := t.db.ClearDB(); err != nil {
		return err
	}
	return mock.ClearRedis(mock.NewRedis())
}

func (t *testContext) theAPIServerIsRunning() error {
	cfg := config.Load()

	t.injector = dependency.NewInjector(cfg, t.db.DbConn, dependency.Options{
		RedisClient:        mock.NewRedis(),
		Clock:              t.timeMock,
		DBHealthChecker:    func() bool { return true },
		CacheHealthChecker: func() bool { return true },
	})
	t.server = httptest.NewServer(t.injector.Router.Setup("test"))
	return nil
}

func (t *testContext) theCurrentTimeIs(value string) error {
	now, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return err
	}
	t.timeMock.SetCurrentTime(now)
	return nil
}

func (t *testContext) iAmLoggedInAsTheOwner(email string) error {
	if t.injector == nil {
		return errors.New("the API server is not running")
	}

	t.ownerID = uuid.New()
	token, err := t.injector.TokenService.GenerateAccessToken(context.Background(), t.ownerID, email)
	if err != nil {
		return err
	}
	t.accessToken = token
	return nil
}

func (t *testContext) iOwnAPropertyNamed(name string) error {
	if t.ownerID == uuid.Nil {
		return errors.New("no owner is logged in")
	}

	id, err := t.createProperty(t.ownerID, name)
	if err != nil {
		return err
	}
	t.propertyID = id
	return nil
}

func (t *testContext) anotherOwnerHasAPropertyNamed(name string) error {
	id, err := t.createProperty(uuid.New(), name)
	if err != nil {
		return err
	}
	t.otherPropertyID = id
	return nil
}

func (t *testContext) createProperty(ownerID uuid.UUID, name string) (uuid.UUID, error) {
	now := time.Now().UTC()
	property := &model.PropertyModel{
		ID:              uuid.New(),
		OwnerID:         ownerID,
		Name:            name,
		Address:         "1 Test Street",
		ListingChannels: pq.StringArray{"airbnb", "direct"},
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := t.db.DbConn.Create(property).Error; err != nil {
		return uuid.Nil, err
	}
	return property.ID, nil
}

func (t *testContext) thePropertyHasABooking(checkIn, checkOut, amount, status string) error {
	total, err := decimal.NewFromString(amount)
	if err != nil {
		return err
	}
	return t.createBooking(checkIn, checkOut, &total, status)
}

func (t *testContext) thePropertyHasABookingWithoutAmount(checkIn, checkOut string) error {
	return t.createBooking(checkIn, checkOut, nil, "confirmed")
}

func (t *testContext) createBooking(checkIn, checkOut string, total *decimal.Decimal, status string) error {
	start, end, err := parseDateRange(checkIn, checkOut)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	booking := &model.ShortTermBookingModel{
		ID:          uuid.New(),
		PropertyID:  t.propertyID,
		GuestName:   "Test Guest",
		CheckIn:     &start,
		CheckOut:    &end,
		TotalAmount: total,
		Status:      status,
		Channel:     "airbnb",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return t.db.DbConn.Create(booking).Error
}

func (t *testContext) thePropertyHasALease(startDate, endDate, rent, status string) error {
	start, end, err := parseDateRange(startDate, endDate)
	if err != nil {
		return err
	}
	monthlyRent, err := decimal.NewFromString(rent)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	lease := &model.MidTermLeaseModel{
		ID:          uuid.New(),
		PropertyID:  t.propertyID,
		TenantName:  "Test Tenant",
		StartDate:   &start,
		EndDate:     &end,
		MonthlyRent: &monthlyRent,
		Status:      status,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	return t.db.DbConn.Create(lease).Error
}

func (t *testContext) thePropertyHasAStatement(period, revenue, expenses, net string) error {
	return t.createStatement(period, revenue, expenses, net, nil)
}

func (t *testContext) thePropertyHasAStatementWithActualNet(period, revenue, expenses, net, actualNet string) error {
	actual, err := decimal.NewFromString(actualNet)
	if err != nil {
		return err
	}
	return t.createStatement(period, revenue, expenses, net, &actual)
}

func (t *testContext) createStatement(period, revenue, expenses, net string, actualNet *decimal.Decimal) error {
	values := make([]decimal.Decimal, 3)
	for i, raw := range []string{revenue, expenses, net} {
		value, err := decimal.NewFromString(raw)
		if err != nil {
			return err
		}
		values[i] = value
	}

	now := time.Now().UTC()
	statement := &model.ReconciledStatementModel{
		ID:                uuid.New(),
		PropertyID:        t.propertyID,
		Period:            period,
		TotalRevenue:      values[0],
		TotalExpenses:     values[1],
		NetToOwner:        values[2],
		ActualNetEarnings: actualNet,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	return t.db.DbConn.Create(statement).Error
}

func (t *testContext) thePropertyBookingsAreRemoved() error {
	return t.db.DbConn.Where("property_id = ?", t.propertyID).Delete(&model.ShortTermBookingModel{}).Error
}

func parseDateRange(from, to string) (time.Time, time.Time, error) {
	start, err := time.Parse(model.DateLayout, from)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := time.Parse(model.DateLayout, to)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

func (t *testContext) theHeaderIsEmpty() error {
	t.headers = make(map[string]string)
	t.accessToken = "" // Clear access token to simulate unauthenticated request
	return nil
}

func (t *testContext) theHeaderContainsTheKeyWith(key, value string) error {
	t.headers[key] = value
	return nil
}

func (t *testContext) iSendARequestTo(method, path string) error {
	return t.executeRequest(method, t.replacePlaceholders(path), nil)
}

func (t *testContext) iSendARequestToWithBody(method, path string, body *godog.DocString) error {
	var payload []byte
	if body != nil && body.Content != "" {
		payload = []byte(t.replacePlaceholders(body.Content))
	}
	return t.executeRequest(method, t.replacePlaceholders(path), payload)
}

func (t *testContext) replacePlaceholders(content string) string {
	content = strings.ReplaceAll(content, "{{access_token}}", t.accessToken)
	content = strings.ReplaceAll(content, "{{property_id}}", t.propertyID.String())
	content = strings.ReplaceAll(content, "{{other_property_id}}", t.otherPropertyID.String())
	content = strings.ReplaceAll(content, "{{unknown_property_id}}", uuid.New().String())
	return content
}

func (t *testContext) executeRequest(method, path string, payload []byte) error {
	if t.server == nil {
		return errors.New("the API server is not running")
	}

	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, t.server.URL+path, body)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	if t.accessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.accessToken)
	}
	for key, value := range t.headers {
		req.Header.Set(key, value)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	t.response = &response{status: resp.StatusCode}

	var responseBody map[string]any
	if err := json.Unmarshal(bodyBytes, &responseBody); err != nil {
		t.response.body = string(bodyBytes)
	} else {
		t.response.body = responseBody
	}
	return nil
}

func (t *testContext) jsonBody() (map[string]any, error) {
	if t.response == nil {
		return nil, errors.New("no response received")
	}
	body, ok := t.response.body.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("response is not a JSON object: %v", t.response.body)
	}
	return body, nil
}

func (t *testContext) theResponseStatusShouldBe(expectedStatus int) error {
	if t.response == nil {
		return errors.New("no response received")
	}
	if t.response.status != expectedStatus {
		return fmt.Errorf("expected status %d, got %d (body: %v)", expectedStatus, t.response.status, t.response.body)
	}
	return nil
}

func (t *testContext) theResponseShouldBeJSON() error {
	_, err := t.jsonBody()
	return err
}

func (t *testContext) theResponseShouldContain(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if _, exists := body[field]; !exists {
		return fmt.Errorf("response does not contain field '%s': %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBe(field, expectedValue string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value, found := getFieldValue(body, field)
	if !found || value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}

	actualValue := fmt.Sprintf("%v", value)
	if actualValue != expectedValue {
		return fmt.Errorf("field '%s' expected '%s', got '%s'", field, expectedValue, actualValue)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldExist(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}
	if value, found := getFieldValue(body, field); !found || value == nil {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldBeNull(field string) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value, found := getFieldValue(body, field)
	if !found {
		return fmt.Errorf("field '%s' not found in response: %v", field, body)
	}
	if value != nil {
		return fmt.Errorf("field '%s' expected null, got %v", field, value)
	}
	return nil
}

func (t *testContext) theResponseFieldShouldHaveItems(field string, quantity int) error {
	body, err := t.jsonBody()
	if err != nil {
		return err
	}

	value, _ := getFieldValue(body, field)
	items, ok := value.([]any)
	if !ok {
		return fmt.Errorf("field '%s' is not a list: %v", field, value)
	}
	if len(items) != quantity {
		return fmt.Errorf("field '%s' expected %d items, got %d", field, quantity, len(items))
	}
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	entity, ok := t.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entityType := reflect.TypeOf(entity).Elem()
	entitySlicePtr := reflect.New(reflect.SliceOf(entityType))

	if err := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	count := entitySlicePtr.Elem().Len()
	if count != quantity {
		return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
	}
	return nil
}

func (t *testContext) theSnapshotCacheShouldHoldTheProperty() error {
	key := t.injector.Config.Redis.KeyPrefix + ":snapshot:" + t.propertyID.String()
	exists, err := mock.NewRedis().Exists(context.Background(), key).Result()
	if err != nil {
		return err
	}
	if exists != 1 {
		return fmt.Errorf("expected snapshot %s in cache", key)
	}
	return nil
}

// getFieldValue walks a dot separated path. Numeric segments index into lists.
func getFieldValue(object map[string]any, dotSeparatedField string) (any, bool) {
	var field any = object
	for _, currentField := range strings.Split(dotSeparatedField, ".") {
		if i, err := strconv.Atoi(currentField); err == nil {
			arr, ok := field.([]any)
			if !ok || i < 0 || i >= len(arr) {
				return nil, false
			}
			field = arr[i]
			continue
		}

		m, ok := field.(map[string]any)
		if !ok {
			return nil, false
		}
		value, exists := m[currentField]
		if !exists {
			return nil, false
		}
		field = value
	}
	return field, true
}
