package service_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"extremefit-api/internal/model"
	"extremefit-api/internal/repository"
	"extremefit-api/internal/service"
)

func newWebhookService(db *gorm.DB) service.WebhookService {
	return service.NewWebhookService(repository.NewUserRepo(db), repository.NewWebhookEventRepo(db))
}

func clerkPayload(eventType, clerkID, email, firstName string) []byte {
	return []byte(fmt.Sprintf(
		`{"type":%q,"data":{"id":%q,"first_name":%q,"last_name":"Doe","email_addresses":[{"email_address":%q}]}}`,
		eventType, clerkID, firstName, email,
	))
}

func TestClerkUserCreatedInsertsUser(t *testing.T) {
	db := setupTestDB(t)
	svc := newWebhookService(db)

	payload := clerkPayload(service.EventUserCreated, "user_abc", "jane@example.com", "Jane")
	require.NoError(t, svc.ProcessClerkEvent("msg_1", payload))

	var user model.User
	require.NoError(t, db.First(&user, "clerk_id = ?", "user_abc").Error)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.Equal(t, "Jane", user.FirstName)
}

func TestClerkUserCreatedMergesExistingEmail(t *testing.T) {
	db := setupTestDB(t)
	svc := newWebhookService(db)

	// A shopper row may exist before the identity provider first sees them
	existing := createTestUser(t, db, "jane@example.com")

	payload := clerkPayload(service.EventUserCreated, "user_abc", "jane@example.com", "Jane")
	require.NoError(t, svc.ProcessClerkEvent("msg_1", payload))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("email = ?", "jane@example.com").Count(&count).Error)
	assert.EqualValues(t, 1, count)

	var user model.User
	require.NoError(t, db.First(&user, "id = ?", existing.ID).Error)
	assert.Equal(t, "user_abc", user.ClerkID)
}

func TestClerkEventReplayIsNoOp(t *testing.T) {
	db := setupTestDB(t)
	svc := newWebhookService(db)

	created := clerkPayload(service.EventUserCreated, "user_abc", "jane@example.com", "Jane")
	require.NoError(t, svc.ProcessClerkEvent("msg_1", created))

	// Same message id again, even with different content, changes nothing
	updated := clerkPayload(service.EventUserUpdated, "user_abc", "jane@example.com", "Janet")
	require.NoError(t, svc.ProcessClerkEvent("msg_1", updated))

	var user model.User
	require.NoError(t, db.First(&user, "clerk_id = ?", "user_abc").Error)
	assert.Equal(t, "Jane", user.FirstName)
}

func TestClerkUserUpdated(t *testing.T) {
	db := setupTestDB(t)
	svc := newWebhookService(db)

	require.NoError(t, svc.ProcessClerkEvent("msg_1",
		clerkPayload(service.EventUserCreated, "user_abc", "jane@example.com", "Jane")))
	require.NoError(t, svc.ProcessClerkEvent("msg_2",
		clerkPayload(service.EventUserUpdated, "user_abc", "jane.doe@example.com", "Janet")))

	var user model.User
	require.NoError(t, db.First(&user, "clerk_id = ?", "user_abc").Error)
	assert.Equal(t, "jane.doe@example.com", user.Email)
	assert.Equal(t, "Janet", user.FirstName)
}

func TestClerkUserDeleted(t *testing.T) {
	db := setupTestDB(t)
	svc := newWebhookService(db)

	require.NoError(t, svc.ProcessClerkEvent("msg_1",
		clerkPayload(service.EventUserCreated, "user_abc", "jane@example.com", "Jane")))
	require.NoError(t, svc.ProcessClerkEvent("msg_2",
		clerkPayload(service.EventUserDeleted, "user_abc", "", "")))

	var count int64
	require.NoError(t, db.Model(&model.User{}).Where("clerk_id = ?", "user_abc").Count(&count).Error)
	assert.Zero(t, count)
}
