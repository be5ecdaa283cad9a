package services_test

import (
	"fmt"
	"testing"

	"github.com/isdelr/bloglist-be/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateAndGetRecent(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEventService(db, nil)

	require.NoError(t, svc.CreateEvent("blog_created", "info", "New blog created: Go Proverbs"))

	events, err := svc.GetRecentEvents(20)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "blog_created", events[0].Type)
	assert.Equal(t, "info", events[0].Level)
	assert.Equal(t, "New blog created: Go Proverbs", events[0].Message)
}

func TestEventService_GetRecentEvents_Limit(t *testing.T) {
	db := newTestDB(t)
	svc := services.NewEventService(db, nil)

	for i := 0; i < 5; i++ {
		require.NoError(t, svc.CreateEvent("user_login", "info", fmt.Sprintf("login %d", i)))
	}

	events, err := svc.GetRecentEvents(3)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestEventService_RecordedBySiblingServices(t *testing.T) {
	db := newTestDB(t)
	eventSvc := services.NewEventService(db, nil)
	users := services.NewUserService(db, eventSvc)

	_, err := users.CreateUser("root", "Superuser", "secretpassword")
	require.NoError(t, err)

	events, err := eventSvc.GetRecentEvents(20)
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "user_registered", events[0].Type)
}
