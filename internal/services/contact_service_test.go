package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stayfinder/stayfinder-api/internal/models"
)

func contactFixtures() (*fakeContactStore, *ContactService) {
	contacts := &fakeContactStore{}
	properties := &fakePropertyStore{properties: []models.Property{
		{ID: "p1", Type: "1 BHK", Price: 18000},
	}}
	return contacts, NewContactService(contacts, properties)
}

func TestContactCreate_Validation(t *testing.T) {
	_, svc := contactFixtures()

	_, err := svc.Create("", "999", "p1")
	assert.ErrorIs(t, err, ErrMissingContactFields)

	_, err = svc.Create("Al", "999", "unknown")
	assert.ErrorIs(t, err, ErrInvalidPropertyID)
}

func TestContactCreate_TrimsAndStores(t *testing.T) {
	contacts, svc := contactFixtures()

	request, err := svc.Create("  Al  ", " 999-111 ", "p1")
	require.NoError(t, err)
	assert.Equal(t, "Al", request.Name)
	assert.Equal(t, "999-111", request.Phone)
	assert.Equal(t, "p1", request.PropertyID)
	assert.NotEmpty(t, request.ID)
	assert.Len(t, contacts.requests, 1)
}

func TestContactList_NewestFirst(t *testing.T) {
	contacts, svc := contactFixtures()

	now := time.Now()
	contacts.requests = []models.ContactRequest{
		{ID: "c1", CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "c2", CreatedAt: now},
		{ID: "c3", CreatedAt: now.Add(-1 * time.Hour)},
	}

	listed, err := svc.List()
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, []string{"c2", "c3", "c1"}, []string{listed[0].ID, listed[1].ID, listed[2].ID})
}
