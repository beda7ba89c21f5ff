package services

import (
	"sort"

	"github.com/stayfinder/stayfinder-api/internal/models"
	"github.com/stayfinder/stayfinder-api/internal/store"
)

type fakeUserStore struct {
	users     []*models.User
	createErr error
}

func (f *fakeUserStore) Create(user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.users = append(f.users, user)
	return nil
}

func (f *fakeUserStore) GetByID(id string) (*models.User, error) {
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakeUserStore) GetByEmail(email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, store.ErrNotFound
}

type fakePropertyStore struct {
	properties []models.Property
	listCalls  int
	byIDsCalls int
}

func (f *fakePropertyStore) List(filter store.PropertyFilter) ([]models.Property, error) {
	f.listCalls++
	var result []models.Property
	for _, p := range f.properties {
		if filter.Type != "" && p.Type != filter.Type {
			continue
		}
		if filter.MaxPrice > 0 && p.Price > filter.MaxPrice {
			continue
		}
		result = append(result, p)
	}
	return result, nil
}

func (f *fakePropertyStore) GetByID(id string) (*models.Property, error) {
	for _, p := range f.properties {
		if p.ID == id {
			prop := p
			return &prop, nil
		}
	}
	return nil, store.ErrNotFound
}

func (f *fakePropertyStore) GetByIDs(ids []string) ([]models.Property, error) {
	f.byIDsCalls++
	var result []models.Property
	for _, p := range f.properties {
		for _, id := range ids {
			if p.ID == id {
				result = append(result, p)
				break
			}
		}
	}
	return result, nil
}

func (f *fakePropertyStore) Count() (int64, error) {
	return int64(len(f.properties)), nil
}

func (f *fakePropertyStore) CreateBatch(properties []models.Property) error {
	f.properties = append(f.properties, properties...)
	return nil
}

type fakeFavoriteStore struct {
	favorites []models.Favorite
}

func (f *fakeFavoriteStore) ListByUser(userID string) ([]models.Favorite, error) {
	var result []models.Favorite
	for _, fav := range f.favorites {
		if fav.UserID == userID {
			result = append(result, fav)
		}
	}
	return result, nil
}

func (f *fakeFavoriteStore) Upsert(favorite *models.Favorite) error {
	for i, fav := range f.favorites {
		if fav.UserID == favorite.UserID && fav.PropertyID == favorite.PropertyID {
			f.favorites[i].CreatedAt = favorite.CreatedAt
			return nil
		}
	}
	f.favorites = append(f.favorites, *favorite)
	return nil
}

func (f *fakeFavoriteStore) Delete(userID, propertyID string) error {
	for i, fav := range f.favorites {
		if fav.UserID == userID && fav.PropertyID == propertyID {
			f.favorites = append(f.favorites[:i], f.favorites[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeContactStore struct {
	requests []models.ContactRequest
}

func (f *fakeContactStore) Create(request *models.ContactRequest) error {
	f.requests = append(f.requests, *request)
	return nil
}

func (f *fakeContactStore) ListNewestFirst() ([]models.ContactRequest, error) {
	result := make([]models.ContactRequest, len(f.requests))
	copy(result, f.requests)
	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
