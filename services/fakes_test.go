package services

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"gorm.io/datatypes"

	"property-pulse-server/models"
)

// In-memory store fakes implementing the collaborator interfaces.

type fakeUserStore struct {
	users map[uint]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	f := &fakeUserStore{users: make(map[uint]*models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) UserByID(id uint) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) UpdateBookmarks(id uint, bookmarks datatypes.JSON) error {
	u, ok := f.users[id]
	if !ok {
		return ErrNotFound
	}
	u.Bookmarks = bookmarks
	return nil
}

type fakePropertyStore struct {
	properties  map[uint]*models.Property
	searchedFor []SearchInput
}

func newFakePropertyStore(properties ...*models.Property) *fakePropertyStore {
	f := &fakePropertyStore{properties: make(map[uint]*models.Property)}
	for _, p := range properties {
		f.properties[p.ID] = p
	}
	return f
}

func (f *fakePropertyStore) PropertyByID(id uint) (*models.Property, error) {
	p, ok := f.properties[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (f *fakePropertyStore) PropertiesByIDs(ids []uint) ([]models.Property, error) {
	var out []models.Property
	// Deliberately not in request order: the service re-sequences.
	seen := make(map[uint]bool)
	for _, id := range ids {
		if p, ok := f.properties[id]; ok && !seen[id] {
			seen[id] = true
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (f *fakePropertyStore) Delete(property *models.Property) error {
	if _, ok := f.properties[property.ID]; !ok {
		return ErrNotFound
	}
	delete(f.properties, property.ID)
	return nil
}

func (f *fakePropertyStore) Search(input SearchInput) ([]models.Property, error) {
	f.searchedFor = append(f.searchedFor, input)
	var out []models.Property
	needle := strings.ToLower(input.Location)
	for _, p := range f.properties {
		haystack := strings.ToLower(strings.Join([]string{
			p.Name, p.Description, p.Street, p.City, p.State, p.Zipcode,
		}, " "))
		if !strings.Contains(haystack, needle) {
			continue
		}
		if input.PropertyType != "" &&
			!strings.Contains(strings.ToLower(p.PropertyType), strings.ToLower(input.PropertyType)) {
			continue
		}
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

type fakeMessageStore struct {
	nextID        uint
	messages      []*models.Message
	usernames     map[uint]string
	propertyNames map[uint]string
}

func newFakeMessageStore() *fakeMessageStore {
	return &fakeMessageStore{
		usernames:     make(map[uint]string),
		propertyNames: make(map[uint]string),
	}
}

func (f *fakeMessageStore) Create(message *models.Message) error {
	f.nextID++
	message.ID = f.nextID
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}
	cp := *message
	f.messages = append(f.messages, &cp)
	return nil
}

func (f *fakeMessageStore) InboxPartition(recipientID uint, read bool) ([]models.Message, error) {
	var out []models.Message
	for _, m := range f.messages {
		if m.RecipientID != recipientID || m.Read != read {
			continue
		}
		cp := *m
		// Narrow projection of the related records, like the real store.
		cp.Sender = models.User{Username: f.usernames[m.SenderID]}
		cp.Sender.ID = m.SenderID
		cp.Property = models.Property{Name: f.propertyNames[m.PropertyID]}
		cp.Property.ID = m.PropertyID
		out = append(out, cp)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeMessageStore) MessageByID(id uint) (*models.Message, error) {
	for _, m := range f.messages {
		if m.ID == id {
			cp := *m
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeMessageStore) SetRead(id uint, read bool) error {
	for _, m := range f.messages {
		if m.ID == id {
			m.Read = read
			return nil
		}
	}
	return ErrNotFound
}

func (f *fakeMessageStore) CountUnread(recipientID uint) (int64, error) {
	var count int64
	for _, m := range f.messages {
		if m.RecipientID == recipientID && !m.Read {
			count++
		}
	}
	return count, nil
}

type fakeImageStore struct {
	deleted []string
	failFor map[string]error
}

func newFakeImageStore() *fakeImageStore {
	return &fakeImageStore{failFor: make(map[string]error)}
}

func (f *fakeImageStore) DeleteImage(imageURL string) error {
	if err, ok := f.failFor[imageURL]; ok {
		return err
	}
	f.deleted = append(f.deleted, imageURL)
	return nil
}

type fakePageCache struct {
	invalidated []string
}

func (f *fakePageCache) Invalidate(path string, scope string) {
	f.invalidated = append(f.invalidated, fmt.Sprintf("%s:%s", scope, path))
}
