package services

import (
	"context"
	"time"

	"ringside/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memCombatStore is an in-memory CombatStore used to exercise the service
// without a running database. Insertion order is preserved so pagination is
// deterministic.
type memCombatStore struct {
	combats map[primitive.ObjectID]*models.Combat
	order   []primitive.ObjectID
	users   map[primitive.ObjectID]models.User
	gyms    map[primitive.ObjectID]models.Gym
}

func newMemCombatStore() *memCombatStore {
	return &memCombatStore{
		combats: map[primitive.ObjectID]*models.Combat{},
		users:   map[primitive.ObjectID]models.User{},
		gyms:    map[primitive.ObjectID]models.Gym{},
	}
}

func (s *memCombatStore) addUser(u models.User) models.User {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	s.users[u.ID] = u
	return u
}

func (s *memCombatStore) addGym(g models.Gym) models.Gym {
	if g.ID.IsZero() {
		g.ID = primitive.NewObjectID()
	}
	s.gyms[g.ID] = g
	return g
}

func (s *memCombatStore) matches(c *models.Combat, f CombatFilter) bool {
	if f.Status != "" && c.Status != f.Status {
		return false
	}
	if f.Creator != nil && c.Creator != *f.Creator {
		return false
	}
	if f.Opponent != nil && c.Opponent != *f.Opponent {
		return false
	}
	if f.UserAny != nil && c.Creator != *f.UserAny && c.Opponent != *f.UserAny {
		return false
	}
	if f.Gym != nil && c.Gym != *f.Gym {
		return false
	}
	if f.VisibleOnly && c.IsHidden {
		return false
	}
	return true
}

func (s *memCombatStore) detail(c *models.Combat) models.CombatDetail {
	return models.CombatDetail{
		ID:        c.ID,
		Creator:   s.users[c.Creator],
		Opponent:  s.users[c.Opponent],
		Gym:       s.gyms[c.Gym],
		Date:      c.Date,
		Status:    c.Status,
		IsHidden:  c.IsHidden,
		CreatedAt: c.CreatedAt,
	}
}

func (s *memCombatStore) Insert(ctx context.Context, combat *models.Combat) error {
	if combat.ID.IsZero() {
		combat.ID = primitive.NewObjectID()
	}
	stored := *combat
	s.combats[combat.ID] = &stored
	s.order = append(s.order, combat.ID)
	return nil
}

func (s *memCombatStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Combat, error) {
	c, ok := s.combats[id]
	if !ok {
		return nil, nil
	}
	copied := *c
	return &copied, nil
}

func (s *memCombatStore) FindDetailByID(ctx context.Context, id primitive.ObjectID) (*models.CombatDetail, error) {
	c, ok := s.combats[id]
	if !ok {
		return nil, nil
	}
	d := s.detail(c)
	return &d, nil
}

func (s *memCombatStore) FindDetail(ctx context.Context, filter CombatFilter) ([]models.CombatDetail, error) {
	details := []models.CombatDetail{}
	for _, id := range s.order {
		c, ok := s.combats[id]
		if ok && s.matches(c, filter) {
			details = append(details, s.detail(c))
		}
	}
	return details, nil
}

func (s *memCombatStore) FindPage(ctx context.Context, filter CombatFilter, skip, limit int64) ([]models.Combat, error) {
	matched := []models.Combat{}
	for _, id := range s.order {
		c, ok := s.combats[id]
		if ok && s.matches(c, filter) {
			matched = append(matched, *c)
		}
	}
	return pageOf(matched, skip, limit), nil
}

func (s *memCombatStore) FindDetailPage(ctx context.Context, filter CombatFilter, skip, limit int64) ([]models.CombatDetail, error) {
	all, err := s.FindDetail(ctx, filter)
	if err != nil {
		return nil, err
	}
	return pageOf(all, skip, limit), nil
}

func (s *memCombatStore) Count(ctx context.Context, filter CombatFilter) (int64, error) {
	var n int64
	for _, c := range s.combats {
		if s.matches(c, filter) {
			n++
		}
	}
	return n, nil
}

func (s *memCombatStore) SetFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, int64, error) {
	c, ok := s.combats[id]
	if !ok {
		return 0, 0, nil
	}
	var modified int64
	for key, value := range fields {
		switch key {
		case "status":
			if v := value.(string); c.Status != v {
				c.Status = v
				modified = 1
			}
		case "isHidden":
			if v := value.(bool); c.IsHidden != v {
				c.IsHidden = v
				modified = 1
			}
		case "opponent":
			if v := value.(primitive.ObjectID); c.Opponent != v {
				c.Opponent = v
				modified = 1
			}
		case "gym":
			if v := value.(primitive.ObjectID); c.Gym != v {
				c.Gym = v
				modified = 1
			}
		case "date":
			if v := value.(time.Time); !c.Date.Equal(v) {
				c.Date = v
				modified = 1
			}
		}
	}
	return 1, modified, nil
}

func (s *memCombatStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := s.combats[id]; !ok {
		return 0, nil
	}
	delete(s.combats, id)
	for i, oid := range s.order {
		if oid == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return 1, nil
}

func pageOf[T any](items []T, skip, limit int64) []T {
	if skip >= int64(len(items)) {
		return []T{}
	}
	end := skip + limit
	if end > int64(len(items)) {
		end = int64(len(items))
	}
	return items[skip:end]
}

// memGymStore is an in-memory GymStore
type memGymStore struct {
	gyms  map[primitive.ObjectID]*models.Gym
	order []primitive.ObjectID
}

func newMemGymStore() *memGymStore {
	return &memGymStore{gyms: map[primitive.ObjectID]*models.Gym{}}
}

func (s *memGymStore) Insert(ctx context.Context, gym *models.Gym) error {
	if gym.ID.IsZero() {
		gym.ID = primitive.NewObjectID()
	}
	stored := *gym
	s.gyms[gym.ID] = &stored
	s.order = append(s.order, gym.ID)
	return nil
}

func (s *memGymStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Gym, error) {
	g, ok := s.gyms[id]
	if !ok {
		return nil, nil
	}
	copied := *g
	return &copied, nil
}

func (s *memGymStore) FindByEmail(ctx context.Context, email string) (*models.Gym, error) {
	for _, id := range s.order {
		if g, ok := s.gyms[id]; ok && g.Email == email {
			copied := *g
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *memGymStore) FindPage(ctx context.Context, visibleOnly bool, skip, limit int64) ([]models.Gym, error) {
	matched := []models.Gym{}
	for _, id := range s.order {
		if g, ok := s.gyms[id]; ok && (!visibleOnly || !g.IsHidden) {
			matched = append(matched, *g)
		}
	}
	return pageOf(matched, skip, limit), nil
}

func (s *memGymStore) Count(ctx context.Context, visibleOnly bool) (int64, error) {
	var n int64
	for _, g := range s.gyms {
		if !visibleOnly || !g.IsHidden {
			n++
		}
	}
	return n, nil
}

func (s *memGymStore) SetFields(ctx context.Context, id primitive.ObjectID, fields bson.M) (int64, int64, error) {
	g, ok := s.gyms[id]
	if !ok {
		return 0, 0, nil
	}
	var modified int64
	for key, value := range fields {
		switch key {
		case "name":
			g.Name = value.(string)
		case "place":
			g.Place = value.(string)
		case "price":
			g.Price = value.(float64)
		case "email":
			g.Email = value.(string)
		case "phone":
			g.Phone = value.(string)
		case "password":
			g.Password = value.(string)
		case "isHidden":
			g.IsHidden = value.(bool)
		}
		modified = 1
	}
	return 1, modified, nil
}

func (s *memGymStore) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	if _, ok := s.gyms[id]; !ok {
		return 0, nil
	}
	delete(s.gyms, id)
	return 1, nil
}

// memRatingStore is an in-memory RatingStore
type memRatingStore struct {
	ratings []models.Rating
}

func (s *memRatingStore) Insert(ctx context.Context, rating *models.Rating) error {
	if rating.ID.IsZero() {
		rating.ID = primitive.NewObjectID()
	}
	s.ratings = append(s.ratings, *rating)
	return nil
}

func (s *memRatingStore) FindByCombat(ctx context.Context, combatID primitive.ObjectID) ([]models.Rating, error) {
	out := []models.Rating{}
	for _, r := range s.ratings {
		if r.Combat == combatID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *memRatingStore) FindForUser(ctx context.Context, userID primitive.ObjectID) ([]models.Rating, error) {
	out := []models.Rating{}
	for _, r := range s.ratings {
		if r.To == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

// memUserStore is an in-memory UserStore
type memUserStore struct {
	users map[primitive.ObjectID]*models.User
	order []primitive.ObjectID
}

func newMemUserStore() *memUserStore {
	return &memUserStore{users: map[primitive.ObjectID]*models.User{}}
}

func (s *memUserStore) Insert(ctx context.Context, user *models.User) error {
	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	stored := *user
	s.users[user.ID] = &stored
	s.order = append(s.order, user.ID)
	return nil
}

func (s *memUserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *u
	return &copied, nil
}

func (s *memUserStore) FindPage(ctx context.Context, visibleOnly bool, skip, limit int64) ([]models.User, error) {
	matched := []models.User{}
	for _, id := range s.order {
		if u, ok := s.users[id]; ok && (!visibleOnly || !u.IsHidden) {
			matched = append(matched, *u)
		}
	}
	return pageOf(matched, skip, limit), nil
}

func (s *memUserStore) Count(ctx context.Context, visibleOnly bool) (int64, error) {
	var n int64
	for _, u := range s.users {
		if !visibleOnly || !u.IsHidden {
			n++
		}
	}
	return n, nil
}
