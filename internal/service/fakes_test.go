package service

import (
	"context"
	"sync"

	"petmedia-be/internal/entity"
	"petmedia-be/internal/repository/contract"
	"petmedia-be/internal/repository/specification"
	"petmedia-be/internal/repository/unitofwork"

	"github.com/google/uuid"
)

// In-memory repository fakes. Specifications are interpreted by type
// switch, covering the ones the services actually use.

type nopLogger struct{}

func (nopLogger) Debug(module, message string, details map[string]interface{}) {}
func (nopLogger) Info(module, message string, details map[string]interface{})  {}
func (nopLogger) Warn(module, message string, details map[string]interface{})  {}
func (nopLogger) Error(module, message string, details map[string]interface{}) {}
func (nopLogger) Sync() error                                                  { return nil }

type fakeUserRepo struct {
	mu    sync.Mutex
	users map[uuid.UUID]*entity.User
	err   error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (r *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *user
	r.users[user.Id] = &cp
	return nil
}

func (r *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	return r.Create(ctx, user)
}

func (r *fakeUserRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.users, id)
	return nil
}

func (r *fakeUserRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range specs {
		switch s := spec.(type) {
		case specification.ByID:
			if u, ok := r.users[s.ID]; ok {
				cp := *u
				return &cp, nil
			}
			return nil, nil
		case specification.ByEmail:
			for _, u := range r.users {
				if u.Email == s.Email {
					cp := *u
					return &cp, nil
				}
			}
			return nil, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.User, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		result = append(result, &cp)
	}
	return result, nil
}

func (r *fakeUserRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.users)), nil
}

type fakeThreadRepo struct {
	mu      sync.Mutex
	threads map[string]*entity.Thread
	upserts int
	err     error
}

func newFakeThreadRepo() *fakeThreadRepo {
	return &fakeThreadRepo{threads: make(map[string]*entity.Thread)}
}

func (r *fakeThreadRepo) Upsert(ctx context.Context, thread *entity.Thread) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.upserts++
	cp := *thread
	r.threads[thread.Id] = &cp
	return nil
}

func (r *fakeThreadRepo) Update(ctx context.Context, thread *entity.Thread) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *thread
	r.threads[thread.Id] = &cp
	return nil
}

func (r *fakeThreadRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Thread, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range specs {
		if s, ok := spec.(specification.ThreadByID); ok {
			if t, found := r.threads[s.ID]; found {
				cp := *t
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeThreadRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Thread, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Thread, 0, len(r.threads))
	for _, t := range r.threads {
		keep := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ParticipantOf); ok {
				if !t.HasParticipant(s.UserID) {
					keep = false
				}
			}
		}
		if keep {
			cp := *t
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *fakeThreadRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.threads)), nil
}

type fakeMessageRepo struct {
	mu       sync.Mutex
	messages map[uuid.UUID]*entity.Message
	err      error
}

func newFakeMessageRepo() *fakeMessageRepo {
	return &fakeMessageRepo{messages: make(map[uuid.UUID]*entity.Message)}
}

func (r *fakeMessageRepo) Create(ctx context.Context, message *entity.Message) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *message
	r.messages[message.Id] = &cp
	return nil
}

func (r *fakeMessageRepo) UpdateReadBy(ctx context.Context, message *entity.Message) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.messages[message.Id]; ok {
		existing.ReadBy = append([]string(nil), message.ReadBy...)
	}
	return nil
}

func (r *fakeMessageRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Message, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range specs {
		if s, ok := spec.(specification.ByID); ok {
			if m, found := r.messages[s.ID]; found {
				cp := *m
				cp.ReadBy = append([]string(nil), m.ReadBy...)
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeMessageRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Message, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Message, 0, len(r.messages))
	for _, m := range r.messages {
		keep := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByThreadID); ok {
				if m.ThreadId != s.ThreadID {
					keep = false
				}
			}
		}
		if keep {
			cp := *m
			cp.ReadBy = append([]string(nil), m.ReadBy...)
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *fakeMessageRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.messages)), nil
}

type fakePetRepo struct {
	mu   sync.Mutex
	pets map[uuid.UUID]*entity.Pet
}

func newFakePetRepo() *fakePetRepo {
	return &fakePetRepo{pets: make(map[uuid.UUID]*entity.Pet)}
}

func (r *fakePetRepo) Create(ctx context.Context, pet *entity.Pet) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *pet
	r.pets[pet.Id] = &cp
	return nil
}

func (r *fakePetRepo) Update(ctx context.Context, pet *entity.Pet) error {
	return r.Create(ctx, pet)
}

func (r *fakePetRepo) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.pets, id)
	return nil
}

func (r *fakePetRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range specs {
		if s, ok := spec.(specification.ByID); ok {
			if p, found := r.pets[s.ID]; found {
				cp := *p
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *fakePetRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Pet, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.Pet, 0, len(r.pets))
	for _, p := range r.pets {
		keep := true
		for _, spec := range specs {
			switch s := spec.(type) {
			case specification.ByOwner:
				if p.OwnerId != s.OwnerID {
					keep = false
				}
			case specification.BySpecies:
				if p.Species != s.Species {
					keep = false
				}
			case specification.ByIDs:
				found := false
				for _, id := range s.IDs {
					if p.Id == id {
						found = true
					}
				}
				if !found {
					keep = false
				}
			}
		}
		if keep {
			cp := *p
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *fakePetRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.pets)), nil
}

type fakeMapSpotRepo struct {
	mu    sync.Mutex
	spots map[uuid.UUID]*entity.MapSpot
	err   error
}

func newFakeMapSpotRepo() *fakeMapSpotRepo {
	return &fakeMapSpotRepo{spots: make(map[uuid.UUID]*entity.MapSpot)}
}

func (r *fakeMapSpotRepo) Create(ctx context.Context, spot *entity.MapSpot) error {
	if r.err != nil {
		return r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *spot
	r.spots[spot.Id] = &cp
	return nil
}

func (r *fakeMapSpotRepo) Update(ctx context.Context, spot *entity.MapSpot) error {
	return r.Create(ctx, spot)
}

func (r *fakeMapSpotRepo) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.MapSpot, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, spec := range specs {
		if s, ok := spec.(specification.ByID); ok {
			if spot, found := r.spots[s.ID]; found {
				cp := *spot
				return &cp, nil
			}
		}
	}
	return nil, nil
}

func (r *fakeMapSpotRepo) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.MapSpot, error) {
	if r.err != nil {
		return nil, r.err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]*entity.MapSpot, 0, len(r.spots))
	for _, spot := range r.spots {
		keep := true
		for _, spec := range specs {
			if s, ok := spec.(specification.ByCreator); ok {
				if spot.CreatorId != s.CreatorID {
					keep = false
				}
			}
		}
		if keep {
			cp := *spot
			result = append(result, &cp)
		}
	}
	return result, nil
}

func (r *fakeMapSpotRepo) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return int64(len(r.spots)), nil
}

type fakeUnitOfWork struct {
	users    *fakeUserRepo
	threads  *fakeThreadRepo
	messages *fakeMessageRepo
	pets     *fakePetRepo
	spots    *fakeMapSpotRepo
}

func newFakeUnitOfWork() *fakeUnitOfWork {
	return &fakeUnitOfWork{
		users:    newFakeUserRepo(),
		threads:  newFakeThreadRepo(),
		messages: newFakeMessageRepo(),
		pets:     newFakePetRepo(),
		spots:    newFakeMapSpotRepo(),
	}
}

func (u *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (u *fakeUnitOfWork) Commit() error                   { return nil }
func (u *fakeUnitOfWork) Rollback() error                 { return nil }

func (u *fakeUnitOfWork) UserRepository() contract.UserRepository       { return u.users }
func (u *fakeUnitOfWork) ThreadRepository() contract.ThreadRepository   { return u.threads }
func (u *fakeUnitOfWork) MessageRepository() contract.MessageRepository { return u.messages }
func (u *fakeUnitOfWork) PetRepository() contract.PetRepository         { return u.pets }
func (u *fakeUnitOfWork) MapSpotRepository() contract.MapSpotRepository { return u.spots }

type fakeUowFactory struct {
	uow *fakeUnitOfWork
}

func newFakeUowFactory() *fakeUowFactory {
	return &fakeUowFactory{uow: newFakeUnitOfWork()}
}

func (f *fakeUowFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return f.uow
}

// fakeLiveSync records change notifications.
type fakeLiveSync struct {
	mu             sync.Mutex
	threadsChanged []string
	mapChanges     int
}

func (f *fakeLiveSync) SubscribeThreadMessages(ctx context.Context, threadId string, onChange ThreadSnapshotHandler, onError ErrorHandler) (func(), error) {
	return func() {}, nil
}

func (f *fakeLiveSync) SubscribeMapSpots(ctx context.Context, onChange MapSnapshotHandler, onError ErrorHandler) (func(), error) {
	return func() {}, nil
}

func (f *fakeLiveSync) NotifyThreadChanged(threadId string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.threadsChanged = append(f.threadsChanged, threadId)
}

func (f *fakeLiveSync) NotifyMapChanged() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mapChanges++
}

func (f *fakeLiveSync) Close() error { return nil }
