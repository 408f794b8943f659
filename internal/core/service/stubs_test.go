package service

import (
	"context"
	"sort"
	"time"

	"github.com/portalteam/client-portal/internal/core/domain"
	"github.com/portalteam/client-portal/internal/core/ports"
)

// stubIdentityStore keeps identities in memory. Creating an identity
// also registers a default-role profile in the linked profile stub,
// matching the store-trigger contract of the real repository.
type stubIdentityStore struct {
	byID        map[string]*domain.Identity
	profiles    *stubProfileStore
	createErr   error
	passwordErr error
	deleteErr   error
}

func newStubIdentityStore(profiles *stubProfileStore) *stubIdentityStore {
	return &stubIdentityStore{byID: make(map[string]*domain.Identity), profiles: profiles}
}

func cloneIdentity(i *domain.Identity) *domain.Identity {
	if i == nil {
		return nil
	}
	clone := *i
	return &clone
}

func (s *stubIdentityStore) Create(_ context.Context, identity *domain.Identity) (*domain.Identity, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	for _, existing := range s.byID {
		if existing.Email == identity.Email {
			return nil, domain.ErrIdentityExists
		}
	}
	s.byID[identity.ID] = cloneIdentity(identity)
	if s.profiles != nil {
		s.profiles.roles[identity.ID] = domain.RoleClient
		s.profiles.emails[identity.Email] = identity.ID
	}
	return cloneIdentity(identity), nil
}

func (s *stubIdentityStore) FindByEmail(_ context.Context, email string) (*domain.Identity, error) {
	for _, i := range s.byID {
		if i.Email == email {
			return cloneIdentity(i), nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubIdentityStore) FindByID(_ context.Context, id string) (*domain.Identity, error) {
	if i, ok := s.byID[id]; ok {
		return cloneIdentity(i), nil
	}
	return nil, domain.ErrNotFound
}

func (s *stubIdentityStore) UpdatePassword(_ context.Context, id, passwordHash string) error {
	if s.passwordErr != nil {
		return s.passwordErr
	}
	i, ok := s.byID[id]
	if !ok {
		return domain.ErrNotFound
	}
	i.PasswordHash = passwordHash
	return nil
}

func (s *stubIdentityStore) Delete(_ context.Context, id string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	if _, ok := s.byID[id]; !ok {
		return domain.ErrNotFound
	}
	delete(s.byID, id)
	return nil
}

type stubProfileStore struct {
	roles      map[string]string // identity id → role
	emails     map[string]string // email → identity id
	findErr    error
	roleErr    error
	setRoleErr error
	deleteErr  error
}

func newStubProfileStore() *stubProfileStore {
	return &stubProfileStore{roles: make(map[string]string), emails: make(map[string]string)}
}

func (s *stubProfileStore) FindByEmail(_ context.Context, email string) (*domain.Profile, error) {
	if s.findErr != nil {
		return nil, s.findErr
	}
	id, ok := s.emails[email]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &domain.Profile{IdentityID: id, Email: email, Role: s.roles[id]}, nil
}

func (s *stubProfileStore) Role(_ context.Context, identityID string) (string, error) {
	if s.roleErr != nil {
		return "", s.roleErr
	}
	role, ok := s.roles[identityID]
	if !ok {
		return "", domain.ErrNotFound
	}
	return role, nil
}

func (s *stubProfileStore) SetRole(_ context.Context, identityID, role string) error {
	if s.setRoleErr != nil {
		return s.setRoleErr
	}
	s.roles[identityID] = role
	return nil
}

func (s *stubProfileStore) Delete(_ context.Context, identityID string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	for email, id := range s.emails {
		if id == identityID {
			delete(s.emails, email)
		}
	}
	delete(s.roles, identityID)
	return nil
}

type stubClientStore struct {
	records   []domain.ClientRecord
	insertErr error
	updateErr error
	deleteErr error
	listErr   error
}

func (s *stubClientStore) Insert(_ context.Context, record *domain.ClientRecord) (*domain.ClientRecord, error) {
	if s.insertErr != nil {
		return nil, s.insertErr
	}
	s.records = append(s.records, *record)
	return record, nil
}

func (s *stubClientStore) FindByEmail(_ context.Context, email string) (*domain.ClientRecord, error) {
	for i := range s.records {
		if s.records[i].Email == email {
			rec := s.records[i]
			return &rec, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s *stubClientStore) Update(_ context.Context, email string, patch ports.ClientPatch) error {
	if s.updateErr != nil {
		return s.updateErr
	}
	for i := range s.records {
		if s.records[i].Email == email {
			if patch.Name != "" {
				s.records[i].Name = patch.Name
			}
			if patch.BusinessName != "" {
				s.records[i].BusinessName = patch.BusinessName
			}
			return nil
		}
	}
	return domain.ErrNotFound
}

func (s *stubClientStore) DeleteByEmail(_ context.Context, email string) error {
	if s.deleteErr != nil {
		return s.deleteErr
	}
	kept := s.records[:0]
	for _, r := range s.records {
		if r.Email != email {
			kept = append(kept, r)
		}
	}
	s.records = kept
	return nil
}

func (s *stubClientStore) List(_ context.Context) ([]domain.ClientRecord, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	out := make([]domain.ClientRecord, len(s.records))
	copy(out, s.records)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type stubSessionStore struct {
	tokens    map[string]string // refresh token → identity id
	saveErr   error
	lookupErr error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{tokens: make(map[string]string)}
}

func (s *stubSessionStore) SaveRefreshToken(_ context.Context, token, identityID string, _ time.Duration) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.tokens[token] = identityID
	return nil
}

func (s *stubSessionStore) IdentityForRefreshToken(_ context.Context, token string) (string, error) {
	if s.lookupErr != nil {
		return "", s.lookupErr
	}
	id, ok := s.tokens[token]
	if !ok {
		return "", domain.ErrUnauthorized
	}
	return id, nil
}

func (s *stubSessionStore) DeleteRefreshToken(_ context.Context, token string) error {
	delete(s.tokens, token)
	return nil
}

type welcomeCall struct {
	to, name, business, role string
}

type stubNotifier struct {
	sendErr  error
	welcomes []welcomeCall
}

func (s *stubNotifier) Send(_ context.Context, to, subject, html string) (*ports.SendResult, error) {
	if s.sendErr != nil {
		return nil, s.sendErr
	}
	return &ports.SendResult{Provider: "Simulation", Timestamp: time.Now()}, nil
}

func (s *stubNotifier) SendWelcome(_ context.Context, to, name, businessName, role string) (*ports.SendResult, error) {
	if s.sendErr != nil {
		return nil, s.sendErr
	}
	s.welcomes = append(s.welcomes, welcomeCall{to: to, name: name, business: businessName, role: role})
	return &ports.SendResult{Provider: "Simulation", Timestamp: time.Now()}, nil
}

type stubResolver struct {
	caller *domain.Caller
	err    error
}

func (s *stubResolver) Resolve(_ context.Context, _ string) (*domain.Caller, error) {
	return s.caller, s.err
}
