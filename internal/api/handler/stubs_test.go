package handler

import (
	"context"
	"time"

	"github.com/portalteam/client-portal/internal/core/domain"
	"github.com/portalteam/client-portal/internal/core/ports"
)

type stubAuthService struct {
	caller  *domain.Caller
	session *ports.Session
	err     error

	loginEmail    string
	loginPassword string
	refreshToken  string
}

func (s *stubAuthService) Login(_ context.Context, email, password string) (*domain.Caller, *ports.Session, error) {
	s.loginEmail = email
	s.loginPassword = password
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.caller, s.session, nil
}

func (s *stubAuthService) Refresh(_ context.Context, refreshToken string) (*domain.Caller, *ports.Session, error) {
	s.refreshToken = refreshToken
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.caller, s.session, nil
}

func (s *stubAuthService) Resolve(_ context.Context, _ string) (*domain.Caller, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.caller, nil
}

type stubProvisioningService struct {
	result *ports.CreateAccountResult
	err    error

	authz ports.Authorizer
	input ports.CreateAccountInput
}

func (s *stubProvisioningService) CreateAccount(_ context.Context, authz ports.Authorizer, input ports.CreateAccountInput) (*ports.CreateAccountResult, error) {
	s.authz = authz
	s.input = input
	if s.err != nil {
		return nil, s.err
	}
	return s.result, nil
}

type stubDirectoryService struct {
	updateResult *ports.UpdateAccountResult
	updateErr    error
	deleteErr    error
	records      []domain.ClientRecord
	listErr      error

	updateInput ports.UpdateAccountInput
	deleteEmail string
	caller      *domain.Caller
}

func (s *stubDirectoryService) UpdateAccount(_ context.Context, caller *domain.Caller, input ports.UpdateAccountInput) (*ports.UpdateAccountResult, error) {
	s.caller = caller
	s.updateInput = input
	if s.updateErr != nil {
		return nil, s.updateErr
	}
	return s.updateResult, nil
}

func (s *stubDirectoryService) DeleteAccount(_ context.Context, caller *domain.Caller, email string) error {
	s.caller = caller
	s.deleteEmail = email
	return s.deleteErr
}

func (s *stubDirectoryService) ListAccounts(_ context.Context, caller *domain.Caller) ([]domain.ClientRecord, error) {
	s.caller = caller
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.records, nil
}

type stubNotifier struct {
	result *ports.SendResult
	err    error

	to      string
	subject string
	html    string
}

func (s *stubNotifier) Send(_ context.Context, to, subject, html string) (*ports.SendResult, error) {
	s.to = to
	s.subject = subject
	s.html = html
	if s.err != nil {
		return nil, s.err
	}
	if s.result != nil {
		return s.result, nil
	}
	return &ports.SendResult{Provider: "Simulation", Timestamp: time.Now()}, nil
}

func (s *stubNotifier) SendWelcome(ctx context.Context, to, name, _, _ string) (*ports.SendResult, error) {
	return s.Send(ctx, to, "Welcome, "+name, "")
}
