package ports

import "context"

// Authorizer identifies who is asking for an account to be created.
// Exactly two variants exist: the shared provisioning secret (bootstrap
// path) and a bearer token belonging to an existing admin.
type Authorizer interface {
	authorizer()
}

// SecretAuthorizer carries the shared provisioning secret.
type SecretAuthorizer struct {
	Secret string
}

// BearerAuthorizer carries the caller's bearer token.
type BearerAuthorizer struct {
	Token string
}

func (SecretAuthorizer) authorizer() {}
func (BearerAuthorizer) authorizer() {}

// CreateAccountInput is the provisioning request. RoleHint is honored
// only on the bearer path; the secret path always provisions an admin.
type CreateAccountInput struct {
	Email        string
	Password     string
	Name         string
	BusinessName string
	RoleHint     string
}

// CreateAccountResult reports the provisioned account. Warning is set
// when the welcome notification failed; the account exists regardless.
type CreateAccountResult struct {
	ID           string
	Email        string
	Role         string
	Name         string
	BusinessName string
	Warning      string
}

// ProvisioningService creates accounts end-to-end: identity, role,
// client record, welcome notification.
type ProvisioningService interface {
	CreateAccount(ctx context.Context, authz Authorizer, input CreateAccountInput) (*CreateAccountResult, error)
}
