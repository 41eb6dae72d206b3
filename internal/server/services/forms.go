package services

import (
	"fmt"
	"strings"

	"github.com/dmitrijs2005/staffdesk/internal/common"
)

// AccountForm is the input of AccountService.Save. The concrete type decides
// whether an account is created or edited.
type AccountForm interface {
	Validate() error
}

// CreateAccountForm requires every field.
type CreateAccountForm struct {
	Username string
	Password string
	RoleName string
	Active   *bool
}

func (f *CreateAccountForm) Validate() error {
	var missing []string
	if strings.TrimSpace(f.Username) == "" {
		missing = append(missing, "username")
	}
	if f.Password == "" {
		missing = append(missing, "password")
	}
	if f.RoleName == "" {
		missing = append(missing, "role")
	}
	if f.Active == nil {
		missing = append(missing, "active")
	}
	return missingFields(missing)
}

// EditAccountForm replaces every field of an existing account except the
// password, which is kept when left blank.
type EditAccountForm struct {
	ID       string
	Username string
	Password string
	RoleName string
	Active   *bool
}

func (f *EditAccountForm) Validate() error {
	var missing []string
	if f.ID == "" {
		missing = append(missing, "id")
	}
	if strings.TrimSpace(f.Username) == "" {
		missing = append(missing, "username")
	}
	if f.RoleName == "" {
		missing = append(missing, "role")
	}
	if f.Active == nil {
		missing = append(missing, "active")
	}
	return missingFields(missing)
}

func missingFields(names []string) error {
	if len(names) == 0 {
		return nil
	}
	return fmt.Errorf("%w: missing %s", common.ErrorInputInvalid, strings.Join(names, ", "))
}
