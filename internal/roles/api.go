package roles

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

type roleOutput struct {
	Body Role
}

type roleListOutput struct {
	Body []Role
}

type roleIDInput struct {
	RoleID int64 `path:"roleId" doc:"Role id"`
}

type roleNameInput struct {
	RoleName string `path:"roleName" doc:"Role name, case-insensitive"`
}

type roleBody struct {
	ID   int64  `json:"roleid,omitempty" doc:"Ignored, ids are assigned by the server"`
	Name string `json:"name" minLength:"1" maxLength:"64"`
}

type createRoleInput struct {
	Body roleBody
}

type createRoleOutput struct {
	Location string `header:"Location"`
}

type updateRoleInput struct {
	RoleID int64 `path:"roleId"`
	Body   roleBody
}

// Register mounts the roles API under /roles.
func Register(api huma.API, store *Store) {
	group := huma.NewGroup(api, "/roles")

	huma.Get(group, "/roles", func(_ context.Context, _ *struct{}) (*roleListOutput, error) {
		return &roleListOutput{Body: store.FindAll()}, nil
	})

	huma.Get(group, "/role/{roleId}", func(_ context.Context, in *roleIDInput) (*roleOutput, error) {
		role, err := store.FindByID(in.RoleID)
		if err != nil {
			return nil, httpError(err, fmt.Sprintf("Role id %d not found!", in.RoleID))
		}
		return &roleOutput{Body: role}, nil
	})

	huma.Get(group, "/role/name/{roleName}", func(_ context.Context, in *roleNameInput) (*roleOutput, error) {
		role, err := store.FindByName(in.RoleName)
		if err != nil {
			return nil, httpError(err, fmt.Sprintf("Role name %s not found!", in.RoleName))
		}
		return &roleOutput{Body: role}, nil
	})

	huma.Post(group, "/role", func(_ context.Context, in *createRoleInput) (*createRoleOutput, error) {
		role, err := store.Save(in.Body.Name)
		if err != nil {
			return nil, httpError(err, "")
		}
		return &createRoleOutput{Location: fmt.Sprintf("/roles/role/%d", role.ID)}, nil
	}, func(op *huma.Operation) {
		op.DefaultStatus = http.StatusCreated
	})

	huma.Put(group, "/role/{roleId}", func(_ context.Context, in *updateRoleInput) (*struct{}, error) {
		if _, err := store.Update(in.RoleID, in.Body.Name); err != nil {
			return nil, httpError(err, fmt.Sprintf("Role id %d not found!", in.RoleID))
		}
		return nil, nil
	}, func(op *huma.Operation) {
		op.DefaultStatus = http.StatusOK
	})
}

func httpError(err error, notFound string) error {
	switch {
	case errors.Is(err, ErrNotFound):
		return huma.Error404NotFound(notFound)
	case errors.Is(err, ErrDuplicate):
		return huma.Error409Conflict(err.Error())
	case errors.Is(err, ErrEmptyName):
		return huma.Error400BadRequest(err.Error())
	}
	return huma.Error500InternalServerError("role operation failed", err)
}
