package service

import (
	"context"
	"fmt"

	"github.com/real-dev404/mern-whatsapp-clone-api/internal/modules/users/domain"
)

// Search returns public projections of users whose name contains the
// fragment, case-insensitively, leaving out the caller's own name. An
// empty fragment lists everyone.
func (s *Service) Search(ctx context.Context, fragment, excludeName string) ([]domain.Projection, error) {
	var (
		users []domain.User
		err   error
	)
	if fragment == "" {
		users, err = s.users.FindAll(ctx)
	} else {
		users, err = s.users.SearchByName(ctx, fragment, excludeName)
	}
	if err != nil {
		return nil, fmt.Errorf("user search: %w", err)
	}

	out := make([]domain.Projection, 0, len(users))
	for _, u := range users {
		out = append(out, u.Public())
	}
	return out, nil
}
