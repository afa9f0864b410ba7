package auth

import "context"

type StoreAPI interface {
	UserByEmail(ctx context.Context, email string) (*User, error)
	CreateUser(ctx context.Context, user User) (string, error)
}
